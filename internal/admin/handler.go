package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/auth"
	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Login godoc
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Email and password"
// @Success      200          {object}  gin.H
// @Failure      401          {object}  gin.H
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, accessToken, refreshToken, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.Errorf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin":         a,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// Refresh godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  body      gin.H  true  "Refresh token"
// @Success      200    {object}  gin.H
// @Failure      401    {object}  gin.H
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, a, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin":        a,
		"access_token": accessToken,
	})
}

// GetMe godoc
// @Summary      Current admin
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Admin
// @Failure      401  {object}  gin.H
// @Router       /admin/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	adminID, ok := auth.GetAdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, a)
}

// CreateAdmin godoc
// @Summary      Invite another admin
// @Tags         auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        admin  body      CreateRequest  true  "New admin"
// @Success      201    {object}  Admin
// @Failure      409    {object}  gin.H
// @Router       /admin/admins [post]
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		logger.Errorf("create admin failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, a)
}
