package nanny

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

type CreateNannyRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone"`
	Locale string `json:"locale"`
}

// CreateNanny godoc
// @Summary      Add nanny
// @Description  Registers a nanny in the staffing directory. Admin only.
// @Tags         nannies
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        nanny  body      CreateNannyRequest  true  "Nanny details"
// @Success      201    {object}  Nanny
// @Failure      400    {object}  gin.H
// @Failure      500    {object}  gin.H
// @Router       /admin/nannies [post]
func (h *Handler) CreateNanny(c *gin.Context) {
	var req CreateNannyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Locale == "" {
		req.Locale = "en"
	}

	n, err := h.repo.Create(c.Request.Context(), req.Name, req.Email, req.Phone, req.Locale)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create nanny"})
		return
	}

	c.JSON(http.StatusCreated, n)
}

// ListNannies godoc
// @Summary      List nannies
// @Tags         nannies
// @Security     BearerAuth
// @Produce      json
// @Param        active  query     bool  false  "Only active nannies"
// @Success      200     {array}   Nanny
// @Failure      500     {object}  gin.H
// @Router       /admin/nannies [get]
func (h *Handler) ListNannies(c *gin.Context) {
	onlyActive := c.Query("active") == "true"

	nannies, err := h.repo.List(c.Request.Context(), onlyActive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nannies"})
		return
	}

	c.JSON(http.StatusOK, nannies)
}

// SetNannyActive godoc
// @Summary      Activate or deactivate nanny
// @Tags         nannies
// @Security     BearerAuth
// @Produce      json
// @Param        nannyID  path      int   true  "Nanny ID"
// @Param        active   query     bool  true  "Active flag"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /admin/nannies/{nannyID}/active [post]
func (h *Handler) SetNannyActive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("nannyID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nanny ID"})
		return
	}

	active := c.Query("active") == "true"

	if err := h.repo.SetActive(c.Request.Context(), id, active); err != nil {
		if errors.Is(err, ErrNannyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Nanny not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update nanny"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Nanny updated"})
}
