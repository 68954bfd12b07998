package admin

import (
	"context"
	"errors"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/auth"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Admin, string, string, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *Admin, error)
	GetByID(ctx context.Context, id int64) (*Admin, error)
	Create(ctx context.Context, req CreateRequest) (*Admin, error)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{repo: repo, jwtSecret: jwtSecret}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Admin, string, string, error) {
	a, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same answer for unknown email and bad password.
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(a.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(a.ID, a.Email, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return a, accessToken, refreshToken, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *Admin, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	a, err := s.repo.FindByID(ctx, claims.AdminID)
	if err != nil {
		return "", nil, ErrAdminNotFound
	}

	newAccessToken, err := auth.GenerateAccessToken(a.ID, a.Email, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, a, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Admin, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Admin, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.Name, req.Email, passwordHash)
}
