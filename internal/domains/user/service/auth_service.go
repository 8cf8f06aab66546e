package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"catalog-backend/internal/domains/user/model"
	"catalog-backend/internal/domains/user/repository"

	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	GenerateAccessToken(userID, email, role string) (string, error)
}

type AuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	repo   repository.Repository
	tokens TokenIssuer
}

func NewAuthService(repo repository.Repository, tokens TokenIssuer) AuthService {
	return &authService{repo: repo, tokens: tokens}
}

// Login checks the credentials and returns a signed access token.
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. FIND USER BY EMAIL; unknown emails look like wrong passwords
	u, err := s.repo.FindByEmail(ctx, req.NormalizedEmail())
	if errors.Is(err, model.ErrUserNotFound) {
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	// 3. VERIFY PASSWORD
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	// 4. GENERATE JWT
	token, err := s.tokens.GenerateAccessToken(strconv.FormatInt(u.ID, 10), u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &model.LoginResponse{Token: token}, nil
}

// HashPassword hashes with bcrypt at the given cost; 0 means bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
