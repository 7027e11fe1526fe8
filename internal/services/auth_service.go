package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/opsboard/backend/internal/apperr"
	"github.com/opsboard/backend/internal/auth"
	"github.com/opsboard/backend/internal/config"
	"github.com/opsboard/backend/internal/models"
	"github.com/opsboard/backend/internal/repositories"
)

type AuthService struct {
	profileRepo *repositories.ProfileRepo
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthService(profileRepo *repositories.ProfileRepo, cfg *config.Config, log *zap.Logger) *AuthService {
	return &AuthService{profileRepo: profileRepo, cfg: cfg, log: log}
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error so the endpoint does not leak which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, apperr.Validation("email and password are required")
	}

	p, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if p == nil {
		return "", nil, apperr.Authorization("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.Authorization("invalid credentials")
	}

	token, err := auth.GenerateJWT(s.cfg.JWTSecret, p.ID, s.cfg.JWTExpiration)
	if err != nil {
		return "", nil, err
	}
	return token, p, nil
}
