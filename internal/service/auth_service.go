package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/afitoip/portfolio-api/internal/utils"
	"github.com/afitoip/portfolio-api/pkg/logger"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the single configured administrator and
// issues bearer tokens. There is no user table: the admin identity
// lives entirely in configuration, and tokens cannot be revoked before
// expiry short of rotating the signing secret.
type AuthService struct {
	adminEmail    string
	adminPassword string
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(adminEmail, adminPassword, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Login validates the credential pair and returns a signed token.
func (s *AuthService) Login(email, password string) (string, error) {
	if email != s.adminEmail || !utils.VerifyPassword(s.adminPassword, password) {
		logger.Log.Warn("Login failed",
			zap.String("email", email),
		)
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(email, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		logger.Log.Error("Token generation failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return "", err
	}

	logger.Log.Info("Admin logged in",
		zap.String("email", email),
	)
	return token, nil
}
