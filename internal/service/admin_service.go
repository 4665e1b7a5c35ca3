package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/yakoovad/orgsite/internal/auth"
	"github.com/yakoovad/orgsite/internal/model"
	"github.com/yakoovad/orgsite/internal/repository"
	"github.com/yakoovad/orgsite/pkg/logger"
	"go.uber.org/zap"
)

type AdminService struct {
	tokenTTL time.Duration

	admins repository.AdminRepository
}

func NewAdminService(tokenTTL time.Duration) *AdminService {
	return &AdminService{tokenTTL: tokenTTL}
}

// Bootstrap creates the admin account unless one with the same username exists.
// It reports whether an account was created and is safe to call on every start.
func (a *AdminService) Bootstrap(ctx context.Context, username, email, password string) (bool, error) {
	l := logger.FromContext(ctx)

	if username == "" || password == "" {
		return false, errors.New("admin username and password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	created, err := a.admins.CreateIfMissing(ctx, &repository.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to create admin")
	}

	if created {
		l.Info("admin account created", zap.String("username", username))
	} else {
		l.Debug("admin account already exists", zap.String("username", username))
	}
	return created, nil
}

func (a *AdminService) Login(ctx context.Context, creds *model.Credentials) (*model.AccessToken, error) {
	l := logger.FromContext(ctx)

	admin, err := a.admins.GetByUsername(ctx, creds.Username)
	if errors.Is(err, repository.ErrNotFound) {
		l.Warn("login for unknown admin", zap.String("username", creds.Username))
		return nil, NewError(ErrorCodeInvalidCredentials, "invalid username or password")
	}
	if err != nil {
		l.Error("failed to get admin", zap.String("username", creds.Username), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to log in")
	}

	if err = auth.ComparePassword(admin.PasswordHash, creds.Password); err != nil {
		l.Warn("wrong admin password", zap.String("username", creds.Username))
		return nil, NewError(ErrorCodeInvalidCredentials, "invalid username or password")
	}

	token, expiresAt, err := auth.GenerateToken(auth.TokenTypeAdmin, admin.Username, a.tokenTTL)
	if err != nil {
		l.Error("failed to sign token", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to log in")
	}

	return &model.AccessToken{Token: token, ExpiresAt: expiresAt}, nil
}

func (a *AdminService) WithAdminRepo(r repository.AdminRepository) *AdminService {
	a.admins = r
	return a
}
