package services

import (
	"paintvault_server/lib"
	"paintvault_server/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// adminSubject is the fixed token subject for the bootstrap admin.
// There is no user table; write access is a single operator credential
// supplied through the environment.
var adminSubject = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
	}
}

// Login checks the operator credentials and issues an access token
func (as *AuthService) Login(authRequest *structs.AuthRequest) (*structs.AuthResponse, error) {
	startTime := time.Now()

	if as.cfg.Auth.AdminEmail == "" || as.cfg.Auth.AdminPasswordHash == "" {
		as.logger.Error("Admin credentials not configured; login disabled")
		return nil, lib.ErrInvalidCredentials
	}

	if !strings.EqualFold(authRequest.Email, as.cfg.Auth.AdminEmail) {
		as.logger.Debug("Unknown login identifier", gecho.Field("identifier", authRequest.Email))
		return nil, lib.ErrInvalidCredentials
	}

	valid, err := lib.VerifyPassword(authRequest.Password, as.cfg.Auth.AdminPasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash", gecho.Field("error", err))
		return nil, lib.ErrInvalidCredentials
	}
	if !valid {
		as.logger.Debug("Invalid password attempt", gecho.Field("identifier", authRequest.Email))
		return nil, lib.ErrInvalidCredentials
	}

	expiresAt := time.Now().UTC().Add(as.cfg.Auth.AccessTokenExpiry)
	token, err := lib.GenerateToken(adminSubject, as.cfg.Auth.AdminEmail, "admin", as.cfg.Auth.AccessTokenSecret, as.cfg.Auth.AccessTokenExpiry)
	if err != nil {
		as.logger.Error("Failed to generate access token", gecho.Field("error", err))
		return nil, err
	}

	as.logger.Debug("Admin logged in", gecho.Field("elapsed_time_ms", time.Since(startTime).Milliseconds()))
	return &structs.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// GetAccessTokenSecret exposes the signing secret for middleware
func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}
