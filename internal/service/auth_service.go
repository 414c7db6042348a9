package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"go-health-console/internal/menu"
	"go-health-console/internal/model"
	"go-health-console/internal/session"
	"go-health-console/internal/upstream"
	"go-health-console/pkg/jwt"
	"go-health-console/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrLoginUnavailable   = errors.New("login service unavailable")
)

type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token string            `json:"token"`
	User  model.UserProfile `json:"user"`
	Menu  []menu.Entry      `json:"menu"`
}

type authService struct {
	api        upstream.API
	sessions   session.Repository
	sessionTTL time.Duration
	log        *slog.Logger
}

func NewAuthService(api upstream.API, sessions session.Repository, sessionTTL time.Duration, log *slog.Logger) AuthService {
	return &authService{api: api, sessions: sessions, sessionTTL: sessionTTL, log: log}
}

func (s *authService) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	// 1. Validate request
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	// 2. Exchange credentials upstream. Both a business rejection and an
	// auth-endpoint HTTP error read as bad credentials to the user.
	data, err := s.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		var apiErr *upstream.APIError
		var httpErr *upstream.HTTPError
		if errors.As(err, &apiErr) || errors.As(err, &httpErr) {
			return nil, ErrInvalidCredentials
		}
		s.log.Error("login call failed", "error", err)
		return nil, ErrLoginUnavailable
	}

	// 3. Persist the session record
	sid := uuid.NewString()
	sess := &model.Session{User: &data.UserProfile, Permissions: data.Permission}
	if err := s.sessions.Set(sid, sess); err != nil {
		s.log.Error("storing session failed", "error", err)
		return nil, errors.New("failed to create session")
	}

	// 4. Issue the signed cookie token
	token, err := jwt.GenerateSessionToken(sid, data.UserID, data.Name, s.sessionTTL)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResult{
		Token: token,
		User:  data.UserProfile,
		Menu:  menu.Build(data.Permission),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(sessionID)
}
