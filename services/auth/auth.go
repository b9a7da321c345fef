package auth

import (
	"context"
	"fmt"

	"weddify/api"
	"weddify/models"
	"weddify/session"

	"go.uber.org/zap"
)

// AuthService covers login, registration and token validation against
// the backend's /auth endpoints.
type AuthService interface {
	Login(ctx context.Context, email, password string, remember bool) (models.Session, error)
	Register(ctx context.Context, input RegisterInput) (models.User, error)
	ValidateToken(ctx context.Context) error
	Logout() error
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	API      *api.Client
	Sessions session.Store
	Logger   *zap.Logger
}

func NewAuthService(client *api.Client, sessions session.Store, logger *zap.Logger) *DefaultAuthService {
	return &DefaultAuthService{API: client, Sessions: sessions, Logger: logger}
}

// Login authenticates and persists the session. With remember set the
// session goes to durable storage and the email is kept for prefilling
// the next login; otherwise any previously remembered email is dropped.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string, remember bool) (models.Session, error) {
	var resp loginResponse
	if err := s.API.Post(ctx, api.AuthLogin, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return models.Session{}, err
	}

	sess := models.Session{
		Token:  resp.Token,
		Role:   resp.User.Role,
		UserID: resp.User.ID,
		User:   resp.User,
	}
	if err := s.Sessions.Set(sess, remember); err != nil {
		return models.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}

	remembered := ""
	if remember {
		remembered = email
	}
	if err := s.Sessions.SetRememberedEmail(remembered); err != nil {
		s.Logger.Warn("failed to update remembered email", zap.Error(err))
	}

	s.Logger.Info("login complete", zap.String("role", sess.Role.String()))
	return sess, nil
}

func (s *DefaultAuthService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	var user models.User
	if err := s.API.Post(ctx, api.AuthRegister, input, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ValidateToken asks the backend whether the stored token is still good.
// A 401 is handled globally by the REST client.
func (s *DefaultAuthService) ValidateToken(ctx context.Context) error {
	if _, ok := s.Sessions.Get(); !ok {
		return session.ErrNoSession
	}
	return s.API.Get(ctx, api.AuthValidate, nil, nil)
}

func (s *DefaultAuthService) Logout() error {
	return s.Sessions.Clear()
}

// RedirectPathFor resolves the post-login landing route for a role.
func RedirectPathFor(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "/admin"
	case models.RoleEventPlanner:
		return "/eventplanner"
	case models.RoleVendor:
		return "/vendor/dashboard"
	case models.RoleClient:
		return "/dashboard"
	}
	return "/"
}
