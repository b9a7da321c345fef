package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weddify/api"
	"weddify/models"
	"weddify/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Error(string)   {}
func (noopNotifier) Info(string)    {}

func newTestService(t *testing.T, handler http.Handler) (*DefaultAuthService, session.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sessions := session.NewStore(session.NewMemoryScope(), session.NewMemoryScope())
	client := api.NewClient(server.URL, 2*time.Second, sessions, noopNotifier{}, nil, zap.NewNop())
	return NewAuthService(client, sessions, zap.NewNop()), sessions
}

func loginBackend(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, api.AuthLogin, r.URL.Path)
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "couple@example.com", req.Email)

		json.NewEncoder(w).Encode(map[string]any{
			"token": "jwt-123",
			"user": map[string]any{
				"id":    "u-1",
				"name":  "Alex",
				"email": req.Email,
				"role":  "CLIENT",
			},
		})
	})
}

func TestLogin(t *testing.T) {
	t.Run("persists the session and remembers the email", func(t *testing.T) {
		svc, sessions := newTestService(t, loginBackend(t))

		sess, err := svc.Login(context.Background(), "couple@example.com", "secret", true)
		require.NoError(t, err)
		assert.Equal(t, "jwt-123", sess.Token)
		assert.Equal(t, models.RoleClient, sess.Role)
		assert.Equal(t, "u-1", sess.UserID)

		stored, ok := sessions.Get()
		require.True(t, ok)
		assert.Equal(t, "jwt-123", stored.Token)
		assert.Equal(t, "couple@example.com", sessions.RememberedEmail())
	})

	t.Run("without remember the email is dropped", func(t *testing.T) {
		svc, sessions := newTestService(t, loginBackend(t))
		require.NoError(t, sessions.SetRememberedEmail("old@example.com"))

		_, err := svc.Login(context.Background(), "couple@example.com", "secret", false)
		require.NoError(t, err)
		assert.Empty(t, sessions.RememberedEmail())
	})

	t.Run("backend rejection leaves no session", func(t *testing.T) {
		svc, sessions := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"invalid credentials"}`))
		}))

		_, err := svc.Login(context.Background(), "couple@example.com", "wrong", true)
		require.Error(t, err)
		_, ok := sessions.Get()
		assert.False(t, ok)
	})
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, api.AuthRegister, r.URL.Path)
		var input RegisterInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "u-2",
			"name":  input.Name,
			"email": input.Email,
			"role":  input.Role,
		})
	}))

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "secret",
		Role:     "VENDOR",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-2", user.ID)
	assert.Equal(t, models.RoleVendor, user.Role)
}

func TestValidateToken(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected without a session")
		}))
		assert.ErrorIs(t, svc.ValidateToken(context.Background()), session.ErrNoSession)
	})

	t.Run("calls the validate endpoint", func(t *testing.T) {
		called := false
		svc, sessions := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			require.Equal(t, api.AuthValidate, r.URL.Path)
			w.Write([]byte(`{}`))
		}))
		require.NoError(t, sessions.Set(models.Session{Token: "t", UserID: "u-1"}, false))

		require.NoError(t, svc.ValidateToken(context.Background()))
		assert.True(t, called)
	})
}

func TestLogout(t *testing.T) {
	svc, sessions := newTestService(t, http.NotFoundHandler())
	require.NoError(t, sessions.Set(models.Session{Token: "t", UserID: "u-1"}, true))

	require.NoError(t, svc.Logout())
	_, ok := sessions.Get()
	assert.False(t, ok)
}

func TestRedirectPathFor(t *testing.T) {
	assert.Equal(t, "/admin", RedirectPathFor(models.RoleAdmin))
	assert.Equal(t, "/eventplanner", RedirectPathFor(models.RoleEventPlanner))
	assert.Equal(t, "/vendor/dashboard", RedirectPathFor(models.RoleVendor))
	assert.Equal(t, "/dashboard", RedirectPathFor(models.RoleClient))
	assert.Equal(t, "/", RedirectPathFor(models.Role(42)))
}
