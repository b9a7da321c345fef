package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"weddify/models"
	"weddify/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotifier struct {
	mu     sync.Mutex
	errors []string
}

func (f *fakeNotifier) Success(msg string) {}
func (f *fakeNotifier) Info(msg string)    {}
func (f *fakeNotifier) Error(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, msg)
}

type fakeNavigator struct {
	paths []string
}

func (f *fakeNavigator) NavigateTo(path string) { f.paths = append(f.paths, path) }

func newTestClient(t *testing.T, handler http.Handler) (*Client, session.Store, *fakeNotifier, *fakeNavigator, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sessions := session.NewStore(session.NewMemoryScope(), session.NewMemoryScope())
	notifier := &fakeNotifier{}
	navigator := &fakeNavigator{}
	client := NewClient(server.URL, 2*time.Second, sessions, notifier, navigator, zap.NewNop())
	return client, sessions, notifier, navigator, server
}

func TestClientDo(t *testing.T) {
	t.Run("attaches the bearer token when a session exists", func(t *testing.T) {
		var gotAuth string
		client, sessions, _, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"ok":true}`))
		}))
		require.NoError(t, sessions.Set(models.Session{Token: "abc123", UserID: "u1"}, false))

		var out map[string]bool
		require.NoError(t, client.Get(context.Background(), "/ping", nil, &out))
		assert.Equal(t, "Bearer abc123", gotAuth)
		assert.True(t, out["ok"])
	})

	t.Run("sends no authorization header without a session", func(t *testing.T) {
		var gotAuth string
		client, _, _, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))

		var out map[string]any
		require.NoError(t, client.Get(context.Background(), "/ping", nil, &out))
		assert.Empty(t, gotAuth)
	})

	t.Run("encodes query parameters", func(t *testing.T) {
		var gotQuery url.Values
		client, _, _, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{}`))
		}))

		params := ListParams{Page: 2, Limit: 25, Sort: "createdAt", Order: "desc"}
		var out map[string]any
		require.NoError(t, client.Get(context.Background(), "/items", params.Query(), &out))
		assert.Equal(t, "2", gotQuery.Get("page"))
		assert.Equal(t, "25", gotQuery.Get("limit"))
		assert.Equal(t, "createdAt", gotQuery.Get("sort"))
		assert.Equal(t, "desc", gotQuery.Get("order"))
	})

	t.Run("decodes the backend error shape", func(t *testing.T) {
		client, _, _, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"booking already exists","details":"duplicate date"}`))
		}))

		err := client.Post(context.Background(), "/bookings", map[string]string{"a": "b"}, nil)
		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.Status)
		assert.Equal(t, "booking already exists", apiErr.Message)
		assert.Equal(t, "duplicate date", apiErr.Details)
	})

	t.Run("falls back to the status text on an empty error body", func(t *testing.T) {
		client, _, _, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		err := client.Get(context.Background(), "/boom", nil, nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
	})

	t.Run("401 clears the session, notifies and navigates to login", func(t *testing.T) {
		client, sessions, notifier, navigator, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		require.NoError(t, sessions.Set(models.Session{Token: "expired", UserID: "u1"}, true))

		err := client.Get(context.Background(), "/client/bookings", nil, nil)
		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

		_, ok := sessions.Get()
		assert.False(t, ok)
		assert.Contains(t, notifier.errors, "Your session has expired. Please login again.")
		assert.Equal(t, []string{LoginPath}, navigator.paths)
	})

	t.Run("cancelled context aborts the request", func(t *testing.T) {
		started := make(chan struct{})
		client, _, _, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			<-r.Context().Done()
		}))

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			<-started
			cancel()
		}()

		err := client.Get(ctx, "/slow", nil, nil)
		require.Error(t, err)
	})
}

func TestEndpointsFor(t *testing.T) {
	t.Run("every role resolves", func(t *testing.T) {
		for _, role := range []models.Role{models.RoleAdmin, models.RoleEventPlanner, models.RoleVendor, models.RoleClient} {
			_, err := EndpointsFor(role)
			assert.NoError(t, err, role.String())
		}
	})

	t.Run("client paths", func(t *testing.T) {
		e, err := EndpointsFor(models.RoleClient)
		require.NoError(t, err)
		assert.Equal(t, "/client/dashboard", e.Dashboard)
		assert.Equal(t, "/client/bookings", e.Bookings)
		assert.Equal(t, "/client/payment/initiate", e.PaymentInitiate)
		assert.Equal(t, "/client/payment/verify", e.PaymentVerify)
		assert.Equal(t, "/client/conversation", e.StartConversation)
		assert.Equal(t, "/client/account/u-9", e.Account("u-9"))
	})

	t.Run("vendor paths", func(t *testing.T) {
		e, err := EndpointsFor(models.RoleVendor)
		require.NoError(t, err)
		assert.Equal(t, "/vendor/dashboard/overview", e.Dashboard)
		assert.Equal(t, "/vendor/conversations", e.StartConversation)
	})

	t.Run("unknown role fails", func(t *testing.T) {
		_, err := EndpointsFor(models.Role(99))
		assert.Error(t, err)
	})
}
