package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// newIdentityTestServer поднимает заглушку identity-провайдера с двумя
// известными пользователями. Сырые записи содержат лишние поля - клиент
// обязан их отфильтровать.
func newIdentityTestServer(t *testing.T) *httptest.Server {
	users := []map[string]string{
		{
			"id":         "user-1",
			"username":   "alice",
			"image_url":  "https://img.example/alice.png",
			"email":      "alice@example.com",
			"first_name": "Alice",
		},
		{
			"id":        "user-2",
			"username":  "bob",
			"image_url": "https://img.example/bob.png",
			"email":     "bob@example.com",
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/users", r.URL.Path)

		query := r.URL.Query()
		var matched []map[string]string

		if username := query.Get("username"); username != "" {
			for _, u := range users {
				if u["username"] == username {
					matched = append(matched, u)
				}
			}
		} else {
			requested := make(map[string]bool)
			for _, id := range query["user_id"] {
				requested[id] = true
			}
			for _, u := range users {
				if requested[u["id"]] {
					matched = append(matched, u)
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if matched == nil {
			matched = []map[string]string{}
		}
		json.NewEncoder(w).Encode(matched)
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestResolveManyFiltersProjection(t *testing.T) {
	server := newIdentityTestServer(t)
	client := NewIdentityClient(server.URL, "test-key")

	users, err := client.ResolveMany(context.Background(), []string{"user-1", "user-2"})
	require.NoError(t, err)
	require.Len(t, users, 2)

	alice := users["user-1"]
	require.Equal(t, "user-1", alice.ID)
	require.Equal(t, "alice", alice.Username)
	require.Equal(t, "https://img.example/alice.png", alice.ProfileImageURL)

	// Email и прочие сырые поля не должны пережить проекцию
	raw, err := json.Marshal(alice)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "alice@example.com")
	require.NotContains(t, string(raw), "Alice")
}

func TestResolveManyOmitsUnknownIDs(t *testing.T) {
	server := newIdentityTestServer(t)
	client := NewIdentityClient(server.URL, "")

	users, err := client.ResolveMany(context.Background(), []string{"user-1", "ghost"})
	require.NoError(t, err)

	// Неизвестный id просто отсутствует, это не ошибка
	require.Len(t, users, 1)
	require.Contains(t, users, "user-1")
	require.NotContains(t, users, "ghost")
}

func TestResolveManyEmptyInput(t *testing.T) {
	client := NewIdentityClient("http://identity.invalid", "")

	// Пустой набор id не должен ходить наружу
	users, err := client.ResolveMany(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestResolveByUsername(t *testing.T) {
	server := newIdentityTestServer(t)
	client := NewIdentityClient(server.URL, "")

	user, err := client.ResolveByUsername(context.Background(), "bob")
	require.NoError(t, err)
	require.Equal(t, "user-2", user.ID)
	require.Equal(t, "bob", user.Username)
}

func TestResolveByUsernameNotFound(t *testing.T) {
	server := newIdentityTestServer(t)
	client := NewIdentityClient(server.URL, "")

	_, err := client.ResolveByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestResolveByUsernameIsCaseSensitive(t *testing.T) {
	server := newIdentityTestServer(t)
	client := NewIdentityClient(server.URL, "")

	_, err := client.ResolveByUsername(context.Background(), "Alice")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestIdentityClientSendsAPIKey(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	t.Cleanup(server.Close)

	client := NewIdentityClient(server.URL, "secret-key")
	_, err := client.ResolveMany(context.Background(), []string{"user-1"})
	require.NoError(t, err)
	require.Equal(t, "Bearer secret-key", gotAuth)
}

func TestIdentityClientUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream is down", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewIdentityClient(server.URL, "")

	_, err := client.ResolveMany(context.Background(), []string{"user-1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}
