package restclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"kasir/pkg/restclient"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u-1",
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test_jwt_secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newClient(t *testing.T, baseURL string, cred *restclient.Credential) *restclient.Client {
	t.Helper()
	client, err := restclient.NewClient(restclient.Config{BaseURL: baseURL}, cred)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestClient_AttachesAuthAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "message": "ok", "data": {"name": "Kopi"}}`))
	}))
	defer server.Close()

	cred := restclient.NewCredential()
	token := mintToken(t, time.Now().Add(time.Hour))
	cred.Set(token)

	var out struct {
		Name string `json:"name"`
	}
	err := newClient(t, server.URL, cred).Get(context.Background(), "/products/p-1", &out)
	assert.NoError(t, err)
	assert.Equal(t, "Bearer "+token, gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "Kopi", out.Name)
}

func TestClient_MissingCredentialFailsWithoutRoundTrip(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}))
	defer server.Close()

	err := newClient(t, server.URL, restclient.NewCredential()).Get(context.Background(), "/products", nil)
	assert.True(t, restclient.IsAuth(err), "expected an auth failure, got %v", err)
	assert.EqualValues(t, 0, atomic.LoadInt64(&hits), "no request should reach the backend")
}

func TestClient_ExpiredCredentialFailsWithoutRoundTrip(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	}))
	defer server.Close()

	cred := restclient.NewCredential()
	cred.Set(mintToken(t, time.Now().Add(-time.Hour)))

	err := newClient(t, server.URL, cred).Get(context.Background(), "/products", nil)
	assert.True(t, restclient.IsAuth(err))
	assert.EqualValues(t, 0, atomic.LoadInt64(&hits))
}

func TestClient_BackendRejectionMessageVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "message": "insufficient stock for Kopi (requested: 2, available: 1)"}`))
	}))
	defer server.Close()

	cred := restclient.NewCredential()
	cred.Set(mintToken(t, time.Now().Add(time.Hour)))

	err := newClient(t, server.URL, cred).Post(context.Background(), "/transactions", map[string]any{}, nil)
	assert.True(t, restclient.IsValidation(err))
	assert.EqualError(t, err, "insufficient stock for Kopi (requested: 2, available: 1)")
}

func TestClient_UnauthorizedIsAuthKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success": false, "message": "Invalid or expired token"}`))
	}))
	defer server.Close()

	cred := restclient.NewCredential()
	cred.Set(mintToken(t, time.Now().Add(time.Hour)))

	err := newClient(t, server.URL, cred).Get(context.Background(), "/products", nil)
	assert.True(t, restclient.IsAuth(err))
	assert.EqualError(t, err, "Invalid or expired token")
}

func TestClient_EnvelopeFailureInsideOK(t *testing.T) {
	// success=false inside a 200 is still a rejection carrying the message.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "message": "shift already closed"}`))
	}))
	defer server.Close()

	cred := restclient.NewCredential()
	cred.Set(mintToken(t, time.Now().Add(time.Hour)))

	err := newClient(t, server.URL, cred).Post(context.Background(), "/shifts/close", map[string]any{}, nil)
	assert.Error(t, err)
	assert.EqualError(t, err, "shift already closed")
	assert.False(t, restclient.IsAuth(err))
	assert.False(t, restclient.IsValidation(err))
}

func TestClient_PostPublicSkipsCredential(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"token": "abc"}}`))
	}))
	defer server.Close()

	var out struct {
		Token string `json:"token"`
	}
	err := newClient(t, server.URL, restclient.NewCredential()).
		PostPublic(context.Background(), "/auth/login", map[string]string{"username": "budi"}, &out)
	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "abc", out.Token)
}

func TestCredential_Lifecycle(t *testing.T) {
	cred := restclient.NewCredential()
	assert.True(t, cred.Empty())
	assert.True(t, cred.Expired(), "an empty credential counts as expired")

	cred.Set(mintToken(t, time.Now().Add(time.Hour)))
	assert.False(t, cred.Empty())
	assert.False(t, cred.Expired())

	cred.Clear()
	assert.True(t, cred.Empty())
}

func TestCredential_OpaqueTokenLeftToServer(t *testing.T) {
	// A token that is not a decodable JWT cannot be inspected locally; the
	// server gets to judge it.
	cred := restclient.NewCredential()
	cred.Set("opaque-session-token")
	assert.False(t, cred.Expired())
}
