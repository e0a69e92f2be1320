package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/internal/service"
	"github.com/MKhiriev/go-todo-api/internal/validators"
	"github.com/MKhiriev/go-todo-api/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, creds models.Credentials) (models.Token, error)
	resolveTokenFn func(ctx context.Context, key string) (models.User, error)
	listUsersFn    func(ctx context.Context) ([]models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.registerUserFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) ResolveToken(ctx context.Context, key string) (models.User, error) {
	return m.resolveTokenFn(ctx, key)
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// credsBody serialises credentials to a JSON request body string.
func credsBody(t *testing.T, creds models.Credentials) string {
	t.Helper()
	b, err := json.Marshal(creds)
	require.NoError(t, err)
	return string(b)
}

// validCreds is a convenience fixture used across multiple tests.
var validCreds = models.Credentials{
	Username: "alice",
	Password: "wonderland",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			require.Equal(t, validCreds, creds)
			return models.User{
				UserID:   1,
				Username: creds.Username,
				Password: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
			}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/register/", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body models.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.Username)
	assert.Contains(t, body.Password, "$argon2id$", "response must echo the stored hash, not the plaintext")
}

func TestRegister_MissingField(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, validators.FieldErrors{"password": {"this field is required"}}
		},
	}
	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/register/", strings.NewReader(`{"username": "alice"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"this field is required"}, body["password"])
}

func TestRegister_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, validators.MsgUsernameTaken()
		},
	}
	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/register/", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"a user with that username already exists"}, body["username"])
}

func TestRegister_InvalidJSON(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			t.Fatal("service must not be reached on malformed JSON")
			return models.User{}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/register/", strings.NewReader(`{"username": `))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_ServiceFailure(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}
	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/register/", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const key = "9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.Token, error) {
			require.Equal(t, validCreds, creds)
			return models.Token{Key: key, UserID: 1}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/login/", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, key, body.Token)
}

func TestLogin_BadCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			return models.Token{}, validators.MsgBadCredentials()
		},
	}
	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/login/", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"unable to log in with provided credentials"}, body["non_field_errors"])
}

func TestLogin_InvalidJSON(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.Token, error) {
			t.Fatal("service must not be reached on malformed JSON")
			return models.Token{}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/login/", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// listUsers
// ─────────────────────────────────────────────

func TestListUsers_Success(t *testing.T) {
	auth := &mockAuthService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{UserID: 1, Username: "alice", Password: "hash-a"},
				{UserID: 2, Username: "bob", Password: "hash-b"},
			}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/users/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "alice", body[0]["username"])
	assert.Equal(t, "hash-a", body[0]["password"], "stored hash is part of the listing body")
	assert.NotContains(t, body[0], "created_at")
}

func TestListUsers_EmptyIsArray(t *testing.T) {
	auth := &mockAuthService{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return nil, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/users/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String(), "an empty listing must be [], not null")
}
