package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

type stubRevoker struct {
	revoked map[string]bool
}

func (r *stubRevoker) Revoke(_ context.Context, token string, _ time.Duration) error {
	r.revoked[token] = true
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, token string) (bool, error) {
	return r.revoked[token], nil
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invoke(t, Auth(testSecret, nil), "")
	assertUnauthorized(t, err)
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Basic abc123", "just-a-token"} {
		_, err := invoke(t, Auth(testSecret, nil), header)
		assertUnauthorized(t, err)
	}
}

func TestAuth_WrongSignature(t *testing.T) {
	token := signedToken(t, "other-secret", jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := invoke(t, Auth(testSecret, nil), "Bearer "+token)
	assertUnauthorized(t, err)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	_, err := invoke(t, Auth(testSecret, nil), "Bearer "+token)
	assertUnauthorized(t, err)
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub":          "u1",
		"email":        "alice@example.com",
		"account_kind": "ordinary",
		"exp":          time.Now().Add(time.Hour).Unix(),
	})

	c, err := invoke(t, Auth(testSecret, nil), "Bearer "+token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Get("user_id") != "u1" {
		t.Errorf("user_id = %v, want u1", c.Get("user_id"))
	}
	if c.Get("email") != "alice@example.com" {
		t.Errorf("email = %v", c.Get("email"))
	}
	if c.Get("account_kind") != "ordinary" {
		t.Errorf("account_kind = %v", c.Get("account_kind"))
	}
	if c.Get("token") != token {
		t.Error("raw token not stored in context")
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	revoker := &stubRevoker{revoked: map[string]bool{token: true}}

	_, err := invoke(t, Auth(testSecret, revoker), "Bearer "+token)
	assertUnauthorized(t, err)
}

func TestAuth_BearerCaseInsensitive(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := invoke(t, Auth(testSecret, nil), "bearer "+token)
	if err != nil {
		t.Fatalf("lowercase scheme must be accepted, got %v", err)
	}
}
