package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs and helpers
// ---------------------------------------------------------------------------

type stubAuthService struct {
	registerUser *domain.User
	registerErr  error
	loginToken   string
	loginUser    *domain.User
	loginErr     error
	logoutErr    error

	loggedOutToken string
	loggedOutUser  *domain.User
}

func (s *stubAuthService) Register(_ context.Context, _, _ string) (*domain.User, error) {
	return s.registerUser, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	return s.loginToken, s.loginUser, s.loginErr
}

func (s *stubAuthService) Logout(_ context.Context, token string, user *domain.User) error {
	s.loggedOutToken = token
	s.loggedOutUser = user
	return s.logoutErr
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authenticate injects the claims the auth middleware would have set.
func authenticate(c echo.Context, user *domain.User, token string) {
	c.Set("user_id", user.ID)
	c.Set("email", user.Email)
	c.Set("account_kind", string(user.Kind))
	c.Set("token", token)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if httpErr.Code != want {
		t.Fatalf("expected status %d, got %d (%v)", want, httpErr.Code, httpErr.Message)
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{registerUser: &domain.User{ID: "u1", Email: "alice@example.com"}}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"supersecret","confirmPassword":"supersecret"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		User *domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.ID != "u1" {
		t.Errorf("unexpected user in response: %+v", resp.User)
	}
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	body := `{"email":"alice@example.com","password":"supersecret","confirmPassword":"different1"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", body)

	assertHTTPStatus(t, h.Register(c), http.StatusBadRequest)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	body := `{"email":"alice@example.com","password":"short","confirmPassword":"short"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", body)

	assertHTTPStatus(t, h.Register(c), http.StatusBadRequest)
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	body := `{"email":"not-an-email","password":"supersecret","confirmPassword":"supersecret"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", body)

	assertHTTPStatus(t, h.Register(c), http.StatusBadRequest)
}

func TestAuthHandler_Register_ServiceErrorPassedThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})

	body := `{"email":"alice@example.com","password":"supersecret","confirmPassword":"supersecret"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", body)

	// error mapping belongs to the central error handler, not this handler
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login / Logout
// ---------------------------------------------------------------------------

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		loginToken: "signed-token",
		loginUser:  &domain.User{ID: "u1", Email: "alice@example.com", Kind: domain.KindOrdinary},
	}
	h := NewAuthHandler(svc)

	body := `{"email":"alice@example.com","password":"supersecret"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", body)

	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Errorf("token = %q", resp.Token)
	}
}

func TestAuthHandler_Login_BadCredentialsPassedThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	body := `{"email":"alice@example.com","password":"wrong"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", body)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout_ForwardsTokenAndUser(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/logout", "")
	authenticate(c, &domain.User{ID: "u1", Email: "demo@example.com", Kind: domain.KindDemo}, "the-token")

	if err := h.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.loggedOutToken != "the-token" {
		t.Errorf("token forwarded = %q", svc.loggedOutToken)
	}
	if svc.loggedOutUser == nil || svc.loggedOutUser.Kind != domain.KindDemo {
		t.Errorf("user forwarded = %+v", svc.loggedOutUser)
	}
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/logout", "")
	assertHTTPStatus(t, h.Logout(c), http.StatusUnauthorized)
}
