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

	"github.com/cityconnect/issue-reporting/internal/core/domain"
	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	lastLogin   ports.LoginInput
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &ports.AuthResult{Token: "issued-token", Username: input.Username, Role: domain.RoleCitizen}, nil
}

func (s *stubAuthService) Login(_ context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	s.lastLogin = input
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &ports.AuthResult{Token: "issued-token", Username: input.Username, Role: domain.RoleCitizen}, nil
}

type stubThrottle struct {
	allowed bool
	err     error
	calls   int
}

func (s *stubThrottle) Allow(context.Context, string, string) (bool, error) {
	s.calls++
	return s.allowed, s.err
}

func newAuthContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterHandlerReturnsCreated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubThrottle{allowed: true})

	c, rec := newAuthContext(t, "/api/v1/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret-password"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "issued-token" || resp.Username != "alice" || resp.Role != domain.RoleCitizen {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRegisterHandlerValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubThrottle{allowed: true})

	cases := []struct {
		name string
		body string
	}{
		{"short username", `{"username":"ab","email":"a@example.com","password":"s3cret-password"}`},
		{"bad email", `{"username":"alice","email":"not-an-email","password":"s3cret-password"}`},
		{"short password", `{"username":"alice","email":"a@example.com","password":"short"}`},
		{"missing fields", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthContext(t, "/api/v1/auth/register", tc.body)
			err := h.Register(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("err = %v, want HTTP 400", err)
			}
		})
	}
}

func TestRegisterHandlerPropagatesDuplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrDuplicateUsername}, &stubThrottle{allowed: true})

	c, _ := newAuthContext(t, "/api/v1/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret-password"}`)
	if err := h.Register(c); err != domain.ErrDuplicateUsername {
		t.Fatalf("err = %v, want ErrDuplicateUsername", err)
	}
}

func TestLoginHandlerSuccess(t *testing.T) {
	svc := &stubAuthService{}
	throttle := &stubThrottle{allowed: true}
	h := NewAuthHandler(svc, throttle)

	c, rec := newAuthContext(t, "/api/v1/auth/login", `{"username":"alice","password":"s3cret-password"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if throttle.calls != 1 {
		t.Fatalf("throttle consulted %d times, want 1", throttle.calls)
	}
	if svc.lastLogin.Username != "alice" {
		t.Fatalf("login input not forwarded: %+v", svc.lastLogin)
	}
}

func TestLoginHandlerThrottled(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, &stubThrottle{allowed: false})

	c, _ := newAuthContext(t, "/api/v1/auth/login", `{"username":"alice","password":"s3cret-password"}`)
	if err := h.Login(c); err != domain.ErrTooManyAttempts {
		t.Fatalf("err = %v, want ErrTooManyAttempts", err)
	}
	if svc.lastLogin.Username != "" {
		t.Fatal("credentials must not be checked once throttled")
	}
}

func TestLoginHandlerThrottleFailsOpen(t *testing.T) {
	// A broken Redis must not lock everyone out of the service.
	h := NewAuthHandler(&stubAuthService{}, &stubThrottle{allowed: false, err: context.DeadlineExceeded})

	c, rec := newAuthContext(t, "/api/v1/auth/login", `{"username":"alice","password":"s3cret-password"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials}, &stubThrottle{allowed: true})

	c, _ := newAuthContext(t, "/api/v1/auth/login", `{"username":"alice","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}
