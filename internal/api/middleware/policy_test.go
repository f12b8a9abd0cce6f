package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
)

func testPolicy() *Policy {
	return NewPolicy(
		Rule{Prefix: "/api/v1/auth/", Public: true},
		Rule{Prefix: "/hello-world", Public: true},
		Rule{Method: http.MethodGet, Prefix: "/media/", Public: true},
		Rule{Prefix: "/api/v1/admin/", Roles: []string{domain.RoleAdmin}},
		Rule{Prefix: "/api/v1/issues", Roles: []string{domain.RoleCitizen}},
	)
}

func TestPolicyEvaluate(t *testing.T) {
	anonymous := (*domain.Principal)(nil)
	citizen := &domain.Principal{ID: "u1", Username: "alice", Role: domain.RoleCitizen}
	admin := &domain.Principal{ID: "u2", Username: "root", Role: domain.RoleAdmin}

	policy := testPolicy()

	cases := []struct {
		name      string
		principal *domain.Principal
		method    string
		path      string
		want      Decision
	}{
		{"public path anonymous", anonymous, http.MethodPost, "/api/v1/auth/login", Permit},
		{"public path authenticated", citizen, http.MethodPost, "/api/v1/auth/register", Permit},
		{"method scoped public", anonymous, http.MethodGet, "/media/photo.jpg", Permit},
		{"method scoped other verb", anonymous, http.MethodDelete, "/media/photo.jpg", Unauthenticated},
		{"admin path anonymous", anonymous, http.MethodGet, "/api/v1/admin/issues", Unauthenticated},
		{"admin path citizen", citizen, http.MethodGet, "/api/v1/admin/issues", Forbidden},
		{"admin path admin", admin, http.MethodGet, "/api/v1/admin/issues", Permit},
		{"citizen path citizen", citizen, http.MethodPost, "/api/v1/issues", Permit},
		{"citizen path admin", admin, http.MethodPost, "/api/v1/issues", Forbidden},
		{"unmatched path anonymous", anonymous, http.MethodGet, "/api/v1/users/me", Unauthenticated},
		{"unmatched path authenticated", citizen, http.MethodGet, "/api/v1/users/me", Permit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := policy.Evaluate(tc.principal, tc.method, tc.path)
			if got != tc.want {
				t.Fatalf("Evaluate(%s %s) = %v, want %v", tc.method, tc.path, got, tc.want)
			}
		})
	}
}

func TestPolicyFirstMatchWins(t *testing.T) {
	policy := NewPolicy(
		Rule{Prefix: "/api/v1/admin/", Roles: []string{domain.RoleAdmin}},
		Rule{Prefix: "/api/v1/", Public: true},
	)

	citizen := &domain.Principal{ID: "u1", Username: "alice", Role: domain.RoleCitizen}
	if got := policy.Evaluate(citizen, http.MethodGet, "/api/v1/admin/issues"); got != Forbidden {
		t.Fatalf("earlier rule must win, got %v", got)
	}
	if got := policy.Evaluate(nil, http.MethodGet, "/api/v1/other"); got != Permit {
		t.Fatalf("later public rule must apply elsewhere, got %v", got)
	}
}

func TestAuthorizeMapsDecisionsToStatus(t *testing.T) {
	policy := testPolicy()
	e := echo.New()

	run := func(principal *domain.Principal, method, path string) error {
		req := httptest.NewRequest(method, path, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if principal != nil {
			c.Set(principalKey, principal)
		}
		return Authorize(policy)(func(echo.Context) error { return nil })(c)
	}

	if err := run(nil, http.MethodGet, "/api/v1/admin/issues"); !isHTTPStatus(err, http.StatusUnauthorized) {
		t.Fatalf("anonymous on admin path: err = %v, want 401", err)
	}

	citizen := &domain.Principal{ID: "u1", Username: "alice", Role: domain.RoleCitizen}
	if err := run(citizen, http.MethodGet, "/api/v1/admin/issues"); !isHTTPStatus(err, http.StatusForbidden) {
		t.Fatalf("citizen on admin path: err = %v, want 403", err)
	}

	if err := run(citizen, http.MethodPost, "/api/v1/issues"); err != nil {
		t.Fatalf("citizen on citizen path: err = %v, want nil", err)
	}
}

func isHTTPStatus(err error, status int) bool {
	var httpErr *echo.HTTPError
	return errors.As(err, &httpErr) && httpErr.Code == status
}
