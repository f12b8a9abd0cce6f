package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
)

// Decision is the outcome of evaluating the policy for one request.
type Decision int

const (
	Permit Decision = iota
	Unauthenticated
	Forbidden
)

// Rule pairs a path prefix (optionally method-scoped) with an access
// requirement. Rules are evaluated in registration order; first match wins.
type Rule struct {
	// Method restricts the rule to one HTTP method when non-empty.
	Method string
	// Prefix matches the request path by prefix.
	Prefix string
	// Public permits the request regardless of principal.
	Public bool
	// Roles, when non-empty, lists the roles allowed through. An empty
	// list on a non-public rule means any authenticated principal.
	Roles []string
}

// Policy is an ordered rule set. It is pure: evaluating the same
// (principal, method, path) always yields the same decision.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// Evaluate walks the rules in order and applies the first match. A path
// matching no rule requires an authenticated principal.
func (p *Policy) Evaluate(principal *domain.Principal, method, path string) Decision {
	for _, r := range p.rules {
		if r.Method != "" && r.Method != method {
			continue
		}
		if !strings.HasPrefix(path, r.Prefix) {
			continue
		}
		return r.decide(principal)
	}
	if principal == nil {
		return Unauthenticated
	}
	return Permit
}

func (r Rule) decide(principal *domain.Principal) Decision {
	if r.Public {
		return Permit
	}
	if principal == nil {
		return Unauthenticated
	}
	if len(r.Roles) == 0 {
		return Permit
	}
	for _, role := range r.Roles {
		if principal.Role == role {
			return Permit
		}
	}
	return Forbidden
}

// Authorize enforces the policy against the principal resolved by
// Authenticate. Absent principal maps to 401, insufficient role to 403.
func Authorize(policy *Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch policy.Evaluate(CurrentPrincipal(c), c.Request().Method, c.Request().URL.Path) {
			case Unauthenticated:
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
			case Forbidden:
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}
