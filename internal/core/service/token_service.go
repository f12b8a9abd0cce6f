package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenService mints and verifies HS256-signed bearer tokens. The
// secret is fixed at construction and only ever read afterwards, so the
// service is safe for concurrent use across requests.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token asserting subject, valid from now until now+ttl.
func (s *JWTTokenService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify returns the token's subject when the signature checks out and the
// token has not expired. Malformed, tampered, expired, or wrongly signed
// tokens all yield ok=false; none of them are errors to the caller.
func (s *JWTTokenService) Verify(token string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
