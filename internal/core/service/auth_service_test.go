package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cityconnect/issue-reporting/internal/core/domain"
	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

func newAuthService(repo *stubUserRepo) *AuthService {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	tokens := NewJWTTokenService("test-secret", time.Hour)
	return NewAuthService(repo, hasher, tokens, testLogger())
}

func TestRegisterCreatesCitizenAndLogsIn(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatal("Register must return a token")
	}
	if result.Role != domain.RoleCitizen {
		t.Fatalf("role = %q, want %q", result.Role, domain.RoleCitizen)
	}

	stored, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.PasswordHash == "s3cret-password" {
		t.Fatal("password stored in plaintext")
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	input := ports.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "s3cret-password"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	input.Email = "other@example.com"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("err = %v, want ErrDuplicateUsername", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "s3cret-password",
	}); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Email: "alice@example.com", Password: "s3cret-password",
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "s3cret-password",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	result, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "s3cret-password"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if subject, ok := svc.tokens.Verify(result.Token); !ok || subject != "alice" {
		t.Fatalf("token does not verify to alice: subject=%q ok=%v", subject, ok)
	}
}

func TestLoginUniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "s3cret-password",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Unknown username and wrong password must be indistinguishable.
	_, unknownErr := svc.Login(context.Background(), ports.LoginInput{Username: "nobody", Password: "whatever"})
	_, wrongErr := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "wrong-password"})

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown username err = %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", wrongErr)
	}
}
