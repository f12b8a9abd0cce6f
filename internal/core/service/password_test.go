package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !h.Verify("s3cret-password", hash) {
		t.Fatal("Verify rejected the correct password")
	}
	if h.Verify("wrong-password", hash) {
		t.Fatal("Verify accepted a wrong password")
	}
}

func TestBcryptHasherSaltsEachHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("first Hash: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("second Hash: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password must differ")
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatal("both hashes must verify against the password")
	}
}

func TestBcryptHasherMalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash must not verify")
	}
	if h.Verify("anything", "") {
		t.Fatal("empty hash must not verify")
	}
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	h := NewBcryptHasher(99)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want default %d", h.cost, bcrypt.DefaultCost)
	}
}
