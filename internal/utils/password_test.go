package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("senha123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "senha123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "senha123") {
		t.Error("expected password to verify against its own hash")
	}
	if CheckPassword(hash, "senha124") {
		t.Error("expected wrong password to be rejected")
	}
}

func TestHashPassword_CostCompatibleWithLegacyRows(t *testing.T) {
	hash, err := HashPassword("senha123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	// bcrypt embeds the cost in the hash prefix
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Errorf("expected cost-10 bcrypt hash, got prefix %s", hash[:7])
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "senha123") {
		t.Error("expected invalid hash to be rejected")
	}
}
