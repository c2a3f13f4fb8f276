package utils

import "testing"

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatalf("hash equals plaintext")
	}

	if err := ComparePasswords(hash, "hunter2hunter2"); err != nil {
		t.Fatalf("expected matching password to verify: %v", err)
	}
	if err := ComparePasswords(hash, "wrong-password"); err == nil {
		t.Fatalf("expected mismatch to fail")
	}
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken returned error: %v", err)
	}
	if len(token) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(token))
	}

	other, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken returned error: %v", err)
	}
	if token == other {
		t.Fatalf("expected distinct tokens")
	}

	if _, err := GenerateSecureToken(0); err == nil {
		t.Fatalf("expected error for non-positive length")
	}
}
