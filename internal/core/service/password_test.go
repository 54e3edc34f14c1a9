package service

import "testing"

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "password123" {
		t.Fatalf("hash equals plaintext")
	}

	if !hasher.Check("password123", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if hasher.Check("wrongpass", hash) {
		t.Fatalf("expected mismatched password to fail")
	}
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher()

	h1, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected salted hashes to differ")
	}
}
