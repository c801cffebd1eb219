package auth

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	h, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h == "s3cret-pass" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !CheckPassword("s3cret-pass", h) {
		t.Fatalf("expected verify to succeed")
	}
	if CheckPassword("wrong-pass", h) {
		t.Fatalf("expected verify to fail for wrong password")
	}
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	h1, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct digests for repeated hashing")
	}
	if !CheckPassword("same-input", h1) || !CheckPassword("same-input", h2) {
		t.Fatalf("both digests must verify")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	// Corrupt stored data must yield false, never a panic.
	if CheckPassword("anything", "") {
		t.Fatalf("empty digest must not verify")
	}
	if CheckPassword("anything", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest must not verify")
	}
}
