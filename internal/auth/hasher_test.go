package auth

import "testing"

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(4) // min cost keeps the test fast

	hash1, err := h.Hash("S3cret!23")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	hash2, err := h.Hash("S3cret!23")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if hash1 == hash2 {
		t.Fatalf("expected distinct hashes for same plaintext (fresh salts)")
	}
	if !h.Verify("S3cret!23", hash1) || !h.Verify("S3cret!23", hash2) {
		t.Fatalf("both hashes should verify against the original plaintext")
	}
}

func TestPasswordHasher_VerifyMismatch(t *testing.T) {
	h := NewPasswordHasher(4)

	hash, err := h.Hash("correct")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h.Verify("wrong", hash) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestPasswordHasher_MalformedHashFailsClosed(t *testing.T) {
	h := NewPasswordHasher(4)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must verify false")
	}
	if h.Verify("anything", "") {
		t.Fatalf("empty hash must verify false")
	}
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	h := NewPasswordHasher(99)

	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("hash with fallback cost failed: %v", err)
	}
	if !h.Verify("pw", hash) {
		t.Fatalf("hash should verify")
	}
}
