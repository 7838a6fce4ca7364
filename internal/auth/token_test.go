package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tradebitsix/Drive-time/internal/core/domain"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Issue("alice", domain.RoleInstructor, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if claims.Role != string(domain.RoleInstructor) {
		t.Fatalf("expected role instructor, got %q", claims.Role)
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	// Craft a token already past its expiry with the codec's own key.
	claims := Claims{
		Role: string(domain.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Decode(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenCodec_ExpiryBoundaryExclusive(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	// A token inspected at its exact expiry instant is already expired.
	claims := Claims{
		Role: string(domain.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Decode(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired at the boundary, got %v", err)
	}
}

func TestTokenCodec_Deterministic(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	// Identical subject, role, expiry, and key produce byte-identical
	// tokens. Retry in case the two mints straddle a second boundary and
	// land on different expiries.
	for attempt := 0; attempt < 5; attempt++ {
		first, err := codec.Issue("alice", domain.RoleInstructor, time.Hour)
		if err != nil {
			t.Fatalf("issue failed: %v", err)
		}
		second, err := codec.Issue("alice", domain.RoleInstructor, time.Hour)
		if err != nil {
			t.Fatalf("issue failed: %v", err)
		}

		c1, err := codec.Decode(first)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		c2, err := codec.Decode(second)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if !c1.ExpiresAt.Time.Equal(c2.ExpiresAt.Time) {
			continue
		}

		if first != second {
			t.Fatalf("tokens with identical inputs differ:\n%s\n%s", first, second)
		}
		return
	}
	t.Fatalf("could not mint two tokens with the same expiry")
}

func TestTokenCodec_WrongKey(t *testing.T) {
	issuer := NewTokenCodec("secret-one", time.Hour)
	verifier := NewTokenCodec("secret-two", time.Hour)

	token, err := issuer.Issue("alice", domain.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Decode(token); err != domain.ErrTokenSignatureInvalid {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenCodec_Tampered(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Issue("alice", domain.RoleInstructor, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := codec.Decode(tampered); err != domain.ErrTokenSignatureInvalid {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenCodec_AlteredClaimsRejected(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Issue("alice", domain.RoleInstructor, time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Swap in a payload claiming admin but keep the original signature.
	forged := Claims{
		Role: string(domain.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forgedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, forged).SignedString([]byte("other"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forgedToken, ".")
	spliced := parts[0] + "." + forgedParts[1] + "." + parts[2]

	if _, err := codec.Decode(spliced); err != domain.ErrTokenSignatureInvalid {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := codec.Decode(token); err != domain.ErrTokenMalformed {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestTokenCodec_MissingSubjectRejected(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	claims := Claims{
		Role: string(domain.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Decode(token); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed for empty subject, got %v", err)
	}
}

func TestTokenCodec_DefaultTTL(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Issue("bob", domain.RoleAdmin, 0)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 55*time.Minute || remaining > 65*time.Minute {
		t.Fatalf("expected expiry around 1h from now, got %v", remaining)
	}
}
