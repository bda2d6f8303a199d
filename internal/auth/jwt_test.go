package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, err := tm.Issue("user_1", "alice@example.com", "owner")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user_1" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != "owner" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("secret", -time.Minute)

	token, err := tm.Issue("user_1", "alice@example.com", "owner")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := tm.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Issue("user_1", "a@example.com", "tenant")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokenManager("secret-b", time.Hour).Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_RejectsUnsignedAlg(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "user_1"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tm.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	if _, err := tm.Verify("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
