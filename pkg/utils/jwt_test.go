package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestCreateAndValidateAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	userID := uuid.New()

	token, err := CreateAccessToken(userID)
	if err != nil {
		t.Fatalf("CreateAccessToken returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token to be non-empty")
	}

	claims, err := ValidateToken(token, TokenTypeAccess)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(claims.IssuedAt.Time) {
		t.Fatalf("expected expiry after issue time")
	}
}

func TestTokensSignedWithSecretSetAfterInit(t *testing.T) {
	// The secret arrives via .env after this package's init has run, so
	// signing must read the environment per call, not from a cached key.
	t.Setenv("JWT_SECRET", "late-loaded-secret")

	token, err := CreateAccessToken(uuid.New())
	if err != nil {
		t.Fatalf("CreateAccessToken returned error: %v", err)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("late-loaded-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token not signed with the current JWT_SECRET: %v", err)
	}
}

func TestValidateTokenRereadsSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateAccessToken(uuid.New())
	if err != nil {
		t.Fatalf("CreateAccessToken returned error: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := ValidateToken(token, TokenTypeAccess); err == nil {
		t.Fatalf("expected token signed under the old secret to be rejected")
	}
}

func TestValidateTokenEnforcesTokenType(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	userID := uuid.New()

	access, err := CreateAccessToken(userID)
	if err != nil {
		t.Fatalf("CreateAccessToken returned error: %v", err)
	}
	refresh, err := CreateRefreshToken(userID)
	if err != nil {
		t.Fatalf("CreateRefreshToken returned error: %v", err)
	}

	if _, err := ValidateToken(access, TokenTypeRefresh); err == nil {
		t.Fatalf("access token accepted as refresh token")
	}
	if _, err := ValidateToken(refresh, TokenTypeAccess); err == nil {
		t.Fatalf("refresh token accepted as access token")
	}
	if _, err := ValidateToken(refresh, TokenTypeRefresh); err != nil {
		t.Fatalf("refresh token rejected for its own type: %v", err)
	}
}

func TestValidateTokenPinsSigningMethod(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	claims := &Claims{
		UserID:    uuid.NewString(),
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing with none: %v", err)
	}

	if _, err := ValidateToken(token, TokenTypeAccess); err == nil {
		t.Fatalf("token with alg=none accepted")
	}
}

func TestRefreshTokensCarryUniqueJti(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	userID := uuid.New()

	first, err := CreateRefreshToken(userID)
	if err != nil {
		t.Fatalf("CreateRefreshToken returned error: %v", err)
	}
	second, err := CreateRefreshToken(userID)
	if err != nil {
		t.Fatalf("CreateRefreshToken returned error: %v", err)
	}

	firstClaims, err := ValidateToken(first, TokenTypeRefresh)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	secondClaims, err := ValidateToken(second, TokenTypeRefresh)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}

	if firstClaims.ID == "" || firstClaims.ID == secondClaims.ID {
		t.Fatalf("expected distinct jti per token, got %q and %q", firstClaims.ID, secondClaims.ID)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	if _, err := ValidateToken("not.a.token", TokenTypeAccess); err == nil {
		t.Fatalf("expected error for malformed token")
	}
	if _, err := ValidateToken("", TokenTypeAccess); err == nil {
		t.Fatalf("expected error for empty token")
	}
}
