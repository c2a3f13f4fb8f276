package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenTTL  = 60 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour

	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// jwtKey reads the secret per call; the process loads .env after package
// init, so capturing it in a package var would freeze an empty key.
func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

type Claims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func CreateAccessToken(userID uuid.UUID) (string, error) {
	return signToken(userID, TokenTypeAccess, accessTokenTTL)
}

// CreateRefreshToken issues a long-lived token with a unique jti so a single
// refresh token can be revoked on logout.
func CreateRefreshToken(userID uuid.UUID) (string, error) {
	return signToken(userID, TokenTypeRefresh, refreshTokenTTL)
}

func signToken(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	jti, err := GenerateSecureToken(16)
	if err != nil {
		return "", err
	}

	claims := &Claims{
		UserID:    userID.String(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// ValidateToken checks signature and expiry with the signing method pinned,
// and requires the expected token type so a short-lived access token cannot
// be replayed as a refresh token or vice versa.
func ValidateToken(tokenString, tokenType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.TokenType != tokenType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
