package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avdeevs/exercisebox/internal/common"
)

// AccessClaims is the payload of a short-lived access token.
type AccessClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// RefreshClaims is the payload of a long-lived refresh token. It carries only
// the user id; everything else about the session lives in the database row.
type RefreshClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an access token for the given identity with
// expiry now+validity. Access and refresh tokens are signed with independent
// secrets so that compromise of one class cannot forge the other.
func GenerateAccessToken(userID, username string, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()
	claims := &AccessClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// GenerateRefreshToken signs a refresh token for the given user with expiry
// now+validity. The returned string is both the client credential and the
// value persisted in refresh_tokens.token.
func GenerateRefreshToken(userID string, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()
	claims := &RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseAccessToken verifies signature and expiry and returns the claims.
// Returns common.ErrTokenExpired for an expired token and
// common.ErrInvalidToken for anything else (bad signature, malformed,
// wrong algorithm). The signature is checked before any claim is trusted,
// and expiry is re-checked here against wall-clock seconds even though the
// jwt library enforces it during parsing.
func ParseAccessToken(tokenString string, secret []byte) (*AccessClaims, error) {
	claims := &AccessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Unix() < time.Now().Unix() {
		return nil, common.ErrTokenExpired
	}

	return claims, nil
}
