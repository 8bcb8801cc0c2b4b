// pkg/token/token.go
package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "lelo-api"

// Claims carries the user id and role. The role claim is what the admin gate checks.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

var (
	ErrEmptyToken   = errors.New("token string is empty")
	ErrEmptySecret  = errors.New("jwt secret key is empty")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("token is invalid")
)

// ValidateJWT parses and validates an access token and returns its claims.
func ValidateJWT(tokenString string, secretKey string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}
	if secretKey == "" {
		return nil, ErrEmptySecret
	}

	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secretKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id claim is missing", ErrInvalidToken)
	}
	return claims, nil
}

// GenerateJWT signs an HS256 access token for the user.
func GenerateJWT(userID uint, role string, secretKey string, expiryMinutes int) (string, error) {
	if secretKey == "" {
		return "", ErrEmptySecret
	}
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secretKey))
}

// GenerateRefreshToken returns an opaque random token. It is stored server side and looked up on
// refresh, so it carries no claims.
func GenerateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashRefreshToken is the keyed digest stored in place of the refresh token, so a leaked table
// cannot be replayed.
func HashRefreshToken(tokenString, secretKey string) (string, error) {
	if secretKey == "" {
		return "", ErrEmptySecret
	}
	sum, err := jwt.SigningMethodHS256.Sign(tokenString, []byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("hash refresh token: %w", err)
	}
	return hex.EncodeToString(sum), nil
}
