package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/medsbuddy/medsbuddy/internal/apperr"
	"github.com/medsbuddy/medsbuddy/internal/models"
)

// TokenTTL is how long issued credentials stay valid.
const TokenTTL = 7 * 24 * time.Hour

// Identity is the decoded subject of a verified credential. It is the only
// thing handlers learn about the caller.
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

// Claims is the JWT payload: registered claims plus the identity fields the
// access policy needs.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// GenerateToken issues an HS256 credential for the given user, valid for TokenTTL.
func GenerateToken(user *models.User, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the embedded identity.
// Every failure surfaces as apperr.ErrUnauthorized; callers never learn why a
// credential was rejected.
func ParseToken(tokenString string, secret []byte) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, apperr.ErrUnauthorized
	}

	return Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
