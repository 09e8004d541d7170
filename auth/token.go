// Package auth provides identity tokens, the permission-grant
// authorizer, and avatar resolution. The pipeline only sees the
// contract interfaces; this package is the default implementation.
package auth

import (
	"fmt"
	"time"

	"chat-pipeline/domain"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims defines the data stored inside an identity JWT.
// Permissions carried here are global grants; room-level access is the
// authorizer's concern.
type IdentityClaims struct {
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name,omitempty"`
	Locale      string   `json:"locale,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and validates identity tokens with an HMAC key.
type TokenService struct {
	key      []byte
	lifetime time.Duration
}

func NewTokenService(key []byte, lifetime time.Duration) *TokenService {
	return &TokenService{key: key, lifetime: lifetime}
}

// Generate creates a signed JWT for a user.
func (s *TokenService) Generate(user domain.ActingUser, permissions []string) (string, error) {
	now := time.Now()
	claims := &IdentityClaims{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Locale:      user.Locale,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "chat-pipeline",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Validate parses and checks the signature and expiration of a token,
// returning the acting user it identifies together with the global
// permission grants it carries.
func (s *TokenService) Validate(tokenString string) (domain.ActingUser, []string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		return domain.ActingUser{}, nil, err
	}
	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || !token.Valid {
		return domain.ActingUser{}, nil, fmt.Errorf("invalid token claims")
	}
	user := domain.ActingUser{
		ID:          claims.Subject,
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
		Locale:      claims.Locale,
	}
	return user, claims.Permissions, nil
}
