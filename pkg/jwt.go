package pkg

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Email  string `json:"email,omitempty"`
	Kind   string `json:"kind"`
}

func GenerateToken(userID, email, secret string, expirationMinutes int) (string, error) {
	return signToken(Claims{
		RegisteredClaims: registered(userID, time.Duration(expirationMinutes)*time.Minute),
		UserID:           userID,
		Email:            email,
		Kind:             tokenKindAccess,
	}, secret)
}

func GenerateRefreshToken(userID, secret string, expirationDays int) (string, error) {
	return signToken(Claims{
		RegisteredClaims: registered(userID, time.Duration(expirationDays)*24*time.Hour),
		UserID:           userID,
		Kind:             tokenKindRefresh,
	}, secret)
}

// ValidateToken parses an access token.
func ValidateToken(token, secret string) (*Claims, error) {
	return parseToken(token, secret, tokenKindAccess)
}

func ValidateRefreshToken(token, secret string) (*Claims, error) {
	return parseToken(token, secret, tokenKindRefresh)
}

func registered(subject string, ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		// unique per token so two tokens issued within the same second differ
		ID: fmt.Sprintf("%d", now.UnixNano()),
	}
}

func signToken(claims Claims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseToken(tokenString, secret, kind string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Kind != kind || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
