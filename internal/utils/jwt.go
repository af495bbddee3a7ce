package utils

import (
	"errors"
	"time"

	"checkout/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "checkout-api"

// GenerateToken signs an HS256 access token for user that expires after ttl.
func GenerateToken(secret string, ttl time.Duration, user *models.User) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("JWT secret not configured")
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.ID,
		},
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		TokenVersion: user.TokenVersion,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ParseToken parses and validates a JWT token string.
func ParseToken(secret, tokenStr string) (*models.UserClaims, error) {
	if secret == "" {
		return nil, errors.New("JWT secret not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
