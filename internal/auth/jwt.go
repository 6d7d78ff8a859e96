package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tawsil-app/ops-dashboard/internal/models"
)

var jwtSecret = []byte("change-me-in-prod")

// SetSecret overrides the signing secret; called once at startup from config.
func SetSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(15 * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}

// TokenClaims parses an Authorization header value and returns the token claims.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	tokenStr := strings.TrimPrefix(authorization, "Bearer ")
	token, err := ParseToken(tokenStr)
	if err != nil || !token.Valid {
		return nil, nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, errors.New("unexpected claims type")
	}
	return token, claims, nil
}
