package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/HexaCluster/pg-summarize/internal/config"
	"github.com/HexaCluster/pg-summarize/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
)

// ExtractToken pulls the bearer token out of the Authorization header.
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		logger.Debug(logger.SERVICE, "No Authorization header found")
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		logger.Warn(logger.SERVICE, "Malformed Authorization header")
		return ""
	}

	return parts[1]
}

// ValidateToken checks an HMAC-signed JWT against the configured secret.
func ValidateToken(tokenString string) bool {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return config.GetJWTSecret(), nil
	})

	if err != nil {
		logger.Warn(logger.SERVICE, "Failed to parse token: %v", err)
		return false
	}

	return token.Valid
}

// Enabled reports whether bearer auth is configured at all.
func Enabled() bool {
	return len(config.GetJWTSecret()) > 0
}
