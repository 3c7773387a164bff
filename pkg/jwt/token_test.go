package jwtPkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	token, expired, err := Sign(map[string]interface{}{
		"id":       "01J0USER",
		"username": "maria",
		"email":    "maria@example.com",
		"role":     "admin",
	}, time.Hour)
	require.NoError(t, err)
	require.Greater(t, expired, time.Now().Unix())

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, "01J0USER", claims["id"])
	require.Equal(t, "maria", claims["username"])
	require.Equal(t, "admin", claims["role"])
	require.Equal(t, true, claims["authorization"])
}

func TestSignMissingSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "")

	_, _, err := Sign(map[string]interface{}{"id": "x"}, time.Minute)
	require.Error(t, err)
}
