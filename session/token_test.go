package session

import (
	"testing"

	"weddify/models"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestDecodeToken(t *testing.T) {
	t.Run("extracts sub, email and role", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{
			"sub":   "u-1",
			"email": "vendor@example.com",
			"role":  "VENDOR",
		})

		claims, err := DecodeToken(token)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)
		assert.Equal(t, "vendor@example.com", claims.Email)
		assert.Equal(t, models.RoleVendor, claims.Role)
	})

	t.Run("rejects a token without sub", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"email": "x@example.com"})
		_, err := DecodeToken(token)
		assert.Error(t, err)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "u-1", "role": "SUPERUSER"})
		_, err := DecodeToken(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := DecodeToken("not-a-jwt")
		assert.Error(t, err)
	})
}
