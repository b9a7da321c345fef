package session

import (
	"errors"

	"weddify/models"

	"github.com/golang-jwt/jwt"
)

// TokenClaims is the subset of JWT claims this layer reads for quick
// userId/role lookup. The token is issued and verified by the backend;
// it is only decoded here, never validated.
type TokenClaims struct {
	UserID string
	Email  string
	Role   models.Role
}

// DecodeToken extracts claims from a bearer token without verifying the
// signature. Expiry is not checked either; it is discovered reactively
// through a 401 response.
func DecodeToken(tokenString string) (*TokenClaims, error) {
	parser := jwt.Parser{}
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	out := &TokenClaims{UserID: sub}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if roleStr, ok := claims["role"].(string); ok {
		role, err := models.ParseRole(roleStr)
		if err != nil {
			return nil, err
		}
		out.Role = role
	}
	return out, nil
}
