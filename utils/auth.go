package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JwtKey verifies incoming tokens; loaded from JWT_SECRET at startup.
// It must match the key the identity provider signs with.
var JwtKey = []byte("your_secret_key")

// Claims carried by a storefront token. Email keys the customer's cart;
// Role gates the admin product routes.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

// GenerateJWT signs a token for an email/role pair. Production tokens
// come from the identity provider; this exists for tooling and tests.
func GenerateJWT(email, role string) (string, error) {
	claims := &Claims{
		Email: email,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtKey)
}
