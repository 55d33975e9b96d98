package helpers

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

type SignedDetails struct {
	Email    string
	Username string
	Uid      string
	Role     string
	jwt.StandardClaims
}

func secretKey() []byte {
	key := os.Getenv("SECRET_KEY")
	if key == "" {
		// simulated auth only; nothing real is protected by this key
		key = "canteen-dev-secret"
	}
	return []byte(key)
}

func GenerateToken(email, username, uid, role string) (string, error) {
	claims := SignedDetails{
		Email:    email,
		Username: username,
		Uid:      uid,
		Role:     role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey())
}

func ValidateToken(signedToken string) (*SignedDetails, string) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			return secretKey(), nil
		},
	)
	if err != nil {
		return nil, err.Error()
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok {
		return nil, fmt.Sprintf("the token is invalid")
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, fmt.Sprintf("token is expired")
	}
	return claims, ""
}
