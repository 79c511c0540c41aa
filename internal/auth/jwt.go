package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The signing key comes from JWT_SECRET, read at call time so a value that
// godotenv loads in main is honored. The fallback keeps local demo runs
// working without a .env file.
func secretKey() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("A_VERY_SECURE_SECRET_KEY_REPLACE_LATER")
}

// AdminRole is the only role the storefront issues tokens for.
const AdminRole = "administrator"

// GenerateAdminToken creates a JWT for an authenticated admin.
func GenerateAdminToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": AdminRole,
		"exp":  time.Now().Add(time.Hour * 72).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateAdminToken parses a token string and returns the admin username.
// Any token without the admin role is rejected.
func ValidateAdminToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	role, _ := claims["role"].(string)
	if role != AdminRole {
		return "", errors.New("token does not carry the admin role")
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", errors.New("invalid subject claim")
	}
	return username, nil
}
