package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// ParseJWT verifies an HS256 portal token and returns the employee subject.
func ParseJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if employeeID, ok := claims["employee_id"].(string); ok {
			return employeeID, nil
		}
		if subject, ok := claims["sub"].(string); ok {
			return subject, nil
		}
	}

	return "", errors.New("invalid token")
}
