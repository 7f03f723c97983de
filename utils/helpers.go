package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

func ExtractToken(r *http.Request) string {
	tokenString := r.Header.Get("Authorization")

	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	return tokenString
}

func GetClaims(r *http.Request) jwt.MapClaims {
	claims, _ := r.Context().Value("claims").(jwt.MapClaims)
	return claims
}

func GetUserEmail(r *http.Request) (string, error) {
	claims := GetClaims(r)
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errors.New("user email not found")
	}
	return email, nil
}

func GetUserRole(r *http.Request) (string, error) {
	claims := GetClaims(r)
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", errors.New("user role not found")
	}
	return role, nil
}
