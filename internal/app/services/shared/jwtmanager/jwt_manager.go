package jwtmanager

import (
	"fmt"
	"medibook-service/internal/app/config"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type JWTManager struct {
	secret        string
	expTimeInHour int
}

func NewJWTManager(internalConfig *config.InternalConfig) *JWTManager {
	return &JWTManager{
		secret:        internalConfig.JWT.Secret,
		expTimeInHour: internalConfig.JWT.ExpTimeInHour,
	}
}

func (m *JWTManager) Generate(adminID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": adminID,
		"exp":      time.Now().Add(time.Duration(m.expTimeInHour) * time.Hour).Unix(),
	})
	return token.SignedString([]byte(m.secret))
}

func (m *JWTManager) Parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	adminID, _ := claims["admin_id"].(string)
	if adminID == "" {
		return "", fmt.Errorf("token missing admin_id claim")
	}
	return adminID, nil
}
