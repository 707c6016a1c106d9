// Package auth содержит выпуск и проверку JWT access-токенов.
package auth

import (
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"

	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// JWTClaims представляет claims для JWT токена
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService выпускает и проверяет подписанные HMAC access-токены
type JWTService struct {
	secretKey      []byte
	expirationTime time.Duration
}

// NewJWTService создает новый сервис JWT
func NewJWTService(secretKey string, expirationMinutes int) (*JWTService, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("jwt secret key is required")
	}
	if expirationMinutes <= 0 {
		expirationMinutes = 60
	}
	return &JWTService{
		secretKey:      []byte(secretKey),
		expirationTime: time.Duration(expirationMinutes) * time.Minute,
	}, nil
}

// GenerateToken выпускает подписанный access-токен для пользователя
func (s *JWTService) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expirationTime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		log.Printf("[JWTService] Ошибка подписи токена для пользователя ID=%d: %v", userID, err)
		return "", err
	}
	return signed, nil
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims.
// Любая невалидность токена возвращается как apperrors.ErrUnauthorized.
func (s *JWTService) ParseToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}
