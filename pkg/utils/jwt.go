package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies session tokens. It is constructed once at
// startup from the loaded configuration so a secret supplied via .env is
// honored; reading the environment at package init would run before the
// .env file is loaded.
type JWTManager struct {
	key []byte
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{key: []byte(secret)}
}

func (m *JWTManager) CreateToken(userID uuid.UUID, email string) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}
