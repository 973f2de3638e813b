// Package token emite e valida os JWTs de acesso da API.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer vai no claim "iss"; tokens de outro emissor são recusados.
const Issuer = "Gestao-API"

type TokenService interface {
	GenerateToken(userID string, userRole string) (string, error)
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// CustomClaims identifica o operador autenticado e seu papel ("admin" ou "user").
type CustomClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service assina com HS256 usando JWT_SECRET_KEY; a validade vem de JWT_EXPIRY_MIN.
type Service struct {
	secretKey []byte
	expiry    time.Duration
	parser    *jwt.Parser
}

func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(Issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

// GenerateToken emite o token de acesso devolvido por POST /v1/login.
func (s *Service) GenerateToken(userID string, userRole string) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		UserID: userID,
		Role:   userRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token de acesso: %w", err)
	}
	return signed, nil
}

// ValidateToken confere assinatura, algoritmo, emissor e expiração.
// O erro preserva as sentinelas do jwt (ex.: jwt.ErrTokenExpired).
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	parsed, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token de acesso recusado: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("token de acesso inválido")
	}
	return claims, nil
}
