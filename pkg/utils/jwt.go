package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenParser verifies HS256 tokens issued by the account service.
type TokenParser struct {
	key []byte
}

func NewTokenParser(secret string) *TokenParser {
	return &TokenParser{key: []byte(secret)}
}

func (p *TokenParser) CreateToken(subject string, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.key)
}

func (p *TokenParser) ParseToken(tokenString string) (*Claims, error) {
	if len(p.key) == 0 {
		return nil, ErrUnauthorized
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return p.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Join(ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, errors.Join(ErrUnauthorized, errors.New("token is not valid"))
	}
	if claims.Subject == "" {
		return nil, errors.Join(ErrUnauthorized, errors.New("token has no subject"))
	}

	return claims, nil
}
