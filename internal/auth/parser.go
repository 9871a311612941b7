package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

// Parser validates access tokens issued by the authentication service
// and extracts the caller's identity. This service never issues tokens.
type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

type accessClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (p *Parser) Parse(tokenString string) (model.Principal, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return model.Principal{}, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return model.Principal{}, fmt.Errorf("invalid token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return model.Principal{}, fmt.Errorf("invalid user_id claim: %w", err)
	}
	role, err := model.ParseRole(claims.Role)
	if err != nil {
		return model.Principal{}, fmt.Errorf("invalid role claim: %w", err)
	}

	return model.Principal{UserID: userID, Role: role}, nil
}
