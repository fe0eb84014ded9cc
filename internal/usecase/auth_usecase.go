package usecase

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// IAuthUseCase is the single-operator authentication gate. One fixed
// credential pair, a signed token, no session store.
type IAuthUseCase interface {
	Login(email, password string) (string, error)
	Validate(token string) (string, error)
}

type AuthUseCase struct {
	operatorEmail    string
	operatorPassword string
	secret           []byte
	tokenTTL         time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(operatorEmail, operatorPassword, secret string, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		operatorEmail:    operatorEmail,
		operatorPassword: operatorPassword,
		secret:           []byte(secret),
		tokenTTL:         tokenTTL,
	}
}

// Login checks the fixed operator credentials and returns a signed JWT.
func (u *AuthUseCase) Login(email, password string) (string, error) {
	if email != u.operatorEmail || password != u.operatorPassword {
		return "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(u.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}

// Validate verifies the token signature and expiry and returns the operator
// e-mail it was issued for.
func (u *AuthUseCase) Validate(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
