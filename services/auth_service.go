package services

import (
	"context"
	"fmt"
	"time"

	"github.com/RedEye75/SmartZone-Server/repositories"
	"github.com/golang-jwt/jwt/v5"
)

type IAuthService interface {
	IssueToken(ctx context.Context, email string) (string, error)
	CreateToken(email string) (string, error)
	GetEmailFromToken(tokenString string) (string, error)
}

type AuthService struct {
	repository repositories.IUserRepository
	secret     []byte
	tokenTTL   time.Duration
}

func NewAuthService(repository repositories.IUserRepository, secret string, tokenTTL time.Duration) IAuthService {
	return &AuthService{
		repository: repository,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
	}
}

// IssueToken signs a fresh token for email, but only when a matching user
// exists. Unknown identities get repositories.ErrUserNotFound and no token.
func (s *AuthService) IssueToken(ctx context.Context, email string) (string, error) {
	if _, err := s.repository.FindByEmail(ctx, email); err != nil {
		return "", err
	}
	return s.CreateToken(email)
}

func (s *AuthService) CreateToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.secret)
}

// GetEmailFromToken verifies signature and expiry and returns the email
// claim.
func (s *AuthService) GetEmailFromToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return email, nil
}
