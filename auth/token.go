package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"piwkina-shop/models"
)

type Claims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken creates a signed JWT for user
func (s *Service) IssueToken(user *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates signature, expiry and revocation.
func (s *Service) ParseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if s.isRevoked(claims.ID) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// revoke blocks a token id until it would have expired anyway. The set lives
// in process memory and does not survive a restart.
func (s *Service) revoke(c *Claims) {
	if c == nil || c.ID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, id)
		}
	}
	exp := now.Add(TokenTTL)
	if c.ExpiresAt != nil {
		exp = c.ExpiresAt.Time
	}
	s.revoked[c.ID] = exp
}

func (s *Service) isRevoked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[id]
	return ok
}
