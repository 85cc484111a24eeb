// Package auth owns user accounts, signed session tokens and the per-request
// Session that the rest of the storefront asks "who is signed in?".
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"piwkina-shop/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotSignedIn        = errors.New("not signed in")
)

// TokenTTL is how long a login stays valid.
const TokenTTL = 24 * time.Hour

type Service struct {
	db         *gorm.DB
	secret     []byte
	adminEmail string
	cost       int
	now        func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewService(db *gorm.DB, secret []byte, adminEmail string) *Service {
	return &Service{
		db:         db,
		secret:     secret,
		adminEmail: strings.ToLower(adminEmail),
		cost:       bcrypt.DefaultCost,
		now:        time.Now,
		revoked:    make(map[string]time.Time),
	}
}

// AdminEmail is the address the UI treats as the administrator.
func (s *Service) AdminEmail() string { return s.adminEmail }

// Register creates a customer account. The configured admin address is
// reserved for Seed and cannot be signed up for.
func (s *Service) Register(ctx context.Context, email, password, displayName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.adminEmail != "" && email == s.adminEmail {
		return nil, ErrEmailTaken
	}
	return s.create(ctx, email, password, displayName, models.RoleCustomer)
}

func (s *Service) create(ctx context.Context, email, password, displayName string, role models.UserRole) (*models.User, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Login checks the password and returns the user with a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.IssueToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Seed makes sure the admin account exists. An empty password skips seeding.
func (s *Service) Seed(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}
	_, err := s.create(ctx, email, password, "Administrator", models.RoleAdmin)
	if errors.Is(err, ErrEmailTaken) {
		return nil
	}
	if err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("seeded admin account")
	return nil
}

func (s *Service) UserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotSignedIn
		}
		return nil, fmt.Errorf("load user %s: %w", id, err)
	}
	return &user, nil
}

// NewSession starts an unresolved session; call Restore or Login next.
func (s *Service) NewSession() *Session {
	return &Session{
		svc:       s,
		state:     State{IsLoading: true},
		listeners: make(map[int]func(State)),
	}
}

// IsAdminAffordance reports whether the UI should show the admin entry point.
// It grants nothing; admin routes check the role claim.
func IsAdminAffordance(user *models.User, adminEmail, path string) bool {
	if strings.HasPrefix(path, "/admin") {
		return true
	}
	return user != nil && strings.EqualFold(user.Email, adminEmail)
}
