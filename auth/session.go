package auth

import (
	"context"
	"sync"

	"piwkina-shop/models"
)

// State is what auth-state listeners receive.
type State struct {
	User      *models.User `json:"user"`
	IsLoading bool         `json:"isLoading"`
}

// Session is one caller's view of authentication. Listeners registered with
// OnAuthStateChanged see the current state at once and then every change.
type Session struct {
	svc *Service

	mu        sync.Mutex
	state     State
	token     string
	claims    *Claims
	listeners map[int]func(State)
	nextID    int
}

// OnAuthStateChanged registers fn and returns the function that removes it.
func (s *Session) OnAuthStateChanged(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	current := s.state
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) Claims() *Claims {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.claims
}

// Restore resolves the session from a bearer token. Any failure leaves the
// session signed out.
func (s *Session) Restore(ctx context.Context, token string) error {
	if token == "" {
		s.set(State{}, "", nil)
		return ErrNotSignedIn
	}
	claims, err := s.svc.ParseToken(token)
	if err != nil {
		s.set(State{}, "", nil)
		return err
	}
	user, err := s.svc.UserByID(ctx, claims.UserID)
	if err != nil {
		s.set(State{}, "", nil)
		return err
	}
	s.set(State{User: user}, token, claims)
	return nil
}

// Login signs in and returns the new token.
func (s *Session) Login(ctx context.Context, email, password string) (string, error) {
	user, token, err := s.svc.Login(ctx, email, password)
	if err != nil {
		return "", err
	}
	claims, err := s.svc.ParseToken(token)
	if err != nil {
		return "", err
	}
	s.set(State{User: user}, token, claims)
	return token, nil
}

// Logout revokes the current token and signs the session out.
func (s *Session) Logout(ctx context.Context) error {
	s.svc.revoke(s.Claims())
	s.set(State{}, "", nil)
	return nil
}

// Me reloads the signed-in user.
func (s *Session) Me(ctx context.Context) (*models.User, error) {
	claims := s.Claims()
	if claims == nil {
		return nil, ErrNotSignedIn
	}
	return s.svc.UserByID(ctx, claims.UserID)
}

func (s *Session) set(state State, token string, claims *Claims) {
	s.mu.Lock()
	s.state = state
	s.token = token
	s.claims = claims
	listeners := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}
