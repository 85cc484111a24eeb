// Package shell decides what the application frame shows for a session:
// a spinner while auth resolves, a sign-in prompt, or the app itself.
package shell

import (
	"sync"

	"piwkina-shop/auth"
	"piwkina-shop/models"
)

type View string

const (
	ViewLoading View = "loading"
	ViewSignIn  View = "sign_in"
	ViewApp     View = "app"
)

// AuthClient is the part of a session the gate listens to.
type AuthClient interface {
	OnAuthStateChanged(fn func(auth.State)) func()
}

// Gate tracks auth state for one frame. It subscribes on construction and
// stops listening on Close.
type Gate struct {
	mu          sync.RWMutex
	state       auth.State
	unsubscribe func()
}

func NewGate(client AuthClient) *Gate {
	g := &Gate{state: auth.State{IsLoading: true}}
	g.unsubscribe = client.OnAuthStateChanged(g.update)
	return g
}

func (g *Gate) update(s auth.State) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
}

func (g *Gate) View() View {
	g.mu.RLock()
	defer g.mu.RUnlock()
	switch {
	case g.state.IsLoading:
		return ViewLoading
	case g.state.User == nil:
		return ViewSignIn
	default:
		return ViewApp
	}
}

func (g *Gate) User() *models.User {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.User
}

func (g *Gate) Close() {
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
}
