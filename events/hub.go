// Package events fans collection changes out to live admin screens.
package events

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"piwkina-shop/store"
)

// Hub delivers every published change to every subscriber. A subscriber that
// falls behind loses changes rather than blocking writers.
type Hub struct {
	mu       sync.RWMutex
	subs     map[int]chan store.Change
	nextID   int
	upgrader websocket.Upgrader
}

// NewHub accepts websocket connections from the page's own host and from
// allowedOrigins, the same list CORS uses. "*" allows any origin.
func NewHub(allowedOrigins ...string) *Hub {
	h := &Hub{subs: make(map[int]chan store.Change)}
	h.upgrader.CheckOrigin = originChecker(allowedOrigins)
	return h
}

func (h *Hub) Publish(c store.Change) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.subs {
		select {
		case ch <- c:
		default:
			log.Warn().Int("subscriber", id).Str("collection", c.Collection).Msg("dropping change for slow subscriber")
		}
	}
}

// Subscribe returns a channel of changes and the function that closes it.
func (h *Hub) Subscribe(buffer int) (<-chan store.Change, func()) {
	ch := make(chan store.Change, buffer)
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
