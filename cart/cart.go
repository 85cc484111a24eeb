// Package cart holds the shopper's cart. The whole list is written to Storage
// after every change and read back when a cart is first opened.
package cart

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"piwkina-shop/ids"
	"piwkina-shop/models"
	"piwkina-shop/money"
)

// StorageKey is the slot the cart is persisted under.
const StorageKey = "piwkina-cart"

type Store struct {
	mu      sync.Mutex
	key     string
	storage Storage
	ids     *ids.Generator
	items   []models.CartItem
}

// Load opens the cart saved under key. A missing or unreadable value gives an
// empty cart.
func Load(storage Storage, key string, gen *ids.Generator) *Store {
	s := &Store{key: key, storage: storage, ids: gen, items: []models.CartItem{}}

	raw, ok, err := storage.Get(key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to read saved cart")
		return s
	}
	if !ok {
		return s
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding malformed saved cart")
		return s
	}
	if items != nil {
		s.items = items
	}
	return s
}

func (s *Store) Key() string { return s.key }

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Add appends item under a fresh id. Lines for the same product are kept
// separate.
func (s *Store) Add(item models.CartItem) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.ids.Random("cart")
	next := make([]models.CartItem, len(s.items), len(s.items)+1)
	copy(next, s.items)
	if err := s.replace(append(next, item)); err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

// Remove drops the line with id; unknown ids change nothing.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return s.replace(kept)
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replace([]models.CartItem{})
}

// replace saves items and only then makes them the cart's contents, so a
// failed save leaves the cart as it was.
func (s *Store) replace(items []models.CartItem) error {
	if err := s.persist(items); err != nil {
		return err
	}
	s.items = items
	return nil
}

// Count is the number of lines, not the weight.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := make([]float64, len(s.items))
	for i, it := range s.items {
		totals[i] = it.TotalPrice
	}
	return money.Sum(totals...)
}

func (s *Store) persist(items []models.CartItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.storage.Set(s.key, string(payload)); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("failed to save cart")
		return err
	}
	return nil
}

// Registry hands out one Store per user, all saved in the same Storage.
type Registry struct {
	mu      sync.Mutex
	storage Storage
	ids     *ids.Generator
	carts   map[string]*Store
}

func NewRegistry(storage Storage, gen *ids.Generator) *Registry {
	return &Registry{storage: storage, ids: gen, carts: make(map[string]*Store)}
}

func (r *Registry) For(userID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.carts[userID]; ok {
		return s
	}
	s := Load(r.storage, StorageKey+":"+userID, r.ids)
	r.carts[userID] = s
	return s
}
