// Package checkout turns a cart into a pending order and its line items.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"piwkina-shop/ids"
	"piwkina-shop/models"
	"piwkina-shop/money"
	"piwkina-shop/store"
)

var (
	ErrMissingInformation = errors.New("missing required customer information")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSubmitting         = errors.New("order already being placed")
)

// CustomerInfo is the checkout form.
type CustomerInfo struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email"`
	Address string `json:"address" validate:"required"`
	Notes   string `json:"notes"`
}

// Identity resolves the signed-in user that will own the order.
type Identity interface {
	Me(ctx context.Context) (*models.User, error)
}

// Cart is what checkout needs from a cart store.
type Cart interface {
	Key() string
	Items() []models.CartItem
	Clear() error
}

type Service struct {
	backend  store.Backend
	ids      *ids.Generator
	validate *validator.Validate

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewService(backend store.Backend, gen *ids.Generator) *Service {
	return &Service{
		backend:  backend,
		ids:      gen,
		validate: validator.New(),
		inFlight: make(map[string]struct{}),
	}
}

// Validate checks the form and the cart without touching the backend.
func (s *Service) Validate(info CustomerInfo, items []models.CartItem) error {
	if err := s.validate.Struct(info); err != nil {
		return ErrMissingInformation
	}
	if len(items) == 0 {
		return ErrEmptyCart
	}
	return nil
}

// Submit places the order. The order row is written before its items, one
// item per cart line in cart order. The cart is cleared only when every write
// succeeded.
func (s *Service) Submit(ctx context.Context, me Identity, cart Cart, info CustomerInfo) (models.Order, error) {
	items := cart.Items()
	if err := s.Validate(info, items); err != nil {
		return models.Order{}, err
	}
	if !s.begin(cart.Key()) {
		return models.Order{}, ErrSubmitting
	}
	defer s.end(cart.Key())

	orderID := s.ids.Next("order")
	user, err := me.Me(ctx)
	if err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("failed to resolve user for order")
		return models.Order{}, fmt.Errorf("resolve user: %w", err)
	}

	order := s.buildOrder(orderID, user.ID, info, items)
	if t, ok := s.backend.(store.Transactor); ok {
		err = t.Transaction(ctx, func(tx store.Backend) error {
			return writeOrder(ctx, tx, order)
		})
	} else {
		err = writeOrder(ctx, s.backend, order)
	}
	if err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("failed to place order")
		return models.Order{}, fmt.Errorf("place order %s: %w", orderID, err)
	}

	if err := cart.Clear(); err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("order placed but cart not cleared")
	}
	log.Info().Str("order_id", orderID).Int("items", len(order.Items)).Float64("total", order.TotalAmount).Msg("order placed")
	return order, nil
}

func (s *Service) buildOrder(orderID, userID string, info CustomerInfo, items []models.CartItem) models.Order {
	totals := make([]float64, len(items))
	lines := make([]models.OrderItem, len(items))
	for i, it := range items {
		totals[i] = it.TotalPrice
		lines[i] = models.OrderItem{
			ID:         s.ids.Random("item"),
			OrderID:    orderID,
			ProductID:  it.ProductID,
			Quantity:   1,
			WeightKg:   it.WeightKg,
			UnitPrice:  it.PricePerKg,
			TotalPrice: it.TotalPrice,
			UserID:     userID,
		}
	}
	return models.Order{
		ID:              orderID,
		CustomerName:    info.Name,
		CustomerPhone:   info.Phone,
		CustomerEmail:   info.Email,
		CustomerAddress: info.Address,
		TotalAmount:     money.Sum(money.Sum(totals...), money.DeliveryFee),
		Status:          models.StatusPending,
		Notes:           info.Notes,
		UserID:          userID,
		Items:           lines,
	}
}

func writeOrder(ctx context.Context, b store.Backend, order models.Order) error {
	if err := b.Collection(store.Orders).Create(ctx, order.Row()); err != nil {
		return err
	}
	items := b.Collection(store.OrderItems)
	for _, it := range order.Items {
		if err := items.Create(ctx, it.Row()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) begin(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *Service) end(key string) {
	s.mu.Lock()
	delete(s.inFlight, key)
	s.mu.Unlock()
}
