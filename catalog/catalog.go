// Package catalog serves the public product views: the home page's featured
// list and the full products listing with search and category filtering.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"piwkina-shop/models"
	"piwkina-shop/money"
	"piwkina-shop/store"
)

// FeaturedLimit is how many products the home page shows.
const FeaturedLimit = 3

// CategoryAll disables category filtering.
const CategoryAll = "all"

type Service struct {
	products store.Collection
}

func NewService(backend store.Backend) *Service {
	return &Service{products: backend.Collection(store.Products)}
}

var activeOnly = map[string]any{"is_active": store.FlagValue(true)}

// Featured returns up to FeaturedLimit active products in backend order.
func (s *Service) Featured(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx, store.Query{Where: activeOnly, Limit: FeaturedLimit})
}

// Products returns every active product, newest first.
func (s *Service) Products(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx, store.Query{Where: activeOnly, OrderBy: store.Desc("created_at")})
}

// Product loads one active product.
func (s *Service) Product(ctx context.Context, id string) (models.Product, error) {
	rows, err := s.products.List(ctx, store.Query{
		Where: map[string]any{"id": id, "is_active": store.FlagValue(true)},
		Limit: 1,
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("load product %s: %w", id, err)
	}
	if len(rows) == 0 {
		return models.Product{}, store.ErrNotFound
	}
	return models.ProductFromRow(rows[0]), nil
}

func (s *Service) list(ctx context.Context, q store.Query) ([]models.Product, error) {
	rows, err := s.products.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		p := models.ProductFromRow(r)
		// backends that ignore the filter must not leak hidden products
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

// Filter keeps products whose name or description in lang contains search
// (case-insensitive) and whose category matches. An empty search or the
// "all" category matches everything.
func Filter(products []models.Product, lang models.Language, search, category string) []models.Product {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(search))
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		matchesSearch := needle == "" ||
			strings.Contains(fold.String(p.Name(lang)), needle) ||
			strings.Contains(fold.String(p.Description(lang)), needle)
		matchesCategory := category == "" || category == CategoryAll || string(p.Category) == category
		if matchesSearch && matchesCategory {
			out = append(out, p)
		}
	}
	return out
}

// Quantity selector bounds, in kilograms.
const (
	DefaultWeight = 1.0
	WeightStep    = 0.5
	MinWeight     = 0.5
)

// StepWeight applies delta to the selected weight. An unset weight counts as
// DefaultWeight and the result never drops below MinWeight.
func StepWeight(current, delta float64) float64 {
	if current <= 0 || !money.Finite(current) {
		current = DefaultWeight
	}
	if !money.Finite(delta) {
		delta = 0
	}
	next := money.Sum(current, delta)
	if next < MinWeight {
		return MinWeight
	}
	return next
}

// Quote is the live line total shown next to the quantity selector.
type Quote struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	PricePerKg float64 `json:"pricePerKg"`
	WeightKg   float64 `json:"weightKg"`
	TotalPrice float64 `json:"totalPrice"`
	Display    string  `json:"display"`
}

func QuoteFor(p models.Product, lang models.Language, weight float64) Quote {
	total := money.LineTotal(p.PricePerKg, weight)
	return Quote{
		ProductID:  p.ID,
		Name:       p.Name(lang),
		PricePerKg: p.PricePerKg,
		WeightKg:   weight,
		TotalPrice: total,
		Display:    "₾" + money.Format(total),
	}
}

// NewCartItem freezes the product's current price into a cart line.
func NewCartItem(p models.Product, lang models.Language, weight float64) models.CartItem {
	if weight < MinWeight {
		weight = DefaultWeight
	}
	return models.CartItem{
		ProductID:  p.ID,
		Name:       p.Name(lang),
		PricePerKg: p.PricePerKg,
		WeightKg:   weight,
		TotalPrice: money.LineTotal(p.PricePerKg, weight),
		ImageURL:   p.ImageURL,
	}
}
