package admin

import (
	"context"
	"fmt"

	"piwkina-shop/models"
	"piwkina-shop/money"
	"piwkina-shop/store"
)

const (
	dashboardOrderWindow = 100
	recentOrderCount     = 5
)

type Stats struct {
	TotalProducts int            `json:"totalProducts"`
	TotalOrders   int            `json:"totalOrders"`
	PendingOrders int            `json:"pendingOrders"`
	TotalRevenue  float64        `json:"totalRevenue"`
	RecentOrders  []models.Order `json:"recentOrders"`
}

type Dashboard struct {
	products store.Collection
	orders   store.Collection
}

func NewDashboard(backend store.Backend) *Dashboard {
	return &Dashboard{
		products: backend.Collection(store.Products),
		orders:   backend.Collection(store.Orders),
	}
}

// Stats summarizes the latest orders and the active catalog. Revenue counts
// every order in the window whatever its status.
func (d *Dashboard) Stats(ctx context.Context) (Stats, error) {
	products, err := d.products.List(ctx, store.Query{Where: map[string]any{"is_active": store.FlagValue(true)}})
	if err != nil {
		logFailure(err, "stats", "product", "")
		return Stats{}, fmt.Errorf("count products: %w", err)
	}
	orders, err := listAll(ctx, d.orders, store.Query{
		OrderBy: store.Desc("created_at"),
		Limit:   dashboardOrderWindow,
	}, models.OrderFromRow)
	if err != nil {
		logFailure(err, "stats", "order", "")
		return Stats{}, fmt.Errorf("list orders: %w", err)
	}

	stats := Stats{TotalProducts: len(products), TotalOrders: len(orders)}
	amounts := make([]float64, len(orders))
	for i, o := range orders {
		amounts[i] = o.TotalAmount
		if o.Status == models.StatusPending {
			stats.PendingOrders++
		}
	}
	stats.TotalRevenue = money.Sum(amounts...)
	recent := orders
	if len(recent) > recentOrderCount {
		recent = recent[:recentOrderCount]
	}
	stats.RecentOrders = recent
	return stats, nil
}
