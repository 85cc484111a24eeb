package models

import (
	"time"

	"piwkina-shop/store"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerEmail   string      `json:"customerEmail,omitempty"`
	CustomerAddress string      `json:"customerAddress"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          OrderStatus `json:"status"`
	Notes           string      `json:"notes,omitempty"`
	UserID          string      `json:"userId"`
	CreatedAt       time.Time   `json:"createdAt"`
	Items           []OrderItem `json:"items,omitempty"`
}

// OrderItem is one cart line frozen at checkout. Quantity is always 1; the
// amount ordered lives in WeightKg.
type OrderItem struct {
	ID         string  `json:"id"`
	OrderID    string  `json:"orderId"`
	ProductID  string  `json:"productId"`
	Quantity   int     `json:"quantity"`
	WeightKg   float64 `json:"weightKg"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	UserID     string  `json:"userId"`
}

func OrderFromRow(r store.Row) Order {
	return Order{
		ID:              r.ID(),
		CustomerName:    r.String("customer_name"),
		CustomerPhone:   r.String("customer_phone"),
		CustomerEmail:   r.String("customer_email"),
		CustomerAddress: r.String("customer_address"),
		TotalAmount:     r.Float("total_amount"),
		Status:          OrderStatus(r.String("status")),
		Notes:           r.String("notes"),
		UserID:          r.String("user_id"),
		CreatedAt:       r.Time("created_at"),
	}
}

func (o Order) Row() store.Row {
	return store.Row{
		"id":               o.ID,
		"customer_name":    o.CustomerName,
		"customer_phone":   o.CustomerPhone,
		"customer_email":   store.NullString(o.CustomerEmail),
		"customer_address": o.CustomerAddress,
		"total_amount":     o.TotalAmount,
		"status":           string(o.Status),
		"notes":            store.NullString(o.Notes),
		"user_id":          o.UserID,
	}
}

func OrderItemFromRow(r store.Row) OrderItem {
	return OrderItem{
		ID:         r.ID(),
		OrderID:    r.String("order_id"),
		ProductID:  r.String("product_id"),
		Quantity:   r.Int("quantity"),
		WeightKg:   r.Float("weight_kg"),
		UnitPrice:  r.Float("unit_price"),
		TotalPrice: r.Float("total_price"),
		UserID:     r.String("user_id"),
	}
}

func (i OrderItem) Row() store.Row {
	return store.Row{
		"id":          i.ID,
		"order_id":    i.OrderID,
		"product_id":  i.ProductID,
		"quantity":    i.Quantity,
		"weight_kg":   i.WeightKg,
		"unit_price":  i.UnitPrice,
		"total_price": i.TotalPrice,
		"user_id":     i.UserID,
	}
}
