package store

import (
	"context"
	"errors"
	"time"
)

// Collection names shared by every backend.
const (
	Products        = "products"
	Orders          = "orders"
	OrderItems      = "order_items"
	MenuItems       = "menu_items"
	Pages           = "pages"
	ContactMessages = "contact_messages"
)

// TimeFormat is the storage-native timestamp layout. It is fixed width so that
// ordering by created_at as text matches chronological order.
const TimeFormat = "2006-01-02T15:04:05.000000Z07:00"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
	ErrMissingID = errors.New("row has no id")
)

// Order is a single ordering field.
type Order struct {
	Field string
	Desc  bool
}

// Asc and Desc build an Order for field.
func Asc(field string) *Order  { return &Order{Field: field} }
func Desc(field string) *Order { return &Order{Field: field, Desc: true} }

// Query narrows a List call. Where is an equality filter on storage columns.
type Query struct {
	Where   map[string]any
	OrderBy *Order
	Limit   int
}

// Collection is the uniform list/create/update/delete contract every screen
// talks to. Rows use snake_case column names.
type Collection interface {
	List(ctx context.Context, q Query) ([]Row, error)
	Create(ctx context.Context, row Row) error
	Update(ctx context.Context, id string, row Row) error
	Delete(ctx context.Context, id string) error
}

// Backend hands out collections by name.
type Backend interface {
	Collection(name string) Collection
}

// Transactor is implemented by backends that can group writes atomically.
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx Backend) error) error
}

// FindByID lists a collection for a single id.
func FindByID(ctx context.Context, c Collection, id string) (Row, error) {
	rows, err := c.List(ctx, Query{Where: map[string]any{"id": id}, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

func stampCreate(row Row, now time.Time) Row {
	out := row.Clone()
	ts := now.UTC().Format(TimeFormat)
	if _, ok := out["created_at"]; !ok {
		out["created_at"] = ts
	}
	if _, ok := out["updated_at"]; !ok {
		out["updated_at"] = ts
	}
	return out
}

func stampUpdate(row Row, now time.Time) Row {
	out := row.Clone()
	delete(out, "id")
	out["updated_at"] = now.UTC().Format(TimeFormat)
	return out
}
