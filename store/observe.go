package store

import (
	"context"
	"sync"
)

// Change describes one successful write.
type Change struct {
	Collection string `json:"collection"`
	Op         string `json:"op"`
	ID         string `json:"id"`
}

const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Observe wraps b so that every successful write is reported to notify.
// Writes made inside a transaction are reported once it commits.
func Observe(b Backend, notify func(Change)) Backend {
	return &observedBackend{inner: b, notify: notify}
}

type observedBackend struct {
	inner  Backend
	notify func(Change)
}

func (o *observedBackend) Collection(name string) Collection {
	return &observedCollection{inner: o.inner.Collection(name), name: name, notify: o.notify}
}

func (o *observedBackend) Transaction(ctx context.Context, fn func(tx Backend) error) error {
	t, ok := o.inner.(Transactor)
	if !ok {
		return fn(o)
	}
	var (
		mu      sync.Mutex
		pending []Change
	)
	collect := func(c Change) {
		mu.Lock()
		pending = append(pending, c)
		mu.Unlock()
	}
	err := t.Transaction(ctx, func(tx Backend) error {
		return fn(&observedBackend{inner: tx, notify: collect})
	})
	if err != nil {
		return err
	}
	for _, c := range pending {
		o.notify(c)
	}
	return nil
}

type observedCollection struct {
	inner  Collection
	name   string
	notify func(Change)
}

func (c *observedCollection) List(ctx context.Context, q Query) ([]Row, error) {
	return c.inner.List(ctx, q)
}

func (c *observedCollection) Create(ctx context.Context, row Row) error {
	if err := c.inner.Create(ctx, row); err != nil {
		return err
	}
	c.notify(Change{Collection: c.name, Op: OpCreate, ID: row.ID()})
	return nil
}

func (c *observedCollection) Update(ctx context.Context, id string, row Row) error {
	if err := c.inner.Update(ctx, id, row); err != nil {
		return err
	}
	c.notify(Change{Collection: c.name, Op: OpUpdate, ID: id})
	return nil
}

func (c *observedCollection) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.notify(Change{Collection: c.name, Op: OpDelete, ID: id})
	return nil
}
