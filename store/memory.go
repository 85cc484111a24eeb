package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryBackend keeps every collection in process. It backs tests and the
// "memory" store driver; writes are not transactional.
type MemoryBackend struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
	now         func() time.Time
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		collections: make(map[string]*memoryCollection),
		now:         time.Now,
	}
}

func (b *MemoryBackend) Collection(name string) Collection {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.collections[name]
	if !ok {
		c = &memoryCollection{name: name, now: b.now}
		b.collections[name] = c
	}
	return c
}

type memoryCollection struct {
	mu   sync.RWMutex
	name string
	rows []Row
	now  func() time.Time
}

func (c *memoryCollection) List(ctx context.Context, q Query) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	out := make([]Row, 0, len(c.rows))
	for _, r := range c.rows {
		if matches(r, q.Where) {
			out = append(out, r.Clone())
		}
	}
	c.mu.RUnlock()

	if q.OrderBy != nil {
		field, desc := q.OrderBy.Field, q.OrderBy.Desc
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return less(out[j][field], out[i][field])
			}
			return less(out[i][field], out[j][field])
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (c *memoryCollection) Create(ctx context.Context, row Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := row.ID()
	if id == "" {
		return ErrMissingID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(id) >= 0 {
		return fmt.Errorf("%s %s: %w", c.name, id, ErrDuplicate)
	}
	c.rows = append(c.rows, stampCreate(row, c.now()))
	return nil
}

func (c *memoryCollection) Update(ctx context.Context, id string, row Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s %s: %w", c.name, id, ErrNotFound)
	}
	merged := c.rows[i].Clone()
	for k, v := range stampUpdate(row, c.now()) {
		merged[k] = v
	}
	c.rows[i] = merged
	return nil
}

func (c *memoryCollection) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s %s: %w", c.name, id, ErrNotFound)
	}
	c.rows = append(c.rows[:i], c.rows[i+1:]...)
	return nil
}

func (c *memoryCollection) indexOf(id string) int {
	for i, r := range c.rows {
		if r.ID() == id {
			return i
		}
	}
	return -1
}

func matches(r Row, where map[string]any) bool {
	for k, want := range where {
		if fmt.Sprint(r[k]) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func less(a, b any) bool {
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA && okB {
		return fa < fb
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
