package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBackend serves the collection contract from SQL tables created by Migrate.
type GormBackend struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db, now: time.Now}
}

func (b *GormBackend) Collection(name string) Collection {
	return &gormCollection{db: b.db, table: name, now: b.now}
}

// Transaction runs fn against a backend bound to one database transaction.
func (b *GormBackend) Transaction(ctx context.Context, fn func(tx Backend) error) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormBackend{db: tx, now: b.now})
	})
}

type gormCollection struct {
	db    *gorm.DB
	table string
	now   func() time.Time
}

func (c *gormCollection) List(ctx context.Context, q Query) ([]Row, error) {
	query := c.db.WithContext(ctx).Table(c.table)
	if len(q.Where) > 0 {
		query = query.Where(map[string]interface{}(q.Where))
	}
	if q.OrderBy != nil {
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: q.OrderBy.Field},
			Desc:   q.OrderBy.Desc,
		})
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var results []map[string]interface{}
	if err := query.Find(&results).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", c.table, err)
	}
	rows := make([]Row, len(results))
	for i, r := range results {
		rows[i] = Row(r)
	}
	return rows, nil
}

func (c *gormCollection) Create(ctx context.Context, row Row) error {
	if row.ID() == "" {
		return ErrMissingID
	}
	values := map[string]interface{}(stampCreate(row, c.now()))
	if err := c.db.WithContext(ctx).Table(c.table).Create(values).Error; err != nil {
		return fmt.Errorf("create %s %s: %w", c.table, row.ID(), err)
	}
	return nil
}

func (c *gormCollection) Update(ctx context.Context, id string, row Row) error {
	values := map[string]interface{}(stampUpdate(row, c.now()))
	result := c.db.WithContext(ctx).Table(c.table).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return fmt.Errorf("update %s %s: %w", c.table, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update %s %s: %w", c.table, id, ErrNotFound)
	}
	return nil
}

func (c *gormCollection) Delete(ctx context.Context, id string) error {
	result := c.db.WithContext(ctx).Exec("DELETE FROM ? WHERE id = ?", clause.Table{Name: c.table}, id)
	if result.Error != nil {
		return fmt.Errorf("delete %s %s: %w", c.table, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete %s %s: %w", c.table, id, ErrNotFound)
	}
	return nil
}
