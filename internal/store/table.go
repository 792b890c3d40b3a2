package store

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/example/alhayat/internal/cache"
	"github.com/example/alhayat/internal/logger"
)

// ErrNoRows reports that a lookup matched nothing.
var ErrNoRows = fmt.Errorf("store: no rows: %w", gorm.ErrRecordNotFound)

type identity interface {
	GetID() uint
	SetID(uint)
}

// Option configures a Table.
type Option func(*options)

type options struct {
	cache *cache.Cache
	ttl   time.Duration
}

// WithCache serves Cacheable reads from c for ttl.
func WithCache(c *cache.Cache, ttl time.Duration) Option {
	return func(o *options) {
		o.cache = c
		o.ttl = ttl
	}
}

// Table is a thin typed client over one content table. T must be a GORM
// model embedding models.BaseModel.
type Table[T any] struct {
	db   *gorm.DB
	name string
	opts options
}

// NewTable binds T to its table.
func NewTable[T any](db *gorm.DB, opts ...Option) *Table[T] {
	t := &Table[T]{db: db}
	for _, opt := range opts {
		opt(&t.opts)
	}

	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err == nil {
		t.name = stmt.Schema.Table
	} else {
		t.name = fmt.Sprintf("%T", *new(T))
	}
	return t
}

// Name returns the underlying table name.
func (t *Table[T]) Name() string {
	return t.name
}

// Select returns the rows matching q.
func (t *Table[T]) Select(ctx context.Context, q Query) ([]T, error) {
	rows := make([]T, 0)

	var key string
	if q.Cacheable && t.opts.cache.Enabled() {
		key = t.cacheKey(q)
		if err := t.opts.cache.Get(ctx, key, &rows); err == nil {
			return rows, nil
		}
	}

	db := q.page(q.filters(t.db.WithContext(ctx).Model(new(T))))
	if err := db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select %s: %w", t.name, err)
	}

	if key != "" {
		if err := t.opts.cache.Set(ctx, key, rows, t.opts.ttl); err != nil {
			logger.Warn("Failed to cache query result", map[string]interface{}{"table": t.name, "error": err.Error()})
		}
	}
	return rows, nil
}

// First returns the first row matching q in q's order, or ErrNoRows.
func (t *Table[T]) First(ctx context.Context, q Query) (*T, error) {
	q.Limit = 1
	rows, err := t.Select(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return &rows[0], nil
}

// Get loads a row by identity, bypassing the cache.
func (t *Table[T]) Get(ctx context.Context, id uint) (*T, error) {
	var row T
	if err := t.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("get %s %d: %w", t.name, id, err)
	}
	return &row, nil
}

// Count returns the number of rows matching the filters of q.
func (t *Table[T]) Count(ctx context.Context, q Query) (int64, error) {
	var n int64
	if err := q.filters(t.db.WithContext(ctx).Model(new(T))).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	return n, nil
}

// Insert stores row as a new record. Any identity on row is discarded and
// replaced by the one the database assigns.
func (t *Table[T]) Insert(ctx context.Context, row *T) error {
	if k, ok := any(row).(identity); ok {
		k.SetID(0)
	}
	if err := t.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("insert %s: %w", t.name, err)
	}
	t.invalidate(ctx)
	return nil
}

// Update overwrites every column of row id with the values in row, zero
// values included.
func (t *Table[T]) Update(ctx context.Context, id uint, row *T) error {
	k, ok := any(row).(identity)
	if !ok {
		return fmt.Errorf("update %s: model has no identity", t.name)
	}
	k.SetID(id)

	res := t.db.WithContext(ctx).Model(row).Select("*").Omit("id", "created_at").Updates(row)
	if res.Error != nil {
		return fmt.Errorf("update %s %d: %w", t.name, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNoRows
	}
	t.invalidate(ctx)
	return nil
}

// Put overwrites row id, creating it with that identity when it does not
// exist yet. Settings singletons are written through Put.
func (t *Table[T]) Put(ctx context.Context, id uint, row *T) error {
	err := t.Update(ctx, id, row)
	if !errors.Is(err, ErrNoRows) {
		return err
	}

	if k, ok := any(row).(identity); ok {
		k.SetID(id)
	}
	if err := t.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("insert %s %d: %w", t.name, id, err)
	}
	t.invalidate(ctx)
	return nil
}

// UpdateColumns sets only the given columns of row id.
func (t *Table[T]) UpdateColumns(ctx context.Context, id uint, values map[string]interface{}) error {
	res := t.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("update %s %d: %w", t.name, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNoRows
	}
	t.invalidate(ctx)
	return nil
}

// Delete removes row id permanently.
func (t *Table[T]) Delete(ctx context.Context, id uint) error {
	res := t.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete %s %d: %w", t.name, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNoRows
	}
	t.invalidate(ctx)
	return nil
}

func (t *Table[T]) cacheKey(q Query) string {
	raw, _ := json.Marshal(q)
	sum := sha1.Sum(raw)
	return fmt.Sprintf("content:%s:%s", t.name, hex.EncodeToString(sum[:]))
}

func (t *Table[T]) invalidate(ctx context.Context) {
	if !t.opts.cache.Enabled() {
		return
	}
	if err := t.opts.cache.DeletePattern(ctx, fmt.Sprintf("content:%s:*", t.name)); err != nil {
		logger.Warn("Failed to invalidate cached content", map[string]interface{}{"table": t.name, "error": err.Error()})
	}
}
