package content

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/metrics"
	"github.com/example/alhayat/internal/store"
)

// Slot loads one piece of page content into a destination that already holds
// its defaults.
type Slot interface {
	table() string
	load(ctx context.Context) error
}

type singletonSlot[T any] struct {
	src   *store.Table[T]
	query store.Query
	dst   *T
}

// Singleton binds the first row matching q, merged field by field over *dst.
func Singleton[T any](src *store.Table[T], q store.Query, dst *T) Slot {
	return &singletonSlot[T]{src: src, query: q, dst: dst}
}

func (s *singletonSlot[T]) table() string { return s.src.Name() }

func (s *singletonSlot[T]) load(ctx context.Context) error {
	row, err := s.src.First(ctx, s.query)
	if err != nil {
		return err
	}
	*s.dst = Merge(*s.dst, row)
	return nil
}

type collectionSlot[T any] struct {
	src   *store.Table[T]
	query store.Query
	dst   *[]T
}

// Collection binds every row matching q, replacing *dst on success. An empty
// result is a success.
func Collection[T any](src *store.Table[T], q store.Query, dst *[]T) Slot {
	return &collectionSlot[T]{src: src, query: q, dst: dst}
}

func (s *collectionSlot[T]) table() string { return s.src.Name() }

func (s *collectionSlot[T]) load(ctx context.Context) error {
	rows, err := s.src.Select(ctx, s.query)
	if err != nil {
		return err
	}
	*s.dst = rows
	return nil
}

// Bind loads all slots concurrently and waits for them. A slot that fails
// keeps its defaults; failures are logged and counted, never returned.
func Bind(ctx context.Context, slots ...Slot) {
	var g errgroup.Group
	for _, slot := range slots {
		slot := slot
		g.Go(func() error {
			if err := slot.load(ctx); err != nil {
				recordFallback(slot.table(), err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func recordFallback(table string, err error) {
	fields := map[string]interface{}{"table": table}
	switch {
	case errors.Is(err, store.ErrNoRows):
		metrics.ContentFallbacks.WithLabelValues(table, "empty").Inc()
		logger.Debug("No content row, using defaults", fields)
	case errors.Is(err, context.Canceled):
		metrics.ContentFallbacks.WithLabelValues(table, "canceled").Inc()
		logger.Debug("Content read canceled", fields)
	default:
		metrics.ContentFallbacks.WithLabelValues(table, "error").Inc()
		logger.Error(err, "Content read failed, using defaults", fields)
	}
}
