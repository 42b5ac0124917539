package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/benavides/historial/internal/historial/store"
)

// collection is a JSON array persisted under one key.
type collection[T any] struct {
	key    string
	id     func(T) string
	logger *slog.Logger
}

// list loads the array. An unreadable value is logged and read as empty.
func (c collection[T]) list(ctx context.Context, kv store.KV) ([]T, error) {
	items, err := store.LoadList[T](ctx, kv, c.key)
	if errors.Is(err, store.ErrCorrupt) {
		c.log().Warn("collection unreadable, treating as empty", "key", c.key, "error", err)
		return []T{}, nil
	}
	return items, err
}

func (c collection[T]) find(items []T, id string) (int, bool) {
	for i, it := range items {
		if c.id(it) == id {
			return i, true
		}
	}
	return -1, false
}

// get returns the item with id or store.ErrNotFound.
func (c collection[T]) get(ctx context.Context, kv store.KV, id string) (T, error) {
	items, err := c.list(ctx, kv)
	if err != nil {
		var zero T
		return zero, err
	}
	i, ok := c.find(items, id)
	if !ok {
		var zero T
		return zero, store.ErrNotFound
	}
	return items[i], nil
}

// update runs a read-modify-write of the whole array inside one transaction.
func (c collection[T]) update(ctx context.Context, st store.Store, fn func(tx store.Tx, items []T) ([]T, error)) error {
	return st.WithTx(ctx, func(tx store.Tx) error {
		items, err := c.list(ctx, tx.KV())
		if err != nil {
			return err
		}
		items, err = fn(tx, items)
		if err != nil {
			return err
		}
		return store.Save(ctx, tx.KV(), c.key, items)
	})
}

func (c collection[T]) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

func prepend[T any](items []T, v T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, v)
	return append(out, items...)
}
