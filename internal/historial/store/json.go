package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Load decodes the document under key into a T. A missing key yields
// ErrNotFound and an undecodable value yields ErrCorrupt.
func Load[T any](ctx context.Context, kv KV, key string) (T, error) {
	var v T
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return v, nil
}

// LoadOver decodes the document under key on top of base, so fields the
// stored document lacks keep base's values. Errors match Load.
func LoadOver[T any](ctx context.Context, kv KV, key string, base T) (T, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return base, err
	}
	v := base
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return base, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return v, nil
}

// Save encodes v and stores it under key.
func Save[T any](ctx context.Context, kv KV, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Put(ctx, key, string(b))
}

// LoadList loads a JSON array, treating a missing key as empty. Corrupt
// values are reported alongside an empty list so callers can log and carry on.
func LoadList[T any](ctx context.Context, kv KV, key string) ([]T, error) {
	items, err := Load[[]T](ctx, kv, key)
	switch {
	case errors.Is(err, ErrNotFound):
		return []T{}, nil
	case err != nil:
		return []T{}, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
