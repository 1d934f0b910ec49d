// Package latch implements the registration latch: a durable, monotonic
// flag that, once set, keeps the registration screen closed on this client
// installation.
package latch

import (
	"context"
	"fmt"
)

const (
	// RegistrationDisabledKey is the storage key of the latch.
	RegistrationDisabledKey = "registrationDisabled"

	setValue = "true"
)

// Store is the key-value capability the latch needs.
// prefs.SQLiteRepository satisfies it.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type RegistrationLatch struct {
	store Store
}

func NewRegistrationLatch(store Store) *RegistrationLatch {
	return &RegistrationLatch{store: store}
}

// IsDisabled reports whether registration has been latched off. Only the
// exact stored value "true" counts.
func (l *RegistrationLatch) IsDisabled(ctx context.Context) (bool, error) {
	v, ok, err := l.store.Get(ctx, RegistrationDisabledKey)
	if err != nil {
		return false, fmt.Errorf("read registration latch: %w", err)
	}
	return ok && v == setValue, nil
}

// Disable sets the latch. Calling it again has no further effect.
func (l *RegistrationLatch) Disable(ctx context.Context) error {
	if err := l.store.Set(ctx, RegistrationDisabledKey, setValue); err != nil {
		return fmt.Errorf("set registration latch: %w", err)
	}
	return nil
}
