// Package storage defines the string key/value backing store that mirrors
// the portfolio collections between process restarts.
package storage

import (
	"context"
	"errors"
)

// Backend stores serialized collections by key. Implementations must be
// safe for concurrent use.
type Backend interface {
	// Get reports found=false, err=nil for an absent key.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set overwrites any previous value.
	Set(ctx context.Context, key, value string) error
	Close() error
}

// ErrUnknownBackend is returned by bootstrap for an unsupported BACKING_STORE.
var ErrUnknownBackend = errors.New("unknown backing store")
