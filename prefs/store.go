package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/zero-day-ai/plistkit/plist"
)

// Sentinel errors for store operations. Use errors.Is to test for them.
var (
	// ErrNotFound indicates that no value is stored for the key.
	ErrNotFound = errors.New("preference not found")

	// ErrStoreClosed indicates an operation on a store after Close.
	ErrStoreClosed = errors.New("store is closed")

	// ErrInvalidConfig indicates an unusable store configuration.
	ErrInvalidConfig = errors.New("invalid store configuration")
)

// Getter reads a single preference. Missing keys report ErrNotFound.
type Getter interface {
	Get(ctx context.Context, key string) (plist.Value, error)
}

// Store is a persisted keyed collection of property-list values.
//
// Implementations must be safe for concurrent use.
type Store interface {
	Getter

	// Set stores v under key. A nil v deletes the key.
	Set(ctx context.Context, key string, v plist.Value) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases the backend. Further calls return ErrStoreClosed.
	Close() error
}

// StoreError records the operation and key of a failed store call.
//
// StoreError supports errors.Is and errors.As through Unwrap:
//
//	if errors.Is(err, prefs.ErrNotFound) {
//		// use a default
//	}
type StoreError struct {
	// Op is the operation that failed ("get", "set", "delete", "keys").
	Op string

	// Key is the preference key, empty for whole-store operations.
	Key string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("prefs: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("prefs: %s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op, key string, err error) error {
	return &StoreError{Op: op, Key: key, Err: err}
}

func notFound(key string) error {
	return storeErr("get", key, ErrNotFound)
}

// IsNotFound reports whether err means the key holds no value.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
