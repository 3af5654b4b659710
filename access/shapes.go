package access

import (
	"context"
	"errors"
	"log/slog"

	"github.com/zero-day-ai/plistkit/plist"
	"github.com/zero-day-ai/plistkit/prefs"
)

// ArrayAccessor reads typed elements of an array by index. An index is
// absent when it is negative or not below the array length.
type ArrayAccessor struct {
	Accessor[int]
	array *plist.Array
}

// ForArray returns an accessor over a. A nil array reads as empty.
func ForArray(a *plist.Array) ArrayAccessor {
	return ArrayAccessor{
		Accessor: New(a.Get),
		array:    a,
	}
}

// Object returns the element at index i. Like plist.Array.At it panics
// when i is out of range; ObjectNoThrow is the checked form.
func (a ArrayAccessor) Object(i int) plist.Value {
	return a.array.At(i)
}

// ObjectOr returns the element at index i and panics when i is out of
// range, exactly as Object does. Elements are never nil, so def is only
// a placeholder kept for symmetry with the other accessors.
func (a ArrayAccessor) ObjectOr(i int, def plist.Value) plist.Value {
	if v := a.array.At(i); v != nil {
		return v
	}
	return def
}

// ObjectNoThrow returns the element at index i, or nil when i is out of
// range.
func (a ArrayAccessor) ObjectNoThrow(i int) plist.Value {
	return a.ObjectNoThrowOr(i, nil)
}

// ObjectNoThrowOr returns the element at index i, or def when i is out of
// range.
func (a ArrayAccessor) ObjectNoThrowOr(i int, def plist.Value) plist.Value {
	return a.Accessor.ObjectOr(i, def)
}

// ForDict returns an accessor over d keyed by any value. Keys match by
// plist.Equal, so Integer(1) and Real(1) find the same entry.
func ForDict(d *plist.Dict) Accessor[plist.Value] {
	return New(d.Get)
}

// ForStringDict returns an accessor over d keyed by Go strings.
func ForStringDict(d *plist.Dict) Accessor[string] {
	return New(func(key string) (plist.Value, bool) {
		return d.Get(plist.String(key))
	})
}

// ForStore returns an accessor reading from a preferences store. Missing
// keys are absent; any other store error is logged and also treated as
// absent so the caller's default applies.
func ForStore(ctx context.Context, s prefs.Getter) Accessor[string] {
	return ForStoreWithLogger(ctx, s, slog.Default())
}

// ForStoreWithLogger is ForStore with an explicit logger for store errors.
func ForStoreWithLogger(ctx context.Context, s prefs.Getter, logger *slog.Logger) Accessor[string] {
	if s == nil {
		return New[string](nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return New(func(key string) (plist.Value, bool) {
		v, err := s.Get(ctx, key)
		if err != nil {
			if !errors.Is(err, prefs.ErrNotFound) {
				logger.WarnContext(ctx, "preference lookup failed, using default",
					"component", "access",
					"key", key,
					"error", err,
				)
			}
			return nil, false
		}
		return v, v != nil
	})
}
