package prefs

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/zero-day-ai/plistkit/plist"
)

// Layered answers reads from the wrapped store first and falls back to a
// fixed set of registered defaults when the store has no value. Writes go
// to the wrapped store only.
type Layered struct {
	Store
	defaults map[string]plist.Value
}

// WithDefaults wraps s with a registration layer of fallback values.
func WithDefaults(s Store, defaults map[string]plist.Value) *Layered {
	copied := make(map[string]plist.Value, len(defaults))
	for k, v := range defaults {
		if v != nil {
			copied[k] = v
		}
	}
	return &Layered{Store: s, defaults: copied}
}

// DefaultsFromNative converts a decoded YAML or JSON mapping into registered
// default values.
func DefaultsFromNative(m map[string]any) (map[string]plist.Value, error) {
	out := make(map[string]plist.Value, len(m))
	for k, raw := range m {
		v, err := plist.FromNative(raw)
		if err != nil {
			return nil, fmt.Errorf("default %q: %w", k, err)
		}
		if v != nil {
			out[k] = v
		}
	}
	return out, nil
}

// Get implements Store.
func (l *Layered) Get(ctx context.Context, key string) (plist.Value, error) {
	v, err := l.Store.Get(ctx, key)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if d, ok := l.defaults[key]; ok {
		return d, nil
	}
	return nil, err
}

// Keys implements Store. Registered defaults are included.
func (l *Layered) Keys(ctx context.Context) ([]string, error) {
	keys, err := l.Store.Keys(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(keys)+len(l.defaults))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	for k := range l.defaults {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
