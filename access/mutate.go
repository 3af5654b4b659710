package access

import (
	"context"

	"golang.org/x/exp/constraints"

	"github.com/zero-day-ai/plistkit/plist"
	"github.com/zero-day-ai/plistkit/prefs"
)

// The helpers below box a Go primitive with plist.Number or plist.Bool and
// hand it to the container's own mutation. Index and nil-container errors
// surface exactly as the container reports them.

// AppendInteger appends v to a.
func AppendInteger[T constraints.Integer](a *plist.Array, v T) { a.Append(plist.Number(v)) }

// AppendFloat appends v to a.
func AppendFloat[T constraints.Float](a *plist.Array, v T) { a.Append(plist.Number(v)) }

// AppendBool appends v to a.
func AppendBool(a *plist.Array, v bool) { a.Append(plist.Bool(v)) }

// InsertInteger inserts v at index i. It panics when i is out of range.
func InsertInteger[T constraints.Integer](a *plist.Array, i int, v T) {
	a.Insert(i, plist.Number(v))
}

// InsertFloat inserts v at index i. It panics when i is out of range.
func InsertFloat[T constraints.Float](a *plist.Array, i int, v T) {
	a.Insert(i, plist.Number(v))
}

// InsertBool inserts v at index i. It panics when i is out of range.
func InsertBool(a *plist.Array, i int, v bool) { a.Insert(i, plist.Bool(v)) }

// SetInteger stores v under key.
func SetInteger[T constraints.Integer](d *plist.Dict, key plist.Value, v T) {
	d.Set(key, plist.Number(v))
}

// SetFloat stores v under key.
func SetFloat[T constraints.Float](d *plist.Dict, key plist.Value, v T) {
	d.Set(key, plist.Number(v))
}

// SetBool stores v under key.
func SetBool(d *plist.Dict, key plist.Value, v bool) { d.Set(key, plist.Bool(v)) }

// AddInteger adds v to s.
func AddInteger[T constraints.Integer](s *plist.Set, v T) { s.Add(plist.Number(v)) }

// AddFloat adds v to s.
func AddFloat[T constraints.Float](s *plist.Set, v T) { s.Add(plist.Number(v)) }

// AddBool adds v to s.
func AddBool(s *plist.Set, v bool) { s.Add(plist.Bool(v)) }

// StoreInteger writes v to the preferences store under key.
func StoreInteger[T constraints.Integer](ctx context.Context, s prefs.Store, key string, v T) error {
	return s.Set(ctx, key, plist.Number(v))
}

// StoreFloat writes v to the preferences store under key.
func StoreFloat[T constraints.Float](ctx context.Context, s prefs.Store, key string, v T) error {
	return s.Set(ctx, key, plist.Number(v))
}

// StoreBool writes v to the preferences store under key.
func StoreBool(ctx context.Context, s prefs.Store, key string, v bool) error {
	return s.Set(ctx, key, plist.Bool(v))
}
