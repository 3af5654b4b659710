// Package plist defines the property-list value model: a closed set of
// value kinds (booleans, numbers, strings, byte blobs, dates, arrays,
// dictionaries and sets) arranged as a tree.
//
// Every node satisfies the sealed Value interface. Scalars are plain Go
// types (String, Integer, Real, ...) while containers are mutable pointer
// types (*Array, *Dict, *Set). A nil Value means "absent".
//
// # Equality
//
// Dictionary keys and set members are compared with Equal. Numbers compare
// by numeric value regardless of their variant, so Integer(1), Unsigned(1)
// and Real(1.0) are the same key. Bool never equals a number. Containers
// compare structurally; mutating a container after using it as a key or set
// member leaves the enclosing container with a stale hash.
//
// # Bridges
//
// FromNative converts Go values produced by encoding/json, gopkg.in/yaml.v3
// or literal code into a Value tree, and ToNative goes the other way.
// FromStructpb and ToStructpb do the same for protobuf well-known values.
//
// Reading and writing the XML or binary property-list file formats is not
// part of this package.
package plist
