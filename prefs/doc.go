// Package prefs persists property-list values under string keys.
//
// A Store is the keyed collection the access package reads typed
// preferences from. Backends:
//
//   - MemoryStore: process memory, the default.
//   - RedisStore: one Redis hash per namespace.
//   - EtcdStore: one etcd key per preference under /<namespace>/prefs/.
//   - SQLiteStore: a single table scoped by namespace.
//
// Values are encoded with Marshal, a JSON envelope that keeps every value
// kind distinct. WithDefaults layers registered fallback values over any
// store, and Instrument adds OpenTelemetry spans and lookup counts.
//
// Stores are usually built from YAML with LoadConfig and Open, or from the
// environment with OpenFromEnv:
//
//	store, err := prefs.OpenFromEnv(ctx)
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	p := access.ForStore(ctx, store)
//	retries := p.IntOr("MaxRetries", 3)
package prefs
