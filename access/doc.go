// Package access reads typed values out of property-list containers.
//
// One Accessor type serves every container shape. Build it with ForArray,
// ForDict, ForStringDict or ForStore, then ask for the type you want:
//
//	cfg := access.ForStringDict(root)
//	retries := cfg.IntOr("MaxRetries", 3)
//	level := cfg.Int8("Level")       // saturates at 127, never wraps
//	verbose := cfg.Bool("Verbose")   // accepts true, "yes", "ON", 1
//	hosts := cfg.Set("Hosts")        // an array is collected into a set
//
// Absent locations and values that cannot be coerced yield the default;
// no accessor panics or returns an error. The one deliberate exception is
// ArrayAccessor.Object, which indexes the array directly and panics on an
// out-of-range index. Use ObjectNoThrow for the checked form.
//
// The Append, Insert, Set, Add and Store helpers box Go numbers and
// booleans into plist values and write them into a container.
package access
