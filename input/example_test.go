package input_test

import (
	"fmt"
	"math"
	"time"

	"github.com/zero-day-ai/plistkit/input"
)

// Example reads a decoded service configuration. Numbers come back as
// strings when asked for, and out-of-range values saturate.
func Example() {
	config := map[string]any{
		"host":    "example.com",
		"port":    8080,
		"depth":   300,
		"verbose": "yes",
		"timeout": "30s",
		"retries": 3.0,
		"tags":    []any{"web", 443},
	}

	fmt.Printf("Host: %s\n", input.GetString(config, "host", "localhost"))
	fmt.Printf("Port: %s\n", input.GetString(config, "port", "80"))
	fmt.Printf("Depth: %d\n", input.For(config).Int8Or("depth", 2))
	fmt.Printf("Verbose: %t\n", input.GetBool(config, "verbose", false))
	fmt.Printf("Timeout: %v\n", input.GetTimeout(config, "timeout", 10*time.Second))
	fmt.Printf("Retries: %d\n", input.GetInt(config, "retries", 1))
	fmt.Printf("Tags: %v\n", input.GetStringSlice(config, "tags"))

	// Output:
	// Host: example.com
	// Port: 8080
	// Depth: 127
	// Verbose: true
	// Timeout: 30s
	// Retries: 3
	// Tags: [web 443]
}

func ExampleFor() {
	args := input.For(map[string]any{
		"depth":  300,
		"level":  -4,
		"gain":   -0.5,
		"window": map[string]any{"width": 640},
	})

	fmt.Println(args.Int8Or("depth", 2))
	fmt.Println(args.Uint8Or("level", 1))
	fmt.Println(args.NonNegativeFloat64("gain"))
	fmt.Println(args.Int8Or("missing", 2))
	fmt.Println(args.Dict("window").Len())

	// Output:
	// 127
	// 0
	// 0
	// 2
	// 1
}

// ExampleGetTimeout shows the accepted timeout forms. Bare numbers are
// seconds.
func ExampleGetTimeout() {
	values := []any{30, "5m", 1.5, 1e10, true, nil}

	for _, v := range values {
		timeout := input.GetTimeout(map[string]any{"timeout": v}, "timeout", 10*time.Second)
		fmt.Printf("%v -> %v\n", v, timeout)
	}

	// Output:
	// 30 -> 30s
	// 5m -> 5m0s
	// 1.5 -> 1.5s
	// 1e+10 -> 2562047h47m16.854775807s
	// true -> 10s
	// <nil> -> 10s
}

func ExampleGetBool() {
	for _, v := range []any{"yes", "Off", 2, "maybe"} {
		fmt.Printf("%v -> %t\n", v, input.GetBool(map[string]any{"flag": v}, "flag", false))
	}

	// Output:
	// yes -> true
	// Off -> false
	// 2 -> true
	// maybe -> false
}

func ExampleGetInt64() {
	config := map[string]any{
		"float":   123.9,
		"padded":  " 456 ",
		"flag":    true,
		"huge":    uint64(math.MaxUint64),
		"invalid": "n/a",
	}

	for _, key := range []string{"float", "padded", "flag", "huge", "invalid"} {
		fmt.Printf("%s: %d\n", key, input.GetInt64(config, key, 99))
	}

	// Output:
	// float: 123
	// padded: 456
	// flag: 1
	// huge: 9223372036854775807
	// invalid: 99
}
