package coerce

import (
	"strings"

	"github.com/zero-day-ai/plistkit/plist"
)

// Bool interprets v as a boolean. Numbers are true when non-zero. Strings
// match yes/true/on and no/false/off without regard to case; any other
// string, any other kind and an absent value yield def.
func Bool(v plist.Value, def bool) bool {
	switch x := v.(type) {
	case plist.Bool:
		return bool(x)
	case plist.Integer:
		return x != 0
	case plist.Unsigned:
		return x != 0
	case plist.Real:
		return x != 0
	case plist.String:
		switch strings.ToLower(string(x)) {
		case "yes", "true", "on":
			return true
		case "no", "false", "off":
			return false
		}
	}
	return def
}
