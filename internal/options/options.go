// Package options turns loosely-typed caller input (query strings, JSON
// bodies) into the feature flags driving one synthesis run. Every coercion
// has a documented default-on-failure: a malformed value is never an error.
package options

import (
	"net/url"
	"strconv"
	"strings"
)

// Flags is immutable for the duration of one synthesis run.
type Flags struct {
	LoadBalance bool
	Landing     bool
	IPv6        bool
	Full        bool
	KeepAlive   bool
	FakeIP      bool
	QUIC        bool

	// Threshold hides regions with fewer matching proxies from the selector
	// lists. Always >= 0.
	Threshold int
}

// Bool coerces a flag value: booleans pass through, text "true"/"1" is true,
// everything else (absent, other text, other types) is false.
func Bool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		s := strings.TrimSpace(x)
		return s == "true" || s == "1"
	default:
		return false
	}
}

// Int coerces a non-negative integer flag value. Numeric types and numeric
// text pass through; anything unparseable or negative yields def.
func Int(v any, def int) int {
	n := def
	switch x := v.(type) {
	case int:
		n = x
	case int64:
		n = int(x)
	case float64:
		n = int(x)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return def
		}
		n = parsed
	default:
		return def
	}
	if n < 0 {
		return def
	}
	return n
}

// FromMap reads the recognized option keys from a loosely-typed map.
// Unknown keys are ignored.
func FromMap(m map[string]any) Flags {
	return Flags{
		LoadBalance: Bool(m["loadbalance"]),
		Landing:     Bool(m["landing"]),
		IPv6:        Bool(m["ipv6"]),
		Full:        Bool(m["full"]),
		KeepAlive:   Bool(m["keepalive"]),
		FakeIP:      Bool(m["fakeip"]),
		QUIC:        Bool(m["quic"]),
		Threshold:   Int(m["threshold"], 0),
	}
}

// FromQuery reads the recognized option keys from URL query parameters.
// Only the first value of each key is considered.
func FromQuery(q url.Values) Flags {
	m := make(map[string]any, len(q))
	for key := range q {
		m[key] = q.Get(key)
	}
	return FromMap(m)
}
