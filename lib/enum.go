package lib

import "strings"

// ParseEnum maps a free-form vendor label onto one of the known enum
// values. Matching ignores case, spaces, hyphens and underscores, so
// "spray_can", "Spray Can" and "SprayCan" all resolve to the same tag.
// Unrecognized input returns def (typically the enum's Unknown sentinel).
func ParseEnum[T ~string](value string, values []T, def T) T {
	key := enumKey(value)
	if key == "" {
		return def
	}
	for _, v := range values {
		if enumKey(string(v)) == key {
			return v
		}
	}
	return def
}

// ParseEnumStrict is ParseEnum without a fallback; the bool reports
// whether the value matched. Used where unknowns must be dropped
// instead of coerced.
func ParseEnumStrict[T ~string](value string, values []T) (T, bool) {
	key := enumKey(value)
	for _, v := range values {
		if enumKey(string(v)) == key {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func enumKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, s)
}
