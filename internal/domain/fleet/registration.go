package fleet

import (
	"strings"
	"unicode"
)

// NormalizeRegistration is the join key between fleet vehicles and agreements:
// upper case with every Unicode whitespace rune removed.
func NormalizeRegistration(r string) string {
	return strings.Map(func(c rune) rune {
		if unicode.IsSpace(c) {
			return -1
		}
		return unicode.ToUpper(c)
	}, r)
}

// DedupeByRegistration drops vehicles whose normalized registration was
// already seen. The first occurrence in input order wins.
func DedupeByRegistration(vehicles []Vehicle) []Vehicle {
	seen := make(map[string]struct{}, len(vehicles))
	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		key := NormalizeRegistration(v.RegistrationNumber)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
