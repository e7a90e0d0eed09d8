package live

import (
	"sort"
	"strings"
)

// Set is an immutable snapshot of channel names that were broadcasting at the
// time of a poll. Membership is exact, case-sensitive string equality.
type Set struct {
	names map[string]struct{}
}

// NewSet builds a Set from names. Duplicates collapse.
func NewSet(names ...string) Set {
	if len(names) == 0 {
		return Set{}
	}
	m := make(map[string]struct{}, len(names))
	for _, name := range names {
		m[name] = struct{}{}
	}
	return Set{names: m}
}

// Len reports the number of channels in the set.
func (s Set) Len() int {
	return len(s.names)
}

// Empty reports whether nobody is live.
func (s Set) Empty() bool {
	return len(s.names) == 0
}

// Contains reports whether name is in the set.
func (s Set) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Sorted returns the names in case-insensitive alphabetical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	SortNames(out)
	return out
}

// Minus returns the names in s that are not in other.
func (s Set) Minus(other Set) Set {
	var out []string
	for name := range s.names {
		if !other.Contains(name) {
			out = append(out, name)
		}
	}
	return NewSet(out...)
}

// Equal reports whether both sets hold exactly the same names.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for name := range s.names {
		if !other.Contains(name) {
			return false
		}
	}
	return true
}

// SortNames sorts names case-insensitively in place. Names that differ only in
// case are ordered by their exact bytes so the result is deterministic.
func SortNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		a, b := strings.ToLower(names[i]), strings.ToLower(names[j])
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})
}

// Roster renders names the way the display shows them: sorted, each followed
// by two spaces.
func Roster(s Set) string {
	var b strings.Builder
	for _, name := range s.Sorted() {
		b.WriteString(name)
		b.WriteString("  ")
	}
	return b.String()
}
