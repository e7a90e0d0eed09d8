package live

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func nameGen() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{
		"alice", "Alice", "bob", "BOB", "carol", "dave", "Eve", "mst3k", "kruge", "tinnvec",
	})
}

func setGen() *rapid.Generator[Set] {
	return rapid.Custom(func(t *rapid.T) Set {
		return NewSet(rapid.SliceOf(nameGen()).Draw(t, "names")...)
	})
}

func TestDiff_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prev := setGen().Draw(t, "prev")
		cur := setGen().Draw(t, "cur")
		d := Diff(prev, cur)

		seen := map[string]bool{}
		for i, name := range d.NewlyLive {
			if seen[name] {
				t.Fatalf("duplicate %q in NewlyLive %v", name, d.NewlyLive)
			}
			seen[name] = true
			if !cur.Contains(name) || prev.Contains(name) {
				t.Fatalf("%q in NewlyLive but not in current-previous", name)
			}
			if i > 0 && strings.ToLower(d.NewlyLive[i-1]) > strings.ToLower(name) {
				t.Fatalf("NewlyLive not sorted: %v", d.NewlyLive)
			}
		}
		if len(d.NewlyLive) != cur.Minus(prev).Len() {
			t.Fatalf("NewlyLive = %v, want all of %v", d.NewlyLive, cur.Minus(prev).Sorted())
		}
		if !d.NewlyOffline.Equal(prev.Minus(cur)) {
			t.Fatalf("NewlyOffline = %v, want %v", d.NewlyOffline.Sorted(), prev.Minus(cur).Sorted())
		}

		again := Diff(prev, cur)
		if strings.Join(again.NewlyLive, ",") != strings.Join(d.NewlyLive, ",") || !again.NewlyOffline.Equal(d.NewlyOffline) {
			t.Fatalf("Diff is not idempotent")
		}
	})
}

func TestDiff_SelfIsEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := setGen().Draw(t, "s")
		d := Diff(s, s)
		if len(d.NewlyLive) != 0 || !d.NewlyOffline.Empty() {
			t.Fatalf("Diff(s, s) = %v / %v, want empty", d.NewlyLive, d.NewlyOffline.Sorted())
		}
	})
}
