package ident

import (
	"strconv"
	"strings"
	"testing"
)

func TestGenerateShape(t *testing.T) {
	id := Generate()

	millis, suffix, found := strings.Cut(id, "-")
	if !found {
		t.Fatalf("id %q missing separator", id)
	}
	if _, err := strconv.ParseInt(millis, 10, 64); err != nil {
		t.Fatalf("id %q time component not numeric: %v", id, err)
	}
	if suffix == "" {
		t.Fatalf("id %q has empty random suffix", id)
	}
}

func TestGenerateUnique(t *testing.T) {
	const n = 10_000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := Generate()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id after %d generations: %s", i, id)
		}
		seen[id] = struct{}{}
	}
}
