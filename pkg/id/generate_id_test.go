package id

import (
	"encoding/hex"
	"regexp"
	"testing"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_Format(t *testing.T) {
	got := NewID32()

	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}

	// round-trips to exactly 16 bytes
	raw, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString: %v", err)
	}
	if len(raw) != 16 {
		t.Fatalf("decoded %d bytes, want 16", len(raw))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 500
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		got := NewID32()
		if _, dup := seen[got]; dup {
			t.Fatalf("duplicate id after %d draws: %q", i, got)
		}
		seen[got] = struct{}{}
	}
}
