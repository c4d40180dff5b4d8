package api

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestHashPath(t *testing.T) {
	sum := sha256.Sum256([]byte("media:s1:/movies"))
	want := hex.EncodeToString(sum[:])

	got, err := HashPath("media", "s1", "/movies")
	if err != nil {
		t.Fatalf("HashPath() error = %v", err)
	}
	if got != want {
		t.Errorf("HashPath() = %q, want %q", got, want)
	}
	if len(got) != 64 {
		t.Errorf("len = %d, want 64", len(got))
	}

	root, _ := HashPath("media", "s1", "/")
	if root == got {
		t.Error("root and /movies should hash differently")
	}
}

func TestHashPathRejectsColon(t *testing.T) {
	tests := []struct{ realm, storage, path string }{
		{"me:dia", "s1", "/"},
		{"media", "s:1", "/"},
		{"media", "s1", "/a:b"},
	}
	for _, tt := range tests {
		if _, err := HashPath(tt.realm, tt.storage, tt.path); err == nil {
			t.Errorf("HashPath(%q, %q, %q) should fail", tt.realm, tt.storage, tt.path)
		}
	}
}
