package api

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// HashPath computes the server-side identifier of an indexed path: the hex
// SHA-256 of "realm:storage:path". None of the three parts may contain ':'.
func HashPath(realm, storage, path string) (string, error) {
	for _, part := range []struct{ what, v string }{
		{"realm", realm},
		{"storage", storage},
		{"path", path},
	} {
		if strings.Contains(part.v, ":") {
			return "", fmt.Errorf("%s name can't contain \":\": %q", part.what, part.v)
		}
	}
	sum := sha256.Sum256([]byte(realm + ":" + storage + ":" + path))
	return hex.EncodeToString(sum[:]), nil
}
