// Package fingerprint computes the deterministic content fingerprint used to
// recognize the same resume across sessions and enhancement rounds.
package fingerprint

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Hash returns a stable fingerprint of the content as an 8-character
// lowercase hex string. Content is case-folded and internal whitespace is
// collapsed before hashing, so inputs differing only in case or whitespace
// run-length produce the same digest.
//
// The digest is FNV-1a/32. It is an identity key, not a security primitive;
// the 32-bit width is load-bearing because stored enhancement-history records
// are keyed by it, so it must not change across releases.
func Hash(content string) string {
	folded := strings.ToLower(strings.TrimSpace(content))
	folded = whitespaceRun.ReplaceAllString(folded, " ")

	h := fnv.New32a()
	_, _ = h.Write([]byte(folded))
	return fmt.Sprintf("%08x", h.Sum32())
}
