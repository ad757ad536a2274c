// Package normalize derives POSIX-compliant system usernames from hub
// usernames, which may be arbitrarily long and must be squeezed under the
// 32-character useradd limit.
package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"unicode/utf8"
)

// System username length limits. Hashed names reserve room for the
// truncated original, a hyphen, and a short hash suffix, so the result
// always stays under 32 characters.
const (
	hashBelow  = 26
	maxLen     = 32
	hashSuffix = 5
)

// SystemUsername generates a POSIX-compliant system username by prepending
// the configured account prefix to a hub username.
//
// With hashing enabled, prefixed names shorter than 26 characters pass
// through unchanged; longer ones are truncated to 26 characters and
// suffixed with a hyphen and the first 5 hex characters of the SHA-256 of
// the full name, keeping distinct long usernames distinct. With hashing
// disabled, names up to 32 characters pass through and longer ones are
// truncated to 32. Truncation counts characters, not bytes, so a
// multi-byte username is never cut mid-rune.
func SystemUsername(prefix, username string, hash bool) string {
	name := prefix + username

	if hash {
		if utf8.RuneCountInString(name) < hashBelow {
			return name
		}
		sum := sha256.Sum256([]byte(name))
		return truncate(name, hashBelow) + "-" + hex.EncodeToString(sum[:])[:hashSuffix]
	}

	if utf8.RuneCountInString(name) <= maxLen {
		return name
	}
	return truncate(name, maxLen)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
