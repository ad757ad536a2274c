package normalize

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSystemUsernameShortPassesThrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "perch-ada", SystemUsername("perch-", "ada", true))
}

func TestSystemUsernameLongIsHashed(t *testing.T) {
	t.Parallel()

	long := "perch-" + strings.Repeat("a", 40)
	got := SystemUsername("perch-", strings.Repeat("a", 40), true)

	assert.Less(t, len(got), 32)
	assert.True(t, strings.HasPrefix(got, long[:26]+"-"), "got %q", got)
	assert.Len(t, got, 26+1+5)
}

func TestSystemUsernameHashIsStable(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 30)
	assert.Equal(t, SystemUsername("", long, true), SystemUsername("", long, true))
}

func TestSystemUsernameDistinctLongNamesStayDistinct(t *testing.T) {
	t.Parallel()

	// Same 26-character prefix, different tails.
	a := strings.Repeat("u", 26) + "-alpha"
	b := strings.Repeat("u", 26) + "-beta"
	assert.NotEqual(t, SystemUsername("", a, true), SystemUsername("", b, true))
}

func TestSystemUsernamePrefixCountsTowardLimits(t *testing.T) {
	t.Parallel()

	// The name alone fits, prefix plus name does not.
	name := strings.Repeat("c", 24)
	got := SystemUsername("perch-", name, true)

	assert.Len(t, got, 26+1+5)
	assert.True(t, strings.HasPrefix(got, "perch-"), "got %q", got)
}

func TestSystemUsernameNoHash(t *testing.T) {
	t.Parallel()

	within := strings.Repeat("a", 32)
	assert.Equal(t, within, SystemUsername("", within, false))

	beyond := strings.Repeat("b", 40)
	assert.Equal(t, strings.Repeat("b", 32), SystemUsername("", beyond, false))
}

func TestSystemUsernameMultiByteTruncatesOnRunes(t *testing.T) {
	t.Parallel()

	// Two-byte runes: byte-based slicing would cut one in half.
	long := strings.Repeat("ü", 40)

	plain := SystemUsername("", long, false)
	assert.True(t, utf8.ValidString(plain))
	assert.Equal(t, 32, utf8.RuneCountInString(plain))

	hashed := SystemUsername("", long, true)
	assert.True(t, utf8.ValidString(hashed))
	assert.True(t, strings.HasPrefix(hashed, strings.Repeat("ü", 26)+"-"), "got %q", hashed)
}
