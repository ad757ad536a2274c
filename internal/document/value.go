package document

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	intPattern   = regexp.MustCompile(`^\d+$`)
	floatPattern = regexp.MustCompile(`^\d+\.\d*$`)
)

// ParseValue coerces a command-line value string into a typed scalar:
// all digits become an integer, digits-dot-digits become a float,
// case-insensitive "true"/"false" become a boolean, and anything else
// stays a string. Mutation operations receive already-typed values; the
// coercion happens here, at the input boundary.
func ParseValue(raw string) Scalar {
	switch {
	case intPattern.MatchString(raw):
		n, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return Scalar{Value: n}
		}
		// Out of int64 range; keep the digits as a string.
		return Scalar{Value: raw}
	case floatPattern.MatchString(raw):
		f, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return Scalar{Value: f}
		}
		return Scalar{Value: raw}
	case strings.EqualFold(raw, "true"):
		return Scalar{Value: true}
	case strings.EqualFold(raw, "false"):
		return Scalar{Value: false}
	default:
		return Scalar{Value: raw}
	}
}
