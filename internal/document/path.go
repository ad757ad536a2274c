package document

import (
	"fmt"
	"strings"

	perrors "github.com/perchhub/perch-config/internal/errors"
)

// Path is an ordered sequence of mapping keys addressing a node in a
// document, derived from a dot-separated string such as "auth.type".
type Path []string

// ParsePath splits a dot-separated key path into its segments. Segments are
// used verbatim as mapping keys; there is no escaping and no list-index
// syntax. An empty input or an empty segment yields ErrInvalidPath.
func ParsePath(keyPath string) (Path, error) {
	if keyPath == "" {
		return nil, fmt.Errorf("%w: path is empty", perrors.ErrInvalidPath)
	}
	segments := strings.Split(keyPath, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q contains an empty segment", perrors.ErrInvalidPath, keyPath)
		}
	}
	return Path(segments), nil
}

// String returns the dot-separated form of the path.
func (p Path) String() string {
	return strings.Join(p, ".")
}
