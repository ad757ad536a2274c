package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/perchhub/perch-config/internal/errors"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		keyPath string
		want    Path
	}{
		{"single segment", "auth", Path{"auth"}},
		{"two segments", "auth.type", Path{"auth", "type"}},
		{"deep path", "https.letsencrypt.domains", Path{"https", "letsencrypt", "domains"}},
		{"segments are verbatim keys", "user_environment.default_app", Path{"user_environment", "default_app"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePath(tt.keyPath)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.keyPath, got.String())
		})
	}
}

func TestParsePathInvalid(t *testing.T) {
	t.Parallel()

	for _, keyPath := range []string{"", ".", "a.", ".a", "a..b"} {
		keyPath := keyPath
		t.Run("keyPath="+keyPath, func(t *testing.T) {
			t.Parallel()

			_, err := ParsePath(keyPath)
			require.Error(t, err)
			assert.ErrorIs(t, err, perrors.ErrInvalidPath)
		})
	}
}
