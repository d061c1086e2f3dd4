package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestStore creates a store on a throwaway database under the
// test's temporary directory. It is closed automatically.
func NewTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "patches.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}
