package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledAssetsAreEmbedded(t *testing.T) {
	for _, a := range Bundled() {
		assert.NotEmpty(t, a.Content, a.Path)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	n, err := Write(dir)
	require.NoError(t, err)

	total := 0
	for _, a := range Bundled() {
		data, err := os.ReadFile(filepath.Join(dir, a.Path))
		require.NoError(t, err)
		assert.Equal(t, a.Content, data)
		total += len(data)
	}
	assert.Equal(t, total, n)
}
