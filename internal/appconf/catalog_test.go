package appconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.Len(t, catalog.Gases, 1)
	assert.Equal(t, "co2", catalog.Gases[0].ID)
	assert.Equal(t, "CO2", catalog.Gases[0].Label)
}

func TestLoadCatalog(t *testing.T) {
	t.Run("loads and normalizes gas IDs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gases.yaml")
		content := "gases:\n  - id: CO2\n    label: CO2\n  - id: \" ch4 \"\n    label: Methane\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		catalog, err := LoadCatalog(path)
		require.NoError(t, err)

		require.Len(t, catalog.Gases, 2)
		assert.Equal(t, "co2", catalog.Gases[0].ID)
		assert.Equal(t, "ch4", catalog.Gases[1].ID)
		assert.Equal(t, "Methane", catalog.Gases[1].Label)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gases.yaml")
		require.NoError(t, os.WriteFile(path, []byte("gases: [whoops"), 0o644))

		_, err := LoadCatalog(path)
		assert.Error(t, err)
	})
}

func TestCatalogContains(t *testing.T) {
	catalog := DefaultCatalog()

	assert.True(t, catalog.Contains("co2"))
	assert.False(t, catalog.Contains("ch4"))
}
