package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(home, ".lomap", "config.toml"), store.Path())

	// Cleanup
	_ = os.Remove(store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyWebID, "https://pod.example/profile/card#me")
	require.NoError(t, err)

	val, ok := store.Get(KeyWebID)
	assert.True(t, ok)
	assert.Equal(t, "https://pod.example/profile/card#me", val)
}

func TestConfigStore_GetString(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set("string_key", "hello world")
	require.NoError(t, err)

	val := store.GetString("string_key")
	assert.Equal(t, "hello world", val)

	// Non-existent key
	val = store.GetString("nonexistent")
	assert.Equal(t, "", val)

	// Wrong type
	err = store.Set("int_key", 42)
	require.NoError(t, err)
	val = store.GetString("int_key")
	assert.Equal(t, "", val)
}

func TestConfigStore_GetFloat(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyCenterLat, 43.55473)
	require.NoError(t, err)

	assert.InDelta(t, 43.55473, store.GetFloat(KeyCenterLat), 1e-9)

	// Integers are promoted
	err = store.Set("whole", 7)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, store.GetFloat("whole"), 1e-9)

	// Non-existent key
	assert.Zero(t, store.GetFloat("nonexistent"))
}

func TestConfigStore_GetStrings(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyCategories, []string{"restaurant", "museum", "park"})
	require.NoError(t, err)

	assert.Equal(t, []string{"restaurant", "museum", "park"}, store.GetStrings(KeyCategories))

	// Non-existent key
	assert.Nil(t, store.GetStrings("nonexistent"))
}

func TestConfigStore_PersistsAcrossReload(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyPodServer, "https://pod.example"))
	require.NoError(t, store.Set(KeyCenterLng, -5.92483))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "https://pod.example", reloaded.GetString(KeyPodServer))
	assert.InDelta(t, -5.92483, reloaded.GetFloat(KeyCenterLng), 1e-9)
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[pod]\nserver = \"https://pod.example\"\n"), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "https://pod.example", store.GetString(KeyPodServer))
}
