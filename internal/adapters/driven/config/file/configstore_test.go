package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, ConfigFileName), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "vibepad")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestDefaultConfigDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".vibepad"), dir)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("str", "hello"))
	require.NoError(t, store.Set("num", 42))
	require.NoError(t, store.Set("flag", true))
	require.NoError(t, store.Set("list", []string{"a", "b"}))

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{name: "string", got: store.GetString("str"), expected: "hello"},
		{name: "string wrong type", got: store.GetString("num"), expected: ""},
		{name: "string missing", got: store.GetString("missing"), expected: ""},
		{name: "int", got: store.GetInt("num"), expected: 42},
		{name: "int wrong type", got: store.GetInt("str"), expected: 0},
		{name: "bool", got: store.GetBool("flag"), expected: true},
		{name: "bool wrong type", got: store.GetBool("str"), expected: false},
		{name: "slice", got: store.GetStringSlice("list"), expected: []string{"a", "b"}},
		{name: "slice wrong type", got: store.GetStringSlice("num"), expected: []string(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("ui.active_tab", "markdown"))
	require.NoError(t, store1.Set("ui.split_ratio", 0.65))
	require.NoError(t, store1.Set("viewer.options", `{"theme":"mdn","collapsed":2}`))
	require.NoError(t, store1.Set("list", []string{"x", "y"}))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "markdown", store2.GetString("ui.active_tab"))
	ratio, ok := store2.Get("ui.split_ratio")
	require.True(t, ok)
	assert.Equal(t, 0.65, ratio)
	assert.Equal(t, `{"theme":"mdn","collapsed":2}`, store2.GetString("viewer.options"))
	assert.Equal(t, []string{"x", "y"}, store2.GetStringSlice("list"))
}

func TestConfigStore_Load_FlattensTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[ui]\nactive_tab = 'markdown'\n\n[ui.panels]\nsplit = 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "markdown", store.GetString("ui.active_tab"))
	assert.Equal(t, 3, store.GetInt("ui.panels.split"))
	assert.Equal(t, []string{"ui.active_tab", "ui.panels.split"}, store.Keys())
}

func TestConfigStore_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("keep", "1"))
	require.NoError(t, store.Set("drop", "2"))

	require.NoError(t, store.Delete("drop"))
	_, ok := store.Get("drop")
	assert.False(t, ok)

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	_, ok = reloaded.Get("drop")
	assert.False(t, ok)
	assert.Equal(t, "1", reloaded.GetString("keep"))
}

func TestConfigStore_Delete_Missing(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Delete("never-set"))

	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err), "deleting a missing key should not write the file")
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_NoTempFilesLeft(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("a", "1"))
	require.NoError(t, store.Set("b", "2"))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ConfigFileName, entries[0].Name())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("this is not valid TOML {{{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Save_Explicit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	store.mu.Lock()
	store.data["manual_key"] = "manual_value"
	store.mu.Unlock()

	require.NoError(t, store.Save())

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "manual_value", store2.GetString("manual_key"))
}

func TestConfigStore_Save_WriteError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("test", "value"))

	// A directory in place of the file makes the rename fail.
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(store.Path(), "blocker"), nil, 0600))

	assert.Error(t, store.Set("another", "value"))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("valid", "data"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_, _ = store.Get(key)
			_ = store.Delete(key)
		}(i)
	}
	wg.Wait()

	assert.Empty(t, store.Keys())
}
