package sfoglia

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, constants.DefaultMountID, opts.MountID)
	assert.Equal(t, "info", opts.LogLevel)
	assert.Equal(t, "en", opts.Locale)
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfoglia.toml")
	data := []byte("mount_id = \"root\"\nlocale = \"it\"\nlog_level = \"debug\"\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, "root", opts.MountID)
	assert.Equal(t, "it", opts.Locale)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.Empty(t, opts.LogPath)
}

func TestLoadOptionsPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfoglia.toml")
	require.NoError(t, os.WriteFile(path, []byte("locale = \"it\"\n"), 0644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultMountID, opts.MountID)
	assert.Equal(t, "it", opts.Locale)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestWithDefaults(t *testing.T) {
	opts := Options{Locale: "it"}.withDefaults()
	assert.Equal(t, constants.DefaultMountID, opts.MountID)
	assert.Equal(t, "info", opts.LogLevel)
	assert.Equal(t, "it", opts.Locale)
}
