package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnvMissingFileIsFine(t *testing.T) {
	require.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestInitViperReadsPrefixedEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATEKIT_LOG_LEVEL=debug\n"), 0o600))

	t.Setenv("DATEKIT_BACKEND", "strftime")
	// registered so the variable loaded below is removed after the test
	t.Setenv("DATEKIT_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("DATEKIT_LOG_LEVEL"))

	require.NoError(t, loadDotEnv(path))

	t.Chdir(dir)

	v, err := initViper()
	require.NoError(t, err)

	assert.Equal(t, "strftime", v.GetString("backend"))
	assert.Equal(t, "debug", v.GetString("log_level"))
}
