package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigInitProjectLocal verifies init writes .slidekit/config.yaml and
// a .gitignore in the current directory.
func TestConfigInitProjectLocal(t *testing.T) {
	t.Setenv("SLIDEKIT_HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	stdout, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created")

	assert.FileExists(t, filepath.Join(dir, ".slidekit", "config.yaml"))
	assert.FileExists(t, filepath.Join(dir, ".slidekit", ".gitignore"))
}

// TestConfigInitGlobal verifies --global writes under the config home.
func TestConfigInitGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SLIDEKIT_HOME", home)
	t.Chdir(t.TempDir())

	_, _, err := execute(t, "config", "init", "--global")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, "config.yaml"))
}

// TestConfigInitRefusesOverwrite verifies existing configs survive unless
// --force is given.
func TestConfigInitRefusesOverwrite(t *testing.T) {
	t.Setenv("SLIDEKIT_HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := execute(t, "config", "init")
	require.NoError(t, err)

	path := filepath.Join(dir, ".slidekit", "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\nslider:\n  gap: 9\n"), 0o600))

	_, _, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "gap: 9", "existing config must be untouched")

	_, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

// TestConfigValidateClean verifies a default setup validates.
func TestConfigValidateClean(t *testing.T) {
	t.Setenv("SLIDEKIT_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	stdout, _, err := execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration is valid")
}

// TestConfigValidateReportsFindings verifies problems in the project overlay
// are reported with a failing exit.
func TestConfigValidateReportsFindings(t *testing.T) {
	t.Setenv("SLIDEKIT_HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	projectDir := filepath.Join(dir, ".slidekit")
	require.NoError(t, os.MkdirAll(projectDir, 0o750))
	overlay := "version: \"1.0\"\nslider:\n  gap: -3\nlogging:\n  level: shouty\n"
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte(overlay), 0o600))

	_, stderr, err := execute(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "problem")
	assert.Contains(t, stderr, "slider.gap")
	assert.Contains(t, stderr, "logging.level")
}

// TestConfigPath verifies the path command reports global and project
// locations.
func TestConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SLIDEKIT_HOME", home)
	dir := t.TempDir()
	t.Chdir(dir)

	stdout, _, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(home, "config.yaml"))
	assert.Contains(t, stdout, "(none found)")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".slidekit"), 0o750))
	stdout, _, err = execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(dir, ".slidekit", "config.yaml"))
}
