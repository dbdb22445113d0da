package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultExtensions, cfg.Extensions)
	assert.Equal(t, DefaultPathsToIgnore, cfg.PathsToIgnore)

	cfg.Extensions[0] = ".txt"
	assert.Equal(t, ".robot", DefaultExtensions[0], "defaults must not be shared")
}

func TestConfig_GetSuitePath(t *testing.T) {
	tests := []struct {
		name     string
		suite    string
		expected string
	}{
		{name: "empty", suite: "", expected: ""},
		{name: "relative", suite: "tests/../tests/login.robot", expected: "tests/login.robot"},
		{name: "absolute", suite: "/suites/", expected: "/suites"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Flags: Flags{Suite: tt.suite}}
			assert.Equal(t, tt.expected, cfg.GetSuitePath())
		})
	}
}

func TestConfig_ApplyFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("merges values", func(t *testing.T) {
		path := filepath.Join(dir, "tcl.yaml")
		content := "extensions: [robot, .RESOURCE]\nignore:\n  - \"**/wip/**\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg := New()
		require.NoError(t, cfg.ApplyFile(path))
		assert.Equal(t, []string{".robot", ".resource"}, cfg.Extensions)
		assert.Equal(t, []string{"**/wip/**"}, cfg.PathsToIgnore)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		cfg := New()
		require.NoError(t, cfg.ApplyFile(path))
		assert.Equal(t, DefaultExtensions, cfg.Extensions)
	})

	t.Run("missing file", func(t *testing.T) {
		err := New().ApplyFile(filepath.Join(dir, "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("extensions: [robot\n"), 0644))

		err := New().ApplyFile(path)
		require.Error(t, err)
		assert.NotErrorIs(t, err, os.ErrNotExist)
	})
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(ExtensionsEnv, "robot, rbt ,")
	t.Setenv(IgnoreEnv, "**/tmp/**")

	cfg := New()
	cfg.ApplyEnv()

	assert.Equal(t, []string{".robot", ".rbt"}, cfg.Extensions)
	assert.Equal(t, []string{"**/tmp/**"}, cfg.PathsToIgnore)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv(ExtensionsEnv, "")
	t.Setenv(IgnoreEnv, "")

	t.Run("defaults without files", func(t *testing.T) {
		cfg, err := Load(Flags{Suite: "suites"})
		require.NoError(t, err)
		assert.Equal(t, "suites", cfg.Flags.Suite)
		assert.Equal(t, DefaultExtensions, cfg.Extensions)
	})

	t.Run("reads default config file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(DefaultConfigFile, []byte("ignore: [\"**/draft/**\"]\n"), 0644))
		t.Cleanup(func() { _ = os.Remove(DefaultConfigFile) })

		cfg, err := Load(Flags{})
		require.NoError(t, err)
		assert.Equal(t, []string{"**/draft/**"}, cfg.PathsToIgnore)
	})

	t.Run("explicit missing config file is not fatal", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, filepath.Join(dir, "nope.yaml"))

		cfg, err := Load(Flags{})
		require.NoError(t, err)
		assert.Equal(t, DefaultPathsToIgnore, cfg.PathsToIgnore)
	})

	t.Run("reads .env file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(DefaultEnvFile, []byte("TCL_IGNORE=**/wip/**\n"), 0644))
		// godotenv keeps variables that are already set, even when empty
		require.NoError(t, os.Unsetenv(IgnoreEnv))
		t.Cleanup(func() {
			_ = os.Remove(DefaultEnvFile)
			_ = os.Unsetenv(IgnoreEnv)
		})

		cfg, err := Load(Flags{})
		require.NoError(t, err)
		assert.Equal(t, []string{"**/wip/**"}, cfg.PathsToIgnore)
	})

	t.Run("environment wins over .env file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(DefaultEnvFile, []byte("TCL_IGNORE=**/wip/**\n"), 0644))
		t.Cleanup(func() { _ = os.Remove(DefaultEnvFile) })
		t.Setenv(IgnoreEnv, "**/tmp/**")

		cfg, err := Load(Flags{})
		require.NoError(t, err)
		assert.Equal(t, []string{"**/tmp/**"}, cfg.PathsToIgnore)
	})

	t.Run("malformed config file is fatal", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ignore: {"), 0644))
		t.Setenv(ConfigFileEnv, path)

		_, err := Load(Flags{})
		assert.Error(t, err)
	})
}
