package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ileap/internal/config"
	"github.com/rshade/ileap/internal/logging"
	"github.com/rshade/ileap/pkg/pact"
)

// isolate points ILEAP_HOME at a fresh directory and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvProjectDir, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	isolate(t)
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []pact.CharacterizationFactors{pact.AR6}, cfg.Mapping.CharacterizationFactors)
	assert.Equal(t, config.FormatJSON, cfg.Output.DefaultFormat)
}

func TestNew_LoadsFileAndEnv(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "config.yaml"), `
company:
  name: ACME Logistics
  urn: urn:acme:logistics
mapping:
  characterization_factors: [AR5, AR6]
logging:
  level: warn
  format: json
`)
	t.Setenv(config.EnvLogLevel, "debug")

	cfg := config.New()
	assert.Equal(t, "ACME Logistics", cfg.Company.Name)
	assert.Equal(t, []pact.CharacterizationFactors{pact.AR5, pact.AR6}, cfg.Mapping.CharacterizationFactors)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	// Sections absent from the file keep their defaults.
	assert.Equal(t, 100, cfg.Batch.Size)
	require.NoError(t, cfg.Validate())
}

func TestNew_BrokenFileFallsBack(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "config.yaml"), "company: [unclosed\n")

	cfg := config.New()
	assert.Equal(t, config.Default().Company, cfg.Company)
}

func TestSave_RoundTrip(t *testing.T) {
	home := isolate(t)
	cfg := config.Default()
	cfg.Company.Name = "Saved Co"
	cfg.Demo.Seed = 99
	require.NoError(t, cfg.Save())
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())

	loaded := config.New()
	assert.Equal(t, "Saved Co", loaded.Company.Name)
	assert.Equal(t, uint64(99), loaded.Demo.Seed)

	info, err := os.Stat(cfg.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestValidate(t *testing.T) {
	isolate(t)
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad urn", func(c *config.Config) { c.Company.URN = "acme" }},
		{"unknown factor", func(c *config.Config) {
			c.Mapping.CharacterizationFactors = []pact.CharacterizationFactors{"AR4"}
		}},
		{"unknown format", func(c *config.Config) { c.Output.DefaultFormat = "xml" }},
		{"negative precision", func(c *config.Config) { c.Output.Precision = -1 }},
		{"unknown level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"unknown log format", func(c *config.Config) { c.Logging.Format = "text" }},
		{"demo size zero", func(c *config.Config) { c.Demo.Size = 0 }},
		{"demo size too big", func(c *config.Config) { c.Demo.Size = 256 }},
		{"batch size too big", func(c *config.Config) { c.Batch.Size = 1001 }},
		{"no concurrency", func(c *config.Config) { c.Batch.Concurrency = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	t.Run("empty urn allowed", func(t *testing.T) {
		cfg := config.Default()
		cfg.Company.URN = ""
		require.NoError(t, cfg.Validate())
	})
}

func TestGlobalConfig(t *testing.T) {
	isolate(t)
	first := config.GetGlobalConfig()
	assert.Same(t, first, config.GetGlobalConfig())

	replacement := config.Default()
	config.SetGlobalConfig(replacement)
	assert.Same(t, replacement, config.GetGlobalConfig())

	config.ResetGlobalConfigForTest()
	assert.NotSame(t, replacement, config.GetGlobalConfig())
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)
	assert.Equal(t, "debug", got.Level)

	lc.File = "/var/log/ileap.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/var/log/ileap.log", got.File)
}

func TestEnsureLogDir(t *testing.T) {
	home := isolate(t)
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(home, "logs", "nested", "ileap.log")
	config.SetGlobalConfig(cfg)

	require.NoError(t, config.EnsureLogDir())
	info, err := os.Stat(filepath.Join(home, "logs", "nested"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolveProjectDir(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		isolate(t)
		dir := t.TempDir()
		got := config.ResolveProjectDir(context.Background(), dir, "/does/not/matter")
		assert.Equal(t, filepath.Join(dir, ".ileap"), got)
	})

	t.Run("flag already points at .ileap", func(t *testing.T) {
		isolate(t)
		dir := filepath.Join(t.TempDir(), ".ileap")
		assert.Equal(t, dir, config.ResolveProjectDir(context.Background(), dir, ""))
	})

	t.Run("env", func(t *testing.T) {
		isolate(t)
		dir := t.TempDir()
		t.Setenv(config.EnvProjectDir, dir)
		got := config.ResolveProjectDir(context.Background(), "", "/does/not/matter")
		assert.Equal(t, filepath.Join(dir, ".ileap"), got)
	})

	t.Run("walk up", func(t *testing.T) {
		isolate(t)
		root := t.TempDir()
		writeFile(t, filepath.Join(root, ".ileap", "config.yaml"), "demo:\n  size: 3\n")
		sub := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0o750))

		got := config.ResolveProjectDir(context.Background(), "", sub)
		assert.Equal(t, filepath.Join(root, ".ileap"), got)
	})

	t.Run("none", func(t *testing.T) {
		isolate(t)
		assert.Empty(t, config.ResolveProjectDir(context.Background(), "", t.TempDir()))
	})
}

func TestNewWithProjectDir(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "config.yaml"), "company:\n  name: Global Co\n  urn: urn:global\n")

	project := filepath.Join(t.TempDir(), ".ileap")
	writeFile(t, filepath.Join(project, "config.yaml"), "demo:\n  size: 3\n  seed: 7\n")

	cfg := config.NewWithProjectDir(context.Background(), project)
	assert.Equal(t, "Global Co", cfg.Company.Name)
	assert.Equal(t, 3, cfg.Demo.Size)
	assert.Equal(t, uint64(7), cfg.Demo.Seed)

	broken := filepath.Join(t.TempDir(), ".ileap")
	writeFile(t, filepath.Join(broken, "config.yaml"), "demo: [\n")
	cfg = config.NewWithProjectDir(context.Background(), broken)
	assert.Equal(t, "Global Co", cfg.Company.Name)
	assert.Equal(t, 10, cfg.Demo.Size)

	assert.Equal(t, "Global Co", config.NewWithProjectDir(context.Background(), "").Company.Name)
}
