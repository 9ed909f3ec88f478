package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should return defaults without a file", func(t *testing.T) {
		cfg, err := Load(New(), "")
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 0, cfg.Mask.Delay)
		assert.Equal(t, int64(1), cfg.Mask.Seed)
		assert.Equal(t, "text", cfg.Output.Format)
		assert.False(t, cfg.Mask.ReplaceMissing)
	})

	t.Run("Should read a YAML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mask.yaml")
		content := "mask:\n  delay: 3\n  probability: 0.25\n  replace_missing: true\noutput:\n  format: sparse\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		cfg, err := Load(New(), path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Mask.Delay)
		assert.InDelta(t, 0.25, cfg.Mask.Probability, 1e-12)
		assert.Equal(t, "sparse", cfg.Output.Format)
		assert.True(t, cfg.Mask.ReplaceMissing)
	})

	t.Run("Should let the environment override defaults", func(t *testing.T) {
		t.Setenv("PROJECTMAC_MASK_DELAY", "7")
		cfg, err := Load(New(), "")
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Mask.Delay)
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("Should reject invalid settings", func(t *testing.T) {
		v := New()
		v.Set("mask.probability", 1.5)
		_, err := Load(v, "")
		assert.ErrorContains(t, err, "mask.probability")
	})
}

func TestValidate(t *testing.T) {
	t.Run("Should reject unknown formats and negative delays", func(t *testing.T) {
		cfg := Config{Output: OutputConfig{Format: "xml"}}
		assert.Error(t, cfg.Validate())
		cfg = Config{Output: OutputConfig{Format: "json"}, Mask: MaskConfig{Delay: -1}}
		assert.Error(t, cfg.Validate())
	})
}
