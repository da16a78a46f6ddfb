package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/lanedefense/pkg/embedded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	assert.Equal(t, 5, s.Grid.Rows)
	assert.Equal(t, 9, s.Grid.Columns)
	assert.Equal(t, 50, s.Economy.StartingSun)
	assert.Equal(t, 990.0, s.Grid.Width())
	assert.Equal(t, 600.0, s.Grid.Height())
}

func TestParseEmbeddedSettings(t *testing.T) {
	data, err := embedded.ReadFile(embedded.SettingsPath)
	require.NoError(t, err)

	s, err := ParseSettings(data)
	require.NoError(t, err)
	assert.Equal(t, *DefaultSettings(), *s)
}

func TestParseSettingsPartialKeepsDefaults(t *testing.T) {
	s, err := ParseSettings([]byte("[economy]\nstarting_sun = 150\n"))
	require.NoError(t, err)

	assert.Equal(t, 150, s.Economy.StartingSun)
	assert.Equal(t, 0, s.Economy.SunCap)
	assert.Equal(t, 5, s.Grid.Rows)
	assert.Equal(t, "console", s.Logging.Format)
}

func TestParseSettingsInvalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"zero rows", "[grid]\nrows = 0\n"},
		{"negative cell", "[grid]\ncell_width = -1.0\n"},
		{"negative sun", "[economy]\nstarting_sun = -5\n"},
		{"start above cap", "[economy]\nstarting_sun = 100\nsun_cap = 50\n"},
		{"bad syntax", "[grid\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings([]byte(tt.toml))
			assert.Error(t, err)
		})
	}
}

func TestGridInBounds(t *testing.T) {
	g := DefaultSettings().Grid
	assert.True(t, g.InBounds(0, 0))
	assert.True(t, g.InBounds(4, 8))
	assert.False(t, g.InBounds(5, 0))
	assert.False(t, g.InBounds(0, 9))
	assert.False(t, g.InBounds(-1, 3))
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[simulation]\nseed = 42\n[metrics]\nenabled = true\n"), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), s.Sim.Seed)
	assert.True(t, s.Metrics.Enabled)

	_, err = LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
