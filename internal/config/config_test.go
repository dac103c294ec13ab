package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jscyril/mock_music_player/api"
	"github.com/jscyril/mock_music_player/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, 200*time.Millisecond, cfg.Playback.TickInterval)
	assert.Equal(t, 0.5, cfg.Playback.ProgressStep)
	require.NotNil(t, cfg.Playback.InitialProgress)
	assert.Equal(t, 25.0, *cfg.Playback.InitialProgress)
	assert.False(t, cfg.Playback.AutoAdvance)
	assert.Equal(t, "player", cfg.UI.StartScreen)
	assert.Equal(t, "derived", cfg.UI.TimeLabel)
	assert.Equal(t, "01:04", cfg.UI.InitialTimeLabel)
	assert.True(t, cfg.MouseEnabled())
	assert.Equal(t, []string{" "}, cfg.UI.KeyBindings.PlayPause)
	assert.Equal(t, []string{"q", "ctrl+c"}, cfg.UI.KeyBindings.Quit)
	assert.Equal(t, filepath.Join("data", "player.log"), filepath.Clean(cfg.Log.File))
	require.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
data_dir: /tmp/mock
playback:
  tick_interval: 50ms
  progress_step: 2
  initial_progress: 0
  auto_advance: true
ui:
  start_screen: favorites
  time_label: static
  mouse: false
  key_bindings:
    next: ["l"]
log:
  output: stderr
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/mock", cfg.DataDir)
	assert.Equal(t, 50*time.Millisecond, cfg.Playback.TickInterval)
	assert.Equal(t, 2.0, cfg.Playback.ProgressStep)
	assert.Equal(t, 0.0, *cfg.Playback.InitialProgress)
	assert.True(t, cfg.Playback.AutoAdvance)
	assert.False(t, cfg.MouseEnabled())
	assert.Equal(t, []string{"l"}, cfg.UI.KeyBindings.Next)
	assert.Equal(t, []string{"p", "left"}, cfg.UI.KeyBindings.Previous)
	assert.Equal(t, "/tmp/mock/player.log", cfg.Log.File)

	opts, err := cfg.PlayerOptions()
	require.NoError(t, err)
	assert.Equal(t, player.Options{
		Step:             2,
		InitialProgress:  0,
		InitialTimeLabel: "01:04",
		TimeLabel:        player.TimeLabelStatic,
		AutoAdvance:      true,
		StartScreen:      api.ScreenFavorites,
	}, opts)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{"tick too fast", "playback:\n  tick_interval: 1ms\n", "TickInterval"},
		{"negative step", "playback:\n  progress_step: -1\n", "ProgressStep"},
		{"progress above range", "playback:\n  initial_progress: 120\n", "InitialProgress"},
		{"unknown screen", "ui:\n  start_screen: library\n", "StartScreen"},
		{"unknown time label", "ui:\n  time_label: wallclock\n", "TimeLabel"},
		{"unknown log output", "log:\n  output: syslog\n", "Output"},
		{"empty key binding", "ui:\n  key_bindings:\n    quit: [\"\"]\n", "Quit"},
		{"malformed yaml", "playback: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("MOCK_PLAYER_START_SCREEN", "playlist")
	t.Setenv("MOCK_PLAYER_LOG_LEVEL", "error")
	t.Setenv("MOCK_PLAYER_DATA_DIR", "/var/mock")

	cfg, err := Parse([]byte("ui:\n  start_screen: favorites\n"))
	require.NoError(t, err)

	assert.Equal(t, "playlist", cfg.UI.StartScreen)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "/var/mock", cfg.DataDir)
}

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Playback.TickInterval, cfg.Playback.TickInterval)

	_, err = os.Stat(path)
	require.NoError(t, err, "default config should be written")

	// a second load reads the file back unchanged
	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestPath(t *testing.T) {
	t.Setenv("MOCK_PLAYER_CONFIG", "/etc/mock.yaml")
	assert.Equal(t, "/etc/mock.yaml", Path())

	t.Setenv("MOCK_PLAYER_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "mockplayer", "config.yaml"), Path())
}
