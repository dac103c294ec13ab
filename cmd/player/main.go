package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/cockroachdb/errors"
	"github.com/jscyril/mock_music_player/internal/album"
	"github.com/jscyril/mock_music_player/internal/config"
	"github.com/jscyril/mock_music_player/internal/logger"
	"github.com/jscyril/mock_music_player/internal/playback"
	"github.com/jscyril/mock_music_player/internal/player"
	"github.com/jscyril/mock_music_player/internal/ui"
	"github.com/jscyril/mock_music_player/internal/ui/views"
	"github.com/jscyril/mock_music_player/pkg/events"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Params are the flags of the root command
type Params struct {
	Config   string `short:"c" optional:"true" help:"Path to the config file (defaults to the XDG location)"`
	LogLevel string `optional:"true" help:"Override the configured log level" alts:"debug,info,warn,error"`
	Screen   string `short:"s" optional:"true" help:"Screen to start on" alts:"player,playlist,favorites"`
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	boa.CmdT[Params]{
		Use:         "mockplayer",
		Short:       "A mock music player for the terminal",
		Version:     appVersion(),
		ParamEnrich: defaultParamEnricher(),
		SubCmds: []*cobra.Command{
			TracksCmd(),
			ArcCmd(),
		},
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}.Run()
}

func run(params *Params) error {
	cfg, err := loadConfig(params)
	if err != nil {
		return err
	}

	closer, err := logger.Init(logger.Config{
		Output: cfg.Log.Output,
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
	})
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	defer closer.Close()

	opts, err := cfg.PlayerOptions()
	if err != nil {
		return err
	}

	state, err := player.New(album.Sample(), opts)
	if err != nil {
		return errors.Wrap(err, "create player state")
	}

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := playback.NewEngine(state, events.NewBus(), cfg.Playback.TickInterval)
	engine.Start(ctx)
	defer engine.Close()
	logTrackChanges(ctx, engine.Bus(), zlog.With().Str("component", "nowplaying").Logger())

	zlog.Info().
		Str("screen", opts.StartScreen.String()).
		Dur("tick", cfg.Playback.TickInterval).
		Msg("Starting mock player")

	err = ui.Run(ctx, engine, ui.Options{
		Keys:    cfg.UI.KeyBindings,
		Palette: palette(cfg.UI.Theme),
		Mouse:   cfg.MouseEnabled(),
	})
	if err != nil {
		zlog.Error().Err(err).Msg("UI exited with error")
		return errors.Wrap(err, "run ui")
	}

	if engine.Active() {
		zlog.Debug().Msg("Stopping progress task")
	}
	zlog.Info().Msg("Mock player stopped")
	return nil
}

// loadConfig loads the config file and applies flag overrides on top
func loadConfig(params *Params) (*config.Config, error) {
	path := params.Config
	if path == "" {
		path = config.Path()
	}

	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}

	if params.LogLevel != "" {
		cfg.Log.Level = params.LogLevel
	}
	if params.Screen != "" {
		cfg.UI.StartScreen = params.Screen
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func palette(theme config.ThemeConfig) views.Palette {
	return views.Palette{
		Accent:    theme.Accent,
		Text:      theme.Text,
		Muted:     theme.Muted,
		Highlight: theme.Highlight,
		Badge:     theme.Badge,
		Border:    theme.Border,
	}
}

func defaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}

	version := bi.Main.Version
	if version == "" {
		version = "unknown-(no version)"
	}

	return version
}
