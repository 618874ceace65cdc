package main

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/milk9111/stackworld/assets"
	"github.com/milk9111/stackworld/engine"
	"github.com/milk9111/stackworld/script"
	"github.com/milk9111/stackworld/state"
)

var (
	flagScripts []string
	flagStart   string
	flagAssets  string
	flagWatch   bool
	flagProfile string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the game window",
	Long: `Open the game window and start at the title screen.

Controls:
  Enter      - Start / continue
  P          - Pause
  B          - Bonus round (scripted)
  Space      - Spawn more dots
  Esc        - Back
  Q          - Quit from the title screen`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func init() {
	runCmd.Flags().StringSliceVar(&flagScripts, "script", nil, "Extra tengo state scripts, registered by file name")
	runCmd.Flags().StringVar(&flagStart, "start", "title", "State to open on top of the title screen")
	runCmd.Flags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides assets.dir)")
	runCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload assets when files change (overrides assets.watch)")
	runCmd.Flags().StringVar(&flagProfile, "profile", "", "Write a profile to the working directory: cpu or mem")
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("assets") {
		cfg.Assets.Dir = flagAssets
	}
	if cmd.Flags().Changed("watch") {
		cfg.Assets.Watch = flagWatch
	}

	log, err := engine.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	switch flagProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile %q (want cpu or mem)", flagProfile)
	}

	manager := assets.NewManager()
	opts := []engine.Option{engine.WithLogger(log), engine.WithAssets(manager)}

	if dir := cfg.Assets.Dir; dir != "" {
		n, err := manager.LoadDir(dir)
		if err != nil {
			return fmt.Errorf("load assets: %w", err)
		}
		log.Info("assets loaded", zap.String("dir", dir), zap.Int("count", n))

		if cfg.Assets.Watch {
			w, err := assets.NewWatcher(dir)
			if err != nil {
				return fmt.Errorf("watch assets: %w", err)
			}
			opts = append(opts, engine.WithWatcher(w))
			log.Info("watching assets", zap.String("dir", dir))
		}
	}

	reg, err := newRegistry(cfg, flagScripts)
	if err != nil {
		return err
	}
	root, pushed, err := startStates(reg, flagStart)
	if err != nil {
		return err
	}
	opts = append(opts, engine.WithPushed(pushed...))

	log.Info("starting",
		zap.String("state", flagStart),
		zap.Strings("states", reg.Names()),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)
	return engine.Run(cfg, root, opts...)
}

// startStates keeps the title screen at the root and, when start names another
// state, returns it to be pushed on top so that it can pop back to the title.
func startStates(reg *script.Registry, start string) (state.State, []state.State, error) {
	root, err := reg.New("title")
	if err != nil {
		return nil, nil, err
	}
	if start == "title" {
		return root, nil, nil
	}
	next, err := reg.New(start)
	if err != nil {
		return nil, nil, err
	}
	return root, []state.State{next}, nil
}
