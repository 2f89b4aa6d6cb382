package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/folio"
	"github.com/phanxgames/folio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Scroll-driven portfolio with a magnetic particle hero",
	Long: `Folio renders a single-page portfolio whose navigation, sub-navigation,
timeline and focus effect follow the scroll position, with an interactive
particle field in the hero section. It runs in a window or renders
snapshots headlessly.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newScene builds a scene from cfg. Diagnostics go to stderr only with
// --verbose or debug enabled.
func newScene(cfg *config.Config) (*folio.Scene, error) {
	scene, err := folio.NewScene(cfg.SceneConfig())
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	scene.ScreenshotDir = cfg.ScreenshotDir
	if !verbose && !cfg.Debug {
		scene.LogOutput = io.Discard
	} else {
		scene.LogOutput = os.Stderr
	}
	scene.SetDebugMode(cfg.Debug)
	return scene, nil
}
