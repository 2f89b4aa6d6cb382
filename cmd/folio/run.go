package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/folio"
)

// errScriptDone ends the game loop once a test script has finished.
var errScriptDone = errors.New("script finished")

var (
	runDebug  bool
	runScript string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the portfolio in a window",
	Long: `Opens the portfolio in a desktop window. With --script, a JSON test
script drives scrolling, clicks and screenshots frame by frame.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runDebug, "debug", false, "enable the debug overlay and logging")
	runCmd.Flags().StringVar(&runScript, "script", "", "JSON test script to execute")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runDebug {
		cfg.Debug = true
	}
	if runScript != "" {
		cfg.Script = runScript
	}

	scene, err := newScene(cfg)
	if err != nil {
		return err
	}

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		runner, err := folio.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
		scene.SetUpdateFunc(func() error {
			if runner.Done() {
				return errScriptDone
			}
			return nil
		})
	}

	err = folio.Run(scene, folio.RunConfig{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		ShowFPS:   cfg.Window.ShowFPS,
		Debug:     cfg.Debug,
		Resizable: cfg.Window.Resizable,
	})
	if errors.Is(err, errScriptDone) {
		return nil
	}
	return err
}
