package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/folio"
	"github.com/phanxgames/folio/headless"
)

var snapshotOpts struct {
	out       string
	route     string
	scroll    float64
	section   string
	frames    int
	pointerX  float64
	pointerY  float64
	pointer   bool
	particles bool
	scale     float64
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the page to a PNG without opening a window",
	Long: `Renders the page headlessly. The page can be scrolled to an offset or
navigated to a section first. With --particles only the hero particle field
is rendered.`,
	RunE: runSnapshot,
}

func init() {
	f := snapshotCmd.Flags()
	f.StringVarP(&snapshotOpts.out, "out", "o", "snapshot.png", "output PNG path")
	f.StringVar(&snapshotOpts.route, "route", "home", "page to render (home, impressum)")
	f.Float64Var(&snapshotOpts.scroll, "scroll", 0, "scroll offset in pixels")
	f.StringVar(&snapshotOpts.section, "section", "", "navigate to this section id before rendering")
	f.IntVar(&snapshotOpts.frames, "frames", 60, "frames to advance before rendering")
	f.Float64Var(&snapshotOpts.pointerX, "pointer-x", 0, "pointer x inside the hero")
	f.Float64Var(&snapshotOpts.pointerY, "pointer-y", 0, "pointer y inside the hero")
	f.BoolVar(&snapshotOpts.particles, "particles", false, "render only the particle field")
	f.Float64Var(&snapshotOpts.scale, "scale", 1, "device pixel ratio")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snapshotOpts.pointer = cmd.Flags().Changed("pointer-x") || cmd.Flags().Changed("pointer-y")

	if snapshotOpts.particles {
		return snapshotParticles(cfg.SceneConfig())
	}

	route, err := folio.ParseRoute(snapshotOpts.route)
	if err != nil {
		return err
	}
	scene, err := newScene(cfg)
	if err != nil {
		return err
	}
	defer scene.Close()
	scene.SetCanvasFactory(func() folio.Canvas { return headless.NewCanvas() })
	scene.Resize(scene.Viewport().Width, scene.Viewport().Height, snapshotOpts.scale)

	const dt = 1.0 / 60
	if route != folio.RouteHome {
		scene.Router().Navigate(route)
		scene.Step(dt)
	}
	if snapshotOpts.section != "" {
		if err := scene.Navigator().NavigateTo(snapshotOpts.section); err != nil {
			return err
		}
	} else if snapshotOpts.scroll > 0 {
		scene.Viewport().JumpTo(snapshotOpts.scroll)
		scene.Evaluate()
	}
	if snapshotOpts.pointer {
		scene.Field().SetPointer(snapshotOpts.pointerX, snapshotOpts.pointerY)
	}
	for i := 0; i < snapshotOpts.frames || scene.Viewport().Scrolling(); i++ {
		scene.Step(dt)
	}

	if err := headless.SaveSnapshot(scene, snapshotOpts.out); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (scrollY %.0f, nav %s)\n",
			snapshotOpts.out, scene.Viewport().ScrollY(), scene.NavResolver().Active())
	}
	return nil
}

func snapshotParticles(sc folio.SceneConfig) error {
	w, h := sc.Width, sc.Height
	for _, sec := range sc.Sections {
		if sec.ID == sc.HeroID && sec.Height > 0 {
			h = sec.Height
		}
	}
	opts := headless.FieldOptions{Width: w, Height: h, Scale: snapshotOpts.scale, Frames: snapshotOpts.frames}
	if snapshotOpts.pointer {
		opts.Pointer = &folio.Vec2{X: snapshotOpts.pointerX, Y: snapshotOpts.pointerY}
	}
	canvas, err := headless.RenderField(sc.Field, opts)
	if err != nil {
		return err
	}
	return canvas.SavePNG(snapshotOpts.out)
}
