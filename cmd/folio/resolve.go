package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phanxgames/folio"
)

var resolveRoute string

var resolveCmd = &cobra.Command{
	Use:   "resolve <scrollY>...",
	Short: "Print the active section of every consumer at the given scroll offsets",
	Long: `Evaluates the navigation, sub-navigation, timeline and focus consumers
against the laid-out page at each scroll offset and prints the result, along
with scroll progress and the timeline's past flags.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveRoute, "route", "home", "page to evaluate (home, impressum)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	offsets := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("invalid scroll offset %q: %w", a, err)
		}
		offsets[i] = v
	}
	route, err := folio.ParseRoute(resolveRoute)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	scene, err := newScene(cfg)
	if err != nil {
		return err
	}
	defer scene.Close()
	scene.SetCanvasFactory(func() folio.Canvas { return nil })
	if route != folio.RouteHome {
		scene.Router().Navigate(route)
		scene.Step(0)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCROLL\tNAV\tSUBNAV\tTIMELINE\tFOCUS\tPROGRESS\tPAST")
	for _, y := range offsets {
		scene.Viewport().JumpTo(y)
		scene.Evaluate()
		subnav := "-"
		if r := scene.SubNavResolver(); r != nil && scene.SubNavVisible() {
			subnav = r.Active()
		}
		fmt.Fprintf(tw, "%.0f\t%s\t%s\t%s\t%s\t%.1f%%\t%s\n",
			scene.Viewport().ScrollY(),
			scene.NavResolver().Active(),
			subnav,
			scene.TimelineResolver().Active(),
			scene.FocusResolver().Active(),
			scene.Progress().Current().Progress,
			pastFlags(scene.TimelineResolver().State().Past()),
		)
	}
	return tw.Flush()
}

func pastFlags(past []bool) string {
	var b strings.Builder
	for _, p := range past {
		if p {
			b.WriteByte('x')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
