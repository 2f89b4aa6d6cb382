package folio

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS prints FPS and TPS in the top-left corner.
	ShowFPS bool
	// Debug enables debug logging and the state overlay.
	Debug bool
	// Resizable lets the user resize the window; the page relayouts.
	Resizable bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene   *Scene
	showFPS bool
	cursor  ebiten.CursorShapeType
}

func (g *game) Update() error {
	err := g.scene.Update()
	shape := ebiten.CursorShapeDefault
	if _, ok := g.scene.Hovered(); ok {
		shape = ebiten.CursorShapePointer
	}
	if shape != g.cursor {
		g.cursor = shape
		ebiten.SetCursorShape(shape)
	}
	return err
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout keeps one logical pixel per window pixel and forwards size and
// device scale changes to the scene.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	g.scene.Resize(float64(outsideWidth), float64(outsideHeight), scale)
	return outsideWidth, outsideHeight
}

// Run opens a window and runs scene until the window closes or the update
// function returns an error. The scene is closed on return.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(scene.viewport.Width), int(scene.viewport.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	scene.liveInput = true
	defer scene.Close()
	return ebiten.RunGame(&game{scene: scene, showFPS: cfg.ShowFPS})
}
