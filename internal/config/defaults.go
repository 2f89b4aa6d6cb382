package config

import (
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/folio"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "folio.yml"

// EnvPrefix prefixes environment overrides. Nested keys are separated by a
// double underscore: FOLIO_WINDOW__WIDTH sets window.width.
const EnvPrefix = "FOLIO_"

// easings maps config names to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-out-cubic": ease.InOutCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-quad":  ease.InOutQuad,
	"out-quad":     ease.OutQuad,
	"out-expo":     ease.OutExpo,
	"in-out-sine":  ease.InOutSine,
}

// DefaultConfig returns the configuration of the published site.
func DefaultConfig() *Config {
	sc := folio.DefaultSceneConfig()
	fc := folio.DefaultFieldConfig()
	return &Config{
		Window: WindowConfig{
			Title:     "Paul Angeles Chaquire",
			Width:     int(sc.Width),
			Height:    int(sc.Height),
			Resizable: true,
		},
		ScreenshotDir: "screenshots",
		Layout: LayoutConfig{
			NavHeight:         sc.NavHeight,
			SubNavHeight:      sc.SubNavHeight,
			FooterHeight:      sc.FooterHeight,
			SubNavReveal:      sc.SubNavReveal,
			ScrolledThreshold: sc.ScrolledThreshold,
			WheelStep:         sc.WheelStep,
		},
		Nav:      triggerConfig(sc.NavPolicy),
		SubNav:   triggerConfig(sc.SubNavPolicy),
		Timeline: triggerConfig(sc.TimelinePolicy),
		Focus:    triggerConfig(sc.FocusPolicy),
		Scroll: ScrollConfig{
			Offset:         sc.Offsets.Default,
			ToolsOffset:    sc.Offsets.OffsetFor(sc.ToolsID),
			ToolItemOffset: sc.ToolOffsets.Default,
			Duration:       float64(sc.ScrollDuration),
			Ease:           "in-out-cubic",
		},
		Progress: ProgressConfig{
			Threshold: sc.Ramp.Threshold,
			Base:      sc.Ramp.Base,
			Extra:     sc.Ramp.Extra,
		},
		Particles: ParticleConfig{
			Count:           fc.Count,
			InfluenceRadius: fc.InfluenceRadius,
			Attract:         fc.AttractFactor,
			Relax:           fc.RelaxFactor,
			LineWidth:       fc.LineWidth,
		},
	}
}

func triggerConfig(p folio.TriggerPolicy) TriggerConfig {
	return TriggerConfig{Mode: p.Mode.String(), TopGuard: p.TopGuard, TriggerOffset: p.TriggerOffset}
}
