package config

import (
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/tanema/gween/ease"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/phanxgames/folio"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*). A missing file yields defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// FOLIO_SCROLL__DURATION -> scroll.duration
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Layout.NavHeight < 0 || c.Layout.SubNavHeight < 0 || c.Layout.FooterHeight < 0 {
		return fmt.Errorf("layout heights must be non-negative")
	}
	if c.Layout.WheelStep <= 0 {
		return fmt.Errorf("wheel_step must be positive")
	}
	for name, t := range map[string]TriggerConfig{
		"nav": c.Nav, "subnav": c.SubNav, "timeline": c.Timeline, "focus": c.Focus,
	} {
		if _, err := folio.ParseTriggerMode(t.Mode); err != nil {
			return fmt.Errorf("invalid %s.mode: %w", name, err)
		}
		if t.TopGuard < 0 || t.TriggerOffset < 0 {
			return fmt.Errorf("%s offsets must be non-negative", name)
		}
		for id, v := range t.Overrides {
			if v < 0 {
				return fmt.Errorf("%s.overrides.%s must be non-negative", name, id)
			}
		}
	}
	if c.Scroll.Offset < 0 || c.Scroll.ToolsOffset < 0 || c.Scroll.ToolItemOffset < 0 {
		return fmt.Errorf("scroll offsets must be non-negative")
	}
	if c.Scroll.Duration < 0 {
		return fmt.Errorf("scroll.duration must be non-negative")
	}
	if _, ok := easings[c.Scroll.Ease]; !ok {
		return fmt.Errorf("invalid scroll.ease %q: must be one of %s", c.Scroll.Ease, strings.Join(EaseNames(), ", "))
	}
	if c.Progress.Threshold < 0 || c.Progress.Threshold >= 100 {
		return fmt.Errorf("progress.threshold must be in [0, 100)")
	}
	if c.Particles.Count < 0 {
		return fmt.Errorf("particles.count must be non-negative")
	}
	if c.Particles.InfluenceRadius < 0 || c.Particles.LineWidth < 0 {
		return fmt.Errorf("particle sizes must be non-negative")
	}
	return nil
}

// EaseNames lists the accepted scroll.ease values.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SceneConfig converts c into a scene configuration over the default
// content. Call Validate first; invalid trigger modes fall back to
// top-offset.
func (c *Config) SceneConfig() folio.SceneConfig {
	sc := folio.DefaultSceneConfig()
	sc.Width = float64(c.Window.Width)
	sc.Height = float64(c.Window.Height)
	sc.NavHeight = c.Layout.NavHeight
	sc.SubNavHeight = c.Layout.SubNavHeight
	sc.FooterHeight = c.Layout.FooterHeight
	sc.SubNavReveal = c.Layout.SubNavReveal
	sc.ScrolledThreshold = c.Layout.ScrolledThreshold
	sc.WheelStep = c.Layout.WheelStep

	sc.NavPolicy = c.Nav.policy()
	sc.SubNavPolicy = c.SubNav.policy()
	sc.TimelinePolicy = c.Timeline.policy()
	sc.FocusPolicy = c.Focus.policy()

	sc.Offsets = folio.OffsetPolicy{
		Default:   c.Scroll.Offset,
		Overrides: map[string]float64{sc.ToolsID: c.Scroll.ToolsOffset},
	}
	sc.ToolOffsets = folio.OffsetPolicy{Default: c.Scroll.ToolItemOffset}
	sc.ScrollDuration = float32(c.Scroll.Duration)
	sc.ScrollEase = c.Ease()

	sc.Ramp = folio.ProgressRamp{Threshold: c.Progress.Threshold, Base: c.Progress.Base, Extra: c.Progress.Extra}

	sc.Field.Count = c.Particles.Count
	sc.Field.InfluenceRadius = c.Particles.InfluenceRadius
	sc.Field.AttractFactor = c.Particles.Attract
	sc.Field.RelaxFactor = c.Particles.Relax
	sc.Field.LineWidth = c.Particles.LineWidth
	if c.Particles.Seed != 0 {
		sc.Field.Rand = rand.New(rand.NewPCG(c.Particles.Seed, c.Particles.Seed^0x9e3779b97f4a7c15))
	}
	return sc
}

// Ease returns the configured easing function.
func (c *Config) Ease() ease.TweenFunc {
	if fn, ok := easings[c.Scroll.Ease]; ok {
		return fn
	}
	return folio.DefaultScrollEase
}

func (t TriggerConfig) policy() folio.TriggerPolicy {
	mode, _ := folio.ParseTriggerMode(t.Mode)
	p := folio.TriggerPolicy{Mode: mode, TopGuard: t.TopGuard, TriggerOffset: t.TriggerOffset}
	if len(t.Overrides) > 0 {
		p.Overrides = make(map[string]float64, len(t.Overrides))
		for id, v := range t.Overrides {
			p.Overrides[id] = v
		}
	}
	return p
}
