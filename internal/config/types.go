package config

// Config is the top-level folio configuration, corresponding to folio.yml.
type Config struct {
	Window        WindowConfig   `yaml:"window" koanf:"window"`
	Debug         bool           `yaml:"debug" koanf:"debug"`
	ScreenshotDir string         `yaml:"screenshot_dir" koanf:"screenshot_dir"`
	Script        string         `yaml:"script" koanf:"script"`
	Layout        LayoutConfig   `yaml:"layout" koanf:"layout"`
	Nav           TriggerConfig  `yaml:"nav" koanf:"nav"`
	SubNav        TriggerConfig  `yaml:"subnav" koanf:"subnav"`
	Timeline      TriggerConfig  `yaml:"timeline" koanf:"timeline"`
	Focus         TriggerConfig  `yaml:"focus" koanf:"focus"`
	Scroll        ScrollConfig   `yaml:"scroll" koanf:"scroll"`
	Progress      ProgressConfig `yaml:"progress" koanf:"progress"`
	Particles     ParticleConfig `yaml:"particles" koanf:"particles"`
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title     string `yaml:"title" koanf:"title"`
	Width     int    `yaml:"width" koanf:"width"`
	Height    int    `yaml:"height" koanf:"height"`
	Resizable bool   `yaml:"resizable" koanf:"resizable"`
	ShowFPS   bool   `yaml:"show_fps" koanf:"show_fps"`
}

// LayoutConfig holds page metrics in logical pixels.
type LayoutConfig struct {
	NavHeight         float64 `yaml:"nav_height" koanf:"nav_height"`
	SubNavHeight      float64 `yaml:"subnav_height" koanf:"subnav_height"`
	FooterHeight      float64 `yaml:"footer_height" koanf:"footer_height"`
	SubNavReveal      float64 `yaml:"subnav_reveal" koanf:"subnav_reveal"`
	ScrolledThreshold float64 `yaml:"scrolled_threshold" koanf:"scrolled_threshold"`
	WheelStep         float64 `yaml:"wheel_step" koanf:"wheel_step"`
}

// TriggerConfig selects how one consumer decides its active section.
type TriggerConfig struct {
	Mode          string  `yaml:"mode" koanf:"mode"`
	TopGuard      float64 `yaml:"top_guard" koanf:"top_guard"`
	TriggerOffset float64 `yaml:"trigger_offset" koanf:"trigger_offset"`
	// Overrides replaces trigger_offset for individual section ids.
	Overrides map[string]float64 `yaml:"overrides,omitempty" koanf:"overrides"`
}

// ScrollConfig controls smooth-scroll navigation.
type ScrollConfig struct {
	Offset         float64 `yaml:"offset" koanf:"offset"`
	ToolsOffset    float64 `yaml:"tools_offset" koanf:"tools_offset"`
	ToolItemOffset float64 `yaml:"tool_item_offset" koanf:"tool_item_offset"`
	Duration       float64 `yaml:"duration" koanf:"duration"`
	Ease           string  `yaml:"ease" koanf:"ease"`
}

// ProgressConfig is the decorative offset ramp applied near the page end.
type ProgressConfig struct {
	Threshold float64 `yaml:"threshold" koanf:"threshold"`
	Base      float64 `yaml:"base" koanf:"base"`
	Extra     float64 `yaml:"extra" koanf:"extra"`
}

// ParticleConfig controls the hero particle field.
type ParticleConfig struct {
	Count           int     `yaml:"count" koanf:"count"`
	InfluenceRadius float64 `yaml:"influence_radius" koanf:"influence_radius"`
	Attract         float64 `yaml:"attract" koanf:"attract"`
	Relax           float64 `yaml:"relax" koanf:"relax"`
	LineWidth       float64 `yaml:"line_width" koanf:"line_width"`
	// Seed makes particle generation reproducible when non-zero.
	Seed uint64 `yaml:"seed" koanf:"seed"`
}
