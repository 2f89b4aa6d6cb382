package folio

import "github.com/tanema/gween/ease"

// SceneConfig describes the whole site: layout metrics, content, and the
// trigger policy of every scroll-driven consumer.
type SceneConfig struct {
	Width, Height float64

	NavHeight    float64
	SubNavHeight float64
	FooterHeight float64
	// SubNavReveal is how far below the nav bar the tools section's top may
	// be while the sub-navigation is already shown.
	SubNavReveal float64
	// ScrolledThreshold raises the nav bar once ScrollY exceeds it.
	ScrolledThreshold float64
	// WheelStep is the scroll distance per wheel notch.
	WheelStep float64

	Sections []Section
	// HeroID names the section hosting the particle field.
	HeroID string
	// ToolsID names the section whose items feed the sub-navigation.
	ToolsID string
	// NavAnchors lists the primary navigation entries. Entries that belong to
	// another route switch routes instead of scrolling.
	NavAnchors []Anchor

	NavPolicy      TriggerPolicy
	SubNavPolicy   TriggerPolicy
	TimelinePolicy TriggerPolicy
	FocusPolicy    TriggerPolicy

	Offsets     OffsetPolicy
	ToolOffsets OffsetPolicy

	Ramp           ProgressRamp
	Field          FieldConfig
	ScrollDuration float32
	ScrollEase     ease.TweenFunc
}

// DefaultTools are the tools section's entries.
var DefaultTools = []Item{
	{ID: "tool-raycast", Label: "Raycast", Height: 160},
	{ID: "tool-dia", Label: "Dia", Height: 160},
	{ID: "tool-notion", Label: "Notion", Height: 160},
	{ID: "tool-antigravity", Label: "Antigravity", Height: 160},
	{ID: "tool-claude-ai", Label: "Claude AI", Height: 160},
	{ID: "tool-figma", Label: "Figma", Height: 160},
	{ID: "tool-canva", Label: "Canva", Height: 160},
	{ID: "tool-notebooklm", Label: "NotebookLM", Height: 160},
}

// DefaultSections is the portfolio's content.
func DefaultSections() []Section {
	tools := make([]Item, len(DefaultTools))
	copy(tools, DefaultTools)
	return []Section{
		{ID: "hero", Label: "Start", Height: 720, Body: []string{
			"Paul Angeles Chaquire",
			"Portfolio - work in progress",
		}},
		{ID: "about-me", Label: "About me", Height: 640, Body: []string{
			"Designer and developer building calm, focused tools.",
		}},
		{ID: "tools", Label: "Tools", Header: 120, Items: tools},
		{ID: "projects", Label: "Projects", Height: 720, Body: []string{
			"PROJECT_01  Xool       in development",
			"PROJECT_02  ParaBook   in development",
			"PROJECT_03  NotizApp   in development",
		}},
		{ID: "contact", Label: "Contact", Height: 560, Body: []string{
			"kontakt@paulangeles.com",
		}},
		{ID: "impressum", Label: "Impressum", Route: RouteImpressum, Height: 900, Body: []string{
			"Angaben gemaess § 5 TMG",
			"Paul Angeles Chaquire",
			"c/o Online-Impressum.de #5610",
			"Europaring 90, 53757 Sankt Augustin",
			"E-Mail: kontakt@paulangeles.com",
		}},
	}
}

// DefaultSceneConfig returns the site as published.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Width:             1280,
		Height:            800,
		NavHeight:         60,
		SubNavHeight:      50,
		FooterHeight:      180,
		SubNavReveal:      100,
		ScrolledThreshold: 20,
		WheelStep:         60,
		Sections:          DefaultSections(),
		HeroID:            "hero",
		ToolsID:           "tools",
		NavAnchors: []Anchor{
			{ID: "hero", Label: "Start"},
			{ID: "about-me", Label: "About me"},
			{ID: "tools", Label: "Tools"},
			{ID: "projects", Label: "Projects"},
			{ID: "contact", Label: "Contact"},
			{ID: "impressum", Label: "Impressum"},
		},
		NavPolicy:      DefaultTriggerPolicy(),
		SubNavPolicy:   TriggerPolicy{Mode: TriggerTopOffset, TriggerOffset: 150},
		TimelinePolicy: DefaultTriggerPolicy(),
		FocusPolicy:    TriggerPolicy{Mode: TriggerCenterLine},
		Offsets: OffsetPolicy{
			Default:   DefaultScrollOffset,
			Overrides: map[string]float64{"tools": 140},
		},
		ToolOffsets:    OffsetPolicy{Default: 126},
		Ramp:           DefaultProgressRamp(),
		Field:          DefaultFieldConfig(),
		ScrollDuration: DefaultScrollDuration,
		ScrollEase:     DefaultScrollEase,
	}
}
