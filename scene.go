package folio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Scene is the top-level object that owns the page, the viewport, every
// scroll-driven consumer, the particle field, and input state.
//
// Scene is single-threaded: Update and Draw must be called from the game loop
// goroutine.
type Scene struct {
	// ClearColor fills the screen before anything else is drawn.
	ClearColor Color
	// Theme colors sections and navigation chrome.
	Theme Theme
	// Typeface holds the fonts for titles, body text and navigation labels.
	Typeface Typeface
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// LogOutput receives "[folio]" diagnostic lines. Defaults to os.Stderr.
	LogOutput io.Writer

	config SceneConfig

	page      *Page
	viewport  *Viewport
	router    *Router
	navigator *Navigator
	progress  *ProgressTracker
	strip     *Strip

	nav      *Resolver
	subnav   *Resolver
	timeline *Resolver
	focus    *Resolver

	field       *ParticleField
	fieldCanvas Canvas
	newCanvas   func() Canvas
	loop        *FrameLoop
	scale       float64

	sink  EventSink
	debug bool

	scrolled      bool
	subnavVisible bool
	focusAlpha    map[string]*float64
	focusTweens   map[string]*FloatTween
	needsEval     bool

	handles []CallbackHandle
	closed  bool

	pointer     pointerState
	liveInput   bool
	injectQueue []syntheticEvent
	testRunner  *TestRunner
	shots       []pendingShot
	updateFunc  func() error
}

// NewScene builds a scene from cfg. The home route is laid out and evaluated
// once; the particle field attaches to the hero section immediately.
func NewScene(cfg SceneConfig) (*Scene, error) {
	page := NewPage(cfg.Sections, cfg.FooterHeight, cfg.Width)

	navAnchors, err := NewAnchors(cfg.NavAnchors...)
	if err != nil {
		return nil, fmt.Errorf("nav anchors: %w", err)
	}
	homeAnchors, err := sectionAnchors(cfg.Sections, RouteHome)
	if err != nil {
		return nil, fmt.Errorf("timeline anchors: %w", err)
	}
	var tools []Item
	if sec := page.Section(cfg.ToolsID); sec != nil {
		tools = sec.Items
	}
	toolAnchors, err := itemAnchors(tools)
	if err != nil {
		return nil, fmt.Errorf("tool anchors: %w", err)
	}

	typeface, fontErr := DefaultTypeface()

	s := &Scene{
		ClearColor:    DefaultTheme.Background,
		Theme:         DefaultTheme,
		Typeface:      typeface,
		ScreenshotDir: "screenshots",
		LogOutput:     os.Stderr,
		config:        cfg,
		page:          page,
		router:        NewRouter(RouteHome),
		progress:      NewProgressTracker(cfg.Ramp),
		loop:          NewFrameLoop(),
		scale:         1,
		focusAlpha:    make(map[string]*float64),
		focusTweens:   make(map[string]*FloatTween),
		newCanvas:     func() Canvas { return NewImageCanvas() },
	}
	s.viewport = NewViewport(page, cfg.Width, cfg.Height)
	s.navigator = NewNavigator(s.viewport, s.viewport, s.router, NavigatorConfig{
		Offsets:  cfg.Offsets,
		Duration: cfg.ScrollDuration,
		Ease:     cfg.ScrollEase,
		Home:     RouteHome,
	})
	if fontErr != nil {
		s.logf("fonts: %v", fontErr)
	}
	s.strip = NewStrip(stripItems(tools, typeface.Label), 8, cfg.Width)

	s.nav = NewResolver(ResolverConfig{Name: "nav", Anchors: navAnchors, Policy: cfg.NavPolicy})
	s.timeline = NewResolver(ResolverConfig{Name: "timeline", Anchors: homeAnchors, Policy: cfg.TimelinePolicy, TrackPast: true})
	s.focus = NewResolver(ResolverConfig{Name: "focus", Anchors: homeAnchors, Policy: cfg.FocusPolicy})
	if toolAnchors.Len() > 0 {
		s.subnav = NewResolver(ResolverConfig{Name: "subnav", Anchors: toolAnchors, Policy: cfg.SubNavPolicy})
	}
	s.field = NewParticleField(cfg.Field)

	s.wire()
	for _, sec := range cfg.Sections {
		a := dimAlpha
		s.focusAlpha[sec.ID] = &a
	}
	s.attachField()
	s.Evaluate()
	if a := s.focusAlpha[s.focus.Active()]; a != nil {
		*a = 1
		delete(s.focusTweens, s.focus.Active())
	}
	return s, nil
}

// wire subscribes the scene to its components. Every handle is released by
// Close.
func (s *Scene) wire() {
	resolvers := []*Resolver{s.nav, s.timeline, s.focus}
	if s.subnav != nil {
		resolvers = append(resolvers, s.subnav)
	}
	for _, r := range resolvers {
		s.handles = append(s.handles, r.OnChange(s.onActivation))
	}
	if s.subnav != nil {
		s.handles = append(s.handles, s.subnav.OnChange(func(c ActivationChange) {
			s.strip.Focus(c.ID)
		}))
	}
	s.handles = append(s.handles,
		s.focus.OnChange(func(c ActivationChange) { s.fadeFocus(c.Previous, c.ID) }),
		s.router.OnRouteChange(s.onRouteChange),
		s.navigator.OnNavigate(func(e NavigateEvent) {
			s.emit(Event{Type: EventNavigate, ID: e.ID, TargetY: e.TargetY})
		}),
	)
}

func (s *Scene) onActivation(c ActivationChange) {
	if s.debug {
		s.logf("%s: %q -> %q", c.Resolver, c.Previous, c.ID)
	}
	s.emit(Event{Type: EventActivation, Consumer: c.Resolver, ID: c.ID, Previous: c.Previous, Index: c.Index})
}

func (s *Scene) onRouteChange(c RouteChange) {
	s.page.Layout(c.To, s.viewport.Width)
	s.viewport.JumpTo(0)
	if _, ok := s.page.Rect(s.config.HeroID); ok {
		s.attachField()
	} else {
		s.field.Detach()
	}
	s.needsEval = true
	if s.debug {
		s.logf("route: %s -> %s", c.From, c.To)
	}
	s.emit(Event{Type: EventRoute, ID: c.To.String(), Previous: c.From.String()})
}

// attachField binds the particle field to the hero section. A missing
// rendering context disables the particles and nothing else.
func (s *Scene) attachField() {
	hero, ok := s.page.Rect(s.config.HeroID)
	if !ok {
		return
	}
	if s.field.State() == FieldRunning {
		s.field.Resize(hero.Width, hero.Height, s.scale)
		return
	}
	if s.fieldCanvas == nil {
		s.fieldCanvas = s.newCanvas()
	}
	if err := s.field.Attach(s.fieldCanvas, s.loop, hero.Width, hero.Height, s.scale); err != nil {
		s.logf("particles disabled: %v", err)
	}
}

// Update processes input, advances animations and the frame loop, and
// re-evaluates every scroll consumer when the scroll offset changed.
func (s *Scene) Update() error {
	if s.closed {
		return nil
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.Step(1.0 / float64(ebiten.TPS()))
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Step advances routing, navigation, animations and the particle frame loop
// by dt seconds without reading input. Headless drivers call it directly.
func (s *Scene) Step(dt float64) {
	s.router.Tick()
	if err := s.navigator.Tick(); err != nil {
		s.logf("navigate: %v", err)
	}
	fdt := float32(dt)
	if s.viewport.update(fdt) {
		s.needsEval = true
	}
	s.strip.update(fdt)
	s.updateFades(fdt)
	if s.needsEval {
		s.needsEval = false
		s.Evaluate()
	}
	s.loop.Step(dt)
}

// Evaluate runs every scroll consumer against the current geometry. Update
// calls it whenever the scroll offset changes.
func (s *Scene) Evaluate() {
	doc := s.viewport
	if s.page.Route() == RouteHome {
		s.nav.Evaluate(doc)
		s.timeline.Evaluate(doc)
		s.focus.Evaluate(doc)
		if s.subnav != nil {
			s.subnav.Evaluate(doc)
			s.subnavVisible = SubNavVisible(doc, s.config.ToolsID, s.config.NavHeight, s.config.SubNavReveal)
		}
	} else {
		// Off the home route the nav highlights the page's own entry.
		s.subnavVisible = false
		for _, sec := range s.page.Visible() {
			if s.nav.Anchors().Index(sec.ID) >= 0 {
				_ = s.nav.Force(sec.ID)
				break
			}
		}
	}
	s.progress.Update(doc)
	s.scrolled = Scrolled(doc.ScrollY(), s.config.ScrolledThreshold)
}

// dimAlpha is the opacity of sections that do not hold the focus.
const (
	dimAlpha  = 0.45
	focusFade = 0.4
)

func (s *Scene) fadeFocus(prev, next string) {
	if a := s.focusAlpha[prev]; a != nil {
		s.focusTweens[prev] = TweenFloat(a, dimAlpha, focusFade, ease.OutQuad)
	}
	if a := s.focusAlpha[next]; a != nil {
		s.focusTweens[next] = TweenFloat(a, 1, focusFade, ease.OutQuad)
	}
}

func (s *Scene) updateFades(dt float32) {
	for id, tw := range s.focusTweens {
		tw.Update(dt)
		if tw.Done {
			delete(s.focusTweens, id)
		}
	}
}

// Resize adapts the layout to a new window size and device pixel ratio. The
// particle set is regenerated from scratch.
func (s *Scene) Resize(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	if width == s.viewport.Width && height == s.viewport.Height && scale == s.scale {
		return
	}
	s.scale = scale
	s.page.Layout(s.page.Route(), width)
	s.viewport.Resize(width, height)
	s.strip.Resize(width)
	if hero, ok := s.page.Rect(s.config.HeroID); ok {
		s.field.Resize(hero.Width, hero.Height, scale)
	}
	s.needsEval = true
}

// Close releases every listener and stops the particle frame loop. Calling
// Close more than once is a no-op.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, h := range s.handles {
		h.Remove()
	}
	s.handles = nil
	s.field.Detach()
}

// SetUpdateFunc registers a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEventSink sets the optional ECS bridge.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug logging and the debug overlay.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetCanvasFactory replaces the particle canvas constructor. Returning nil
// simulates a missing rendering context. A running field is reattached to a
// canvas from the new factory.
func (s *Scene) SetCanvasFactory(fn func() Canvas) {
	s.newCanvas = fn
	s.fieldCanvas = nil
	if s.field.State() == FieldRunning {
		s.field.Detach()
		s.attachField()
	}
}

// FieldCanvas returns the canvas the particle field draws into, or nil.
func (s *Scene) FieldCanvas() Canvas {
	return s.fieldCanvas
}

func (s *Scene) emit(e Event) {
	if s.sink != nil {
		s.sink.EmitEvent(e)
	}
}

// Accessors for read-only consumers and tests.

func (s *Scene) Page() *Page { return s.page }
func (s *Scene) Viewport() *Viewport { return s.viewport }
func (s *Scene) Router() *Router { return s.router }
func (s *Scene) Navigator() *Navigator { return s.navigator }
func (s *Scene) Progress() *ProgressTracker { return s.progress }
func (s *Scene) Strip() *Strip { return s.strip }
func (s *Scene) Field() *ParticleField { return s.field }
func (s *Scene) FrameLoop() *FrameLoop { return s.loop }
func (s *Scene) NavResolver() *Resolver { return s.nav }
func (s *Scene) SubNavResolver() *Resolver { return s.subnav }
func (s *Scene) TimelineResolver() *Resolver { return s.timeline }
func (s *Scene) FocusResolver() *Resolver { return s.focus }
func (s *Scene) Config() SceneConfig { return s.config }
func (s *Scene) SubNavVisible() bool { return s.subnavVisible }
func (s *Scene) Scrolled() bool { return s.scrolled }

// FocusAlpha returns the current opacity of section id, or 1 for unknown ids.
func (s *Scene) FocusAlpha(id string) float64 {
	if a := s.focusAlpha[id]; a != nil {
		return *a
	}
	return 1
}

func (s *Scene) logf(format string, args ...any) {
	if s.LogOutput == nil {
		return
	}
	_, _ = fmt.Fprintf(s.LogOutput, "[folio] "+format+"\n", args...)
}

func sectionAnchors(sections []Section, route Route) (Anchors, error) {
	var list []Anchor
	for _, sec := range sections {
		if sec.Route == route {
			list = append(list, Anchor{ID: sec.ID, Label: sec.Label})
		}
	}
	return NewAnchors(list...)
}

func itemAnchors(items []Item) (Anchors, error) {
	if len(items) == 0 {
		return Anchors{}, nil
	}
	list := make([]Anchor, len(items))
	for i, it := range items {
		list[i] = Anchor{ID: it.ID, Label: it.Label}
	}
	return NewAnchors(list...)
}

func stripItems(items []Item, f Font) []StripItem {
	out := make([]StripItem, len(items))
	for i, it := range items {
		out[i] = StripItem{ID: it.ID, Label: it.Label, Width: math.Ceil(measure(f, it.Label)) + 32}
	}
	return out
}
