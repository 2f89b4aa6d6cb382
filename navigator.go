package folio

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// DefaultScrollOffset keeps scrolled-to sections clear of the navigation bar.
const DefaultScrollOffset = 80.0

// OffsetPolicy supplies the pixel offset subtracted from a navigation
// target. Some targets need a larger offset to clear the sub-navigation.
type OffsetPolicy struct {
	Default   float64
	Overrides map[string]float64
}

// OffsetFor returns the offset that applies to id.
func (p OffsetPolicy) OffsetFor(id string) float64 {
	if v, ok := p.Overrides[id]; ok {
		return v
	}
	return p.Default
}

// ScrollTarget returns the absolute scroll offset that brings id to the
// policy's offset below the viewport top, rounded to a whole pixel.
func ScrollTarget(doc Document, id string, policy OffsetPolicy) (float64, error) {
	r, ok := doc.Bounds(id)
	if !ok {
		return 0, fmt.Errorf("scroll target %q: %w", id, ErrAnchorNotFound)
	}
	return math.Round(r.Y + doc.ScrollY() - policy.OffsetFor(id)), nil
}

// Scroller issues animated scroll commands.
type Scroller interface {
	ScrollTo(y float64, duration float32, fn ease.TweenFunc)
}

// RouteController is the part of Router the Navigator depends on.
type RouteController interface {
	Current() Route
	Navigate(route Route)
}

// NavigateEvent is delivered to OnNavigate callbacks when a scroll is issued.
type NavigateEvent struct {
	ID      string
	TargetY float64
}

// NavigatorConfig configures a Navigator.
type NavigatorConfig struct {
	Offsets  OffsetPolicy
	Duration float32
	Ease     ease.TweenFunc
	// DeferTicks is how many ticks to wait after arriving on the home route
	// before scrolling. Values below 1 are treated as 1.
	DeferTicks int
	// Home is the route whose document holds the anchors.
	Home Route
}

// Navigator turns "go to section X" into a smooth scroll, switching to the
// home route first when needed. Only the most recent request is kept.
type Navigator struct {
	doc      Document
	scroller Scroller
	router   RouteController
	config   NavigatorConfig

	pending  string
	policy   *OffsetPolicy
	waited   int
	handlers handlerList[NavigateEvent]
}

// NewNavigator creates a navigator. router may be nil for single-page use.
func NewNavigator(doc Document, scroller Scroller, router RouteController, cfg NavigatorConfig) *Navigator {
	if cfg.DeferTicks < 1 {
		cfg.DeferTicks = 1
	}
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultScrollDuration
	}
	if cfg.Ease == nil {
		cfg.Ease = DefaultScrollEase
	}
	return &Navigator{doc: doc, scroller: scroller, router: router, config: cfg}
}

// NavigateTo scrolls to id using the navigator's offset policy.
func (n *Navigator) NavigateTo(id string) error {
	return n.navigate(id, nil)
}

// NavigateWith scrolls to id using policy instead of the configured offsets.
func (n *Navigator) NavigateWith(id string, policy OffsetPolicy) error {
	return n.navigate(id, &policy)
}

func (n *Navigator) navigate(id string, policy *OffsetPolicy) error {
	if n.router != nil && n.router.Current() != n.config.Home {
		n.router.Navigate(n.config.Home)
		n.pending = id
		n.policy = policy
		n.waited = 0
		return nil
	}
	n.pending = ""
	n.policy = nil
	return n.scroll(id, policy)
}

// Pending returns the deferred target, if any.
func (n *Navigator) Pending() (string, bool) {
	return n.pending, n.pending != ""
}

// Tick runs a deferred navigation once the home route has been active for
// DeferTicks ticks. Call once per frame after the router has ticked.
func (n *Navigator) Tick() error {
	if n.pending == "" {
		return nil
	}
	if n.router != nil && n.router.Current() != n.config.Home {
		n.waited = 0
		return nil
	}
	if n.waited < n.config.DeferTicks {
		n.waited++
		return nil
	}
	id, policy := n.pending, n.policy
	n.pending, n.policy = "", nil
	return n.scroll(id, policy)
}

// OnNavigate registers a callback fired whenever a scroll is issued.
func (n *Navigator) OnNavigate(fn func(NavigateEvent)) CallbackHandle {
	return newHandle(&n.handlers, fn)
}

func (n *Navigator) scroll(id string, policy *OffsetPolicy) error {
	p := n.config.Offsets
	if policy != nil {
		p = *policy
	}
	y, err := ScrollTarget(n.doc, id, p)
	if err != nil {
		return err
	}
	n.scroller.ScrollTo(y, n.config.Duration, n.config.Ease)
	n.handlers.emit(NavigateEvent{ID: id, TargetY: y})
	return nil
}
