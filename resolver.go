package folio

import "fmt"

// TriggerMode selects how a Resolver decides which anchor is active.
type TriggerMode uint8

const (
	// TriggerTopOffset scans anchors from last to first; the first anchor whose
	// top edge is at or above the trigger line wins.
	TriggerTopOffset TriggerMode = iota
	// TriggerCenterLine scans anchors from first to last; the first anchor whose
	// rectangle contains the viewport's vertical midpoint wins. If none does,
	// the previous active anchor is retained.
	TriggerCenterLine
)

// String returns the mode's configuration name.
func (m TriggerMode) String() string {
	switch m {
	case TriggerTopOffset:
		return "top-offset"
	case TriggerCenterLine:
		return "center-line"
	default:
		return fmt.Sprintf("TriggerMode(%d)", uint8(m))
	}
}

// ParseTriggerMode converts a configuration name to a TriggerMode.
func ParseTriggerMode(s string) (TriggerMode, error) {
	switch s {
	case "top-offset", "":
		return TriggerTopOffset, nil
	case "center-line":
		return TriggerCenterLine, nil
	default:
		return 0, fmt.Errorf("folio: unknown trigger mode %q", s)
	}
}

const (
	// DefaultTopGuard is the scroll offset below which the first anchor is
	// always active.
	DefaultTopGuard = 100.0
	// DefaultTriggerOffset is the viewport-relative trigger line for
	// TriggerTopOffset. Every consumer shares it unless configured otherwise.
	DefaultTriggerOffset = 200.0
)

// TriggerPolicy configures when an anchor becomes active.
type TriggerPolicy struct {
	Mode TriggerMode
	// TopGuard forces the first anchor while ScrollY < TopGuard. Applies to
	// both modes; zero disables the guard.
	TopGuard float64
	// TriggerOffset is the default trigger line for TriggerTopOffset.
	TriggerOffset float64
	// Overrides replaces TriggerOffset for individual anchor ids.
	Overrides map[string]float64
}

// DefaultTriggerPolicy returns the top-offset policy with the shared defaults.
func DefaultTriggerPolicy() TriggerPolicy {
	return TriggerPolicy{
		Mode:          TriggerTopOffset,
		TopGuard:      DefaultTopGuard,
		TriggerOffset: DefaultTriggerOffset,
	}
}

// OffsetFor returns the trigger line that applies to the given anchor.
func (p TriggerPolicy) OffsetFor(id string) float64 {
	if v, ok := p.Overrides[id]; ok {
		return v
	}
	return p.TriggerOffset
}

// ResolveActive returns the active anchor id for a geometry sample. current is
// the previously active id, retained by TriggerCenterLine when nothing
// matches. Anchors that are not present are skipped.
func ResolveActive(g Geometry, p TriggerPolicy, current string) string {
	if len(g.Anchors) == 0 {
		return current
	}
	first := g.Anchors[0].ID
	if g.ScrollY < p.TopGuard {
		return first
	}

	switch p.Mode {
	case TriggerCenterLine:
		mid := g.ViewportHeight / 2
		for _, a := range g.Anchors {
			if a.Present && a.Rect.Y <= mid && a.Rect.Bottom() >= mid {
				return a.ID
			}
		}
		if current == "" {
			return first
		}
		return current
	default:
		// Backward scan: the lowest anchor already past the trigger line wins.
		for i := len(g.Anchors) - 1; i >= 0; i-- {
			a := g.Anchors[i]
			if !a.Present {
				continue
			}
			if a.Rect.Y <= p.OffsetFor(a.ID) {
				return a.ID
			}
		}
		return first
	}
}

// ActivationState is a read-only snapshot of a resolver's state. Snapshots are
// never modified after being handed out.
type ActivationState struct {
	active string
	index  int
	past   []bool
}

// Active returns the active anchor id.
func (s ActivationState) Active() string {
	return s.active
}

// ActiveIndex returns the index of the active anchor in its sequence.
func (s ActivationState) ActiveIndex() int {
	return s.index
}

// IsPast reports whether anchor i precedes the active anchor. Always false
// for resolvers without past tracking.
func (s ActivationState) IsPast(i int) bool {
	return i >= 0 && i < len(s.past) && s.past[i]
}

// Past returns a copy of the is-past flags, or nil without past tracking.
func (s ActivationState) Past() []bool {
	if s.past == nil {
		return nil
	}
	cp := make([]bool, len(s.past))
	copy(cp, s.past)
	return cp
}

// PastFlags returns flags for n anchors where every index strictly less than
// active is true.
func PastFlags(n, active int) []bool {
	flags := make([]bool, n)
	for i := 0; i < n && i < active; i++ {
		flags[i] = true
	}
	return flags
}

// ActivationChange is delivered to OnChange callbacks.
type ActivationChange struct {
	Resolver string
	ID       string
	Previous string
	Index    int
	// Past is nil unless the resolver tracks past flags.
	Past []bool
}

// ResolverConfig configures a Resolver.
type ResolverConfig struct {
	// Name identifies the consumer ("nav", "subnav", "timeline", "focus").
	Name    string
	Anchors Anchors
	Policy  TriggerPolicy
	// TrackPast maintains is-past flags for ordering feedback.
	TrackPast bool
}

// Resolver owns one consumer's activation state. It is the only writer of
// that state; renderers read snapshots through State.
type Resolver struct {
	name      string
	anchors   Anchors
	policy    TriggerPolicy
	trackPast bool

	state    ActivationState
	handlers handlerList[ActivationChange]
	buf      []AnchorGeometry
}

// NewResolver creates a resolver whose initial active anchor is the first one.
func NewResolver(cfg ResolverConfig) *Resolver {
	r := &Resolver{
		name:      cfg.Name,
		anchors:   cfg.Anchors,
		policy:    cfg.Policy,
		trackPast: cfg.TrackPast,
		buf:       make([]AnchorGeometry, 0, cfg.Anchors.Len()),
	}
	r.state = r.snapshot(cfg.Anchors.First(), 0)
	return r
}

// Name returns the consumer name given at construction.
func (r *Resolver) Name() string {
	return r.name
}

// Anchors returns the resolver's anchor sequence.
func (r *Resolver) Anchors() Anchors {
	return r.anchors
}

// Policy returns the resolver's trigger policy.
func (r *Resolver) Policy() TriggerPolicy {
	return r.policy
}

// State returns the current activation snapshot.
func (r *Resolver) State() ActivationState {
	return r.state
}

// Active is shorthand for State().Active().
func (r *Resolver) Active() string {
	return r.state.active
}

// OnChange registers a callback fired only when the active id changes.
func (r *Resolver) OnChange(fn func(ActivationChange)) CallbackHandle {
	return newHandle(&r.handlers, fn)
}

// Evaluate samples doc and updates the active anchor. Returns true when the
// active id changed.
func (r *Resolver) Evaluate(doc Document) bool {
	if r.anchors.Len() == 0 {
		return false
	}
	g := sampleInto(doc, r.anchors, r.buf)
	r.buf = g.Anchors
	return r.set(ResolveActive(g, r.policy, r.state.active))
}

// Force makes id the active anchor without sampling, as a click on a
// navigation item does. Listeners fire if the id changed.
func (r *Resolver) Force(id string) error {
	if r.anchors.Index(id) < 0 {
		return fmt.Errorf("resolver %q: %q: %w", r.name, id, ErrAnchorNotFound)
	}
	r.set(id)
	return nil
}

// Reset restores the initial state (first anchor active) without notifying.
func (r *Resolver) Reset() {
	r.state = r.snapshot(r.anchors.First(), 0)
}

func (r *Resolver) set(id string) bool {
	if id == r.state.active {
		return false
	}
	idx := r.anchors.Index(id)
	if idx < 0 {
		return false
	}
	prev := r.state.active
	r.state = r.snapshot(id, idx)
	r.handlers.emit(ActivationChange{
		Resolver: r.name,
		ID:       id,
		Previous: prev,
		Index:    idx,
		Past:     r.state.Past(),
	})
	return true
}

func (r *Resolver) snapshot(id string, idx int) ActivationState {
	s := ActivationState{active: id, index: idx}
	if r.trackPast {
		s.past = PastFlags(r.anchors.Len(), idx)
	}
	return s
}
