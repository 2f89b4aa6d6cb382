package folio

import (
	"image/color"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a straight-alpha color.NRGBA.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// WithAlpha returns a copy of c with alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// Vec2 is a 2D vector used for positions, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Range is a half-open [Min, Max) interval used for randomized particle
// properties.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from rng. A nil rng uses the
// package-level generator.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	var f float64
	if rng != nil {
		f = rng.Float64()
	} else {
		f = rand.Float64()
	}
	return r.Min + f*(r.Max-r.Min)
}

// EventType identifies a kind of folio event forwarded to an EventSink.
type EventType uint8

const (
	EventActivation EventType = iota // a resolver changed its active anchor
	EventRoute                       // the router finished a route transition
	EventNavigate                    // a smooth scroll was issued
)

// String returns the event type's name.
func (t EventType) String() string {
	switch t {
	case EventActivation:
		return "activation"
	case EventRoute:
		return "route"
	case EventNavigate:
		return "navigate"
	default:
		return "unknown"
	}
}

// Event carries folio state changes for optional ECS integration.
type Event struct {
	Type EventType
	// Consumer names the resolver for EventActivation ("nav", "subnav", ...).
	Consumer string
	// ID is the new active anchor id, the navigation target, or the route name.
	ID       string
	Previous string
	Index    int
	// TargetY is the absolute scroll target for EventNavigate.
	TargetY float64
}

// EventSink is the interface for optional ECS integration.
// When set on a Scene, activation, route, and navigation events are forwarded.
type EventSink interface {
	EmitEvent(event Event)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
