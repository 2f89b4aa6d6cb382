package folio

import (
	"errors"
	"math"
	"math/rand/v2"
)

// ErrNoRenderingContext is returned by ParticleField.Attach when no drawing
// surface is available. The field stays idle; nothing else is affected.
var ErrNoRenderingContext = errors.New("folio: no rendering context")

// Canvas is the drawing surface a ParticleField renders into.
type Canvas interface {
	// SetSize resizes the backing store to width x height logical pixels at
	// the given device pixel ratio. Drawing coordinates stay logical.
	SetSize(width, height, scale float64)
	// Clear erases the whole surface to transparent.
	Clear()
	// StrokeLine draws a line segment with round caps.
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// FieldState is the lifecycle state of a ParticleField.
type FieldState uint8

const (
	FieldIdle    FieldState = iota // no canvas attached
	FieldRunning                   // frame callback registered
)

func (s FieldState) String() string {
	if s == FieldRunning {
		return "running"
	}
	return "idle"
}

// Particle is one splinter of the magnetic field.
type Particle struct {
	X, Y         float64
	BaseX, BaseY float64
	Size         float64 // half-length of the drawn segment
	Color        Color
	Angle        float64 // orbital angle in [0, 2π)
	Speed        float64 // radians added per frame while orbiting
	Orbit        float64 // orbit radius around the pointer
}

// FieldConfig controls how particles are generated and how they move.
type FieldConfig struct {
	// Count is the number of particles generated per attach/resize.
	Count int
	// InfluenceRadius is the pointer distance below which particles orbit.
	InfluenceRadius float64
	// AttractFactor is the per-frame interpolation toward the orbit target,
	// scaled by 1 - d/InfluenceRadius.
	AttractFactor float64
	// RelaxFactor is the per-frame interpolation back to the base position.
	RelaxFactor float64
	// Size, Speed, and Orbit are the ranges particle properties are drawn from.
	Size  Range
	Speed Range
	Orbit Range
	// LineWidth is the stroke width of each splinter.
	LineWidth float64
	// Palette is the set of colors particles pick from at creation.
	Palette []Color
	// Rand, when non-nil, makes generation deterministic.
	Rand *rand.Rand
}

// DefaultPalette is two translucent reds and two translucent greys.
var DefaultPalette = []Color{
	{R: 145.0 / 255, G: 30.0 / 255, B: 33.0 / 255, A: 0.6},
	{R: 145.0 / 255, G: 30.0 / 255, B: 33.0 / 255, A: 0.4},
	{R: 100.0 / 255, G: 100.0 / 255, B: 100.0 / 255, A: 0.3},
	{R: 80.0 / 255, G: 80.0 / 255, B: 80.0 / 255, A: 0.25},
}

// DefaultFieldConfig returns the hero section's field settings.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:           120,
		InfluenceRadius: 200,
		AttractFactor:   0.05,
		RelaxFactor:     0.02,
		Size:            Range{1, 4},
		Speed:           Range{0.01, 0.03},
		Orbit:           Range{10, 40},
		LineWidth:       1.5,
		Palette:         DefaultPalette,
	}
}

// PointerState is the last known pointer position in canvas coordinates.
type PointerState struct {
	X, Y float64
	// Seen is false until the first pointer move is observed.
	Seen bool
}

// ParticleField is the cursor-reactive particle simulation. It owns its
// particles exclusively and mutates them only from its frame callback.
type ParticleField struct {
	config    FieldConfig
	particles []Particle
	pointer   PointerState
	state     FieldState

	canvas Canvas
	frame  FrameHandle

	width, height, scale float64
}

// NewParticleField creates an idle field. Zero-valued config fields fall back
// to DefaultFieldConfig.
func NewParticleField(cfg FieldConfig) *ParticleField {
	def := DefaultFieldConfig()
	if cfg.Count <= 0 {
		cfg.Count = def.Count
	}
	if cfg.InfluenceRadius <= 0 {
		cfg.InfluenceRadius = def.InfluenceRadius
	}
	if cfg.AttractFactor <= 0 {
		cfg.AttractFactor = def.AttractFactor
	}
	if cfg.RelaxFactor <= 0 {
		cfg.RelaxFactor = def.RelaxFactor
	}
	if cfg.Size == (Range{}) {
		cfg.Size = def.Size
	}
	if cfg.Speed == (Range{}) {
		cfg.Speed = def.Speed
	}
	if cfg.Orbit == (Range{}) {
		cfg.Orbit = def.Orbit
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = def.LineWidth
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = def.Palette
	}
	return &ParticleField{config: cfg, scale: 1}
}

// Config returns a pointer to the field's config for live tuning. Generation
// settings take effect on the next attach or resize.
func (f *ParticleField) Config() *FieldConfig {
	return &f.config
}

// State returns the lifecycle state.
func (f *ParticleField) State() FieldState {
	return f.state
}

// Pointer returns the last recorded pointer state.
func (f *ParticleField) Pointer() PointerState {
	return f.pointer
}

// Particles returns a copy of the current particle set.
func (f *ParticleField) Particles() []Particle {
	cp := make([]Particle, len(f.particles))
	copy(cp, f.particles)
	return cp
}

// Len returns the number of live particles.
func (f *ParticleField) Len() int {
	return len(f.particles)
}

// Bounds returns the logical canvas size.
func (f *ParticleField) Bounds() (width, height float64) {
	return f.width, f.height
}

// BackingSize returns the device-pixel size of the canvas backing store.
func (f *ParticleField) BackingSize() (width, height int) {
	return int(math.Round(f.width * f.scale)), int(math.Round(f.height * f.scale))
}

// Attach binds the field to canvas, generates the particle set, and starts
// receiving frames from clock. A nil canvas leaves the field idle and returns
// ErrNoRenderingContext.
func (f *ParticleField) Attach(canvas Canvas, clock FrameClock, width, height, scale float64) error {
	if f.state == FieldRunning {
		f.Detach()
	}
	if canvas == nil || clock == nil {
		return ErrNoRenderingContext
	}
	f.canvas = canvas
	f.applySize(width, height, scale)
	f.frame = clock.OnFrame(f.onFrame)
	f.state = FieldRunning
	return nil
}

// Resize regenerates the particle set for the new canvas size. Existing
// particles are discarded, not rescaled.
func (f *ParticleField) Resize(width, height, scale float64) {
	if f.state != FieldRunning {
		f.width, f.height = width, height
		if scale > 0 {
			f.scale = scale
		}
		return
	}
	f.applySize(width, height, scale)
}

// Detach stops the frame callback and discards all particles.
func (f *ParticleField) Detach() {
	if f.state != FieldRunning {
		return
	}
	f.frame.Remove()
	f.frame = FrameHandle{}
	f.canvas = nil
	f.particles = nil
	f.state = FieldIdle
}

// SetPointer records the pointer position in canvas coordinates. It is read
// once per frame.
func (f *ParticleField) SetPointer(x, y float64) {
	f.pointer = PointerState{X: x, Y: y, Seen: true}
}

func (f *ParticleField) applySize(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	f.width, f.height, f.scale = math.Max(width, 0), math.Max(height, 0), scale
	f.canvas.SetSize(f.width, f.height, f.scale)
	f.generate()
}

// generate fills the particle set with fresh random particles inside the
// current bounds.
func (f *ParticleField) generate() {
	cfg := &f.config
	rng := cfg.Rand
	if cap(f.particles) >= cfg.Count {
		f.particles = f.particles[:cfg.Count]
	} else {
		f.particles = make([]Particle, cfg.Count)
	}
	pos := Range{}
	for i := range f.particles {
		pos.Max = f.width
		x := pos.Random(rng)
		pos.Max = f.height
		y := pos.Random(rng)
		f.particles[i] = Particle{
			X:     x,
			Y:     y,
			BaseX: x,
			BaseY: y,
			Size:  cfg.Size.Random(rng),
			Color: cfg.Palette[randIndex(rng, len(cfg.Palette))],
			Angle: Range{0, 2 * math.Pi}.Random(rng),
			Speed: cfg.Speed.Random(rng),
			Orbit: cfg.Orbit.Random(rng),
		}
	}
}

func (f *ParticleField) onFrame(float64) {
	if f.state != FieldRunning {
		return
	}
	f.canvas.Clear()
	f.update()
	f.draw()
}

// update advances every particle by one frame.
func (f *ParticleField) update() {
	cfg := &f.config
	ptr := f.pointer
	for i := range f.particles {
		p := &f.particles[i]
		d := math.Hypot(ptr.X-p.X, ptr.Y-p.Y)

		if ptr.Seen && d < cfg.InfluenceRadius {
			// Orbit: chase a point circling the pointer; closer particles
			// converge faster.
			p.Angle = wrapAngle(p.Angle + p.Speed)
			tx := ptr.X + math.Cos(p.Angle)*p.Orbit
			ty := ptr.Y + math.Sin(p.Angle)*p.Orbit
			strength := 1 - d/cfg.InfluenceRadius
			p.X = lerp(p.X, tx, cfg.AttractFactor*strength)
			p.Y = lerp(p.Y, ty, cfg.AttractFactor*strength)
		} else {
			p.X = lerp(p.X, p.BaseX, cfg.RelaxFactor)
			p.Y = lerp(p.Y, p.BaseY, cfg.RelaxFactor)
		}
	}
}

// draw strokes each particle as a short segment rotated to its angle.
func (f *ParticleField) draw() {
	w := f.config.LineWidth
	for i := range f.particles {
		p := &f.particles[i]
		dx := math.Cos(p.Angle) * p.Size
		dy := math.Sin(p.Angle) * p.Size
		f.canvas.StrokeLine(p.X-dx, p.Y-dy, p.X+dx, p.Y+dy, w, p.Color)
	}
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func randIndex(rng *rand.Rand, n int) int {
	if n <= 1 {
		return 0
	}
	if rng != nil {
		return rng.IntN(n)
	}
	return rand.IntN(n)
}
