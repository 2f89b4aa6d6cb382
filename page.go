package folio

import "math"

// Item is a nested element inside a section, such as a tool card.
type Item struct {
	ID     string
	Label  string
	Height float64
}

// Section is a top-level page region. Sections belong to a single route and
// are only present in the document while that route is active.
type Section struct {
	ID     string
	Label  string
	Route  Route
	Height float64
	// Header is the space above the first item.
	Header float64
	// Items are laid out vertically below Header.
	Items []Item
	// Text lines rendered in the section body.
	Body []string
}

// Page lays out sections top to bottom in document coordinates. Only the
// sections of the current route are laid out; all others are absent.
type Page struct {
	Sections     []Section
	FooterHeight float64
	// ItemGap is the vertical space between items and after the last one.
	ItemGap float64

	route   Route
	rects   map[string]Rect
	order   []string // ids of laid-out sections in order
	content float64
	width   float64
}

// NewPage creates a page and lays it out for RouteHome at the given width.
func NewPage(sections []Section, footerHeight, width float64) *Page {
	p := &Page{
		Sections:     sections,
		FooterHeight: footerHeight,
		ItemGap:      24,
		rects:        make(map[string]Rect),
	}
	p.Layout(RouteHome, width)
	return p
}

// Layout recomputes every element rectangle for route at the given width.
func (p *Page) Layout(route Route, width float64) {
	p.route = route
	p.width = width
	clear(p.rects)
	p.order = p.order[:0]

	y := 0.0
	for i := range p.Sections {
		sec := &p.Sections[i]
		if sec.Route != route {
			continue
		}
		h := p.layoutItems(sec, y, width)
		h = math.Max(h, sec.Height)
		p.rects[sec.ID] = Rect{X: 0, Y: y, Width: width, Height: h}
		p.order = append(p.order, sec.ID)
		y += h
	}
	p.rects[footerID] = Rect{X: 0, Y: y, Width: width, Height: p.FooterHeight}
	p.content = y + p.FooterHeight
}

// layoutItems places sec's items starting at top and returns the height they
// need, header included.
func (p *Page) layoutItems(sec *Section, top, width float64) float64 {
	if len(sec.Items) == 0 {
		return sec.Header
	}
	y := top + sec.Header
	for _, it := range sec.Items {
		p.rects[it.ID] = Rect{X: 0, Y: y, Width: width, Height: it.Height}
		y += it.Height + p.ItemGap
	}
	return y - top
}

// footerID names the footer element in the layout.
const footerID = "footer"

// Route returns the route the page is laid out for.
func (p *Page) Route() Route {
	return p.route
}

// Width returns the layout width.
func (p *Page) Width() float64 {
	return p.width
}

// ContentHeight returns the total document height, footer included.
func (p *Page) ContentHeight() float64 {
	return p.content
}

// Rect returns the document-space rectangle of id.
func (p *Page) Rect(id string) (Rect, bool) {
	r, ok := p.rects[id]
	return r, ok
}

// Visible returns the laid-out sections in order.
func (p *Page) Visible() []*Section {
	out := make([]*Section, 0, len(p.order))
	for _, id := range p.order {
		if sec := p.Section(id); sec != nil {
			out = append(out, sec)
		}
	}
	return out
}

// Section returns the section with the given id, or nil.
func (p *Page) Section(id string) *Section {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return &p.Sections[i]
		}
	}
	return nil
}
