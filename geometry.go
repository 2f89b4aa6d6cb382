package folio

// Document exposes the scroll state and element geometry that the
// scroll-driven components sample. Bounds are viewport-relative: a rect with
// Y == 0 starts exactly at the top of the viewport.
type Document interface {
	ScrollY() float64
	ViewportHeight() float64
	ContentHeight() float64
	// Bounds returns the viewport-relative rectangle of the element with the
	// given id. ok is false when the element is not currently in the document.
	Bounds(id string) (r Rect, ok bool)
}

// AnchorGeometry is one anchor's rectangle within a Geometry sample.
type AnchorGeometry struct {
	ID      string
	Rect    Rect
	Present bool
}

// Geometry is a single-evaluation snapshot of document geometry. It must not
// be kept across evaluations.
type Geometry struct {
	ScrollY        float64
	ViewportHeight float64
	ContentHeight  float64
	Anchors        []AnchorGeometry
}

// SampleGeometry reads the current scroll offset and the bounds of every
// anchor. Anchors missing from the document are reported with Present false.
func SampleGeometry(doc Document, anchors Anchors) Geometry {
	return sampleInto(doc, anchors, nil)
}

// sampleInto is SampleGeometry reusing buf's backing array.
func sampleInto(doc Document, anchors Anchors, buf []AnchorGeometry) Geometry {
	g := Geometry{
		ScrollY:        doc.ScrollY(),
		ViewportHeight: doc.ViewportHeight(),
		ContentHeight:  doc.ContentHeight(),
		Anchors:        buf[:0],
	}
	for i := 0; i < anchors.Len(); i++ {
		id := anchors.At(i).ID
		r, ok := doc.Bounds(id)
		g.Anchors = append(g.Anchors, AnchorGeometry{ID: id, Rect: r, Present: ok})
	}
	return g
}
