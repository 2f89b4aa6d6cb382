package folio

import (
	"errors"
	"testing"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		in   string
		want Route
	}{
		{"home", RouteHome},
		{"", RouteHome},
		{"/", RouteHome},
		{"impressum", RouteImpressum},
		{"/impressum", RouteImpressum},
	}
	for _, tt := range tests {
		got, err := ParseRoute(tt.in)
		if err != nil {
			t.Errorf("ParseRoute(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRoute(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseRoute("blog"); !errors.Is(err, ErrUnknownRoute) {
		t.Errorf("ParseRoute(blog) err = %v", err)
	}
}

func TestRouterCompletesOnTick(t *testing.T) {
	r := NewRouter(RouteHome)
	var changes []RouteChange
	r.OnRouteChange(func(c RouteChange) { changes = append(changes, c) })

	r.Navigate(RouteImpressum)
	if r.Current() != RouteHome {
		t.Error("route changed before Tick")
	}
	if p, ok := r.Pending(); !ok || p != RouteImpressum {
		t.Errorf("Pending = %v, %v", p, ok)
	}
	if !r.Tick() {
		t.Error("Tick should report a change")
	}
	if r.Current() != RouteImpressum {
		t.Errorf("Current = %v", r.Current())
	}
	if r.Tick() {
		t.Error("second Tick should be a no-op")
	}
	if len(changes) != 1 || changes[0].From != RouteHome || changes[0].To != RouteImpressum {
		t.Errorf("changes = %+v", changes)
	}
}

func TestRouterNavigateToCurrentCancels(t *testing.T) {
	r := NewRouter(RouteHome)
	r.Navigate(RouteImpressum)
	r.Navigate(RouteHome)
	if _, ok := r.Pending(); ok {
		t.Error("pending should be cancelled")
	}
	if r.Tick() {
		t.Error("Tick should not change route")
	}
}
