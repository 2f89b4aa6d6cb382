package folio

import (
	"errors"
	"fmt"
)

// ErrUnknownRoute is returned when a route name cannot be parsed.
var ErrUnknownRoute = errors.New("folio: unknown route")

// Route identifies one of the site's pages.
type Route uint8

const (
	RouteHome      Route = iota // single-page portfolio with all sections
	RouteImpressum              // standalone legal page
)

// String returns the route's path name.
func (r Route) String() string {
	switch r {
	case RouteHome:
		return "home"
	case RouteImpressum:
		return "impressum"
	default:
		return fmt.Sprintf("Route(%d)", uint8(r))
	}
}

// ParseRoute converts a route name to a Route.
func ParseRoute(s string) (Route, error) {
	switch s {
	case "home", "", "/":
		return RouteHome, nil
	case "impressum", "/impressum":
		return RouteImpressum, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownRoute)
	}
}

// RouteChange is delivered to OnRouteChange callbacks.
type RouteChange struct {
	From, To Route
}

// Router switches between pages. Navigate only requests a transition; it
// completes on the next Tick, so the new page's elements exist one tick after
// the request.
type Router struct {
	current  Route
	pending  Route
	hasNext  bool
	handlers handlerList[RouteChange]
}

// NewRouter creates a router on the given route.
func NewRouter(start Route) *Router {
	return &Router{current: start}
}

// Current returns the active route.
func (r *Router) Current() Route {
	return r.current
}

// Pending reports a requested but not yet completed transition.
func (r *Router) Pending() (Route, bool) {
	return r.pending, r.hasNext
}

// Navigate requests a transition to route. Requesting the current route
// cancels any pending transition.
func (r *Router) Navigate(route Route) {
	if route == r.current {
		r.hasNext = false
		return
	}
	r.pending = route
	r.hasNext = true
}

// Tick completes a pending transition. Returns true if the route changed.
func (r *Router) Tick() bool {
	if !r.hasNext {
		return false
	}
	from := r.current
	r.current = r.pending
	r.hasNext = false
	r.handlers.emit(RouteChange{From: from, To: r.current})
	return true
}

// OnRouteChange registers a callback fired when a transition completes.
func (r *Router) OnRouteChange(fn func(RouteChange)) CallbackHandle {
	return newHandle(&r.handlers, fn)
}
