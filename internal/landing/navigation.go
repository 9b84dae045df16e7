package landing

// Route identifiers understood by the router collaborator.
const (
	RouteDashboard = "/dashboard"
	RouteLogin     = "/login"
)

// AuthState reports whether a user is currently signed in.
// Implementations are owned by the authentication context; Activate reads
// them once per activation and never stores the answer.
type AuthState interface {
	Authenticated() bool
}

// Router performs a navigation to a route identifier.
// Navigation is fire-and-forget at this layer.
type Router interface {
	Navigate(route string)
}

// Event is the user activation (click, tap, form submit) that triggers the
// call-to-action.
type Event interface {
	PreventDefault()
}

// ActivateFunc is the callback shared by every call-to-action control.
type ActivateFunc func(evt Event) string

// AuthFunc adapts a plain function to AuthState.
type AuthFunc func() bool

// Authenticated implements AuthState.
func (f AuthFunc) Authenticated() bool { return f() }

// RouterFunc adapts a plain function to Router.
type RouterFunc func(route string)

// Navigate implements Router.
func (f RouterFunc) Navigate(route string) { f(route) }

// Destination maps the authentication state to the call-to-action target.
func Destination(authenticated bool) string {
	if authenticated {
		return RouteDashboard
	}
	return RouteLogin
}

// Activate handles one call-to-action activation. It suppresses the event's
// default behavior, reads the authentication state, and issues exactly one
// navigation request. The route that was requested is returned.
func Activate(evt Event, auth AuthState, router Router) string {
	evt.PreventDefault()
	route := Destination(auth.Authenticated())
	router.Navigate(route)
	return route
}

// Bind returns the shared callback for a page whose authentication state and
// router are fixed for its lifetime. The state is still read on every call.
func Bind(auth AuthState, router Router) ActivateFunc {
	return func(evt Event) string {
		return Activate(evt, auth, router)
	}
}
