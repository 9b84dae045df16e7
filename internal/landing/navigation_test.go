package landing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingEvent records PreventDefault calls into a shared call log.
type recordingEvent struct {
	calls *[]string
}

func (e recordingEvent) PreventDefault() {
	*e.calls = append(*e.calls, "prevent_default")
}

// recordingRouter records navigation requests into a shared call log.
type recordingRouter struct {
	calls  *[]string
	routes []string
}

func (r *recordingRouter) Navigate(route string) {
	*r.calls = append(*r.calls, "navigate:"+route)
	r.routes = append(r.routes, route)
}

func TestDestination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		authenticated bool
		want          string
	}{
		{name: "authenticated user goes to dashboard", authenticated: true, want: "/dashboard"},
		{name: "anonymous user goes to login", authenticated: false, want: "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Destination(tt.authenticated))
			// Same input, same answer.
			assert.Equal(t, Destination(tt.authenticated), Destination(tt.authenticated))
		})
	}
}

func TestActivate(t *testing.T) {
	t.Parallel()

	t.Run("authenticated user clicks hero button", func(t *testing.T) {
		t.Parallel()

		var calls []string
		router := &recordingRouter{calls: &calls}

		route := Activate(recordingEvent{calls: &calls}, AuthFunc(func() bool { return true }), router)

		assert.Equal(t, RouteDashboard, route)
		assert.Equal(t, []string{"prevent_default", "navigate:/dashboard"}, calls)
	})

	t.Run("anonymous user clicks each feature card", func(t *testing.T) {
		t.Parallel()

		for _, feature := range Features() {
			var calls []string
			router := &recordingRouter{calls: &calls}

			route := Activate(recordingEvent{calls: &calls}, AuthFunc(func() bool { return false }), router)

			assert.Equal(t, RouteLogin, route, "card %q", feature.Title)
			assert.Equal(t, []string{"prevent_default", "navigate:/login"}, calls, "card %q", feature.Title)
		}
	})

	t.Run("login between activations", func(t *testing.T) {
		t.Parallel()

		var calls []string
		loggedIn := false
		router := &recordingRouter{calls: &calls}
		activate := Bind(AuthFunc(func() bool { return loggedIn }), router)

		first := activate(recordingEvent{calls: &calls})
		loggedIn = true
		second := activate(recordingEvent{calls: &calls})

		assert.Equal(t, RouteLogin, first)
		assert.Equal(t, RouteDashboard, second)
		assert.Equal(t, []string{RouteLogin, RouteDashboard}, router.routes)
	})

	t.Run("repeated clicks navigate each time", func(t *testing.T) {
		t.Parallel()

		var calls []string
		router := &recordingRouter{calls: &calls}
		activate := Bind(AuthFunc(func() bool { return true }), router)

		for i := 0; i < 3; i++ {
			activate(recordingEvent{calls: &calls})
		}

		require.Len(t, router.routes, 3)
		for _, route := range router.routes {
			assert.Equal(t, RouteDashboard, route)
		}
	})

	t.Run("auth state is read once per activation", func(t *testing.T) {
		t.Parallel()

		var calls []string
		reads := 0
		auth := AuthFunc(func() bool {
			reads++
			return false
		})

		Activate(recordingEvent{calls: &calls}, auth, RouterFunc(func(string) {}))

		assert.Equal(t, 1, reads)
	})
}
