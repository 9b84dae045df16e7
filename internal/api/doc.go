// Package api handles incoming HTTP requests for the landing page, the
// call-to-action endpoint, and the small JSON surface used by client-side
// routers. It adapts HTTP requests to the landing package's collaborators:
// the session resolver answers "is the user signed in", redirects perform
// navigation, and each request is one activation event.
package api
