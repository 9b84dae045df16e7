// Package landing holds the content and the single navigation decision of the
// public landing page: a hero section plus a fixed grid of feature cards, all
// of which share one call-to-action.
//
// The call-to-action routes signed-in visitors to the dashboard and everyone
// else to the login page. The package depends on nothing but its collaborator
// interfaces; HTTP adapters live in the api package.
package landing
