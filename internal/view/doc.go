// Package view renders the landing page as server-side HTML with gomponents.
//
// Every call-to-action on the page is a submit button in a form that posts to
// the same action path, so the hero and all feature cards share one behavior.
package view
