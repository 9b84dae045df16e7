// Package session reads the web session issued by the authentication service.
//
// The session cookie carries a signed session token. This package never
// creates sessions; it only answers whether the current request belongs to a
// signed-in user, and drops cookies that can no longer be used.
package session
