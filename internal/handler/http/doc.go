// Package http serves the loopback login handoff surface.
//
// After external sign-in the backend redirects the browser to this surface
// with either a token or an error query parameter. Every visit is resolved by
// the session bootstrapper, and handoff outcomes are passed to the client
// through [Handler.Outcomes].
package http
