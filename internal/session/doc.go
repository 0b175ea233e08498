// Package session owns the signed-in state of the client.
//
// [Session] is the injectable view of the token store that every workflow
// receives. [Bootstrapper] runs once per visit of the login handoff surface
// (and once at start-up) and decides whether the user is authenticated,
// where to send them otherwise, and what to show.
package session
