// Package client implements the HTTP gateway to the LibShelf service.
//
// All remote calls go through one shared HTTPClient. On the way out it
// attaches the current bearer token (when one exists) and a request id; on
// the way back it classifies every failure into exactly one Error category:
// authorization, network, server, rate limit, or generic. An authorization
// failure additionally clears the session through the injected
// SessionInvalidator, which the UI observes as a flip to the logged-out state.
//
// Nothing is retried here, and no category is fatal: the client stays usable
// after any error.
package client
