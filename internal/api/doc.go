// Package api is the HTTP client and wire types for the store admin API.
//
// Every endpoint is a GET with query parameters and a JSON array body.
// Client.Get returns *StatusError for non-2xx responses and wraps ErrDecode
// when the body does not decode; anything else is a transport failure.
// Each request carries a fresh X-Request-Id.
package api
