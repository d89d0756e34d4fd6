// Package api implements the HTTP access layer of the client: uniform
// request dispatch against one fixed backend origin, bearer-token
// attachment, and normalization of responses and failures into a single
// error taxonomy (NetworkError, APIError, ParseError).
//
// The layer is deliberately dumb: no retries, no distinction between 4xx
// and 5xx, and no session mutation. Absence of a bearer token is not an
// error here — the request goes out unauthenticated and the backend is
// responsible for rejecting it.
package api
