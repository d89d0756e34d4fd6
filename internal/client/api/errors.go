package api

import "fmt"

// NetworkError reports a transport-level failure: the request never
// produced an HTTP response (connection refused, DNS failure, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError reports a non-2xx HTTP response. Message carries the backend's
// {message} field when present, otherwise a synthesized
// "HTTP <status>: <reason>" string. Error() returns Message verbatim so the
// presentation layer can show it to the user as-is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// ParseError reports a malformed JSON body in an otherwise successful
// response. It is raised explicitly rather than letting a broken body pass
// as an empty success value.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response body: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
