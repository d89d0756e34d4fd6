package services

import "context"

// API is the subset of the HTTP access layer the domain services use.
// *api.Client satisfies it; tests substitute fakes.
type API interface {
	Get(ctx context.Context, path string, includeAuth bool, out any) error
	GetRaw(ctx context.Context, path string, includeAuth bool) ([]byte, error)
	Post(ctx context.Context, path string, body any, includeAuth bool, out any) error
	Put(ctx context.Context, path string, body any, includeAuth bool, out any) error
	Delete(ctx context.Context, path string, includeAuth bool, out any) error
}
