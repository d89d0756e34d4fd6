package services

import (
	"context"
	"encoding/json"
	"fmt"
)

// fakeAPI implements API for unit tests: it records every call and answers
// from a canned path→JSON map. A missing path is a test bug, not a silent
// empty response.
type fakeAPI struct {
	calls     []apiCall
	responses map[string]string
	err       error
}

type apiCall struct {
	method      string
	path        string
	body        any
	includeAuth bool
}

func (f *fakeAPI) respond(path string, out any) error {
	if f.err != nil {
		return f.err
	}
	data, ok := f.responses[path]
	if !ok {
		return fmt.Errorf("fakeAPI: no canned response for %s", path)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal([]byte(data), out)
}

func (f *fakeAPI) record(method, path string, body any, includeAuth bool) {
	f.calls = append(f.calls, apiCall{method: method, path: path, body: body, includeAuth: includeAuth})
}

func (f *fakeAPI) Get(ctx context.Context, path string, includeAuth bool, out any) error {
	f.record("GET", path, nil, includeAuth)
	return f.respond(path, out)
}

func (f *fakeAPI) GetRaw(ctx context.Context, path string, includeAuth bool) ([]byte, error) {
	f.record("GET", path, nil, includeAuth)
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.responses[path]
	if !ok {
		return nil, fmt.Errorf("fakeAPI: no canned response for %s", path)
	}
	return []byte(data), nil
}

func (f *fakeAPI) Post(ctx context.Context, path string, body any, includeAuth bool, out any) error {
	f.record("POST", path, body, includeAuth)
	return f.respond(path, out)
}

func (f *fakeAPI) Put(ctx context.Context, path string, body any, includeAuth bool, out any) error {
	f.record("PUT", path, body, includeAuth)
	return f.respond(path, out)
}

func (f *fakeAPI) Delete(ctx context.Context, path string, includeAuth bool, out any) error {
	f.record("DELETE", path, nil, includeAuth)
	return f.respond(path, out)
}

func (f *fakeAPI) lastCall() apiCall {
	return f.calls[len(f.calls)-1]
}
