package stores

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
)

var errOffline = errors.New("connection refused")

type call struct {
	path  string
	query url.Values
}

type responder func(query url.Values) (string, error)

// fakeAPI answers Get from canned JSON keyed by path and records every call.
type fakeAPI struct {
	mu     sync.Mutex
	routes map[string]responder
	calls  []call
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{routes: make(map[string]responder)}
}

func (f *fakeAPI) json(path, body string) *fakeAPI {
	f.routes[path] = func(url.Values) (string, error) { return body, nil }
	return f
}

func (f *fakeAPI) fail(path string) *fakeAPI {
	f.routes[path] = func(url.Values) (string, error) { return "", errOffline }
	return f
}

func (f *fakeAPI) route(path string, fn responder) *fakeAPI {
	f.routes[path] = fn
	return f
}

func (f *fakeAPI) Get(_ context.Context, path string, query url.Values, dest any) error {
	f.mu.Lock()
	f.calls = append(f.calls, call{path: path, query: query})
	fn, ok := f.routes[path]
	f.mu.Unlock()
	if !ok {
		return errors.New("api " + path + " returned status 404")
	}
	body, err := fn(query)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return json.Unmarshal([]byte(body), dest)
}

func (f *fakeAPI) callsTo(path string) []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []call
	for _, c := range f.calls {
		if c.path == path {
			out = append(out, c)
		}
	}
	return out
}
