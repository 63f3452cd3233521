package httpclient

import (
	"net/http"
)

// Transport performs a single HTTP exchange. *http.Client satisfies it.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(req *http.Request) (*http.Response, error)

// Do calls f(req).
func (f TransportFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// newSession returns a client that shares nothing with other requests:
// its transport is a fresh clone with keep-alives disabled. Deadlines come
// from the request context, so the client itself has no timeout.
func newSession() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	return &http.Client{Transport: transport}
}
