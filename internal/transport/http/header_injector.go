package http

import (
	"net/http"

	"github.com/okonenko/hinge-auth/internal/utils"
)

// HeaderInjector is a custom http.RoundTripper that stamps outgoing requests
// with a fixed header set, such as the simulated device headers the vendor
// API expects on every call. It wraps another http.RoundTripper.
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// headerProvider provides the header set to inject.
	headerProvider utils.HeaderProvider
}

// NewHeaderInjector creates and returns a new instance of HeaderInjector.
// It takes an underlying http.RoundTripper and a HeaderProvider supplying the headers.
func NewHeaderInjector(next http.RoundTripper, headerProvider utils.HeaderProvider) http.RoundTripper {
	return &HeaderInjector{
		next:           next,
		headerProvider: headerProvider,
	}
}

// RoundTrip executes a single HTTP transaction, injecting every provided header
// that the request does not already set. Explicit per-request headers win.
// It implements the http.RoundTripper interface.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	for name, values := range t.headerProvider.GetHeaders() {
		if req.Header.Get(name) != "" {
			continue
		}

		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	return t.next.RoundTrip(req)
}
