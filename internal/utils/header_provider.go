package utils

//go:generate $MOCKGEN -source=header_provider.go -destination=mocks/header_provider_mock.go

import "net/http"

// HeaderProvider is an interface that defines a method for retrieving a set of HTTP headers
// to attach to outgoing requests.
type HeaderProvider interface {
	// GetHeaders returns the headers to attach to a request.
	GetHeaders() http.Header
}

// StaticHeaderProvider is a basic implementation of the HeaderProvider interface.
// It provides a fixed header set that is captured during initialization.
type StaticHeaderProvider struct {
	// headers is the header set to return.
	headers http.Header
}

// NewStaticHeaderProvider creates and returns a new instance of StaticHeaderProvider.
// The provided headers are cloned so later mutations by the caller are not observed.
func NewStaticHeaderProvider(headers http.Header) HeaderProvider {
	return &StaticHeaderProvider{headers: headers.Clone()}
}

// GetHeaders returns the headers to attach to a request.
func (p *StaticHeaderProvider) GetHeaders() http.Header {
	return p.headers
}
