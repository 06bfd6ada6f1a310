package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okonenko/hinge-auth/internal/utils"
)

// TestHeaderInjector_RoundTrip tests that provided headers are injected into requests.
func TestHeaderInjector_RoundTrip(t *testing.T) {
	t.Parallel()

	var seen http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	headers := http.Header{}
	headers.Set("X-Device-Platform", "iOS")
	headers.Set("X-Device-Id", "0B4B2045-3C6D-4E24-9E6F-2D1B7C5A9F01")
	headers.Set("User-Agent", "Hinge/11612 CFNetwork/3826.400.120 Darwin/24.3.0")

	client := &http.Client{
		Transport: NewHeaderInjector(http.DefaultTransport, utils.NewStaticHeaderProvider(headers)),
	}

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, server.URL, http.NoBody)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "iOS", seen.Get("X-Device-Platform"))
	assert.Equal(t, "0B4B2045-3C6D-4E24-9E6F-2D1B7C5A9F01", seen.Get("X-Device-Id"))
	assert.Equal(t, "Hinge/11612 CFNetwork/3826.400.120 Darwin/24.3.0", seen.Get("User-Agent"))
}

// TestHeaderInjector_ExplicitHeaderWins tests that per-request headers are not overwritten.
func TestHeaderInjector_ExplicitHeaderWins(t *testing.T) {
	t.Parallel()

	var seen http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	headers := http.Header{}
	headers.Set("Accept-Language", "en-GB")

	client := &http.Client{
		Transport: NewHeaderInjector(http.DefaultTransport, utils.NewStaticHeaderProvider(headers)),
	}

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, server.URL, http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Accept-Language", "de-DE")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "de-DE", seen.Get("Accept-Language"))
}

// TestLogTransport_NilRequest tests the nil request guard.
func TestLogTransport_NilRequest(t *testing.T) {
	t.Parallel()

	transport := NewLogTransport(http.DefaultTransport, 0)

	resp, err := transport.RoundTrip(nil) //nolint:bodyclose // No response is returned for a nil request.
	require.ErrorIs(t, err, ErrNilRequest)
	assert.Nil(t, resp)
}
