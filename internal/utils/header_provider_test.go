package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStaticHeaderProvider tests the StaticHeaderProvider implementation.
func TestStaticHeaderProvider(t *testing.T) {
	t.Parallel()

	headers := http.Header{}
	headers.Set("X-Device-Platform", "iOS")
	headers.Set("X-App-Version", "9.78.0")

	provider := NewStaticHeaderProvider(headers)

	got := provider.GetHeaders()
	assert.Equal(t, "iOS", got.Get("X-Device-Platform"))
	assert.Equal(t, "9.78.0", got.Get("X-App-Version"))

	// Mutating the source after construction must not affect the provider.
	headers.Set("X-Device-Platform", "Android")
	assert.Equal(t, "iOS", provider.GetHeaders().Get("X-Device-Platform"))
}
