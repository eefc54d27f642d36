package horizon

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
)

// Endpoint is the validated base URL of a Horizon deployment: scheme and host,
// nothing else. The zero value is not usable; build one with NewEndpoint.
type Endpoint struct {
	base string
}

// TestnetEndpoint returns the SDF testnet deployment.
func TestnetEndpoint() Endpoint {
	return Endpoint{base: constants.TestnetURL}
}

// PublicEndpoint returns the SDF public network deployment.
func PublicEndpoint() Endpoint {
	return Endpoint{base: constants.PublicURL}
}

// NewEndpoint parses raw as an absolute http or https URL without a path,
// query or fragment. A single trailing slash is accepted and dropped.
func NewEndpoint(raw string) (Endpoint, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w %q: %w", ErrInvalidEndpoint, raw, err)
	}

	switch {
	case parsed.Scheme != "http" && parsed.Scheme != "https":
		return Endpoint{}, fmt.Errorf("%w %q: scheme must be http or https", ErrInvalidEndpoint, raw)
	case parsed.Host == "":
		return Endpoint{}, fmt.Errorf("%w %q: no host specified", ErrInvalidEndpoint, raw)
	case parsed.User != nil:
		return Endpoint{}, fmt.Errorf("%w %q: credentials are not allowed", ErrInvalidEndpoint, raw)
	case parsed.Path != "" && parsed.Path != "/":
		return Endpoint{}, fmt.Errorf("%w %q: must not contain a path", ErrInvalidEndpoint, raw)
	case parsed.RawQuery != "" || parsed.Fragment != "" || parsed.ForceQuery:
		return Endpoint{}, fmt.Errorf("%w %q: must not contain a query or fragment", ErrInvalidEndpoint, raw)
	}

	return Endpoint{base: parsed.Scheme + "://" + parsed.Host}, nil
}

// MustEndpoint is NewEndpoint for package-level values; it panics on error.
func MustEndpoint(raw string) Endpoint {
	endpoint, err := NewEndpoint(raw)
	if err != nil {
		panic(err)
	}

	return endpoint
}

// String returns the base URL without a trailing slash.
func (e Endpoint) String() string {
	return e.base
}

// IsZero reports whether e was never initialized.
func (e Endpoint) IsZero() bool {
	return e.base == ""
}

func (e Endpoint) resolve(path, query string) string {
	if query == "" {
		return e.base + path
	}

	return e.base + path + "?" + query
}
