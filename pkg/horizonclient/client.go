// Package horizonclient provides the main entry point for creating Horizon clients.
package horizonclient

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/horizon-client/internal/client"
	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

// New creates a Horizon client from config. When config.VerifyEndpoint is set
// the root resource is fetched once so a wrong URL fails here rather than on
// the first query.
func New(ctx context.Context, config *horizon.Config) (horizon.Client, error) {
	if config == nil {
		return nil, horizon.ErrConfigRequired
	}

	horizonClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	if config.VerifyEndpoint {
		_, err = horizonClient.Root(ctx)
		if err != nil {
			return nil, fmt.Errorf("verifying endpoint %s: %w", config.Endpoint, err)
		}
	}

	return horizonClient, nil
}

// NewWithEndpoint creates a client for the Horizon at rawURL with default
// settings.
func NewWithEndpoint(ctx context.Context, rawURL string) (horizon.Client, error) {
	endpoint, err := horizon.NewEndpoint(rawURL)
	if err != nil {
		return nil, err
	}

	return New(ctx, &horizon.Config{Endpoint: endpoint})
}

// NewTestnet creates a client for the SDF testnet Horizon.
func NewTestnet(ctx context.Context) (horizon.Client, error) {
	return New(ctx, &horizon.Config{Endpoint: horizon.TestnetEndpoint()})
}

// NewPublic creates a client for the SDF public network Horizon.
func NewPublic(ctx context.Context) (horizon.Client, error) {
	return New(ctx, &horizon.Config{Endpoint: horizon.PublicEndpoint()})
}
