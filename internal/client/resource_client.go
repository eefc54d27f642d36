package client

import (
	"context"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

// ResourceClient provides a generic client for one Horizon resource. It
// implements both horizon.Getter[T] and horizon.Lister[T]; the facade exposes
// only the half each resource supports.
type ResourceClient[T any] struct {
	dispatcher *Dispatcher
}

// NewResourceClient creates a new generic resource client.
func NewResourceClient[T any](dispatcher *Dispatcher) *ResourceClient[T] {
	return &ResourceClient[T]{dispatcher: dispatcher}
}

// Get retrieves a single resource.
func (c *ResourceClient[T]) Get(ctx context.Context, req horizon.Request[T]) (*T, error) {
	return dispatch(ctx, c.dispatcher, req)
}

// List retrieves one page of the collection.
func (c *ResourceClient[T]) List(ctx context.Context, req horizon.Request[horizon.Page[T]]) (*horizon.Page[T], error) {
	return dispatch(ctx, c.dispatcher, req)
}
