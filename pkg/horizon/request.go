package horizon

import "strings"

// Request is a finished, immutable query for one Horizon resource. T is the
// shape the response decodes into. Requests come from builders or from the
// links of a Page; the zero value is rejected at dispatch.
type Request[T any] struct {
	path   string
	params Params
}

func newRequest[T any](path string, params Params) Request[T] {
	return Request[T]{path: path, params: params.clone()}
}

// Path returns the resource path, always starting with "/".
func (r Request[T]) Path() string {
	return r.path
}

// Params returns a copy of the query parameters in order.
func (r Request[T]) Params() Params {
	return r.params.clone()
}

// Query returns the encoded query string without the leading "?".
func (r Request[T]) Query() string {
	return r.params.Encode()
}

// Resource names the requested resource for diagnostics, e.g.
// "accounts/GA.../operations".
func (r Request[T]) Resource() string {
	resource := strings.Trim(r.path, "/")
	if resource == "" {
		return "root"
	}

	return resource
}

// IsZero reports whether r was not produced by a builder or page link.
func (r Request[T]) IsZero() bool {
	return r.path == ""
}

// URL resolves r against endpoint.
func (r Request[T]) URL(endpoint Endpoint) string {
	return endpoint.resolve(r.path, r.Query())
}

// String returns the path and query.
func (r Request[T]) String() string {
	query := r.Query()
	if query == "" {
		return r.path
	}

	return r.path + "?" + query
}
