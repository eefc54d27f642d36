package horizon

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const metadataStartTime = "start_time"

// InterceptedRequest is the outgoing HTTP request as interceptors see it.
// Headers set here are sent with the request.
type InterceptedRequest struct {
	Method   string
	URL      string
	Resource string
	Headers  http.Header
	Metadata map[string]interface{}
}

// InterceptedResponse is the HTTP response as interceptors see it. Error is
// set when the transport failed and no response arrived.
type InterceptedResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor is called before a request is sent. An error aborts the
// request.
type RequestInterceptor func(ctx context.Context, req *InterceptedRequest) error

// ResponseInterceptor is called after a response is received.
type ResponseInterceptor func(ctx context.Context, req *InterceptedRequest, resp *InterceptedResponse) error

// InterceptorChain manages a chain of interceptors. Add interceptors before
// handing the chain to a client; running it is safe for concurrent use.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *InterceptedRequest) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(
	ctx context.Context, req *InterceptedRequest, resp *InterceptedResponse,
) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *InterceptedRequest) error {
		logger.Debug("Horizon Request", map[string]interface{}{
			"method":   req.Method,
			"resource": req.Resource,
			"url":      req.URL,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *InterceptedRequest, resp *InterceptedResponse) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"resource":    req.Resource,
			"status_code": resp.StatusCode,
		}

		if elapsed, ok := Elapsed(req); ok {
			fields["duration"] = elapsed.String()
		}

		if resp.Error != nil {
			fields["error"] = resp.Error.Error()
			logger.Error("Horizon Response Error", fields)
		} else {
			logger.Debug("Horizon Response", fields)
		}

		return nil
	}
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *InterceptedRequest) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// TimingInterceptor records when a request started so response interceptors
// can report its latency through Elapsed.
func TimingInterceptor() RequestInterceptor {
	return func(ctx context.Context, req *InterceptedRequest) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[metadataStartTime] = time.Now()

		return nil
	}
}

// Elapsed returns the time since TimingInterceptor saw req.
func Elapsed(req *InterceptedRequest) (time.Duration, bool) {
	if req.Metadata == nil {
		return 0, false
	}

	start, ok := req.Metadata[metadataStartTime].(time.Time)
	if !ok {
		return 0, false
	}

	return time.Since(start), true
}
