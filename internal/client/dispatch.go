package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/multierr"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
	horizonhttp "github.com/fivetwenty-io/horizon-client/internal/http"
	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

// Dispatcher executes finished requests against one endpoint. It keeps no
// per-call state and is safe for concurrent use.
type Dispatcher struct {
	httpClient   *horizonhttp.Client
	codec        horizon.XDRCodec
	interceptors *horizon.InterceptorChain
}

// NewDispatcher creates a dispatcher. A nil codec falls back to the default
// XDR codec; a nil chain runs no interceptors.
func NewDispatcher(
	httpClient *horizonhttp.Client,
	codec horizon.XDRCodec,
	interceptors *horizon.InterceptorChain,
) *Dispatcher {
	if codec == nil {
		codec = horizon.DefaultXDRCodec()
	}

	return &Dispatcher{
		httpClient:   httpClient,
		codec:        codec,
		interceptors: interceptors,
	}
}

// fetch performs one GET and returns the body of a 2xx answer. A request
// interceptor error is returned as is: nothing was sent.
func (d *Dispatcher) fetch(ctx context.Context, path, query, resource string) ([]byte, error) {
	req := &horizon.InterceptedRequest{
		Method:   http.MethodGet,
		URL:      d.httpClient.URL(path, query),
		Resource: resource,
	}

	err := d.interceptors.ExecuteRequestInterceptors(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, doErr := d.httpClient.Do(ctx, &horizonhttp.Request{
		Method:   req.Method,
		Path:     path,
		RawQuery: query,
		Headers:  flattenHeaders(req.Headers),
	})

	intercepted := &horizon.InterceptedResponse{Error: doErr}
	if resp != nil {
		intercepted.StatusCode = resp.StatusCode
		intercepted.Headers = resp.Headers
		intercepted.Body = resp.Body
	}

	interceptErr := d.interceptors.ExecuteResponseInterceptors(ctx, req, intercepted)

	if doErr != nil {
		return nil, &horizon.TransportError{Method: req.Method, URL: req.URL, Err: doErr}
	}

	if interceptErr != nil {
		return nil, interceptErr
	}

	if resp.StatusCode < constants.HTTPStatusOK || resp.StatusCode >= constants.HTTPStatusMultipleChoices {
		return nil, horizon.NewProblemError(resp.StatusCode, resp.Body)
	}

	return resp.Body, nil
}

// dispatch executes req and decodes the answer into T.
func dispatch[T any](ctx context.Context, d *Dispatcher, req horizon.Request[T]) (*T, error) {
	if req.IsZero() {
		return nil, horizon.ErrEmptyRequest
	}

	resource := req.Resource()

	body, err := d.fetch(ctx, req.Path(), req.Query(), resource)
	if err != nil {
		return nil, err
	}

	result, err := decode[T](body, d.codec)
	if err != nil {
		for _, decodeErr := range horizon.DecodeErrors(err) {
			decodeErr.Resource = resource
		}

		return nil, err
	}

	return result, nil
}

// decode unmarshals body, checks that every required field is present, then
// decodes the XDR fields. All missing fields are reported together.
func decode[T any](body []byte, codec horizon.XDRCodec) (*T, error) {
	var result T

	err := json.Unmarshal(body, &result)
	if err != nil {
		var decodeErr *horizon.DecodeError
		if errors.As(err, &decodeErr) {
			return nil, decodeErr
		}

		decodeErr = &horizon.DecodeError{Err: err}

		typeErr := &json.UnmarshalTypeError{}
		if errors.As(err, &typeErr) {
			decodeErr.Field = typeErr.Field
		}

		return nil, decodeErr
	}

	var errs error

	if fielder, ok := any(result).(horizon.RequiredFielder); ok {
		for _, path := range fielder.RequiredFields() {
			for _, field := range missingFields(body, path) {
				errs = multierr.Append(errs, &horizon.DecodeError{Field: field, Err: horizon.ErrMissingField})
			}
		}
	}

	if errs != nil {
		return nil, errs
	}

	if decoder, ok := any(&result).(horizon.XDRDecoder); ok {
		err = decoder.DecodeXDR(codec)
		if err != nil {
			return nil, err
		}
	}

	return &result, nil
}

// missingFields returns the concrete paths under path that body lacks. A
// ".#." segment is expanded over every element of the array before it.
func missingFields(body []byte, path string) []string {
	prefix, rest, found := strings.Cut(path, ".#.")
	if !found {
		if gjson.GetBytes(body, path).Exists() {
			return nil
		}

		return []string{path}
	}

	var missing []string

	count := gjson.GetBytes(body, prefix+".#").Int()
	for i := range count {
		missing = append(missing, missingFields(body, fmt.Sprintf("%s.%d.%s", prefix, i, rest))...)
	}

	return missing
}

func flattenHeaders(headers http.Header) map[string]string {
	if len(headers) == 0 {
		return nil
	}

	out := make(map[string]string, len(headers))
	for key := range headers {
		out[key] = headers.Get(key)
	}

	return out
}
