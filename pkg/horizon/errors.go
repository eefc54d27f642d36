package horizon

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
)

// Common static errors that can be wrapped with context.
var (
	ErrInvalidEndpoint           = errors.New("invalid Horizon endpoint")
	ErrInvalidAccountID          = errors.New("not a valid Stellar account ID")
	ErrEmptyCursor               = errors.New("cursor must not be empty")
	ErrLimitOutOfRange           = errors.New("limit must be between 1 and 200")
	ErrInvalidOrder              = errors.New("order must be 'asc' or 'desc'")
	ErrInvalidAssetCode          = errors.New("asset code must be 1-12 alphanumeric characters")
	ErrNativeAssetNotAllowed     = errors.New("native asset is not accepted here")
	ErrInvalidHash               = errors.New("not a 64 character hex hash")
	ErrInvalidLiquidityPoolID    = errors.New("not a 64 character hex liquidity pool ID")
	ErrInvalidClaimableBalanceID = errors.New("not a 72 character hex claimable balance ID")
	ErrInvalidID                 = errors.New("not a positive integer ID")
	ErrInvalidLedgerSequence     = errors.New("ledger sequence must be positive")
	ErrInvalidAmount             = errors.New("amount must be a positive decimal with at most 7 fractional digits")
	ErrInvalidResolution         = errors.New("unsupported trade aggregation resolution")
	ErrInvalidOffset             = errors.New("offset must be a whole number of hours, below the resolution and at most 24h")
	ErrInvalidTimeRange          = errors.New("end time must be after start time")
	ErrEmptyAssetList            = errors.New("asset list must not be empty")
	ErrInvalidTradeType          = errors.New("trade type must be 'all', 'orderbook' or 'liquidity_pool'")
	ErrSameAssets                = errors.New("assets must differ")
	ErrEmptyRequest              = errors.New("request was not produced by a builder")
	ErrMissingField              = errors.New("missing required field")
	ErrMalformedXDR              = errors.New("malformed XDR value")
	ErrConfigRequired            = errors.New("config is required")
)

// ValidationError is returned by builder setters when a value fails local
// validation. The builder the setter was called on is left unchanged.
type ValidationError struct {
	Param string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Param, e.Value, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(param, value string, err error) *ValidationError {
	return &ValidationError{Param: param, Value: value, Err: err}
}

// TransportError reports that the HTTP exchange itself did not complete.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the transport's own error unchanged.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Problem is the RFC 7807 document Horizon returns with every error status.
type Problem struct {
	Type     string                     `json:"type"               yaml:"type"`
	Title    string                     `json:"title"              yaml:"title"`
	Status   int                        `json:"status"             yaml:"status"`
	Detail   string                     `json:"detail"             yaml:"detail"`
	Instance string                     `json:"instance,omitempty" yaml:"instance,omitempty"`
	Extras   map[string]json.RawMessage `json:"extras,omitempty"   yaml:"extras,omitempty"`
}

// ProblemError is returned when Horizon answers with a non-2xx status.
// Problem is nil when the body was not a problem document; Body always holds
// the payload exactly as received.
type ProblemError struct {
	StatusCode int
	Problem    *Problem
	Body       []byte
}

// Error implements the error interface.
func (e *ProblemError) Error() string {
	if e.Problem == nil || e.Problem.Title == "" {
		return fmt.Sprintf("horizon returned status %d", e.StatusCode)
	}

	if e.Problem.Detail == "" {
		return fmt.Sprintf("horizon returned status %d: %s", e.StatusCode, e.Problem.Title)
	}

	return fmt.Sprintf("horizon returned status %d: %s: %s", e.StatusCode, e.Problem.Title, e.Problem.Detail)
}

// NewProblemError builds a ProblemError from a raw response. A body that does
// not parse as a problem document still yields an error carrying it.
func NewProblemError(statusCode int, body []byte) *ProblemError {
	problemErr := &ProblemError{StatusCode: statusCode, Body: body}

	problem, err := ParseProblem(body)
	if err == nil && (problem.Title != "" || problem.Type != "") {
		problemErr.Problem = problem
	}

	return problemErr
}

// ParseProblem parses a problem document from JSON.
func ParseProblem(data []byte) (*Problem, error) {
	var problem Problem

	err := json.Unmarshal(data, &problem)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal problem document: %w", err)
	}

	return &problem, nil
}

// DecodeError reports a response body that does not match the expected shape.
// Field is a gjson-style path into the body, empty when the body as a whole
// could not be parsed.
type DecodeError struct {
	Resource string
	Field    string
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decoding %s: %v", e.Resource, e.Err)
	}

	return fmt.Sprintf("decoding %s: field %q: %v", e.Resource, e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeErrors flattens err into every DecodeError it contains.
func DecodeErrors(err error) []*DecodeError {
	var out []*DecodeError

	for _, single := range multierr.Errors(err) {
		decodeErr := &DecodeError{}
		if errors.As(single, &decodeErr) {
			out = append(out, decodeErr)
		}
	}

	return out
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	problemErr := &ProblemError{}
	if errors.As(err, &problemErr) {
		return problemErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 from Horizon.
func IsNotFound(err error) bool {
	return StatusCode(err) == constants.HTTPStatusNotFound
}

// IsRateLimited checks if Horizon rejected the request with 429.
func IsRateLimited(err error) bool {
	return StatusCode(err) == constants.HTTPStatusTooManyRequests
}

// IsBadRequest checks if Horizon rejected the request parameters.
func IsBadRequest(err error) bool {
	return StatusCode(err) == constants.HTTPStatusBadRequest
}
