package horizon_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

const notFoundProblem = `{
  "type": "https://stellar.org/horizon-errors/not_found",
  "title": "Resource Missing",
  "status": 404,
  "detail": "The resource at the url requested was not found."
}`

func TestNewProblemError(t *testing.T) {
	t.Parallel()

	err := horizon.NewProblemError(404, []byte(notFoundProblem))

	require.NotNil(t, err.Problem)
	assert.Equal(t, "Resource Missing", err.Problem.Title)
	assert.Equal(t, 404, err.Problem.Status)
	assert.Equal(t, "horizon returned status 404: Resource Missing: The resource at the url requested was not found.",
		err.Error())
	assert.JSONEq(t, notFoundProblem, string(err.Body))
}

func TestNewProblemError_Extras(t *testing.T) {
	t.Parallel()

	body := `{
	  "type": "https://stellar.org/horizon-errors/bad_request",
	  "title": "Bad Request",
	  "status": 400,
	  "extras": {"invalid_field": "cursor", "reason": "invalid value"}
	}`

	err := horizon.NewProblemError(400, []byte(body))

	require.NotNil(t, err.Problem)
	assert.Equal(t, "horizon returned status 400: Bad Request", err.Error())
	assert.JSONEq(t, `"cursor"`, string(err.Problem.Extras["invalid_field"]))
}

func TestNewProblemError_NotAProblemDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "html", body: "<html>bad gateway</html>"},
		{name: "empty", body: ""},
		{name: "unrelated json", body: `{"message": "rate limit"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := horizon.NewProblemError(502, []byte(tt.body))

			assert.Nil(t, err.Problem)
			assert.Equal(t, tt.body, string(err.Body))
			assert.Equal(t, "horizon returned status 502", err.Error())
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("loading account: %w", horizon.NewProblemError(404, []byte(notFoundProblem)))
	rateLimited := horizon.NewProblemError(429, nil)
	badRequest := horizon.NewProblemError(400, nil)
	other := errors.New("boom")

	assert.Equal(t, 404, horizon.StatusCode(notFound))
	assert.True(t, horizon.IsNotFound(notFound))
	assert.False(t, horizon.IsRateLimited(notFound))

	assert.True(t, horizon.IsRateLimited(rateLimited))
	assert.True(t, horizon.IsBadRequest(badRequest))

	assert.Equal(t, 0, horizon.StatusCode(other))
	assert.False(t, horizon.IsNotFound(other))
	assert.False(t, horizon.IsNotFound(nil))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	_, err := horizon.Ledgers().Limit(500)

	var validationErr *horizon.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "limit", validationErr.Param)
	assert.Equal(t, "500", validationErr.Value)
	assert.Equal(t, `invalid limit "500": `+horizon.ErrLimitOutOfRange.Error(), err.Error())
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &horizon.TransportError{Method: "GET", URL: "https://horizon.example.org/ledgers", Err: cause}

	assert.Equal(t, "GET https://horizon.example.org/ledgers: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	first := &horizon.DecodeError{Resource: "ledgers", Field: "_embedded.records.0.id", Err: horizon.ErrMissingField}
	second := &horizon.DecodeError{Resource: "ledgers", Err: errors.New("unexpected end of JSON input")}

	combined := multierr.Combine(first, errors.New("unrelated"), second)

	decodeErrs := horizon.DecodeErrors(combined)
	require.Len(t, decodeErrs, 2)
	assert.Same(t, first, decodeErrs[0])
	assert.Same(t, second, decodeErrs[1])

	assert.Equal(t, `decoding ledgers: field "_embedded.records.0.id": missing required field`, first.Error())
	assert.Equal(t, "decoding ledgers: unexpected end of JSON input", second.Error())
	assert.ErrorIs(t, combined, horizon.ErrMissingField)

	assert.Empty(t, horizon.DecodeErrors(nil))
}
