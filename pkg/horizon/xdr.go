package horizon

import (
	"fmt"

	"github.com/stellar/go-stellar-sdk/xdr"
	"go.uber.org/multierr"
)

// XDRCodec decodes the base64 XDR blobs Horizon embeds in JSON into typed
// ledger values. It is injected through Config so tests and alternative
// decoders can replace the default.
type XDRCodec interface {
	DecodeBase64(encoded string, target any) error
}

// StellarXDRCodec is the default codec, backed by the Stellar Go SDK.
type StellarXDRCodec struct{}

// DecodeBase64 implements XDRCodec.
func (StellarXDRCodec) DecodeBase64(encoded string, target any) error {
	err := xdr.SafeUnmarshalBase64(encoded, target)
	if err != nil {
		return fmt.Errorf("unmarshaling base64 XDR: %w", err)
	}

	return nil
}

// DefaultXDRCodec returns the codec used when Config leaves it unset.
func DefaultXDRCodec() XDRCodec {
	return StellarXDRCodec{}
}

// XDRDecoder is implemented by response shapes with XDR fields. The
// dispatcher calls it once, right after the JSON has been decoded.
type XDRDecoder interface {
	DecodeXDR(codec XDRCodec) error
}

// RequiredFielder is implemented by response shapes that name the JSON paths
// a well-formed body must contain. A "#" segment stands for every element of
// the array before it.
type RequiredFielder interface {
	RequiredFields() []string
}

func decodeXDRField(codec XDRCodec, field, encoded string, target any) error {
	if encoded == "" {
		return nil
	}

	err := codec.DecodeBase64(encoded, target)
	if err != nil {
		return &DecodeError{Field: field, Err: fmt.Errorf("%w: %w", ErrMalformedXDR, err)}
	}

	return nil
}

// prefixDecodeErrors re-roots every DecodeError in err under prefix.
func prefixDecodeErrors(err error, prefix string) error {
	var out error

	for _, single := range multierr.Errors(err) {
		decodeErrs := DecodeErrors(single)
		if len(decodeErrs) == 0 {
			out = multierr.Append(out, single)

			continue
		}

		for _, decodeErr := range decodeErrs {
			out = multierr.Append(out, &DecodeError{
				Resource: decodeErr.Resource,
				Field:    prefix + "." + decodeErr.Field,
				Err:      decodeErr.Err,
			})
		}
	}

	return out
}
