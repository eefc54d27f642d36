package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownNetwork     = errors.New("unknown network, expected 'testnet' or 'public'")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrUnknownOutput      = errors.New("unknown output format, expected 'table', 'json' or 'yaml'")
	ErrInvalidBooleanFlag = errors.New("value must be 'true' or 'false'")
)

// Command argument errors.
var (
	ErrInvalidAssetArgument = errors.New("asset must be 'native' or CODE:ISSUER")
	ErrInvalidSequence      = errors.New("ledger sequence must be a positive integer")
	ErrInvalidResolution    = errors.New("resolution must be one of 1m, 5m, 15m, 1h, 1d, 1w")
	ErrMissingFilter        = errors.New("exactly one filter flag is required")
	ErrConflictingFilters   = errors.New("filter flags are mutually exclusive")
)

// Publishing errors.
var (
	ErrPublisherClosed = errors.New("publisher is closed")
	ErrEmptySubject    = errors.New("publish subject is required")
)
