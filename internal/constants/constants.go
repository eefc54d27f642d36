package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as endpoint probes.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry policy. Retries are off unless a caller opts in through RetryMax.
const (
	// DefaultRetryMax keeps the transport to a single attempt.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait between opted-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opted-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Horizon deployments.
const (
	// TestnetURL is the SDF-operated testnet Horizon.
	TestnetURL = "https://horizon-testnet.stellar.org"

	// PublicURL is the SDF-operated public network Horizon.
	PublicURL = "https://horizon.stellar.org"

	// NetworkTestnet names the testnet deployment in configuration.
	NetworkTestnet = "testnet"

	// NetworkPublic names the public deployment in configuration.
	NetworkPublic = "public"
)

// Pagination limits shared by every Horizon collection.
const (
	// DefaultPageLimit is the page size Horizon applies when limit is unset.
	DefaultPageLimit = 10

	// MinPageLimit is the smallest accepted limit.
	MinPageLimit = 1

	// MaxPageLimit is the largest accepted limit.
	MaxPageLimit = 200
)

// Identifier shapes.
const (
	// HashHexLength is the length of a hex transaction hash or liquidity pool ID.
	HashHexLength = 64

	// ClaimableBalanceIDHexLength is the length of a hex claimable balance ID.
	ClaimableBalanceIDHexLength = 72

	// MaxAssetCodeLength is the longest credit_alphanum12 code.
	MaxAssetCodeLength = 12

	// MaxAlphanum4CodeLength is the longest credit_alphanum4 code.
	MaxAlphanum4CodeLength = 4

	// MaxAmountDecimals is the number of fractional digits a Stellar amount may carry.
	MaxAmountDecimals = 7
)

// Trade aggregation offsets.
const (
	// TradeAggregationMaxOffset is the largest offset Horizon accepts.
	TradeAggregationMaxOffset = 24 * time.Hour
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusMultipleChoices is the first non-success status.
	HTTPStatusMultipleChoices = 300

	// HTTPStatusBadRequest represents a client error.
	HTTPStatusBadRequest = 400

	// HTTPStatusNotFound represents a missing resource.
	HTTPStatusNotFound = 404

	// HTTPStatusTooManyRequests represents rate limiting.
	HTTPStatusTooManyRequests = 429
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// StringTruncationLength is the default length for truncating strings.
	StringTruncationLength = 80

	// KeyValueSplitParts is the number of parts when splitting key=value strings.
	KeyValueSplitParts = 2

	// AssetSplitParts is the number of parts in a CODE:ISSUER asset string.
	AssetSplitParts = 2
)

// Metrics.
const (
	// MetricsNamespace prefixes every exported Prometheus series.
	MetricsNamespace = "horizon_client"
)

// Publishing.
const (
	// DefaultPublishSubject is the NATS subject records are published to.
	DefaultPublishSubject = "horizon.records"

	// PublishFlushTimeout bounds how long the CLI waits for NATS to flush.
	PublishFlushTimeout = 5 * time.Second
)
