package horizon

import (
	"context"
	"time"
)

// Getter fetches a single resource.
type Getter[T any] interface {
	Get(ctx context.Context, req Request[T]) (*T, error)
}

// Lister fetches one page of a collection. The request may come from a
// builder or from the links of an earlier page.
type Lister[T any] interface {
	List(ctx context.Context, req Request[Page[T]]) (*Page[T], error)
}

// AccountsClient defines operations for accounts.
type AccountsClient interface {
	Getter[Account]
	Lister[Account]
}

// AssetsClient defines operations for asset statistics.
type AssetsClient interface {
	Lister[AssetStat]
}

// ClaimableBalancesClient defines operations for claimable balances.
type ClaimableBalancesClient interface {
	Getter[ClaimableBalance]
	Lister[ClaimableBalance]
}

// EffectsClient defines operations for effects.
type EffectsClient interface {
	Lister[Effect]
}

// FeeStatsClient defines operations for fee statistics.
type FeeStatsClient interface {
	Getter[FeeStats]
}

// LedgersClient defines operations for ledgers.
type LedgersClient interface {
	Getter[Ledger]
	Lister[Ledger]
}

// LiquidityPoolsClient defines operations for liquidity pools.
type LiquidityPoolsClient interface {
	Getter[LiquidityPool]
	Lister[LiquidityPool]
}

// OffersClient defines operations for offers.
type OffersClient interface {
	Getter[Offer]
	Lister[Offer]
}

// OperationsClient defines operations for operations.
type OperationsClient interface {
	Getter[Operation]
	Lister[Operation]
}

// OrderBooksClient defines operations for order books.
type OrderBooksClient interface {
	Getter[OrderBookSummary]
}

// PathsClient defines operations for path finding.
type PathsClient interface {
	Lister[Path]
}

// PaymentsClient defines operations for payments.
type PaymentsClient interface {
	Lister[Payment]
}

// TradeAggregationsClient defines operations for trade aggregations.
type TradeAggregationsClient interface {
	Lister[TradeAggregation]
}

// TradesClient defines operations for trades.
type TradesClient interface {
	Lister[Trade]
}

// TransactionsClient defines operations for transactions.
type TransactionsClient interface {
	Getter[Transaction]
	Lister[Transaction]
}

// LedgerStateClients provides access to clients for current ledger entries.
type LedgerStateClients interface {
	Accounts() AccountsClient
	Assets() AssetsClient
	ClaimableBalances() ClaimableBalancesClient
	LiquidityPools() LiquidityPoolsClient
	Offers() OffersClient
}

// HistoryClients provides access to clients for ledger history.
type HistoryClients interface {
	Ledgers() LedgersClient
	Transactions() TransactionsClient
	Operations() OperationsClient
	Payments() PaymentsClient
	Effects() EffectsClient
}

// ExchangeClients provides access to clients for the decentralized exchange.
type ExchangeClients interface {
	OrderBooks() OrderBooksClient
	Paths() PathsClient
	Trades() TradesClient
	TradeAggregations() TradeAggregationsClient
}

// NetworkClients provides access to clients describing the network itself.
type NetworkClients interface {
	FeeStats() FeeStatsClient
}

// Client is a Horizon client bound to one Endpoint. It holds no mutable state
// and is safe for concurrent use.
type Client interface {
	LedgerStateClients
	HistoryClients
	ExchangeClients
	NetworkClients

	Root(ctx context.Context) (*Root, error)
	Endpoint() Endpoint
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a horizon.Client.
type Config struct {
	// Endpoint: the Horizon deployment to query. Required.
	Endpoint Endpoint

	// HTTPTimeout: per-request timeout applied by the transport. Context
	// deadlines still apply on top of it.
	HTTPTimeout time.Duration
	// RetryMax: retries performed by the transport for connection errors and
	// 5xx/429 answers. Zero, the default, sends every request exactly once.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// XDRCodec: decoder for the base64 XDR fields of ledgers and
	// transactions. Defaults to StellarXDRCodec.
	XDRCodec XDRCodec
	// Interceptors: optional hooks run around every request.
	Interceptors *InterceptorChain
	// VerifyEndpoint: when true, construction fetches the root resource and
	// fails if the endpoint is not a reachable Horizon server.
	VerifyEndpoint bool
}
