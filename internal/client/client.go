package client

import (
	"context"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
	"github.com/fivetwenty-io/horizon-client/internal/http"
	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

// Client implements the horizon.Client interface.
type Client struct {
	endpoint   horizon.Endpoint
	dispatcher *Dispatcher

	// Resource clients
	accounts          *ResourceClient[horizon.Account]
	assets            *ResourceClient[horizon.AssetStat]
	claimableBalances *ResourceClient[horizon.ClaimableBalance]
	effects           *ResourceClient[horizon.Effect]
	feeStats          *ResourceClient[horizon.FeeStats]
	ledgers           *ResourceClient[horizon.Ledger]
	liquidityPools    *ResourceClient[horizon.LiquidityPool]
	offers            *ResourceClient[horizon.Offer]
	operations        *ResourceClient[horizon.Operation]
	orderBooks        *ResourceClient[horizon.OrderBookSummary]
	paths             *ResourceClient[horizon.Path]
	payments          *ResourceClient[horizon.Payment]
	tradeAggregations *ResourceClient[horizon.TradeAggregation]
	trades            *ResourceClient[horizon.Trade]
	transactions      *ResourceClient[horizon.Transaction]
	root              *ResourceClient[horizon.Root]
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *horizon.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Horizon client from config.
func New(config *horizon.Config) (*Client, error) {
	if config == nil {
		return nil, horizon.ErrConfigRequired
	}

	if config.Endpoint.IsZero() {
		return nil, horizon.ErrInvalidEndpoint
	}

	httpClient := http.NewClient(config.Endpoint.String(), createHTTPClientOptions(config)...)
	dispatcher := NewDispatcher(httpClient, config.XDRCodec, config.Interceptors)

	client := &Client{
		endpoint:   config.Endpoint,
		dispatcher: dispatcher,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.accounts = NewResourceClient[horizon.Account](c.dispatcher)
	c.assets = NewResourceClient[horizon.AssetStat](c.dispatcher)
	c.claimableBalances = NewResourceClient[horizon.ClaimableBalance](c.dispatcher)
	c.effects = NewResourceClient[horizon.Effect](c.dispatcher)
	c.feeStats = NewResourceClient[horizon.FeeStats](c.dispatcher)
	c.ledgers = NewResourceClient[horizon.Ledger](c.dispatcher)
	c.liquidityPools = NewResourceClient[horizon.LiquidityPool](c.dispatcher)
	c.offers = NewResourceClient[horizon.Offer](c.dispatcher)
	c.operations = NewResourceClient[horizon.Operation](c.dispatcher)
	c.orderBooks = NewResourceClient[horizon.OrderBookSummary](c.dispatcher)
	c.paths = NewResourceClient[horizon.Path](c.dispatcher)
	c.payments = NewResourceClient[horizon.Payment](c.dispatcher)
	c.tradeAggregations = NewResourceClient[horizon.TradeAggregation](c.dispatcher)
	c.trades = NewResourceClient[horizon.Trade](c.dispatcher)
	c.transactions = NewResourceClient[horizon.Transaction](c.dispatcher)
	c.root = NewResourceClient[horizon.Root](c.dispatcher)
}

// Root implements horizon.Client.Root.
func (c *Client) Root(ctx context.Context) (*horizon.Root, error) {
	return c.root.Get(ctx, horizon.RootRequest())
}

// Endpoint implements horizon.Client.Endpoint.
func (c *Client) Endpoint() horizon.Endpoint {
	return c.endpoint
}

// Accounts implements horizon.Client.Accounts.
func (c *Client) Accounts() horizon.AccountsClient {
	return c.accounts
}

// Assets implements horizon.Client.Assets.
func (c *Client) Assets() horizon.AssetsClient {
	return c.assets
}

// ClaimableBalances implements horizon.Client.ClaimableBalances.
func (c *Client) ClaimableBalances() horizon.ClaimableBalancesClient {
	return c.claimableBalances
}

// Effects implements horizon.Client.Effects.
func (c *Client) Effects() horizon.EffectsClient {
	return c.effects
}

// FeeStats implements horizon.Client.FeeStats.
func (c *Client) FeeStats() horizon.FeeStatsClient {
	return c.feeStats
}

// Ledgers implements horizon.Client.Ledgers.
func (c *Client) Ledgers() horizon.LedgersClient {
	return c.ledgers
}

// LiquidityPools implements horizon.Client.LiquidityPools.
func (c *Client) LiquidityPools() horizon.LiquidityPoolsClient {
	return c.liquidityPools
}

// Offers implements horizon.Client.Offers.
func (c *Client) Offers() horizon.OffersClient {
	return c.offers
}

// Operations implements horizon.Client.Operations.
func (c *Client) Operations() horizon.OperationsClient {
	return c.operations
}

// OrderBooks implements horizon.Client.OrderBooks.
func (c *Client) OrderBooks() horizon.OrderBooksClient {
	return c.orderBooks
}

// Paths implements horizon.Client.Paths.
func (c *Client) Paths() horizon.PathsClient {
	return c.paths
}

// Payments implements horizon.Client.Payments.
func (c *Client) Payments() horizon.PaymentsClient {
	return c.payments
}

// TradeAggregations implements horizon.Client.TradeAggregations.
func (c *Client) TradeAggregations() horizon.TradeAggregationsClient {
	return c.tradeAggregations
}

// Trades implements horizon.Client.Trades.
func (c *Client) Trades() horizon.TradesClient {
	return c.trades
}

// Transactions implements horizon.Client.Transactions.
func (c *Client) Transactions() horizon.TransactionsClient {
	return c.transactions
}

// loggerAdapter adapts horizon.Logger to http.Logger.
type loggerAdapter struct {
	logger horizon.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

var _ horizon.Client = (*Client)(nil)
