package horizon_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}

func testUSD() horizon.Asset {
	return must(horizon.NewIssuedAsset("USD", testIssuer))
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestBuilders_URL(t *testing.T) {
	t.Parallel()

	usd := testUSD()
	native := horizon.NativeAsset()
	start := time.UnixMilli(1700000000000)

	tests := []struct {
		name     string
		build    func() (string, error)
		expected string
	}{
		{
			name: "account by id",
			build: func() (string, error) {
				req, err := horizon.AccountByID(testAccountID)

				return req.String(), err
			},
			expected: "/accounts/" + testAccountID,
		},
		{
			name: "accounts by sponsor keeps paging set before the filter",
			build: func() (string, error) {
				builder := must(horizon.Accounts().Limit(50))
				filtered, err := builder.Sponsor(testAccountID)

				return filtered.Build().String(), err
			},
			expected: "/accounts?limit=50&sponsor=" + testAccountID,
		},
		{
			name: "accounts by asset",
			build: func() (string, error) {
				filtered, err := horizon.Accounts().Asset(usd)

				return filtered.Build().String(), err
			},
			expected: "/accounts?asset=USD:" + testIssuer,
		},
		{
			name: "accounts by pool with order after the filter",
			build: func() (string, error) {
				filtered := must(horizon.Accounts().LiquidityPool(testPoolID))
				filtered, err := filtered.Order(horizon.OrderAsc)

				return filtered.Build().String(), err
			},
			expected: "/accounts?liquidity_pool=" + testPoolID + "&order=asc",
		},
		{
			name: "operations for account",
			build: func() (string, error) {
				builder, err := horizon.OperationsForAccount(testAccountID)

				return builder.IncludeFailed(true).JoinTransactions().Build().String(), err
			},
			expected: "/accounts/" + testAccountID + "/operations?include_failed=true&join=transactions",
		},
		{
			name: "payments for ledger",
			build: func() (string, error) {
				builder, err := horizon.PaymentsForLedger(7)

				return builder.Build().String(), err
			},
			expected: "/ledgers/7/payments",
		},
		{
			name: "effects for operation",
			build: func() (string, error) {
				builder, err := horizon.EffectsForOperation("12884905985")

				return builder.Build().String(), err
			},
			expected: "/operations/12884905985/effects",
		},
		{
			name: "transactions for pool",
			build: func() (string, error) {
				builder, err := horizon.TransactionsForLiquidityPool(testPoolID)

				return builder.IncludeFailed(false).Build().String(), err
			},
			expected: "/liquidity_pools/" + testPoolID + "/transactions?include_failed=false",
		},
		{
			name: "liquidity pools by reserves",
			build: func() (string, error) {
				builder := must(horizon.LiquidityPools().Reserves(usd))
				builder = must(builder.Limit(2))
				builder, err := builder.Reserves(native, usd)

				return builder.Build().String(), err
			},
			expected: "/liquidity_pools?reserves=native,USD:" + testIssuer + "&limit=2",
		},
		{
			name: "trades between an asset pair",
			build: func() (string, error) {
				builder, err := horizon.Trades().AssetPair(native, usd)

				return builder.Build().String(), err
			},
			expected: "/trades?base_asset_type=native&counter_asset_type=credit_alphanum4" +
				"&counter_asset_code=USD&counter_asset_issuer=" + testIssuer,
		},
		{
			name: "trades for an offer with trade type",
			build: func() (string, error) {
				builder := must(horizon.Trades().TradeType(horizon.TradeTypeOrderbook))
				filtered, err := builder.Offer("104078276")

				return filtered.Build().String(), err
			},
			expected: "/trades?trade_type=orderbook&offer_id=104078276",
		},
		{
			name: "order book with buying set first",
			build: func() (string, error) {
				ready, err := horizon.OrderBook().Buying(usd).Selling(native)
				if err != nil {
					return "", err
				}

				ready, err = ready.Limit(20)

				return ready.Build().String(), err
			},
			expected: "/order_book?buying_asset_type=credit_alphanum4&buying_asset_code=USD" +
				"&buying_asset_issuer=" + testIssuer + "&selling_asset_type=native&limit=20",
		},
		{
			name: "strict receive paths from assets",
			build: func() (string, error) {
				builder := must(horizon.StrictReceivePaths(usd, "10"))
				filtered, err := builder.SourceAssets(native)

				return filtered.Build().String(), err
			},
			expected: "/paths/strict-receive?destination_asset_type=credit_alphanum4&destination_asset_code=USD" +
				"&destination_asset_issuer=" + testIssuer + "&destination_amount=10&source_assets=native",
		},
		{
			name: "strict send paths to an account",
			build: func() (string, error) {
				builder := must(horizon.StrictSendPaths(native, "5.5"))
				filtered, err := builder.DestinationAccount(testAccountID)

				return filtered.Build().String(), err
			},
			expected: "/paths/strict-send?source_asset_type=native&source_amount=5.5&destination_account=" + testAccountID,
		},
		{
			name: "find paths",
			build: func() (string, error) {
				builder, err := horizon.FindPaths(testAccountID, native, "1")

				return builder.Build().String(), err
			},
			expected: "/paths?destination_asset_type=native&destination_amount=1&source_account=" + testAccountID,
		},
		{
			name: "trade aggregations",
			build: func() (string, error) {
				builder := must(horizon.TradeAggregations(native, usd, horizon.Resolution1Day))
				builder = must(builder.StartTime(start))
				builder = must(builder.EndTime(start.Add(24 * time.Hour)))
				builder, err := builder.Offset(2 * time.Hour)

				return builder.Build().String(), err
			},
			expected: "/trade_aggregations?base_asset_type=native&counter_asset_type=credit_alphanum4" +
				"&counter_asset_code=USD&counter_asset_issuer=" + testIssuer +
				"&resolution=86400000&start_time=1700000000000&end_time=1700086400000&offset=7200000",
		},
		{
			name: "claimable balances by claimant and asset",
			build: func() (string, error) {
				builder, err := horizon.ClaimableBalances().Claimant(testAccountID)

				return builder.Asset(usd).Build().String(), err
			},
			expected: "/claimable_balances?claimant=" + testAccountID + "&asset=USD:" + testIssuer,
		},
		{
			name: "offers by seller selling lumens",
			build: func() (string, error) {
				builder, err := horizon.Offers().Seller(testAccountID)

				return builder.Selling(native).Build().String(), err
			},
			expected: "/offers?seller=" + testAccountID + "&selling=native",
		},
		{
			name: "assets by code and issuer",
			build: func() (string, error) {
				builder := must(horizon.Assets().AssetCode("USD"))
				builder, err := builder.AssetIssuer(testIssuer)

				return builder.Build().String(), err
			},
			expected: "/assets?asset_code=USD&asset_issuer=" + testIssuer,
		},
		{
			name: "claimable balance by id",
			build: func() (string, error) {
				req, err := horizon.ClaimableBalanceByID("00000000" + testPoolID)

				return req.String(), err
			},
			expected: "/claimable_balances/00000000" + testPoolID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestBuilders_Validation(t *testing.T) {
	t.Parallel()

	usd := testUSD()
	native := horizon.NativeAsset()
	start := time.UnixMilli(1700000000000)

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name: "bad account id",
			run: func() error {
				_, err := horizon.AccountByID("GABC")

				return err
			},
			wantErr: horizon.ErrInvalidAccountID,
		},
		{
			name: "native asset filter on accounts",
			run: func() error {
				_, err := horizon.Accounts().Asset(native)

				return err
			},
			wantErr: horizon.ErrNativeAssetNotAllowed,
		},
		{
			name: "zero ledger sequence",
			run: func() error {
				_, err := horizon.LedgerBySequence(0)

				return err
			},
			wantErr: horizon.ErrInvalidLedgerSequence,
		},
		{
			name: "short transaction hash",
			run: func() error {
				_, err := horizon.TransactionByHash(testTxHash[:10])

				return err
			},
			wantErr: horizon.ErrInvalidHash,
		},
		{
			name: "non hex pool id",
			run: func() error {
				_, err := horizon.LiquidityPoolByID("zz" + testPoolID[2:])

				return err
			},
			wantErr: horizon.ErrInvalidLiquidityPoolID,
		},
		{
			name: "pool id used as claimable balance id",
			run: func() error {
				_, err := horizon.ClaimableBalanceByID(testPoolID)

				return err
			},
			wantErr: horizon.ErrInvalidClaimableBalanceID,
		},
		{
			name: "non numeric offer id",
			run: func() error {
				_, err := horizon.OfferByID("abc")

				return err
			},
			wantErr: horizon.ErrInvalidID,
		},
		{
			name: "zero operation id",
			run: func() error {
				_, err := horizon.OperationByID("0")

				return err
			},
			wantErr: horizon.ErrInvalidID,
		},
		{
			name: "empty reserves",
			run: func() error {
				_, err := horizon.LiquidityPools().Reserves()

				return err
			},
			wantErr: horizon.ErrEmptyAssetList,
		},
		{
			name: "trade pair of one asset",
			run: func() error {
				_, err := horizon.Trades().AssetPair(usd, usd)

				return err
			},
			wantErr: horizon.ErrSameAssets,
		},
		{
			name: "unknown trade type",
			run: func() error {
				_, err := horizon.Trades().TradeType("dark_pool")

				return err
			},
			wantErr: horizon.ErrInvalidTradeType,
		},
		{
			name: "order book of one asset",
			run: func() error {
				_, err := horizon.OrderBook().Selling(native).Buying(native)

				return err
			},
			wantErr: horizon.ErrSameAssets,
		},
		{
			name: "unsupported resolution",
			run: func() error {
				_, err := horizon.TradeAggregations(native, usd, horizon.Resolution(2*time.Minute))

				return err
			},
			wantErr: horizon.ErrInvalidResolution,
		},
		{
			name: "offset not a whole hour",
			run: func() error {
				_, err := must(horizon.TradeAggregations(native, usd, horizon.Resolution1Day)).Offset(30 * time.Minute)

				return err
			},
			wantErr: horizon.ErrInvalidOffset,
		},
		{
			name: "offset not below resolution",
			run: func() error {
				_, err := must(horizon.TradeAggregations(native, usd, horizon.Resolution1Hour)).Offset(time.Hour)

				return err
			},
			wantErr: horizon.ErrInvalidOffset,
		},
		{
			name: "end before start",
			run: func() error {
				builder := must(horizon.TradeAggregations(native, usd, horizon.Resolution1Hour))
				builder = must(builder.StartTime(start))
				_, err := builder.EndTime(start.Add(-time.Hour))

				return err
			},
			wantErr: horizon.ErrInvalidTimeRange,
		},
		{
			name: "empty source assets",
			run: func() error {
				_, err := must(horizon.StrictReceivePaths(usd, "1")).SourceAssets()

				return err
			},
			wantErr: horizon.ErrEmptyAssetList,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.run()
			require.ErrorIs(t, err, tt.wantErr)

			var validationErr *horizon.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Param)
		})
	}
}

func TestAmountValidation(t *testing.T) {
	t.Parallel()

	valid := []string{"1", "10.5", "0.0000001", "922337203685.4775807"}
	for _, amount := range valid {
		_, err := horizon.StrictSendPaths(horizon.NativeAsset(), amount)
		require.NoError(t, err, amount)
	}

	invalid := []string{"", "0", "0.0", "-1", "1.", ".5", "1.12345678", "1e5", "ten"}
	for _, amount := range invalid {
		_, err := horizon.StrictSendPaths(horizon.NativeAsset(), amount)
		require.ErrorIs(t, err, horizon.ErrInvalidAmount, amount)
	}
}

func TestTypeState_MethodSets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		absent  []string
		present []string
	}{
		{
			name:    "accounts before a filter",
			value:   horizon.AccountsBuilder{},
			absent:  []string{"Build"},
			present: []string{"Sponsor", "Signer", "Asset", "LiquidityPool", "Limit"},
		},
		{
			name:    "accounts after a filter",
			value:   horizon.AccountsBuilderWith[horizon.SponsorFilter]{},
			absent:  []string{"Sponsor", "Signer", "Asset", "LiquidityPool"},
			present: []string{"Build", "Cursor", "Limit", "Order"},
		},
		{
			name:    "trades after a filter",
			value:   horizon.TradesBuilderWith[horizon.OfferFilter]{},
			absent:  []string{"AssetPair", "Offer", "LiquidityPool"},
			present: []string{"Build", "TradeType"},
		},
		{
			name:    "order book with one side",
			value:   horizon.OrderBookWithSelling{},
			absent:  []string{"Build", "Selling"},
			present: []string{"Buying", "Limit"},
		},
		{
			name:    "order book with both sides",
			value:   horizon.OrderBookReady{},
			absent:  []string{"Selling", "Buying"},
			present: []string{"Build", "Limit"},
		},
		{
			name:    "strict receive without a source",
			value:   horizon.StrictReceivePathsBuilder{},
			absent:  []string{"Build"},
			present: []string{"SourceAccount", "SourceAssets"},
		},
		{
			name:    "strict receive with a source",
			value:   horizon.StrictReceivePathsWith[horizon.SourceAssetsFilter]{},
			absent:  []string{"SourceAccount", "SourceAssets"},
			present: []string{"Build", "DestinationAccount"},
		},
		{
			name:    "strict send with a destination",
			value:   horizon.StrictSendPathsWith[horizon.DestinationAccountFilter]{},
			absent:  []string{"DestinationAccount", "DestinationAssets"},
			present: []string{"Build"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ := reflect.TypeOf(tt.value)

			for _, name := range tt.absent {
				_, ok := typ.MethodByName(name)
				assert.False(t, ok, "%s must not have %s", typ, name)
			}

			for _, name := range tt.present {
				_, ok := typ.MethodByName(name)
				assert.True(t, ok, "%s must have %s", typ, name)
			}
		})
	}
}

func TestRequest_Finalized(t *testing.T) {
	t.Parallel()

	builder := must(horizon.Ledgers().Limit(10))
	first := builder.Build()

	builder = must(builder.Order(horizon.OrderDesc))
	second := builder.Build()

	assert.Equal(t, "limit=10", first.Query())
	assert.Equal(t, "limit=10&order=desc", second.Query())

	params := first.Params()
	params[0].Value = "99"
	assert.Equal(t, "limit=10", first.Query(), "Params must return a copy")

	assert.Equal(t, "ledgers", first.Resource())
	assert.Equal(t, "root", horizon.RootRequest().Resource())
	assert.True(t, horizon.Request[horizon.Ledger]{}.IsZero())
	assert.False(t, first.IsZero())
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestBuilders_ZeroStates(t *testing.T) {
	t.Parallel()

	usd := testUSD()

	tests := []struct {
		name  string
		build func(t *testing.T) bool
	}{
		{
			name:  "accounts with a filter",
			build: func(t *testing.T) bool { return horizon.AccountsBuilderWith[horizon.SponsorFilter]{}.Build().IsZero() },
		},
		{
			name: "accounts after a rejected filter",
			build: func(t *testing.T) bool {
				failed, err := must(horizon.Accounts().Limit(5)).Sponsor("not-an-account")
				require.Error(t, err)

				return failed.Build().IsZero()
			},
		},
		{
			name:  "unfiltered trades",
			build: func(t *testing.T) bool { return horizon.TradesBuilder{}.Build().IsZero() },
		},
		{
			name:  "trades with a filter",
			build: func(t *testing.T) bool { return horizon.TradesBuilderWith[horizon.OfferFilter]{}.Build().IsZero() },
		},
		{
			name: "trades after a rejected filter",
			build: func(t *testing.T) bool {
				failed, err := horizon.Trades().AssetPair(usd, usd)
				require.ErrorIs(t, err, horizon.ErrSameAssets)

				return failed.Build().IsZero()
			},
		},
		{
			name:  "trade aggregations",
			build: func(t *testing.T) bool { return horizon.TradeAggregationsBuilder{}.Build().IsZero() },
		},
		{
			name:  "order book",
			build: func(t *testing.T) bool { return horizon.OrderBookReady{}.Build().IsZero() },
		},
		{
			name: "order book from a zero first side",
			build: func(t *testing.T) bool {
				return must(horizon.OrderBookWithSelling{}.Buying(usd)).Build().IsZero()
			},
		},
		{
			name: "order book after a rejected side",
			build: func(t *testing.T) bool {
				failed, err := horizon.OrderBook().Selling(usd).Buying(usd)
				require.ErrorIs(t, err, horizon.ErrSameAssets)

				return failed.Build().IsZero()
			},
		},
		{
			name: "strict receive paths",
			build: func(t *testing.T) bool {
				return horizon.StrictReceivePathsWith[horizon.SourceAccountFilter]{}.Build().IsZero()
			},
		},
		{
			name: "strict receive paths from a zero builder",
			build: func(t *testing.T) bool {
				return must(horizon.StrictReceivePathsBuilder{}.SourceAccount(testAccountID)).Build().IsZero()
			},
		},
		{
			name: "strict send paths",
			build: func(t *testing.T) bool {
				return horizon.StrictSendPathsWith[horizon.DestinationAssetsFilter]{}.Build().IsZero()
			},
		},
		{
			name: "strict send paths after a rejected filter",
			build: func(t *testing.T) bool {
				failed, err := must(horizon.StrictSendPaths(usd, "10")).DestinationAssets()
				require.ErrorIs(t, err, horizon.ErrEmptyAssetList)

				return failed.Build().IsZero()
			},
		},
		{
			name:  "find paths",
			build: func(t *testing.T) bool { return horizon.FindPathsBuilder{}.Build().IsZero() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, tt.build(t))
		})
	}

	// Setters on a state that came from a constructor keep its path.
	ready := must(must(horizon.OrderBook().Buying(usd).Limit(3)).Selling(horizon.NativeAsset()))
	assert.Equal(t, "/order_book", ready.Build().Path())

	filtered := must(must(horizon.Accounts().Signer(testAccountID)).Limit(2))
	assert.Equal(t, "/accounts?signer="+testAccountID+"&limit=2", filtered.Build().String())
}
