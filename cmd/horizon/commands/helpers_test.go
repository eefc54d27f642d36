package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

func TestExclusiveFlag(t *testing.T) {
	t.Parallel()

	t.Run("one flag set", func(t *testing.T) {
		t.Parallel()

		cmd := newAccountsListCommand()
		require.NoError(t, cmd.Flags().Set("signer", testAccountID))

		name, value, err := exclusiveFlag(cmd, true, "sponsor", "signer")
		require.NoError(t, err)
		assert.Equal(t, "signer", name)
		assert.Equal(t, testAccountID, value)
	})

	t.Run("two flags set", func(t *testing.T) {
		t.Parallel()

		cmd := newAccountsListCommand()
		require.NoError(t, cmd.Flags().Set("signer", testAccountID))
		require.NoError(t, cmd.Flags().Set("sponsor", testAccountID))

		_, _, err := exclusiveFlag(cmd, true, "sponsor", "signer")
		require.ErrorIs(t, err, constants.ErrConflictingFilters)
	})

	t.Run("required but none set", func(t *testing.T) {
		t.Parallel()

		_, _, err := exclusiveFlag(newAccountsListCommand(), true, "sponsor", "signer")
		require.ErrorIs(t, err, constants.ErrMissingFilter)
	})

	t.Run("optional and none set", func(t *testing.T) {
		t.Parallel()

		name, _, err := exclusiveFlag(newAccountsListCommand(), false, "sponsor", "signer")
		require.NoError(t, err)
		assert.Empty(t, name)
	})
}

func TestParseArguments(t *testing.T) {
	t.Parallel()

	asset, err := parseAssetArg("native")
	require.NoError(t, err)
	assert.True(t, asset.IsNative())

	asset, err = parseAssetArg("USD:" + testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "USD", asset.Code())

	_, err = parseAssetArg("USD")
	require.ErrorIs(t, err, constants.ErrInvalidAssetArgument)

	assets, err := parseAssetList("native, USD:" + testIssuer)
	require.NoError(t, err)
	assert.Len(t, assets, 2)

	sequence, err := parseSequence("123")
	require.NoError(t, err)
	assert.Equal(t, uint32(123), sequence)

	for _, raw := range []string{"0", "-1", "abc", "4294967296"} {
		_, err = parseSequence(raw)
		require.ErrorIs(t, err, constants.ErrInvalidSequence, raw)
	}

	resolution, err := parseResolution("15m")
	require.NoError(t, err)
	assert.Equal(t, horizon.Resolution15Minutes, resolution)

	_, err = parseResolution("2h")
	require.ErrorIs(t, err, constants.ErrInvalidResolution)
}

func TestBuildAccountsRequest(t *testing.T) {
	t.Parallel()

	cmd := newAccountsListCommand()
	require.NoError(t, cmd.Flags().Set("asset", "USD:"+testIssuer))

	req, err := buildAccountsRequest(cmd, pagingOptions{limit: 5, order: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "/accounts", req.Path())

	asset, ok := req.Params().Get("asset")
	assert.True(t, ok)
	assert.Equal(t, "USD:"+testIssuer, asset)

	limit, _ := req.Params().Get("limit")
	assert.Equal(t, "5", limit)

	t.Run("native asset is rejected", func(t *testing.T) {
		t.Parallel()

		cmd := newAccountsListCommand()
		require.NoError(t, cmd.Flags().Set("asset", "native"))

		_, err := buildAccountsRequest(cmd, pagingOptions{})
		require.ErrorIs(t, err, horizon.ErrNativeAssetNotAllowed)
	})

	t.Run("bad limit is rejected", func(t *testing.T) {
		t.Parallel()

		cmd := newAccountsListCommand()
		require.NoError(t, cmd.Flags().Set("signer", testAccountID))

		_, err := buildAccountsRequest(cmd, pagingOptions{limit: 201})
		require.ErrorIs(t, err, horizon.ErrLimitOutOfRange)
	})
}

func TestBuildTradesRequest(t *testing.T) {
	t.Parallel()

	t.Run("asset pair", func(t *testing.T) {
		t.Parallel()

		cmd := newTradesListCommand()
		require.NoError(t, cmd.Flags().Set("base", "native"))
		require.NoError(t, cmd.Flags().Set("counter", "USD:"+testIssuer))

		req, err := buildTradesRequest(cmd, pagingOptions{}, horizon.TradeTypeOrderbook)
		require.NoError(t, err)
		assert.Equal(t, "/trades", req.Path())
		assert.Contains(t, req.Query(), "base_asset_type=native")
		assert.Contains(t, req.Query(), "counter_asset_code=USD")
		assert.Contains(t, req.Query(), "trade_type=orderbook")
	})

	t.Run("account scope", func(t *testing.T) {
		t.Parallel()

		cmd := newTradesListCommand()
		require.NoError(t, cmd.Flags().Set("account", testAccountID))

		req, err := buildTradesRequest(cmd, pagingOptions{}, "")
		require.NoError(t, err)
		assert.Equal(t, "/accounts/"+testAccountID+"/trades", req.Path())
	})

	t.Run("account scope with trade type", func(t *testing.T) {
		t.Parallel()

		cmd := newTradesListCommand()
		require.NoError(t, cmd.Flags().Set("account", testAccountID))

		_, err := buildTradesRequest(cmd, pagingOptions{}, horizon.TradeTypeAll)
		require.ErrorIs(t, err, constants.ErrConflictingFilters)
	})

	t.Run("offer and pool conflict", func(t *testing.T) {
		t.Parallel()

		cmd := newTradesListCommand()
		require.NoError(t, cmd.Flags().Set("offer", "42"))
		require.NoError(t, cmd.Flags().Set("liquidity-pool", testPoolID))

		_, err := buildTradesRequest(cmd, pagingOptions{}, "")
		require.ErrorIs(t, err, constants.ErrConflictingFilters)
	})
}

func TestBuildOffersRequest(t *testing.T) {
	t.Parallel()

	cmd := newOffersListCommand()
	require.NoError(t, cmd.Flags().Set("seller", testAccountID))
	require.NoError(t, cmd.Flags().Set("selling", "native"))

	req, err := buildOffersRequest(cmd, pagingOptions{cursor: "now"})
	require.NoError(t, err)
	assert.Equal(t, "/offers", req.Path())

	seller, _ := req.Params().Get("seller")
	assert.Equal(t, testAccountID, seller)

	selling, _ := req.Params().Get("selling")
	assert.Equal(t, "native", selling)

	cmd = newOffersListCommand()
	require.NoError(t, cmd.Flags().Set("account", testAccountID))

	req, err = buildOffersRequest(cmd, pagingOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/accounts/"+testAccountID+"/offers", req.Path())
}

func TestScopesResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flag  string
		value string
		path  string
	}{
		{"", "", "/effects"},
		{"account", testAccountID, "/accounts/" + testAccountID + "/effects"},
		{"ledger", "7", "/ledgers/7/effects"},
		{"operation", "12884905985", "/operations/12884905985/effects"},
		{"liquidity-pool", testPoolID, "/liquidity_pools/" + testPoolID + "/effects"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			cmd := newEffectsListCommand()
			if tt.flag != "" {
				require.NoError(t, cmd.Flags().Set(tt.flag, tt.value))
			}

			builder, err := effectScopes.resolve(cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.path, builder.Build().Path())
		})
	}

	t.Run("invalid ledger", func(t *testing.T) {
		t.Parallel()

		cmd := newEffectsListCommand()
		require.NoError(t, cmd.Flags().Set("ledger", "0"))

		_, err := effectScopes.resolve(cmd)
		require.ErrorIs(t, err, constants.ErrInvalidSequence)
	})
}

func TestFormattingHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short"))

	long := truncate(strings.Repeat("x", 200))
	assert.Len(t, long, constants.StringTruncationLength)
	assert.True(t, strings.HasSuffix(long, "..."))

	assert.Equal(t, constants.NotAvailable, orNA(""))
	assert.Equal(t, "2017-11-14T00:00:00Z", bucketTime("1510617600000"))
	assert.Equal(t, "garbage", bucketTime("garbage"))

	assert.Equal(t, "USD:"+testIssuer, paymentAsset(horizon.Payment{
		AssetType: "credit_alphanum4", AssetCode: "USD", AssetIssuer: testIssuer,
	}))
	assert.Equal(t, "native", paymentAsset(horizon.Payment{}))
}

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	config := &Config{}

	require.NoError(t, setConfigValue(config, keyNetwork, "PUBLIC"))
	assert.Equal(t, constants.NetworkPublic, config.Network)

	require.NoError(t, setConfigValue(config, keyVerbose, "true"))
	assert.True(t, config.Verbose)

	require.NoError(t, setConfigValue(config, keyURL, "https://horizon.example.org"))
	assert.Equal(t, "https://horizon.example.org", config.URL)

	require.ErrorIs(t, setConfigValue(config, keyNetwork, "futurenet"), constants.ErrUnknownNetwork)
	require.ErrorIs(t, setConfigValue(config, keyOutput, "xml"), constants.ErrUnknownOutput)
	require.ErrorIs(t, setConfigValue(config, keyVerbose, "maybe"), constants.ErrInvalidBooleanFlag)
	require.ErrorIs(t, setConfigValue(config, "token", "x"), constants.ErrUnknownConfigKey)

	require.NoError(t, unsetConfigValue(config, keyVerbose))
	assert.False(t, config.Verbose)
	require.ErrorIs(t, unsetConfigValue(config, "token"), constants.ErrUnknownConfigKey)
}
