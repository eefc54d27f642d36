package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountsCommand(t *testing.T) {
	t.Parallel()

	cmd := NewAccountsCommand()
	assert.Equal(t, "accounts", cmd.Use)
	assert.Equal(t, []string{"account"}, cmd.Aliases)
	assert.ElementsMatch(t, []string{"get", "list"}, subcommandNames(cmd))

	list := findSubcommand(cmd, "list")
	require.NotNil(t, list)

	for _, flagName := range []string{"sponsor", "signer", "asset", "liquidity-pool", "cursor", "limit", "order"} {
		assert.NotNil(t, list.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}

	get := findSubcommand(cmd, "get")
	require.NotNil(t, get)
	assert.Equal(t, "get ACCOUNT_ID", get.Use)
	assert.NotNil(t, get.Args)
}

func TestHistoryCommandScopes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flags   []string
		missing []string
	}{
		{
			name:    "operations",
			flags:   []string{"account", "ledger", "transaction", "liquidity-pool", "include-failed", "join-transactions"},
			missing: []string{"operation"},
		},
		{
			name:    "payments",
			flags:   []string{"account", "ledger", "transaction", "include-failed", "join-transactions"},
			missing: []string{"liquidity-pool", "operation"},
		},
		{
			name:    "effects",
			flags:   []string{"account", "ledger", "transaction", "liquidity-pool", "operation"},
			missing: []string{"include-failed"},
		},
		{
			name:    "transactions",
			flags:   []string{"account", "ledger", "liquidity-pool", "include-failed"},
			missing: []string{"transaction", "operation", "join-transactions"},
		},
	}

	commands := map[string]func() *cobra.Command{
		"operations":   NewOperationsCommand,
		"payments":     NewPaymentsCommand,
		"effects":      NewEffectsCommand,
		"transactions": NewTransactionsCommand,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list := findSubcommand(commands[tt.name](), "list")
			require.NotNil(t, list)

			for _, flagName := range tt.flags {
				assert.NotNil(t, list.Flags().Lookup(flagName), "Flag %s should exist", flagName)
			}

			for _, flagName := range tt.missing {
				assert.Nil(t, list.Flags().Lookup(flagName), "Flag %s should not exist", flagName)
			}
		})
	}
}

func TestExchangeCommands(t *testing.T) {
	t.Parallel()

	orderBook := NewOrderBookCommand()
	assert.Equal(t, "orderbook", orderBook.Use)
	assert.NotNil(t, orderBook.Flags().Lookup("selling"))
	assert.NotNil(t, orderBook.Flags().Lookup("buying"))

	paths := NewPathsCommand()
	assert.ElementsMatch(t, []string{"strict-receive", "strict-send", "find"}, subcommandNames(paths))

	aggregations := NewTradeAggregationsCommand()
	assert.Equal(t, "1h", aggregations.Flags().Lookup("resolution").DefValue)
	assert.Equal(t, []string{"candles"}, aggregations.Aliases)

	trades := findSubcommand(NewTradesCommand(), "list")
	require.NotNil(t, trades)

	for _, flagName := range []string{"account", "offer", "liquidity-pool", "base", "counter", "trade-type"} {
		assert.NotNil(t, trades.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}
}

func TestStateCommands(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t, []string{"get", "list"}, subcommandNames(NewClaimableBalancesCommand()))
	assert.ElementsMatch(t, []string{"get", "list"}, subcommandNames(NewLiquidityPoolsCommand()))
	assert.ElementsMatch(t, []string{"get", "list"}, subcommandNames(NewOffersCommand()))
	assert.ElementsMatch(t, []string{"get", "list"}, subcommandNames(NewLedgersCommand()))
	assert.ElementsMatch(t, []string{"list"}, subcommandNames(NewAssetsCommand()))
	assert.ElementsMatch(t, []string{"show", "set", "unset", "clear"}, subcommandNames(NewConfigCommand()))
}
