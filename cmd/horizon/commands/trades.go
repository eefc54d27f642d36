package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var tradeColumns = []column[horizon.Trade]{
	{"ID", func(t horizon.Trade) string { return t.ID }},
	{"Type", func(t horizon.Trade) string { return t.TradeType }},
	{"Base", func(t horizon.Trade) string {
		return t.BaseAmount + " " + assetLabel(t.BaseAssetType, t.BaseAssetCode)
	}},
	{"Counter", func(t horizon.Trade) string {
		return t.CounterAmount + " " + assetLabel(t.CounterAssetType, t.CounterAssetCode)
	}},
	{"Price", func(t horizon.Trade) string {
		if t.Price == nil {
			return constants.NotAvailable
		}

		return t.Price.N + "/" + t.Price.D
	}},
	{"Closed", func(t horizon.Trade) string { return t.LedgerCloseTime.Format(time.RFC3339) }},
}

func assetLabel(assetType, code string) string {
	if assetType == string(horizon.AssetTypeNative) {
		return "XLM"
	}

	return code
}

// NewTradesCommand creates the trades command group.
func NewTradesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trades",
		Short: "Query trades",
	}

	cmd.AddCommand(newTradesListCommand())

	return cmd
}

func newTradesListCommand() *cobra.Command {
	var (
		paging    pagingOptions
		tradeType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trades",
		Long: `List trades. At most one of --account, --offer, --liquidity-pool or the
--base/--counter asset pair narrows the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildTradesRequest(cmd, paging, horizon.TradeType(tradeType))
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			page, err := client.Trades().List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to list trades: %w", err)
			}

			return emitPage(cmd, req, page, tradeColumns)
		},
	}

	cmd.Flags().String("account", "", "trades of this account")
	cmd.Flags().String("offer", "", "trades filling this offer ID")
	cmd.Flags().String("liquidity-pool", "", "trades against this liquidity pool")
	cmd.Flags().String("base", "", "base asset of the pair (native or CODE:ISSUER)")
	cmd.Flags().String("counter", "", "counter asset of the pair (native or CODE:ISSUER)")
	cmd.Flags().StringVar(&tradeType, "trade-type", "", "all, orderbook or liquidity_pool")
	cmd.MarkFlagsRequiredTogether("base", "counter")
	paging.register(cmd)

	return cmd
}

//nolint:cyclop // one branch per filter
func buildTradesRequest(cmd *cobra.Command, paging pagingOptions, tradeType horizon.TradeType) (horizon.Request[horizon.Page[horizon.Trade]], error) {
	var req horizon.Request[horizon.Page[horizon.Trade]]

	filter, value, err := exclusiveFlag(cmd, false, "account", "offer", "liquidity-pool", "base")
	if err != nil {
		return req, err
	}

	if filter == "account" {
		if tradeType != "" {
			return req, fmt.Errorf("%w: --account and --trade-type", constants.ErrConflictingFilters)
		}

		builder, err := horizon.TradesForAccount(value)
		if err != nil {
			return req, err
		}

		builder, err = applyPaging(builder, paging)
		if err != nil {
			return req, err
		}

		return builder.Build(), nil
	}

	builder, err := applyPaging(horizon.Trades(), paging)
	if err != nil {
		return req, err
	}

	if tradeType != "" {
		builder, err = builder.TradeType(tradeType)
		if err != nil {
			return req, err
		}
	}

	switch filter {
	case "offer":
		filtered, err := builder.Offer(value)
		if err != nil {
			return req, err
		}

		return filtered.Build(), nil
	case "liquidity-pool":
		filtered, err := builder.LiquidityPool(value)
		if err != nil {
			return req, err
		}

		return filtered.Build(), nil
	case "base":
		base, err := parseAssetArg(value)
		if err != nil {
			return req, err
		}

		rawCounter, _ := cmd.Flags().GetString("counter")

		counter, err := parseAssetArg(rawCounter)
		if err != nil {
			return req, err
		}

		filtered, err := builder.AssetPair(base, counter)
		if err != nil {
			return req, err
		}

		return filtered.Build(), nil
	default:
		return builder.Build(), nil
	}
}
