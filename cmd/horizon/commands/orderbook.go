package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

// NewOrderBookCommand creates the orderbook command.
func NewOrderBookCommand() *cobra.Command {
	var (
		selling string
		buying  string
		limit   int
	)

	cmd := &cobra.Command{
		Use:     "orderbook",
		Aliases: []string{"order-book"},
		Short:   "Display the order book of an asset pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			sellingAsset, err := parseAssetArg(selling)
			if err != nil {
				return err
			}

			buyingAsset, err := parseAssetArg(buying)
			if err != nil {
				return err
			}

			builder, err := horizon.OrderBook().Selling(sellingAsset).Buying(buyingAsset)
			if err != nil {
				return err
			}

			if limit != 0 {
				builder, err = builder.Limit(limit)
				if err != nil {
					return err
				}
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			book, err := client.OrderBooks().Get(cmd.Context(), builder.Build())
			if err != nil {
				return fmt.Errorf("failed to get order book: %w", err)
			}

			format, err := outputFormat()
			if err != nil {
				return err
			}

			if format != constants.FormatTable {
				return encodeStructured(cmd.OutOrStdout(), format, book)
			}

			return renderOrderBook(cmd.OutOrStdout(), book)
		},
	}

	cmd.Flags().StringVar(&selling, "selling", "", "asset offered (native or CODE:ISSUER)")
	cmd.Flags().StringVar(&buying, "buying", "", "asset wanted (native or CODE:ISSUER)")
	cmd.Flags().IntVar(&limit, "limit", 0, "price levels per side (1-200)")
	_ = cmd.MarkFlagRequired("selling")
	_ = cmd.MarkFlagRequired("buying")

	return cmd
}

func renderOrderBook(out io.Writer, book *horizon.OrderBookSummary) error {
	table := tablewriter.NewWriter(out)
	table.Header("Side", "Price", "Amount")

	for _, ask := range book.Asks {
		_ = table.Append("ask", ask.Price, ask.Amount)
	}

	for _, bid := range book.Bids {
		_ = table.Append("bid", bid.Price, bid.Amount)
	}

	_, _ = fmt.Fprintf(out, "%s / %s\n", book.Base, book.Counter)

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
