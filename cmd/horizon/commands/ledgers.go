package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var ledgerColumns = []column[horizon.Ledger]{
	{"Sequence", func(l horizon.Ledger) string { return strconv.Itoa(int(l.Sequence)) }},
	{"Closed", func(l horizon.Ledger) string { return l.ClosedAt.Format(time.RFC3339) }},
	{"Txs", func(l horizon.Ledger) string { return strconv.Itoa(int(l.SuccessfulTransactionCount)) }},
	{"Ops", func(l horizon.Ledger) string { return strconv.Itoa(int(l.OperationCount)) }},
	{"Protocol", func(l horizon.Ledger) string { return strconv.Itoa(int(l.ProtocolVersion)) }},
	{"Hash", func(l horizon.Ledger) string { return l.Hash }},
}

// NewLedgersCommand creates the ledgers command group.
func NewLedgersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledgers",
		Short: "Query ledgers",
	}

	cmd.AddCommand(newLedgersGetCommand())
	cmd.AddCommand(newLedgersListCommand())

	return cmd
}

func newLedgersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SEQUENCE",
		Short: "Get ledger details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sequence, err := parseSequence(args[0])
			if err != nil {
				return err
			}

			req, err := horizon.LedgerBySequence(sequence)
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			ledger, err := client.Ledgers().Get(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to get ledger: %w", err)
			}

			rows := [][2]string{
				{"Sequence", strconv.Itoa(int(ledger.Sequence))},
				{"Hash", ledger.Hash},
				{"Previous Hash", orNA(ledger.PrevHash)},
				{"Closed", ledger.ClosedAt.Format(time.RFC3339)},
				{"Successful Txs", strconv.Itoa(int(ledger.SuccessfulTransactionCount))},
				{"Operations", strconv.Itoa(int(ledger.OperationCount))},
				{"Total Coins", ledger.TotalCoins},
				{"Fee Pool", ledger.FeePool},
				{"Base Fee", strconv.Itoa(int(ledger.BaseFeeInStroops))},
				{"Base Reserve", strconv.Itoa(int(ledger.BaseReserveInStroops))},
				{"Max Tx Set Size", strconv.Itoa(int(ledger.MaxTxSetSize))},
				{"Protocol", strconv.Itoa(int(ledger.ProtocolVersion))},
			}

			if ledger.Header != nil {
				rows = append(rows, [2]string{"Header Version", strconv.FormatUint(uint64(ledger.Header.LedgerVersion), 10)})
			}

			return renderProperties(cmd.OutOrStdout(), ledger, rows)
		},
	}
}

func newLedgersListCommand() *cobra.Command {
	var paging pagingOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledgers",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := applyPaging(horizon.Ledgers(), paging)
			if err != nil {
				return err
			}

			req := builder.Build()

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			page, err := client.Ledgers().List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to list ledgers: %w", err)
			}

			return emitPage(cmd, req, page, ledgerColumns)
		},
	}

	paging.register(cmd)

	return cmd
}
