package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var transactionColumns = []column[horizon.Transaction]{
	{"Hash", func(t horizon.Transaction) string { return t.Hash }},
	{"Ledger", func(t horizon.Transaction) string { return strconv.Itoa(int(t.Ledger)) }},
	{"Source", func(t horizon.Transaction) string { return t.SourceAccount }},
	{"Ops", func(t horizon.Transaction) string { return strconv.Itoa(int(t.OperationCount)) }},
	{"Fee", func(t horizon.Transaction) string { return t.FeeCharged }},
	{"Successful", func(t horizon.Transaction) string { return formatBool(t.Successful) }},
}

var transactionScopes = scopes[horizon.HistoryBuilder[horizon.Transaction]]{
	all:     horizon.Transactions,
	account: horizon.TransactionsForAccount,
	ledger:  horizon.TransactionsForLedger,
	pool:    horizon.TransactionsForLiquidityPool,
}

// NewTransactionsCommand creates the transactions command group.
func NewTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txs"},
		Short:   "Query transactions",
	}

	cmd.AddCommand(newTransactionsGetCommand())
	cmd.AddCommand(newTransactionsListCommand())

	return cmd
}

func newTransactionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get HASH",
		Short: "Get transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := horizon.TransactionByHash(args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			tx, err := client.Transactions().Get(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to get transaction: %w", err)
			}

			rows := [][2]string{
				{"Hash", tx.Hash},
				{"Ledger", strconv.Itoa(int(tx.Ledger))},
				{"Created", tx.CreatedAt.Format(time.RFC3339)},
				{"Source", tx.SourceAccount},
				{"Sequence", tx.SourceAccountSequence},
				{"Fee Account", tx.FeeAccount},
				{"Fee Charged", tx.FeeCharged},
				{"Max Fee", tx.MaxFee},
				{"Operations", strconv.Itoa(int(tx.OperationCount))},
				{"Memo Type", tx.MemoType},
				{"Memo", orNA(tx.Memo)},
				{"Successful", formatBool(tx.Successful)},
				{"Signatures", strconv.Itoa(len(tx.Signatures))},
			}

			if tx.Envelope != nil {
				rows = append(rows, [2]string{"Envelope Type", tx.Envelope.Type.String()})
			}

			if tx.Result != nil {
				rows = append(rows, [2]string{"Result Code", tx.Result.Result.Code.String()})
			}

			return renderProperties(cmd.OutOrStdout(), tx, rows)
		},
	}
}

func newTransactionsListCommand() *cobra.Command {
	var (
		paging        pagingOptions
		includeFailed bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  "List transactions, optionally nested under one account, ledger or liquidity pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := transactionScopes.resolve(cmd)
			if err != nil {
				return err
			}

			builder, err = applyPaging(builder, paging)
			if err != nil {
				return err
			}

			req := builder.IncludeFailed(includeFailed).Build()

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			page, err := client.Transactions().List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			return emitPage(cmd, req, page, transactionColumns)
		},
	}

	transactionScopes.register(cmd)
	paging.register(cmd)
	cmd.Flags().BoolVar(&includeFailed, "include-failed", false, "include failed transactions")

	return cmd
}
