package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var operationColumns = []column[horizon.Operation]{
	{"ID", func(o horizon.Operation) string { return o.ID }},
	{"Type", func(o horizon.Operation) string { return o.Type }},
	{"Source", func(o horizon.Operation) string { return o.SourceAccount }},
	{"Successful", func(o horizon.Operation) string { return formatBool(o.TransactionSuccessful) }},
	{"Created", func(o horizon.Operation) string { return o.CreatedAt.Format(time.RFC3339) }},
}

var operationScopes = scopes[horizon.OperationHistoryBuilder[horizon.Operation]]{
	all:         horizon.Operations,
	account:     horizon.OperationsForAccount,
	ledger:      horizon.OperationsForLedger,
	transaction: horizon.OperationsForTransaction,
	pool:        horizon.OperationsForLiquidityPool,
}

// NewOperationsCommand creates the operations command group.
func NewOperationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "operations",
		Aliases: []string{"ops"},
		Short:   "Query operations",
	}

	cmd.AddCommand(newOperationsGetCommand())
	cmd.AddCommand(newOperationsListCommand())

	return cmd
}

func newOperationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OPERATION_ID",
		Short: "Get operation details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := horizon.OperationByID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			operation, err := client.Operations().Get(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to get operation: %w", err)
			}

			rows := [][2]string{
				{"ID", operation.ID},
				{"Type", operation.Type},
				{"Source", operation.SourceAccount},
				{"Transaction", operation.TransactionHash},
				{"Successful", formatBool(operation.TransactionSuccessful)},
				{"Created", operation.CreatedAt.Format(time.RFC3339)},
			}

			keys := make([]string, 0, len(operation.Details))
			for key := range operation.Details {
				keys = append(keys, key)
			}

			sort.Strings(keys)

			for _, key := range keys {
				rows = append(rows, [2]string{key, truncate(strings.Trim(string(operation.Details[key]), `"`))})
			}

			return renderProperties(cmd.OutOrStdout(), operation, rows)
		},
	}
}

func newOperationsListCommand() *cobra.Command {
	var (
		paging        pagingOptions
		includeFailed bool
		join          bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List operations",
		Long:  "List operations, optionally nested under one account, ledger, transaction or liquidity pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := operationScopes.resolve(cmd)
			if err != nil {
				return err
			}

			builder, err = applyPaging(builder, paging)
			if err != nil {
				return err
			}

			builder = builder.IncludeFailed(includeFailed)
			if join {
				builder = builder.JoinTransactions()
			}

			req := builder.Build()

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			page, err := client.Operations().List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to list operations: %w", err)
			}

			return emitPage(cmd, req, page, operationColumns)
		},
	}

	operationScopes.register(cmd)
	paging.register(cmd)
	cmd.Flags().BoolVar(&includeFailed, "include-failed", false, "include operations of failed transactions")
	cmd.Flags().BoolVar(&join, "join-transactions", false, "embed the parent transaction of each operation")

	return cmd
}
