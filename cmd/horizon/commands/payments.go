package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var paymentColumns = []column[horizon.Payment]{
	{"ID", func(p horizon.Payment) string { return p.ID }},
	{"Type", func(p horizon.Payment) string { return p.Type }},
	{"From", func(p horizon.Payment) string { return orNA(firstNonEmpty(p.From, p.Funder, p.Account)) }},
	{"To", func(p horizon.Payment) string { return orNA(firstNonEmpty(p.To, p.Into)) }},
	{"Amount", func(p horizon.Payment) string { return orNA(firstNonEmpty(p.Amount, p.StartingBalance)) }},
	{"Asset", paymentAsset},
	{"Created", func(p horizon.Payment) string { return p.CreatedAt.Format(time.RFC3339) }},
}

var paymentScopes = scopes[horizon.OperationHistoryBuilder[horizon.Payment]]{
	all:         horizon.Payments,
	account:     horizon.PaymentsForAccount,
	ledger:      horizon.PaymentsForLedger,
	transaction: horizon.PaymentsForTransaction,
}

func paymentAsset(payment horizon.Payment) string {
	if payment.AssetType == "" {
		return horizon.NativeAsset().String()
	}

	return horizon.AssetRef{
		AssetType:   payment.AssetType,
		AssetCode:   payment.AssetCode,
		AssetIssuer: payment.AssetIssuer,
	}.String()
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}

// NewPaymentsCommand creates the payments command group.
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Query payment-like operations",
	}

	cmd.AddCommand(newPaymentsListCommand())

	return cmd
}

func newPaymentsListCommand() *cobra.Command {
	var (
		paging        pagingOptions
		includeFailed bool
		join          bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		Long:  "List payments, account creations, merges and path payments, optionally nested under an account, ledger or transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := paymentScopes.resolve(cmd)
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

			page, err := client.Payments().List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to list payments: %w", err)
			}

			return emitPage(cmd, req, page, paymentColumns)
		},
	}

	paymentScopes.register(cmd)
	paging.register(cmd)
	cmd.Flags().BoolVar(&includeFailed, "include-failed", false, "include payments of failed transactions")
	cmd.Flags().BoolVar(&join, "join-transactions", false, "embed the parent transaction of each payment")

	return cmd
}
