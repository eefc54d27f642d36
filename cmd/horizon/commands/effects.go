package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var effectColumns = []column[horizon.Effect]{
	{"ID", func(e horizon.Effect) string { return e.ID }},
	{"Type", func(e horizon.Effect) string { return e.Type }},
	{"Account", func(e horizon.Effect) string { return e.Account }},
	{"Created", func(e horizon.Effect) string { return e.CreatedAt.Format(time.RFC3339) }},
}

var effectScopes = scopes[horizon.ListBuilder[horizon.Effect]]{
	all:         horizon.Effects,
	account:     horizon.EffectsForAccount,
	ledger:      horizon.EffectsForLedger,
	transaction: horizon.EffectsForTransaction,
	pool:        horizon.EffectsForLiquidityPool,
	operation:   horizon.EffectsForOperation,
}

// NewEffectsCommand creates the effects command group.
func NewEffectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "effects",
		Short: "Query effects",
	}

	cmd.AddCommand(newEffectsListCommand())

	return cmd
}

func newEffectsListCommand() *cobra.Command {
	var paging pagingOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List effects",
		Long:  "List effects, optionally nested under one account, ledger, transaction, operation or liquidity pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := effectScopes.resolve(cmd)
			if err != nil {
				return err
			}

			builder, err = applyPaging(builder, paging)
			if err != nil {
				return err
			}

			req := builder.Build()

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			page, err := client.Effects().List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to list effects: %w", err)
			}

			return emitPage(cmd, req, page, effectColumns)
		},
	}

	effectScopes.register(cmd)
	paging.register(cmd)

	return cmd
}
