package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var claimableBalanceColumns = []column[horizon.ClaimableBalance]{
	{"ID", func(b horizon.ClaimableBalance) string { return b.ID }},
	{"Asset", func(b horizon.ClaimableBalance) string { return truncate(b.Asset) }},
	{"Amount", func(b horizon.ClaimableBalance) string { return b.Amount }},
	{"Claimants", func(b horizon.ClaimableBalance) string { return strconv.Itoa(len(b.Claimants)) }},
	{"Sponsor", func(b horizon.ClaimableBalance) string { return orNA(b.Sponsor) }},
}

// NewClaimableBalancesCommand creates the claimable-balances command group.
func NewClaimableBalancesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "claimable-balances",
		Aliases: []string{"cb"},
		Short:   "Query claimable balances",
	}

	cmd.AddCommand(newClaimableBalancesGetCommand())
	cmd.AddCommand(newClaimableBalancesListCommand())

	return cmd
}

func newClaimableBalancesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BALANCE_ID",
		Short: "Get claimable balance details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := horizon.ClaimableBalanceByID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			balance, err := client.ClaimableBalances().Get(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to get claimable balance: %w", err)
			}

			claimants := make([]string, 0, len(balance.Claimants))
			for _, claimant := range balance.Claimants {
				claimants = append(claimants, claimant.Destination)
			}

			return renderProperties(cmd.OutOrStdout(), balance, [][2]string{
				{"ID", balance.ID},
				{"Asset", balance.Asset},
				{"Amount", balance.Amount},
				{"Sponsor", orNA(balance.Sponsor)},
				{"Claimants", strings.Join(claimants, "\n")},
				{"Clawback Enabled", formatBool(balance.Flags.ClawbackEnabled)},
				{"Last Modified", strconv.FormatUint(uint64(balance.LastModifiedLedger), 10)},
			})
		},
	}
}

func newClaimableBalancesListCommand() *cobra.Command {
	var (
		paging   pagingOptions
		sponsor  string
		asset    string
		claimant string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List claimable balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := applyPaging(horizon.ClaimableBalances(), paging)
			if err != nil {
				return err
			}

			if sponsor != "" {
				builder, err = builder.Sponsor(sponsor)
				if err != nil {
					return err
				}
			}

			if asset != "" {
				parsed, err := parseAssetArg(asset)
				if err != nil {
					return err
				}

				builder = builder.Asset(parsed)
			}

			if claimant != "" {
				builder, err = builder.Claimant(claimant)
				if err != nil {
					return err
				}
			}

			req := builder.Build()

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			page, err := client.ClaimableBalances().List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to list claimable balances: %w", err)
			}

			return emitPage(cmd, req, page, claimableBalanceColumns)
		},
	}

	cmd.Flags().StringVar(&sponsor, "sponsor", "", "balances sponsored by this account")
	cmd.Flags().StringVar(&asset, "asset", "", "balances of this asset")
	cmd.Flags().StringVar(&claimant, "claimant", "", "balances claimable by this account")
	paging.register(cmd)

	return cmd
}
