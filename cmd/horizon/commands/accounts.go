package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var accountColumns = []column[horizon.Account]{
	{"Account", func(a horizon.Account) string { return a.AccountID }},
	{"Sequence", func(a horizon.Account) string { return a.Sequence }},
	{"Subentries", func(a horizon.Account) string { return strconv.Itoa(int(a.SubentryCount)) }},
	{"Native Balance", nativeBalance},
	{"Last Modified", func(a horizon.Account) string { return strconv.FormatUint(uint64(a.LastModifiedLedger), 10) }},
}

func nativeBalance(account horizon.Account) string {
	for _, balance := range account.Balances {
		if balance.AssetType == string(horizon.AssetTypeNative) {
			return balance.Balance
		}
	}

	return constants.NotAvailable
}

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Query accounts",
		Long:    "Look up a single account or list accounts by sponsor, signer, asset or liquidity pool",
	}

	cmd.AddCommand(newAccountsGetCommand())
	cmd.AddCommand(newAccountsListCommand())

	return cmd
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_ID",
		Short: "Get account details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := horizon.AccountByID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			account, err := client.Accounts().Get(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			balances := make([]string, 0, len(account.Balances))
			for _, balance := range account.Balances {
				balances = append(balances, fmt.Sprintf("%s: %s", balance.AssetRef, balance.Balance))
			}

			signers := make([]string, 0, len(account.Signers))
			for _, signer := range account.Signers {
				signers = append(signers, fmt.Sprintf("%s (%d)", signer.Key, signer.Weight))
			}

			return renderProperties(cmd.OutOrStdout(), account, [][2]string{
				{"Account", account.AccountID},
				{"Sequence", account.Sequence},
				{"Subentries", strconv.Itoa(int(account.SubentryCount))},
				{"Home Domain", orNA(account.HomeDomain)},
				{"Thresholds", fmt.Sprintf("low %d, med %d, high %d",
					account.Thresholds.LowThreshold, account.Thresholds.MedThreshold, account.Thresholds.HighThreshold)},
				{"Auth Required", formatBool(account.Flags.AuthRequired)},
				{"Auth Revocable", formatBool(account.Flags.AuthRevocable)},
				{"Clawback Enabled", formatBool(account.Flags.AuthClawbackEnabled)},
				{"Balances", strings.Join(balances, "\n")},
				{"Signers", strings.Join(signers, "\n")},
				{"Sponsoring", strconv.FormatUint(uint64(account.NumSponsoring), 10)},
				{"Sponsored", strconv.FormatUint(uint64(account.NumSponsored), 10)},
			})
		},
	}
}

func newAccountsListCommand() *cobra.Command {
	var paging pagingOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts matching one filter",
		Long: `List accounts matching exactly one of --sponsor, --signer, --asset or
--liquidity-pool. Horizon does not enumerate all accounts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildAccountsRequest(cmd, paging)
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			page, err := client.Accounts().List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			return emitPage(cmd, req, page, accountColumns)
		},
	}

	cmd.Flags().String("sponsor", "", "accounts sponsored by this account")
	cmd.Flags().String("signer", "", "accounts with this signer")
	cmd.Flags().String("asset", "", "accounts trusting this asset (CODE:ISSUER)")
	cmd.Flags().String("liquidity-pool", "", "accounts participating in this pool")
	paging.register(cmd)

	return cmd
}

func buildAccountsRequest(cmd *cobra.Command, paging pagingOptions) (horizon.Request[horizon.Page[horizon.Account]], error) {
	var req horizon.Request[horizon.Page[horizon.Account]]

	filter, value, err := exclusiveFlag(cmd, true, "sponsor", "signer", "asset", "liquidity-pool")
	if err != nil {
		return req, err
	}

	builder, err := applyPaging(horizon.Accounts(), paging)
	if err != nil {
		return req, err
	}

	switch filter {
	case "sponsor":
		filtered, err := builder.Sponsor(value)
		if err != nil {
			return req, err
		}

		return filtered.Build(), nil
	case "signer":
		filtered, err := builder.Signer(value)
		if err != nil {
			return req, err
		}

		return filtered.Build(), nil
	case "asset":
		asset, err := parseAssetArg(value)
		if err != nil {
			return req, err
		}

		filtered, err := builder.Asset(asset)
		if err != nil {
			return req, err
		}

		return filtered.Build(), nil
	default:
		filtered, err := builder.LiquidityPool(value)
		if err != nil {
			return req, err
		}

		return filtered.Build(), nil
	}
}
