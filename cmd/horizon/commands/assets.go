package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var assetColumns = []column[horizon.AssetStat]{
	{"Code", func(a horizon.AssetStat) string { return a.AssetCode }},
	{"Issuer", func(a horizon.AssetStat) string { return a.AssetIssuer }},
	{"Type", func(a horizon.AssetStat) string { return a.AssetType }},
	{"Holders", func(a horizon.AssetStat) string { return strconv.Itoa(int(a.Accounts.Authorized)) }},
	{"Supply", func(a horizon.AssetStat) string { return a.Balances.Authorized }},
}

// NewAssetsCommand creates the assets command group.
func NewAssetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Query issued assets",
	}

	cmd.AddCommand(newAssetsListCommand())

	return cmd
}

func newAssetsListCommand() *cobra.Command {
	var (
		paging pagingOptions
		code   string
		issuer string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List asset statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := applyPaging(horizon.Assets(), paging)
			if err != nil {
				return err
			}

			if code != "" {
				builder, err = builder.AssetCode(code)
				if err != nil {
					return err
				}
			}

			if issuer != "" {
				builder, err = builder.AssetIssuer(issuer)
				if err != nil {
					return err
				}
			}

			req := builder.Build()

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			page, err := client.Assets().List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to list assets: %w", err)
			}

			return emitPage(cmd, req, page, assetColumns)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "asset code")
	cmd.Flags().StringVar(&issuer, "issuer", "", "issuing account")
	paging.register(cmd)

	return cmd
}
