package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var liquidityPoolColumns = []column[horizon.LiquidityPool]{
	{"ID", func(p horizon.LiquidityPool) string { return p.ID }},
	{"Fee (bp)", func(p horizon.LiquidityPool) string { return strconv.FormatUint(uint64(p.FeeBP), 10) }},
	{"Reserves", func(p horizon.LiquidityPool) string { return reservesSummary(p.Reserves) }},
	{"Shares", func(p horizon.LiquidityPool) string { return p.TotalShares }},
	{"Trustlines", func(p horizon.LiquidityPool) string { return p.TotalTrustlines }},
}

func reservesSummary(reserves []horizon.LiquidityPoolReserve) string {
	parts := make([]string, 0, len(reserves))
	for _, reserve := range reserves {
		code, _, _ := strings.Cut(reserve.Asset, ":")
		parts = append(parts, reserve.Amount+" "+code)
	}

	return strings.Join(parts, "\n")
}

// NewLiquidityPoolsCommand creates the liquidity-pools command group.
func NewLiquidityPoolsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "liquidity-pools",
		Aliases: []string{"pools"},
		Short:   "Query liquidity pools",
	}

	cmd.AddCommand(newLiquidityPoolsGetCommand())
	cmd.AddCommand(newLiquidityPoolsListCommand())

	return cmd
}

func newLiquidityPoolsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get POOL_ID",
		Short: "Get liquidity pool details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := horizon.LiquidityPoolByID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			pool, err := client.LiquidityPools().Get(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to get liquidity pool: %w", err)
			}

			reserves := make([]string, 0, len(pool.Reserves))
			for _, reserve := range pool.Reserves {
				reserves = append(reserves, fmt.Sprintf("%s: %s", reserve.Asset, reserve.Amount))
			}

			return renderProperties(cmd.OutOrStdout(), pool, [][2]string{
				{"ID", pool.ID},
				{"Type", pool.Type},
				{"Fee (bp)", strconv.FormatUint(uint64(pool.FeeBP), 10)},
				{"Reserves", strings.Join(reserves, "\n")},
				{"Total Shares", pool.TotalShares},
				{"Trustlines", pool.TotalTrustlines},
				{"Last Modified", strconv.FormatUint(uint64(pool.LastModifiedLedger), 10)},
			})
		},
	}
}

func newLiquidityPoolsListCommand() *cobra.Command {
	var (
		paging   pagingOptions
		reserves string
		account  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List liquidity pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := applyPaging(horizon.LiquidityPools(), paging)
			if err != nil {
				return err
			}

			if reserves != "" {
				assets, err := parseAssetList(reserves)
				if err != nil {
					return err
				}

				builder, err = builder.Reserves(assets...)
				if err != nil {
					return err
				}
			}

			if account != "" {
				builder, err = builder.Account(account)
				if err != nil {
					return err
				}
			}

			req := builder.Build()

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			page, err := client.LiquidityPools().List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to list liquidity pools: %w", err)
			}

			return emitPage(cmd, req, page, liquidityPoolColumns)
		},
	}

	cmd.Flags().StringVar(&reserves, "reserves", "", "comma separated assets the pool must hold")
	cmd.Flags().StringVar(&account, "account", "", "pools this account participates in")
	paging.register(cmd)

	return cmd
}
