package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

// NewFeeStatsCommand creates the fee-stats command.
func NewFeeStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fee-stats",
		Short: "Display fee statistics",
		Long:  "Display fee statistics for the last ledgers closed by the network",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			stats, err := client.FeeStats().Get(cmd.Context(), horizon.FeeStatsRequest())
			if err != nil {
				return fmt.Errorf("failed to get fee stats: %w", err)
			}

			rows := [][2]string{
				{"Last Ledger", stats.LastLedger},
				{"Last Ledger Base Fee", stats.LastLedgerBaseFee},
				{"Ledger Capacity Usage", stats.LedgerCapacityUsage},
			}
			rows = append(rows, distributionRows("Fee Charged", stats.FeeCharged)...)
			rows = append(rows, distributionRows("Max Fee", stats.MaxFee)...)

			return renderProperties(cmd.OutOrStdout(), stats, rows)
		},
	}
}

func distributionRows(label string, dist horizon.FeeDistribution) [][2]string {
	return [][2]string{
		{label + " Min", dist.Min},
		{label + " Mode", dist.Mode},
		{label + " p50", dist.P50},
		{label + " p90", dist.P90},
		{label + " p99", dist.P99},
		{label + " Max", dist.Max},
	}
}
