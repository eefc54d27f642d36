package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

// NetworkStatus combines the root, the fee stats and the newest ledger.
type NetworkStatus struct {
	Endpoint     string            `json:"endpoint"      yaml:"endpoint"`
	Root         *horizon.Root     `json:"root"          yaml:"root"`
	FeeStats     *horizon.FeeStats `json:"fee_stats"     yaml:"fee_stats"`
	LatestLedger *horizon.Ledger   `json:"latest_ledger" yaml:"latest_ledger"`
}

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Display network status",
		Long:  "Fetch the server root, the fee stats and the latest ledger concurrently and summarize them",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			ledgers, err := horizon.Ledgers().Order(horizon.OrderDesc)
			if err != nil {
				return err
			}

			ledgers, err = ledgers.Limit(1)
			if err != nil {
				return err
			}

			status := NetworkStatus{Endpoint: client.Endpoint().String()}
			group, ctx := errgroup.WithContext(cmd.Context())

			group.Go(func() error {
				root, rootErr := client.Root(ctx)
				status.Root = root

				return rootErr
			})

			group.Go(func() error {
				feeStats, feeErr := client.FeeStats().Get(ctx, horizon.FeeStatsRequest())
				status.FeeStats = feeStats

				return feeErr
			})

			group.Go(func() error {
				page, ledgerErr := client.Ledgers().List(ctx, ledgers.Build())
				if ledgerErr != nil {
					return ledgerErr
				}

				if records := page.Records(); len(records) > 0 {
					status.LatestLedger = &records[0]
				}

				return nil
			})

			err = group.Wait()
			if err != nil {
				return fmt.Errorf("failed to get network status: %w", err)
			}

			rows := [][2]string{
				{"Endpoint", status.Endpoint},
				{"Horizon Version", status.Root.HorizonVersion},
				{"Protocol Version", strconv.Itoa(int(status.Root.CurrentProtocolVersion))},
				{"Base Fee (stroops)", status.FeeStats.LastLedgerBaseFee},
				{"Capacity Usage", status.FeeStats.LedgerCapacityUsage},
				{"Fee Charged p50", status.FeeStats.FeeCharged.P50},
				{"Fee Charged p99", status.FeeStats.FeeCharged.P99},
			}

			if status.LatestLedger != nil {
				rows = append(rows,
					[2]string{"Latest Ledger", strconv.Itoa(int(status.LatestLedger.Sequence))},
					[2]string{"Closed At", status.LatestLedger.ClosedAt.Format(time.RFC3339)},
					[2]string{"Ingest Lag", time.Since(status.LatestLedger.ClosedAt).Round(time.Second).String()},
				)
			}

			return renderProperties(cmd.OutOrStdout(), status, rows)
		},
	}
}
