package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display Horizon server information",
		Long:  "Display the versions, ledger range and network passphrase reported by the Horizon root",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			root, err := client.Root(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get server info: %w", err)
			}

			rows := [][2]string{
				{"Endpoint", client.Endpoint().String()},
				{"Horizon Version", root.HorizonVersion},
				{"Core Version", root.CoreVersion},
				{"Network Passphrase", root.NetworkPassphrase},
				{"Ingest Latest Ledger", strconv.FormatUint(uint64(root.IngestLatestLedger), 10)},
				{"History Latest Ledger", strconv.Itoa(int(root.HistoryLatestLedger))},
				{"History Latest Closed", root.HistoryLatestLedgerClosedAt.Format(time.RFC3339)},
				{"History Elder Ledger", strconv.Itoa(int(root.HistoryElderLedger))},
				{"Core Latest Ledger", strconv.Itoa(int(root.CoreLatestLedger))},
				{"Protocol Version", strconv.Itoa(int(root.CurrentProtocolVersion))},
			}

			if len(root.Links) > 0 {
				names := make([]string, 0, len(root.Links))
				for name := range root.Links {
					names = append(names, name)
				}

				sort.Strings(names)

				linkStrings := make([]string, 0, len(names))
				for _, name := range names {
					linkStrings = append(linkStrings, fmt.Sprintf("%s: %s", name, root.Links[name].Href))
				}

				rows = append(rows, [2]string{"Links", strings.Join(linkStrings, "\n")})
			}

			return renderProperties(cmd.OutOrStdout(), root, rows)
		},
	}
}
