package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var pathColumns = []column[horizon.Path]{
	{"Source", func(p horizon.Path) string {
		return p.SourceAmount + " " + assetLabel(p.SourceAssetType, p.SourceAssetCode)
	}},
	{"Destination", func(p horizon.Path) string {
		return p.DestinationAmount + " " + assetLabel(p.DestinationAssetType, p.DestinationAssetCode)
	}},
	{"Hops", func(p horizon.Path) string {
		hops := make([]string, 0, len(p.Path))
		for _, hop := range p.Path {
			hops = append(hops, assetLabel(hop.AssetType, hop.AssetCode))
		}

		return orNA(strings.Join(hops, " > "))
	}},
}

// NewPathsCommand creates the paths command group.
func NewPathsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Find payment paths",
	}

	cmd.AddCommand(newStrictReceivePathsCommand())
	cmd.AddCommand(newStrictSendPathsCommand())
	cmd.AddCommand(newFindPathsCommand())

	return cmd
}

func newStrictReceivePathsCommand() *cobra.Command {
	var (
		destAsset, amount, destAccount string
		sourceAccount, sourceAssets    string
	)

	cmd := &cobra.Command{
		Use:   "strict-receive",
		Short: "Paths that deliver an exact destination amount",
		Long:  "Search for paths that deliver exactly --amount of --destination-asset, from --source-account or --source-assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := parseAssetArg(destAsset)
			if err != nil {
				return err
			}

			builder, err := horizon.StrictReceivePaths(asset, amount)
			if err != nil {
				return err
			}

			var req horizon.Request[horizon.Page[horizon.Path]]

			if sourceAccount != "" {
				filtered, err := builder.SourceAccount(sourceAccount)
				if err != nil {
					return err
				}

				if destAccount != "" {
					filtered, err = filtered.DestinationAccount(destAccount)
					if err != nil {
						return err
					}
				}

				req = filtered.Build()
			} else {
				assets, err := parseAssetList(sourceAssets)
				if err != nil {
					return err
				}

				filtered, err := builder.SourceAssets(assets...)
				if err != nil {
					return err
				}

				if destAccount != "" {
					filtered, err = filtered.DestinationAccount(destAccount)
					if err != nil {
						return err
					}
				}

				req = filtered.Build()
			}

			return listPaths(cmd, req)
		},
	}

	cmd.Flags().StringVar(&destAsset, "destination-asset", "", "asset to deliver (native or CODE:ISSUER)")
	cmd.Flags().StringVar(&amount, "amount", "", "exact amount to deliver")
	cmd.Flags().StringVar(&destAccount, "destination-account", "", "receiving account")
	cmd.Flags().StringVar(&sourceAccount, "source-account", "", "search from the assets this account holds")
	cmd.Flags().StringVar(&sourceAssets, "source-assets", "", "comma separated assets to search from")
	_ = cmd.MarkFlagRequired("destination-asset")
	_ = cmd.MarkFlagRequired("amount")
	cmd.MarkFlagsMutuallyExclusive("source-account", "source-assets")
	cmd.MarkFlagsOneRequired("source-account", "source-assets")

	return cmd
}

func newStrictSendPathsCommand() *cobra.Command {
	var (
		sourceAsset, amount       string
		destAccount, destinations string
	)

	cmd := &cobra.Command{
		Use:   "strict-send",
		Short: "Paths that spend an exact source amount",
		Long:  "Search for paths that spend exactly --amount of --source-asset, into --destination-account or --destination-assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := parseAssetArg(sourceAsset)
			if err != nil {
				return err
			}

			builder, err := horizon.StrictSendPaths(asset, amount)
			if err != nil {
				return err
			}

			var req horizon.Request[horizon.Page[horizon.Path]]

			if destAccount != "" {
				filtered, err := builder.DestinationAccount(destAccount)
				if err != nil {
					return err
				}

				req = filtered.Build()
			} else {
				assets, err := parseAssetList(destinations)
				if err != nil {
					return err
				}

				filtered, err := builder.DestinationAssets(assets...)
				if err != nil {
					return err
				}

				req = filtered.Build()
			}

			return listPaths(cmd, req)
		},
	}

	cmd.Flags().StringVar(&sourceAsset, "source-asset", "", "asset to spend (native or CODE:ISSUER)")
	cmd.Flags().StringVar(&amount, "amount", "", "exact amount to spend")
	cmd.Flags().StringVar(&destAccount, "destination-account", "", "search into the assets this account holds")
	cmd.Flags().StringVar(&destinations, "destination-assets", "", "comma separated assets to search into")
	_ = cmd.MarkFlagRequired("source-asset")
	_ = cmd.MarkFlagRequired("amount")
	cmd.MarkFlagsMutuallyExclusive("destination-account", "destination-assets")
	cmd.MarkFlagsOneRequired("destination-account", "destination-assets")

	return cmd
}

func newFindPathsCommand() *cobra.Command {
	var sourceAccount, destAsset, amount, destAccount string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Paths from a source account (legacy endpoint)",
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := parseAssetArg(destAsset)
			if err != nil {
				return err
			}

			builder, err := horizon.FindPaths(sourceAccount, asset, amount)
			if err != nil {
				return err
			}

			if destAccount != "" {
				builder, err = builder.DestinationAccount(destAccount)
				if err != nil {
					return err
				}
			}

			return listPaths(cmd, builder.Build())
		},
	}

	cmd.Flags().StringVar(&sourceAccount, "source-account", "", "paying account")
	cmd.Flags().StringVar(&destAsset, "destination-asset", "", "asset to deliver (native or CODE:ISSUER)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to deliver")
	cmd.Flags().StringVar(&destAccount, "destination-account", "", "receiving account")
	_ = cmd.MarkFlagRequired("source-account")
	_ = cmd.MarkFlagRequired("destination-asset")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listPaths(cmd *cobra.Command, req horizon.Request[horizon.Page[horizon.Path]]) error {
	client, err := createClient(cmd.Context())
	if err != nil {
		return err
	}

	page, err := client.Paths().List(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to find paths: %w", err)
	}

	return emitPage(cmd, req, page, pathColumns)
}
