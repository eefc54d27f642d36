package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var offerColumns = []column[horizon.Offer]{
	{"ID", func(o horizon.Offer) string { return o.ID }},
	{"Seller", func(o horizon.Offer) string { return o.Seller }},
	{"Selling", func(o horizon.Offer) string { return truncate(o.Selling.String()) }},
	{"Buying", func(o horizon.Offer) string { return truncate(o.Buying.String()) }},
	{"Amount", func(o horizon.Offer) string { return o.Amount }},
	{"Price", func(o horizon.Offer) string { return o.Price }},
}

// NewOffersCommand creates the offers command group.
func NewOffersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offers",
		Short: "Query open offers",
	}

	cmd.AddCommand(newOffersGetCommand())
	cmd.AddCommand(newOffersListCommand())

	return cmd
}

func newOffersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OFFER_ID",
		Short: "Get offer details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := horizon.OfferByID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			offer, err := client.Offers().Get(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to get offer: %w", err)
			}

			return renderProperties(cmd.OutOrStdout(), offer, [][2]string{
				{"ID", offer.ID},
				{"Seller", offer.Seller},
				{"Selling", offer.Selling.String()},
				{"Buying", offer.Buying.String()},
				{"Amount", offer.Amount},
				{"Price", fmt.Sprintf("%s (%d/%d)", offer.Price, offer.PriceR.N, offer.PriceR.D)},
				{"Sponsor", orNA(offer.Sponsor)},
				{"Last Modified", strconv.FormatUint(uint64(offer.LastModifiedLedger), 10)},
			})
		},
	}
}

func newOffersListCommand() *cobra.Command {
	var paging pagingOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List offers",
		Long:  "List offers by seller, sponsor and assets, or all offers of one account with --account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildOffersRequest(cmd, paging)
			if err != nil {
				return err
			}

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			page, err := client.Offers().List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to list offers: %w", err)
			}

			return emitPage(cmd, req, page, offerColumns)
		},
	}

	cmd.Flags().String("account", "", "offers of this account")
	cmd.Flags().String("seller", "", "offers made by this account")
	cmd.Flags().String("sponsor", "", "offers sponsored by this account")
	cmd.Flags().String("selling", "", "offers selling this asset")
	cmd.Flags().String("buying", "", "offers buying this asset")
	cmd.MarkFlagsMutuallyExclusive("account", "seller")
	cmd.MarkFlagsMutuallyExclusive("account", "sponsor")
	cmd.MarkFlagsMutuallyExclusive("account", "selling")
	cmd.MarkFlagsMutuallyExclusive("account", "buying")
	paging.register(cmd)

	return cmd
}

func buildOffersRequest(cmd *cobra.Command, paging pagingOptions) (horizon.Request[horizon.Page[horizon.Offer]], error) {
	var req horizon.Request[horizon.Page[horizon.Offer]]

	flags := cmd.Flags()

	if account, _ := flags.GetString("account"); account != "" {
		builder, err := horizon.OffersForAccount(account)
		if err != nil {
			return req, err
		}

		builder, err = applyPaging(builder, paging)
		if err != nil {
			return req, err
		}

		return builder.Build(), nil
	}

	builder, err := applyPaging(horizon.Offers(), paging)
	if err != nil {
		return req, err
	}

	if seller, _ := flags.GetString("seller"); seller != "" {
		builder, err = builder.Seller(seller)
		if err != nil {
			return req, err
		}
	}

	if sponsor, _ := flags.GetString("sponsor"); sponsor != "" {
		builder, err = builder.Sponsor(sponsor)
		if err != nil {
			return req, err
		}
	}

	if selling, _ := flags.GetString("selling"); selling != "" {
		asset, err := parseAssetArg(selling)
		if err != nil {
			return req, err
		}

		builder = builder.Selling(asset)
	}

	if buying, _ := flags.GetString("buying"); buying != "" {
		asset, err := parseAssetArg(buying)
		if err != nil {
			return req, err
		}

		builder = builder.Buying(asset)
	}

	return builder.Build(), nil
}
