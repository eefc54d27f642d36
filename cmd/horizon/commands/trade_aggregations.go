package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

var resolutions = map[string]horizon.Resolution{
	"1m":  horizon.Resolution1Minute,
	"5m":  horizon.Resolution5Minutes,
	"15m": horizon.Resolution15Minutes,
	"1h":  horizon.Resolution1Hour,
	"1d":  horizon.Resolution1Day,
	"1w":  horizon.Resolution1Week,
}

var tradeAggregationColumns = []column[horizon.TradeAggregation]{
	{"Bucket", func(a horizon.TradeAggregation) string { return bucketTime(a.Timestamp) }},
	{"Trades", func(a horizon.TradeAggregation) string { return a.TradeCount }},
	{"Open", func(a horizon.TradeAggregation) string { return a.Open }},
	{"High", func(a horizon.TradeAggregation) string { return a.High }},
	{"Low", func(a horizon.TradeAggregation) string { return a.Low }},
	{"Close", func(a horizon.TradeAggregation) string { return a.Close }},
	{"Base Volume", func(a horizon.TradeAggregation) string { return a.BaseVolume }},
}

func parseResolution(raw string) (horizon.Resolution, error) {
	resolution, ok := resolutions[raw]
	if !ok {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidResolution, raw)
	}

	return resolution, nil
}

// bucketTime renders Horizon's millisecond timestamps.
func bucketTime(millis string) string {
	value, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return millis
	}

	return time.UnixMilli(value).UTC().Format(time.RFC3339)
}

// NewTradeAggregationsCommand creates the trade-aggregations command.
func NewTradeAggregationsCommand() *cobra.Command {
	var (
		base, counter, resolution string
		start, end                string
		offset                    time.Duration
		limit                     int
		order                     string
	)

	cmd := &cobra.Command{
		Use:     "trade-aggregations",
		Aliases: []string{"candles"},
		Short:   "Display OHLC trade aggregations for an asset pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			baseAsset, err := parseAssetArg(base)
			if err != nil {
				return err
			}

			counterAsset, err := parseAssetArg(counter)
			if err != nil {
				return err
			}

			res, err := parseResolution(resolution)
			if err != nil {
				return err
			}

			builder, err := horizon.TradeAggregations(baseAsset, counterAsset, res)
			if err != nil {
				return err
			}

			builder, err = applyAggregationOptions(builder, start, end, offset, limit, order)
			if err != nil {
				return err
			}

			req := builder.Build()

			client, err := createClient(cmd.Context())
			if err != nil {
				return err
			}

			page, err := client.TradeAggregations().List(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to get trade aggregations: %w", err)
			}

			return emitPage(cmd, req, page, tradeAggregationColumns)
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "base asset (native or CODE:ISSUER)")
	cmd.Flags().StringVar(&counter, "counter", "", "counter asset (native or CODE:ISSUER)")
	cmd.Flags().StringVar(&resolution, "resolution", "1h", "bucket width (1m, 5m, 15m, 1h, 1d, 1w)")
	cmd.Flags().StringVar(&start, "start", "", "start time (RFC3339)")
	cmd.Flags().StringVar(&end, "end", "", "end time (RFC3339)")
	cmd.Flags().DurationVar(&offset, "offset", 0, "bucket offset in whole hours")
	cmd.Flags().IntVar(&limit, "limit", 0, "buckets per page (1-200)")
	cmd.Flags().StringVar(&order, "order", "", "sort order (asc, desc)")
	_ = cmd.MarkFlagRequired("base")
	_ = cmd.MarkFlagRequired("counter")

	return cmd
}

func applyAggregationOptions(
	builder horizon.TradeAggregationsBuilder,
	start, end string,
	offset time.Duration,
	limit int,
	order string,
) (horizon.TradeAggregationsBuilder, error) {
	if start != "" {
		startTime, err := time.Parse(time.RFC3339, start)
		if err != nil {
			return builder, fmt.Errorf("invalid --start: %w", err)
		}

		builder, err = builder.StartTime(startTime)
		if err != nil {
			return builder, err
		}
	}

	if end != "" {
		endTime, err := time.Parse(time.RFC3339, end)
		if err != nil {
			return builder, fmt.Errorf("invalid --end: %w", err)
		}

		builder, err = builder.EndTime(endTime)
		if err != nil {
			return builder, err
		}
	}

	var err error

	if offset != 0 {
		builder, err = builder.Offset(offset)
		if err != nil {
			return builder, err
		}
	}

	if limit != 0 {
		builder, err = builder.Limit(limit)
		if err != nil {
			return builder, err
		}
	}

	if order != "" {
		builder, err = builder.Order(horizon.Order(order))
		if err != nil {
			return builder, err
		}
	}

	return builder, nil
}
