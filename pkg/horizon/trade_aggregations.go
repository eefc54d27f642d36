package horizon

import (
	"strconv"
	"time"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
)

const tradeAggregationsPath = "/trade_aggregations"

// Resolution is the bucket width of a trade aggregation.
type Resolution time.Duration

// Resolutions Horizon accepts.
const (
	Resolution1Minute   = Resolution(time.Minute)
	Resolution5Minutes  = Resolution(5 * time.Minute)
	Resolution15Minutes = Resolution(15 * time.Minute)
	Resolution1Hour     = Resolution(time.Hour)
	Resolution1Day      = Resolution(24 * time.Hour)
	Resolution1Week     = Resolution(7 * 24 * time.Hour)
)

// Valid reports whether r is one of the supported resolutions.
func (r Resolution) Valid() bool {
	switch r {
	case Resolution1Minute, Resolution5Minutes, Resolution15Minutes,
		Resolution1Hour, Resolution1Day, Resolution1Week:
		return true
	default:
		return false
	}
}

// Milliseconds returns the value Horizon expects on the wire.
func (r Resolution) Milliseconds() int64 {
	return time.Duration(r).Milliseconds()
}

// TradeAggregationsBuilder builds a trade aggregation query for one asset pair
// and resolution.
type TradeAggregationsBuilder struct {
	path       string
	resolution Resolution
	start      time.Time
	end        time.Time
	params     Params
}

// TradeAggregations starts a trade aggregation query.
func TradeAggregations(base, counter Asset, resolution Resolution) (TradeAggregationsBuilder, error) {
	if base == counter {
		return TradeAggregationsBuilder{}, invalid("counter_asset", counter.String(), ErrSameAssets)
	}

	if !resolution.Valid() {
		return TradeAggregationsBuilder{}, invalid("resolution", time.Duration(resolution).String(), ErrInvalidResolution)
	}

	params := base.setTyped(nil, "base")
	params = counter.setTyped(params, "counter")
	params = params.Set("resolution", strconv.FormatInt(resolution.Milliseconds(), 10))

	return TradeAggregationsBuilder{path: tradeAggregationsPath, resolution: resolution, params: params}, nil
}

// StartTime sets the lower bound of the aggregated window.
func (b TradeAggregationsBuilder) StartTime(start time.Time) (TradeAggregationsBuilder, error) {
	if !b.end.IsZero() && !b.end.After(start) {
		return b, invalid("start_time", start.UTC().Format(time.RFC3339), ErrInvalidTimeRange)
	}

	b.start = start
	b.params = b.params.Set("start_time", strconv.FormatInt(start.UnixMilli(), 10))

	return b, nil
}

// EndTime sets the upper bound of the aggregated window.
func (b TradeAggregationsBuilder) EndTime(end time.Time) (TradeAggregationsBuilder, error) {
	if !b.start.IsZero() && !end.After(b.start) {
		return b, invalid("end_time", end.UTC().Format(time.RFC3339), ErrInvalidTimeRange)
	}

	b.end = end
	b.params = b.params.Set("end_time", strconv.FormatInt(end.UnixMilli(), 10))

	return b, nil
}

// Offset shifts bucket boundaries. It must be a whole number of hours, at most
// 24h and smaller than the resolution.
func (b TradeAggregationsBuilder) Offset(offset time.Duration) (TradeAggregationsBuilder, error) {
	if offset < 0 || offset%time.Hour != 0 || offset > constants.TradeAggregationMaxOffset ||
		offset >= time.Duration(b.resolution) {
		return b, invalid("offset", offset.String(), ErrInvalidOffset)
	}

	b.params = b.params.Set("offset", strconv.FormatInt(offset.Milliseconds(), 10))

	return b, nil
}

// Limit sets the number of buckets.
func (b TradeAggregationsBuilder) Limit(limit int) (TradeAggregationsBuilder, error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Order sets the walk direction.
func (b TradeAggregationsBuilder) Order(order Order) (TradeAggregationsBuilder, error) {
	params, err := setOrder(b.params, order)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Build returns the finished request.
func (b TradeAggregationsBuilder) Build() Request[Page[TradeAggregation]] {
	return newRequest[Page[TradeAggregation]](b.path, b.params)
}
