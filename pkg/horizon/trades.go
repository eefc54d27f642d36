package horizon

const tradesPath = "/trades"

// TradeType restricts trades by how they were matched.
type TradeType string

// Trade types.
const (
	TradeTypeAll           TradeType = "all"
	TradeTypeOrderbook     TradeType = "orderbook"
	TradeTypeLiquidityPool TradeType = "liquidity_pool"
)

// Valid reports whether t is a trade type Horizon understands.
func (t TradeType) Valid() bool {
	return t == TradeTypeAll || t == TradeTypeOrderbook || t == TradeTypeLiquidityPool
}

// TradesFilter is the filter group of the trades collection. At most one
// member may be set.
type TradesFilter interface {
	tradesFilter()
}

// AssetPairFilter selects trades between two assets.
type AssetPairFilter struct{}

// OfferFilter selects trades that filled one offer.
type OfferFilter struct{}

func (AssetPairFilter) tradesFilter()     {}
func (OfferFilter) tradesFilter()         {}
func (LiquidityPoolFilter) tradesFilter() {}

// TradesBuilder is an unfiltered trades query. It can be built as is or
// narrowed by one filter.
type TradesBuilder struct {
	path   string
	params Params
}

// TradesBuilderWith is a trades query whose filter F has been chosen.
type TradesBuilderWith[F TradesFilter] struct {
	path   string
	params Params
}

// Trades starts a query of the trades collection.
func Trades() TradesBuilder {
	return TradesBuilder{path: tradesPath}
}

// AssetPair selects trades between base and counter.
func (b TradesBuilder) AssetPair(base, counter Asset) (TradesBuilderWith[AssetPairFilter], error) {
	if base == counter {
		return TradesBuilderWith[AssetPairFilter]{}, invalid("counter_asset", counter.String(), ErrSameAssets)
	}

	params := base.setTyped(b.params, "base")

	return TradesBuilderWith[AssetPairFilter]{path: b.path, params: counter.setTyped(params, "counter")}, nil
}

// Offer selects trades that filled offerID.
func (b TradesBuilder) Offer(offerID string) (TradesBuilderWith[OfferFilter], error) {
	err := validateNumericID("offer_id", offerID)
	if err != nil {
		return TradesBuilderWith[OfferFilter]{}, err
	}

	return TradesBuilderWith[OfferFilter]{path: b.path, params: b.params.Set("offer_id", offerID)}, nil
}

// LiquidityPool selects trades against poolID.
func (b TradesBuilder) LiquidityPool(poolID string) (TradesBuilderWith[LiquidityPoolFilter], error) {
	err := validateLiquidityPoolID("liquidity_pool_id", poolID)
	if err != nil {
		return TradesBuilderWith[LiquidityPoolFilter]{}, err
	}

	return TradesBuilderWith[LiquidityPoolFilter]{path: b.path, params: b.params.Set("liquidity_pool_id", poolID)}, nil
}

// TradeType restricts trades by how they were matched.
func (b TradesBuilder) TradeType(tradeType TradeType) (TradesBuilder, error) {
	params, err := setTradeType(b.params, tradeType)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Cursor sets the paging token to start after.
func (b TradesBuilder) Cursor(cursor string) (TradesBuilder, error) {
	params, err := setCursor(b.params, cursor)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Limit sets the page size.
func (b TradesBuilder) Limit(limit int) (TradesBuilder, error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Order sets the walk direction.
func (b TradesBuilder) Order(order Order) (TradesBuilder, error) {
	params, err := setOrder(b.params, order)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Build returns the finished request.
func (b TradesBuilder) Build() Request[Page[Trade]] {
	return newRequest[Page[Trade]](b.path, b.params)
}

// TradeType restricts trades by how they were matched.
func (b TradesBuilderWith[F]) TradeType(tradeType TradeType) (TradesBuilderWith[F], error) {
	params, err := setTradeType(b.params, tradeType)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Cursor sets the paging token to start after.
func (b TradesBuilderWith[F]) Cursor(cursor string) (TradesBuilderWith[F], error) {
	params, err := setCursor(b.params, cursor)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Limit sets the page size.
func (b TradesBuilderWith[F]) Limit(limit int) (TradesBuilderWith[F], error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Order sets the walk direction.
func (b TradesBuilderWith[F]) Order(order Order) (TradesBuilderWith[F], error) {
	params, err := setOrder(b.params, order)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Build returns the finished request.
func (b TradesBuilderWith[F]) Build() Request[Page[Trade]] {
	return newRequest[Page[Trade]](b.path, b.params)
}

func setTradeType(params Params, tradeType TradeType) (Params, error) {
	if !tradeType.Valid() {
		return params, invalid("trade_type", string(tradeType), ErrInvalidTradeType)
	}

	return params.Set("trade_type", string(tradeType)), nil
}
