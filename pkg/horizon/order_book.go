package horizon

const orderBookPath = "/order_book"

// The order book needs both sides of the pair. They can be given in either
// order; Build exists only once both are set. A state that did not come from
// OrderBook builds the zero Request.

// OrderBookBuilder is the initial state of an order book query.
type OrderBookBuilder struct {
	path   string
	params Params
}

// OrderBookWithSelling has the selling asset and still needs the buying one.
type OrderBookWithSelling struct {
	path    string
	selling Asset
	params  Params
}

// OrderBookWithBuying has the buying asset and still needs the selling one.
type OrderBookWithBuying struct {
	path   string
	buying Asset
	params Params
}

// OrderBookReady has both assets set.
type OrderBookReady struct {
	path   string
	params Params
}

// OrderBook starts an order book query.
func OrderBook() OrderBookBuilder {
	return OrderBookBuilder{path: orderBookPath}
}

// Selling sets the asset offers sell.
func (b OrderBookBuilder) Selling(asset Asset) OrderBookWithSelling {
	return OrderBookWithSelling{path: b.path, selling: asset, params: asset.setTyped(b.params, "selling")}
}

// Buying sets the asset offers buy.
func (b OrderBookBuilder) Buying(asset Asset) OrderBookWithBuying {
	return OrderBookWithBuying{path: b.path, buying: asset, params: asset.setTyped(b.params, "buying")}
}

// Limit sets the number of price levels per side.
func (b OrderBookBuilder) Limit(limit int) (OrderBookBuilder, error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Buying sets the asset offers buy. It must differ from the selling asset.
func (b OrderBookWithSelling) Buying(asset Asset) (OrderBookReady, error) {
	if asset == b.selling {
		return OrderBookReady{}, invalid("buying", asset.String(), ErrSameAssets)
	}

	return OrderBookReady{path: b.path, params: asset.setTyped(b.params, "buying")}, nil
}

// Limit sets the number of price levels per side.
func (b OrderBookWithSelling) Limit(limit int) (OrderBookWithSelling, error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Selling sets the asset offers sell. It must differ from the buying asset.
func (b OrderBookWithBuying) Selling(asset Asset) (OrderBookReady, error) {
	if asset == b.buying {
		return OrderBookReady{}, invalid("selling", asset.String(), ErrSameAssets)
	}

	return OrderBookReady{path: b.path, params: asset.setTyped(b.params, "selling")}, nil
}

// Limit sets the number of price levels per side.
func (b OrderBookWithBuying) Limit(limit int) (OrderBookWithBuying, error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Limit sets the number of price levels per side.
func (b OrderBookReady) Limit(limit int) (OrderBookReady, error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Build returns the finished request.
func (b OrderBookReady) Build() Request[OrderBookSummary] {
	return newRequest[OrderBookSummary](b.path, b.params)
}
