package horizon

const liquidityPoolsPath = "/liquidity_pools"

// LiquidityPoolsBuilder builds a query of the liquidity pools collection.
type LiquidityPoolsBuilder struct {
	params Params
}

// LiquidityPools starts a query of the liquidity pools collection.
func LiquidityPools() LiquidityPoolsBuilder {
	return LiquidityPoolsBuilder{}
}

// LiquidityPoolByID returns the request for one pool.
func LiquidityPoolByID(poolID string) (Request[LiquidityPool], error) {
	return byID[LiquidityPool](liquidityPoolsPath, "liquidity_pool_id", poolID, validateLiquidityPoolID)
}

// Reserves restricts the result to pools holding every one of assets. The
// list is sent comma separated; a later call replaces it.
func (b LiquidityPoolsBuilder) Reserves(assets ...Asset) (LiquidityPoolsBuilder, error) {
	if len(assets) == 0 {
		return b, invalid("reserves", "", ErrEmptyAssetList)
	}

	return LiquidityPoolsBuilder{params: b.params.Set("reserves", joinAssets(assets))}, nil
}

// Account restricts the result to pools accountID participates in.
func (b LiquidityPoolsBuilder) Account(accountID string) (LiquidityPoolsBuilder, error) {
	err := validateAccountID("account", accountID)
	if err != nil {
		return b, err
	}

	return LiquidityPoolsBuilder{params: b.params.Set("account", accountID)}, nil
}

// Cursor sets the paging token to start after.
func (b LiquidityPoolsBuilder) Cursor(cursor string) (LiquidityPoolsBuilder, error) {
	params, err := setCursor(b.params, cursor)
	if err != nil {
		return b, err
	}

	return LiquidityPoolsBuilder{params: params}, nil
}

// Limit sets the page size.
func (b LiquidityPoolsBuilder) Limit(limit int) (LiquidityPoolsBuilder, error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	return LiquidityPoolsBuilder{params: params}, nil
}

// Order sets the walk direction.
func (b LiquidityPoolsBuilder) Order(order Order) (LiquidityPoolsBuilder, error) {
	params, err := setOrder(b.params, order)
	if err != nil {
		return b, err
	}

	return LiquidityPoolsBuilder{params: params}, nil
}

// Build returns the finished request.
func (b LiquidityPoolsBuilder) Build() Request[Page[LiquidityPool]] {
	return newRequest[Page[LiquidityPool]](liquidityPoolsPath, b.params)
}

// OperationsForLiquidityPool starts a query of the operations touching a pool.
func OperationsForLiquidityPool(poolID string) (OperationHistoryBuilder[Operation], error) {
	path, err := scopedPath(liquidityPoolsPath, "liquidity_pool_id", poolID, "operations", validateLiquidityPoolID)
	if err != nil {
		return OperationHistoryBuilder[Operation]{}, err
	}

	return newOperationHistoryBuilder[Operation](path), nil
}

// EffectsForLiquidityPool starts a query of the effects on a pool.
func EffectsForLiquidityPool(poolID string) (ListBuilder[Effect], error) {
	path, err := scopedPath(liquidityPoolsPath, "liquidity_pool_id", poolID, "effects", validateLiquidityPoolID)
	if err != nil {
		return ListBuilder[Effect]{}, err
	}

	return newListBuilder[Effect](path), nil
}

// TransactionsForLiquidityPool starts a query of the transactions touching a
// pool.
func TransactionsForLiquidityPool(poolID string) (HistoryBuilder[Transaction], error) {
	path, err := scopedPath(liquidityPoolsPath, "liquidity_pool_id", poolID, "transactions", validateLiquidityPoolID)
	if err != nil {
		return HistoryBuilder[Transaction]{}, err
	}

	return newHistoryBuilder[Transaction](path), nil
}

// TradesForLiquidityPool starts a query of the trades against a pool.
func TradesForLiquidityPool(poolID string) (ListBuilder[Trade], error) {
	path, err := scopedPath(liquidityPoolsPath, "liquidity_pool_id", poolID, "trades", validateLiquidityPoolID)
	if err != nil {
		return ListBuilder[Trade]{}, err
	}

	return newListBuilder[Trade](path), nil
}
