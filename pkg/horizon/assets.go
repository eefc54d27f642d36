package horizon

const assetsPath = "/assets"

// AssetsBuilder builds a query of the asset statistics collection. Code and
// issuer may be combined.
type AssetsBuilder struct {
	params Params
}

// Assets starts a query of the assets collection.
func Assets() AssetsBuilder {
	return AssetsBuilder{}
}

// AssetCode restricts the result to assets with this code.
func (b AssetsBuilder) AssetCode(code string) (AssetsBuilder, error) {
	if !validAssetCode(code) {
		return b, invalid("asset_code", code, ErrInvalidAssetCode)
	}

	return AssetsBuilder{params: b.params.Set("asset_code", code)}, nil
}

// AssetIssuer restricts the result to assets issued by accountID.
func (b AssetsBuilder) AssetIssuer(accountID string) (AssetsBuilder, error) {
	err := validateAccountID("asset_issuer", accountID)
	if err != nil {
		return b, err
	}

	return AssetsBuilder{params: b.params.Set("asset_issuer", accountID)}, nil
}

// Cursor sets the paging token to start after.
func (b AssetsBuilder) Cursor(cursor string) (AssetsBuilder, error) {
	params, err := setCursor(b.params, cursor)
	if err != nil {
		return b, err
	}

	return AssetsBuilder{params: params}, nil
}

// Limit sets the page size.
func (b AssetsBuilder) Limit(limit int) (AssetsBuilder, error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	return AssetsBuilder{params: params}, nil
}

// Order sets the walk direction.
func (b AssetsBuilder) Order(order Order) (AssetsBuilder, error) {
	params, err := setOrder(b.params, order)
	if err != nil {
		return b, err
	}

	return AssetsBuilder{params: params}, nil
}

// Build returns the finished request.
func (b AssetsBuilder) Build() Request[Page[AssetStat]] {
	return newRequest[Page[AssetStat]](assetsPath, b.params)
}
