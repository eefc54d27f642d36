package horizon

const offersPath = "/offers"

// OffersBuilder builds a query of the offers collection. Seller, sponsor,
// selling and buying may be combined.
type OffersBuilder struct {
	params Params
}

// Offers starts a query of the offers collection.
func Offers() OffersBuilder {
	return OffersBuilder{}
}

// OfferByID returns the request for one offer.
func OfferByID(offerID string) (Request[Offer], error) {
	return byID[Offer](offersPath, "offer_id", offerID, validateNumericID)
}

// Seller restricts the result to offers made by accountID.
func (b OffersBuilder) Seller(accountID string) (OffersBuilder, error) {
	err := validateAccountID("seller", accountID)
	if err != nil {
		return b, err
	}

	return OffersBuilder{params: b.params.Set("seller", accountID)}, nil
}

// Sponsor restricts the result to offers sponsored by accountID.
func (b OffersBuilder) Sponsor(accountID string) (OffersBuilder, error) {
	err := validateAccountID("sponsor", accountID)
	if err != nil {
		return b, err
	}

	return OffersBuilder{params: b.params.Set("sponsor", accountID)}, nil
}

// Selling restricts the result to offers selling asset.
func (b OffersBuilder) Selling(asset Asset) OffersBuilder {
	return OffersBuilder{params: b.params.Set("selling", asset.String())}
}

// Buying restricts the result to offers buying asset.
func (b OffersBuilder) Buying(asset Asset) OffersBuilder {
	return OffersBuilder{params: b.params.Set("buying", asset.String())}
}

// Cursor sets the paging token to start after.
func (b OffersBuilder) Cursor(cursor string) (OffersBuilder, error) {
	params, err := setCursor(b.params, cursor)
	if err != nil {
		return b, err
	}

	return OffersBuilder{params: params}, nil
}

// Limit sets the page size.
func (b OffersBuilder) Limit(limit int) (OffersBuilder, error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	return OffersBuilder{params: params}, nil
}

// Order sets the walk direction.
func (b OffersBuilder) Order(order Order) (OffersBuilder, error) {
	params, err := setOrder(b.params, order)
	if err != nil {
		return b, err
	}

	return OffersBuilder{params: params}, nil
}

// Build returns the finished request.
func (b OffersBuilder) Build() Request[Page[Offer]] {
	return newRequest[Page[Offer]](offersPath, b.params)
}

// TradesForOffer starts a query of the trades that filled an offer.
func TradesForOffer(offerID string) (ListBuilder[Trade], error) {
	path, err := scopedPath(offersPath, "offer_id", offerID, "trades", validateNumericID)
	if err != nil {
		return ListBuilder[Trade]{}, err
	}

	return newListBuilder[Trade](path), nil
}
