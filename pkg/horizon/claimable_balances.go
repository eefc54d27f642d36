package horizon

const claimableBalancesPath = "/claimable_balances"

// ClaimableBalancesBuilder builds a query of the claimable balances
// collection. Sponsor, asset and claimant may be combined.
type ClaimableBalancesBuilder struct {
	params Params
}

// ClaimableBalances starts a query of the claimable balances collection.
func ClaimableBalances() ClaimableBalancesBuilder {
	return ClaimableBalancesBuilder{}
}

// ClaimableBalanceByID returns the request for one claimable balance.
func ClaimableBalanceByID(balanceID string) (Request[ClaimableBalance], error) {
	return byID[ClaimableBalance](claimableBalancesPath, "claimable_balance_id", balanceID, validateClaimableBalanceID)
}

// Sponsor restricts the result to balances sponsored by accountID.
func (b ClaimableBalancesBuilder) Sponsor(accountID string) (ClaimableBalancesBuilder, error) {
	err := validateAccountID("sponsor", accountID)
	if err != nil {
		return b, err
	}

	return ClaimableBalancesBuilder{params: b.params.Set("sponsor", accountID)}, nil
}

// Asset restricts the result to balances of asset.
func (b ClaimableBalancesBuilder) Asset(asset Asset) ClaimableBalancesBuilder {
	return ClaimableBalancesBuilder{params: b.params.Set("asset", asset.String())}
}

// Claimant restricts the result to balances accountID may claim.
func (b ClaimableBalancesBuilder) Claimant(accountID string) (ClaimableBalancesBuilder, error) {
	err := validateAccountID("claimant", accountID)
	if err != nil {
		return b, err
	}

	return ClaimableBalancesBuilder{params: b.params.Set("claimant", accountID)}, nil
}

// Cursor sets the paging token to start after.
func (b ClaimableBalancesBuilder) Cursor(cursor string) (ClaimableBalancesBuilder, error) {
	params, err := setCursor(b.params, cursor)
	if err != nil {
		return b, err
	}

	return ClaimableBalancesBuilder{params: params}, nil
}

// Limit sets the page size.
func (b ClaimableBalancesBuilder) Limit(limit int) (ClaimableBalancesBuilder, error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	return ClaimableBalancesBuilder{params: params}, nil
}

// Order sets the walk direction.
func (b ClaimableBalancesBuilder) Order(order Order) (ClaimableBalancesBuilder, error) {
	params, err := setOrder(b.params, order)
	if err != nil {
		return b, err
	}

	return ClaimableBalancesBuilder{params: params}, nil
}

// Build returns the finished request.
func (b ClaimableBalancesBuilder) Build() Request[Page[ClaimableBalance]] {
	return newRequest[Page[ClaimableBalance]](claimableBalancesPath, b.params)
}
