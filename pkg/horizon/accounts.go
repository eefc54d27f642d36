package horizon

const accountsPath = "/accounts"

// AccountsFilter is the filter group of the accounts collection. Horizon
// requires exactly one member; the set is closed.
type AccountsFilter interface {
	accountsFilter()
}

// SponsorFilter selects accounts sponsored by an account.
type SponsorFilter struct{}

// SignerFilter selects accounts that have an account as signer.
type SignerFilter struct{}

// AssetFilter selects accounts holding a trustline to an asset.
type AssetFilter struct{}

// LiquidityPoolFilter selects records tied to one liquidity pool. It is a
// member of both the accounts and trades filter groups.
type LiquidityPoolFilter struct{}

func (SponsorFilter) accountsFilter()       {}
func (SignerFilter) accountsFilter()        {}
func (AssetFilter) accountsFilter()         {}
func (LiquidityPoolFilter) accountsFilter() {}

// AccountsBuilder is the initial state of an accounts query. It has no Build
// method: one filter must be chosen first.
type AccountsBuilder struct {
	path   string
	params Params
}

// AccountsBuilderWith is an accounts query whose filter F has been chosen.
// No filter setters remain.
type AccountsBuilderWith[F AccountsFilter] struct {
	path   string
	params Params
}

// Accounts starts a query of the accounts collection.
func Accounts() AccountsBuilder {
	return AccountsBuilder{path: accountsPath}
}

// AccountByID returns the request for one account.
func AccountByID(accountID string) (Request[Account], error) {
	return byID[Account](accountsPath, "account_id", accountID, validateAccountID)
}

// Cursor sets the paging token to start after.
func (b AccountsBuilder) Cursor(cursor string) (AccountsBuilder, error) {
	params, err := setCursor(b.params, cursor)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Limit sets the page size.
func (b AccountsBuilder) Limit(limit int) (AccountsBuilder, error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Order sets the walk direction.
func (b AccountsBuilder) Order(order Order) (AccountsBuilder, error) {
	params, err := setOrder(b.params, order)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Sponsor selects accounts sponsored by accountID.
func (b AccountsBuilder) Sponsor(accountID string) (AccountsBuilderWith[SponsorFilter], error) {
	err := validateAccountID("sponsor", accountID)
	if err != nil {
		return AccountsBuilderWith[SponsorFilter]{}, err
	}

	return AccountsBuilderWith[SponsorFilter]{path: b.path, params: b.params.Set("sponsor", accountID)}, nil
}

// Signer selects accounts that have accountID as a signer.
func (b AccountsBuilder) Signer(accountID string) (AccountsBuilderWith[SignerFilter], error) {
	err := validateAccountID("signer", accountID)
	if err != nil {
		return AccountsBuilderWith[SignerFilter]{}, err
	}

	return AccountsBuilderWith[SignerFilter]{path: b.path, params: b.params.Set("signer", accountID)}, nil
}

// Asset selects accounts with a trustline to asset. Every account holds
// lumens, so the native asset is rejected.
func (b AccountsBuilder) Asset(asset Asset) (AccountsBuilderWith[AssetFilter], error) {
	if asset.IsNative() {
		return AccountsBuilderWith[AssetFilter]{}, invalid("asset", asset.String(), ErrNativeAssetNotAllowed)
	}

	return AccountsBuilderWith[AssetFilter]{path: b.path, params: b.params.Set("asset", asset.String())}, nil
}

// LiquidityPool selects accounts participating in the pool.
func (b AccountsBuilder) LiquidityPool(poolID string) (AccountsBuilderWith[LiquidityPoolFilter], error) {
	err := validateLiquidityPoolID("liquidity_pool", poolID)
	if err != nil {
		return AccountsBuilderWith[LiquidityPoolFilter]{}, err
	}

	return AccountsBuilderWith[LiquidityPoolFilter]{path: b.path, params: b.params.Set("liquidity_pool", poolID)}, nil
}

// Cursor sets the paging token to start after.
func (b AccountsBuilderWith[F]) Cursor(cursor string) (AccountsBuilderWith[F], error) {
	params, err := setCursor(b.params, cursor)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Limit sets the page size.
func (b AccountsBuilderWith[F]) Limit(limit int) (AccountsBuilderWith[F], error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Order sets the walk direction.
func (b AccountsBuilderWith[F]) Order(order Order) (AccountsBuilderWith[F], error) {
	params, err := setOrder(b.params, order)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Build returns the finished request.
func (b AccountsBuilderWith[F]) Build() Request[Page[Account]] {
	return newRequest[Page[Account]](b.path, b.params)
}

// OperationsForAccount starts a query of the operations of an account.
func OperationsForAccount(accountID string) (OperationHistoryBuilder[Operation], error) {
	path, err := scopedPath(accountsPath, "account_id", accountID, "operations", validateAccountID)
	if err != nil {
		return OperationHistoryBuilder[Operation]{}, err
	}

	return newOperationHistoryBuilder[Operation](path), nil
}

// PaymentsForAccount starts a query of the payments of an account.
func PaymentsForAccount(accountID string) (OperationHistoryBuilder[Payment], error) {
	path, err := scopedPath(accountsPath, "account_id", accountID, "payments", validateAccountID)
	if err != nil {
		return OperationHistoryBuilder[Payment]{}, err
	}

	return newOperationHistoryBuilder[Payment](path), nil
}

// EffectsForAccount starts a query of the effects of an account.
func EffectsForAccount(accountID string) (ListBuilder[Effect], error) {
	path, err := scopedPath(accountsPath, "account_id", accountID, "effects", validateAccountID)
	if err != nil {
		return ListBuilder[Effect]{}, err
	}

	return newListBuilder[Effect](path), nil
}

// TransactionsForAccount starts a query of the transactions of an account.
func TransactionsForAccount(accountID string) (HistoryBuilder[Transaction], error) {
	path, err := scopedPath(accountsPath, "account_id", accountID, "transactions", validateAccountID)
	if err != nil {
		return HistoryBuilder[Transaction]{}, err
	}

	return newHistoryBuilder[Transaction](path), nil
}

// TradesForAccount starts a query of the trades of an account.
func TradesForAccount(accountID string) (ListBuilder[Trade], error) {
	path, err := scopedPath(accountsPath, "account_id", accountID, "trades", validateAccountID)
	if err != nil {
		return ListBuilder[Trade]{}, err
	}

	return newListBuilder[Trade](path), nil
}

// OffersForAccount starts a query of the open offers of an account.
func OffersForAccount(accountID string) (ListBuilder[Offer], error) {
	path, err := scopedPath(accountsPath, "account_id", accountID, "offers", validateAccountID)
	if err != nil {
		return ListBuilder[Offer]{}, err
	}

	return newListBuilder[Offer](path), nil
}
