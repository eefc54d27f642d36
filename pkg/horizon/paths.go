package horizon

const (
	strictReceivePathsPath = "/paths/strict-receive"
	strictSendPathsPath    = "/paths/strict-send"
	findPathsPath          = "/paths"
)

// StrictReceiveFilter is the filter group naming where strict-receive paths
// start: a source account or an explicit list of source assets. Exactly one is
// required.
type StrictReceiveFilter interface {
	strictReceiveFilter()
}

// StrictSendFilter is the filter group naming where strict-send paths end: a
// destination account or an explicit list of destination assets. Exactly one
// is required.
type StrictSendFilter interface {
	strictSendFilter()
}

// SourceAccountFilter searches paths from the assets an account holds.
type SourceAccountFilter struct{}

// SourceAssetsFilter searches paths from a list of assets.
type SourceAssetsFilter struct{}

// DestinationAccountFilter searches paths into the assets an account holds.
type DestinationAccountFilter struct{}

// DestinationAssetsFilter searches paths into a list of assets.
type DestinationAssetsFilter struct{}

func (SourceAccountFilter) strictReceiveFilter()   {}
func (SourceAssetsFilter) strictReceiveFilter()    {}
func (DestinationAccountFilter) strictSendFilter() {}
func (DestinationAssetsFilter) strictSendFilter()  {}

// StrictReceivePathsBuilder has the destination side of a strict-receive path
// search and still needs its source.
type StrictReceivePathsBuilder struct {
	path   string
	params Params
}

// StrictReceivePathsWith is a strict-receive search whose source filter F has
// been chosen.
type StrictReceivePathsWith[F StrictReceiveFilter] struct {
	path   string
	params Params
}

// StrictReceivePaths starts a search for paths that deliver exactly amount of
// asset.
func StrictReceivePaths(asset Asset, amount string) (StrictReceivePathsBuilder, error) {
	err := validateAmount("destination_amount", amount)
	if err != nil {
		return StrictReceivePathsBuilder{}, err
	}

	params := asset.setTyped(nil, "destination")

	return StrictReceivePathsBuilder{path: strictReceivePathsPath, params: params.Set("destination_amount", amount)}, nil
}

// SourceAccount searches from the assets accountID holds.
func (b StrictReceivePathsBuilder) SourceAccount(accountID string) (StrictReceivePathsWith[SourceAccountFilter], error) {
	err := validateAccountID("source_account", accountID)
	if err != nil {
		return StrictReceivePathsWith[SourceAccountFilter]{}, err
	}

	return StrictReceivePathsWith[SourceAccountFilter]{path: b.path, params: b.params.Set("source_account", accountID)}, nil
}

// SourceAssets searches from assets.
func (b StrictReceivePathsBuilder) SourceAssets(assets ...Asset) (StrictReceivePathsWith[SourceAssetsFilter], error) {
	if len(assets) == 0 {
		return StrictReceivePathsWith[SourceAssetsFilter]{}, invalid("source_assets", "", ErrEmptyAssetList)
	}

	return StrictReceivePathsWith[SourceAssetsFilter]{path: b.path, params: b.params.Set("source_assets", joinAssets(assets))}, nil
}

// DestinationAccount names the receiving account, which lets Horizon skip
// assets it cannot hold.
func (b StrictReceivePathsWith[F]) DestinationAccount(accountID string) (StrictReceivePathsWith[F], error) {
	err := validateAccountID("destination_account", accountID)
	if err != nil {
		return b, err
	}

	b.params = b.params.Set("destination_account", accountID)

	return b, nil
}

// Build returns the finished request.
func (b StrictReceivePathsWith[F]) Build() Request[Page[Path]] {
	return newRequest[Page[Path]](b.path, b.params)
}

// StrictSendPathsBuilder has the source side of a strict-send path search and
// still needs its destination.
type StrictSendPathsBuilder struct {
	path   string
	params Params
}

// StrictSendPathsWith is a strict-send search whose destination filter F has
// been chosen.
type StrictSendPathsWith[F StrictSendFilter] struct {
	path   string
	params Params
}

// StrictSendPaths starts a search for paths that spend exactly amount of
// asset.
func StrictSendPaths(asset Asset, amount string) (StrictSendPathsBuilder, error) {
	err := validateAmount("source_amount", amount)
	if err != nil {
		return StrictSendPathsBuilder{}, err
	}

	params := asset.setTyped(nil, "source")

	return StrictSendPathsBuilder{path: strictSendPathsPath, params: params.Set("source_amount", amount)}, nil
}

// DestinationAccount searches into the assets accountID holds.
func (b StrictSendPathsBuilder) DestinationAccount(accountID string) (StrictSendPathsWith[DestinationAccountFilter], error) {
	err := validateAccountID("destination_account", accountID)
	if err != nil {
		return StrictSendPathsWith[DestinationAccountFilter]{}, err
	}

	return StrictSendPathsWith[DestinationAccountFilter]{path: b.path, params: b.params.Set("destination_account", accountID)}, nil
}

// DestinationAssets searches into assets.
func (b StrictSendPathsBuilder) DestinationAssets(assets ...Asset) (StrictSendPathsWith[DestinationAssetsFilter], error) {
	if len(assets) == 0 {
		return StrictSendPathsWith[DestinationAssetsFilter]{}, invalid("destination_assets", "", ErrEmptyAssetList)
	}

	return StrictSendPathsWith[DestinationAssetsFilter]{path: b.path, params: b.params.Set("destination_assets", joinAssets(assets))}, nil
}

// Build returns the finished request.
func (b StrictSendPathsWith[F]) Build() Request[Page[Path]] {
	return newRequest[Page[Path]](b.path, b.params)
}

// FindPathsBuilder builds a search on the older /paths endpoint, which always
// starts from the assets of a source account.
type FindPathsBuilder struct {
	path   string
	params Params
}

// FindPaths starts a search for paths from sourceAccount that deliver amount
// of asset.
func FindPaths(sourceAccount string, asset Asset, amount string) (FindPathsBuilder, error) {
	err := validateAccountID("source_account", sourceAccount)
	if err != nil {
		return FindPathsBuilder{}, err
	}

	err = validateAmount("destination_amount", amount)
	if err != nil {
		return FindPathsBuilder{}, err
	}

	params := asset.setTyped(nil, "destination")
	params = params.Set("destination_amount", amount)

	return FindPathsBuilder{path: findPathsPath, params: params.Set("source_account", sourceAccount)}, nil
}

// DestinationAccount names the receiving account.
func (b FindPathsBuilder) DestinationAccount(accountID string) (FindPathsBuilder, error) {
	err := validateAccountID("destination_account", accountID)
	if err != nil {
		return b, err
	}

	b.params = b.params.Set("destination_account", accountID)

	return b, nil
}

// Build returns the finished request.
func (b FindPathsBuilder) Build() Request[Page[Path]] {
	return newRequest[Page[Path]](b.path, b.params)
}
