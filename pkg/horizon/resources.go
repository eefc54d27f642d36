package horizon

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stellar/go-stellar-sdk/xdr"
	"go.uber.org/multierr"
)

// Account represents a Horizon account record.
type Account struct {
	Links                Links             `json:"_links"                          yaml:"_links"`
	ID                   string            `json:"id"                              yaml:"id"`
	AccountID            string            `json:"account_id"                      yaml:"account_id"`
	Sequence             string            `json:"sequence"                        yaml:"sequence"`
	SequenceLedger       uint32            `json:"sequence_ledger,omitempty"       yaml:"sequence_ledger,omitempty"`
	SequenceTime         string            `json:"sequence_time,omitempty"         yaml:"sequence_time,omitempty"`
	SubentryCount        int32             `json:"subentry_count"                  yaml:"subentry_count"`
	InflationDestination string            `json:"inflation_destination,omitempty" yaml:"inflation_destination,omitempty"`
	HomeDomain           string            `json:"home_domain,omitempty"           yaml:"home_domain,omitempty"`
	LastModifiedLedger   uint32            `json:"last_modified_ledger"            yaml:"last_modified_ledger"`
	LastModifiedTime     *time.Time        `json:"last_modified_time,omitempty"    yaml:"last_modified_time,omitempty"`
	Thresholds           AccountThresholds `json:"thresholds"                      yaml:"thresholds"`
	Flags                AccountFlags      `json:"flags"                           yaml:"flags"`
	Balances             []Balance         `json:"balances"                        yaml:"balances"`
	Signers              []Signer          `json:"signers"                         yaml:"signers"`
	Data                 map[string]string `json:"data,omitempty"                  yaml:"data,omitempty"`
	NumSponsoring        uint32            `json:"num_sponsoring"                  yaml:"num_sponsoring"`
	NumSponsored         uint32            `json:"num_sponsored"                   yaml:"num_sponsored"`
	Sponsor              string            `json:"sponsor,omitempty"               yaml:"sponsor,omitempty"`
	PagingToken          string            `json:"paging_token"                    yaml:"paging_token"`
}

// RequiredFields implements RequiredFielder.
func (Account) RequiredFields() []string {
	return []string{"id", "account_id", "sequence", "balances"}
}

// AccountThresholds are the signing thresholds of an account.
type AccountThresholds struct {
	LowThreshold  uint8 `json:"low_threshold"  yaml:"low_threshold"`
	MedThreshold  uint8 `json:"med_threshold"  yaml:"med_threshold"`
	HighThreshold uint8 `json:"high_threshold" yaml:"high_threshold"`
}

// AccountFlags are the authorization flags of an account or asset issuer.
type AccountFlags struct {
	AuthRequired        bool `json:"auth_required"         yaml:"auth_required"`
	AuthRevocable       bool `json:"auth_revocable"        yaml:"auth_revocable"`
	AuthImmutable       bool `json:"auth_immutable"        yaml:"auth_immutable"`
	AuthClawbackEnabled bool `json:"auth_clawback_enabled" yaml:"auth_clawback_enabled"`
}

// Balance is one trustline or the native balance of an account.
type Balance struct {
	AssetRef                          `yaml:",inline"`
	Balance                           string `json:"balance"                                          yaml:"balance"`
	LiquidityPoolID                   string `json:"liquidity_pool_id,omitempty"                      yaml:"liquidity_pool_id,omitempty"`
	Limit                             string `json:"limit,omitempty"                                  yaml:"limit,omitempty"`
	BuyingLiabilities                 string `json:"buying_liabilities,omitempty"                     yaml:"buying_liabilities,omitempty"`
	SellingLiabilities                string `json:"selling_liabilities,omitempty"                    yaml:"selling_liabilities,omitempty"`
	Sponsor                           string `json:"sponsor,omitempty"                                yaml:"sponsor,omitempty"`
	LastModifiedLedger                uint32 `json:"last_modified_ledger,omitempty"                   yaml:"last_modified_ledger,omitempty"`
	IsAuthorized                      *bool  `json:"is_authorized,omitempty"                          yaml:"is_authorized,omitempty"`
	IsAuthorizedToMaintainLiabilities *bool  `json:"is_authorized_to_maintain_liabilities,omitempty" yaml:"is_authorized_to_maintain_liabilities,omitempty"`
	IsClawbackEnabled                 *bool  `json:"is_clawback_enabled,omitempty"                    yaml:"is_clawback_enabled,omitempty"`
}

// Signer is one signer of an account.
type Signer struct {
	Weight  int32  `json:"weight"            yaml:"weight"`
	Key     string `json:"key"               yaml:"key"`
	Type    string `json:"type"              yaml:"type"`
	Sponsor string `json:"sponsor,omitempty" yaml:"sponsor,omitempty"`
}

// AssetStat represents a record of the /assets collection.
type AssetStat struct {
	Links                   Links             `json:"_links"                    yaml:"_links"`
	AssetType               string            `json:"asset_type"                yaml:"asset_type"`
	AssetCode               string            `json:"asset_code"                yaml:"asset_code"`
	AssetIssuer             string            `json:"asset_issuer"              yaml:"asset_issuer"`
	PagingToken             string            `json:"paging_token"              yaml:"paging_token"`
	Accounts                AssetStatAccounts `json:"accounts"                  yaml:"accounts"`
	NumClaimableBalances    int32             `json:"num_claimable_balances"    yaml:"num_claimable_balances"`
	NumLiquidityPools       int32             `json:"num_liquidity_pools"       yaml:"num_liquidity_pools"`
	NumContracts            int32             `json:"num_contracts"             yaml:"num_contracts"`
	Balances                AssetStatBalances `json:"balances"                  yaml:"balances"`
	ClaimableBalancesAmount string            `json:"claimable_balances_amount" yaml:"claimable_balances_amount"`
	LiquidityPoolsAmount    string            `json:"liquidity_pools_amount"    yaml:"liquidity_pools_amount"`
	ContractsAmount         string            `json:"contracts_amount"          yaml:"contracts_amount"`
	Flags                   AccountFlags      `json:"flags"                     yaml:"flags"`
}

// RequiredFields implements RequiredFielder.
func (AssetStat) RequiredFields() []string {
	return []string{"asset_type", "asset_code", "asset_issuer", "paging_token"}
}

// AssetStatAccounts counts holders by authorization state.
type AssetStatAccounts struct {
	Authorized                      int32 `json:"authorized"                         yaml:"authorized"`
	AuthorizedToMaintainLiabilities int32 `json:"authorized_to_maintain_liabilities" yaml:"authorized_to_maintain_liabilities"`
	Unauthorized                    int32 `json:"unauthorized"                       yaml:"unauthorized"`
}

// AssetStatBalances sums holdings by authorization state.
type AssetStatBalances struct {
	Authorized                      string `json:"authorized"                         yaml:"authorized"`
	AuthorizedToMaintainLiabilities string `json:"authorized_to_maintain_liabilities" yaml:"authorized_to_maintain_liabilities"`
	Unauthorized                    string `json:"unauthorized"                       yaml:"unauthorized"`
}

// ClaimableBalance represents a claimable balance record.
type ClaimableBalance struct {
	Links              Links                 `json:"_links"               yaml:"_links"`
	ID                 string                `json:"id"                   yaml:"id"`
	Asset              string                `json:"asset"                yaml:"asset"`
	Amount             string                `json:"amount"               yaml:"amount"`
	Sponsor            string                `json:"sponsor,omitempty"    yaml:"sponsor,omitempty"`
	LastModifiedLedger uint32                `json:"last_modified_ledger" yaml:"last_modified_ledger"`
	LastModifiedTime   *time.Time            `json:"last_modified_time"   yaml:"last_modified_time"`
	Claimants          []Claimant            `json:"claimants"            yaml:"claimants"`
	Flags              ClaimableBalanceFlags `json:"flags"                yaml:"flags"`
	PagingToken        string                `json:"paging_token"         yaml:"paging_token"`
}

// RequiredFields implements RequiredFielder.
func (ClaimableBalance) RequiredFields() []string {
	return []string{"id", "asset", "amount", "claimants"}
}

// ClaimableBalanceFlags are the flags of a claimable balance.
type ClaimableBalanceFlags struct {
	ClawbackEnabled bool `json:"clawback_enabled" yaml:"clawback_enabled"`
}

// Claimant is an account allowed to claim a balance and the condition under
// which it may.
type Claimant struct {
	Destination string         `json:"destination" yaml:"destination"`
	Predicate   ClaimPredicate `json:"predicate"   yaml:"predicate"`
}

// ClaimPredicate is the recursive claim condition tree.
type ClaimPredicate struct {
	Unconditional  bool             `json:"unconditional,omitempty"    yaml:"unconditional,omitempty"`
	And            []ClaimPredicate `json:"and,omitempty"              yaml:"and,omitempty"`
	Or             []ClaimPredicate `json:"or,omitempty"               yaml:"or,omitempty"`
	Not            *ClaimPredicate  `json:"not,omitempty"              yaml:"not,omitempty"`
	AbsBefore      string           `json:"abs_before,omitempty"       yaml:"abs_before,omitempty"`
	AbsBeforeEpoch string           `json:"abs_before_epoch,omitempty" yaml:"abs_before_epoch,omitempty"`
	RelBefore      string           `json:"rel_before,omitempty"       yaml:"rel_before,omitempty"`
}

// Effect represents an effect record. Fields that depend on the effect type
// are kept in Details.
type Effect struct {
	Links       Links                      `json:"_links"            yaml:"_links"`
	ID          string                     `json:"id"                yaml:"id"`
	PagingToken string                     `json:"paging_token"      yaml:"paging_token"`
	Account     string                     `json:"account"           yaml:"account"`
	Type        string                     `json:"type"              yaml:"type"`
	TypeI       int32                      `json:"type_i"            yaml:"type_i"`
	CreatedAt   time.Time                  `json:"created_at"        yaml:"created_at"`
	Details     map[string]json.RawMessage `json:"details,omitempty" yaml:"details,omitempty"`
}

var effectBaseFields = []string{"_links", "id", "paging_token", "account", "type", "type_i", "created_at"}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Effect) UnmarshalJSON(data []byte) error {
	type plain Effect

	var decoded plain

	err := json.Unmarshal(data, &decoded)
	if err != nil {
		return fmt.Errorf("decoding effect: %w", err)
	}

	decoded.Details, err = extraFields(data, effectBaseFields)
	if err != nil {
		return err
	}

	*e = Effect(decoded)

	return nil
}

// RequiredFields implements RequiredFielder.
func (Effect) RequiredFields() []string {
	return []string{"id", "type", "created_at"}
}

// FeeStats represents the /fee_stats resource.
type FeeStats struct {
	LastLedger          string          `json:"last_ledger"           yaml:"last_ledger"`
	LastLedgerBaseFee   string          `json:"last_ledger_base_fee"  yaml:"last_ledger_base_fee"`
	LedgerCapacityUsage string          `json:"ledger_capacity_usage" yaml:"ledger_capacity_usage"`
	FeeCharged          FeeDistribution `json:"fee_charged"           yaml:"fee_charged"`
	MaxFee              FeeDistribution `json:"max_fee"               yaml:"max_fee"`
}

// RequiredFields implements RequiredFielder.
func (FeeStats) RequiredFields() []string {
	return []string{"last_ledger", "last_ledger_base_fee", "fee_charged", "max_fee"}
}

// FeeDistribution summarizes fees over the last few ledgers, in stroops.
type FeeDistribution struct {
	Max  string `json:"max"  yaml:"max"`
	Min  string `json:"min"  yaml:"min"`
	Mode string `json:"mode" yaml:"mode"`
	P10  string `json:"p10"  yaml:"p10"`
	P20  string `json:"p20"  yaml:"p20"`
	P30  string `json:"p30"  yaml:"p30"`
	P40  string `json:"p40"  yaml:"p40"`
	P50  string `json:"p50"  yaml:"p50"`
	P60  string `json:"p60"  yaml:"p60"`
	P70  string `json:"p70"  yaml:"p70"`
	P80  string `json:"p80"  yaml:"p80"`
	P90  string `json:"p90"  yaml:"p90"`
	P95  string `json:"p95"  yaml:"p95"`
	P99  string `json:"p99"  yaml:"p99"`
}

// Ledger represents a ledger record. Header holds HeaderXDR decoded.
type Ledger struct {
	Links                      Links             `json:"_links"                       yaml:"_links"`
	ID                         string            `json:"id"                           yaml:"id"`
	PagingToken                string            `json:"paging_token"                 yaml:"paging_token"`
	Hash                       string            `json:"hash"                         yaml:"hash"`
	PrevHash                   string            `json:"prev_hash,omitempty"          yaml:"prev_hash,omitempty"`
	Sequence                   int32             `json:"sequence"                     yaml:"sequence"`
	SuccessfulTransactionCount int32             `json:"successful_transaction_count" yaml:"successful_transaction_count"`
	FailedTransactionCount     *int32            `json:"failed_transaction_count"     yaml:"failed_transaction_count"`
	OperationCount             int32             `json:"operation_count"              yaml:"operation_count"`
	TxSetOperationCount        *int32            `json:"tx_set_operation_count"       yaml:"tx_set_operation_count"`
	ClosedAt                   time.Time         `json:"closed_at"                    yaml:"closed_at"`
	TotalCoins                 string            `json:"total_coins"                  yaml:"total_coins"`
	FeePool                    string            `json:"fee_pool"                     yaml:"fee_pool"`
	BaseFeeInStroops           int32             `json:"base_fee_in_stroops"          yaml:"base_fee_in_stroops"`
	BaseReserveInStroops       int32             `json:"base_reserve_in_stroops"      yaml:"base_reserve_in_stroops"`
	MaxTxSetSize               int32             `json:"max_tx_set_size"              yaml:"max_tx_set_size"`
	ProtocolVersion            int32             `json:"protocol_version"             yaml:"protocol_version"`
	HeaderXDR                  string            `json:"header_xdr"                   yaml:"header_xdr"`
	Header                     *xdr.LedgerHeader `json:"-"                            yaml:"-"`
}

// RequiredFields implements RequiredFielder.
func (Ledger) RequiredFields() []string {
	return []string{"id", "hash", "sequence", "closed_at"}
}

// DecodeXDR implements XDRDecoder.
func (l *Ledger) DecodeXDR(codec XDRCodec) error {
	if l.HeaderXDR == "" {
		return nil
	}

	var header xdr.LedgerHeader

	err := decodeXDRField(codec, "header_xdr", l.HeaderXDR, &header)
	if err != nil {
		return err
	}

	l.Header = &header

	return nil
}

// LiquidityPool represents a liquidity pool record.
type LiquidityPool struct {
	Links              Links                  `json:"_links"               yaml:"_links"`
	ID                 string                 `json:"id"                   yaml:"id"`
	PagingToken        string                 `json:"paging_token"         yaml:"paging_token"`
	FeeBP              uint32                 `json:"fee_bp"               yaml:"fee_bp"`
	Type               string                 `json:"type"                 yaml:"type"`
	TotalTrustlines    string                 `json:"total_trustlines"     yaml:"total_trustlines"`
	TotalShares        string                 `json:"total_shares"         yaml:"total_shares"`
	Reserves           []LiquidityPoolReserve `json:"reserves"             yaml:"reserves"`
	LastModifiedLedger uint32                 `json:"last_modified_ledger" yaml:"last_modified_ledger"`
	LastModifiedTime   *time.Time             `json:"last_modified_time"   yaml:"last_modified_time"`
}

// RequiredFields implements RequiredFielder.
func (LiquidityPool) RequiredFields() []string {
	return []string{"id", "fee_bp", "type", "reserves"}
}

// LiquidityPoolReserve is one side of a pool.
type LiquidityPoolReserve struct {
	Asset  string `json:"asset"  yaml:"asset"`
	Amount string `json:"amount" yaml:"amount"`
}

// Offer represents an open order book offer.
type Offer struct {
	Links              Links      `json:"_links"               yaml:"_links"`
	ID                 string     `json:"id"                   yaml:"id"`
	PagingToken        string     `json:"paging_token"         yaml:"paging_token"`
	Seller             string     `json:"seller"               yaml:"seller"`
	Selling            AssetRef   `json:"selling"              yaml:"selling"`
	Buying             AssetRef   `json:"buying"               yaml:"buying"`
	Amount             string     `json:"amount"               yaml:"amount"`
	PriceR             Price      `json:"price_r"              yaml:"price_r"`
	Price              string     `json:"price"                yaml:"price"`
	LastModifiedLedger uint32     `json:"last_modified_ledger" yaml:"last_modified_ledger"`
	LastModifiedTime   *time.Time `json:"last_modified_time"   yaml:"last_modified_time"`
	Sponsor            string     `json:"sponsor,omitempty"    yaml:"sponsor,omitempty"`
}

// RequiredFields implements RequiredFielder.
func (Offer) RequiredFields() []string {
	return []string{"id", "seller", "selling", "buying", "amount", "price"}
}

// Operation represents an operation record. Fields that depend on the
// operation type are kept in Details.
type Operation struct {
	Links                 Links                      `json:"_links"                 yaml:"_links"`
	ID                    string                     `json:"id"                     yaml:"id"`
	PagingToken           string                     `json:"paging_token"           yaml:"paging_token"`
	TransactionSuccessful bool                       `json:"transaction_successful" yaml:"transaction_successful"`
	SourceAccount         string                     `json:"source_account"         yaml:"source_account"`
	Type                  string                     `json:"type"                   yaml:"type"`
	TypeI                 int32                      `json:"type_i"                 yaml:"type_i"`
	CreatedAt             time.Time                  `json:"created_at"             yaml:"created_at"`
	TransactionHash       string                     `json:"transaction_hash"       yaml:"transaction_hash"`
	Transaction           *Transaction               `json:"transaction,omitempty"  yaml:"transaction,omitempty"`
	Details               map[string]json.RawMessage `json:"details,omitempty"      yaml:"details,omitempty"`
}

var operationBaseFields = []string{
	"_links", "id", "paging_token", "transaction_successful", "source_account",
	"type", "type_i", "created_at", "transaction_hash", "transaction",
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Operation) UnmarshalJSON(data []byte) error {
	type plain Operation

	var decoded plain

	err := json.Unmarshal(data, &decoded)
	if err != nil {
		return fmt.Errorf("decoding operation: %w", err)
	}

	decoded.Details, err = extraFields(data, operationBaseFields)
	if err != nil {
		return err
	}

	*o = Operation(decoded)

	return nil
}

// RequiredFields implements RequiredFielder.
func (Operation) RequiredFields() []string {
	return []string{"id", "type", "source_account", "transaction_hash"}
}

// OrderBookSummary is the order book for one asset pair.
type OrderBookSummary struct {
	Bids    []PriceLevel `json:"bids"    yaml:"bids"`
	Asks    []PriceLevel `json:"asks"    yaml:"asks"`
	Base    AssetRef     `json:"base"    yaml:"base"`
	Counter AssetRef     `json:"counter" yaml:"counter"`
}

// RequiredFields implements RequiredFielder.
func (OrderBookSummary) RequiredFields() []string {
	return []string{"bids", "asks", "base", "counter"}
}

// PriceLevel is the aggregated amount offered at one price.
type PriceLevel struct {
	PriceR Price  `json:"price_r" yaml:"price_r"`
	Price  string `json:"price"   yaml:"price"`
	Amount string `json:"amount"  yaml:"amount"`
}

// Path is one payment path found by the path finding endpoints.
type Path struct {
	SourceAssetType        string     `json:"source_asset_type"                  yaml:"source_asset_type"`
	SourceAssetCode        string     `json:"source_asset_code,omitempty"        yaml:"source_asset_code,omitempty"`
	SourceAssetIssuer      string     `json:"source_asset_issuer,omitempty"      yaml:"source_asset_issuer,omitempty"`
	SourceAmount           string     `json:"source_amount"                      yaml:"source_amount"`
	DestinationAssetType   string     `json:"destination_asset_type"             yaml:"destination_asset_type"`
	DestinationAssetCode   string     `json:"destination_asset_code,omitempty"   yaml:"destination_asset_code,omitempty"`
	DestinationAssetIssuer string     `json:"destination_asset_issuer,omitempty" yaml:"destination_asset_issuer,omitempty"`
	DestinationAmount      string     `json:"destination_amount"                 yaml:"destination_amount"`
	Path                   []AssetRef `json:"path"                               yaml:"path"`
}

// RequiredFields implements RequiredFielder.
func (Path) RequiredFields() []string {
	return []string{"source_asset_type", "source_amount", "destination_asset_type", "destination_amount"}
}

// Payment represents a record of the payments collections: create_account,
// payment, path payments and account_merge operations.
type Payment struct {
	Links                 Links        `json:"_links"                        yaml:"_links"`
	ID                    string       `json:"id"                            yaml:"id"`
	PagingToken           string       `json:"paging_token"                  yaml:"paging_token"`
	TransactionSuccessful bool         `json:"transaction_successful"        yaml:"transaction_successful"`
	SourceAccount         string       `json:"source_account"                yaml:"source_account"`
	Type                  string       `json:"type"                          yaml:"type"`
	TypeI                 int32        `json:"type_i"                        yaml:"type_i"`
	CreatedAt             time.Time    `json:"created_at"                    yaml:"created_at"`
	TransactionHash       string       `json:"transaction_hash"              yaml:"transaction_hash"`
	Transaction           *Transaction `json:"transaction,omitempty"         yaml:"transaction,omitempty"`
	AssetType             string       `json:"asset_type,omitempty"          yaml:"asset_type,omitempty"`
	AssetCode             string       `json:"asset_code,omitempty"          yaml:"asset_code,omitempty"`
	AssetIssuer           string       `json:"asset_issuer,omitempty"        yaml:"asset_issuer,omitempty"`
	From                  string       `json:"from,omitempty"                yaml:"from,omitempty"`
	To                    string       `json:"to,omitempty"                  yaml:"to,omitempty"`
	Amount                string       `json:"amount,omitempty"              yaml:"amount,omitempty"`
	StartingBalance       string       `json:"starting_balance,omitempty"    yaml:"starting_balance,omitempty"`
	Funder                string       `json:"funder,omitempty"              yaml:"funder,omitempty"`
	Account               string       `json:"account,omitempty"             yaml:"account,omitempty"`
	Into                  string       `json:"into,omitempty"                yaml:"into,omitempty"`
	SourceAssetType       string       `json:"source_asset_type,omitempty"   yaml:"source_asset_type,omitempty"`
	SourceAssetCode       string       `json:"source_asset_code,omitempty"   yaml:"source_asset_code,omitempty"`
	SourceAssetIssuer     string       `json:"source_asset_issuer,omitempty" yaml:"source_asset_issuer,omitempty"`
	SourceAmount          string       `json:"source_amount,omitempty"       yaml:"source_amount,omitempty"`
	SourceMax             string       `json:"source_max,omitempty"          yaml:"source_max,omitempty"`
	DestinationMin        string       `json:"destination_min,omitempty"     yaml:"destination_min,omitempty"`
	Path                  []AssetRef   `json:"path,omitempty"                yaml:"path,omitempty"`
}

// RequiredFields implements RequiredFielder.
func (Payment) RequiredFields() []string {
	return []string{"id", "type", "source_account", "transaction_hash"}
}

// Root is the Horizon root resource, describing the deployment.
type Root struct {
	Links                        Links     `json:"_links"                          yaml:"_links"`
	HorizonVersion               string    `json:"horizon_version"                 yaml:"horizon_version"`
	CoreVersion                  string    `json:"core_version"                    yaml:"core_version"`
	IngestLatestLedger           uint32    `json:"ingest_latest_ledger"            yaml:"ingest_latest_ledger"`
	HistoryLatestLedger          int32     `json:"history_latest_ledger"           yaml:"history_latest_ledger"`
	HistoryLatestLedgerClosedAt  time.Time `json:"history_latest_ledger_closed_at" yaml:"history_latest_ledger_closed_at"`
	HistoryElderLedger           int32     `json:"history_elder_ledger"            yaml:"history_elder_ledger"`
	CoreLatestLedger             int32     `json:"core_latest_ledger"              yaml:"core_latest_ledger"`
	NetworkPassphrase            string    `json:"network_passphrase"              yaml:"network_passphrase"`
	CurrentProtocolVersion       int32     `json:"current_protocol_version"        yaml:"current_protocol_version"`
	SupportedProtocolVersion     int32     `json:"supported_protocol_version"      yaml:"supported_protocol_version"`
	CoreSupportedProtocolVersion int32     `json:"core_supported_protocol_version" yaml:"core_supported_protocol_version"`
}

// RequiredFields implements RequiredFielder.
func (Root) RequiredFields() []string {
	return []string{"horizon_version", "network_passphrase"}
}

// Trade represents a trade record.
type Trade struct {
	Links                  Links       `json:"_links"                              yaml:"_links"`
	ID                     string      `json:"id"                                  yaml:"id"`
	PagingToken            string      `json:"paging_token"                        yaml:"paging_token"`
	LedgerCloseTime        time.Time   `json:"ledger_close_time"                   yaml:"ledger_close_time"`
	TradeType              string      `json:"trade_type"                          yaml:"trade_type"`
	LiquidityPoolFeeBP     uint32      `json:"liquidity_pool_fee_bp,omitempty"     yaml:"liquidity_pool_fee_bp,omitempty"`
	BaseLiquidityPoolID    string      `json:"base_liquidity_pool_id,omitempty"    yaml:"base_liquidity_pool_id,omitempty"`
	BaseOfferID            string      `json:"base_offer_id,omitempty"             yaml:"base_offer_id,omitempty"`
	BaseAccount            string      `json:"base_account,omitempty"              yaml:"base_account,omitempty"`
	BaseAmount             string      `json:"base_amount"                         yaml:"base_amount"`
	BaseAssetType          string      `json:"base_asset_type"                     yaml:"base_asset_type"`
	BaseAssetCode          string      `json:"base_asset_code,omitempty"           yaml:"base_asset_code,omitempty"`
	BaseAssetIssuer        string      `json:"base_asset_issuer,omitempty"         yaml:"base_asset_issuer,omitempty"`
	CounterLiquidityPoolID string      `json:"counter_liquidity_pool_id,omitempty" yaml:"counter_liquidity_pool_id,omitempty"`
	CounterOfferID         string      `json:"counter_offer_id,omitempty"          yaml:"counter_offer_id,omitempty"`
	CounterAccount         string      `json:"counter_account,omitempty"           yaml:"counter_account,omitempty"`
	CounterAmount          string      `json:"counter_amount"                      yaml:"counter_amount"`
	CounterAssetType       string      `json:"counter_asset_type"                  yaml:"counter_asset_type"`
	CounterAssetCode       string      `json:"counter_asset_code,omitempty"        yaml:"counter_asset_code,omitempty"`
	CounterAssetIssuer     string      `json:"counter_asset_issuer,omitempty"      yaml:"counter_asset_issuer,omitempty"`
	BaseIsSeller           bool        `json:"base_is_seller"                      yaml:"base_is_seller"`
	Price                  *TradePrice `json:"price,omitempty"                     yaml:"price,omitempty"`
}

// RequiredFields implements RequiredFielder.
func (Trade) RequiredFields() []string {
	return []string{"id", "ledger_close_time", "base_amount", "counter_amount", "base_asset_type", "counter_asset_type"}
}

// TradeAggregation is one bucket of trade statistics.
type TradeAggregation struct {
	Timestamp     string     `json:"timestamp"      yaml:"timestamp"`
	TradeCount    string     `json:"trade_count"    yaml:"trade_count"`
	BaseVolume    string     `json:"base_volume"    yaml:"base_volume"`
	CounterVolume string     `json:"counter_volume" yaml:"counter_volume"`
	Average       string     `json:"avg"            yaml:"avg"`
	High          string     `json:"high"           yaml:"high"`
	HighR         TradePrice `json:"high_r"         yaml:"high_r"`
	Low           string     `json:"low"            yaml:"low"`
	LowR          TradePrice `json:"low_r"          yaml:"low_r"`
	Open          string     `json:"open"           yaml:"open"`
	OpenR         TradePrice `json:"open_r"         yaml:"open_r"`
	Close         string     `json:"close"          yaml:"close"`
	CloseR        TradePrice `json:"close_r"        yaml:"close_r"`
}

// RequiredFields implements RequiredFielder.
func (TradeAggregation) RequiredFields() []string {
	return []string{"timestamp", "trade_count", "base_volume", "counter_volume"}
}

// Transaction represents a transaction record. Envelope and Result hold the
// decoded EnvelopeXDR and ResultXDR.
type Transaction struct {
	Links                 Links                     `json:"_links"                         yaml:"_links"`
	ID                    string                    `json:"id"                             yaml:"id"`
	PagingToken           string                    `json:"paging_token"                   yaml:"paging_token"`
	Successful            bool                      `json:"successful"                     yaml:"successful"`
	Hash                  string                    `json:"hash"                           yaml:"hash"`
	Ledger                int32                     `json:"ledger"                         yaml:"ledger"`
	CreatedAt             time.Time                 `json:"created_at"                     yaml:"created_at"`
	SourceAccount         string                    `json:"source_account"                 yaml:"source_account"`
	AccountMuxed          string                    `json:"account_muxed,omitempty"        yaml:"account_muxed,omitempty"`
	SourceAccountSequence string                    `json:"source_account_sequence"        yaml:"source_account_sequence"`
	FeeAccount            string                    `json:"fee_account"                    yaml:"fee_account"`
	FeeCharged            string                    `json:"fee_charged"                    yaml:"fee_charged"`
	MaxFee                string                    `json:"max_fee"                        yaml:"max_fee"`
	OperationCount        int32                     `json:"operation_count"                yaml:"operation_count"`
	EnvelopeXDR           string                    `json:"envelope_xdr"                   yaml:"envelope_xdr"`
	ResultXDR             string                    `json:"result_xdr"                     yaml:"result_xdr"`
	ResultMetaXDR         string                    `json:"result_meta_xdr,omitempty"      yaml:"result_meta_xdr,omitempty"`
	FeeMetaXDR            string                    `json:"fee_meta_xdr,omitempty"         yaml:"fee_meta_xdr,omitempty"`
	MemoType              string                    `json:"memo_type"                      yaml:"memo_type"`
	Memo                  string                    `json:"memo,omitempty"                 yaml:"memo,omitempty"`
	Signatures            []string                  `json:"signatures"                     yaml:"signatures"`
	ValidAfter            string                    `json:"valid_after,omitempty"          yaml:"valid_after,omitempty"`
	ValidBefore           string                    `json:"valid_before,omitempty"         yaml:"valid_before,omitempty"`
	Preconditions         *TransactionPreconditions `json:"preconditions,omitempty"        yaml:"preconditions,omitempty"`
	FeeBumpTransaction    *FeeBumpTransaction       `json:"fee_bump_transaction,omitempty" yaml:"fee_bump_transaction,omitempty"`
	InnerTransaction      *InnerTransaction         `json:"inner_transaction,omitempty"    yaml:"inner_transaction,omitempty"`
	Envelope              *xdr.TransactionEnvelope  `json:"-"                              yaml:"-"`
	Result                *xdr.TransactionResult    `json:"-"                              yaml:"-"`
}

// RequiredFields implements RequiredFielder.
func (Transaction) RequiredFields() []string {
	return []string{"id", "hash", "ledger", "source_account", "envelope_xdr"}
}

// DecodeXDR implements XDRDecoder.
func (t *Transaction) DecodeXDR(codec XDRCodec) error {
	var (
		envelope xdr.TransactionEnvelope
		result   xdr.TransactionResult
	)

	envelopeErr := decodeXDRField(codec, "envelope_xdr", t.EnvelopeXDR, &envelope)
	if envelopeErr == nil && t.EnvelopeXDR != "" {
		t.Envelope = &envelope
	}

	resultErr := decodeXDRField(codec, "result_xdr", t.ResultXDR, &result)
	if resultErr == nil && t.ResultXDR != "" {
		t.Result = &result
	}

	return multierr.Combine(envelopeErr, resultErr)
}

// TransactionPreconditions are the validity conditions of a transaction.
type TransactionPreconditions struct {
	TimeBounds                  *TimeBounds   `json:"timebounds,omitempty"                      yaml:"timebounds,omitempty"`
	LedgerBounds                *LedgerBounds `json:"ledgerbounds,omitempty"                    yaml:"ledgerbounds,omitempty"`
	MinAccountSequence          string        `json:"min_account_sequence,omitempty"            yaml:"min_account_sequence,omitempty"`
	MinAccountSequenceAge       string        `json:"min_account_sequence_age,omitempty"        yaml:"min_account_sequence_age,omitempty"`
	MinAccountSequenceLedgerGap uint32        `json:"min_account_sequence_ledger_gap,omitempty" yaml:"min_account_sequence_ledger_gap,omitempty"`
	ExtraSigners                []string      `json:"extra_signers,omitempty"                   yaml:"extra_signers,omitempty"`
}

// TimeBounds limit a transaction to a time window, as unix seconds.
type TimeBounds struct {
	MinTime string `json:"min_time"           yaml:"min_time"`
	MaxTime string `json:"max_time,omitempty" yaml:"max_time,omitempty"`
}

// LedgerBounds limit a transaction to a ledger window.
type LedgerBounds struct {
	MinLedger uint32 `json:"min_ledger"           yaml:"min_ledger"`
	MaxLedger uint32 `json:"max_ledger,omitempty" yaml:"max_ledger,omitempty"`
}

// FeeBumpTransaction describes the outer transaction of a fee bump.
type FeeBumpTransaction struct {
	Hash       string   `json:"hash"       yaml:"hash"`
	Signatures []string `json:"signatures" yaml:"signatures"`
}

// InnerTransaction describes the wrapped transaction of a fee bump.
type InnerTransaction struct {
	Hash       string   `json:"hash"       yaml:"hash"`
	Signatures []string `json:"signatures" yaml:"signatures"`
	MaxFee     string   `json:"max_fee"    yaml:"max_fee"`
}

// extraFields returns every top-level member of data not listed in known.
func extraFields(data []byte, known []string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage

	err := json.Unmarshal(data, &all)
	if err != nil {
		return nil, fmt.Errorf("decoding record details: %w", err)
	}

	for _, key := range known {
		delete(all, key)
	}

	if len(all) == 0 {
		return nil, nil
	}

	return all, nil
}
