package horizon

import (
	"strings"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
)

// AssetType is the asset_type discriminator Horizon uses.
type AssetType string

// Asset types.
const (
	AssetTypeNative             AssetType = "native"
	AssetTypeCreditAlphanum4    AssetType = "credit_alphanum4"
	AssetTypeCreditAlphanum12   AssetType = "credit_alphanum12"
	AssetTypeLiquidityPoolShare AssetType = "liquidity_pool_shares"
)

const nativeAssetString = "native"

// Asset identifies lumens or an issued credit. The zero value is the native
// asset.
type Asset struct {
	code   string
	issuer string
}

// NativeAsset returns lumens.
func NativeAsset() Asset {
	return Asset{}
}

// NewIssuedAsset validates code and issuer and returns the credit asset.
func NewIssuedAsset(code, issuer string) (Asset, error) {
	if !validAssetCode(code) {
		return Asset{}, invalid("asset_code", code, ErrInvalidAssetCode)
	}

	err := validateAccountID("asset_issuer", issuer)
	if err != nil {
		return Asset{}, err
	}

	return Asset{code: code, issuer: issuer}, nil
}

// ParseAsset reads the canonical form, "native" or "CODE:ISSUER".
func ParseAsset(canonical string) (Asset, error) {
	if canonical == nativeAssetString {
		return NativeAsset(), nil
	}

	parts := strings.SplitN(canonical, ":", constants.AssetSplitParts)
	if len(parts) != constants.AssetSplitParts {
		return Asset{}, invalid("asset", canonical, ErrInvalidAssetCode)
	}

	return NewIssuedAsset(parts[0], parts[1])
}

// IsNative reports whether a is lumens.
func (a Asset) IsNative() bool {
	return a.code == ""
}

// Code returns the asset code, empty for lumens.
func (a Asset) Code() string {
	return a.code
}

// Issuer returns the issuing account, empty for lumens.
func (a Asset) Issuer() string {
	return a.issuer
}

// Type returns the asset_type value for a.
func (a Asset) Type() AssetType {
	switch {
	case a.IsNative():
		return AssetTypeNative
	case len(a.code) <= constants.MaxAlphanum4CodeLength:
		return AssetTypeCreditAlphanum4
	default:
		return AssetTypeCreditAlphanum12
	}
}

// String returns the canonical form.
func (a Asset) String() string {
	if a.IsNative() {
		return nativeAssetString
	}

	return a.code + ":" + a.issuer
}

// setTyped writes a as the <prefix>_asset_type/_code/_issuer triple used by
// the order book, trades and path endpoints.
func (a Asset) setTyped(params Params, prefix string) Params {
	params = params.Set(prefix+"_asset_type", string(a.Type()))
	if a.IsNative() {
		return params
	}

	params = params.Set(prefix+"_asset_code", a.code)

	return params.Set(prefix+"_asset_issuer", a.issuer)
}

func joinAssets(assets []Asset) string {
	parts := make([]string, len(assets))
	for i, asset := range assets {
		parts[i] = asset.String()
	}

	return strings.Join(parts, ",")
}

func validAssetCode(code string) bool {
	if code == "" || len(code) > constants.MaxAssetCodeLength {
		return false
	}

	for _, r := range code {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum {
			return false
		}
	}

	return true
}
