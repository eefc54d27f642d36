package horizon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestParseAsset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		canonical string
		assetType horizon.AssetType
		code      string
		wantErr   error
	}{
		{name: "native", canonical: "native", assetType: horizon.AssetTypeNative},
		{name: "alphanum4", canonical: "USDC:" + testIssuer, assetType: horizon.AssetTypeCreditAlphanum4, code: "USDC"},
		{name: "alphanum12", canonical: "LONGERCODE1:" + testIssuer, assetType: horizon.AssetTypeCreditAlphanum12, code: "LONGERCODE1"},
		{name: "missing issuer", canonical: "USDC", wantErr: horizon.ErrInvalidAssetCode},
		{name: "empty code", canonical: ":" + testIssuer, wantErr: horizon.ErrInvalidAssetCode},
		{name: "code too long", canonical: "ABCDEFGHIJKLM:" + testIssuer, wantErr: horizon.ErrInvalidAssetCode},
		{name: "code with punctuation", canonical: "US-D:" + testIssuer, wantErr: horizon.ErrInvalidAssetCode},
		{name: "bad issuer", canonical: "USDC:GABC", wantErr: horizon.ErrInvalidAccountID},
		{name: "native spelled differently", canonical: "XLM", wantErr: horizon.ErrInvalidAssetCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			asset, err := horizon.ParseAsset(tt.canonical)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.assetType, asset.Type())
			assert.Equal(t, tt.code, asset.Code())
			assert.Equal(t, tt.canonical, asset.String())
		})
	}
}

func TestAsset_Accessors(t *testing.T) {
	t.Parallel()

	native := horizon.NativeAsset()
	assert.True(t, native.IsNative())
	assert.Empty(t, native.Issuer())
	assert.Equal(t, "native", native.String())
	assert.Equal(t, native, horizon.Asset{})

	usd, err := horizon.NewIssuedAsset("USD", testIssuer)
	require.NoError(t, err)
	assert.False(t, usd.IsNative())
	assert.Equal(t, testIssuer, usd.Issuer())

	again, err := horizon.ParseAsset(usd.String())
	require.NoError(t, err)
	assert.Equal(t, usd, again)
}
