package horizon

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/stellar/go-stellar-sdk/strkey"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
)

func validateAccountID(param, id string) error {
	if !strkey.IsValidEd25519PublicKey(id) {
		return invalid(param, id, ErrInvalidAccountID)
	}

	return nil
}

func validateHex(param, value string, length int, sentinel error) error {
	if len(value) != length {
		return invalid(param, value, sentinel)
	}

	_, err := hex.DecodeString(value)
	if err != nil {
		return invalid(param, value, sentinel)
	}

	return nil
}

func validateTransactionHash(param, hash string) error {
	return validateHex(param, hash, constants.HashHexLength, ErrInvalidHash)
}

func validateLiquidityPoolID(param, id string) error {
	return validateHex(param, id, constants.HashHexLength, ErrInvalidLiquidityPoolID)
}

func validateClaimableBalanceID(param, id string) error {
	return validateHex(param, id, constants.ClaimableBalanceIDHexLength, ErrInvalidClaimableBalanceID)
}

// validateNumericID accepts the decimal int64 IDs Horizon uses for offers and
// operations.
func validateNumericID(param, id string) error {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return invalid(param, id, ErrInvalidID)
	}

	return nil
}

func validateLedgerSequence(param string, sequence uint32) error {
	if sequence == 0 {
		return invalid(param, "0", ErrInvalidLedgerSequence)
	}

	return nil
}

// validateAmount accepts positive decimal amounts with up to seven fractional
// digits, the precision of a Stellar amount.
func validateAmount(param, amount string) error {
	whole, fraction, hasFraction := strings.Cut(amount, ".")
	if whole == "" || !allDigits(whole) {
		return invalid(param, amount, ErrInvalidAmount)
	}

	if hasFraction && (fraction == "" || len(fraction) > constants.MaxAmountDecimals || !allDigits(fraction)) {
		return invalid(param, amount, ErrInvalidAmount)
	}

	if strings.Trim(whole+fraction, "0") == "" {
		return invalid(param, amount, ErrInvalidAmount)
	}

	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
