package commands

import (
	"github.com/spf13/cobra"
)

// scopes lists the parent resources a history collection can be nested
// under. A nil entry means the collection has no such scope.
type scopes[B any] struct {
	all         func() B
	account     func(accountID string) (B, error)
	ledger      func(sequence uint32) (B, error)
	transaction func(hash string) (B, error)
	pool        func(poolID string) (B, error)
	operation   func(operationID string) (B, error)
}

func (s scopes[B]) flagNames() []string {
	var names []string

	if s.account != nil {
		names = append(names, "account")
	}

	if s.ledger != nil {
		names = append(names, "ledger")
	}

	if s.transaction != nil {
		names = append(names, "transaction")
	}

	if s.pool != nil {
		names = append(names, "liquidity-pool")
	}

	if s.operation != nil {
		names = append(names, "operation")
	}

	return names
}

func (s scopes[B]) register(cmd *cobra.Command) {
	usage := map[string]string{
		"account":        "only records of this account",
		"ledger":         "only records of this ledger sequence",
		"transaction":    "only records of this transaction hash",
		"liquidity-pool": "only records of this liquidity pool",
		"operation":      "only records of this operation ID",
	}

	for _, name := range s.flagNames() {
		cmd.Flags().String(name, "", usage[name])
	}
}

// resolve returns the builder for the scope flag that was set, or the
// unscoped collection if none was.
func (s scopes[B]) resolve(cmd *cobra.Command) (B, error) {
	name, value, err := exclusiveFlag(cmd, false, s.flagNames()...)
	if err != nil {
		var zero B

		return zero, err
	}

	switch name {
	case "account":
		return s.account(value)
	case "ledger":
		sequence, err := parseSequence(value)
		if err != nil {
			var zero B

			return zero, err
		}

		return s.ledger(sequence)
	case "transaction":
		return s.transaction(value)
	case "liquidity-pool":
		return s.pool(value)
	case "operation":
		return s.operation(value)
	default:
		return s.all(), nil
	}
}
