package horizon

const ledgersPath = "/ledgers"

// Ledgers starts a query of the ledgers collection.
func Ledgers() ListBuilder[Ledger] {
	return newListBuilder[Ledger](ledgersPath)
}

// LedgerBySequence returns the request for one ledger.
func LedgerBySequence(sequence uint32) (Request[Ledger], error) {
	path, err := ledgerPath(sequence, "")
	if err != nil {
		return Request[Ledger]{}, err
	}

	return newRequest[Ledger](path, nil), nil
}

// OperationsForLedger starts a query of the operations in a ledger.
func OperationsForLedger(sequence uint32) (OperationHistoryBuilder[Operation], error) {
	path, err := ledgerPath(sequence, "operations")
	if err != nil {
		return OperationHistoryBuilder[Operation]{}, err
	}

	return newOperationHistoryBuilder[Operation](path), nil
}

// PaymentsForLedger starts a query of the payments in a ledger.
func PaymentsForLedger(sequence uint32) (OperationHistoryBuilder[Payment], error) {
	path, err := ledgerPath(sequence, "payments")
	if err != nil {
		return OperationHistoryBuilder[Payment]{}, err
	}

	return newOperationHistoryBuilder[Payment](path), nil
}

// EffectsForLedger starts a query of the effects in a ledger.
func EffectsForLedger(sequence uint32) (ListBuilder[Effect], error) {
	path, err := ledgerPath(sequence, "effects")
	if err != nil {
		return ListBuilder[Effect]{}, err
	}

	return newListBuilder[Effect](path), nil
}

// TransactionsForLedger starts a query of the transactions in a ledger.
func TransactionsForLedger(sequence uint32) (HistoryBuilder[Transaction], error) {
	path, err := ledgerPath(sequence, "transactions")
	if err != nil {
		return HistoryBuilder[Transaction]{}, err
	}

	return newHistoryBuilder[Transaction](path), nil
}
