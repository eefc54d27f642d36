package horizon

const transactionsPath = "/transactions"

// Transactions starts a query of all transactions.
func Transactions() HistoryBuilder[Transaction] {
	return newHistoryBuilder[Transaction](transactionsPath)
}

// TransactionByHash returns the request for one transaction.
func TransactionByHash(hash string) (Request[Transaction], error) {
	return byID[Transaction](transactionsPath, "hash", hash, validateTransactionHash)
}

// OperationsForTransaction starts a query of the operations of a transaction.
func OperationsForTransaction(hash string) (OperationHistoryBuilder[Operation], error) {
	path, err := scopedPath(transactionsPath, "hash", hash, "operations", validateTransactionHash)
	if err != nil {
		return OperationHistoryBuilder[Operation]{}, err
	}

	return newOperationHistoryBuilder[Operation](path), nil
}

// PaymentsForTransaction starts a query of the payments of a transaction.
func PaymentsForTransaction(hash string) (OperationHistoryBuilder[Payment], error) {
	path, err := scopedPath(transactionsPath, "hash", hash, "payments", validateTransactionHash)
	if err != nil {
		return OperationHistoryBuilder[Payment]{}, err
	}

	return newOperationHistoryBuilder[Payment](path), nil
}

// EffectsForTransaction starts a query of the effects of a transaction.
func EffectsForTransaction(hash string) (ListBuilder[Effect], error) {
	path, err := scopedPath(transactionsPath, "hash", hash, "effects", validateTransactionHash)
	if err != nil {
		return ListBuilder[Effect]{}, err
	}

	return newListBuilder[Effect](path), nil
}
