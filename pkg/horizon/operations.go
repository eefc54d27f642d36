package horizon

const (
	operationsPath = "/operations"
	paymentsPath   = "/payments"
)

// Operations starts a query of all operations.
func Operations() OperationHistoryBuilder[Operation] {
	return newOperationHistoryBuilder[Operation](operationsPath)
}

// OperationByID returns the request for one operation.
func OperationByID(operationID string) (Request[Operation], error) {
	return byID[Operation](operationsPath, "operation_id", operationID, validateNumericID)
}

// Payments starts a query of all payment-like operations.
func Payments() OperationHistoryBuilder[Payment] {
	return newOperationHistoryBuilder[Payment](paymentsPath)
}
