package horizon

import "strconv"

const joinTransactions = "transactions"

// ListBuilder builds a request for a collection that has no filters beyond
// pagination.
type ListBuilder[T any] struct {
	path   string
	params Params
}

func newListBuilder[T any](path string) ListBuilder[T] {
	return ListBuilder[T]{path: path}
}

// Cursor sets the paging token to start after.
func (b ListBuilder[T]) Cursor(cursor string) (ListBuilder[T], error) {
	params, err := setCursor(b.params, cursor)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Limit sets the page size.
func (b ListBuilder[T]) Limit(limit int) (ListBuilder[T], error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Order sets the walk direction.
func (b ListBuilder[T]) Order(order Order) (ListBuilder[T], error) {
	params, err := setOrder(b.params, order)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Build returns the finished request.
func (b ListBuilder[T]) Build() Request[Page[T]] {
	return newRequest[Page[T]](b.path, b.params)
}

// HistoryBuilder builds a request for a transaction history collection, which
// can optionally include failed transactions.
type HistoryBuilder[T any] struct {
	path   string
	params Params
}

func newHistoryBuilder[T any](path string) HistoryBuilder[T] {
	return HistoryBuilder[T]{path: path}
}

// Cursor sets the paging token to start after.
func (b HistoryBuilder[T]) Cursor(cursor string) (HistoryBuilder[T], error) {
	params, err := setCursor(b.params, cursor)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Limit sets the page size.
func (b HistoryBuilder[T]) Limit(limit int) (HistoryBuilder[T], error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Order sets the walk direction.
func (b HistoryBuilder[T]) Order(order Order) (HistoryBuilder[T], error) {
	params, err := setOrder(b.params, order)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// IncludeFailed sets whether records of failed transactions are returned.
func (b HistoryBuilder[T]) IncludeFailed(include bool) HistoryBuilder[T] {
	b.params = b.params.Set(paramIncludeFailed, strconv.FormatBool(include))

	return b
}

// Build returns the finished request.
func (b HistoryBuilder[T]) Build() Request[Page[T]] {
	return newRequest[Page[T]](b.path, b.params)
}

// OperationHistoryBuilder builds a request for an operation or payment
// collection. Besides the history options it can embed the parent
// transaction of every record.
type OperationHistoryBuilder[T any] struct {
	path   string
	params Params
}

func newOperationHistoryBuilder[T any](path string) OperationHistoryBuilder[T] {
	return OperationHistoryBuilder[T]{path: path}
}

// Cursor sets the paging token to start after.
func (b OperationHistoryBuilder[T]) Cursor(cursor string) (OperationHistoryBuilder[T], error) {
	params, err := setCursor(b.params, cursor)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Limit sets the page size.
func (b OperationHistoryBuilder[T]) Limit(limit int) (OperationHistoryBuilder[T], error) {
	params, err := setLimit(b.params, limit)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// Order sets the walk direction.
func (b OperationHistoryBuilder[T]) Order(order Order) (OperationHistoryBuilder[T], error) {
	params, err := setOrder(b.params, order)
	if err != nil {
		return b, err
	}

	b.params = params

	return b, nil
}

// IncludeFailed sets whether records of failed transactions are returned.
func (b OperationHistoryBuilder[T]) IncludeFailed(include bool) OperationHistoryBuilder[T] {
	b.params = b.params.Set(paramIncludeFailed, strconv.FormatBool(include))

	return b
}

// JoinTransactions embeds the parent transaction in every record.
func (b OperationHistoryBuilder[T]) JoinTransactions() OperationHistoryBuilder[T] {
	b.params = b.params.Set(paramJoin, joinTransactions)

	return b
}

// Build returns the finished request.
func (b OperationHistoryBuilder[T]) Build() Request[Page[T]] {
	return newRequest[Page[T]](b.path, b.params)
}

// byID validates id with check and returns the single-resource request at
// collection/id.
func byID[T any](collection, param, id string, check func(param, id string) error) (Request[T], error) {
	err := check(param, id)
	if err != nil {
		return Request[T]{}, err
	}

	return newRequest[T](collection+"/"+id, nil), nil
}

// scopedPath validates id with check and returns parent/id/child.
func scopedPath(parent, param, id, child string, check func(param, id string) error) (string, error) {
	err := check(param, id)
	if err != nil {
		return "", err
	}

	return parent + "/" + id + "/" + child, nil
}

func ledgerPath(sequence uint32, child string) (string, error) {
	err := validateLedgerSequence("sequence", sequence)
	if err != nil {
		return "", err
	}

	path := "/ledgers/" + strconv.FormatUint(uint64(sequence), 10)
	if child == "" {
		return path, nil
	}

	return path + "/" + child, nil
}
