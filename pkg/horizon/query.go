package horizon

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
)

// Order is the direction a collection is walked in.
type Order string

const (
	// OrderAsc walks from oldest to newest.
	OrderAsc Order = "asc"
	// OrderDesc walks from newest to oldest.
	OrderDesc Order = "desc"
)

// Valid reports whether o is a direction Horizon understands.
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// Page size bounds shared by every collection.
const (
	DefaultLimit = constants.DefaultPageLimit
	MinLimit     = constants.MinPageLimit
	MaxLimit     = constants.MaxPageLimit
)

// Query parameter names.
const (
	paramCursor        = "cursor"
	paramLimit         = "limit"
	paramOrder         = "order"
	paramIncludeFailed = "include_failed"
	paramJoin          = "join"
)

// Param is one query key and its encoded-once value.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered query. Each key appears at most once; setting a key
// that is already present replaces its value in place.
type Params []Param

// Get returns the value stored under key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}

	return "", false
}

// Set returns a copy of p with key set to value.
func (p Params) Set(key, value string) Params {
	out := make(Params, len(p), len(p)+1)
	copy(out, p)

	for i := range out {
		if out[i].Key == key {
			out[i].Value = value

			return out
		}
	}

	return append(out, Param{Key: key, Value: value})
}

// Encode renders p as a query string in insertion order. Commas and colons
// are left literal because Horizon reads them as list and asset separators.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var builder strings.Builder

	for i, param := range p {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(param.Key))
		builder.WriteByte('=')
		builder.WriteString(listEscaper.Replace(url.QueryEscape(param.Value)))
	}

	return builder.String()
}

var listEscaper = strings.NewReplacer("%2C", ",", "%3A", ":")

func (p Params) clone() Params {
	if p == nil {
		return nil
	}

	out := make(Params, len(p))
	copy(out, p)

	return out
}

// parseParams reads a raw query back into Params, keeping the order the keys
// first appear in.
func parseParams(rawQuery string) Params {
	var params Params

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")

		if unescaped, err := url.QueryUnescape(key); err == nil {
			key = unescaped
		}

		if unescaped, err := url.QueryUnescape(value); err == nil {
			value = unescaped
		}

		params = params.Set(key, value)
	}

	return params
}

func setCursor(params Params, cursor string) (Params, error) {
	if cursor == "" {
		return params, invalid(paramCursor, cursor, ErrEmptyCursor)
	}

	return params.Set(paramCursor, cursor), nil
}

func setLimit(params Params, limit int) (Params, error) {
	if limit < MinLimit || limit > MaxLimit {
		return params, invalid(paramLimit, strconv.Itoa(limit), ErrLimitOutOfRange)
	}

	return params.Set(paramLimit, strconv.Itoa(limit)), nil
}

func setOrder(params Params, order Order) (Params, error) {
	if !order.Valid() {
		return params, invalid(paramOrder, string(order), ErrInvalidOrder)
	}

	return params.Set(paramOrder, string(order)), nil
}
