package horizon

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/multierr"
)

// Links represents the _links object of a record.
type Links map[string]Link

// Link represents a single link.
type Link struct {
	Href      string `json:"href"                yaml:"href"`
	Templated bool   `json:"templated,omitempty" yaml:"templated,omitempty"`
}

// PageLinks are the navigation links of a collection page.
type PageLinks struct {
	Self Link `json:"self"           yaml:"self"`
	Next Link `json:"next,omitempty" yaml:"next,omitempty"`
	Prev Link `json:"prev,omitempty" yaml:"prev,omitempty"`
}

// Embedded holds the records of a page.
type Embedded[T any] struct {
	Records []T `json:"records" yaml:"records"`
}

// Page is one page of a collection together with its navigation links.
type Page[T any] struct {
	Links    PageLinks   `json:"_links"    yaml:"_links"`
	Embedded Embedded[T] `json:"_embedded" yaml:"_embedded"`
}

// UnmarshalJSON implements json.Unmarshaler. Records are decoded one by one
// so a failure names the record it happened in.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Links    PageLinks `json:"_links"`
		Embedded struct {
			Records []json.RawMessage `json:"records"`
		} `json:"_embedded"`
	}

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	var records []T
	if raw.Embedded.Records != nil {
		records = make([]T, len(raw.Embedded.Records))
	}

	for i, record := range raw.Embedded.Records {
		err = json.Unmarshal(record, &records[i])
		if err != nil {
			return recordDecodeError(i, err)
		}
	}

	p.Links = raw.Links
	p.Embedded.Records = records

	return nil
}

func recordDecodeError(index int, err error) *DecodeError {
	field := fmt.Sprintf("_embedded.records.%d", index)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field += "." + typeErr.Field
	}

	return &DecodeError{Field: field, Err: err}
}

// Records returns the records of the page in the order Horizon sent them.
func (p *Page[T]) Records() []T {
	return p.Embedded.Records
}

// Next returns the request for the following page. An empty page still
// carries a next link; callers stop when Records is empty.
func (p *Page[T]) Next() (Request[Page[T]], bool) {
	return pageRequest[T](p.Links.Next.Href)
}

// Prev returns the request for the preceding page.
func (p *Page[T]) Prev() (Request[Page[T]], bool) {
	return pageRequest[T](p.Links.Prev.Href)
}

// Self returns the request that produced the page.
func (p *Page[T]) Self() (Request[Page[T]], bool) {
	return pageRequest[T](p.Links.Self.Href)
}

// pageRequest turns a link href into a request. Only the path and query are
// kept: the host a request goes to is always the client's Endpoint.
func pageRequest[T any](href string) (Request[Page[T]], bool) {
	if href == "" {
		return Request[Page[T]]{}, false
	}

	parsed, err := url.Parse(href)
	if err != nil || parsed.Path == "" {
		return Request[Page[T]]{}, false
	}

	return newRequest[Page[T]](parsed.EscapedPath(), parseParams(parsed.RawQuery)), true
}

// RequiredFields implements RequiredFielder.
func (p Page[T]) RequiredFields() []string {
	fields := []string{"_embedded.records"}

	var zero T
	if fielder, ok := any(zero).(RequiredFielder); ok {
		for _, field := range fielder.RequiredFields() {
			fields = append(fields, "_embedded.records.#."+field)
		}
	}

	return fields
}

// DecodeXDR implements XDRDecoder for pages of records with XDR fields.
func (p *Page[T]) DecodeXDR(codec XDRCodec) error {
	var errs error

	for i := range p.Embedded.Records {
		decoder, ok := any(&p.Embedded.Records[i]).(XDRDecoder)
		if !ok {
			return nil
		}

		err := decoder.DecodeXDR(codec)
		if err != nil {
			errs = multierr.Append(errs, prefixDecodeErrors(err, fmt.Sprintf("_embedded.records.%d", i)))
		}
	}

	return errs
}

// Price is an exact rational price.
type Price struct {
	N int32 `json:"n" yaml:"n"`
	D int32 `json:"d" yaml:"d"`
}

// TradePrice is a rational price as Horizon reports it for trades, with
// numerator and denominator that may exceed int32.
type TradePrice struct {
	N string `json:"n" yaml:"n"`
	D string `json:"d" yaml:"d"`
}

// AssetRef is an asset in the typed form used inside records.
type AssetRef struct {
	AssetType   string `json:"asset_type"             yaml:"asset_type"`
	AssetCode   string `json:"asset_code,omitempty"   yaml:"asset_code,omitempty"`
	AssetIssuer string `json:"asset_issuer,omitempty" yaml:"asset_issuer,omitempty"`
}

// String returns the canonical form of the asset.
func (a AssetRef) String() string {
	if a.AssetType == string(AssetTypeNative) {
		return nativeAssetString
	}

	return a.AssetCode + ":" + a.AssetIssuer
}
