package horizon_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

const ledgersPageJSON = `{
  "_links": {
    "self": {"href": "https://horizon-testnet.stellar.org/ledgers?cursor=&limit=2&order=desc"},
    "next": {"href": "https://horizon-testnet.stellar.org/ledgers?cursor=30064771072&limit=2&order=desc"},
    "prev": {"href": "https://horizon-testnet.stellar.org/ledgers?cursor=34359738368&limit=2&order=asc"}
  },
  "_embedded": {
    "records": [
      {"id": "a", "paging_token": "34359738368", "hash": "aa", "sequence": 8, "closed_at": "2023-06-14T09:19:48Z"},
      {"id": "b", "paging_token": "30064771072", "hash": "bb", "sequence": 7, "closed_at": "2023-06-14T09:19:43Z"}
    ]
  }
}`

func TestPage_Links(t *testing.T) {
	t.Parallel()

	var page horizon.Page[horizon.Ledger]
	require.NoError(t, json.Unmarshal([]byte(ledgersPageJSON), &page))

	require.Len(t, page.Records(), 2)
	assert.Equal(t, int32(8), page.Records()[0].Sequence)
	assert.Equal(t, int32(7), page.Records()[1].Sequence)

	next, ok := page.Next()
	require.True(t, ok)

	builder := must(horizon.Ledgers().Cursor("30064771072"))
	builder = must(builder.Limit(2))
	builder = must(builder.Order(horizon.OrderDesc))
	expected := builder.Build()

	assert.Equal(t, expected.Path(), next.Path())

	if diff := cmp.Diff(expected.Params(), next.Params()); diff != "" {
		t.Errorf("next link params mismatch (-want +got):\n%s", diff)
	}

	prev, ok := page.Prev()
	require.True(t, ok)
	assert.Equal(t, "/ledgers?cursor=34359738368&limit=2&order=asc", prev.String())

	self, ok := page.Self()
	require.True(t, ok)
	assert.Equal(t, "/ledgers?cursor=&limit=2&order=desc", self.String())
}

func TestPage_LinksIgnoreHost(t *testing.T) {
	t.Parallel()

	page := horizon.Page[horizon.Effect]{
		Links: horizon.PageLinks{
			Next: horizon.Link{Href: "https://other.example.org/accounts/" + testAccountID + "/effects?cursor=1-2&limit=10"},
		},
	}

	next, ok := page.Next()
	require.True(t, ok)
	assert.Equal(t, "https://horizon.stellar.org/accounts/"+testAccountID+"/effects?cursor=1-2&limit=10",
		next.URL(horizon.PublicEndpoint()))
	assert.Equal(t, "accounts/"+testAccountID+"/effects", next.Resource())
}

func TestPage_MissingLinks(t *testing.T) {
	t.Parallel()

	page := horizon.Page[horizon.Trade]{}

	_, ok := page.Next()
	assert.False(t, ok)

	_, ok = page.Prev()
	assert.False(t, ok)

	page.Links.Next.Href = "://broken"
	_, ok = page.Next()
	assert.False(t, ok)
}

func TestPage_EmptyPageKeepsNextLink(t *testing.T) {
	t.Parallel()

	body := `{
	  "_links": {"next": {"href": "/trades?cursor=99&limit=10&order=asc"}},
	  "_embedded": {"records": []}
	}`

	var page horizon.Page[horizon.Trade]
	require.NoError(t, json.Unmarshal([]byte(body), &page))

	assert.Empty(t, page.Records())

	next, ok := page.Next()
	require.True(t, ok)
	assert.Equal(t, "/trades?cursor=99&limit=10&order=asc", next.String())
}

func TestPage_RequiredFields(t *testing.T) {
	t.Parallel()

	fields := horizon.Page[horizon.Ledger]{}.RequiredFields()

	assert.Equal(t, []string{
		"_embedded.records",
		"_embedded.records.#.id",
		"_embedded.records.#.hash",
		"_embedded.records.#.sequence",
		"_embedded.records.#.closed_at",
	}, fields)
}

func TestPage_RecordDecodeErrors(t *testing.T) {
	t.Parallel()

	body := `{
	  "_embedded": {"records": [
	    {"id": "12884905985", "type": "payment", "type_i": 1, "source_account": "` + testAccountID + `"},
	    {"id": "12884905986", "type": "payment", "type_i": 1, "source_account": 7}
	  ]}
	}`

	var page horizon.Page[horizon.Operation]

	err := json.Unmarshal([]byte(body), &page)

	var decodeErr *horizon.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "_embedded.records.1.source_account", decodeErr.Field)

	var empty horizon.Page[horizon.Operation]

	require.NoError(t, json.Unmarshal([]byte(`{"_links": {}}`), &empty))
	assert.Nil(t, empty.Records())
}

func TestAssetRef_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "native", horizon.AssetRef{AssetType: "native"}.String())
	assert.Equal(t, "USD:"+testIssuer, horizon.AssetRef{
		AssetType:   "credit_alphanum4",
		AssetCode:   "USD",
		AssetIssuer: testIssuer,
	}.String())
}
