package commands

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
)

// These tests share viper's global state and therefore do not run in parallel.

const ledgerPageJSON = `{
  "_links": {
    "self": {"href": "https://horizon.example.org/ledgers?cursor=&limit=2&order=desc"},
    "next": {"href": "https://horizon.example.org/ledgers?cursor=30064771072&limit=2&order=desc"},
    "prev": {"href": "https://horizon.example.org/ledgers?cursor=30064771072&limit=2&order=asc"}
  },
  "_embedded": {
    "records": [
      {
        "id": "a2e2b2f6d3c5b0c1e0a3c1f1c2c6e7b1a2e2b2f6d3c5b0c1e0a3c1f1c2c6e7b1",
        "paging_token": "30064771072",
        "hash": "a2e2b2f6d3c5b0c1e0a3c1f1c2c6e7b1a2e2b2f6d3c5b0c1e0a3c1f1c2c6e7b1",
        "sequence": 7,
        "successful_transaction_count": 1,
        "operation_count": 2,
        "closed_at": "2024-01-02T03:04:05Z",
        "total_coins": "100000000000.0000000",
        "fee_pool": "0.0000300",
        "base_fee_in_stroops": 100,
        "base_reserve_in_stroops": 5000000,
        "max_tx_set_size": 100,
        "protocol_version": 20
      }
    ]
  }
}`

func TestLedgersListCommand(t *testing.T) {
	var gotPath, gotQuery string

	useTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		gotPath = request.URL.Path
		gotQuery = request.URL.RawQuery

		writer.Header().Set("Content-Type", "application/hal+json")
		_, _ = writer.Write([]byte(ledgerPageJSON))
	})

	output, err := execute(t, NewLedgersCommand(), "list", "--limit", "2", "--order", "desc")
	require.NoError(t, err)

	assert.Equal(t, "/ledgers", gotPath)
	assert.Equal(t, "limit=2&order=desc", gotQuery)
	assert.Contains(t, output, `"sequence": 7`)
	assert.Contains(t, output, `"protocol_version": 20`)
}

func TestLedgersListCommand_Table(t *testing.T) {
	useTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(ledgerPageJSON))
	})
	viper.Set(keyOutput, constants.FormatTable)

	output, err := execute(t, NewLedgersCommand(), "list")
	require.NoError(t, err)

	assert.Contains(t, strings.ToUpper(output), "SEQUENCE")
	assert.Contains(t, output, "2024-01-02T03:04:05Z")
	assert.Contains(t, output, "Next cursor: 30064771072")
}

func TestLedgersListCommand_InvalidLimit(t *testing.T) {
	requests := 0

	useTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		requests++
	})

	_, err := execute(t, NewLedgersCommand(), "list", "--limit", "500")
	require.ErrorIs(t, err, horizon.ErrLimitOutOfRange)
	assert.Zero(t, requests)
}

func TestAccountsGetCommand_NotFound(t *testing.T) {
	useTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/accounts/"+testAccountID, request.URL.Path)

		writer.Header().Set("Content-Type", "application/problem+json")
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte(`{
  "type": "https://stellar.org/horizon-errors/not_found",
  "title": "Resource Missing",
  "status": 404,
  "detail": "The resource at the url requested was not found."
}`))
	})

	_, err := execute(t, NewAccountsCommand(), "get", testAccountID)
	require.Error(t, err)
	assert.True(t, horizon.IsNotFound(err))
	assert.Contains(t, err.Error(), "failed to get account")
}

func TestAccountsListCommand_RequiresFilter(t *testing.T) {
	useTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		t.Error("no request expected")
	})

	_, err := execute(t, NewAccountsCommand(), "list")
	require.ErrorIs(t, err, constants.ErrMissingFilter)
}

func TestFeeStatsCommand(t *testing.T) {
	useTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/fee_stats", request.URL.Path)

		_, _ = writer.Write([]byte(`{
  "last_ledger": "22606298",
  "last_ledger_base_fee": "100",
  "ledger_capacity_usage": "0.97",
  "fee_charged": {"max": "100", "min": "100", "mode": "100", "p50": "100", "p99": "100"},
  "max_fee": {"max": "100000", "min": "100", "mode": "100", "p50": "100", "p99": "8000"}
}`))
	})
	viper.Set(keyOutput, constants.FormatYAML)

	output, err := execute(t, NewFeeStatsCommand())
	require.NoError(t, err)
	assert.Contains(t, output, "last_ledger: \"22606298\"")
	assert.Contains(t, output, "p99: \"8000\"")
}

func TestVersionCommand(t *testing.T) {
	viper.Reset()
	viper.Set(keyOutput, constants.FormatJSON)
	t.Cleanup(viper.Reset)

	output, err := execute(t, NewVersionCommand("1.2.3", "abc123", "2024-01-01"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc123","built":"2024-01-01"}`, output)
}

func TestConfigSetCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "nested", "config.yml")
	viper.SetConfigFile(configFile)

	output, err := execute(t, NewConfigCommand(), "set", "network", "public")
	require.NoError(t, err)
	assert.Contains(t, output, "Set network to public")

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "network: public")

	_, err = execute(t, NewConfigCommand(), "set", "network", "moon")
	require.ErrorIs(t, err, constants.ErrUnknownNetwork)

	_, err = execute(t, NewConfigCommand(), "clear")
	require.NoError(t, err)

	_, err = os.Stat(configFile)
	assert.True(t, os.IsNotExist(err))
}

func TestResolveEndpoint(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	endpoint, err := resolveEndpoint()
	require.NoError(t, err)
	assert.Equal(t, horizon.TestnetEndpoint(), endpoint)

	viper.Set(keyNetwork, "public")

	endpoint, err = resolveEndpoint()
	require.NoError(t, err)
	assert.Equal(t, horizon.PublicEndpoint(), endpoint)

	viper.Set(keyURL, "https://horizon.example.org/")

	endpoint, err = resolveEndpoint()
	require.NoError(t, err)
	assert.Equal(t, "https://horizon.example.org", endpoint.String())

	viper.Set(keyURL, "")
	viper.Set(keyNetwork, "futurenet")

	_, err = resolveEndpoint()
	require.ErrorIs(t, err, constants.ErrUnknownNetwork)
}

func TestOutputFormat(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(keyOutput, "YAML")

	format, err := outputFormat()
	require.NoError(t, err)
	assert.Equal(t, constants.FormatYAML, format)

	viper.Set(keyOutput, "xml")

	_, err = outputFormat()
	require.ErrorIs(t, err, constants.ErrUnknownOutput)
}

func TestPublishRecords_Disabled(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	err := publishRecords(t.Context(), "ledgers", []horizon.Ledger{{ID: "1"}})
	require.NoError(t, err)
}
