package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/horizon-client/internal/constants"
	"github.com/fivetwenty-io/horizon-client/internal/publish"
	"github.com/fivetwenty-io/horizon-client/pkg/horizon"
	"github.com/fivetwenty-io/horizon-client/pkg/horizonclient"
)

// Configuration keys shared by flags, environment and config file.
const (
	keyNetwork     = "network"
	keyURL         = "url"
	keyOutput      = "output"
	keyVerbose     = "verbose"
	keyNATSURL     = "nats_url"
	keyNATSSubject = "nats_subject"
)

// userAgent is reported to Horizon; main sets the version suffix.
var userAgent = "horizon-cli"

// SetUserAgentVersion records the CLI version for the User-Agent header.
func SetUserAgentVersion(version string) {
	userAgent = "horizon-cli/" + version
}

// column renders one table column of a record type.
type column[T any] struct {
	header string
	value  func(T) string
}

// outputFormat returns the configured format. Without one, tables go to
// terminals and JSON everywhere else.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString(keyOutput))

	switch format {
	case "":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return constants.FormatTable, nil
		}

		return constants.FormatJSON, nil
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrUnknownOutput, format)
	}
}

func encodeStructured(out io.Writer, format string, value any) error {
	if format == constants.FormatYAML {
		encoder := yaml.NewEncoder(out)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(value)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	return encoder.Encode(value)
}

// renderProperties prints a single record as JSON, YAML or a two column
// property table.
func renderProperties(out io.Writer, value any, rows [][2]string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	if format != constants.FormatTable {
		return encodeStructured(out, format, value)
	}

	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	for _, row := range rows {
		_ = table.Append(row[0], row[1])
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderPage prints the records of page and, in table mode, the cursor to
// continue from.
func renderPage[T any](out io.Writer, page *horizon.Page[T], columns []column[T]) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	if format != constants.FormatTable {
		return encodeStructured(out, format, page.Records())
	}

	headers := make([]any, len(columns))
	for i, col := range columns {
		headers[i] = col.header
	}

	table := tablewriter.NewWriter(out)
	table.Header(headers...)

	for _, record := range page.Records() {
		row := make([]any, len(columns))
		for i, col := range columns {
			row[i] = col.value(record)
		}

		_ = table.Append(row...)
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if next, ok := page.Next(); ok && len(page.Records()) > 0 {
		if cursor, found := next.Params().Get("cursor"); found {
			_, _ = fmt.Fprintf(out, "\nNext cursor: %s\n", cursor)
		}
	}

	return nil
}

// emitPage renders page and forwards its records to NATS when configured.
func emitPage[T any](cmd *cobra.Command, req horizon.Request[horizon.Page[T]], page *horizon.Page[T], columns []column[T]) error {
	err := renderPage(cmd.OutOrStdout(), page, columns)
	if err != nil {
		return err
	}

	return publishRecords(cmd.Context(), req.Resource(), page.Records())
}

// publishRecords sends records to NATS if a server is configured.
func publishRecords[T any](ctx context.Context, resource string, records []T) error {
	natsURL := viper.GetString(keyNATSURL)
	if natsURL == "" || len(records) == 0 {
		return nil
	}

	subject := viper.GetString(keyNATSSubject)
	if subject == "" {
		subject = constants.DefaultPublishSubject
	}

	publisher, err := publish.Connect(natsURL, subject)
	if err != nil {
		return err
	}

	err = publish.Publish(ctx, publisher, resource, records)

	closeErr := publisher.Close()
	if err != nil {
		return err
	}

	return closeErr
}

// resolveEndpoint picks the explicit URL if one is configured, otherwise the
// named network.
func resolveEndpoint() (horizon.Endpoint, error) {
	if raw := viper.GetString(keyURL); raw != "" {
		return horizon.NewEndpoint(raw)
	}

	switch network := strings.ToLower(viper.GetString(keyNetwork)); network {
	case "", constants.NetworkTestnet:
		return horizon.TestnetEndpoint(), nil
	case constants.NetworkPublic:
		return horizon.PublicEndpoint(), nil
	default:
		return horizon.Endpoint{}, fmt.Errorf("%w: %q", constants.ErrUnknownNetwork, network)
	}
}

// createClient builds a client from the resolved configuration.
func createClient(ctx context.Context) (horizon.Client, error) {
	endpoint, err := resolveEndpoint()
	if err != nil {
		return nil, err
	}

	config := &horizon.Config{
		Endpoint:  endpoint,
		UserAgent: userAgent,
	}

	if viper.GetBool(keyVerbose) {
		config.Logger = newLogrusLogger(os.Stderr)
		config.Debug = true
	}

	return horizonclient.New(ctx, config)
}

// pagingOptions holds the --cursor, --limit and --order flags.
type pagingOptions struct {
	cursor string
	limit  int
	order  string
}

func (o *pagingOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.cursor, "cursor", "", "paging token to start after")
	cmd.Flags().IntVar(&o.limit, "limit", 0, "records per page (1-200)")
	cmd.Flags().StringVar(&o.order, "order", "", "sort order (asc, desc)")
}

// pager is implemented by every builder with full pagination.
type pager[B any] interface {
	Cursor(cursor string) (B, error)
	Limit(limit int) (B, error)
	Order(order horizon.Order) (B, error)
}

func applyPaging[B pager[B]](builder B, opts pagingOptions) (B, error) {
	var err error

	if opts.cursor != "" {
		builder, err = builder.Cursor(opts.cursor)
		if err != nil {
			return builder, err
		}
	}

	if opts.limit != 0 {
		builder, err = builder.Limit(opts.limit)
		if err != nil {
			return builder, err
		}
	}

	if opts.order != "" {
		builder, err = builder.Order(horizon.Order(opts.order))
		if err != nil {
			return builder, err
		}
	}

	return builder, nil
}

// exclusiveFlag returns the one flag among names that was set. It fails if
// more than one is set, and if none is set while required.
func exclusiveFlag(cmd *cobra.Command, required bool, names ...string) (string, string, error) {
	var chosen, value string

	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			continue
		}

		if chosen != "" {
			return "", "", fmt.Errorf("%w: --%s and --%s", constants.ErrConflictingFilters, chosen, name)
		}

		chosen = name
		value, _ = cmd.Flags().GetString(name)
	}

	if chosen == "" && required {
		return "", "", fmt.Errorf("%w: one of --%s", constants.ErrMissingFilter, strings.Join(names, ", --"))
	}

	return chosen, value, nil
}

// parseAssetArg reads "native" or CODE:ISSUER.
func parseAssetArg(raw string) (horizon.Asset, error) {
	asset, err := horizon.ParseAsset(raw)
	if err != nil {
		return horizon.Asset{}, fmt.Errorf("%w: %w", constants.ErrInvalidAssetArgument, err)
	}

	return asset, nil
}

// parseAssetList reads a comma separated list of assets.
func parseAssetList(raw string) ([]horizon.Asset, error) {
	parts := strings.Split(raw, ",")
	assets := make([]horizon.Asset, 0, len(parts))

	for _, part := range parts {
		asset, err := parseAssetArg(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}

		assets = append(assets, asset)
	}

	return assets, nil
}

func parseSequence(raw string) (uint32, error) {
	sequence, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || sequence == 0 {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidSequence, raw)
	}

	return uint32(sequence), nil
}

func truncate(value string) string {
	if len(value) <= constants.StringTruncationLength {
		return value
	}

	return value[:constants.StringTruncationLength-3] + "..."
}

func orNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}
