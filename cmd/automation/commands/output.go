package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
)

// defaultOutputFormat is table on a terminal and JSON when piped.
func defaultOutputFormat() string {
	if term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // file descriptors fit in int
		return constants.FormatTable
	}

	return constants.FormatJSON
}

// render writes value as JSON or YAML, or the given rows as a table.
func render(w io.Writer, format string, value any, header []string, rows [][]string) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", constants.JSONIndent)

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(value)
	case constants.FormatTable, "":
		table := tablewriter.NewWriter(w)
		table.Header(toCells(header)...)

		for _, row := range rows {
			_ = table.Append(toCells(row)...)
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, format)
	}
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, value := range values {
		cells[i] = value
	}

	return cells
}

func orNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func formatTime(value *time.Time) string {
	if value == nil || value.IsZero() {
		return constants.NotAvailable
	}

	return value.Format(constants.TimeFormat)
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}
