package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/helpwire-io/deskapi/internal/constants"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"

	Masked = "***"
)

// Common static errors used throughout the commands package.
var (
	ErrUnknownConfigKey          = errors.New("unknown configuration key")
	ErrNameRequired              = errors.New("a name is required")
	ErrSubjectRequired           = errors.New("a subject is required")
	ErrEmailRequired             = errors.New("an email address is required")
	ErrFieldTypeAndTitleRequired = errors.New("field type and title are required")
)

// tableRenderer is the table implementation used for default output.
type tableRenderer = *tablewriter.Table

// encodeJSON writes value to stdout as indented JSON.
func encodeJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// encodeYAML writes value to stdout as YAML.
func encodeYAML(value interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}

// renderObject writes value in the configured output format. The fillTable
// callback builds the default table representation.
func renderObject(value interface{}, fillTable func(table tableRenderer)) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return encodeJSON(value)
	case OutputFormatYAML:
		return encodeYAML(value)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		fillTable(table)

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// parseID parses a numeric resource identifier argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", constants.ErrIDRequired, arg)
	}

	return id, nil
}

// formatStringPtr renders an optional string for table output.
func formatStringPtr(value *string) string {
	if value == nil {
		return NotAvailable
	}

	return *value
}

// StderrLogger writes client debug logs to stderr.
type StderrLogger struct{}

// NewStderrLogger creates a logger for verbose CLI output.
func NewStderrLogger() *StderrLogger {
	return &StderrLogger{}
}

func (l *StderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

// Debug implements desk.Logger.
func (l *StderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

// Info implements desk.Logger.
func (l *StderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

// Warn implements desk.Logger.
func (l *StderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

// Error implements desk.Logger.
func (l *StderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}
