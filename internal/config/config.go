// Package config provides the configuration management for the anybase
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/agbru/anybase/baseconv"
	apperrors "github.com/agbru/anybase/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by anybase.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "ANYBASE_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultSrcTable is the default source table (a preset name or literal table).
	DefaultSrcTable = "decimal"
	// DefaultDstTable is the default destination table (a preset name or literal table).
	DefaultDstTable = "hex"
	// DefaultTimeout is the default conversion timeout. Conversions are pure
	// CPU work with no suspension point, so the timeout is enforced around
	// the call, not inside it.
	DefaultTimeout = 30 * time.Second
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultMaxInputLen is the default cap on input length in characters.
	// The conversion cost grows quadratically with input length, so an
	// unbounded input is a denial-of-service vector in server mode.
	DefaultMaxInputLen = 1_000_000
)

// presetTables maps the preset names accepted by -src/-dst to their digit
// tables.
var presetTables = map[string]string{
	"binary":  baseconv.TableBinary,
	"octal":   baseconv.TableOctal,
	"decimal": baseconv.TableDecimal,
	"hex":     baseconv.TableHex,
}

// ResolveTable resolves a -src/-dst flag value to a digit table: preset names
// map to their tables, anything else is taken as a literal table.
//
// Parameters:
//   - value: The flag value (preset name or literal table).
//
// Returns:
//   - string: The digit table to use.
func ResolveTable(value string) string {
	if table, ok := presetTables[value]; ok {
		return table
	}
	return value
}

// PresetNames returns the accepted preset table names, for help text and the
// server's table listing endpoint.
//
// Returns:
//   - []string: The preset names in a stable order.
func PresetNames() []string {
	return []string{"binary", "octal", "decimal", "hex"}
}

// PresetTable returns the digit table for a preset name.
//
// Parameters:
//   - name: The preset name.
//
// Returns:
//   - string: The digit table.
//   - bool: false when the name is not a preset.
func PresetTable(name string) (string, bool) {
	table, ok := presetTables[name]
	return table, ok
}

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the digit tables to use, to server parameters.
type AppConfig struct {
	// Input is the digit string to convert in CLI mode.
	Input string
	// SrcTable is the source digit table, after preset resolution.
	SrcTable string
	// DstTable is the destination digit table, after preset resolution.
	DstTable string
	// Inverse, if true, swaps the source and destination tables before
	// converting.
	Inverse bool
	// Timeout sets the maximum duration for a conversion.
	Timeout time.Duration
	// MaxInputLen caps the input length in characters (0 for no limit).
	MaxInputLen int
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses progress display and informational messages.
	Quiet bool
	// Verbose, if true, displays the full result even when very long.
	Verbose bool
}

// Validate checks the semantic consistency of the configuration parameters.
// Table contents themselves are validated by the conversion layer; this only
// checks process-level settings.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.MaxInputLen < 0 {
		return apperrors.NewConfigError("max input length cannot be negative: %d", c.MaxInputLen)
	}
	if c.ServerMode && c.Port == "" {
		return apperrors.NewConfigError("server mode requires a port")
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// and handles the parsing process. After parsing, it resolves table presets,
// applies environment variable overrides and validates the resulting
// configuration.
//
// The function is designed to be testable by allowing the input arguments and
// output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Input, "input", "", "Digit string to convert (over the source table).")
	fs.StringVar(&config.Input, "i", "", "Digit string to convert (shorthand).")
	fs.StringVar(&config.SrcTable, "src", DefaultSrcTable, "Source table: a preset (binary, octal, decimal, hex) or a literal digit table.")
	fs.StringVar(&config.DstTable, "dst", DefaultDstTable, "Destination table: a preset or a literal digit table.")
	fs.BoolVar(&config.Inverse, "inverse", false, "Swap the source and destination tables before converting.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the conversion.")
	fs.IntVar(&config.MaxInputLen, "max-input", DefaultMaxInputLen, "Maximum input length in characters (0 for no limit).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "v", false, "Display the full result value (can be very long).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.SrcTable = ResolveTable(config.SrcTable)
	config.DstTable = ResolveTable(config.DstTable)
	if config.Inverse {
		config.SrcTable, config.DstTable = config.DstTable, config.SrcTable
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}

// setCustomUsage installs a usage message listing flags and examples.
func setCustomUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: %s [options]\n\n", fs.Name())
		fmt.Fprintf(out, "Convert a digit string between arbitrary numeral bases.\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  %s -i ff -src hex -dst octal\n", fs.Name())
		fmt.Fprintf(out, "  %s -i 1010 -src 01 -dst 0123456789\n", fs.Name())
		fmt.Fprintf(out, "  %s -i 101010 -src binary -dst 你好世界\n", fs.Name())
		fmt.Fprintf(out, "  %s -server -port 8080\n", fs.Name())
	}
}
