// Package cli provides output utilities for presenting and exporting
// conversion results.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/agbru/anybase/internal/config"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full result value regardless of length.
	Verbose bool
}

// TruncateResult shortens a long result for terminal display, keeping
// DisplayEdges characters at each end. Truncation counts characters, not
// bytes, so multi-byte alphabets are cut on character boundaries.
//
// Parameters:
//   - result: The converted digit string.
//
// Returns:
//   - string: The possibly truncated display form.
func TruncateResult(result string) string {
	n := utf8.RuneCountInString(result)
	if n <= TruncationLimit {
		return result
	}
	runes := []rune(result)
	return fmt.Sprintf("%s...%s (%d digits)",
		string(runes[:DisplayEdges]), string(runes[n-DisplayEdges:]), n)
}

// PrintExecutionConfig displays the conversion parameters before the run:
// both tables (truncated if enormous) and their bases.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for the display.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "%sConversion%s: base %s%d%s -> base %s%d%s\n",
		ColorBold(), ColorReset(),
		ColorMagenta(), utf8.RuneCountInString(cfg.SrcTable), ColorReset(),
		ColorMagenta(), utf8.RuneCountInString(cfg.DstTable), ColorReset())
	fmt.Fprintf(out, "  source table:      %s\n", TruncateResult(cfg.SrcTable))
	fmt.Fprintf(out, "  destination table: %s\n", TruncateResult(cfg.DstTable))
}

// DisplayResult prints a conversion result with its timing.
// Long results are truncated unless verbose output is requested.
//
// Parameters:
//   - out: The writer for the display.
//   - input: The original input string.
//   - result: The converted string.
//   - duration: The conversion duration.
//   - cfg: The output configuration.
func DisplayResult(out io.Writer, input, result string, duration time.Duration, cfg OutputConfig) {
	shown := result
	if !cfg.Verbose {
		shown = TruncateResult(result)
	}
	fmt.Fprintf(out, "%s%s%s = %s%s%s\n",
		ColorCyan(), TruncateResult(input), ColorReset(),
		ColorGreen(), shown, ColorReset())
	fmt.Fprintf(out, "%sDuration%s: %s\n", ColorBold(), ColorReset(), FormatExecutionDuration(duration))
}

// DisplayQuietResult prints only the converted string, for scripting.
//
// Parameters:
//   - out: The writer for the display.
//   - result: The converted string.
func DisplayQuietResult(out io.Writer, result string) {
	fmt.Fprintln(out, result)
}

// WriteResultToFile writes a conversion result to a file with a small
// metadata header. The full result is always written, regardless of the
// terminal truncation settings.
//
// Parameters:
//   - input: The original input string.
//   - result: The converted string.
//   - srcTable: The source digit table.
//   - dstTable: The destination digit table.
//   - duration: The conversion duration.
//   - cfg: Output configuration; cfg.OutputFile must be non-empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(input, result, srcTable, dstTable string, duration time.Duration, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Base Conversion Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Source base: %d\n", utf8.RuneCountInString(srcTable))
	fmt.Fprintf(file, "# Destination base: %d\n", utf8.RuneCountInString(dstTable))
	fmt.Fprintf(file, "# Input digits: %d\n", utf8.RuneCountInString(input))
	fmt.Fprintf(file, "# Output digits: %d\n", utf8.RuneCountInString(result))
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "\n%s\n", result)

	return nil
}
