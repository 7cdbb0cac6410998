// The cli package provides functions for building the command-line interface
// of the base conversion application. It handles the progress display for
// long-running conversions and formats the results for a clear and readable
// presentation.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/anybase/internal/ui"
	"github.com/briandowns/spinner"
)

const (
	// TruncationLimit is the character threshold from which a result is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of characters to display at the
	// beginning and end of a truncated result.
	DisplayEdges = 25
	// SpinnerRefreshRate defines the refresh frequency of the progress
	// spinner shown for large conversions.
	SpinnerRefreshRate = 100 * time.Millisecond
	// SpinnerInputThreshold is the input length in characters above which a
	// progress spinner is shown; below it conversions finish too quickly to
	// be worth animating.
	SpinnerInputThreshold = 10_000
)

// Color functions return ANSI escape codes from the current theme.
// They delegate to the ui package to reduce coupling.

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return ui.GetCurrentTheme().Reset }

// ColorRed returns the error color from the current theme.
func ColorRed() string { return ui.GetCurrentTheme().Error }

// ColorGreen returns the success color from the current theme.
func ColorGreen() string { return ui.GetCurrentTheme().Success }

// ColorYellow returns the warning color from the current theme.
func ColorYellow() string { return ui.GetCurrentTheme().Warning }

// ColorMagenta returns the info color from the current theme.
func ColorMagenta() string { return ui.GetCurrentTheme().Info }

// ColorCyan returns the secondary color from the current theme.
func ColorCyan() string { return ui.GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code from the current theme.
func ColorBold() string { return ui.GetCurrentTheme().Bold }

// colorProvider adapts the theme colors to the apperrors.ColorProvider
// interface without importing cli from apperrors.
type colorProvider struct{}

func (colorProvider) Yellow() string { return ColorYellow() }
func (colorProvider) Red() string    { return ColorRed() }
func (colorProvider) Reset() string  { return ColorReset() }

// Colors returns a provider of the current theme's colors for use by the
// error handler.
func Colors() colorProvider { return colorProvider{} }

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the decoupling of the progress display from a specific spinner
// implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps the spinner library behind the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() { rs.s.Start() }

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the text displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// NewSpinner creates a terminal spinner writing to out, suffixed with a
// description of the conversion in flight.
//
// Parameters:
//   - out: The writer for the spinner animation (normally a terminal).
//   - inputLen: The input length in characters, shown in the suffix.
//
// Returns:
//   - Spinner: A started-on-demand spinner; the caller owns Start/Stop.
func NewSpinner(out io.Writer, inputLen int) Spinner {
	s := spinner.New(spinner.CharSets[14], SpinnerRefreshRate, spinner.WithWriter(out))
	s.Suffix = fmt.Sprintf(" converting %d digits...", inputLen)
	return &realSpinner{s: s}
}

// nopSpinner implements Spinner with no output, for quiet mode and tests.
type nopSpinner struct{}

func (nopSpinner) Start()              {}
func (nopSpinner) Stop()               {}
func (nopSpinner) UpdateSuffix(string) {}

// NewNopSpinner returns a Spinner that displays nothing.
func NewNopSpinner() Spinner { return nopSpinner{} }

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise. This provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
