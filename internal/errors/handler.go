package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/agbru/anybase/baseconv"
)

// ColorProvider defines the interface for obtaining terminal color codes.
// This abstraction breaks the import cycle with cli.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Red() string    { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// HandleConversionError formats and prints an error from a failed conversion,
// distinguishing between error classes (invalid table, invalid digit,
// timeout, cancellation, generic) to give the user specific feedback.
//
// Parameters:
//   - err: The error that occurred.
//   - out: The io.Writer to which the error message will be written.
//   - colors: Provider for terminal color codes (can be nil for no colors).
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleConversionError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	if colors == nil {
		colors = DefaultColorProvider{}
	}

	var tableErr *baseconv.InvalidTableError
	var digitErr *baseconv.InvalidDigitError

	switch {
	case errors.As(err, &tableErr):
		fmt.Fprintf(out, "%sStatus: Invalid table.%s %v\n", colors.Red(), colors.Reset(), tableErr)
		return ExitErrorInput
	case errors.As(err, &digitErr):
		fmt.Fprintf(out, "%sStatus: Invalid input.%s %v\n", colors.Red(), colors.Reset(), digitErr)
		return ExitErrorInput
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached.\n")
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled.%s\n", colors.Yellow(), colors.Reset())
		return ExitErrorCanceled
	default:
		fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
		return ExitErrorGeneric
	}
}
