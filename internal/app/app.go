package app

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/agbru/anybase/internal/cli"
	"github.com/agbru/anybase/internal/config"
	apperrors "github.com/agbru/anybase/internal/errors"
	"github.com/agbru/anybase/internal/server"
	"github.com/agbru/anybase/internal/service"
	"github.com/agbru/anybase/internal/ui"
)

// Application represents the anybase application instance.
// It encapsulates the configuration and provides methods to run the
// application in its two modes (CLI conversion, HTTP server).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// In is the reader used when no input flag was supplied (typically
	// os.Stdin), allowing values to be piped into the CLI.
	In io.Reader
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or
// validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - in: The reader consulted for input when the -i flag is absent.
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, in io.Reader, errWriter io.Writer) (*Application, error) {
	// args[0] is program name, args[1:] are the actual arguments
	programName := "anybase"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		In:        in,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
// It dispatches to the server or to the CLI conversion path.
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Initialize CLI theme (respects --no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	if a.Config.ServerMode {
		return a.runServer()
	}

	return a.runConvert(ctx, out)
}

// runServer starts the HTTP server mode.
func (a *Application) runServer() int {
	srv := server.NewServer(a.Config)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runConvert orchestrates the execution of the CLI conversion command.
func (a *Application) runConvert(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	input, err := a.resolveInput()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error reading input: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	svc, err := service.NewConversionService(a.Config.SrcTable, a.Config.DstTable, a.Config.MaxInputLen)
	if err != nil {
		return apperrors.HandleConversionError(err, a.ErrWriter, cli.Colors())
	}

	if !a.Config.JSONOutput && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	// Animate long conversions; short ones would only flicker.
	spin := cli.NewNopSpinner()
	if !a.Config.Quiet && !a.Config.JSONOutput && utf8.RuneCountInString(input) >= cli.SpinnerInputThreshold {
		spin = cli.NewSpinner(a.ErrWriter, utf8.RuneCountInString(input))
	}

	spin.Start()
	start := time.Now()
	result, err := svc.Convert(ctx, input)
	duration := time.Since(start)
	spin.Stop()

	if err != nil {
		return apperrors.HandleConversionError(err, a.ErrWriter, cli.Colors())
	}

	if a.Config.JSONOutput {
		return a.printJSONResult(input, result, duration, out)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}

	if outputCfg.Quiet {
		cli.DisplayQuietResult(out, result)
	} else {
		cli.DisplayResult(out, input, result, duration, outputCfg)
	}

	if outputCfg.OutputFile != "" {
		if err := cli.WriteResultToFile(input, result, a.Config.SrcTable, a.Config.DstTable, duration, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !outputCfg.Quiet {
			fmt.Fprintf(out, "%s✓ Result saved to: %s%s%s\n",
				cli.ColorGreen(), cli.ColorCyan(), outputCfg.OutputFile, cli.ColorReset())
		}
	}

	return apperrors.ExitSuccess
}

// resolveInput returns the digit string to convert: the -i flag when set,
// otherwise the first line read from the input reader. Piped input makes the
// CLI composable with other tools.
func (a *Application) resolveInput() (string, error) {
	if a.Config.Input != "" {
		return a.Config.Input, nil
	}
	if a.In == nil {
		return "", errors.New("no input provided")
	}
	reader := bufio.NewReader(a.In)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("no input provided")
	}
	return line, nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with success
// after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// jsonResult represents a conversion result in JSON format.
type jsonResult struct {
	Input    string `json:"input"`
	Result   string `json:"result"`
	SrcBase  int    `json:"src_base"`
	DstBase  int    `json:"dst_base"`
	Duration string `json:"duration"`
}

// printJSONResult formats the conversion result as JSON and writes it to the
// output. This is useful for programmatic consumption of the results.
func (a *Application) printJSONResult(input, result string, duration time.Duration, out io.Writer) int {
	output := jsonResult{
		Input:    input,
		Result:   result,
		SrcBase:  utf8.RuneCountInString(a.Config.SrcTable),
		DstBase:  utf8.RuneCountInString(a.Config.DstTable),
		Duration: duration.String(),
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
