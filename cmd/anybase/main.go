// Command anybase converts digit strings between arbitrary positional
// numeral systems, using caller-supplied alphabet tables or named presets.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/anybase/internal/app"
	apperrors "github.com/agbru/anybase/internal/errors"
)

func main() {
	os.Exit(run(os.Args))
}

// run contains the application logic, separated from main to be testable.
// It returns the process exit code.
func run(args []string) int {
	if app.HasVersionFlag(args[1:]) {
		app.PrintVersion(os.Stdout)
		return apperrors.ExitSuccess
	}

	application, err := app.New(args, os.Stdin, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	return application.Run(context.Background(), os.Stdout)
}
