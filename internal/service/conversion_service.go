// Package service contains the application-facing conversion service shared
// by the CLI and the HTTP server. It centralizes input validation and batch
// execution around the baseconv library.
package service

import (
	"context"
	"errors"
	"runtime"
	"unicode/utf8"

	"github.com/agbru/anybase/baseconv"
	"golang.org/x/sync/errgroup"
)

// ErrMaxInputExceeded is returned when an input exceeds the configured
// maximum length. The conversion cost is quadratic in the input length, so
// the limit protects the server from resource exhaustion.
var ErrMaxInputExceeded = errors.New("maximum input length exceeded")

// Service defines the interface for conversion services.
// This abstraction enables dependency injection and easier testing/mocking.
type Service interface {
	// Convert transforms a single input through the configured tables.
	//
	// Parameters:
	//   - ctx: The context; checked before the conversion starts.
	//   - input: The digit string over the source table.
	//
	// Returns:
	//   - string: The converted digit string.
	//   - error: An error if validation or conversion fails.
	Convert(ctx context.Context, input string) (string, error)

	// ConvertBatch transforms several inputs through the same tables,
	// concurrently. Results are returned in input order.
	ConvertBatch(ctx context.Context, inputs []string) ([]string, error)

	// SrcTable returns the source table in use.
	SrcTable() string

	// DstTable returns the destination table in use.
	DstTable() string
}

// ConversionService handles the core logic for executing conversions.
// It centralizes input-length validation and holds the immutable Converter,
// which is safe for the concurrent use ConvertBatch makes of it.
// Implements the Service interface.
type ConversionService struct {
	converter   *baseconv.Converter
	maxInputLen int
}

// Ensure ConversionService implements Service interface.
var _ Service = (*ConversionService)(nil)

// NewConversionService creates a new instance of ConversionService.
// Table validation happens here, at construction, so a returned service can
// never fail on its tables later.
//
// Parameters:
//   - srcTable: The source digit table.
//   - dstTable: The destination digit table.
//   - maxInputLen: The maximum allowed input length in characters (0 for no
//     limit).
//
// Returns:
//   - *ConversionService: The service.
//   - error: An *baseconv.InvalidTableError if a table is invalid.
func NewConversionService(srcTable, dstTable string, maxInputLen int) (*ConversionService, error) {
	converter, err := baseconv.NewConverter(srcTable, dstTable)
	if err != nil {
		return nil, err
	}
	return &ConversionService{
		converter:   converter,
		maxInputLen: maxInputLen,
	}, nil
}

// Convert validates the input length and executes the conversion.
//
// Parameters:
//   - ctx: The context; a conversion is synchronous CPU work, so cancellation
//     is honored at the entry point rather than mid-computation.
//   - input: The digit string over the source table.
//
// Returns:
//   - string: The converted digit string.
//   - error: ErrMaxInputExceeded, a context error, or a conversion error.
func (s *ConversionService) Convert(ctx context.Context, input string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.maxInputLen > 0 && utf8.RuneCountInString(input) > s.maxInputLen {
		return "", ErrMaxInputExceeded
	}
	return s.converter.Convert(input)
}

// ConvertBatch converts every input through the shared Converter, fanning the
// work out across CPUs. The first error aborts the batch; on success the
// returned slice holds the results in input order.
//
// Parameters:
//   - ctx: The context; cancellation stops unstarted conversions.
//   - inputs: The digit strings to convert.
//
// Returns:
//   - []string: The converted strings, index-aligned with inputs.
//   - error: The first validation or conversion error encountered.
func (s *ConversionService) ConvertBatch(ctx context.Context, inputs []string) ([]string, error) {
	results := make([]string, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			out, err := s.Convert(ctx, input)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SrcTable returns the source digit table in use.
func (s *ConversionService) SrcTable() string { return s.converter.SrcTable() }

// DstTable returns the destination digit table in use.
func (s *ConversionService) DstTable() string { return s.converter.DstTable() }
