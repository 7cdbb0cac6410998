package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/agbru/anybase/baseconv"
)

func TestNewConversionService(t *testing.T) {
	t.Parallel()

	t.Run("ValidTables", func(t *testing.T) {
		t.Parallel()
		svc, err := NewConversionService(baseconv.TableDecimal, baseconv.TableHex, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.SrcTable() != baseconv.TableDecimal {
			t.Errorf("SrcTable() = %q", svc.SrcTable())
		}
		if svc.DstTable() != baseconv.TableHex {
			t.Errorf("DstTable() = %q", svc.DstTable())
		}
	})

	t.Run("InvalidTable", func(t *testing.T) {
		t.Parallel()
		_, err := NewConversionService("aa", baseconv.TableHex, 0)
		var tableErr *baseconv.InvalidTableError
		if !errors.As(err, &tableErr) {
			t.Fatalf("expected InvalidTableError, got %v", err)
		}
	})
}

func TestConvert(t *testing.T) {
	t.Parallel()
	svc, err := NewConversionService(baseconv.TableHex, baseconv.TableBinary, 10)
	if err != nil {
		t.Fatalf("NewConversionService: %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		t.Parallel()
		got, err := svc.Convert(context.Background(), "ff")
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if got != "11111111" {
			t.Errorf("Convert(ff) = %q, want 11111111", got)
		}
	})

	t.Run("MaxInputExceeded", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Convert(context.Background(), strings.Repeat("f", 11))
		if !errors.Is(err, ErrMaxInputExceeded) {
			t.Errorf("expected ErrMaxInputExceeded, got %v", err)
		}
	})

	t.Run("MaxInputCountsCharacters", func(t *testing.T) {
		t.Parallel()
		// 10 multi-byte characters are within a limit of 10 even though the
		// byte length is larger.
		cjk, err := NewConversionService("你好", baseconv.TableBinary, 10)
		if err != nil {
			t.Fatalf("NewConversionService: %v", err)
		}
		if _, err := cjk.Convert(context.Background(), strings.Repeat("好", 10)); err != nil {
			t.Errorf("10 runes should pass a limit of 10, got %v", err)
		}
	})

	t.Run("CanceledContext", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := svc.Convert(ctx, "ff")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("InvalidDigit", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Convert(context.Background(), "fg")
		var digitErr *baseconv.InvalidDigitError
		if !errors.As(err, &digitErr) {
			t.Fatalf("expected InvalidDigitError, got %v", err)
		}
	})
}

func TestConvertBatch(t *testing.T) {
	t.Parallel()
	svc, err := NewConversionService(baseconv.TableDecimal, baseconv.TableHex, 0)
	if err != nil {
		t.Fatalf("NewConversionService: %v", err)
	}

	t.Run("OrderPreserved", func(t *testing.T) {
		t.Parallel()
		inputs := []string{"255", "16", "0", "4096"}
		want := []string{"ff", "10", "0", "1000"}

		results, err := svc.ConvertBatch(context.Background(), inputs)
		if err != nil {
			t.Fatalf("ConvertBatch: %v", err)
		}
		if len(results) != len(want) {
			t.Fatalf("got %d results, want %d", len(results), len(want))
		}
		for i := range want {
			if results[i] != want[i] {
				t.Errorf("results[%d] = %q, want %q", i, results[i], want[i])
			}
		}
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		t.Parallel()
		results, err := svc.ConvertBatch(context.Background(), nil)
		if err != nil {
			t.Fatalf("ConvertBatch: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected empty results, got %v", results)
		}
	})

	t.Run("FirstErrorAborts", func(t *testing.T) {
		t.Parallel()
		_, err := svc.ConvertBatch(context.Background(), []string{"1", "abc", "2"})
		var digitErr *baseconv.InvalidDigitError
		if !errors.As(err, &digitErr) {
			t.Fatalf("expected InvalidDigitError, got %v", err)
		}
	})

	t.Run("LargeBatch", func(t *testing.T) {
		t.Parallel()
		inputs := make([]string, 200)
		for i := range inputs {
			inputs[i] = "255"
		}
		results, err := svc.ConvertBatch(context.Background(), inputs)
		if err != nil {
			t.Fatalf("ConvertBatch: %v", err)
		}
		for i, r := range results {
			if r != "ff" {
				t.Fatalf("results[%d] = %q, want ff", i, r)
			}
		}
	})
}
