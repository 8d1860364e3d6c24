// Package importer turns bank exports into transactions ready for the
// bulk create path.
package importer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Format identifies an import file layout.
type Format string

const (
	FormatCSV Format = "csv"
	FormatOFX Format = "ofx"
)

// DetectFormat picks the format from the file extension. Anything that is
// not .ofx or .qfx is read as CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ofx", ".qfx":
		return FormatOFX
	default:
		return FormatCSV
	}
}

// Options controls how rows without a category of their own are filed.
type Options struct {
	DefaultCategory string
}

// ParseFile reads path in the format its extension implies.
func ParseFile(ctx context.Context, path string, opts Options) ([]service.TransactionCreate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	return Parse(ctx, f, DetectFormat(path), opts)
}

func Parse(ctx context.Context, r io.Reader, format Format, opts Options) ([]service.TransactionCreate, error) {
	switch format {
	case FormatOFX:
		return NewOFXParser(opts.DefaultCategory).Parse(ctx, r)
	case FormatCSV:
		return NewCSVParser(opts.DefaultCategory).Parse(ctx, r)
	default:
		return nil, fmt.Errorf("unsupported import format %q", format)
	}
}
