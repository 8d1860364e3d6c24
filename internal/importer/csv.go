package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// ErrMissingColumn is returned when the CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// CSVParser reads the same layout the browser client downloads:
// date,merchant,amount,category with a header row. Columns may appear in
// any order, and description is accepted in place of merchant.
type CSVParser struct {
	defaultCategory string
}

func NewCSVParser(defaultCategory string) *CSVParser {
	return &CSVParser{defaultCategory: defaultCategory}
}

func (p *CSVParser) Parse(ctx context.Context, r io.Reader) ([]service.TransactionCreate, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}
	if _, ok := columns["merchant"]; !ok {
		if idx, ok := columns["description"]; ok {
			columns["merchant"] = idx
		}
	}
	for _, required := range []string{"date", "merchant", "amount"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}
	categoryIdx, hasCategory := columns["category"]

	var creates []service.TransactionCreate
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := reader.FieldPos(0)

		field := func(idx int) string {
			if idx < len(record) {
				return strings.TrimSpace(record[idx])
			}
			return ""
		}

		if strings.Join(record, "") == "" {
			continue
		}

		amount, err := decimal.NewFromString(strings.ReplaceAll(field(columns["amount"]), ",", ""))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q: %w", line, field(columns["amount"]), err)
		}

		category := p.defaultCategory
		if hasCategory {
			if c := field(categoryIdx); c != "" {
				category = c
			}
		}

		creates = append(creates, service.TransactionCreate{
			Date:         field(columns["date"]),
			Merchant:     field(columns["merchant"]),
			Amount:       amount,
			CategoryName: category,
		})
	}

	return creates, nil
}
