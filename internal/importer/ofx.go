package importer

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/service"
)

var (
	severityPattern = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagPattern  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// OFXParser reads bank and credit card statements from OFX/QFX files.
// OFX carries no categories, so every row gets the parser's category.
type OFXParser struct {
	category string
}

func NewOFXParser(category string) *OFXParser {
	return &OFXParser{category: category}
}

// preprocess repairs the formatting mistakes banks commonly ship.
func (p *OFXParser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityPattern.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagPattern.ReplaceAllString(content, "$1>")
}

func (p *OFXParser) Parse(ctx context.Context, r io.Reader) ([]service.TransactionCreate, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read ofx: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("parse ofx: %w", err)
	}

	var creates []service.TransactionCreate
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			creates = append(creates, p.convert(stmt.BankTranList.Transactions)...)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			creates = append(creates, p.convert(stmt.BankTranList.Transactions)...)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return creates, nil
}

func (p *OFXParser) convert(txs []ofxgo.Transaction) []service.TransactionCreate {
	creates := make([]service.TransactionCreate, 0, len(txs))
	for _, tx := range txs {
		amount, _ := tx.TrnAmt.Float64()
		creates = append(creates, service.TransactionCreate{
			Date:         tx.DtPosted.Time.Format(service.DateLayout),
			Merchant:     merchantName(tx),
			Amount:       decimal.NewFromFloat(amount),
			CategoryName: p.category,
		})
	}
	return creates
}

// merchantName prefers the payee, then the name, then the memo.
func merchantName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	if name := strings.TrimSpace(string(tx.Name)); name != "" {
		return name
	}
	return strings.TrimSpace(string(tx.Memo))
}
