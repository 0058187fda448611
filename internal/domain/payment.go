package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerPayment is money received against a cash memo.
type CustomerPayment struct {
	ID           string
	CustomerName string
	MemoNumber   string
	Amount       decimal.Decimal
	Date         string
	Note         string
	CreatedAt    time.Time
}

// Validate checks the payment before it is stored.
func (p *CustomerPayment) Validate() error {
	if strings.TrimSpace(p.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidPayment)
	}

	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidPayment)
	}

	if !WithinScale(p.Amount) {
		return fmt.Errorf("%w: amount has more than %d decimal places", ErrInvalidPayment, AmountScale)
	}

	if _, err := NormalizeDate(p.Date); err != nil {
		return err
	}

	return nil
}

// ToLedgerEntry derives the cash-in entry the payment contributes to the cashbook.
func (p CustomerPayment) ToLedgerEntry() LedgerEntry {
	description := "Payment from " + strings.TrimSpace(p.CustomerName)
	if note := strings.TrimSpace(p.Note); note != "" {
		description += " - " + note
	}

	return LedgerEntry{
		ID:          p.ID,
		Date:        p.Date,
		CashIn:      p.Amount,
		CashOut:     decimal.Zero,
		Description: description,
		Reference:   p.MemoNumber,
		Source:      EntrySourceCustomerPayment,
		CreatedAt:   p.CreatedAt,
	}
}

// PaymentsToLedgerEntries converts payments into cashbook entries.
func PaymentsToLedgerEntries(payments []*CustomerPayment) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(payments))
	for _, p := range payments {
		if p == nil {
			continue
		}
		entries = append(entries, p.ToLedgerEntry())
	}
	return entries
}
