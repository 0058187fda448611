package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntrySource tells where a cashbook entry came from.
type EntrySource string

const (
	EntrySourceManual          EntrySource = "manual"
	EntrySourceCustomerPayment EntrySource = "customer_payment"
)

// LedgerEntry is one dated cash movement in the cashbook.
type LedgerEntry struct {
	ID          string
	Date        string
	CashIn      decimal.Decimal
	CashOut     decimal.Decimal
	Description string
	Reference   string
	Source      EntrySource
	CreatedAt   time.Time
}

// Net returns CashIn - CashOut, treating negative amounts as zero.
func (e LedgerEntry) Net() decimal.Decimal {
	return nonNegative(e.CashIn).Sub(nonNegative(e.CashOut))
}

// IsIncome reports whether the entry carries an inflow.
func (e LedgerEntry) IsIncome() bool {
	return e.CashIn.IsPositive()
}

// IsExpense reports whether the entry carries an outflow.
func (e LedgerEntry) IsExpense() bool {
	return e.CashOut.IsPositive()
}

// Normalize trims text fields and rewrites Date as YYYY-MM-DD.
func (e *LedgerEntry) Normalize() error {
	e.Description = strings.TrimSpace(e.Description)
	e.Reference = strings.TrimSpace(e.Reference)
	if e.Source == "" {
		e.Source = EntrySourceManual
	}

	date, err := NormalizeDate(e.Date)
	if err != nil {
		return err
	}
	e.Date = date

	return nil
}

// Validate checks a manual entry before it is stored.
func (e *LedgerEntry) Validate() error {
	if e.CashIn.IsNegative() || e.CashOut.IsNegative() {
		return fmt.Errorf("%w: cash in and cash out must not be negative", ErrInvalidEntry)
	}

	if !WithinScale(e.CashIn) || !WithinScale(e.CashOut) {
		return fmt.Errorf("%w: amounts have more than %d decimal places", ErrInvalidEntry, AmountScale)
	}

	if !e.CashIn.IsPositive() && !e.CashOut.IsPositive() {
		return fmt.Errorf("%w: either cash in or cash out must be positive", ErrInvalidEntry)
	}

	if e.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidEntry)
	}

	if len(e.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidEntry, MaxDescriptionLength)
	}

	if _, err := NormalizeDate(e.Date); err != nil {
		return err
	}

	return nil
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
