package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidUnitCost = errors.New("unit cost must not be negative")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidFabric   = errors.New("invalid fabric")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidEntry    = errors.New("invalid cashbook entry")
	ErrInvalidPayment  = errors.New("invalid customer payment")
)

// Validation constants
const (
	MaxFabricNameLength  = 255
	MaxFabricCodeLength  = 64
	MaxColorLength       = 64
	MaxDescriptionLength = 500
	MaxQuantity          = "1000000000"
)

// AmountScale is the number of decimal places stored for quantities and money.
const AmountScale int32 = 4

// DateLayout is the canonical calendar date format used across the cashbook.
const DateLayout = "2006-01-02"

var acceptedDateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// ValidateQuantity validates a stock quantity requested for sale.
func ValidateQuantity(qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return ErrInvalidQuantity
	}

	if !WithinScale(qty) {
		return fmt.Errorf("%w: at most %d decimal places", ErrInvalidQuantity, AmountScale)
	}

	maxQty := decimal.RequireFromString(MaxQuantity)
	if qty.GreaterThan(maxQty) {
		return fmt.Errorf("%w: maximum quantity is %s", ErrInvalidQuantity, MaxQuantity)
	}

	return nil
}

// ValidateUnitCost validates a purchase or sale price per unit.
func ValidateUnitCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return ErrInvalidUnitCost
	}
	if !WithinScale(cost) {
		return fmt.Errorf("%w: at most %d decimal places", ErrInvalidAmount, AmountScale)
	}
	return nil
}

// WithinScale reports whether d is representable with AmountScale decimal places.
func WithinScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(AmountScale))
}

// ValidateFabricName validates fabric name
func ValidateFabricName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidFabric)
	}

	if len(name) > MaxFabricNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidFabric, MaxFabricNameLength)
	}

	return nil
}

// ValidateFabricCode validates the short stock code printed on cash memos.
func ValidateFabricCode(code string) error {
	code = strings.TrimSpace(code)

	if code == "" {
		return fmt.Errorf("%w: code cannot be empty", ErrInvalidFabric)
	}

	if len(code) > MaxFabricCodeLength {
		return fmt.Errorf("%w: code exceeds %d characters", ErrInvalidFabric, MaxFabricCodeLength)
	}

	if strings.ContainsAny(code, " \t\n") {
		return fmt.Errorf("%w: code must not contain whitespace", ErrInvalidFabric)
	}

	return nil
}

// ValidateColor validates a color variant name.
func ValidateColor(color string) error {
	if strings.TrimSpace(color) == "" {
		return fmt.Errorf("%w: color cannot be empty", ErrInvalidColor)
	}

	if len(color) > MaxColorLength {
		return fmt.Errorf("%w: color exceeds %d characters", ErrInvalidColor, MaxColorLength)
	}

	return nil
}

// NormalizeDate parses s using the accepted layouts and returns it as YYYY-MM-DD.
// Timestamps keep the calendar date they were written with.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: date is empty", ErrInvalidDate)
	}

	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ParseDate parses s into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	normalized, err := NormalizeDate(s)
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(DateLayout, normalized)
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
