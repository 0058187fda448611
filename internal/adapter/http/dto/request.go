package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

// CreateFabricRequest represents a request to add a fabric to the catalog.
type CreateFabricRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateFabricRequest) ToUseCaseInput() usecase.CreateFabricInput {
	return usecase.CreateFabricInput{
		Name:     r.Name,
		Code:     r.Code,
		Category: r.Category,
		Unit:     r.Unit,
	}
}

// ColorQuantityRequest is one color variant of a purchased batch.
type ColorQuantityRequest struct {
	Color    string `json:"color"`
	Quantity string `json:"quantity"`
}

// AddBatchRequest represents a stock purchase.
// Quantity may be omitted when Colors is given.
type AddBatchRequest struct {
	PurchaseDate string                 `json:"purchase_date"`
	UnitCost     string                 `json:"unit_cost"`
	Quantity     string                 `json:"quantity,omitempty"`
	Color        string                 `json:"color,omitempty"`
	Colors       []ColorQuantityRequest `json:"colors,omitempty"`
	SupplierName string                 `json:"supplier_name,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *AddBatchRequest) ToUseCaseInput(fabricID string) (usecase.AddBatchInput, error) {
	purchaseDate, err := domain.ParseDate(r.PurchaseDate)
	if err != nil {
		return usecase.AddBatchInput{}, err
	}

	unitCost, err := parseDecimal("unit_cost", r.UnitCost, true)
	if err != nil {
		return usecase.AddBatchInput{}, err
	}

	quantity, err := parseDecimal("quantity", r.Quantity, len(r.Colors) == 0)
	if err != nil {
		return usecase.AddBatchInput{}, err
	}

	var colors []domain.ColorQuantity
	for _, c := range r.Colors {
		qty, err := parseDecimal("colors.quantity", c.Quantity, true)
		if err != nil {
			return usecase.AddBatchInput{}, err
		}
		colors = append(colors, domain.ColorQuantity{Color: c.Color, Quantity: qty})
	}

	return usecase.AddBatchInput{
		FabricID:     fabricID,
		PurchaseDate: purchaseDate,
		UnitCost:     unitCost,
		Quantity:     quantity,
		Color:        r.Color,
		Colors:       colors,
		SupplierName: r.SupplierName,
	}, nil
}

// SellRequest represents one fabric line of a cash memo.
type SellRequest struct {
	Quantity     string     `json:"quantity"`
	UnitPrice    string     `json:"unit_price"`
	Color        string     `json:"color,omitempty"`
	MemoNumber   string     `json:"memo_number,omitempty"`
	CustomerName string     `json:"customer_name,omitempty"`
	SoldAt       *time.Time `json:"sold_at,omitempty"`
}

// ToUseCaseInput converts to use case input. UnitPrice may be omitted for a
// preview.
func (r *SellRequest) ToUseCaseInput(fabricID string) (usecase.SellInput, error) {
	quantity, err := parseDecimal("quantity", r.Quantity, true)
	if err != nil {
		return usecase.SellInput{}, err
	}

	unitPrice, err := parseDecimal("unit_price", r.UnitPrice, false)
	if err != nil {
		return usecase.SellInput{}, err
	}

	return usecase.SellInput{
		FabricID:     fabricID,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		Color:        r.Color,
		MemoNumber:   r.MemoNumber,
		CustomerName: r.CustomerName,
		SoldAt:       r.SoldAt,
	}, nil
}

// CreateEntryRequest represents a manual cashbook entry.
type CreateEntryRequest struct {
	Date        string `json:"date"`
	CashIn      string `json:"cash_in,omitempty"`
	CashOut     string `json:"cash_out,omitempty"`
	Description string `json:"description"`
	Reference   string `json:"reference,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntryRequest) ToUseCaseInput() (usecase.CreateEntryInput, error) {
	cashIn, err := parseDecimal("cash_in", r.CashIn, false)
	if err != nil {
		return usecase.CreateEntryInput{}, err
	}

	cashOut, err := parseDecimal("cash_out", r.CashOut, false)
	if err != nil {
		return usecase.CreateEntryInput{}, err
	}

	return usecase.CreateEntryInput{
		Date:        r.Date,
		CashIn:      cashIn,
		CashOut:     cashOut,
		Description: r.Description,
		Reference:   r.Reference,
	}, nil
}

// RecordPaymentRequest represents money received from a customer.
type RecordPaymentRequest struct {
	CustomerName string `json:"customer_name"`
	MemoNumber   string `json:"memo_number,omitempty"`
	Amount       string `json:"amount"`
	Date         string `json:"date"`
	Note         string `json:"note,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordPaymentRequest) ToUseCaseInput() (usecase.RecordPaymentInput, error) {
	amount, err := parseDecimal("amount", r.Amount, true)
	if err != nil {
		return usecase.RecordPaymentInput{}, err
	}

	return usecase.RecordPaymentInput{
		CustomerName: r.CustomerName,
		MemoNumber:   r.MemoNumber,
		Amount:       amount,
		Date:         r.Date,
		Note:         r.Note,
	}, nil
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func parseDecimal(field, value string, required bool) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		if required {
			return decimal.Zero, fmt.Errorf("%w: %s is required", domain.ErrInvalidAmount, field)
		}
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s: %q is not a number", domain.ErrInvalidAmount, field, value)
	}

	return d, nil
}
