package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one fabric line of a cash memo, costed by FIFO.
type Sale struct {
	ID           string
	FabricID     string
	MemoNumber   string
	CustomerName string
	Color        string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	Revenue      decimal.Decimal
	Cost         decimal.Decimal
	Profit       decimal.Decimal
	Lots         []ConsumedLot
	SoldAt       time.Time
}

// NewSale prices an allocation at unitPrice. Revenue and cost are rounded to
// AmountScale.
func NewSale(id, fabricID string, alloc *Allocation, unitPrice decimal.Decimal, soldAt time.Time) (*Sale, error) {
	if alloc == nil {
		return nil, fmt.Errorf("%w: allocation is required", ErrInvalidQuantity)
	}

	if err := ValidateUnitCost(unitPrice); err != nil {
		return nil, fmt.Errorf("%w: sale price must not be negative", ErrInvalidAmount)
	}

	qty := alloc.Quantity()
	revenue := qty.Mul(unitPrice).Round(AmountScale)
	cost := alloc.TotalCost.Round(AmountScale)

	lots := make([]ConsumedLot, len(alloc.ConsumedLots))
	copy(lots, alloc.ConsumedLots)

	color := ""
	if len(lots) > 0 {
		color = lots[0].Color
	}

	return &Sale{
		ID:        id,
		FabricID:  fabricID,
		Color:     color,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Revenue:   revenue,
		Cost:      cost,
		Profit:    revenue.Sub(cost),
		Lots:      lots,
		SoldAt:    soldAt,
	}, nil
}

// ProfitSummary totals a set of sales.
type ProfitSummary struct {
	SaleCount int
	Quantity  decimal.Decimal
	Revenue   decimal.Decimal
	Cost      decimal.Decimal
	Profit    decimal.Decimal
	// Margin is profit as a percentage of revenue, rounded to two places.
	Margin decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// SummarizeSales computes revenue, cost and profit over sales.
func SummarizeSales(sales []*Sale) ProfitSummary {
	summary := ProfitSummary{
		Quantity: decimal.Zero,
		Revenue:  decimal.Zero,
		Cost:     decimal.Zero,
		Profit:   decimal.Zero,
		Margin:   decimal.Zero,
	}

	for _, s := range sales {
		if s == nil {
			continue
		}
		summary.SaleCount++
		summary.Quantity = summary.Quantity.Add(s.Quantity)
		summary.Revenue = summary.Revenue.Add(s.Revenue)
		summary.Cost = summary.Cost.Add(s.Cost)
	}

	summary.Profit = summary.Revenue.Sub(summary.Cost)
	if summary.Revenue.IsPositive() {
		summary.Margin = summary.Profit.Div(summary.Revenue).Mul(hundred).Round(2)
	}

	return summary
}
