package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ColorQuantity is the stock of one color variant inside a batch.
type ColorQuantity struct {
	Color    string
	Quantity decimal.Decimal
}

// Batch represents one purchase lot of a fabric.
// When Colors is non-empty, Quantity equals the sum of the color quantities.
type Batch struct {
	ID           string
	FabricID     string
	PurchaseDate time.Time
	UnitCost     decimal.Decimal
	Quantity     decimal.Decimal
	Color        string
	Colors       []ColorQuantity
	SupplierName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Clone returns a deep copy of the batch.
func (b Batch) Clone() Batch {
	c := b
	if b.Colors != nil {
		c.Colors = make([]ColorQuantity, len(b.Colors))
		copy(c.Colors, b.Colors)
	}
	return c
}

// HasColors reports whether the batch is partitioned by color.
func (b Batch) HasColors() bool {
	return len(b.Colors) > 0
}

// ColorIndex returns the index of color in Colors, or -1.
func (b Batch) ColorIndex(color string) int {
	for i, c := range b.Colors {
		if c.Color == color {
			return i
		}
	}
	return -1
}

// ColorTotal returns the sum of the color quantities.
func (b Batch) ColorTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Colors {
		total = total.Add(c.Quantity)
	}
	return total
}

// RecomputeQuantity sets Quantity from the color partition.
func (b *Batch) RecomputeQuantity() {
	if b.HasColors() {
		b.Quantity = b.ColorTotal()
	}
}

// Value returns the cost value of the remaining stock.
func (b Batch) Value() decimal.Decimal {
	return b.Quantity.Mul(b.UnitCost)
}

// Normalize merges duplicate colors, trims names and derives Quantity from
// the color partition when one is present.
func (b *Batch) Normalize() {
	b.Color = strings.TrimSpace(b.Color)
	b.SupplierName = strings.TrimSpace(b.SupplierName)

	if !b.HasColors() {
		b.Colors = nil
		return
	}

	merged := make([]ColorQuantity, 0, len(b.Colors))
	index := make(map[string]int, len(b.Colors))
	for _, c := range b.Colors {
		name := strings.TrimSpace(c.Color)
		if i, ok := index[name]; ok {
			merged[i].Quantity = merged[i].Quantity.Add(c.Quantity)
			continue
		}
		index[name] = len(merged)
		merged = append(merged, ColorQuantity{Color: name, Quantity: c.Quantity})
	}

	b.Colors = merged
	b.RecomputeQuantity()
}

// NewBatch returns a normalized, validated copy of a purchased batch.
func NewBatch(in Batch) (*Batch, error) {
	b := in.Clone()
	b.Normalize()

	if err := b.Validate(); err != nil {
		return nil, err
	}

	return &b, nil
}

// Validate checks a newly purchased batch.
func (b *Batch) Validate() error {
	if b.FabricID == "" {
		return fmt.Errorf("%w: batch must belong to a fabric", ErrInvalidFabric)
	}

	if b.PurchaseDate.IsZero() {
		return fmt.Errorf("%w: purchase date is required", ErrInvalidDate)
	}

	if err := ValidateUnitCost(b.UnitCost); err != nil {
		return err
	}

	for _, c := range b.Colors {
		if err := ValidateColor(c.Color); err != nil {
			return err
		}
		if c.Quantity.IsNegative() {
			return fmt.Errorf("%w: color %s has negative quantity", ErrInvalidQuantity, c.Color)
		}
		if !WithinScale(c.Quantity) {
			return fmt.Errorf("%w: color %s has more than %d decimal places", ErrInvalidQuantity, c.Color, AmountScale)
		}
	}

	if b.HasColors() && !b.Quantity.Equal(b.ColorTotal()) {
		return fmt.Errorf("%w: quantity %s does not match color total %s", ErrInvalidQuantity, b.Quantity, b.ColorTotal())
	}

	return ValidateQuantity(b.Quantity)
}

// StockSummary aggregates the remaining stock of a fabric.
type StockSummary struct {
	BatchCount    int
	TotalQuantity decimal.Decimal
	TotalValue    decimal.Decimal
	Colors        []ColorQuantity
}

// SummarizeStock totals quantity and cost value over batches.
// Colors are reported sorted by name; uncolored stock is not listed there.
func SummarizeStock(batches []Batch) StockSummary {
	summary := StockSummary{
		TotalQuantity: decimal.Zero,
		TotalValue:    decimal.Zero,
		Colors:        []ColorQuantity{},
	}

	byColor := make(map[string]decimal.Decimal)
	for _, b := range batches {
		summary.BatchCount++
		summary.TotalQuantity = summary.TotalQuantity.Add(b.Quantity)
		summary.TotalValue = summary.TotalValue.Add(b.Value())

		switch {
		case b.HasColors():
			for _, c := range b.Colors {
				byColor[c.Color] = byColor[c.Color].Add(c.Quantity)
			}
		case b.Color != "":
			byColor[b.Color] = byColor[b.Color].Add(b.Quantity)
		}
	}

	for color, qty := range byColor {
		summary.Colors = append(summary.Colors, ColorQuantity{Color: color, Quantity: qty})
	}
	sort.Slice(summary.Colors, func(i, j int) bool {
		return summary.Colors[i].Color < summary.Colors[j].Color
	})

	return summary
}
