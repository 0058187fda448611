package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// ConsumedLot is the part of a batch taken by one sale.
type ConsumedLot struct {
	BatchID  string
	Quantity decimal.Decimal
	UnitCost decimal.Decimal
	Color    string
}

// Cost returns Quantity x UnitCost.
func (l ConsumedLot) Cost() decimal.Decimal {
	return l.Quantity.Mul(l.UnitCost)
}

// Allocation is the outcome of a FIFO stock deduction.
// UpdatedBatches holds every batch that took part in the allocation, in FIFO
// order, including batches left untouched or emptied. Batches excluded by the
// color filter are not returned.
type Allocation struct {
	ConsumedLots   []ConsumedLot
	UpdatedBatches []Batch
	TotalCost      decimal.Decimal
}

// Quantity returns the total quantity consumed.
func (a *Allocation) Quantity() decimal.Decimal {
	total := decimal.Zero
	for _, lot := range a.ConsumedLots {
		total = total.Add(lot.Quantity)
	}
	return total
}

// InsufficientStockError reports a request larger than the available stock.
type InsufficientStockError struct {
	Requested decimal.Decimal
	Available decimal.Decimal
	Color     string
}

func (e *InsufficientStockError) Error() string {
	if e.Color != "" {
		return fmt.Sprintf("insufficient stock for color %s: requested %s, available %s", e.Color, e.Requested, e.Available)
	}
	return fmt.Sprintf("insufficient stock: requested %s, available %s", e.Requested, e.Available)
}

// Is makes errors.Is(err, ErrInsufficientStock) match.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// CompareFIFO orders batches oldest purchase first. Batches bought on the same
// instant are ordered by ID.
func CompareFIFO(a, b Batch) int {
	if c := a.PurchaseDate.Compare(b.PurchaseDate); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

type lotCandidate struct {
	batch      Batch
	colorIndex int
	available  decimal.Decimal
}

// AllocateFIFO deducts requested units from batches oldest first.
//
// With a non-empty color only batches stocking that color take part: batches
// partitioned by color contribute the matching color's quantity, unpartitioned
// batches contribute their whole quantity when their own Color matches.
// The input slice and its batches are never modified; on error no partial
// allocation is returned.
func AllocateFIFO(batches []Batch, requested decimal.Decimal, color string) (*Allocation, error) {
	if err := ValidateQuantity(requested); err != nil {
		return nil, err
	}

	candidates := selectCandidates(batches, color)
	slices.SortStableFunc(candidates, func(a, b lotCandidate) int {
		return CompareFIFO(a.batch, b.batch)
	})

	alloc := &Allocation{
		ConsumedLots:   []ConsumedLot{},
		UpdatedBatches: make([]Batch, 0, len(candidates)),
		TotalCost:      decimal.Zero,
	}

	remaining := requested
	for _, c := range candidates {
		if !remaining.IsPositive() || !c.available.IsPositive() {
			alloc.UpdatedBatches = append(alloc.UpdatedBatches, c.batch)
			continue
		}

		used := decimal.Min(remaining, c.available)
		left := c.available.Sub(used)

		switch {
		case c.colorIndex >= 0:
			c.batch.Colors[c.colorIndex].Quantity = left
			c.batch.RecomputeQuantity()
		case c.batch.HasColors():
			deductAcrossColors(&c.batch, used)
		default:
			c.batch.Quantity = left
		}

		alloc.ConsumedLots = append(alloc.ConsumedLots, ConsumedLot{
			BatchID:  c.batch.ID,
			Quantity: used,
			UnitCost: c.batch.UnitCost,
			Color:    color,
		})
		alloc.UpdatedBatches = append(alloc.UpdatedBatches, c.batch)
		alloc.TotalCost = alloc.TotalCost.Add(used.Mul(c.batch.UnitCost))
		remaining = remaining.Sub(used)
	}

	if remaining.IsPositive() {
		return nil, &InsufficientStockError{
			Requested: requested,
			Available: requested.Sub(remaining),
			Color:     color,
		}
	}

	return alloc, nil
}

// selectCandidates clones the batches relevant to color.
func selectCandidates(batches []Batch, color string) []lotCandidate {
	candidates := make([]lotCandidate, 0, len(batches))

	for _, b := range batches {
		c := lotCandidate{batch: b.Clone(), colorIndex: -1}

		switch {
		case color == "" && b.HasColors():
			c.available = b.ColorTotal()
		case color == "":
			c.available = b.Quantity
		case b.HasColors():
			idx := b.ColorIndex(color)
			if idx < 0 {
				continue
			}
			c.colorIndex = idx
			c.available = b.Colors[idx].Quantity
		case b.Color == color:
			c.available = b.Quantity
		default:
			continue
		}

		if c.available.IsNegative() {
			c.available = decimal.Zero
		}

		candidates = append(candidates, c)
	}

	return candidates
}

// deductAcrossColors takes qty from the color entries in their stored order so
// that the partition keeps summing to Quantity. The caller guarantees qty does
// not exceed the color total.
func deductAcrossColors(b *Batch, qty decimal.Decimal) {
	remaining := qty
	for i := range b.Colors {
		if !remaining.IsPositive() {
			break
		}
		if !b.Colors[i].Quantity.IsPositive() {
			continue
		}
		used := decimal.Min(remaining, b.Colors[i].Quantity)
		b.Colors[i].Quantity = b.Colors[i].Quantity.Sub(used)
		remaining = remaining.Sub(used)
	}
	b.RecomputeQuantity()
}

// MergeBatches overlays updated onto all by ID, keeping the order of all.
func MergeBatches(all, updated []Batch) []Batch {
	byID := make(map[string]Batch, len(updated))
	for _, b := range updated {
		byID[b.ID] = b
	}

	merged := make([]Batch, 0, len(all))
	for _, b := range all {
		if u, ok := byID[b.ID]; ok {
			merged = append(merged, u.Clone())
			continue
		}
		merged = append(merged, b.Clone())
	}

	return merged
}
