package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
)

// ReconciliationUseCase checks stored stock and sales against their invariants.
type ReconciliationUseCase struct {
	fabricRepo FabricRepository
	batchRepo  BatchRepository
	saleRepo   SaleRepository
}

// NewReconciliationUseCase creates a new reconciliation use case
func NewReconciliationUseCase(
	fabricRepo FabricRepository,
	batchRepo BatchRepository,
	saleRepo SaleRepository,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		fabricRepo: fabricRepo,
		batchRepo:  batchRepo,
		saleRepo:   saleRepo,
	}
}

// Discrepancy describes one record that violates a stock or sale invariant.
type Discrepancy struct {
	Kind     string
	ID       string
	Expected decimal.Decimal
	Actual   decimal.Decimal
	Reason   string
}

// Discrepancy kinds.
const (
	DiscrepancyBatch = "batch"
	DiscrepancySale  = "sale"
)

// StockReconciliation is the result of checking one fabric's batches.
type StockReconciliation struct {
	FabricID      string
	BatchCount    int
	TotalQuantity decimal.Decimal
	Discrepancies []Discrepancy
	IsReconciled  bool
	LastChecked   time.Time
}

// ReconcileFabric verifies that no batch is negative and that every color
// partition sums to its batch quantity.
func (uc *ReconciliationUseCase) ReconcileFabric(ctx context.Context, fabricID string) (*StockReconciliation, error) {
	batches, err := uc.batchRepo.ListByFabric(ctx, fabricID)
	if err != nil {
		return nil, err
	}

	result := &StockReconciliation{
		FabricID:      fabricID,
		BatchCount:    len(batches),
		TotalQuantity: decimal.Zero,
		Discrepancies: make([]Discrepancy, 0),
		LastChecked:   time.Now().UTC(),
	}

	for _, b := range batches {
		result.TotalQuantity = result.TotalQuantity.Add(b.Quantity)
		result.Discrepancies = append(result.Discrepancies, checkBatch(b)...)
	}
	result.IsReconciled = len(result.Discrepancies) == 0

	return result, nil
}

func checkBatch(b domain.Batch) []Discrepancy {
	var out []Discrepancy

	if b.Quantity.IsNegative() {
		out = append(out, Discrepancy{
			Kind:     DiscrepancyBatch,
			ID:       b.ID,
			Expected: decimal.Zero,
			Actual:   b.Quantity,
			Reason:   "negative quantity",
		})
	}

	if b.HasColors() && !b.Quantity.Equal(b.ColorTotal()) {
		out = append(out, Discrepancy{
			Kind:     DiscrepancyBatch,
			ID:       b.ID,
			Expected: b.ColorTotal(),
			Actual:   b.Quantity,
			Reason:   "quantity does not match color total",
		})
	}

	for _, c := range b.Colors {
		if c.Quantity.IsNegative() {
			out = append(out, Discrepancy{
				Kind:     DiscrepancyBatch,
				ID:       b.ID,
				Expected: decimal.Zero,
				Actual:   c.Quantity,
				Reason:   fmt.Sprintf("negative quantity for color %s", c.Color),
			})
		}
	}

	return out
}

// ReconcileAllFabrics reconciles every fabric in the catalog
func (uc *ReconciliationUseCase) ReconcileAllFabrics(ctx context.Context) ([]*StockReconciliation, error) {
	var results []*StockReconciliation

	for offset := 0; ; offset += summaryPageSize {
		fabrics, err := uc.fabricRepo.List(ctx, summaryPageSize, offset)
		if err != nil {
			return nil, err
		}

		for _, fabric := range fabrics {
			result, err := uc.ReconcileFabric(ctx, fabric.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to reconcile fabric %s: %w", fabric.ID, err)
			}
			results = append(results, result)
		}

		if len(fabrics) < summaryPageSize {
			break
		}
	}

	return results, nil
}

// CheckSales verifies that every sale's lots add up to its quantity and FIFO cost.
func (uc *ReconciliationUseCase) CheckSales(ctx context.Context) ([]Discrepancy, error) {
	out := make([]Discrepancy, 0)

	for offset := 0; ; offset += summaryPageSize {
		sales, err := uc.saleRepo.List(ctx, SaleFilter{Limit: summaryPageSize, Offset: offset})
		if err != nil {
			return nil, err
		}

		for _, s := range sales {
			qty, cost := decimal.Zero, decimal.Zero
			for _, lot := range s.Lots {
				qty = qty.Add(lot.Quantity)
				cost = cost.Add(lot.Cost())
			}

			if !qty.Equal(s.Quantity) {
				out = append(out, Discrepancy{Kind: DiscrepancySale, ID: s.ID, Expected: qty, Actual: s.Quantity, Reason: "quantity does not match lots"})
			}
			cost = cost.Round(domain.AmountScale)
			if !cost.Equal(s.Cost) {
				out = append(out, Discrepancy{Kind: DiscrepancySale, ID: s.ID, Expected: cost, Actual: s.Cost, Reason: "cost does not match lots"})
			}
		}

		if len(sales) < summaryPageSize {
			break
		}
	}

	return out, nil
}

// ReconciliationReport represents a full reconciliation report
type ReconciliationReport struct {
	TotalFabrics      int
	ReconciledFabrics int
	Discrepancies     []Discrepancy
	Consistent        bool
	CheckedAt         time.Time
}

// GenerateReconciliationReport checks every fabric and every sale.
func (uc *ReconciliationUseCase) GenerateReconciliationReport(ctx context.Context) (*ReconciliationReport, error) {
	results, err := uc.ReconcileAllFabrics(ctx)
	if err != nil {
		return nil, err
	}

	saleIssues, err := uc.CheckSales(ctx)
	if err != nil {
		return nil, err
	}

	report := &ReconciliationReport{
		TotalFabrics:  len(results),
		Discrepancies: make([]Discrepancy, 0),
		CheckedAt:     time.Now().UTC(),
	}

	for _, result := range results {
		if result.IsReconciled {
			report.ReconciledFabrics++
		} else {
			report.Discrepancies = append(report.Discrepancies, result.Discrepancies...)
		}
	}
	report.Discrepancies = append(report.Discrepancies, saleIssues...)
	report.Consistent = len(report.Discrepancies) == 0

	return report, nil
}
