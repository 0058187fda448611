package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

func TestBatchFromDomain(t *testing.T) {
	batch := domain.Batch{
		ID:           "b1",
		FabricID:     "f1",
		PurchaseDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		UnitCost:     decimal.RequireFromString("12.5"),
		Quantity:     decimal.RequireFromString("10"),
		Colors:       []domain.ColorQuantity{{Color: "red", Quantity: decimal.RequireFromString("10")}},
	}

	resp := BatchFromDomain(batch)
	if resp.PurchaseDate != "2024-01-05" || len(resp.Colors) != 1 || resp.Colors[0].Color != "red" {
		t.Fatalf("unexpected batch response: %+v", resp)
	}

	list := BatchesFromDomain([]domain.Batch{batch})
	if len(list) != 1 || list[0].ID != "b1" {
		t.Fatalf("BatchesFromDomain returned %+v", list)
	}
}

func TestSaleFromDomain(t *testing.T) {
	sale := &domain.Sale{
		ID:      "s1",
		Revenue: decimal.RequireFromString("300"),
		Cost:    decimal.RequireFromString("160"),
		Profit:  decimal.RequireFromString("140"),
		Lots: []domain.ConsumedLot{
			{BatchID: "b1", Quantity: decimal.RequireFromString("10"), UnitCost: decimal.RequireFromString("10")},
			{BatchID: "b2", Quantity: decimal.RequireFromString("5"), UnitCost: decimal.RequireFromString("12")},
		},
	}

	resp := SaleFromDomain(sale)
	if len(resp.Lots) != 2 || !resp.Lots[1].Cost.Equal(decimal.RequireFromString("60")) {
		t.Fatalf("unexpected lots: %+v", resp.Lots)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["profit"] != "140" {
		t.Fatalf("expected profit to be encoded as a decimal string, got %v", decoded["profit"])
	}
}

func TestLedgerReportFromDomain(t *testing.T) {
	report := domain.AggregateLedger([]domain.LedgerEntry{
		{ID: "e1", Date: "2024-01-01", CashIn: decimal.NewFromInt(100), Description: "sale"},
		{ID: "e2", Date: "2024-01-02", CashOut: decimal.NewFromInt(30), Description: "tea"},
	}, domain.ReportFilter{})

	resp := LedgerReportFromDomain(report)

	if len(resp.SortedDates) != 2 || resp.SortedDates[0] != "2024-01-02" {
		t.Fatalf("unexpected sorted dates: %v", resp.SortedDates)
	}

	day := resp.GroupedEntries["2024-01-02"]
	if day == nil || len(day.Expense) != 1 || !day.Expense[0].Balance.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("unexpected day group: %+v", day)
	}

	if !resp.Financials.AvailableCash.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("unexpected financials: %+v", resp.Financials)
	}

	if resp.DailyTotals[0].EntryCount != 1 {
		t.Fatalf("expected entry counts per day, got %+v", resp.DailyTotals)
	}
}

func TestReconciliationReportFromUseCase(t *testing.T) {
	report := &usecase.ReconciliationReport{
		TotalFabrics: 2,
		Discrepancies: []usecase.Discrepancy{
			{Kind: usecase.DiscrepancyBatch, ID: "b1", Reason: "negative quantity"},
		},
	}

	resp := ReconciliationReportFromUseCase(report)
	if resp.Consistent || len(resp.Discrepancies) != 1 || resp.Discrepancies[0].Kind != "batch" {
		t.Fatalf("unexpected reconciliation response: %+v", resp)
	}
}
