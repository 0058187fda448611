package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

// FabricResponse represents a fabric in API responses.
type FabricResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Category  string    `json:"category"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FabricFromDomain converts domain fabric to response.
func FabricFromDomain(f *domain.Fabric) *FabricResponse {
	return &FabricResponse{
		ID:        f.ID,
		Name:      f.Name,
		Code:      f.Code,
		Category:  f.Category,
		Unit:      f.Unit,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// FabricsFromDomain converts domain fabrics to responses.
func FabricsFromDomain(fabrics []*domain.Fabric) []*FabricResponse {
	result := make([]*FabricResponse, len(fabrics))
	for i, f := range fabrics {
		result[i] = FabricFromDomain(f)
	}
	return result
}

// ColorQuantityResponse is the stock of one color.
type ColorQuantityResponse struct {
	Color    string          `json:"color"`
	Quantity decimal.Decimal `json:"quantity"`
}

func colorsFromDomain(colors []domain.ColorQuantity) []ColorQuantityResponse {
	result := make([]ColorQuantityResponse, len(colors))
	for i, c := range colors {
		result[i] = ColorQuantityResponse{Color: c.Color, Quantity: c.Quantity}
	}
	return result
}

// BatchResponse represents a purchase batch in API responses.
type BatchResponse struct {
	ID           string                  `json:"id"`
	FabricID     string                  `json:"fabric_id"`
	PurchaseDate string                  `json:"purchase_date"`
	UnitCost     decimal.Decimal         `json:"unit_cost"`
	Quantity     decimal.Decimal         `json:"quantity"`
	Color        string                  `json:"color,omitempty"`
	Colors       []ColorQuantityResponse `json:"colors"`
	SupplierName string                  `json:"supplier_name,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// BatchFromDomain converts domain batch to response.
func BatchFromDomain(b domain.Batch) *BatchResponse {
	return &BatchResponse{
		ID:           b.ID,
		FabricID:     b.FabricID,
		PurchaseDate: b.PurchaseDate.Format(domain.DateLayout),
		UnitCost:     b.UnitCost,
		Quantity:     b.Quantity,
		Color:        b.Color,
		Colors:       colorsFromDomain(b.Colors),
		SupplierName: b.SupplierName,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// BatchesFromDomain converts domain batches to responses.
func BatchesFromDomain(batches []domain.Batch) []*BatchResponse {
	result := make([]*BatchResponse, len(batches))
	for i, b := range batches {
		result[i] = BatchFromDomain(b)
	}
	return result
}

// StockSummaryResponse represents the remaining stock of a fabric.
type StockSummaryResponse struct {
	BatchCount    int                     `json:"batch_count"`
	TotalQuantity decimal.Decimal         `json:"total_quantity"`
	TotalValue    decimal.Decimal         `json:"total_value"`
	Colors        []ColorQuantityResponse `json:"colors"`
}

// StockSummaryFromDomain converts a stock summary to response.
func StockSummaryFromDomain(s domain.StockSummary) *StockSummaryResponse {
	return &StockSummaryResponse{
		BatchCount:    s.BatchCount,
		TotalQuantity: s.TotalQuantity,
		TotalValue:    s.TotalValue,
		Colors:        colorsFromDomain(s.Colors),
	}
}

// ConsumedLotResponse is the part of a batch taken by a sale.
type ConsumedLotResponse struct {
	BatchID  string          `json:"batch_id"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Cost     decimal.Decimal `json:"cost"`
	Color    string          `json:"color,omitempty"`
}

func lotsFromDomain(lots []domain.ConsumedLot) []ConsumedLotResponse {
	result := make([]ConsumedLotResponse, len(lots))
	for i, l := range lots {
		result[i] = ConsumedLotResponse{
			BatchID:  l.BatchID,
			Quantity: l.Quantity,
			UnitCost: l.UnitCost,
			Cost:     l.Cost(),
			Color:    l.Color,
		}
	}
	return result
}

// SalePreviewResponse represents a dry-run allocation.
type SalePreviewResponse struct {
	Quantity       decimal.Decimal       `json:"quantity"`
	TotalCost      decimal.Decimal       `json:"total_cost"`
	ConsumedLots   []ConsumedLotResponse `json:"consumed_lots"`
	UpdatedBatches []*BatchResponse      `json:"updated_batches"`
	Remaining      *StockSummaryResponse `json:"remaining,omitempty"`
}

// SalePreviewFromUseCase converts a sale preview to response.
func SalePreviewFromUseCase(p *usecase.SalePreview) *SalePreviewResponse {
	resp := SalePreviewFromAllocation(p.Allocation)
	resp.Remaining = StockSummaryFromDomain(p.Remaining)
	return resp
}

// SalePreviewFromAllocation converts a bare FIFO allocation to response.
func SalePreviewFromAllocation(a *domain.Allocation) *SalePreviewResponse {
	return &SalePreviewResponse{
		Quantity:       a.Quantity(),
		TotalCost:      a.TotalCost,
		ConsumedLots:   lotsFromDomain(a.ConsumedLots),
		UpdatedBatches: BatchesFromDomain(a.UpdatedBatches),
	}
}

// SaleResponse represents a sale in API responses.
type SaleResponse struct {
	ID           string                `json:"id"`
	FabricID     string                `json:"fabric_id"`
	MemoNumber   string                `json:"memo_number,omitempty"`
	CustomerName string                `json:"customer_name,omitempty"`
	Color        string                `json:"color,omitempty"`
	Quantity     decimal.Decimal       `json:"quantity"`
	UnitPrice    decimal.Decimal       `json:"unit_price"`
	Revenue      decimal.Decimal       `json:"revenue"`
	Cost         decimal.Decimal       `json:"cost"`
	Profit       decimal.Decimal       `json:"profit"`
	Lots         []ConsumedLotResponse `json:"lots"`
	SoldAt       time.Time             `json:"sold_at"`
}

// SaleFromDomain converts domain sale to response.
func SaleFromDomain(s *domain.Sale) *SaleResponse {
	return &SaleResponse{
		ID:           s.ID,
		FabricID:     s.FabricID,
		MemoNumber:   s.MemoNumber,
		CustomerName: s.CustomerName,
		Color:        s.Color,
		Quantity:     s.Quantity,
		UnitPrice:    s.UnitPrice,
		Revenue:      s.Revenue,
		Cost:         s.Cost,
		Profit:       s.Profit,
		Lots:         lotsFromDomain(s.Lots),
		SoldAt:       s.SoldAt,
	}
}

// SalesFromDomain converts domain sales to responses.
func SalesFromDomain(sales []*domain.Sale) []*SaleResponse {
	result := make([]*SaleResponse, len(sales))
	for i, s := range sales {
		result[i] = SaleFromDomain(s)
	}
	return result
}

// ProfitSummaryResponse represents sales totals over a period.
type ProfitSummaryResponse struct {
	SaleCount int             `json:"sale_count"`
	Quantity  decimal.Decimal `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
	Margin    decimal.Decimal `json:"margin_percent"`
}

// ProfitSummaryFromDomain converts a profit summary to response.
func ProfitSummaryFromDomain(s *domain.ProfitSummary) *ProfitSummaryResponse {
	return &ProfitSummaryResponse{
		SaleCount: s.SaleCount,
		Quantity:  s.Quantity,
		Revenue:   s.Revenue,
		Cost:      s.Cost,
		Profit:    s.Profit,
		Margin:    s.Margin,
	}
}

// LedgerEntryResponse represents a cashbook entry in API responses.
type LedgerEntryResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	CashIn      decimal.Decimal `json:"cash_in"`
	CashOut     decimal.Decimal `json:"cash_out"`
	Description string          `json:"description"`
	Reference   string          `json:"reference,omitempty"`
	Source      string          `json:"source"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LedgerEntryFromDomain converts a cashbook entry to response.
func LedgerEntryFromDomain(e domain.LedgerEntry) *LedgerEntryResponse {
	return &LedgerEntryResponse{
		ID:          e.ID,
		Date:        e.Date,
		CashIn:      e.CashIn,
		CashOut:     e.CashOut,
		Description: e.Description,
		Reference:   e.Reference,
		Source:      string(e.Source),
		CreatedAt:   e.CreatedAt,
	}
}

// LedgerEntriesFromDomain converts cashbook entries to responses.
func LedgerEntriesFromDomain(entries []domain.LedgerEntry) []*LedgerEntryResponse {
	result := make([]*LedgerEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = LedgerEntryFromDomain(e)
	}
	return result
}

// PaymentResponse represents a customer payment in API responses.
type PaymentResponse struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	MemoNumber   string          `json:"memo_number,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PaymentFromDomain converts a customer payment to response.
func PaymentFromDomain(p *domain.CustomerPayment) *PaymentResponse {
	return &PaymentResponse{
		ID:           p.ID,
		CustomerName: p.CustomerName,
		MemoNumber:   p.MemoNumber,
		Amount:       p.Amount,
		Date:         p.Date,
		Note:         p.Note,
		CreatedAt:    p.CreatedAt,
	}
}

// LedgerLineResponse is an entry with the running balance after it.
type LedgerLineResponse struct {
	LedgerEntryResponse
	Balance decimal.Decimal `json:"balance"`
}

// DayGroupResponse holds one date's filtered entries split by direction.
type DayGroupResponse struct {
	Date    string               `json:"date"`
	Income  []LedgerLineResponse `json:"income"`
	Expense []LedgerLineResponse `json:"expense"`
}

// DailyTotalResponse is the net movement of one date.
type DailyTotalResponse struct {
	Date       string          `json:"date"`
	CashIn     decimal.Decimal `json:"cash_in"`
	CashOut    decimal.Decimal `json:"cash_out"`
	Balance    decimal.Decimal `json:"balance"`
	EntryCount int             `json:"entry_count"`
}

// MonthlyTotalResponse is the net movement of one month.
type MonthlyTotalResponse struct {
	Month   string          `json:"month"`
	CashIn  decimal.Decimal `json:"cash_in"`
	CashOut decimal.Decimal `json:"cash_out"`
	Balance decimal.Decimal `json:"balance"`
}

// FinancialsResponse are totals over every entry.
type FinancialsResponse struct {
	TotalCashIn   decimal.Decimal `json:"total_cash_in"`
	TotalCashOut  decimal.Decimal `json:"total_cash_out"`
	AvailableCash decimal.Decimal `json:"available_cash"`
}

// LedgerReportResponse represents the cashbook report.
type LedgerReportResponse struct {
	OpeningBalance decimal.Decimal              `json:"opening_balance"`
	DailyTotals    []DailyTotalResponse         `json:"daily_totals"`
	MonthlyTotals  []MonthlyTotalResponse       `json:"monthly_totals"`
	Financials     FinancialsResponse           `json:"financials"`
	GroupedEntries map[string]*DayGroupResponse `json:"grouped_entries"`
	SortedDates    []string                     `json:"sorted_dates"`
	SkippedEntries int                          `json:"skipped_entries"`
}

// LedgerReportFromDomain converts a cashbook report to response.
func LedgerReportFromDomain(r *domain.LedgerReport) *LedgerReportResponse {
	resp := &LedgerReportResponse{
		OpeningBalance: r.OpeningBalance,
		DailyTotals:    make([]DailyTotalResponse, len(r.DailyTotals)),
		MonthlyTotals:  make([]MonthlyTotalResponse, len(r.MonthlyTotals)),
		Financials: FinancialsResponse{
			TotalCashIn:   r.Financials.TotalCashIn,
			TotalCashOut:  r.Financials.TotalCashOut,
			AvailableCash: r.Financials.AvailableCash,
		},
		GroupedEntries: make(map[string]*DayGroupResponse, len(r.GroupedEntries)),
		SortedDates:    append([]string{}, r.SortedDates...),
		SkippedEntries: r.SkippedEntries,
	}

	for i, d := range r.DailyTotals {
		resp.DailyTotals[i] = DailyTotalResponse{
			Date:       d.Date,
			CashIn:     d.CashIn,
			CashOut:    d.CashOut,
			Balance:    d.Balance,
			EntryCount: len(d.Entries),
		}
	}

	for i, m := range r.MonthlyTotals {
		resp.MonthlyTotals[i] = MonthlyTotalResponse{
			Month:   m.Month,
			CashIn:  m.CashIn,
			CashOut: m.CashOut,
			Balance: m.Balance,
		}
	}

	for date, group := range r.GroupedEntries {
		resp.GroupedEntries[date] = &DayGroupResponse{
			Date:    group.Date,
			Income:  linesFromDomain(group.Income),
			Expense: linesFromDomain(group.Expense),
		}
	}

	return resp
}

func linesFromDomain(lines []domain.LedgerLine) []LedgerLineResponse {
	result := make([]LedgerLineResponse, len(lines))
	for i, l := range lines {
		result[i] = LedgerLineResponse{
			LedgerEntryResponse: *LedgerEntryFromDomain(l.LedgerEntry),
			Balance:             l.Balance,
		}
	}
	return result
}

// DiscrepancyResponse describes one record that failed reconciliation.
type DiscrepancyResponse struct {
	Kind     string          `json:"kind"`
	ID       string          `json:"id"`
	Expected decimal.Decimal `json:"expected"`
	Actual   decimal.Decimal `json:"actual"`
	Reason   string          `json:"reason"`
}

func discrepanciesFromUseCase(ds []usecase.Discrepancy) []DiscrepancyResponse {
	result := make([]DiscrepancyResponse, len(ds))
	for i, d := range ds {
		result[i] = DiscrepancyResponse{
			Kind:     d.Kind,
			ID:       d.ID,
			Expected: d.Expected,
			Actual:   d.Actual,
			Reason:   d.Reason,
		}
	}
	return result
}

// StockReconciliationResponse is one fabric's stock check.
type StockReconciliationResponse struct {
	FabricID      string                `json:"fabric_id"`
	BatchCount    int                   `json:"batch_count"`
	TotalQuantity decimal.Decimal       `json:"total_quantity"`
	Discrepancies []DiscrepancyResponse `json:"discrepancies"`
	IsReconciled  bool                  `json:"is_reconciled"`
	LastChecked   time.Time             `json:"last_checked"`
}

// StockReconciliationFromUseCase converts a fabric stock check to response.
func StockReconciliationFromUseCase(s *usecase.StockReconciliation) *StockReconciliationResponse {
	return &StockReconciliationResponse{
		FabricID:      s.FabricID,
		BatchCount:    s.BatchCount,
		TotalQuantity: s.TotalQuantity,
		Discrepancies: discrepanciesFromUseCase(s.Discrepancies),
		IsReconciled:  s.IsReconciled,
		LastChecked:   s.LastChecked,
	}
}

// ReconciliationReportResponse represents a full reconciliation run.
type ReconciliationReportResponse struct {
	TotalFabrics      int                   `json:"total_fabrics"`
	ReconciledFabrics int                   `json:"reconciled_fabrics"`
	Discrepancies     []DiscrepancyResponse `json:"discrepancies"`
	Consistent        bool                  `json:"consistent"`
	CheckedAt         time.Time             `json:"checked_at"`
}

// ReconciliationReportFromUseCase converts a reconciliation report to response.
func ReconciliationReportFromUseCase(r *usecase.ReconciliationReport) *ReconciliationReportResponse {
	return &ReconciliationReportResponse{
		TotalFabrics:      r.TotalFabrics,
		ReconciledFabrics: r.ReconciledFabrics,
		Discrepancies:     discrepanciesFromUseCase(r.Discrepancies),
		Consistent:        r.Consistent,
		CheckedAt:         r.CheckedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
