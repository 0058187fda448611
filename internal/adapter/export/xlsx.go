package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
)

// XLSXContentType is the MIME type of an Excel workbook.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names of the exported workbook.
const (
	SheetEntries = "Entries"
	SheetDaily   = "Daily"
	SheetMonthly = "Monthly"
	SheetSummary = "Summary"
)

// XLSXExporter writes a cashbook report as an Excel workbook.
// It implements usecase.ReportExporter.
type XLSXExporter struct{}

// NewXLSXExporter creates a new XLSXExporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// ContentType returns the workbook MIME type.
func (e *XLSXExporter) ContentType() string {
	return XLSXContentType
}

// Export writes report to w. Entries are listed newest date first, income
// before expense within a date, each with its running balance.
func (e *XLSXExporter) Export(w io.Writer, report *domain.LedgerReport) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetEntries); err != nil {
		return err
	}
	for _, name := range []string{SheetDaily, SheetMonthly, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	if err := writeEntries(f, report); err != nil {
		return fmt.Errorf("write entries sheet: %w", err)
	}
	if err := writeDaily(f, report); err != nil {
		return fmt.Errorf("write daily sheet: %w", err)
	}
	if err := writeMonthly(f, report); err != nil {
		return fmt.Errorf("write monthly sheet: %w", err)
	}
	if err := writeSummary(f, report); err != nil {
		return fmt.Errorf("write summary sheet: %w", err)
	}

	return f.Write(w)
}

func writeEntries(f *excelize.File, report *domain.LedgerReport) error {
	rows := [][]any{{"Date", "Description", "Reference", "Source", "Cash In", "Cash Out", "Balance"}}

	for _, date := range report.SortedDates {
		group, ok := report.GroupedEntries[date]
		if !ok {
			continue
		}

		for _, lines := range [][]domain.LedgerLine{group.Income, group.Expense} {
			for _, line := range lines {
				rows = append(rows, []any{
					line.Date,
					line.Description,
					line.Reference,
					string(line.Source),
					amount(line.CashIn),
					amount(line.CashOut),
					amount(line.Balance),
				})
			}
		}
	}

	return setRows(f, SheetEntries, rows)
}

func writeDaily(f *excelize.File, report *domain.LedgerReport) error {
	rows := [][]any{{"Date", "Cash In", "Cash Out", "Net", "Entries"}}

	for _, day := range report.DailyTotals {
		rows = append(rows, []any{
			day.Date,
			amount(day.CashIn),
			amount(day.CashOut),
			amount(day.Balance),
			len(day.Entries),
		})
	}

	return setRows(f, SheetDaily, rows)
}

func writeMonthly(f *excelize.File, report *domain.LedgerReport) error {
	rows := [][]any{{"Month", "Cash In", "Cash Out", "Net"}}

	for _, month := range report.MonthlyTotals {
		rows = append(rows, []any{
			month.Month,
			amount(month.CashIn),
			amount(month.CashOut),
			amount(month.Balance),
		})
	}

	return setRows(f, SheetMonthly, rows)
}

func writeSummary(f *excelize.File, report *domain.LedgerReport) error {
	rows := [][]any{
		{"Opening Balance", amount(report.OpeningBalance)},
		{"Total Cash In", amount(report.Financials.TotalCashIn)},
		{"Total Cash Out", amount(report.Financials.TotalCashOut)},
		{"Available Cash", amount(report.Financials.AvailableCash)},
		{"Skipped Entries", report.SkippedEntries},
	}

	return setRows(f, SheetSummary, rows)
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

func amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
