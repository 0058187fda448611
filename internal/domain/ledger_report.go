package domain

import (
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ReportFilter narrows the detail view of a cashbook report.
// Date selects a single day and is also the opening balance cut-off.
// Search matches descriptions case-insensitively.
type ReportFilter struct {
	Date   string
	Search string
}

// LedgerLine is an entry annotated with the running balance after it.
type LedgerLine struct {
	LedgerEntry
	Balance decimal.Decimal
}

// DayGroup holds the filtered entries of one date split by direction.
type DayGroup struct {
	Date    string
	Income  []LedgerLine
	Expense []LedgerLine
}

// DailyTotal is the net movement of one date. Balance is the day net, not a
// cumulative figure.
type DailyTotal struct {
	Date    string
	CashIn  decimal.Decimal
	CashOut decimal.Decimal
	Balance decimal.Decimal
	Entries []LedgerEntry
}

// MonthlyTotal is the net movement of one YYYY-MM month.
type MonthlyTotal struct {
	Month   string
	CashIn  decimal.Decimal
	CashOut decimal.Decimal
	Balance decimal.Decimal
}

// Financials are totals over every entry regardless of filters.
type Financials struct {
	TotalCashIn   decimal.Decimal
	TotalCashOut  decimal.Decimal
	AvailableCash decimal.Decimal
}

// LedgerReport is the derived cashbook view.
type LedgerReport struct {
	OpeningBalance decimal.Decimal
	DailyTotals    []DailyTotal
	MonthlyTotals  []MonthlyTotal
	Financials     Financials
	GroupedEntries map[string]*DayGroup
	SortedDates    []string
	SkippedEntries int
}

type indexedEntry struct {
	entry LedgerEntry
	index int
}

// AggregateLedger builds the cashbook report for entries.
//
// Entries without a parseable date count towards Financials only and are
// reported in SkippedEntries. The running balance on each LedgerLine starts at
// OpeningBalance and accumulates in chronological order (date, then CreatedAt,
// then ID, then input position) even though dates are presented newest first.
// The input is never modified.
func AggregateLedger(entries []LedgerEntry, filter ReportFilter) *LedgerReport {
	report := &LedgerReport{
		OpeningBalance: decimal.Zero,
		DailyTotals:    []DailyTotal{},
		MonthlyTotals:  []MonthlyTotal{},
		Financials: Financials{
			TotalCashIn:   decimal.Zero,
			TotalCashOut:  decimal.Zero,
			AvailableCash: decimal.Zero,
		},
		GroupedEntries: make(map[string]*DayGroup),
		SortedDates:    []string{},
	}

	filterDate := ""
	if filter.Date != "" {
		if d, err := NormalizeDate(filter.Date); err == nil {
			filterDate = d
		}
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	daily := make(map[string]*DailyTotal)
	monthly := make(map[string]*MonthlyTotal)
	var filtered []indexedEntry

	for i, e := range entries {
		cashIn := nonNegative(e.CashIn)
		cashOut := nonNegative(e.CashOut)

		report.Financials.TotalCashIn = report.Financials.TotalCashIn.Add(cashIn)
		report.Financials.TotalCashOut = report.Financials.TotalCashOut.Add(cashOut)

		date, err := NormalizeDate(e.Date)
		if err != nil {
			report.SkippedEntries++
			continue
		}

		entry := e
		entry.Date = date

		day, ok := daily[date]
		if !ok {
			day = &DailyTotal{Date: date, CashIn: decimal.Zero, CashOut: decimal.Zero}
			daily[date] = day
		}
		day.CashIn = day.CashIn.Add(cashIn)
		day.CashOut = day.CashOut.Add(cashOut)
		day.Entries = append(day.Entries, entry)

		month := date[:7]
		mt, ok := monthly[month]
		if !ok {
			mt = &MonthlyTotal{Month: month, CashIn: decimal.Zero, CashOut: decimal.Zero}
			monthly[month] = mt
		}
		mt.CashIn = mt.CashIn.Add(cashIn)
		mt.CashOut = mt.CashOut.Add(cashOut)

		if filterDate != "" && date < filterDate {
			report.OpeningBalance = report.OpeningBalance.Add(entry.Net())
		}

		if matchesFilter(entry, filterDate, search) {
			filtered = append(filtered, indexedEntry{entry: entry, index: i})
		}
	}

	report.Financials.AvailableCash = report.Financials.TotalCashIn.Sub(report.Financials.TotalCashOut)

	for _, day := range daily {
		day.Balance = day.CashIn.Sub(day.CashOut)
		report.DailyTotals = append(report.DailyTotals, *day)
	}
	sort.Slice(report.DailyTotals, func(i, j int) bool {
		return report.DailyTotals[i].Date > report.DailyTotals[j].Date
	})

	for _, mt := range monthly {
		mt.Balance = mt.CashIn.Sub(mt.CashOut)
		report.MonthlyTotals = append(report.MonthlyTotals, *mt)
	}
	sort.Slice(report.MonthlyTotals, func(i, j int) bool {
		return report.MonthlyTotals[i].Month > report.MonthlyTotals[j].Month
	})

	slices.SortStableFunc(filtered, func(a, b indexedEntry) int {
		return compareChronological(a, b)
	})

	running := report.OpeningBalance
	for _, ie := range filtered {
		running = running.Add(ie.entry.Net())
		line := LedgerLine{LedgerEntry: ie.entry, Balance: running}

		group, ok := report.GroupedEntries[ie.entry.Date]
		if !ok {
			group = &DayGroup{Date: ie.entry.Date, Income: []LedgerLine{}, Expense: []LedgerLine{}}
			report.GroupedEntries[ie.entry.Date] = group
			report.SortedDates = append(report.SortedDates, ie.entry.Date)
		}

		if ie.entry.IsIncome() {
			group.Income = append(group.Income, line)
		}
		if ie.entry.IsExpense() {
			group.Expense = append(group.Expense, line)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(report.SortedDates)))

	return report
}

func matchesFilter(e LedgerEntry, date, search string) bool {
	if date != "" && e.Date != date {
		return false
	}
	if search != "" && !strings.Contains(strings.ToLower(e.Description), search) {
		return false
	}
	return true
}

// compareChronological orders by date, creation time, ID and input position.
func compareChronological(a, b indexedEntry) int {
	if c := strings.Compare(a.entry.Date, b.entry.Date); c != 0 {
		return c
	}
	if c := a.entry.CreatedAt.Compare(b.entry.CreatedAt); c != 0 {
		return c
	}
	if c := strings.Compare(a.entry.ID, b.entry.ID); c != 0 {
		return c
	}
	return a.index - b.index
}
