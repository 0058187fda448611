package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"text/tabwriter"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rishad190/bhaiyaPos-sub001/internal/adapter/http/dto"
	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
)

var errInconsistent = errors.New("reconciliation found discrepancies")

type options struct {
	baseURL string
	timeout time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "bhaiyapos-cli",
		Short:         "bhaiyaPos CLI tool",
		Long:          `A command line interface for the bhaiyaPos inventory and cashbook API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "Base URL of the bhaiyaPos API")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(cashbookCmd(opts), inventoryCmd(opts), fifoCmd(), reconcileCmd(opts))
	return rootCmd
}

func cashbookCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cashbook",
		Short: "Cashbook operations",
	}

	var date, search string
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the cashbook report",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if date != "" {
				query.Set("date", date)
			}
			if search != "" {
				query.Set("search", search)
			}

			var report dto.LedgerReportResponse
			client := newAPIClient(opts.baseURL, opts.timeout)
			if err := client.get(cmd.Context(), "/api/v1/cashbook/report", query, &report); err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), &report)
			return nil
		},
	}
	reportCmd.Flags().StringVar(&date, "date", "", "Only show entries of this date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&search, "search", "", "Filter entries by description or reference")

	cmd.AddCommand(reportCmd)
	return cmd
}

func inventoryCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inventory operations",
	}

	stockCmd := &cobra.Command{
		Use:   "stock <fabric-id>",
		Short: "Show current stock of a fabric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var stock dto.StockSummaryResponse
			client := newAPIClient(opts.baseURL, opts.timeout)
			if err := client.get(cmd.Context(), "/api/v1/fabrics/"+url.PathEscape(args[0])+"/stock", nil, &stock); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stock)
		},
	}

	var qty, price, color, memo, customer string
	sellCmd := &cobra.Command{
		Use:   "sell <fabric-id>",
		Short: "Sell fabric from stock, oldest batches first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.SellRequest{
				Quantity:     qty,
				UnitPrice:    price,
				Color:        color,
				MemoNumber:   memo,
				CustomerName: customer,
			}

			var sale dto.SaleResponse
			client := newAPIClient(opts.baseURL, opts.timeout)
			path := "/api/v1/fabrics/" + url.PathEscape(args[0]) + "/sales"
			if err := client.post(cmd.Context(), path, ulid.Make().String(), req, &sale); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), sale)
		},
	}
	sellCmd.Flags().StringVar(&qty, "qty", "", "Quantity to sell")
	sellCmd.Flags().StringVar(&price, "price", "", "Unit selling price")
	sellCmd.Flags().StringVar(&color, "color", "", "Color to sell")
	sellCmd.Flags().StringVar(&memo, "memo", "", "Cash memo number")
	sellCmd.Flags().StringVar(&customer, "customer", "", "Customer name")
	sellCmd.MarkFlagRequired("qty")
	sellCmd.MarkFlagRequired("price")

	cmd.AddCommand(stockCmd, sellCmd)
	return cmd
}

// fileBatch is one batch of a fifo preview input file.
type fileBatch struct {
	ID           string                 `json:"id"`
	PurchaseDate string                 `json:"purchase_date"`
	UnitCost     decimal.Decimal        `json:"unit_cost"`
	Quantity     decimal.Decimal        `json:"quantity"`
	Color        string                 `json:"color,omitempty"`
	Colors       []domain.ColorQuantity `json:"colors,omitempty"`
}

func fifoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fifo",
		Short: "Offline FIFO tools",
	}

	var file, qty, color string
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Allocate a quantity against batches read from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			batches, err := loadBatches(file)
			if err != nil {
				return err
			}

			requested, err := decimal.NewFromString(qty)
			if err != nil {
				return fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, qty)
			}

			alloc, err := domain.AllocateFIFO(batches, requested, color)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), dto.SalePreviewFromAllocation(alloc))
		},
	}
	previewCmd.Flags().StringVar(&file, "file", "", "JSON file with an array of batches")
	previewCmd.Flags().StringVar(&qty, "qty", "", "Quantity to allocate")
	previewCmd.Flags().StringVar(&color, "color", "", "Only allocate this color")
	previewCmd.MarkFlagRequired("file")
	previewCmd.MarkFlagRequired("qty")

	cmd.AddCommand(previewCmd)
	return cmd
}

func loadBatches(path string) ([]domain.Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows []fileBatch
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	batches := make([]domain.Batch, 0, len(rows))
	for i, row := range rows {
		purchaseDate, err := domain.ParseDate(row.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", i, err)
		}

		id := row.ID
		if id == "" {
			id = fmt.Sprintf("batch-%d", i+1)
		}

		batches = append(batches, domain.Batch{
			ID:           id,
			PurchaseDate: purchaseDate,
			UnitCost:     row.UnitCost,
			Quantity:     row.Quantity,
			Color:        row.Color,
			Colors:       row.Colors,
		})
	}

	return batches, nil
}

func reconcileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Check stock and sales consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			var report dto.ReconciliationReportResponse
			client := newAPIClient(opts.baseURL, opts.timeout)
			if err := client.get(cmd.Context(), "/api/v1/reconciliation", nil, &report); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fabrics reconciled: %d/%d\n", report.ReconciledFabrics, report.TotalFabrics)
			if report.Consistent {
				fmt.Fprintln(out, "Reconciliation PASSED")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tID\tEXPECTED\tACTUAL\tREASON")
			for _, d := range report.Discrepancies {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.Kind, d.ID, d.Expected, d.Actual, d.Reason)
			}
			w.Flush()

			return errInconsistent
		},
	}
}

func printReport(out io.Writer, report *dto.LedgerReportResponse) {
	fmt.Fprintf(out, "Opening balance: %s\n", report.OpeningBalance.StringFixed(2))
	fmt.Fprintf(out, "Total cash in:   %s\n", report.Financials.TotalCashIn.StringFixed(2))
	fmt.Fprintf(out, "Total cash out:  %s\n", report.Financials.TotalCashOut.StringFixed(2))
	fmt.Fprintf(out, "Available cash:  %s\n", report.Financials.AvailableCash.StringFixed(2))
	if report.SkippedEntries > 0 {
		fmt.Fprintf(out, "Skipped entries: %d\n", report.SkippedEntries)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nDATE\tCASH IN\tCASH OUT\tBALANCE\tENTRIES")
	for _, d := range report.DailyTotals {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", d.Date,
			d.CashIn.StringFixed(2), d.CashOut.StringFixed(2), d.Balance.StringFixed(2), d.EntryCount)
	}
	w.Flush()

	for _, date := range report.SortedDates {
		group := report.GroupedEntries[date]
		if group == nil {
			continue
		}
		fmt.Fprintf(out, "\n%s\n", date)
		for _, line := range group.Income {
			fmt.Fprintf(out, "  + %-30s %12s  bal %s\n", truncate(line.Description, 30), line.CashIn.StringFixed(2), line.Balance.StringFixed(2))
		}
		for _, line := range group.Expense {
			fmt.Fprintf(out, "  - %-30s %12s  bal %s\n", truncate(line.Description, 30), line.CashOut.StringFixed(2), line.Balance.StringFixed(2))
		}
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
