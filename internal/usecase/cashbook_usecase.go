package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
)

var (
	// ErrCacheMiss is returned by Cache implementations when a key is absent.
	ErrCacheMiss = errors.New("cache miss")

	// ErrExportUnavailable is returned when no report exporter is configured.
	ErrExportUnavailable = errors.New("report export is not configured")
)

// CashbookUseCase handles cashbook entries, customer payments and the derived report.
type CashbookUseCase struct {
	cashbookRepo CashbookRepository
	paymentRepo  PaymentRepository
	idGen        IDGenerator
	cache        Cache
	exporter     ReportExporter
	metrics      Metrics
	logger       zerolog.Logger
	cacheTTL     time.Duration
}

// CashbookOption configures optional CashbookUseCase collaborators.
type CashbookOption func(*CashbookUseCase)

// WithReportCache caches aggregated reports for ttl.
func WithReportCache(cache Cache, ttl time.Duration) CashbookOption {
	return func(uc *CashbookUseCase) {
		uc.cache = cache
		if ttl > 0 {
			uc.cacheTTL = ttl
		}
	}
}

// WithReportExporter enables ExportReport.
func WithReportExporter(exporter ReportExporter) CashbookOption {
	return func(uc *CashbookUseCase) {
		uc.exporter = exporter
	}
}

// WithMetrics records cashbook activity.
func WithMetrics(metrics Metrics) CashbookOption {
	return func(uc *CashbookUseCase) {
		if metrics != nil {
			uc.metrics = metrics
		}
	}
}

// NewCashbookUseCase creates a new CashbookUseCase.
func NewCashbookUseCase(
	cashbookRepo CashbookRepository,
	paymentRepo PaymentRepository,
	idGen IDGenerator,
	logger zerolog.Logger,
	opts ...CashbookOption,
) *CashbookUseCase {
	uc := &CashbookUseCase{
		cashbookRepo: cashbookRepo,
		paymentRepo:  paymentRepo,
		idGen:        idGen,
		metrics:      noopMetrics{},
		logger:       logger,
		cacheTTL:     DefaultReportCacheTTL,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// CreateEntryInput represents a manual cashbook entry.
type CreateEntryInput struct {
	Date        string
	CashIn      decimal.Decimal
	CashOut     decimal.Decimal
	Description string
	Reference   string
}

// CreateEntry records a manual cash movement.
func (uc *CashbookUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.LedgerEntry, error) {
	entry := &domain.LedgerEntry{
		ID:          uc.idGen.Generate(),
		Date:        input.Date,
		CashIn:      input.CashIn,
		CashOut:     input.CashOut,
		Description: input.Description,
		Reference:   input.Reference,
		Source:      domain.EntrySourceManual,
		CreatedAt:   time.Now().UTC(),
	}

	if err := entry.Normalize(); err != nil {
		return nil, err
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := uc.cashbookRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.metrics.RecordCashbookEntry(string(entry.Source))
	uc.invalidateReports(ctx)

	return entry, nil
}

// DeleteEntry removes a manual entry.
func (uc *CashbookUseCase) DeleteEntry(ctx context.Context, id string) error {
	if err := uc.cashbookRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateReports(ctx)
	return nil
}

// RecordPaymentInput represents money received from a customer.
type RecordPaymentInput struct {
	CustomerName string
	MemoNumber   string
	Amount       decimal.Decimal
	Date         string
	Note         string
}

// RecordPayment stores a customer payment. It appears in the cashbook as cash in.
func (uc *CashbookUseCase) RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.CustomerPayment, error) {
	payment := &domain.CustomerPayment{
		ID:           uc.idGen.Generate(),
		CustomerName: strings.TrimSpace(input.CustomerName),
		MemoNumber:   strings.TrimSpace(input.MemoNumber),
		Amount:       input.Amount,
		Date:         input.Date,
		Note:         strings.TrimSpace(input.Note),
		CreatedAt:    time.Now().UTC(),
	}

	if err := payment.Validate(); err != nil {
		return nil, err
	}

	date, err := domain.NormalizeDate(payment.Date)
	if err != nil {
		return nil, err
	}
	payment.Date = date

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	uc.metrics.RecordCashbookEntry(string(domain.EntrySourceCustomerPayment))
	uc.invalidateReports(ctx)

	uc.logger.Info().
		Str("payment_id", payment.ID).
		Str("memo_number", payment.MemoNumber).
		Str("amount", payment.Amount.String()).
		Msg("customer payment recorded")

	return payment, nil
}

// ListEntries returns manual and payment-derived entries, newest first.
func (uc *CashbookUseCase) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	entries, err := uc.loadEntries(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}

// GetReport aggregates the cashbook. Reports are cached per filter until the
// next write.
func (uc *CashbookUseCase) GetReport(ctx context.Context, filter domain.ReportFilter) (*domain.LedgerReport, error) {
	key := ""
	if uc.cache != nil {
		key = uc.reportKey(ctx, filter)
		if report, ok := uc.cachedReport(ctx, key); ok {
			uc.metrics.RecordReportCache(true)
			return report, nil
		}
		uc.metrics.RecordReportCache(false)
	}

	entries, err := uc.loadEntries(ctx)
	if err != nil {
		return nil, err
	}

	report := domain.AggregateLedger(entries, filter)

	if report.SkippedEntries > 0 {
		uc.logger.Warn().Int("skipped", report.SkippedEntries).Msg("cashbook entries without a valid date")
	}

	if uc.cache != nil {
		uc.storeReport(ctx, key, report)
	}

	return report, nil
}

// ExportReport writes the filtered report through the configured exporter.
func (uc *CashbookUseCase) ExportReport(ctx context.Context, w io.Writer, filter domain.ReportFilter) error {
	if uc.exporter == nil {
		return ErrExportUnavailable
	}

	report, err := uc.GetReport(ctx, filter)
	if err != nil {
		return err
	}

	return uc.exporter.Export(w, report)
}

// ExportContentType returns the MIME type ExportReport produces.
func (uc *CashbookUseCase) ExportContentType() string {
	if uc.exporter == nil {
		return ""
	}
	return uc.exporter.ContentType()
}

func (uc *CashbookUseCase) loadEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	manual, err := uc.cashbookRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LedgerEntry, 0, len(manual)+len(payments))
	entries = append(entries, manual...)
	entries = append(entries, domain.PaymentsToLedgerEntries(payments)...)

	return entries, nil
}

func (uc *CashbookUseCase) reportKey(ctx context.Context, filter domain.ReportFilter) string {
	generation := "0"
	if value, err := uc.cache.Get(ctx, reportGenerationKey); err == nil && len(value) > 0 {
		generation = string(value)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	return reportCachePrefix + generation + ":" + url.QueryEscape(filter.Date) + ":" + url.QueryEscape(search)
}

func (uc *CashbookUseCase) cachedReport(ctx context.Context, key string) (*domain.LedgerReport, bool) {
	data, err := uc.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			uc.logger.Warn().Err(err).Str("key", key).Msg("report cache read failed")
		}
		return nil, false
	}

	var report domain.LedgerReport
	if err := json.Unmarshal(data, &report); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("discarding malformed cached report")
		return nil, false
	}

	return &report, true
}

func (uc *CashbookUseCase) storeReport(ctx context.Context, key string, report *domain.LedgerReport) {
	data, err := json.Marshal(report)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("report encode failed")
		return
	}

	if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("report cache write failed")
	}
}

// invalidateReports rotates the generation token so every cached report key goes stale.
func (uc *CashbookUseCase) invalidateReports(ctx context.Context) {
	if uc.cache == nil {
		return
	}

	if err := uc.cache.Set(ctx, reportGenerationKey, []byte(uc.idGen.Generate()), reportGenerationTTL); err != nil {
		uc.logger.Warn().Err(err).Msg("report cache invalidation failed")
	}
}
