package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase/mocks"
)

type cashbookMocks struct {
	cashbookRepo *mocks.MockCashbookRepository
	paymentRepo  *mocks.MockPaymentRepository
	idGen        *mocks.MockIDGenerator
	cache        *mocks.MockCache
	exporter     *mocks.MockReportExporter
	metrics      *mocks.MockMetrics
}

func newCashbookMocks(t *testing.T) cashbookMocks {
	ctrl := gomock.NewController(t)
	return cashbookMocks{
		cashbookRepo: mocks.NewMockCashbookRepository(ctrl),
		paymentRepo:  mocks.NewMockPaymentRepository(ctrl),
		idGen:        mocks.NewMockIDGenerator(ctrl),
		cache:        mocks.NewMockCache(ctrl),
		exporter:     mocks.NewMockReportExporter(ctrl),
		metrics:      mocks.NewMockMetrics(ctrl),
	}
}

func TestCashbookUseCase_CreateEntry(t *testing.T) {
	m := newCashbookMocks(t)
	uc := usecase.NewCashbookUseCase(m.cashbookRepo, m.paymentRepo, m.idGen, zerolog.Nop(),
		usecase.WithReportCache(m.cache, time.Minute), usecase.WithMetrics(m.metrics))
	ctx := context.Background()

	gomock.InOrder(
		m.idGen.EXPECT().Generate().Return("e1"),
		m.idGen.EXPECT().Generate().Return("gen-2"),
	)
	m.cashbookRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.metrics.EXPECT().RecordCashbookEntry("manual")
	m.cache.EXPECT().Set(ctx, "cashbook:generation", []byte("gen-2"), gomock.Any()).Return(nil)

	entry, err := uc.CreateEntry(ctx, usecase.CreateEntryInput{
		Date:        "2023-05-01T10:00:00Z",
		CashIn:      d("100"),
		CashOut:     d("0"),
		Description: " Sale of lawn ",
	})
	require.NoError(t, err)

	assert.Equal(t, "e1", entry.ID)
	assert.Equal(t, "2023-05-01", entry.Date)
	assert.Equal(t, "Sale of lawn", entry.Description)
	assert.Equal(t, domain.EntrySourceManual, entry.Source)
}

func TestCashbookUseCase_CreateEntryRejectsInvalid(t *testing.T) {
	m := newCashbookMocks(t)
	uc := usecase.NewCashbookUseCase(m.cashbookRepo, m.paymentRepo, m.idGen, zerolog.Nop())

	tests := []struct {
		name  string
		input usecase.CreateEntryInput
		want  error
	}{
		{"missing date", usecase.CreateEntryInput{CashIn: d("1"), Description: "x"}, domain.ErrInvalidDate},
		{"no amount", usecase.CreateEntryInput{Date: "2023-01-01", CashIn: d("0"), CashOut: d("0"), Description: "x"}, domain.ErrInvalidEntry},
		{"no description", usecase.CreateEntryInput{Date: "2023-01-01", CashIn: d("5"), CashOut: d("0")}, domain.ErrInvalidEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.idGen.EXPECT().Generate().Return("e1")
			_, err := uc.CreateEntry(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCashbookUseCase_RecordPayment(t *testing.T) {
	m := newCashbookMocks(t)
	uc := usecase.NewCashbookUseCase(m.cashbookRepo, m.paymentRepo, m.idGen, zerolog.Nop(), usecase.WithMetrics(m.metrics))
	ctx := context.Background()

	m.idGen.EXPECT().Generate().Return("p1")
	m.paymentRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.CustomerPayment) error {
		assert.Equal(t, "2023-06-02", p.Date)
		assert.Equal(t, "Karim", p.CustomerName)
		return nil
	})
	m.metrics.EXPECT().RecordCashbookEntry("customer_payment")

	payment, err := uc.RecordPayment(ctx, usecase.RecordPaymentInput{
		CustomerName: " Karim ",
		MemoNumber:   "M-9",
		Amount:       d("300"),
		Date:         "2023/06/02",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", payment.ID)
}

func TestCashbookUseCase_GetReportMergesPayments(t *testing.T) {
	m := newCashbookMocks(t)
	uc := usecase.NewCashbookUseCase(m.cashbookRepo, m.paymentRepo, m.idGen, zerolog.Nop())
	ctx := context.Background()

	m.cashbookRepo.EXPECT().List(ctx).Return([]domain.LedgerEntry{
		{ID: "e1", Date: "2023-01-01", CashIn: d("50"), CashOut: d("0"), Description: "opening"},
		{ID: "e2", Date: "2023-01-02", CashIn: d("0"), CashOut: d("20"), Description: "transport"},
	}, nil)
	m.paymentRepo.EXPECT().List(ctx).Return([]*domain.CustomerPayment{
		{ID: "p1", CustomerName: "Karim", Amount: d("100"), Date: "2023-01-02"},
	}, nil)

	report, err := uc.GetReport(ctx, domain.ReportFilter{})
	require.NoError(t, err)

	assert.True(t, report.Financials.TotalCashIn.Equal(d("150")))
	assert.True(t, report.Financials.AvailableCash.Equal(d("130")))
	assert.Equal(t, []string{"2023-01-02", "2023-01-01"}, report.SortedDates)

	group := report.GroupedEntries["2023-01-02"]
	require.Len(t, group.Income, 1)
	assert.Equal(t, "Payment from Karim", group.Income[0].Description)
}

func TestCashbookUseCase_GetReportUsesCache(t *testing.T) {
	m := newCashbookMocks(t)
	uc := usecase.NewCashbookUseCase(m.cashbookRepo, m.paymentRepo, m.idGen, zerolog.Nop(),
		usecase.WithReportCache(m.cache, time.Minute), usecase.WithMetrics(m.metrics))
	ctx := context.Background()

	cached := domain.AggregateLedger([]domain.LedgerEntry{
		{ID: "e1", Date: "2023-01-01", CashIn: d("70"), CashOut: d("0"), Description: "cached"},
	}, domain.ReportFilter{})
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	m.cache.EXPECT().Get(ctx, "cashbook:generation").Return([]byte("g7"), nil)
	m.cache.EXPECT().Get(ctx, "cashbook:report:g7:2023-01-01:silk").Return(data, nil)
	m.metrics.EXPECT().RecordReportCache(true)

	report, err := uc.GetReport(ctx, domain.ReportFilter{Date: "2023-01-01", Search: " Silk "})
	require.NoError(t, err)

	assert.True(t, report.Financials.TotalCashIn.Equal(d("70")))
}

func TestCashbookUseCase_GetReportFillsCacheOnMiss(t *testing.T) {
	m := newCashbookMocks(t)
	uc := usecase.NewCashbookUseCase(m.cashbookRepo, m.paymentRepo, m.idGen, zerolog.Nop(),
		usecase.WithReportCache(m.cache, time.Minute), usecase.WithMetrics(m.metrics))
	ctx := context.Background()

	m.cache.EXPECT().Get(ctx, "cashbook:generation").Return(nil, usecase.ErrCacheMiss)
	m.cache.EXPECT().Get(ctx, "cashbook:report:0::").Return(nil, usecase.ErrCacheMiss)
	m.metrics.EXPECT().RecordReportCache(false)
	m.cashbookRepo.EXPECT().List(ctx).Return(nil, nil)
	m.paymentRepo.EXPECT().List(ctx).Return(nil, nil)
	m.cache.EXPECT().Set(ctx, "cashbook:report:0::", gomock.Any(), time.Minute).Return(nil)

	report, err := uc.GetReport(ctx, domain.ReportFilter{})
	require.NoError(t, err)
	assert.Empty(t, report.SortedDates)
}

func TestCashbookUseCase_GetReportIgnoresCacheFailure(t *testing.T) {
	m := newCashbookMocks(t)
	uc := usecase.NewCashbookUseCase(m.cashbookRepo, m.paymentRepo, m.idGen, zerolog.Nop(),
		usecase.WithReportCache(m.cache, time.Minute), usecase.WithMetrics(m.metrics))
	ctx := context.Background()
	redisDown := errors.New("redis down")

	m.cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, redisDown).Times(2)
	m.metrics.EXPECT().RecordReportCache(false)
	m.cashbookRepo.EXPECT().List(ctx).Return([]domain.LedgerEntry{
		{ID: "e1", Date: "2023-01-01", CashIn: d("10"), CashOut: d("0"), Description: "x"},
	}, nil)
	m.paymentRepo.EXPECT().List(ctx).Return(nil, nil)
	m.cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(redisDown)

	report, err := uc.GetReport(ctx, domain.ReportFilter{})
	require.NoError(t, err)
	assert.True(t, report.Financials.AvailableCash.Equal(d("10")))
}

func TestCashbookUseCase_DeleteEntryInvalidatesReports(t *testing.T) {
	m := newCashbookMocks(t)
	uc := usecase.NewCashbookUseCase(m.cashbookRepo, m.paymentRepo, m.idGen, zerolog.Nop(),
		usecase.WithReportCache(m.cache, time.Minute))
	ctx := context.Background()

	m.cashbookRepo.EXPECT().Delete(ctx, "e1").Return(nil)
	m.idGen.EXPECT().Generate().Return("gen-3")
	m.cache.EXPECT().Set(ctx, "cashbook:generation", []byte("gen-3"), gomock.Any()).Return(nil)

	require.NoError(t, uc.DeleteEntry(ctx, "e1"))
}

func TestCashbookUseCase_DeleteEntryNotFound(t *testing.T) {
	m := newCashbookMocks(t)
	uc := usecase.NewCashbookUseCase(m.cashbookRepo, m.paymentRepo, m.idGen, zerolog.Nop(),
		usecase.WithReportCache(m.cache, time.Minute))
	ctx := context.Background()

	m.cashbookRepo.EXPECT().Delete(ctx, "missing").Return(domain.ErrEntryNotFound)

	assert.ErrorIs(t, uc.DeleteEntry(ctx, "missing"), domain.ErrEntryNotFound)
}

func TestCashbookUseCase_ListEntriesNewestFirst(t *testing.T) {
	m := newCashbookMocks(t)
	uc := usecase.NewCashbookUseCase(m.cashbookRepo, m.paymentRepo, m.idGen, zerolog.Nop())
	ctx := context.Background()

	m.cashbookRepo.EXPECT().List(ctx).Return([]domain.LedgerEntry{
		{ID: "old", Date: "2023-01-01"},
		{ID: "new", Date: "2023-03-01"},
	}, nil)
	m.paymentRepo.EXPECT().List(ctx).Return([]*domain.CustomerPayment{
		{ID: "mid", Date: "2023-02-01", Amount: d("1"), CustomerName: "A"},
	}, nil)

	entries, err := uc.ListEntries(ctx)
	require.NoError(t, err)

	ids := []string{entries[0].ID, entries[1].ID, entries[2].ID}
	assert.Equal(t, []string{"new", "mid", "old"}, ids)
}

func TestCashbookUseCase_ExportReport(t *testing.T) {
	m := newCashbookMocks(t)
	uc := usecase.NewCashbookUseCase(m.cashbookRepo, m.paymentRepo, m.idGen, zerolog.Nop(),
		usecase.WithReportExporter(m.exporter))
	ctx := context.Background()

	m.cashbookRepo.EXPECT().List(ctx).Return(nil, nil)
	m.paymentRepo.EXPECT().List(ctx).Return(nil, nil)
	m.exporter.EXPECT().Export(gomock.Any(), gomock.Any()).DoAndReturn(func(w io.Writer, _ *domain.LedgerReport) error {
		_, err := w.Write([]byte("xlsx"))
		return err
	})

	var buf bytes.Buffer
	require.NoError(t, uc.ExportReport(ctx, &buf, domain.ReportFilter{}))
	assert.Equal(t, "xlsx", buf.String())
}

func TestCashbookUseCase_ExportWithoutExporter(t *testing.T) {
	m := newCashbookMocks(t)
	uc := usecase.NewCashbookUseCase(m.cashbookRepo, m.paymentRepo, m.idGen, zerolog.Nop())

	err := uc.ExportReport(context.Background(), io.Discard, domain.ReportFilter{})
	assert.ErrorIs(t, err, usecase.ErrExportUnavailable)
	assert.Empty(t, uc.ExportContentType())
}
