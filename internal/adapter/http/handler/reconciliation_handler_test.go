package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rishad190/bhaiyaPos-sub001/internal/adapter/http/dto"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

type reconciliationServiceStub struct {
	fabricFn func(ctx context.Context, fabricID string) (*usecase.StockReconciliation, error)
	reportFn func(ctx context.Context) (*usecase.ReconciliationReport, error)
}

func (s *reconciliationServiceStub) ReconcileFabric(ctx context.Context, fabricID string) (*usecase.StockReconciliation, error) {
	return s.fabricFn(ctx, fabricID)
}

func (s *reconciliationServiceStub) GenerateReconciliationReport(ctx context.Context) (*usecase.ReconciliationReport, error) {
	return s.reportFn(ctx)
}

func TestReconciliationHandler_Report(t *testing.T) {
	handler := NewReconciliationHandler(&reconciliationServiceStub{
		reportFn: func(ctx context.Context) (*usecase.ReconciliationReport, error) {
			return &usecase.ReconciliationReport{
				TotalFabrics:      1,
				ReconciledFabrics: 0,
				Discrepancies: []usecase.Discrepancy{
					{Kind: usecase.DiscrepancyBatch, ID: "b1", Expected: decimal.Zero, Actual: decimal.NewFromInt(-1), Reason: "negative quantity"},
				},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reconciliation", nil)
	rec := httptest.NewRecorder()

	handler.Report(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ReconciliationReportResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Consistent || len(resp.Discrepancies) != 1 {
		t.Fatalf("unexpected report: %+v", resp)
	}
}

func TestReconciliationHandler_Fabric_Error(t *testing.T) {
	handler := NewReconciliationHandler(&reconciliationServiceStub{
		fabricFn: func(ctx context.Context, fabricID string) (*usecase.StockReconciliation, error) {
			return nil, errors.New("db down")
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/reconciliation/fabrics/f1", nil), "id", "f1")
	rec := httptest.NewRecorder()

	handler.Fabric(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
