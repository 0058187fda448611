package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rishad190/bhaiyaPos-sub001/internal/adapter/http/dto"
	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

// CashbookService defines the behavior needed by CashbookHandler.
type CashbookService interface {
	CreateEntry(ctx context.Context, input usecase.CreateEntryInput) (*domain.LedgerEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	RecordPayment(ctx context.Context, input usecase.RecordPaymentInput) (*domain.CustomerPayment, error)
	ListEntries(ctx context.Context) ([]domain.LedgerEntry, error)
	GetReport(ctx context.Context, filter domain.ReportFilter) (*domain.LedgerReport, error)
	ExportReport(ctx context.Context, w io.Writer, filter domain.ReportFilter) error
	ExportContentType() string
}

// CashbookHandler handles cashbook entry and report requests.
type CashbookHandler struct {
	cashbookUC CashbookService
}

// NewCashbookHandler creates a new CashbookHandler.
func NewCashbookHandler(cashbookUC CashbookService) *CashbookHandler {
	return &CashbookHandler{cashbookUC: cashbookUC}
}

// CreateEntry records a manual cashbook entry.
func (h *CashbookHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry", err.Error())
		return
	}

	entry, err := h.cashbookUC.CreateEntry(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.LedgerEntryFromDomain(*entry))
}

// ListEntries lists every cashbook entry.
func (h *CashbookHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.cashbookUC.ListEntries(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerEntriesFromDomain(entries))
}

// DeleteEntry removes a cashbook entry.
func (h *CashbookHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	if err := h.cashbookUC.DeleteEntry(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete entry", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordPayment records a customer payment and its cashbook entry.
func (h *CashbookHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment", err.Error())
		return
	}

	payment, err := h.cashbookUC.RecordPayment(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record payment", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PaymentFromDomain(payment))
}

// Report returns the aggregated cashbook report.
func (h *CashbookHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.cashbookUC.GetReport(r.Context(), reportFilterFromQuery(r))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerReportFromDomain(report))
}

// Export streams the cashbook report as a spreadsheet.
func (h *CashbookHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.cashbookUC.ExportReport(r.Context(), &buf, reportFilterFromQuery(r)); err != nil {
		writeError(w, mapDomainError(err), "failed to export report", err.Error())
		return
	}

	w.Header().Set("Content-Type", h.cashbookUC.ExportContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "cashbook.xlsx"))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
