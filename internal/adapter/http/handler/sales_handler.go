package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rishad190/bhaiyaPos-sub001/internal/adapter/http/dto"
	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

// SalesService defines the behavior needed by SalesHandler.
type SalesService interface {
	ListSales(ctx context.Context, input usecase.ListSalesInput) ([]*domain.Sale, error)
	GetSale(ctx context.Context, id string) (*domain.Sale, error)
	GetProfitSummary(ctx context.Context, from, to time.Time) (*domain.ProfitSummary, error)
}

// SalesHandler handles sales history and profit requests.
type SalesHandler struct {
	salesUC SalesService
}

// NewSalesHandler creates a new SalesHandler.
func NewSalesHandler(salesUC SalesService) *SalesHandler {
	return &SalesHandler{salesUC: salesUC}
}

// List lists sales, optionally filtered by fabric and date range.
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRangeQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}

	sales, err := h.salesUC.ListSales(r.Context(), usecase.ListSalesInput{
		FabricID: r.URL.Query().Get("fabric_id"),
		From:     from,
		To:       to,
		Limit:    parseIntQuery(r, "limit", 50),
		Offset:   parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list sales", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SalesFromDomain(sales))
}

// Get retrieves a sale with its consumed lots.
func (h *SalesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing sale ID", "")
		return
	}

	sale, err := h.salesUC.GetSale(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get sale", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SaleFromDomain(sale))
}

// Summary returns revenue, cost and profit totals.
func (h *SalesHandler) Summary(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRangeQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}

	summary, err := h.salesUC.GetProfitSummary(r.Context(), from, to)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to summarize sales", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProfitSummaryFromDomain(summary))
}
