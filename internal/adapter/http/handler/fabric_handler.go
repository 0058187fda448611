package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rishad190/bhaiyaPos-sub001/internal/adapter/http/dto"
	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

// InventoryService defines the behavior needed by FabricHandler.
type InventoryService interface {
	CreateFabric(ctx context.Context, input usecase.CreateFabricInput) (*domain.Fabric, error)
	GetFabric(ctx context.Context, id string) (*domain.Fabric, error)
	ListFabrics(ctx context.Context, input usecase.ListFabricsInput) ([]*domain.Fabric, error)
	AddBatch(ctx context.Context, input usecase.AddBatchInput) (*domain.Batch, error)
	ListBatches(ctx context.Context, fabricID string) ([]domain.Batch, error)
	GetStockSummary(ctx context.Context, fabricID string) (*domain.StockSummary, error)
	PreviewSale(ctx context.Context, input usecase.SellInput) (*usecase.SalePreview, error)
	SellFabric(ctx context.Context, input usecase.SellInput) (*domain.Sale, error)
}

// FabricHandler handles fabric catalog, stock and sale requests.
type FabricHandler struct {
	inventoryUC InventoryService
}

// NewFabricHandler creates a new FabricHandler.
func NewFabricHandler(inventoryUC InventoryService) *FabricHandler {
	return &FabricHandler{inventoryUC: inventoryUC}
}

// Create adds a fabric to the catalog.
func (h *FabricHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFabricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	fabric, err := h.inventoryUC.CreateFabric(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create fabric", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.FabricFromDomain(fabric))
}

// Get retrieves a fabric by ID.
func (h *FabricHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing fabric ID", "")
		return
	}

	fabric, err := h.inventoryUC.GetFabric(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get fabric", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FabricFromDomain(fabric))
}

// List lists fabrics.
func (h *FabricHandler) List(w http.ResponseWriter, r *http.Request) {
	fabrics, err := h.inventoryUC.ListFabrics(r.Context(), usecase.ListFabricsInput{
		Limit:  parseIntQuery(r, "limit", 50),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list fabrics", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FabricsFromDomain(fabrics))
}

// AddBatch records a stock purchase for a fabric.
func (h *FabricHandler) AddBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid batch", err.Error())
		return
	}

	batch, err := h.inventoryUC.AddBatch(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add batch", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BatchFromDomain(*batch))
}

// ListBatches lists a fabric's batches in FIFO order.
func (h *FabricHandler) ListBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.inventoryUC.ListBatches(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list batches", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BatchesFromDomain(batches))
}

// Stock returns current stock for a fabric.
func (h *FabricHandler) Stock(w http.ResponseWriter, r *http.Request) {
	summary, err := h.inventoryUC.GetStockSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get stock", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StockSummaryFromDomain(*summary))
}

// PreviewSale runs a FIFO allocation without persisting it.
func (h *FabricHandler) PreviewSale(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeSell(w, r)
	if !ok {
		return
	}

	preview, err := h.inventoryUC.PreviewSale(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to preview sale", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SalePreviewFromUseCase(preview))
}

// Sell deducts stock FIFO and records the sale.
func (h *FabricHandler) Sell(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeSell(w, r)
	if !ok {
		return
	}

	sale, err := h.inventoryUC.SellFabric(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to sell fabric", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SaleFromDomain(sale))
}

func decodeSell(w http.ResponseWriter, r *http.Request) (usecase.SellInput, bool) {
	var req dto.SellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return usecase.SellInput{}, false
	}

	input, err := req.ToUseCaseInput(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sale", err.Error())
		return usecase.SellInput{}, false
	}

	return input, true
}
