package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
)

// InventoryUseCase handles the fabric catalog, stock purchases and FIFO sales.
type InventoryUseCase struct {
	txManager  TransactionManager
	fabricRepo FabricRepository
	batchRepo  BatchRepository
	saleRepo   SaleRepository
	idGen      IDGenerator
	retrier    Retrier
	metrics    Metrics
	logger     zerolog.Logger
}

// NewInventoryUseCase creates a new InventoryUseCase.
func NewInventoryUseCase(
	txManager TransactionManager,
	fabricRepo FabricRepository,
	batchRepo BatchRepository,
	saleRepo SaleRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics Metrics,
	logger zerolog.Logger,
) *InventoryUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &InventoryUseCase{
		txManager:  txManager,
		fabricRepo: fabricRepo,
		batchRepo:  batchRepo,
		saleRepo:   saleRepo,
		idGen:      idGen,
		retrier:    retrier,
		metrics:    metrics,
		logger:     logger,
	}
}

// CreateFabricInput represents input for creating a fabric.
type CreateFabricInput struct {
	Name     string
	Code     string
	Category string
	Unit     string
}

// CreateFabric adds a fabric to the catalog.
func (uc *InventoryUseCase) CreateFabric(ctx context.Context, input CreateFabricInput) (*domain.Fabric, error) {
	now := time.Now().UTC()

	fabric := &domain.Fabric{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Code:      input.Code,
		Category:  input.Category,
		Unit:      input.Unit,
		CreatedAt: now,
		UpdatedAt: now,
	}
	fabric.Normalize()

	if err := fabric.Validate(); err != nil {
		return nil, err
	}

	if err := uc.fabricRepo.Create(ctx, fabric); err != nil {
		return nil, err
	}

	return fabric, nil
}

// GetFabric retrieves a fabric by ID.
func (uc *InventoryUseCase) GetFabric(ctx context.Context, id string) (*domain.Fabric, error) {
	return uc.fabricRepo.GetByID(ctx, id)
}

// ListFabricsInput represents input for listing fabrics.
type ListFabricsInput struct {
	Limit  int
	Offset int
}

// ListFabrics lists fabrics with pagination.
func (uc *InventoryUseCase) ListFabrics(ctx context.Context, input ListFabricsInput) ([]*domain.Fabric, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.fabricRepo.List(ctx, limit, offset)
}

// AddBatchInput represents a stock purchase.
type AddBatchInput struct {
	FabricID     string
	PurchaseDate time.Time
	UnitCost     decimal.Decimal
	Quantity     decimal.Decimal
	Color        string
	Colors       []domain.ColorQuantity
	SupplierName string
}

// AddBatch records a purchased batch for an existing fabric.
func (uc *InventoryUseCase) AddBatch(ctx context.Context, input AddBatchInput) (*domain.Batch, error) {
	if _, err := uc.fabricRepo.GetByID(ctx, input.FabricID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	batch, err := domain.NewBatch(domain.Batch{
		ID:           uc.idGen.Generate(),
		FabricID:     input.FabricID,
		PurchaseDate: input.PurchaseDate,
		UnitCost:     input.UnitCost,
		Quantity:     input.Quantity,
		Color:        input.Color,
		Colors:       input.Colors,
		SupplierName: input.SupplierName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.batchRepo.Create(ctx, batch); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("fabric_id", batch.FabricID).
		Str("batch_id", batch.ID).
		Str("quantity", batch.Quantity.String()).
		Msg("batch added")

	return batch, nil
}

// ListBatches returns every batch of a fabric in FIFO order.
func (uc *InventoryUseCase) ListBatches(ctx context.Context, fabricID string) ([]domain.Batch, error) {
	if _, err := uc.fabricRepo.GetByID(ctx, fabricID); err != nil {
		return nil, err
	}
	return uc.batchRepo.ListByFabric(ctx, fabricID)
}

// GetStockSummary totals the remaining stock of a fabric.
func (uc *InventoryUseCase) GetStockSummary(ctx context.Context, fabricID string) (*domain.StockSummary, error) {
	batches, err := uc.ListBatches(ctx, fabricID)
	if err != nil {
		return nil, err
	}

	summary := domain.SummarizeStock(batches)
	return &summary, nil
}

// SellInput represents one fabric line of a cash memo.
type SellInput struct {
	FabricID     string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	Color        string
	MemoNumber   string
	CustomerName string
	SoldAt       *time.Time
}

func (in SellInput) validate() error {
	if err := domain.ValidateQuantity(in.Quantity); err != nil {
		return err
	}
	if in.UnitPrice.IsNegative() || !domain.WithinScale(in.UnitPrice) {
		return domain.ErrInvalidAmount
	}
	return nil
}

// SalePreview is the outcome of a dry-run allocation.
type SalePreview struct {
	Allocation *domain.Allocation
	Remaining  domain.StockSummary
}

// PreviewSale allocates against current stock without writing anything.
func (uc *InventoryUseCase) PreviewSale(ctx context.Context, input SellInput) (*SalePreview, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	batches, err := uc.ListBatches(ctx, input.FabricID)
	if err != nil {
		return nil, err
	}

	alloc, err := domain.AllocateFIFO(batches, input.Quantity, input.Color)
	if err != nil {
		return nil, err
	}

	return &SalePreview{
		Allocation: alloc,
		Remaining:  domain.SummarizeStock(domain.MergeBatches(batches, alloc.UpdatedBatches)),
	}, nil
}

// SellFabric allocates stock by FIFO, persists the reduced batches and records the sale atomically.
func (uc *InventoryUseCase) SellFabric(ctx context.Context, input SellInput) (*domain.Sale, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if _, err := uc.fabricRepo.GetByID(ctx, input.FabricID); err != nil {
		return nil, err
	}

	soldAt := time.Now().UTC()
	if input.SoldAt != nil {
		soldAt = input.SoldAt.UTC()
	}

	var sale *domain.Sale
	err := uc.retrier.Retry(ctx, func() error {
		var err error
		sale, err = uc.sell(ctx, input, soldAt)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			uc.metrics.RecordSaleError(saleErrorInsufficient)
		} else {
			uc.metrics.RecordSaleError(saleErrorStorage)
		}
		return nil, err
	}

	uc.metrics.RecordSale(sale.Quantity.InexactFloat64(), sale.Revenue.InexactFloat64(), sale.Profit.InexactFloat64())
	uc.logger.Info().
		Str("sale_id", sale.ID).
		Str("fabric_id", sale.FabricID).
		Str("quantity", sale.Quantity.String()).
		Str("cost", sale.Cost.String()).
		Int("lots", len(sale.Lots)).
		Msg("fabric sold")

	return sale, nil
}

func (uc *InventoryUseCase) sell(ctx context.Context, input SellInput, soldAt time.Time) (*domain.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	batches, err := uc.batchRepo.ListByFabricForUpdate(ctx, tx, input.FabricID)
	if err != nil {
		return nil, err
	}

	alloc, err := domain.AllocateFIFO(batches, input.Quantity, input.Color)
	if err != nil {
		return nil, err
	}

	if err := uc.batchRepo.UpdateStock(ctx, tx, consumedBatches(alloc), soldAt); err != nil {
		return nil, err
	}

	sale, err := domain.NewSale(uc.idGen.Generate(), input.FabricID, alloc, input.UnitPrice, soldAt)
	if err != nil {
		return nil, err
	}
	sale.MemoNumber = input.MemoNumber
	sale.CustomerName = input.CustomerName

	if err := uc.saleRepo.Create(ctx, tx, sale); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return sale, nil
}

// consumedBatches returns the updated batches a sale actually drew from.
func consumedBatches(alloc *domain.Allocation) []domain.Batch {
	touched := make(map[string]struct{}, len(alloc.ConsumedLots))
	for _, lot := range alloc.ConsumedLots {
		touched[lot.BatchID] = struct{}{}
	}

	out := make([]domain.Batch, 0, len(touched))
	for _, b := range alloc.UpdatedBatches {
		if _, ok := touched[b.ID]; ok {
			out = append(out, b)
		}
	}
	return out
}

type noopMetrics struct{}

func (noopMetrics) RecordSale(float64, float64, float64) {}
func (noopMetrics) RecordSaleError(string)               {}
func (noopMetrics) RecordCashbookEntry(string)           {}
func (noopMetrics) RecordReportCache(bool)               {}
