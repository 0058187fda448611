package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/infrastructure/postgres/generated"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

// BatchRepository implements usecase.BatchRepository.
// Color partitions are stored as a JSONB array on the batch row.
type BatchRepository struct {
	queries *generated.Queries
}

// NewBatchRepository creates a new BatchRepository.
func NewBatchRepository(db generated.DBTX) *BatchRepository {
	return &BatchRepository{
		queries: generated.New(db),
	}
}

// Create stores a purchased batch.
func (r *BatchRepository) Create(ctx context.Context, batch *domain.Batch) error {
	colors, err := encodeColors(batch.Colors)
	if err != nil {
		return err
	}

	return r.queries.CreateBatch(ctx, generated.CreateBatchParams{
		ID:           batch.ID,
		FabricID:     batch.FabricID,
		PurchaseDate: timeToPgDate(batch.PurchaseDate),
		UnitCost:     decimalToNumeric(batch.UnitCost),
		Quantity:     decimalToNumeric(batch.Quantity),
		Color:        batch.Color,
		Colors:       colors,
		SupplierName: batch.SupplierName,
		CreatedAt:    timeToPgTimestamptz(batch.CreatedAt),
		UpdatedAt:    timeToPgTimestamptz(batch.UpdatedAt),
	})
}

// ListByFabric returns the fabric's batches oldest first.
func (r *BatchRepository) ListByFabric(ctx context.Context, fabricID string) ([]domain.Batch, error) {
	rows, err := r.queries.ListBatchesByFabric(ctx, fabricID)
	if err != nil {
		return nil, err
	}

	return rowsToBatches(rows)
}

// ListByFabricForUpdate returns the fabric's batches with FOR UPDATE locks.
func (r *BatchRepository) ListByFabricForUpdate(ctx context.Context, tx usecase.Transaction, fabricID string) ([]domain.Batch, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	rows, err := queries.ListBatchesByFabricForUpdate(ctx, fabricID)
	if err != nil {
		return nil, err
	}

	return rowsToBatches(rows)
}

// UpdateStock writes the remaining quantity and color partition of each batch.
func (r *BatchRepository) UpdateStock(ctx context.Context, tx usecase.Transaction, batches []domain.Batch, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	for _, b := range batches {
		colors, err := encodeColors(b.Colors)
		if err != nil {
			return err
		}

		affected, err := queries.UpdateBatchStock(ctx, generated.UpdateBatchStockParams{
			ID:        b.ID,
			Quantity:  decimalToNumeric(b.Quantity),
			Colors:    colors,
			UpdatedAt: timeToPgTimestamptz(updatedAt),
		})
		if err != nil {
			return err
		}

		if affected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrBatchNotFound, b.ID)
		}
	}

	return nil
}

func rowsToBatches(rows []generated.Batch) ([]domain.Batch, error) {
	batches := make([]domain.Batch, 0, len(rows))
	for _, row := range rows {
		b, err := rowToBatch(row)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, nil
}

func rowToBatch(row generated.Batch) (domain.Batch, error) {
	colors, err := decodeColors(row.Colors)
	if err != nil {
		return domain.Batch{}, err
	}

	return domain.Batch{
		ID:           row.ID,
		FabricID:     row.FabricID,
		PurchaseDate: row.PurchaseDate.Time,
		UnitCost:     numericToDecimal(row.UnitCost),
		Quantity:     numericToDecimal(row.Quantity),
		Color:        row.Color,
		Colors:       colors,
		SupplierName: row.SupplierName,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}, nil
}
