package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/infrastructure/postgres/generated"
)

// FabricRepository implements usecase.FabricRepository.
type FabricRepository struct {
	queries *generated.Queries
}

// NewFabricRepository creates a new FabricRepository.
func NewFabricRepository(db generated.DBTX) *FabricRepository {
	return &FabricRepository{
		queries: generated.New(db),
	}
}

// Create creates a new fabric.
func (r *FabricRepository) Create(ctx context.Context, fabric *domain.Fabric) error {
	err := r.queries.CreateFabric(ctx, generated.CreateFabricParams{
		ID:        fabric.ID,
		Name:      fabric.Name,
		Code:      fabric.Code,
		Category:  fabric.Category,
		Unit:      fabric.Unit,
		CreatedAt: timeToPgTimestamptz(fabric.CreatedAt),
		UpdatedAt: timeToPgTimestamptz(fabric.UpdatedAt),
	})
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: code %s already exists", domain.ErrInvalidFabric, fabric.Code)
	}

	return err
}

// GetByID retrieves a fabric by ID.
func (r *FabricRepository) GetByID(ctx context.Context, id string) (*domain.Fabric, error) {
	row, err := r.queries.GetFabricByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFabricNotFound
		}

		return nil, err
	}

	return rowToFabric(row), nil
}

// List lists fabrics with pagination.
func (r *FabricRepository) List(ctx context.Context, limit, offset int) ([]*domain.Fabric, error) {
	rows, err := r.queries.ListFabrics(ctx, generated.ListFabricsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	fabrics := make([]*domain.Fabric, 0, len(rows))
	for _, row := range rows {
		fabrics = append(fabrics, rowToFabric(row))
	}

	return fabrics, nil
}

func rowToFabric(row generated.Fabric) *domain.Fabric {
	return &domain.Fabric{
		ID:        row.ID,
		Name:      row.Name,
		Code:      row.Code,
		Category:  row.Category,
		Unit:      row.Unit,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
