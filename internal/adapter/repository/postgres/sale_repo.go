package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/infrastructure/postgres/generated"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
)

// SaleRepository implements usecase.SaleRepository.
type SaleRepository struct {
	queries *generated.Queries
}

// NewSaleRepository creates a new SaleRepository.
func NewSaleRepository(db generated.DBTX) *SaleRepository {
	return &SaleRepository{
		queries: generated.New(db),
	}
}

// Create stores a sale and its consumed lots.
func (r *SaleRepository) Create(ctx context.Context, tx usecase.Transaction, sale *domain.Sale) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	err := queries.CreateSale(ctx, generated.CreateSaleParams{
		ID:           sale.ID,
		FabricID:     sale.FabricID,
		MemoNumber:   sale.MemoNumber,
		CustomerName: sale.CustomerName,
		Color:        sale.Color,
		Quantity:     decimalToNumeric(sale.Quantity),
		UnitPrice:    decimalToNumeric(sale.UnitPrice),
		Revenue:      decimalToNumeric(sale.Revenue),
		Cost:         decimalToNumeric(sale.Cost),
		Profit:       decimalToNumeric(sale.Profit),
		SoldAt:       timeToPgTimestamptz(sale.SoldAt),
	})
	if err != nil {
		return err
	}

	for i, lot := range sale.Lots {
		err := queries.CreateSaleLot(ctx, generated.CreateSaleLotParams{
			SaleID:   sale.ID,
			Position: int32(i),
			BatchID:  lot.BatchID,
			Quantity: decimalToNumeric(lot.Quantity),
			UnitCost: decimalToNumeric(lot.UnitCost),
			Color:    lot.Color,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a sale with its lots.
func (r *SaleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	row, err := r.queries.GetSaleByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSaleNotFound
		}

		return nil, err
	}

	sales := []*domain.Sale{rowToSale(row)}
	if err := r.attachLots(ctx, sales); err != nil {
		return nil, err
	}

	return sales[0], nil
}

// List lists sales newest first.
func (r *SaleRepository) List(ctx context.Context, filter usecase.SaleFilter) ([]*domain.Sale, error) {
	rows, err := r.queries.ListSales(ctx, generated.ListSalesParams{
		FabricID: optionalText(filter.FabricID),
		FromTime: optionalTimestamptz(filter.From),
		ToTime:   optionalTimestamptz(filter.To),
		Limit:    int32(filter.Limit),
		Offset:   int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	sales := make([]*domain.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, rowToSale(row))
	}

	if err := r.attachLots(ctx, sales); err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *SaleRepository) attachLots(ctx context.Context, sales []*domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	ids := make([]string, 0, len(sales))
	byID := make(map[string]*domain.Sale, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}

	lots, err := r.queries.ListSaleLotsBySaleIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, lot := range lots {
		s, ok := byID[lot.SaleID]
		if !ok {
			continue
		}
		s.Lots = append(s.Lots, domain.ConsumedLot{
			BatchID:  lot.BatchID,
			Quantity: numericToDecimal(lot.Quantity),
			UnitCost: numericToDecimal(lot.UnitCost),
			Color:    lot.Color,
		})
	}

	return nil
}

func rowToSale(row generated.Sale) *domain.Sale {
	return &domain.Sale{
		ID:           row.ID,
		FabricID:     row.FabricID,
		MemoNumber:   row.MemoNumber,
		CustomerName: row.CustomerName,
		Color:        row.Color,
		Quantity:     numericToDecimal(row.Quantity),
		UnitPrice:    numericToDecimal(row.UnitPrice),
		Revenue:      numericToDecimal(row.Revenue),
		Cost:         numericToDecimal(row.Cost),
		Profit:       numericToDecimal(row.Profit),
		Lots:         []domain.ConsumedLot{},
		SoldAt:       row.SoldAt.Time,
	}
}
