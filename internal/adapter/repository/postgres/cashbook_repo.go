package postgres

import (
	"context"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/infrastructure/postgres/generated"
)

// CashbookRepository implements usecase.CashbookRepository.
type CashbookRepository struct {
	queries *generated.Queries
}

// NewCashbookRepository creates a new CashbookRepository.
func NewCashbookRepository(db generated.DBTX) *CashbookRepository {
	return &CashbookRepository{
		queries: generated.New(db),
	}
}

// Create stores a manual entry.
func (r *CashbookRepository) Create(ctx context.Context, entry *domain.LedgerEntry) error {
	date, err := stringToPgDate(entry.Date)
	if err != nil {
		return err
	}

	return r.queries.CreateCashbookEntry(ctx, generated.CreateCashbookEntryParams{
		ID:          entry.ID,
		EntryDate:   date,
		CashIn:      decimalToNumeric(entry.CashIn),
		CashOut:     decimalToNumeric(entry.CashOut),
		Description: entry.Description,
		Reference:   entry.Reference,
		Source:      string(entry.Source),
		CreatedAt:   timeToPgTimestamptz(entry.CreatedAt),
	})
}

// Delete removes an entry.
func (r *CashbookRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.queries.DeleteCashbookEntry(ctx, id)
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// List returns every manual entry in chronological order.
func (r *CashbookRepository) List(ctx context.Context) ([]domain.LedgerEntry, error) {
	rows, err := r.queries.ListCashbookEntries(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.LedgerEntry{
			ID:          row.ID,
			Date:        pgDateToString(row.EntryDate),
			CashIn:      numericToDecimal(row.CashIn),
			CashOut:     numericToDecimal(row.CashOut),
			Description: row.Description,
			Reference:   row.Reference,
			Source:      domain.EntrySource(row.Source),
			CreatedAt:   row.CreatedAt.Time,
		})
	}

	return entries, nil
}
