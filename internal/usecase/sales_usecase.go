package usecase

import (
	"context"
	"time"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
)

// summaryPageSize is the page size used when totalling every sale in a range.
const summaryPageSize = 1000

// SalesUseCase handles sale history and profit reporting.
type SalesUseCase struct {
	saleRepo SaleRepository
}

// NewSalesUseCase creates a new SalesUseCase.
func NewSalesUseCase(saleRepo SaleRepository) *SalesUseCase {
	return &SalesUseCase{
		saleRepo: saleRepo,
	}
}

// ListSalesInput represents input for listing sales.
type ListSalesInput struct {
	FabricID string
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}

// ListSales lists sales newest first.
func (uc *SalesUseCase) ListSales(ctx context.Context, input ListSalesInput) ([]*domain.Sale, error) {
	if err := validateRange(input.From, input.To); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.saleRepo.List(ctx, SaleFilter{
		FabricID: input.FabricID,
		From:     input.From,
		To:       input.To,
		Limit:    limit,
		Offset:   offset,
	})
}

// GetSale retrieves a sale by ID.
func (uc *SalesUseCase) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	return uc.saleRepo.GetByID(ctx, id)
}

// GetProfitSummary totals revenue, FIFO cost and profit of every sale in [from, to].
func (uc *SalesUseCase) GetProfitSummary(ctx context.Context, from, to time.Time) (*domain.ProfitSummary, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	var all []*domain.Sale
	for offset := 0; ; offset += summaryPageSize {
		page, err := uc.saleRepo.List(ctx, SaleFilter{From: from, To: to, Limit: summaryPageSize, Offset: offset})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < summaryPageSize {
			break
		}
	}

	summary := domain.SummarizeSales(all)
	return &summary, nil
}

func validateRange(from, to time.Time) error {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return domain.ErrInvalidDate
	}
	return nil
}
