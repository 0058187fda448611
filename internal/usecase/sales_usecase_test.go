package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase/mocks"
)

func TestSalesUseCase_GetProfitSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	uc := usecase.NewSalesUseCase(saleRepo)
	ctx := context.Background()

	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	saleRepo.EXPECT().List(ctx, usecase.SaleFilter{From: from, To: to, Limit: 1000, Offset: 0}).Return([]*domain.Sale{
		{ID: "s1", Quantity: d("2"), Revenue: d("200"), Cost: d("150")},
		{ID: "s2", Quantity: d("1"), Revenue: d("100"), Cost: d("50")},
	}, nil)

	summary, err := uc.GetProfitSummary(ctx, from, to)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.SaleCount)
	assert.True(t, summary.Profit.Equal(d("100")))
	assert.True(t, summary.Margin.Equal(d("33.33")), "got %s", summary.Margin)
}

func TestSalesUseCase_GetProfitSummaryPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	uc := usecase.NewSalesUseCase(saleRepo)
	ctx := context.Background()

	fullPage := make([]*domain.Sale, 1000)
	for i := range fullPage {
		fullPage[i] = &domain.Sale{ID: fmt.Sprintf("s%d", i), Quantity: d("1"), Revenue: d("2"), Cost: d("1")}
	}

	gomock.InOrder(
		saleRepo.EXPECT().List(ctx, usecase.SaleFilter{Limit: 1000, Offset: 0}).Return(fullPage, nil),
		saleRepo.EXPECT().List(ctx, usecase.SaleFilter{Limit: 1000, Offset: 1000}).Return([]*domain.Sale{
			{ID: "last", Quantity: d("1"), Revenue: d("2"), Cost: d("1")},
		}, nil),
	)

	summary, err := uc.GetProfitSummary(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1001, summary.SaleCount)
}

func TestSalesUseCase_RejectsInvertedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := usecase.NewSalesUseCase(mocks.NewMockSaleRepository(ctrl))

	from := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.ListSales(context.Background(), usecase.ListSalesInput{From: from, To: to})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = uc.GetProfitSummary(context.Background(), from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestSalesUseCase_ListSalesDefaultsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	uc := usecase.NewSalesUseCase(saleRepo)
	ctx := context.Background()

	saleRepo.EXPECT().List(ctx, usecase.SaleFilter{FabricID: "f1", Limit: 50}).Return([]*domain.Sale{}, nil)

	sales, err := uc.ListSales(ctx, usecase.ListSalesInput{FabricID: "f1"})
	require.NoError(t, err)
	assert.Empty(t, sales)
}
