package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase"
	"github.com/rishad190/bhaiyaPos-sub001/internal/usecase/mocks"
)

func TestReconciliationUseCase_ReconcileFabric(t *testing.T) {
	ctrl := gomock.NewController(t)
	batchRepo := mocks.NewMockBatchRepository(ctrl)
	uc := usecase.NewReconciliationUseCase(mocks.NewMockFabricRepository(ctrl), batchRepo, mocks.NewMockSaleRepository(ctrl))
	ctx := context.Background()

	batchRepo.EXPECT().ListByFabric(ctx, "f1").Return([]domain.Batch{
		{ID: "ok", Quantity: d("5"), Colors: []domain.ColorQuantity{{Color: "red", Quantity: d("5")}}},
		{ID: "drift", Quantity: d("8"), Colors: []domain.ColorQuantity{{Color: "red", Quantity: d("5")}}},
		{ID: "neg", Quantity: d("-1")},
	}, nil)

	result, err := uc.ReconcileFabric(ctx, "f1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.IsReconciled {
		t.Fatal("expected discrepancies")
	}
	if len(result.Discrepancies) != 2 {
		t.Fatalf("expected 2 discrepancies, got %d", len(result.Discrepancies))
	}
	if result.Discrepancies[0].ID != "drift" || result.Discrepancies[1].ID != "neg" {
		t.Fatalf("unexpected discrepancy order: %+v", result.Discrepancies)
	}
	if !result.TotalQuantity.Equal(d("12")) {
		t.Fatalf("expected total 12, got %s", result.TotalQuantity)
	}
}

func TestReconciliationUseCase_GenerateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	fabricRepo := mocks.NewMockFabricRepository(ctrl)
	batchRepo := mocks.NewMockBatchRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	uc := usecase.NewReconciliationUseCase(fabricRepo, batchRepo, saleRepo)
	ctx := context.Background()

	fabricRepo.EXPECT().List(ctx, 1000, 0).Return([]*domain.Fabric{{ID: "f1"}, {ID: "f2"}}, nil)
	batchRepo.EXPECT().ListByFabric(ctx, "f1").Return([]domain.Batch{{ID: "b1", Quantity: d("3")}}, nil)
	batchRepo.EXPECT().ListByFabric(ctx, "f2").Return(nil, nil)
	saleRepo.EXPECT().List(ctx, usecase.SaleFilter{Limit: 1000}).Return([]*domain.Sale{
		{
			ID:       "good",
			Quantity: d("3"),
			Cost:     d("15"),
			Lots:     []domain.ConsumedLot{{BatchID: "b1", Quantity: d("3"), UnitCost: d("5")}},
		},
		{
			ID:       "bad-cost",
			Quantity: d("2"),
			Cost:     d("99"),
			Lots:     []domain.ConsumedLot{{BatchID: "b1", Quantity: d("2"), UnitCost: d("5")}},
		},
	}, nil)

	report, err := uc.GenerateReconciliationReport(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalFabrics != 2 || report.ReconciledFabrics != 2 {
		t.Fatalf("unexpected fabric counts: %+v", report)
	}
	if report.Consistent {
		t.Fatal("expected inconsistent report")
	}
	if len(report.Discrepancies) != 1 || report.Discrepancies[0].ID != "bad-cost" {
		t.Fatalf("unexpected discrepancies: %+v", report.Discrepancies)
	}
}

func TestReconciliationUseCase_PropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	fabricRepo := mocks.NewMockFabricRepository(ctrl)
	batchRepo := mocks.NewMockBatchRepository(ctrl)
	uc := usecase.NewReconciliationUseCase(fabricRepo, batchRepo, mocks.NewMockSaleRepository(ctrl))
	ctx := context.Background()
	dbErr := errors.New("db down")

	fabricRepo.EXPECT().List(ctx, 1000, 0).Return([]*domain.Fabric{{ID: "f1"}}, nil)
	batchRepo.EXPECT().ListByFabric(ctx, "f1").Return(nil, dbErr)

	_, err := uc.ReconcileAllFabrics(ctx)
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestReconciliationUseCase_CheckSalesComparesStoredScale(t *testing.T) {
	ctrl := gomock.NewController(t)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	uc := usecase.NewReconciliationUseCase(mocks.NewMockFabricRepository(ctrl), mocks.NewMockBatchRepository(ctrl), saleRepo)
	ctx := context.Background()

	saleRepo.EXPECT().List(ctx, usecase.SaleFilter{Limit: 1000}).Return([]*domain.Sale{
		{
			ID:       "rounded",
			Quantity: d("1.5"),
			Cost:     d("0.5"),
			Lots:     []domain.ConsumedLot{{BatchID: "b1", Quantity: d("1.5"), UnitCost: d("0.3333")}},
		},
	}, nil)

	issues, err := uc.CheckSales(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("expected no discrepancies, got %+v", issues)
	}
}
