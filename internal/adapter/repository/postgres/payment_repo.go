package postgres

import (
	"context"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
	"github.com/rishad190/bhaiyaPos-sub001/internal/infrastructure/postgres/generated"
)

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	queries *generated.Queries
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db generated.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: generated.New(db),
	}
}

// Create stores a customer payment.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.CustomerPayment) error {
	date, err := stringToPgDate(payment.Date)
	if err != nil {
		return err
	}

	return r.queries.CreateCustomerPayment(ctx, generated.CreateCustomerPaymentParams{
		ID:           payment.ID,
		CustomerName: payment.CustomerName,
		MemoNumber:   payment.MemoNumber,
		Amount:       decimalToNumeric(payment.Amount),
		PaymentDate:  date,
		Note:         payment.Note,
		CreatedAt:    timeToPgTimestamptz(payment.CreatedAt),
	})
}

// List returns every payment in chronological order.
func (r *PaymentRepository) List(ctx context.Context) ([]*domain.CustomerPayment, error) {
	rows, err := r.queries.ListCustomerPayments(ctx)
	if err != nil {
		return nil, err
	}

	payments := make([]*domain.CustomerPayment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, &domain.CustomerPayment{
			ID:           row.ID,
			CustomerName: row.CustomerName,
			MemoNumber:   row.MemoNumber,
			Amount:       numericToDecimal(row.Amount),
			Date:         pgDateToString(row.PaymentDate),
			Note:         row.Note,
			CreatedAt:    row.CreatedAt.Time,
		})
	}

	return payments, nil
}
