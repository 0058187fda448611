package usecase

import (
	"context"
	"io"
	"time"

	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
)

// FabricRepository defines data access for the fabric catalog.
type FabricRepository interface {
	Create(ctx context.Context, fabric *domain.Fabric) error
	GetByID(ctx context.Context, id string) (*domain.Fabric, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Fabric, error)
}

// BatchRepository defines data access for purchase batches.
type BatchRepository interface {
	Create(ctx context.Context, batch *domain.Batch) error
	ListByFabric(ctx context.Context, fabricID string) ([]domain.Batch, error)
	// ListByFabricForUpdate locks the fabric's batches until tx ends.
	ListByFabricForUpdate(ctx context.Context, tx Transaction, fabricID string) ([]domain.Batch, error)
	UpdateStock(ctx context.Context, tx Transaction, batches []domain.Batch, updatedAt time.Time) error
}

// SaleFilter narrows sale listings. Zero values are ignored.
type SaleFilter struct {
	FabricID string
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}

// SaleRepository defines data access for sales.
type SaleRepository interface {
	Create(ctx context.Context, tx Transaction, sale *domain.Sale) error
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]*domain.Sale, error)
}

// CashbookRepository defines data access for manual cashbook entries.
type CashbookRepository interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.LedgerEntry, error)
}

// PaymentRepository defines data access for customer payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.CustomerPayment) error
	List(ctx context.Context) ([]*domain.CustomerPayment, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation that failed with a transient storage error.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a key whose request did not complete successfully.
	Release(ctx context.Context, key string) error
}

// Metrics records business events.
type Metrics interface {
	RecordSale(quantity, revenue, profit float64)
	RecordSaleError(reason string)
	RecordCashbookEntry(source string)
	RecordReportCache(hit bool)
}

// ReportExporter writes a cashbook report in a downloadable format.
type ReportExporter interface {
	ContentType() string
	Export(w io.Writer, report *domain.LedgerReport) error
}
