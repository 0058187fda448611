package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultReportCacheTTL bounds how long a cached cashbook report lives
	DefaultReportCacheTTL = 5 * time.Minute

	reportCachePrefix     = "cashbook:report:"
	reportGenerationKey   = "cashbook:generation"
	reportGenerationTTL   = 30 * 24 * time.Hour
	saleErrorInsufficient = "insufficient_stock"
	saleErrorStorage      = "storage"
)
