package domain

import "errors"

var (
	// Inventory errors
	ErrFabricNotFound    = errors.New("fabric not found")
	ErrBatchNotFound     = errors.New("batch not found")
	ErrInsufficientStock = errors.New("insufficient stock")

	// Sales errors
	ErrSaleNotFound = errors.New("sale not found")

	// Cashbook errors
	ErrEntryNotFound   = errors.New("cashbook entry not found")
	ErrPaymentNotFound = errors.New("customer payment not found")
)
