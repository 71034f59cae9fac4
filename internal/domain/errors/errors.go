package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrOrderExists   = errors.New("sales order already exists")
	ErrOrderNotFound = errors.New("sales order not found")
	ErrInvalidQty    = errors.New("invalid quantity")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return e.Field + " is required"
}

// ItemNotFoundError reports a referenced catalog item that does not exist.
type ItemNotFoundError struct {
	ItemID int64
}

func (e ItemNotFoundError) Error() string {
	return fmt.Sprintf("item %d not found", e.ItemID)
}

func (e ItemNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NoStockRecordError reports an item without any stock ledger history.
type NoStockRecordError struct {
	ItemID int64
}

func (e NoStockRecordError) Error() string {
	return fmt.Sprintf("item %d has no stock record", e.ItemID)
}

func (e NoStockRecordError) Is(target error) bool {
	return target == ErrNotFound
}

// InsufficientStockError reports available versus requested stock for an item.
type InsufficientStockError struct {
	ItemID    int64
	Stock     float64
	Requested float64
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %d: %v available, %v requested", e.ItemID, e.Stock, e.Requested)
}
