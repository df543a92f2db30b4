package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance  = errors.New("not enough balance")
	ErrOwnerConflict     = errors.New("owner conflict")
	ErrVoucherExhausted  = errors.New("voucher exhausted")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidCursor     = errors.New("invalid cursor")
)

// ReorderMismatchError возвращается при попытке переупорядочить аддоны списком
// id, не совпадающим с фактическим составом категории.
type ReorderMismatchError struct {
	CategoryID int64
	Got        int
	Want       int
}

func NewReorderMismatchError(categoryID int64, got, want int) error {
	return &ReorderMismatchError{CategoryID: categoryID, Got: got, Want: want}
}

func (e *ReorderMismatchError) Error() string {
	return fmt.Sprintf(
		"reorder for category %d expects %d item ids, got %d",
		e.CategoryID,
		e.Want,
		e.Got,
	)
}
