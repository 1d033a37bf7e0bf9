package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert installation")
	ErrFailedToGet    = errors.New("failed to get installation")
	ErrFailedToList   = errors.New("failed to list installations")
	ErrFailedToDelete = errors.New("failed to delete installation")
)
