// Package commands contains business operations that modify parcel state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence, with optimistic-concurrency retries where two operators can
// race on the same parcel.
package commands

import (
	"context"
	"errors"

	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a
	// transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// ParcelUoW manages transactions for parcel operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}
)

// conflictRetryAttempts bounds the read-mutate-write retries a handler makes
// when an update loses an optimistic-concurrency race.
const conflictRetryAttempts = 3

// runInTx runs fn inside a fresh transaction, retrying the whole
// read-mutate-write cycle when the commit loses a version race. Any other
// error, including business rejections, is returned immediately. fn must load
// its aggregates through the provided repository so each retry sees fresh
// state.
func runInTx(ctx context.Context, factory ParcelUoWFactory, fn func(repo ports.ParcelRepository) error) error {
	var err error
	for attempt := 0; attempt < conflictRetryAttempts; attempt++ {
		err = func() error {
			uow := factory.Create()
			if beginErr := uow.Begin(ctx); beginErr != nil {
				return beginErr
			}

			defer func() {
				_ = uow.Rollback(ctx)
			}()

			if fnErr := fn(uow.ParcelRepository()); fnErr != nil {
				return fnErr
			}

			return uow.Commit(ctx)
		}()

		if !errors.Is(err, errs.ErrConcurrencyConflict) {
			return err
		}
	}

	return err
}
