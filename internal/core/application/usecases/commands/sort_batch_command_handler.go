package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
)

// SortOutcome is the per-parcel result of a batch sort. Either Decision is
// set or Err explains why this parcel was skipped; other parcels in the batch
// are unaffected.
type SortOutcome struct {
	ParcelID kernel.UUID
	Decision services.SortingDecision
	Err      error
}

// SortBatchCommandHandler sorts a set of parcels one transaction each, so a
// rejected or contested parcel never rolls back its neighbours.
type SortBatchCommandHandler struct {
	uowFactory ParcelUoWFactory
	sorter     services.ZoneSorter
}

// NewSortBatchCommandHandler creates a handler for batch sorting.
func NewSortBatchCommandHandler(uowFactory ParcelUoWFactory) SortBatchCommandHandler {
	return SortBatchCommandHandler{
		uowFactory: uowFactory,
		sorter:     services.NewZoneSorter(),
	}
}

// Handle processes the batch in request order and returns one outcome per
// parcel. The returned error covers the command itself, not individual
// parcels: a batch where every parcel failed still returns a nil error and
// per-parcel reasons in the outcomes.
func (h SortBatchCommandHandler) Handle(ctx context.Context, cmd SortBatchCommand) ([]SortOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	outcomes := make([]SortOutcome, 0, len(cmd.ParcelIDs()))
	for _, parcelID := range cmd.ParcelIDs() {
		outcomes = append(outcomes, h.sortOne(ctx, parcelID, cmd.Operator()))
	}

	return outcomes, nil
}

func (h SortBatchCommandHandler) sortOne(ctx context.Context, parcelID kernel.UUID, operator string) SortOutcome {
	var decision services.SortingDecision
	err := runInTx(ctx, h.uowFactory, func(repo ports.ParcelRepository) error {
		aggregate, err := repo.Get(ctx, parcelID)
		if err != nil {
			return err
		}

		decision, err = h.sorter.Sort(aggregate, operator, time.Now())
		if err != nil {
			return err
		}

		return repo.Update(ctx, aggregate)
	})
	if err != nil {
		return SortOutcome{ParcelID: parcelID, Err: err}
	}

	return SortOutcome{ParcelID: parcelID, Decision: decision}
}
