package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
)

// ResolveWeightIssueCommandHandler settles a weight dispute: the parcel moves
// to verified and is sorted in the same transaction, since a verified parcel
// has nothing left to wait for before zone assignment.
type ResolveWeightIssueCommandHandler struct {
	uowFactory ParcelUoWFactory
	sorter     services.ZoneSorter
}

// NewResolveWeightIssueCommandHandler creates a handler for weight dispute
// resolution.
func NewResolveWeightIssueCommandHandler(uowFactory ParcelUoWFactory) ResolveWeightIssueCommandHandler {
	return ResolveWeightIssueCommandHandler{
		uowFactory: uowFactory,
		sorter:     services.NewZoneSorter(),
	}
}

// Handle processes the resolution command. Retries on version conflicts;
// a parcel no longer in weight_issue surfaces as an invalid transition.
func (h ResolveWeightIssueCommandHandler) Handle(ctx context.Context, cmd ResolveWeightIssueCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runInTx(ctx, h.uowFactory, func(repo ports.ParcelRepository) error {
		aggregate, err := repo.Get(ctx, cmd.ParcelID())
		if err != nil {
			return err
		}

		if err = aggregate.ResolveWeightIssue(cmd.Agent(), cmd.Notes(), time.Now()); err != nil {
			return err
		}

		if _, err = h.sorter.Sort(aggregate, cmd.Agent(), time.Now()); err != nil {
			return err
		}

		return repo.Update(ctx, aggregate)
	})
}
