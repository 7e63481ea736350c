package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
)

// SortParcelCommandHandler assigns a sorting zone to a single parcel using
// the deterministic zone rules.
//
// Example:
//
//	handler := NewSortParcelCommandHandler(uowFactory)
//	cmd, _ := NewSortParcelCommand(parcelID, "operator-3")
//	decision, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("parcel routed to zone %s: %s", decision.Zone, decision.Reason)
type SortParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	sorter     services.ZoneSorter
}

// NewSortParcelCommandHandler creates a handler for single-parcel sorting.
func NewSortParcelCommandHandler(uowFactory ParcelUoWFactory) SortParcelCommandHandler {
	return SortParcelCommandHandler{
		uowFactory: uowFactory,
		sorter:     services.NewZoneSorter(),
	}
}

// Handle processes the sorting command and returns the decision that was
// applied. Retries on version conflicts; a parcel that has not completed
// weighing is rejected with services.ErrNotReadyForSorting.
func (h SortParcelCommandHandler) Handle(ctx context.Context, cmd SortParcelCommand) (services.SortingDecision, error) {
	if err := cmd.Validate(); err != nil {
		return services.SortingDecision{}, err
	}

	var decision services.SortingDecision
	err := runInTx(ctx, h.uowFactory, func(repo ports.ParcelRepository) error {
		aggregate, err := repo.Get(ctx, cmd.ParcelID())
		if err != nil {
			return err
		}

		decision, err = h.sorter.Sort(aggregate, cmd.Operator(), time.Now())
		if err != nil {
			return err
		}

		return repo.Update(ctx, aggregate)
	})
	if err != nil {
		return services.SortingDecision{}, err
	}

	return decision, nil
}
