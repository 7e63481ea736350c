package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
)

// AdvanceParcelCommandHandler moves a parcel along the grouping and shipping
// tail of the lifecycle and notifies the recipient on final delivery.
type AdvanceParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewAdvanceParcelCommandHandler creates a handler for manual status moves.
func NewAdvanceParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	dispatcher ports.NotificationDispatcher,
) AdvanceParcelCommandHandler {
	return AdvanceParcelCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the advance command. Illegal moves surface as
// parcel.ErrInvalidTransition and leave the parcel untouched. The delivery
// notification is sent best effort after commit.
func (h AdvanceParcelCommandHandler) Handle(ctx context.Context, cmd AdvanceParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var advanced *parcel.Parcel
	err := runInTx(ctx, h.uowFactory, func(repo ports.ParcelRepository) error {
		aggregate, err := repo.Get(ctx, cmd.ParcelID())
		if err != nil {
			return err
		}

		if err = aggregate.Advance(cmd.Target(), cmd.Agent(), cmd.Notes(), time.Now()); err != nil {
			return err
		}

		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}

		advanced = aggregate
		return nil
	})
	if err != nil {
		return err
	}

	if advanced.LogisticStatus() == parcel.StatusDeliveredFinal {
		_ = h.dispatcher.Send(ctx, ports.NotificationParcelDelivered, advanced)
	}

	return nil
}
