package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/ports"
)

// MarkReceivedCommandHandler orchestrates the reception scan: it loads the
// parcel, advances it to received, and notifies the recipient after the
// change is committed.
//
// Example:
//
//	handler := NewMarkReceivedCommandHandler(uowFactory, dispatcher)
//	cmd, _ := NewMarkReceivedCommand(parcelID, "agent-7")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, parcel.ErrInvalidTransition) {
//	        log.Println("parcel was already received")
//	    }
//	    return err
//	}
type MarkReceivedCommandHandler struct {
	uowFactory ParcelUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewMarkReceivedCommandHandler creates a handler for reception scans.
func NewMarkReceivedCommandHandler(
	uowFactory ParcelUoWFactory,
	dispatcher ports.NotificationDispatcher,
) MarkReceivedCommandHandler {
	return MarkReceivedCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the reception scan. The read-mutate-write cycle retries on
// a version conflict so two agents scanning near-simultaneously resolve to
// one accepted scan and one invalid-transition rejection. The notification is
// sent best effort after commit and never fails the scan.
func (h MarkReceivedCommandHandler) Handle(ctx context.Context, cmd MarkReceivedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var received *parcel.Parcel
	err := runInTx(ctx, h.uowFactory, func(repo ports.ParcelRepository) error {
		aggregate, err := repo.Get(ctx, cmd.ParcelID())
		if err != nil {
			return err
		}

		if err = aggregate.MarkReceived(cmd.Agent(), time.Now()); err != nil {
			return err
		}

		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}

		received = aggregate
		return nil
	})
	if err != nil {
		return err
	}

	_ = h.dispatcher.Send(ctx, ports.NotificationParcelReceived, received)

	return nil
}
