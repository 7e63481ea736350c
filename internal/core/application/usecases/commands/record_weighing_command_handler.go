package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
)

// RecordWeighingCommandHandler orchestrates the weighing station flow: it
// classifies the measurement against the declared weight, records the outcome
// on the parcel, and immediately sorts parcels whose weighing was
// auto-approved so they do not wait for the background sweep.
//
// Parcels with a weight problem park in weight_issue and trigger a
// supplement or refund notification instead of being sorted.
type RecordWeighingCommandHandler struct {
	uowFactory ParcelUoWFactory
	dispatcher ports.NotificationDispatcher
	verifier   services.WeightVerifier
	sorter     services.ZoneSorter
}

// NewRecordWeighingCommandHandler creates a handler for weighing operations.
func NewRecordWeighingCommandHandler(
	uowFactory ParcelUoWFactory,
	dispatcher ports.NotificationDispatcher,
) RecordWeighingCommandHandler {
	return RecordWeighingCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		verifier:   services.NewWeightVerifier(),
		sorter:     services.NewZoneSorter(),
	}
}

// Handle processes the weighing command. The weighing record and, for
// auto-approved outcomes, the resulting zone assignment commit in one
// transaction: a parcel is never observable as weighed-but-unsorted when the
// measurement was clean. Notifications go out best effort after commit.
func (h RecordWeighingCommandHandler) Handle(ctx context.Context, cmd RecordWeighingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var weighed *parcel.Parcel
	err := runInTx(ctx, h.uowFactory, func(repo ports.ParcelRepository) error {
		aggregate, err := repo.Get(ctx, cmd.ParcelID())
		if err != nil {
			return err
		}

		verification := h.verifier.Verify(aggregate.WeightDeclared(), cmd.ActualWeight())
		if err = aggregate.RecordWeighing(verification, cmd.Photos(), cmd.Agent(), time.Now()); err != nil {
			return err
		}

		if verification.AutoApproved() {
			if _, err = h.sorter.Sort(aggregate, cmd.Agent(), time.Now()); err != nil {
				return err
			}
		}

		if err = repo.Update(ctx, aggregate); err != nil {
			return err
		}

		weighed = aggregate
		return nil
	})
	if err != nil {
		return err
	}

	h.notify(ctx, weighed)

	return nil
}

func (h RecordWeighingCommandHandler) notify(ctx context.Context, weighed *parcel.Parcel) {
	verification := weighed.WeightVerification()
	if verification == nil {
		return
	}

	switch verification.Outcome() {
	case parcel.OutcomeSupplementRequired:
		_ = h.dispatcher.Send(ctx, ports.NotificationSupplementRequired, weighed)
	case parcel.OutcomeRefundAvailable:
		_ = h.dispatcher.Send(ctx, ports.NotificationRefundAvailable, weighed)
	}
}
