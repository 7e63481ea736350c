package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/parcel"
)

// RegisterParcelCommandHandler handles the business logic for parcel
// registration. New parcels start in pending_reception with a single intake
// audit step.
type RegisterParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewRegisterParcelCommandHandler creates a handler for parcel registration.
// Requires a ParcelUoWFactory for transactional persistence.
func NewRegisterParcelCommandHandler(uowFactory ParcelUoWFactory) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. The insert needs no concurrency
// retry: a duplicate identifier or tracking code fails the transaction
// outright.
func (h RegisterParcelCommandHandler) Handle(ctx context.Context, cmd RegisterParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.TrackingCode(),
		cmd.Destination(),
		cmd.RecipientContact(),
		cmd.DeclaredWeight(),
		cmd.SpecialCase(),
		cmd.CreatedBy(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
