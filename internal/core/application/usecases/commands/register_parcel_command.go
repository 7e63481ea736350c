package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrRegisterParcelCommandIsNotConstructed = errors.New(
	"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
)

// RegisterParcelCommand represents a request to register a paid parcel before
// it physically arrives at the warehouse. The parcel enters the lifecycle in
// pending_reception.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewRegisterParcelCommand(parcelID, "CG-2024-0158", "kinshasa",
//	    "+243810000001", 10.5, parcel.SpecialCaseNone, "admin")
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewRegisterParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register parcel: %w", err)
//	}
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID         kernel.UUID
	trackingCode     kernel.TrackingCode
	destination      kernel.Destination
	recipientContact string
	declaredWeight   float64
	specialCase      parcel.SpecialCase
	createdBy        string

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates a command to register a new parcel.
// The tracking code and destination are normalized and validated here so a
// malformed request never reaches the aggregate.
func NewRegisterParcelCommand(
	parcelID kernel.UUID,
	trackingCode string,
	destinationCity string,
	recipientContact string,
	declaredWeight float64,
	specialCase parcel.SpecialCase,
	createdBy string,
) (RegisterParcelCommand, error) {
	cmd := RegisterParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setTrackingCode(trackingCode),
		cmd.setDestination(destinationCity),
		cmd.setRecipientContact(recipientContact),
		cmd.setDeclaredWeight(declaredWeight),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return RegisterParcelCommand{}, err
	}
	cmd.specialCase = specialCase

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel.
func (c RegisterParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// TrackingCode returns the normalized customer-facing label code.
func (c RegisterParcelCommand) TrackingCode() kernel.TrackingCode {
	return c.trackingCode
}

// Destination returns the normalized destination city.
func (c RegisterParcelCommand) Destination() kernel.Destination {
	return c.destination
}

// RecipientContact returns the phone or email to notify on lifecycle events.
func (c RegisterParcelCommand) RecipientContact() string {
	return c.recipientContact
}

// DeclaredWeight returns the customer-declared weight in kilograms.
func (c RegisterParcelCommand) DeclaredWeight() float64 {
	return c.declaredWeight
}

// SpecialCase returns the exception marker, if any.
func (c RegisterParcelCommand) SpecialCase() parcel.SpecialCase {
	return c.specialCase
}

// CreatedBy returns the agent registering the parcel.
func (c RegisterParcelCommand) CreatedBy() string {
	return c.createdBy
}

func (c *RegisterParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *RegisterParcelCommand) setTrackingCode(raw string) error {
	code, err := kernel.NewTrackingCode(raw)
	if err != nil {
		return err
	}

	c.trackingCode = code
	return nil
}

func (c *RegisterParcelCommand) setDestination(city string) error {
	destination, err := kernel.NewDestination(city)
	if err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *RegisterParcelCommand) setRecipientContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("recipient contact")
	}

	c.recipientContact = contact
	return nil
}

func (c *RegisterParcelCommand) setDeclaredWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsOutOfRangeError("declared weight", weight, 0, "+inf")
	}

	c.declaredWeight = weight
	return nil
}

func (c *RegisterParcelCommand) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("created by")
	}

	c.createdBy = createdBy
	return nil
}
