package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrSortParcelCommandIsNotConstructed = errors.New(
	"SortParcelCommand must be created via NewSortParcelCommand constructor",
)

// SortParcelCommand represents a request to assign a sorting zone to one
// weighed parcel. The zone itself is never part of the request: it is always
// computed by the sorting rules, so an operator cannot route a parcel by hand.
type SortParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	operator string

	guard guard.ConstructorGuard
}

// NewSortParcelCommand creates a command to sort one parcel.
func NewSortParcelCommand(parcelID kernel.UUID, operator string) (SortParcelCommand, error) {
	cmd := SortParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setOperator(operator),
	); err != nil {
		return SortParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SortParcelCommand) Validate() error {
	return c.guard.Validate(ErrSortParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to sort.
func (c SortParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Operator returns the sorting operator.
func (c SortParcelCommand) Operator() string {
	return c.operator
}

func (c *SortParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *SortParcelCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}

	c.operator = operator
	return nil
}
