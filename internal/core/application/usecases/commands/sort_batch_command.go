package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrSortBatchCommandIsNotConstructed = errors.New(
	"SortBatchCommand must be created via NewSortBatchCommand constructor",
)

// SortBatchCommand represents an end-of-shift request to sort a set of
// parcels in one pass.
type SortBatchCommand struct { //nolint:recvcheck //using for validation
	parcelIDs []kernel.UUID
	operator  string

	guard guard.ConstructorGuard
}

// NewSortBatchCommand creates a command to sort a batch of parcels.
// The batch must not be empty and every identifier must be valid; a single
// malformed identifier rejects the whole request before any work starts.
func NewSortBatchCommand(parcelIDs []kernel.UUID, operator string) (SortBatchCommand, error) {
	cmd := SortBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelIDs(parcelIDs),
		cmd.setOperator(operator),
	); err != nil {
		return SortBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SortBatchCommand) Validate() error {
	return c.guard.Validate(ErrSortBatchCommandIsNotConstructed)
}

// ParcelIDs returns the identifiers of the parcels to sort, in request order.
func (c SortBatchCommand) ParcelIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.parcelIDs...)
}

// Operator returns the sorting operator.
func (c SortBatchCommand) Operator() string {
	return c.operator
}

func (c *SortBatchCommand) setParcelIDs(parcelIDs []kernel.UUID) error {
	if len(parcelIDs) == 0 {
		return errs.NewValueIsRequiredError("parcel ids")
	}

	for _, id := range parcelIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.parcelIDs = append([]kernel.UUID(nil), parcelIDs...)
	return nil
}

func (c *SortBatchCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}

	c.operator = operator
	return nil
}
