package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrAdvanceParcelCommandIsNotConstructed = errors.New(
	"AdvanceParcelCommand must be created via NewAdvanceParcelCommand constructor",
)

// AdvanceParcelCommand represents a manual move of a parcel along the
// grouping and shipping tail of the lifecycle: payment_pending,
// ready_grouping, grouped, shipped_rdc, delivered_final, blocked, or
// cancelled. Whether the move is legal from the parcel's current status is
// decided by the lifecycle graph, not by the command.
type AdvanceParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	target   parcel.LogisticStatus
	agent    string
	notes    string

	guard guard.ConstructorGuard
}

// NewAdvanceParcelCommand creates a command to advance a parcel to the target
// status. Notes are optional operator context recorded in the audit trail.
func NewAdvanceParcelCommand(
	parcelID kernel.UUID,
	target parcel.LogisticStatus,
	agent, notes string,
) (AdvanceParcelCommand, error) {
	cmd := AdvanceParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setTarget(target),
		cmd.setAgent(agent),
	); err != nil {
		return AdvanceParcelCommand{}, err
	}
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceParcelCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to advance.
func (c AdvanceParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Target returns the requested logistic status.
func (c AdvanceParcelCommand) Target() parcel.LogisticStatus {
	return c.target
}

// Agent returns the operator requesting the move.
func (c AdvanceParcelCommand) Agent() string {
	return c.agent
}

// Notes returns the optional operator context.
func (c AdvanceParcelCommand) Notes() string {
	return c.notes
}

func (c *AdvanceParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AdvanceParcelCommand) setTarget(target parcel.LogisticStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *AdvanceParcelCommand) setAgent(agent string) error {
	if agent == "" {
		return errs.NewValueIsRequiredError("agent")
	}

	c.agent = agent
	return nil
}
