package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrMarkReceivedCommandIsNotConstructed = errors.New(
	"MarkReceivedCommand must be created via NewMarkReceivedCommand constructor",
)

// MarkReceivedCommand represents the warehouse scan that confirms a parcel
// physically arrived. A second scan of the same parcel is rejected by the
// lifecycle graph, so the operation stays idempotent from the operator's
// point of view.
type MarkReceivedCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	agent    string

	guard guard.ConstructorGuard
}

// NewMarkReceivedCommand creates a command to confirm parcel reception.
func NewMarkReceivedCommand(parcelID kernel.UUID, agent string) (MarkReceivedCommand, error) {
	cmd := MarkReceivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setAgent(agent),
	); err != nil {
		return MarkReceivedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReceivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkReceivedCommandIsNotConstructed)
}

// ParcelID returns the identifier of the scanned parcel.
func (c MarkReceivedCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Agent returns the warehouse agent performing the scan.
func (c MarkReceivedCommand) Agent() string {
	return c.agent
}

func (c *MarkReceivedCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *MarkReceivedCommand) setAgent(agent string) error {
	if agent == "" {
		return errs.NewValueIsRequiredError("agent")
	}

	c.agent = agent
	return nil
}
