package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrResolveWeightIssueCommandIsNotConstructed = errors.New(
	"ResolveWeightIssueCommand must be created via NewResolveWeightIssueCommand constructor",
)

// ResolveWeightIssueCommand represents the manual approval of a disputed
// weighing, typically after the customer paid a supplement or accepted a
// refund. Notes record how the dispute was settled.
type ResolveWeightIssueCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	agent    string
	notes    string

	guard guard.ConstructorGuard
}

// NewResolveWeightIssueCommand creates a command to approve a disputed
// measurement.
func NewResolveWeightIssueCommand(parcelID kernel.UUID, agent, notes string) (ResolveWeightIssueCommand, error) {
	cmd := ResolveWeightIssueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setAgent(agent),
	); err != nil {
		return ResolveWeightIssueCommand{}, err
	}
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveWeightIssueCommand) Validate() error {
	return c.guard.Validate(ErrResolveWeightIssueCommandIsNotConstructed)
}

// ParcelID returns the identifier of the disputed parcel.
func (c ResolveWeightIssueCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Agent returns the agent settling the dispute.
func (c ResolveWeightIssueCommand) Agent() string {
	return c.agent
}

// Notes returns the optional resolution context.
func (c ResolveWeightIssueCommand) Notes() string {
	return c.notes
}

func (c *ResolveWeightIssueCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *ResolveWeightIssueCommand) setAgent(agent string) error {
	if agent == "" {
		return errs.NewValueIsRequiredError("agent")
	}

	c.agent = agent
	return nil
}
