package commands

import (
	"errors"
	"math"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrRecordWeighingCommandIsNotConstructed = errors.New(
	"RecordWeighingCommand must be created via NewRecordWeighingCommand constructor",
)

// RecordWeighingCommand represents the warehouse scale measurement of a
// received parcel, with optional photo evidence references.
type RecordWeighingCommand struct { //nolint:recvcheck //using for validation
	parcelID     kernel.UUID
	actualWeight float64
	photos       []string
	agent        string

	guard guard.ConstructorGuard
}

// NewRecordWeighingCommand creates a command to record a scale measurement.
// The weight must be a finite non-negative number of kilograms; how it
// compares to the declaration is classified later by the domain, not here.
func NewRecordWeighingCommand(
	parcelID kernel.UUID,
	actualWeight float64,
	photos []string,
	agent string,
) (RecordWeighingCommand, error) {
	cmd := RecordWeighingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setActualWeight(actualWeight),
		cmd.setAgent(agent),
	); err != nil {
		return RecordWeighingCommand{}, err
	}
	cmd.photos = append([]string(nil), photos...)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordWeighingCommand) Validate() error {
	return c.guard.Validate(ErrRecordWeighingCommandIsNotConstructed)
}

// ParcelID returns the identifier of the weighed parcel.
func (c RecordWeighingCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ActualWeight returns the measured weight in kilograms.
func (c RecordWeighingCommand) ActualWeight() float64 {
	return c.actualWeight
}

// Photos returns the evidence photo references captured at the scale.
func (c RecordWeighingCommand) Photos() []string {
	return append([]string(nil), c.photos...)
}

// Agent returns the warehouse agent operating the scale.
func (c RecordWeighingCommand) Agent() string {
	return c.agent
}

func (c *RecordWeighingCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *RecordWeighingCommand) setActualWeight(weight float64) error {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return errs.NewValueIsOutOfRangeError("actual weight", weight, 0, "+inf")
	}

	c.actualWeight = weight
	return nil
}

func (c *RecordWeighingCommand) setAgent(agent string) error {
	if agent == "" {
		return errs.NewValueIsRequiredError("agent")
	}

	c.agent = agent
	return nil
}
