// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// aggregate, handling the conversion between the domain model and its
// relational representation.
package parcelrepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. Flat lifecycle columns are indexed for console searches; the
// audit trail and photo references are stored as JSON documents since they
// are only ever read back whole.
type ParcelDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode     string    `gorm:"uniqueIndex"`
	DestinationCity  string    `gorm:"index"`
	RecipientContact string
	SpecialCase      string

	WeightDeclared          float64
	WeightReal              *float64
	WeightOutcome           *int
	WeightDifferencePercent *float64
	WeightPhotos            []string `gorm:"serializer:json"`

	SortingZone   int `gorm:"index"`
	SortingReason string
	SortedAt      *time.Time
	SortedBy      string

	LogisticStatus int               `gorm:"index"`
	MainStatus     int               `gorm:"index"`
	History        []LogisticStepDTO `gorm:"serializer:json"`

	ReceivedAt    *time.Time
	Version       int64
	LastUpdatedBy string
	LastUpdatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// LogisticStepDTO is one audit-trail record inside the history JSON document.
type LogisticStepDTO struct {
	Step      string            `json:"step"`
	Timestamp time.Time         `json:"timestamp"`
	Agent     string            `json:"agent"`
	Notes     string            `json:"notes,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var (
		weightOutcome *int
		weightDiff    *float64
	)
	if v := aggregate.WeightVerification(); v != nil {
		outcome := int(v.Outcome())
		diff := v.DifferencePercent()
		weightOutcome = &outcome
		weightDiff = &diff
	}

	steps := aggregate.History().Steps()
	history := make([]LogisticStepDTO, 0, len(steps))
	for _, step := range steps {
		history = append(history, LogisticStepDTO{
			Step:      step.Step(),
			Timestamp: step.Timestamp(),
			Agent:     step.Agent(),
			Notes:     step.Notes(),
			Data:      step.Data(),
		})
	}

	return ParcelDTO{
		ID:               aggregate.ID().Bytes(),
		TrackingCode:     aggregate.TrackingCode().String(),
		DestinationCity:  aggregate.Destination().City(),
		RecipientContact: aggregate.RecipientContact(),
		SpecialCase:      string(aggregate.SpecialCase()),

		WeightDeclared:          aggregate.WeightDeclared(),
		WeightReal:              aggregate.WeightReal(),
		WeightOutcome:           weightOutcome,
		WeightDifferencePercent: weightDiff,
		WeightPhotos:            aggregate.WeightPhotos(),

		SortingZone:   int(aggregate.SortingZone()),
		SortingReason: aggregate.SortingReason(),
		SortedAt:      aggregate.SortedAt(),
		SortedBy:      aggregate.SortedBy(),

		LogisticStatus: int(aggregate.LogisticStatus()),
		MainStatus:     int(aggregate.MainStatus()),
		History:        history,

		ReceivedAt:    aggregate.ReceivedAt(),
		Version:       aggregate.Version(),
		LastUpdatedBy: aggregate.LastUpdatedBy(),
		LastUpdatedAt: aggregate.LastUpdatedAt(),
	}
}

// toDomain converts a database DTO to a parcel aggregate using RestoreParcel,
// which re-derives the customer-facing status instead of trusting the stored
// column.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingCode, err := kernel.NewTrackingCode(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewDestination(dto.DestinationCity)
	if err != nil {
		return nil, err
	}

	var verification *parcel.WeightVerification
	if dto.WeightOutcome != nil && dto.WeightReal != nil {
		var diff float64
		if dto.WeightDifferencePercent != nil {
			diff = *dto.WeightDifferencePercent
		}
		v, verErr := parcel.NewWeightVerification(dto.WeightDeclared, *dto.WeightReal, diff,
			parcel.VerificationOutcome(*dto.WeightOutcome))
		if verErr != nil {
			return nil, verErr
		}
		verification = &v
	}

	steps := make([]parcel.LogisticStep, 0, len(dto.History))
	for _, stepDTO := range dto.History {
		step, stepErr := parcel.NewLogisticStep(stepDTO.Step, stepDTO.Timestamp,
			stepDTO.Agent, stepDTO.Notes, stepDTO.Data)
		if stepErr != nil {
			return nil, stepErr
		}
		steps = append(steps, step)
	}

	return parcel.RestoreParcel(
		id,
		trackingCode,
		destination,
		dto.RecipientContact,
		parcel.SpecialCase(dto.SpecialCase),
		dto.WeightDeclared,
		dto.WeightReal,
		verification,
		dto.WeightPhotos,
		parcel.Zone(dto.SortingZone),
		dto.SortingReason,
		dto.SortedAt,
		dto.SortedBy,
		parcel.LogisticStatus(dto.LogisticStatus),
		parcel.RestoreHistory(steps),
		dto.ReceivedAt,
		dto.Version,
		dto.LastUpdatedBy,
		dto.LastUpdatedAt,
	)
}
