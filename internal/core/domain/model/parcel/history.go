package parcel

import (
	"time"

	"parcels/internal/pkg/errs"
)

// LogisticStep is a single record in a parcel's audit trail. Steps are
// immutable once created; the trail grows by appending and no step is ever
// edited, reordered, or removed.
type LogisticStep struct {
	step      string
	timestamp time.Time
	agent     string
	notes     string
	data      map[string]string
}

// NewLogisticStep creates an audit-trail record for one lifecycle action.
// step names the action (e.g. "received", "weighed", "sorted"), agent is the
// operator who performed it. notes and data are optional; data carries
// structured context such as the assigned zone.
func NewLogisticStep(step string, timestamp time.Time, agent string, notes string, data map[string]string) (LogisticStep, error) {
	if step == "" {
		return LogisticStep{}, errs.NewValueIsRequiredError("step")
	}
	if timestamp.IsZero() {
		return LogisticStep{}, errs.NewValueIsRequiredError("timestamp")
	}
	if agent == "" {
		return LogisticStep{}, errs.NewValueIsRequiredError("agent")
	}

	return LogisticStep{
		step:      step,
		timestamp: timestamp,
		agent:     agent,
		notes:     notes,
		data:      copyData(data),
	}, nil
}

// Step returns the action name of the record.
func (s LogisticStep) Step() string {
	return s.step
}

// Timestamp returns when the action happened.
func (s LogisticStep) Timestamp() time.Time {
	return s.timestamp
}

// Agent returns the operator who performed the action.
func (s LogisticStep) Agent() string {
	return s.agent
}

// Notes returns the optional free-text note attached to the record.
func (s LogisticStep) Notes() string {
	return s.notes
}

// Data returns a copy of the structured context attached to the record.
func (s LogisticStep) Data() map[string]string {
	return copyData(s.data)
}

func copyData(data map[string]string) map[string]string {
	if len(data) == 0 {
		return nil
	}
	out := make(map[string]string, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

// History is the append-only ordered audit trail of a parcel. The zero value
// is an empty trail. History values are immutable: Append returns a new
// History sharing no mutable state with the receiver, so a stale copy can
// never clobber entries appended elsewhere.
type History struct {
	steps []LogisticStep
}

// RestoreHistory rebuilds a History from persisted steps.
func RestoreHistory(steps []LogisticStep) History {
	if len(steps) == 0 {
		return History{}
	}
	copied := make([]LogisticStep, len(steps))
	copy(copied, steps)
	return History{steps: copied}
}

// Append returns a new History with step added at the end. The receiver is
// left untouched.
func (h History) Append(step LogisticStep) History {
	steps := make([]LogisticStep, 0, len(h.steps)+1)
	steps = append(steps, h.steps...)
	steps = append(steps, step)
	return History{steps: steps}
}

// Steps returns a copy of all records in append order.
func (h History) Steps() []LogisticStep {
	if len(h.steps) == 0 {
		return nil
	}
	copied := make([]LogisticStep, len(h.steps))
	copy(copied, h.steps)
	return copied
}

// Len returns the number of records in the trail.
func (h History) Len() int {
	return len(h.steps)
}

// Last returns the most recent record and true, or a zero step and false for
// an empty trail.
func (h History) Last() (LogisticStep, bool) {
	if len(h.steps) == 0 {
		return LogisticStep{}, false
	}
	return h.steps[len(h.steps)-1], true
}
