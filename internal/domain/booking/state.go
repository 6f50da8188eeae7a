package booking

import (
	"strings"
	"time"

	"github.com/shareit-app/shareit/internal/domain"
)

// State selects which slice of a user's bookings a listing returns.
// Unlike Status it is a query-time filter, not a lifecycle value.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var allStates = []State{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}

// ParseState converts a query parameter to a State, case-insensitively.
func ParseState(s string) (State, error) {
	for _, state := range allStates {
		if strings.EqualFold(s, string(state)) {
			return state, nil
		}
	}
	return "", domain.NewValidationError("Unknown state: UNSUPPORTED_STATUS")
}

// Criteria carries a state's comparison predicates as data. A nil field
// means "no constraint"; repositories translate the set fields into query
// conditions instead of switching on the state name.
type Criteria struct {
	Status      *Status
	StartBefore *time.Time
	StartAfter  *time.Time
	EndBefore   *time.Time
	EndAfter    *time.Time
}

// Criteria resolves the state against the given instant.
func (s State) Criteria(now time.Time) Criteria {
	switch s {
	case StateCurrent:
		return Criteria{StartBefore: &now, EndAfter: &now}
	case StatePast:
		return Criteria{EndBefore: &now}
	case StateFuture:
		return Criteria{StartAfter: &now}
	case StateWaiting:
		status := StatusWaiting
		return Criteria{Status: &status}
	case StateRejected:
		status := StatusRejected
		return Criteria{Status: &status}
	default:
		return Criteria{}
	}
}

// Matches reports whether a booking satisfies every set predicate.
// StartBefore/EndAfter are inclusive bounds (CURRENT spans start <= now <= end),
// StartAfter/EndBefore are strict.
func (c Criteria) Matches(b *Booking) bool {
	if c.Status != nil && b.Status() != *c.Status {
		return false
	}
	if c.StartBefore != nil && b.Start().After(*c.StartBefore) {
		return false
	}
	if c.StartAfter != nil && !b.Start().After(*c.StartAfter) {
		return false
	}
	if c.EndBefore != nil && !b.End().Before(*c.EndBefore) {
		return false
	}
	if c.EndAfter != nil && b.End().Before(*c.EndAfter) {
		return false
	}
	return true
}
