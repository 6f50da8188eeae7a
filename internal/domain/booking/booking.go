package booking

import (
	"time"

	"github.com/shareit-app/shareit/internal/domain"
)

// Booking is the aggregate root for the booking domain. It ties one item
// to one booker for a start/end window and carries the approval status.
type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	start    time.Time
	end      time.Time
	status   Status
}

// NewBooking creates a new Booking with status WAITING.
// Both dates must be present and the end must be strictly after the start.
func NewBooking(itemID, bookerID int64, start, end *time.Time) (*Booking, error) {
	if itemID <= 0 {
		return nil, domain.NewValidationError("item id is required")
	}
	if bookerID <= 0 {
		return nil, domain.NewValidationError("booker id is required")
	}
	if start == nil || end == nil {
		return nil, domain.NewValidationError("booking dates are required")
	}
	if !end.After(*start) {
		return nil, domain.NewValidationError("end date must be after start date")
	}
	return &Booking{
		itemID:   itemID,
		bookerID: bookerID,
		start:    *start,
		end:      *end,
		status:   StatusWaiting,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(id, itemID, bookerID int64, start, end time.Time, status Status) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		start:    start,
		end:      end,
		status:   status,
	}
}

// --- Getters ---

func (b *Booking) ID() int64        { return b.id }
func (b *Booking) ItemID() int64    { return b.itemID }
func (b *Booking) BookerID() int64  { return b.bookerID }
func (b *Booking) Start() time.Time { return b.start }
func (b *Booking) End() time.Time   { return b.end }
func (b *Booking) Status() Status   { return b.status }

// --- Behavior ---

// Decide moves a WAITING booking to APPROVED (approved=true) or REJECTED.
// The transition is terminal: deciding an already decided booking fails.
func (b *Booking) Decide(approved bool) error {
	target := StatusRejected
	if approved {
		target = StatusApproved
	}
	if !b.status.CanTransitionTo(target) {
		return domain.NewValidationError("booking already decided")
	}
	b.status = target
	return nil
}

// FinishedBy reports whether the booking is an APPROVED booking that
// ended before the given instant. This is the gate for posting comments.
func (b *Booking) FinishedBy(now time.Time) bool {
	return b.status == StatusApproved && b.end.Before(now)
}
