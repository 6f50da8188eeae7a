package booking

import (
	"context"
	"time"

	"github.com/shareit-app/shareit/internal/domain"
)

// Repository defines the persistence contract for booking aggregates.
type Repository interface {
	// Save persists a new booking and returns it with its assigned id.
	Save(ctx context.Context, b *Booking) (*Booking, error)

	// Update persists a status change to an existing booking.
	Update(ctx context.Context, b *Booking) error

	// FindByID retrieves a booking by its identifier.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// FindAllByBooker retrieves the booker's bookings matching the criteria,
	// sorted by start date descending, within the page window.
	FindAllByBooker(ctx context.Context, bookerID int64, c Criteria, page domain.Page) ([]*Booking, error)

	// FindAllByOwner retrieves bookings of items owned by the user matching
	// the criteria, sorted by start date descending, within the page window.
	FindAllByOwner(ctx context.Context, ownerID int64, c Criteria, page domain.Page) ([]*Booking, error)

	// FindLastForItem returns the most recent APPROVED booking of the item
	// with a start before now, or nil if there is none.
	FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)

	// FindNextForItem returns the soonest APPROVED booking of the item
	// with a start after now, or nil if there is none.
	FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)

	// HasFinishedBooking reports whether the user has an APPROVED booking
	// of the item that ended before now.
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}
