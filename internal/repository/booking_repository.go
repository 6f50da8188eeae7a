package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shareit-app/shareit/internal/domain"
	bookingDomain "github.com/shareit-app/shareit/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ItemID    int64     `gorm:"index;not null"`
	BookerID  int64     `gorm:"index;not null"`
	StartDate time.Time `gorm:"column:start_date;not null;index"`
	EndDate   time.Time `gorm:"column:end_date;not null"`
	Status    string    `gorm:"not null;size:20;index"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of booking.Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	model := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	return toDomainBooking(model)
}

// Update persists a status change to an existing booking. The WAITING check
// happens in the service; two concurrent approvals race and the last write
// wins, as the store's default isolation allows.
func (r *GormBookingRepository) Update(ctx context.Context, b *bookingDomain.Booking) error {
	result := r.db.WithContext(ctx).Model(&BookingModel{}).
		Where("id = ?", b.ID()).
		Update("status", string(b.Status()))
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("booking not found")
	}
	return nil
}

// FindByID retrieves a booking by its identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("booking not found")
		}
		return nil, fmt.Errorf("failed to find booking by id: %w", err)
	}
	return toDomainBooking(&model)
}

// FindAllByBooker retrieves the booker's bookings matching the criteria,
// sorted by start date descending.
func (r *GormBookingRepository) FindAllByBooker(ctx context.Context, bookerID int64, c bookingDomain.Criteria, page domain.Page) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).Where("booker_id = ?", bookerID)
	q = applyCriteria(q, c)

	var models []BookingModel
	if err := q.Order("start_date DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find booker bookings: %w", err)
	}
	return toDomainBookings(models)
}

// FindAllByOwner retrieves bookings of items owned by the user matching the
// criteria, sorted by start date descending.
func (r *GormBookingRepository) FindAllByOwner(ctx context.Context, ownerID int64, c bookingDomain.Criteria, page domain.Page) ([]*bookingDomain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&BookingModel{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	q = applyCriteria(q, c)

	var models []BookingModel
	if err := q.Order("bookings.start_date DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find owner bookings: %w", err)
	}
	return toDomainBookings(models)
}

// FindLastForItem returns the most recent APPROVED booking of the item
// started before now, or nil if there is none.
func (r *GormBookingRepository) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_date < ?", itemID, string(bookingDomain.StatusApproved), now).
		Order("start_date DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find last booking: %w", err)
	}
	return toDomainBooking(&model)
}

// FindNextForItem returns the soonest APPROVED booking of the item
// starting after now, or nil if there is none.
func (r *GormBookingRepository) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_date > ?", itemID, string(bookingDomain.StatusApproved), now).
		Order("start_date ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find next booking: %w", err)
	}
	return toDomainBooking(&model)
}

// HasFinishedBooking reports whether the user has an APPROVED booking of
// the item that ended before now.
func (r *GormBookingRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Where("booker_id = ? AND item_id = ? AND status = ? AND end_date < ?",
			bookerID, itemID, string(bookingDomain.StatusApproved), now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count finished bookings: %w", err)
	}
	return count > 0, nil
}

// applyCriteria translates the state filter's predicates into WHERE clauses.
// Bounds mirror booking.Criteria.Matches: StartBefore/EndAfter inclusive,
// StartAfter/EndBefore strict.
func applyCriteria(q *gorm.DB, c bookingDomain.Criteria) *gorm.DB {
	if c.Status != nil {
		q = q.Where("bookings.status = ?", string(*c.Status))
	}
	if c.StartBefore != nil {
		q = q.Where("bookings.start_date <= ?", *c.StartBefore)
	}
	if c.StartAfter != nil {
		q = q.Where("bookings.start_date > ?", *c.StartAfter)
	}
	if c.EndBefore != nil {
		q = q.Where("bookings.end_date < ?", *c.EndBefore)
	}
	if c.EndAfter != nil {
		q = q.Where("bookings.end_date >= ?", *c.EndAfter)
	}
	return q
}

// --- Conversion Helpers ---

func toBookingModel(b *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        b.ID(),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		StartDate: b.Start(),
		EndDate:   b.End(),
		Status:    string(b.Status()),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return bookingDomain.Reconstruct(m.ID, m.ItemID, m.BookerID, m.StartDate, m.EndDate, status), nil
}

func toDomainBookings(models []BookingModel) ([]*bookingDomain.Booking, error) {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		b, err := toDomainBooking(&m)
		if err != nil {
			return nil, err
		}
		bookings[i] = b
	}
	return bookings, nil
}
