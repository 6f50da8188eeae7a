package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-app/shareit/internal/domain"
	bookingDomain "github.com/shareit-app/shareit/internal/domain/booking"
	itemDomain "github.com/shareit-app/shareit/internal/domain/item"
	userDomain "github.com/shareit-app/shareit/internal/domain/user"
	"github.com/shareit-app/shareit/internal/events"
)

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	ItemID int64      `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

// UserShortDTO is the embedded user reference in booking responses.
type UserShortDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ItemShortDTO is the embedded item reference in booking responses.
type ItemShortDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID     int64                `json:"id"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Status bookingDomain.Status `json:"status"`
	Item   ItemShortDTO         `json:"item"`
	Booker UserShortDTO         `json:"booker"`
}

// BookingService orchestrates the booking lifecycle: creation, the
// owner-only approval workflow, and state-filtered retrieval.
type BookingService struct {
	bookingRepo bookingDomain.Repository
	itemRepo    itemDomain.Repository
	userRepo    userDomain.Repository
	publisher   *events.Publisher
	logger      *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo bookingDomain.Repository,
	itemRepo itemDomain.Repository,
	userRepo userDomain.Repository,
	publisher *events.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Create books an item for the given user with status WAITING.
// Owners cannot book their own items; the failure is reported as NotFound
// so the caller learns nothing about ownership.
func (s *BookingService) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*BookingDTO, error) {
	b, err := bookingDomain.NewBooking(req.ItemID, userID, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	booker, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	itm, err := s.itemRepo.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !bookingDomain.CanBook(itm.OwnerID(), userID) {
		return nil, domain.NewNotFoundError("cannot book your own item")
	}
	if !itm.Available() {
		return nil, domain.NewValidationError("item is not available for booking")
	}

	saved, err := s.bookingRepo.Save(ctx, b)
	if err != nil {
		s.logger.Error("failed to save booking", zap.Error(err))
		return nil, err
	}

	s.logger.Info("booking created",
		zap.Int64("booking_id", saved.ID()),
		zap.Int64("item_id", itm.ID()),
		zap.Int64("booker_id", userID),
	)
	s.publisher.Publish(ctx, events.BookingCreated, itm.Name(), events.NewBookingEvent(saved))

	dto := toBookingDTO(saved, itm, booker)
	return &dto, nil
}

// Approve decides a WAITING booking: APPROVED when approved is true,
// REJECTED otherwise. Only the item's owner may decide, and only once.
func (s *BookingService) Approve(ctx context.Context, bookingID, userID int64, approved bool) (*BookingDTO, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	itm, err := s.itemRepo.FindByID(ctx, b.ItemID())
	if err != nil {
		return nil, err
	}
	if !bookingDomain.CanApprove(itm.OwnerID(), userID) {
		return nil, domain.NewNotFoundError("booking not found")
	}

	if err := b.Decide(approved); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, b); err != nil {
		s.logger.Error("failed to update booking", zap.Int64("booking_id", bookingID), zap.Error(err))
		return nil, err
	}

	eventType := events.BookingRejected
	if approved {
		eventType = events.BookingApproved
	}
	s.logger.Info("booking decided",
		zap.Int64("booking_id", bookingID),
		zap.String("status", b.Status().String()),
	)
	s.publisher.Publish(ctx, eventType, itm.Name(), events.NewBookingEvent(b))

	booker, err := s.userRepo.FindByID(ctx, b.BookerID())
	if err != nil {
		return nil, err
	}
	dto := toBookingDTO(b, itm, booker)
	return &dto, nil
}

// GetByID returns a booking visible only to its booker or the item's
// owner; everyone else gets NotFound.
func (s *BookingService) GetByID(ctx context.Context, bookingID, userID int64) (*BookingDTO, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	itm, err := s.itemRepo.FindByID(ctx, b.ItemID())
	if err != nil {
		return nil, err
	}
	if !bookingDomain.CanView(b, itm.OwnerID(), userID) {
		return nil, domain.NewNotFoundError("booking not found")
	}
	booker, err := s.userRepo.FindByID(ctx, b.BookerID())
	if err != nil {
		return nil, err
	}
	dto := toBookingDTO(b, itm, booker)
	return &dto, nil
}

// ListByBooker returns the user's bookings filtered by state, sorted by
// start date descending.
func (s *BookingService) ListByBooker(ctx context.Context, userID int64, state string, from, size int) ([]BookingDTO, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	st, err := bookingDomain.ParseState(state)
	if err != nil {
		return nil, err
	}
	page, err := domain.NewPage(from, size)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.FindAllByBooker(ctx, userID, st.Criteria(time.Now()), page)
	if err != nil {
		return nil, err
	}
	return s.toBookingDTOs(ctx, bookings)
}

// ListByOwner returns bookings of items the user owns, filtered by state,
// sorted by start date descending.
func (s *BookingService) ListByOwner(ctx context.Context, userID int64, state string, from, size int) ([]BookingDTO, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	st, err := bookingDomain.ParseState(state)
	if err != nil {
		return nil, err
	}
	page, err := domain.NewPage(from, size)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.FindAllByOwner(ctx, userID, st.Criteria(time.Now()), page)
	if err != nil {
		return nil, err
	}
	return s.toBookingDTOs(ctx, bookings)
}

// toBookingDTOs assembles response DTOs, batch-loading the referenced
// items and bookers.
func (s *BookingService) toBookingDTOs(ctx context.Context, bookings []*bookingDomain.Booking) ([]BookingDTO, error) {
	itemIDs := make([]int64, 0, len(bookings))
	bookerIDs := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		itemIDs = append(itemIDs, b.ItemID())
		bookerIDs = append(bookerIDs, b.BookerID())
	}

	items, err := s.itemRepo.FindAllByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindAllByIDs(ctx, bookerIDs)
	if err != nil {
		return nil, err
	}

	itemsByID := make(map[int64]*itemDomain.Item, len(items))
	for _, itm := range items {
		itemsByID[itm.ID()] = itm
	}
	usersByID := make(map[int64]*userDomain.User, len(users))
	for _, u := range users {
		usersByID[u.ID()] = u
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dto := BookingDTO{
			ID:     b.ID(),
			Start:  b.Start(),
			End:    b.End(),
			Status: b.Status(),
			Item:   ItemShortDTO{ID: b.ItemID()},
			Booker: UserShortDTO{ID: b.BookerID()},
		}
		if itm, ok := itemsByID[b.ItemID()]; ok {
			dto.Item.Name = itm.Name()
		}
		if u, ok := usersByID[b.BookerID()]; ok {
			dto.Booker.Name = u.Name()
		}
		dtos[i] = dto
	}
	return dtos, nil
}

func toBookingDTO(b *bookingDomain.Booking, itm *itemDomain.Item, booker *userDomain.User) BookingDTO {
	return BookingDTO{
		ID:     b.ID(),
		Start:  b.Start(),
		End:    b.End(),
		Status: b.Status(),
		Item:   ItemShortDTO{ID: itm.ID(), Name: itm.Name()},
		Booker: UserShortDTO{ID: booker.ID(), Name: booker.Name()},
	}
}
