package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-app/shareit/internal/domain"
	bookingDomain "github.com/shareit-app/shareit/internal/domain/booking"
	itemDomain "github.com/shareit-app/shareit/internal/domain/item"
	requestDomain "github.com/shareit-app/shareit/internal/domain/request"
	userDomain "github.com/shareit-app/shareit/internal/domain/user"
)

// CreateItemRequest holds the data needed to list a new item.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemRequest carries a partial patch: zero fields leave the
// current value untouched.
type UpdateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// CommentRequest holds the text of a new comment.
type CommentRequest struct {
	Text string `json:"text"`
}

// CommentDTO is the response representation of a comment.
type CommentDTO struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// BookingRefDTO is the last/next booking annotation on an item.
type BookingRefDTO struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// ItemDTO is the response representation of an item. LastBooking and
// NextBooking are populated only for the item's owner.
type ItemDTO struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Available   bool           `json:"available"`
	RequestID   *int64         `json:"requestId,omitempty"`
	LastBooking *BookingRefDTO `json:"lastBooking,omitempty"`
	NextBooking *BookingRefDTO `json:"nextBooking,omitempty"`
	Comments    []CommentDTO   `json:"comments"`
}

// ItemService implements item CRUD, search, the availability-gated comment
// flow, and the owner-only last/next booking annotations.
type ItemService struct {
	itemRepo    itemDomain.Repository
	commentRepo itemDomain.CommentRepository
	bookingRepo bookingDomain.Repository
	userRepo    userDomain.Repository
	requestRepo requestDomain.Repository
	logger      *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(
	itemRepo itemDomain.Repository,
	commentRepo itemDomain.CommentRepository,
	bookingRepo bookingDomain.Repository,
	userRepo userDomain.Repository,
	requestRepo requestDomain.Repository,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		itemRepo:    itemRepo,
		commentRepo: commentRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Create lists a new item owned by the given user. A requestId, when
// present, must reference an existing item request.
func (s *ItemService) Create(ctx context.Context, userID int64, req CreateItemRequest) (*ItemDTO, error) {
	owner, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		if _, err := s.requestRepo.FindByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	itm, err := itemDomain.NewItem(owner.ID(), req.Name, req.Description, req.Available, req.RequestID)
	if err != nil {
		return nil, err
	}
	saved, err := s.itemRepo.Save(ctx, itm)
	if err != nil {
		s.logger.Error("failed to save item", zap.Error(err))
		return nil, err
	}

	s.logger.Info("item created", zap.Int64("item_id", saved.ID()), zap.Int64("owner_id", userID))
	dto := toItemDTO(saved)
	return &dto, nil
}

// Update applies a partial patch to an item. Only the owner may edit.
func (s *ItemService) Update(ctx context.Context, userID, itemID int64, req UpdateItemRequest) (*ItemDTO, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	itm, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !itm.IsOwnedBy(userID) {
		return nil, domain.NewForbiddenError("only the owner can edit an item")
	}
	if req.RequestID != nil {
		if _, err := s.requestRepo.FindByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	itm.Update(req.Name, req.Description, req.Available, req.RequestID)
	if err := s.itemRepo.Update(ctx, itm); err != nil {
		s.logger.Error("failed to update item", zap.Int64("item_id", itemID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("item updated", zap.Int64("item_id", itemID))
	dto := toItemDTO(itm)
	return &dto, nil
}

// GetByID returns an item with its comments. The owner additionally sees
// the last and next APPROVED bookings.
func (s *ItemService) GetByID(ctx context.Context, userID, itemID int64) (*ItemDTO, error) {
	itm, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	dto := toItemDTO(itm)
	if itm.IsOwnedBy(userID) {
		if err := s.attachLastAndNext(ctx, &dto); err != nil {
			return nil, err
		}
	}
	if err := s.attachComments(ctx, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// ListByOwner returns the user's items with booking annotations and comments.
func (s *ItemService) ListByOwner(ctx context.Context, userID int64, from, size int) ([]ItemDTO, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	page, err := domain.NewPage(from, size)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindAllByOwner(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	dtos := make([]ItemDTO, len(items))
	for i, itm := range items {
		dto := toItemDTO(itm)
		if err := s.attachLastAndNext(ctx, &dto); err != nil {
			return nil, err
		}
		if err := s.attachComments(ctx, &dto); err != nil {
			return nil, err
		}
		dtos[i] = dto
	}
	return dtos, nil
}

// Search returns available items matching the text; empty text matches nothing.
func (s *ItemService) Search(ctx context.Context, text string, from, size int) ([]ItemDTO, error) {
	page, err := domain.NewPage(from, size)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.Search(ctx, text, page)
	if err != nil {
		return nil, err
	}
	dtos := make([]ItemDTO, len(items))
	for i, itm := range items {
		dtos[i] = toItemDTO(itm)
	}
	return dtos, nil
}

// Delete removes an item. Only the owner may delete.
func (s *ItemService) Delete(ctx context.Context, userID, itemID int64) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return err
	}
	itm, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !itm.IsOwnedBy(userID) {
		return domain.NewForbiddenError("only the owner can delete an item")
	}
	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		s.logger.Error("failed to delete item", zap.Int64("item_id", itemID), zap.Error(err))
		return err
	}
	s.logger.Info("item deleted", zap.Int64("item_id", itemID))
	return nil
}

// AddComment posts a comment on an item. The author must have an APPROVED
// booking of the item that already ended.
func (s *ItemService) AddComment(ctx context.Context, userID, itemID int64, req CommentRequest) (*CommentDTO, error) {
	now := time.Now()
	finished, err := s.bookingRepo.HasFinishedBooking(ctx, userID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, domain.NewValidationError("comments are allowed only after a finished booking")
	}

	author, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	itm, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	cmt, err := itemDomain.NewComment(itm.ID(), author.ID(), req.Text, now)
	if err != nil {
		return nil, err
	}
	saved, err := s.commentRepo.Save(ctx, cmt)
	if err != nil {
		s.logger.Error("failed to save comment", zap.Int64("item_id", itemID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("comment posted", zap.Int64("item_id", itemID), zap.Int64("author_id", userID))
	return &CommentDTO{
		ID:         saved.ID(),
		Text:       saved.Text(),
		AuthorName: author.Name(),
		Created:    saved.Created(),
	}, nil
}

func (s *ItemService) attachLastAndNext(ctx context.Context, dto *ItemDTO) error {
	now := time.Now()
	last, err := s.bookingRepo.FindLastForItem(ctx, dto.ID, now)
	if err != nil {
		return err
	}
	next, err := s.bookingRepo.FindNextForItem(ctx, dto.ID, now)
	if err != nil {
		return err
	}
	dto.LastBooking = toBookingRefDTO(last)
	dto.NextBooking = toBookingRefDTO(next)
	return nil
}

func (s *ItemService) attachComments(ctx context.Context, dto *ItemDTO) error {
	comments, err := s.commentRepo.FindAllByItem(ctx, dto.ID)
	if err != nil {
		return err
	}

	authorIDs := make([]int64, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.AuthorID())
	}
	authors, err := s.userRepo.FindAllByIDs(ctx, authorIDs)
	if err != nil {
		return err
	}
	namesByID := make(map[int64]string, len(authors))
	for _, u := range authors {
		namesByID[u.ID()] = u.Name()
	}

	dto.Comments = make([]CommentDTO, len(comments))
	for i, c := range comments {
		dto.Comments[i] = CommentDTO{
			ID:         c.ID(),
			Text:       c.Text(),
			AuthorName: namesByID[c.AuthorID()],
			Created:    c.Created(),
		}
	}
	return nil
}

func toItemDTO(i *itemDomain.Item) ItemDTO {
	return ItemDTO{
		ID:          i.ID(),
		Name:        i.Name(),
		Description: i.Description(),
		Available:   i.Available(),
		RequestID:   i.RequestID(),
		Comments:    []CommentDTO{},
	}
}

func toBookingRefDTO(b *bookingDomain.Booking) *BookingRefDTO {
	if b == nil {
		return nil
	}
	return &BookingRefDTO{
		ID:       b.ID(),
		BookerID: b.BookerID(),
		Start:    b.Start(),
		End:      b.End(),
	}
}
