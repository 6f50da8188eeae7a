package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shareit-app/shareit/internal/domain"
	itemDomain "github.com/shareit-app/shareit/internal/domain/item"
	requestDomain "github.com/shareit-app/shareit/internal/domain/request"
	userDomain "github.com/shareit-app/shareit/internal/domain/user"
)

// CreateRequestRequest holds the description of a new item request.
type CreateRequestRequest struct {
	Description string `json:"description"`
}

// RequestDTO is the response representation of an item request, together
// with the items that have been listed to fulfill it.
type RequestDTO struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Items       []ItemDTO `json:"items"`
}

// RequestService implements item request CRUD.
type RequestService struct {
	requestRepo requestDomain.Repository
	itemRepo    itemDomain.Repository
	userRepo    userDomain.Repository
	logger      *zap.Logger
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requestRepo requestDomain.Repository,
	itemRepo itemDomain.Repository,
	userRepo userDomain.Repository,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Create registers a new item request for the given user.
func (s *RequestService) Create(ctx context.Context, userID int64, req CreateRequestRequest) (*RequestDTO, error) {
	requestor, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	r, err := requestDomain.NewItemRequest(requestor.ID(), req.Description, time.Now())
	if err != nil {
		return nil, err
	}
	saved, err := s.requestRepo.Save(ctx, r)
	if err != nil {
		s.logger.Error("failed to save request", zap.Error(err))
		return nil, err
	}
	s.logger.Info("item request created", zap.Int64("request_id", saved.ID()), zap.Int64("user_id", userID))
	dto := toRequestDTO(saved)
	return &dto, nil
}

// ListOwn returns the user's own requests, oldest first, with their items.
func (s *RequestService) ListOwn(ctx context.Context, userID int64) ([]RequestDTO, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.FindAllByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toRequestDTOs(ctx, requests)
}

// ListOthers returns other users' requests, oldest first, with their items.
func (s *RequestService) ListOthers(ctx context.Context, userID int64, from, size int) ([]RequestDTO, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	page, err := domain.NewPage(from, size)
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.FindAllByOthers(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return s.toRequestDTOs(ctx, requests)
}

// GetByID returns a single request with its items.
func (s *RequestService) GetByID(ctx context.Context, userID, requestID int64) (*RequestDTO, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	r, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	dto := toRequestDTO(r)
	if err := s.attachItems(ctx, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

func (s *RequestService) toRequestDTOs(ctx context.Context, requests []*requestDomain.ItemRequest) ([]RequestDTO, error) {
	dtos := make([]RequestDTO, len(requests))
	for i, r := range requests {
		dto := toRequestDTO(r)
		if err := s.attachItems(ctx, &dto); err != nil {
			return nil, err
		}
		dtos[i] = dto
	}
	return dtos, nil
}

func (s *RequestService) attachItems(ctx context.Context, dto *RequestDTO) error {
	items, err := s.itemRepo.FindAllByRequest(ctx, dto.ID)
	if err != nil {
		return err
	}
	dto.Items = make([]ItemDTO, len(items))
	for i, itm := range items {
		dto.Items[i] = toItemDTO(itm)
	}
	return nil
}

func toRequestDTO(r *requestDomain.ItemRequest) RequestDTO {
	return RequestDTO{
		ID:          r.ID(),
		Description: r.Description(),
		Created:     r.Created(),
		Items:       []ItemDTO{},
	}
}
