package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shareit-app/shareit/internal/domain"
	requestDomain "github.com/shareit-app/shareit/internal/domain/request"
)

// ItemRequestModel is the GORM model for the requests table.
type ItemRequestModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	RequestorID int64     `gorm:"index;not null"`
	Description string    `gorm:"not null;size:1000"`
	Created     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ItemRequestModel) TableName() string {
	return "requests"
}

// GormRequestRepository is the GORM-based implementation of request.Repository.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// Save persists a new request.
func (r *GormRequestRepository) Save(ctx context.Context, req *requestDomain.ItemRequest) (*requestDomain.ItemRequest, error) {
	model := toRequestModel(req)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}
	return toDomainRequest(model), nil
}

// FindByID retrieves a request by its identifier.
func (r *GormRequestRepository) FindByID(ctx context.Context, id int64) (*requestDomain.ItemRequest, error) {
	var model ItemRequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("request not found")
		}
		return nil, fmt.Errorf("failed to find request by id: %w", err)
	}
	return toDomainRequest(&model), nil
}

// FindAllByRequestor retrieves the user's own requests, oldest first.
func (r *GormRequestRepository) FindAllByRequestor(ctx context.Context, requestorID int64) ([]*requestDomain.ItemRequest, error) {
	var models []ItemRequestModel
	if err := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find own requests: %w", err)
	}
	return toDomainRequests(models), nil
}

// FindAllByOthers retrieves requests made by other users, oldest first.
func (r *GormRequestRepository) FindAllByOthers(ctx context.Context, requestorID int64, page domain.Page) ([]*requestDomain.ItemRequest, error) {
	var models []ItemRequestModel
	if err := r.db.WithContext(ctx).
		Where("requestor_id <> ?", requestorID).
		Order("created ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find other requests: %w", err)
	}
	return toDomainRequests(models), nil
}

// --- Conversion Helpers ---

func toRequestModel(req *requestDomain.ItemRequest) *ItemRequestModel {
	return &ItemRequestModel{
		ID:          req.ID(),
		RequestorID: req.RequestorID(),
		Description: req.Description(),
		Created:     req.Created(),
	}
}

func toDomainRequest(m *ItemRequestModel) *requestDomain.ItemRequest {
	return requestDomain.Reconstruct(m.ID, m.RequestorID, m.Description, m.Created)
}

func toDomainRequests(models []ItemRequestModel) []*requestDomain.ItemRequest {
	requests := make([]*requestDomain.ItemRequest, len(models))
	for i, m := range models {
		requests[i] = toDomainRequest(&m)
	}
	return requests
}
