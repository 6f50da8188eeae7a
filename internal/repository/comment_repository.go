package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	itemDomain "github.com/shareit-app/shareit/internal/domain/item"
)

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	ItemID   int64     `gorm:"index;not null"`
	AuthorID int64     `gorm:"not null"`
	Text     string    `gorm:"not null;size:1000"`
	Created  time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (CommentModel) TableName() string {
	return "comments"
}

// GormCommentRepository is the GORM-based implementation of item.CommentRepository.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Save persists a new comment.
func (r *GormCommentRepository) Save(ctx context.Context, c *itemDomain.Comment) (*itemDomain.Comment, error) {
	model := toCommentModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	return toDomainComment(model), nil
}

// FindAllByItem retrieves all comments on the item, oldest first.
func (r *GormCommentRepository) FindAllByItem(ctx context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	var models []CommentModel
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Order("created").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find item comments: %w", err)
	}
	comments := make([]*itemDomain.Comment, len(models))
	for i, m := range models {
		comments[i] = toDomainComment(&m)
	}
	return comments, nil
}

// --- Conversion Helpers ---

func toCommentModel(c *itemDomain.Comment) *CommentModel {
	return &CommentModel{
		ID:       c.ID(),
		ItemID:   c.ItemID(),
		AuthorID: c.AuthorID(),
		Text:     c.Text(),
		Created:  c.Created(),
	}
}

func toDomainComment(m *CommentModel) *itemDomain.Comment {
	return itemDomain.ReconstructComment(m.ID, m.ItemID, m.AuthorID, m.Text, m.Created)
}
