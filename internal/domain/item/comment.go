package item

import (
	"time"

	"github.com/shareit-app/shareit/internal/domain"
)

// Comment is a free-text note left on an item by a user who rented it.
type Comment struct {
	id       int64
	itemID   int64
	authorID int64
	text     string
	created  time.Time
}

// NewComment creates a new Comment stamped with the given creation time.
func NewComment(itemID, authorID int64, text string, created time.Time) (*Comment, error) {
	if text == "" {
		return nil, domain.NewValidationError("comment text is required")
	}
	return &Comment{
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  created,
	}, nil
}

// ReconstructComment rebuilds a Comment from persistence data (no validation).
func ReconstructComment(id, itemID, authorID int64, text string, created time.Time) *Comment {
	return &Comment{
		id:       id,
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  created,
	}
}

// --- Getters ---

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) Created() time.Time { return c.created }
