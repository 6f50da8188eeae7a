package item

import (
	"context"

	"github.com/shareit-app/shareit/internal/domain"
)

// Repository defines persistence operations for items.
type Repository interface {
	// Save persists a new item and returns it with its assigned id.
	Save(ctx context.Context, i *Item) (*Item, error)

	// Update persists changes to an existing item.
	Update(ctx context.Context, i *Item) error

	// FindByID retrieves an item by its identifier.
	FindByID(ctx context.Context, id int64) (*Item, error)

	// FindAllByIDs retrieves the items with the given identifiers.
	FindAllByIDs(ctx context.Context, ids []int64) ([]*Item, error)

	// FindAllByOwner retrieves the owner's items ordered by id within the page window.
	FindAllByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]*Item, error)

	// Search retrieves available items whose name or description contains
	// the text, case-insensitively, within the page window.
	Search(ctx context.Context, text string, page domain.Page) ([]*Item, error)

	// FindAllByRequest retrieves items created to fulfill the given request.
	FindAllByRequest(ctx context.Context, requestID int64) ([]*Item, error)

	// Delete removes an item by its identifier.
	Delete(ctx context.Context, id int64) error
}

// CommentRepository defines persistence operations for item comments.
type CommentRepository interface {
	// Save persists a new comment and returns it with its assigned id.
	Save(ctx context.Context, c *Comment) (*Comment, error)

	// FindAllByItem retrieves all comments on the item.
	FindAllByItem(ctx context.Context, itemID int64) ([]*Comment, error)
}
