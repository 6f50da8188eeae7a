package request

import (
	"context"

	"github.com/shareit-app/shareit/internal/domain"
)

// Repository defines persistence operations for item requests.
type Repository interface {
	// Save persists a new request and returns it with its assigned id.
	Save(ctx context.Context, r *ItemRequest) (*ItemRequest, error)

	// FindByID retrieves a request by its identifier.
	FindByID(ctx context.Context, id int64) (*ItemRequest, error)

	// FindAllByRequestor retrieves the user's own requests, oldest first.
	FindAllByRequestor(ctx context.Context, requestorID int64) ([]*ItemRequest, error)

	// FindAllByOthers retrieves requests made by other users, oldest first,
	// within the page window.
	FindAllByOthers(ctx context.Context, requestorID int64, page domain.Page) ([]*ItemRequest, error)
}
