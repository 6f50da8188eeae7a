package request

import (
	"time"

	"github.com/shareit-app/shareit/internal/domain"
)

// ItemRequest is a user's ask for an item nobody has listed yet.
// Items created later may reference it as the request they fulfill.
type ItemRequest struct {
	id          int64
	requestorID int64
	description string
	created     time.Time
}

// NewItemRequest creates a new ItemRequest stamped with the given creation time.
func NewItemRequest(requestorID int64, description string, created time.Time) (*ItemRequest, error) {
	if description == "" {
		return nil, domain.NewValidationError("request description is required")
	}
	return &ItemRequest{
		requestorID: requestorID,
		description: description,
		created:     created,
	}, nil
}

// Reconstruct rebuilds an ItemRequest from persistence data (no validation).
func Reconstruct(id, requestorID int64, description string, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		requestorID: requestorID,
		description: description,
		created:     created,
	}
}

// --- Getters ---

func (r *ItemRequest) ID() int64           { return r.id }
func (r *ItemRequest) RequestorID() int64  { return r.requestorID }
func (r *ItemRequest) Description() string { return r.description }
func (r *ItemRequest) Created() time.Time  { return r.created }
