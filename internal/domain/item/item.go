package item

import (
	"github.com/shareit-app/shareit/internal/domain"
)

// Item is the aggregate root for a shareable item. An item belongs to one
// owner and may originate from an item request it fulfills.
type Item struct {
	id          int64
	ownerID     int64
	name        string
	description string
	available   bool
	requestID   *int64
}

// NewItem creates a new Item with validated fields.
func NewItem(ownerID int64, name, description string, available *bool, requestID *int64) (*Item, error) {
	if ownerID <= 0 {
		return nil, domain.NewValidationError("owner id is required")
	}
	if name == "" {
		return nil, domain.NewValidationError("item name is required")
	}
	if description == "" {
		return nil, domain.NewValidationError("item description is required")
	}
	if available == nil {
		return nil, domain.NewValidationError("item availability is required")
	}
	return &Item{
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   *available,
		requestID:   requestID,
	}, nil
}

// Reconstruct rebuilds an Item from persistence data (no validation).
func Reconstruct(id, ownerID int64, name, description string, available bool, requestID *int64) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
	}
}

// --- Getters ---

func (i *Item) ID() int64           { return i.id }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) RequestID() *int64   { return i.requestID }

// IsOwnedBy checks if the item belongs to the given user.
func (i *Item) IsOwnedBy(userID int64) bool {
	return i.ownerID == userID
}

// Update applies a partial patch: nil or empty fields leave the current value.
func (i *Item) Update(name, description string, available *bool, requestID *int64) {
	if name != "" {
		i.name = name
	}
	if description != "" {
		i.description = description
	}
	if available != nil {
		i.available = *available
	}
	if requestID != nil {
		i.requestID = requestID
	}
}
