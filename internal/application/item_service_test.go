package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingDomain "github.com/shareit-app/shareit/internal/domain/booking"
)

func boolPtr(b bool) *bool    { return &b }
func int64Ptr(v int64) *int64 { return &v }

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates item", func(t *testing.T) {
		s := newTestStack()
		owner := s.addUser(t, "owner", "owner@example.com")

		dto, err := s.itemService.Create(ctx, owner, CreateItemRequest{
			Name:        "drill",
			Description: "cordless drill",
			Available:   boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "drill", dto.Name)
		assert.True(t, dto.Available)
		assert.Nil(t, dto.RequestID)
		assert.Empty(t, dto.Comments)
	})

	t.Run("unknown owner", func(t *testing.T) {
		s := newTestStack()
		_, err := s.itemService.Create(ctx, 99, CreateItemRequest{
			Name:        "drill",
			Description: "cordless drill",
			Available:   boolPtr(true),
		})
		assert.EqualError(t, err, "user not found")
	})

	t.Run("unknown request id", func(t *testing.T) {
		s := newTestStack()
		owner := s.addUser(t, "owner", "owner@example.com")
		_, err := s.itemService.Create(ctx, owner, CreateItemRequest{
			Name:        "drill",
			Description: "cordless drill",
			Available:   boolPtr(true),
			RequestID:   int64Ptr(42),
		})
		assert.EqualError(t, err, "request not found")
	})

	t.Run("missing availability", func(t *testing.T) {
		s := newTestStack()
		owner := s.addUser(t, "owner", "owner@example.com")
		_, err := s.itemService.Create(ctx, owner, CreateItemRequest{
			Name:        "drill",
			Description: "cordless drill",
		})
		assert.EqualError(t, err, "item availability is required")
	})
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("owner patches fields", func(t *testing.T) {
		s := newTestStack()
		owner := s.addUser(t, "owner", "owner@example.com")
		itemID := s.addItem(t, owner, "drill", true)

		dto, err := s.itemService.Update(ctx, owner, itemID, UpdateItemRequest{Available: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, dto.Available)
		assert.Equal(t, "drill", dto.Name, "untouched fields keep their value")

		dto, err = s.itemService.Update(ctx, owner, itemID, UpdateItemRequest{Name: "hammer drill"})
		require.NoError(t, err)
		assert.Equal(t, "hammer drill", dto.Name)
		assert.False(t, dto.Available)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		s := newTestStack()
		owner := s.addUser(t, "owner", "owner@example.com")
		other := s.addUser(t, "other", "other@example.com")
		itemID := s.addItem(t, owner, "drill", true)

		_, err := s.itemService.Update(ctx, other, itemID, UpdateItemRequest{Name: "mine now"})
		assert.EqualError(t, err, "only the owner can edit an item")
	})

	t.Run("unknown item", func(t *testing.T) {
		s := newTestStack()
		owner := s.addUser(t, "owner", "owner@example.com")
		_, err := s.itemService.Update(ctx, owner, 99, UpdateItemRequest{Name: "x"})
		assert.EqualError(t, err, "item not found")
	})
}

func TestItemService_GetByID_BookingAnnotations(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	s := newTestStack()
	owner := s.addUser(t, "owner", "owner@example.com")
	booker := s.addUser(t, "booker", "booker@example.com")
	itemID := s.addItem(t, owner, "drill", true)

	lastID := s.addBooking(t, itemID, booker, now.Add(-2*time.Hour), now.Add(-time.Hour), bookingDomain.StatusApproved)
	nextID := s.addBooking(t, itemID, booker, now.Add(time.Hour), now.Add(2*time.Hour), bookingDomain.StatusApproved)
	// Waiting bookings never show up as annotations.
	s.addBooking(t, itemID, booker, now.Add(3*time.Hour), now.Add(4*time.Hour), bookingDomain.StatusWaiting)

	t.Run("owner sees last and next", func(t *testing.T) {
		dto, err := s.itemService.GetByID(ctx, owner, itemID)
		require.NoError(t, err)
		require.NotNil(t, dto.LastBooking)
		require.NotNil(t, dto.NextBooking)
		assert.Equal(t, lastID, dto.LastBooking.ID)
		assert.Equal(t, nextID, dto.NextBooking.ID)
		assert.Equal(t, booker, dto.LastBooking.BookerID)
	})

	t.Run("non-owner sees no annotations", func(t *testing.T) {
		dto, err := s.itemService.GetByID(ctx, booker, itemID)
		require.NoError(t, err)
		assert.Nil(t, dto.LastBooking)
		assert.Nil(t, dto.NextBooking)
	})
}

func TestItemService_Search(t *testing.T) {
	ctx := context.Background()

	s := newTestStack()
	owner := s.addUser(t, "owner", "owner@example.com")
	s.addItem(t, owner, "Cordless Drill", true)
	s.addItem(t, owner, "drill press", true)
	s.addItem(t, owner, "broken drill", false)
	s.addItem(t, owner, "ladder", true)

	t.Run("case-insensitive, available only", func(t *testing.T) {
		found, err := s.itemService.Search(ctx, "DRILL", 0, 10)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "Cordless Drill", found[0].Name)
		assert.Equal(t, "drill press", found[1].Name)
	})

	t.Run("empty text matches nothing", func(t *testing.T) {
		found, err := s.itemService.Search(ctx, "", 0, 10)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestItemService_AddComment(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("allowed after finished approved booking", func(t *testing.T) {
		s := newTestStack()
		owner := s.addUser(t, "owner", "owner@example.com")
		booker := s.addUser(t, "renter", "renter@example.com")
		itemID := s.addItem(t, owner, "drill", true)
		s.addBooking(t, itemID, booker, now.Add(-2*time.Hour), now.Add(-time.Hour), bookingDomain.StatusApproved)

		dto, err := s.itemService.AddComment(ctx, booker, itemID, CommentRequest{Text: "worked great"})
		require.NoError(t, err)
		assert.Equal(t, "worked great", dto.Text)
		assert.Equal(t, "renter", dto.AuthorName)

		full, err := s.itemService.GetByID(ctx, owner, itemID)
		require.NoError(t, err)
		require.Len(t, full.Comments, 1)
		assert.Equal(t, "renter", full.Comments[0].AuthorName)
	})

	t.Run("rejected without any booking", func(t *testing.T) {
		s := newTestStack()
		owner := s.addUser(t, "owner", "owner@example.com")
		other := s.addUser(t, "other", "other@example.com")
		itemID := s.addItem(t, owner, "drill", true)

		_, err := s.itemService.AddComment(ctx, other, itemID, CommentRequest{Text: "nice"})
		assert.EqualError(t, err, "comments are allowed only after a finished booking")
	})

	t.Run("rejected while booking still running", func(t *testing.T) {
		s := newTestStack()
		owner := s.addUser(t, "owner", "owner@example.com")
		booker := s.addUser(t, "renter", "renter@example.com")
		itemID := s.addItem(t, owner, "drill", true)
		s.addBooking(t, itemID, booker, now.Add(-time.Hour), now.Add(time.Hour), bookingDomain.StatusApproved)

		_, err := s.itemService.AddComment(ctx, booker, itemID, CommentRequest{Text: "so far so good"})
		assert.EqualError(t, err, "comments are allowed only after a finished booking")
	})

	t.Run("rejected for unapproved past booking", func(t *testing.T) {
		s := newTestStack()
		owner := s.addUser(t, "owner", "owner@example.com")
		booker := s.addUser(t, "renter", "renter@example.com")
		itemID := s.addItem(t, owner, "drill", true)
		s.addBooking(t, itemID, booker, now.Add(-2*time.Hour), now.Add(-time.Hour), bookingDomain.StatusRejected)

		_, err := s.itemService.AddComment(ctx, booker, itemID, CommentRequest{Text: "never got it"})
		assert.EqualError(t, err, "comments are allowed only after a finished booking")
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()

	s := newTestStack()
	owner := s.addUser(t, "owner", "owner@example.com")
	other := s.addUser(t, "other", "other@example.com")
	itemID := s.addItem(t, owner, "drill", true)

	err := s.itemService.Delete(ctx, other, itemID)
	assert.EqualError(t, err, "only the owner can delete an item")

	require.NoError(t, s.itemService.Delete(ctx, owner, itemID))

	_, err = s.itemService.GetByID(ctx, owner, itemID)
	assert.EqualError(t, err, "item not found")
}
