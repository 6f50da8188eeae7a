package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestNewBooking(t *testing.T) {
	now := time.Now()
	start := now.Add(time.Hour)
	end := now.Add(2 * time.Hour)

	t.Run("creates waiting booking", func(t *testing.T) {
		b, err := NewBooking(1, 2, timePtr(start), timePtr(end))
		require.NoError(t, err)
		assert.Equal(t, StatusWaiting, b.Status())
		assert.Equal(t, int64(1), b.ItemID())
		assert.Equal(t, int64(2), b.BookerID())
	})

	t.Run("rejects missing dates", func(t *testing.T) {
		_, err := NewBooking(1, 2, nil, timePtr(end))
		assert.EqualError(t, err, "booking dates are required")

		_, err = NewBooking(1, 2, timePtr(start), nil)
		assert.EqualError(t, err, "booking dates are required")
	})

	t.Run("rejects end before start", func(t *testing.T) {
		_, err := NewBooking(1, 2, timePtr(end), timePtr(start))
		assert.EqualError(t, err, "end date must be after start date")
	})

	t.Run("rejects end equal to start", func(t *testing.T) {
		_, err := NewBooking(1, 2, timePtr(start), timePtr(start))
		assert.EqualError(t, err, "end date must be after start date")
	})

	t.Run("rejects non-positive ids", func(t *testing.T) {
		_, err := NewBooking(0, 2, timePtr(start), timePtr(end))
		assert.EqualError(t, err, "item id is required")

		_, err = NewBooking(1, 0, timePtr(start), timePtr(end))
		assert.EqualError(t, err, "booker id is required")
	})
}

func TestBookingDecide(t *testing.T) {
	now := time.Now()

	t.Run("approve moves waiting to approved", func(t *testing.T) {
		b := Reconstruct(1, 1, 2, now, now.Add(time.Hour), StatusWaiting)
		require.NoError(t, b.Decide(true))
		assert.Equal(t, StatusApproved, b.Status())
	})

	t.Run("reject moves waiting to rejected", func(t *testing.T) {
		b := Reconstruct(1, 1, 2, now, now.Add(time.Hour), StatusWaiting)
		require.NoError(t, b.Decide(false))
		assert.Equal(t, StatusRejected, b.Status())
	})

	t.Run("deciding twice fails", func(t *testing.T) {
		b := Reconstruct(1, 1, 2, now, now.Add(time.Hour), StatusWaiting)
		require.NoError(t, b.Decide(true))

		err := b.Decide(true)
		assert.EqualError(t, err, "booking already decided")
		err = b.Decide(false)
		assert.EqualError(t, err, "booking already decided")
		assert.Equal(t, StatusApproved, b.Status())
	})

	t.Run("rejected stays rejected", func(t *testing.T) {
		b := Reconstruct(1, 1, 2, now, now.Add(time.Hour), StatusRejected)
		assert.EqualError(t, b.Decide(true), "booking already decided")
	})
}

func TestBookingFinishedBy(t *testing.T) {
	now := time.Now()
	past := Reconstruct(1, 1, 2, now.Add(-2*time.Hour), now.Add(-time.Hour), StatusApproved)
	running := Reconstruct(2, 1, 2, now.Add(-time.Hour), now.Add(time.Hour), StatusApproved)
	pastWaiting := Reconstruct(3, 1, 2, now.Add(-2*time.Hour), now.Add(-time.Hour), StatusWaiting)

	assert.True(t, past.FinishedBy(now))
	assert.False(t, running.FinishedBy(now))
	assert.False(t, pastWaiting.FinishedBy(now))
}
