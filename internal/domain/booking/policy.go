package booking

// Access policy for bookings. Every accessor applies the same predicates
// instead of repeating ownership guards; callers translate a false result
// into NotFound so non-participants cannot probe for existence.

// CanView reports whether the actor may see the booking: only the booker
// and the owner of the booked item.
func CanView(b *Booking, itemOwnerID, actorID int64) bool {
	return b.BookerID() == actorID || itemOwnerID == actorID
}

// CanApprove reports whether the actor may decide a booking on the item:
// only the item's owner.
func CanApprove(itemOwnerID, actorID int64) bool {
	return itemOwnerID == actorID
}

// CanBook reports whether the actor may book the item: anyone but its owner.
func CanBook(itemOwnerID, actorID int64) bool {
	return itemOwnerID != actorID
}
