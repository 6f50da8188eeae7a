package application

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shareit-app/shareit/internal/domain"
	bookingDomain "github.com/shareit-app/shareit/internal/domain/booking"
	itemDomain "github.com/shareit-app/shareit/internal/domain/item"
	requestDomain "github.com/shareit-app/shareit/internal/domain/request"
	userDomain "github.com/shareit-app/shareit/internal/domain/user"
)

// In-memory repository fakes. They mirror the ordering and paging
// contracts of the GORM implementations so service tests exercise the
// same query semantics.

func window[T any](items []T, page domain.Page) []T {
	if page.Offset >= len(items) {
		return nil
	}
	end := page.Offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Offset:end]
}

type fakeUserRepo struct {
	users  map[int64]*userDomain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*userDomain.User), nextID: 1}
}

func (r *fakeUserRepo) Save(_ context.Context, u *userDomain.User) (*userDomain.User, error) {
	for _, existing := range r.users {
		if existing.Email() == u.Email() {
			return nil, domain.NewConflictError("email already in use")
		}
	}
	saved := userDomain.Reconstruct(r.nextID, u.Name(), u.Email())
	r.users[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *userDomain.User) error {
	if _, ok := r.users[u.ID()]; !ok {
		return domain.NewNotFoundError("user not found")
	}
	for id, existing := range r.users {
		if id != u.ID() && existing.Email() == u.Email() {
			return domain.NewConflictError("email already in use")
		}
	}
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*userDomain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user not found")
	}
	return u, nil
}

func (r *fakeUserRepo) FindAllByIDs(_ context.Context, ids []int64) ([]*userDomain.User, error) {
	var out []*userDomain.User
	seen := make(map[int64]bool)
	for _, id := range ids {
		if u, ok := r.users[id]; ok && !seen[id] {
			out = append(out, u)
			seen[id] = true
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*userDomain.User, error) {
	out := make([]*userDomain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

type fakeItemRepo struct {
	items  map[int64]*itemDomain.Item
	nextID int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[int64]*itemDomain.Item), nextID: 1}
}

func (r *fakeItemRepo) Save(_ context.Context, i *itemDomain.Item) (*itemDomain.Item, error) {
	saved := itemDomain.Reconstruct(r.nextID, i.OwnerID(), i.Name(), i.Description(), i.Available(), i.RequestID())
	r.items[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeItemRepo) Update(_ context.Context, i *itemDomain.Item) error {
	if _, ok := r.items[i.ID()]; !ok {
		return domain.NewNotFoundError("item not found")
	}
	r.items[i.ID()] = i
	return nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id int64) (*itemDomain.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, domain.NewNotFoundError("item not found")
	}
	return i, nil
}

func (r *fakeItemRepo) FindAllByIDs(_ context.Context, ids []int64) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	seen := make(map[int64]bool)
	for _, id := range ids {
		if i, ok := r.items[id]; ok && !seen[id] {
			out = append(out, i)
			seen[id] = true
		}
	}
	return out, nil
}

func (r *fakeItemRepo) FindAllByOwner(_ context.Context, ownerID int64, page domain.Page) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	for _, i := range r.items {
		if i.OwnerID() == ownerID {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return window(out, page), nil
}

func (r *fakeItemRepo) Search(_ context.Context, text string, page domain.Page) ([]*itemDomain.Item, error) {
	if text == "" {
		return nil, nil
	}
	needle := strings.ToLower(text)
	var out []*itemDomain.Item
	for _, i := range r.items {
		if !i.Available() {
			continue
		}
		if strings.Contains(strings.ToLower(i.Name()), needle) ||
			strings.Contains(strings.ToLower(i.Description()), needle) {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return window(out, page), nil
}

func (r *fakeItemRepo) FindAllByRequest(_ context.Context, requestID int64) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	for _, i := range r.items {
		if i.RequestID() != nil && *i.RequestID() == requestID {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[int64]*bookingDomain.Booking
	items    *fakeItemRepo
	nextID   int64
}

func newFakeBookingRepo(items *fakeItemRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[int64]*bookingDomain.Booking),
		items:    items,
		nextID:   1,
	}
}

func (r *fakeBookingRepo) Save(_ context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	saved := bookingDomain.Reconstruct(r.nextID, b.ItemID(), b.BookerID(), b.Start(), b.End(), b.Status())
	r.bookings[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *bookingDomain.Booking) error {
	if _, ok := r.bookings[b.ID()]; !ok {
		return domain.NewNotFoundError("booking not found")
	}
	r.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id int64) (*bookingDomain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("booking not found")
	}
	return b, nil
}

func (r *fakeBookingRepo) FindAllByBooker(_ context.Context, bookerID int64, c bookingDomain.Criteria, page domain.Page) ([]*bookingDomain.Booking, error) {
	return r.filter(func(b *bookingDomain.Booking) bool { return b.BookerID() == bookerID }, c, page), nil
}

func (r *fakeBookingRepo) FindAllByOwner(_ context.Context, ownerID int64, c bookingDomain.Criteria, page domain.Page) ([]*bookingDomain.Booking, error) {
	return r.filter(func(b *bookingDomain.Booking) bool {
		itm, ok := r.items.items[b.ItemID()]
		return ok && itm.OwnerID() == ownerID
	}, c, page), nil
}

func (r *fakeBookingRepo) filter(pred func(*bookingDomain.Booking) bool, c bookingDomain.Criteria, page domain.Page) []*bookingDomain.Booking {
	var out []*bookingDomain.Booking
	for _, b := range r.bookings {
		if pred(b) && c.Matches(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start().After(out[j].Start()) })
	return window(out, page)
}

func (r *fakeBookingRepo) FindLastForItem(_ context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	var last *bookingDomain.Booking
	for _, b := range r.bookings {
		if b.ItemID() != itemID || b.Status() != bookingDomain.StatusApproved || !b.Start().Before(now) {
			continue
		}
		if last == nil || b.Start().After(last.Start()) {
			last = b
		}
	}
	return last, nil
}

func (r *fakeBookingRepo) FindNextForItem(_ context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	var next *bookingDomain.Booking
	for _, b := range r.bookings {
		if b.ItemID() != itemID || b.Status() != bookingDomain.StatusApproved || !b.Start().After(now) {
			continue
		}
		if next == nil || b.Start().Before(next.Start()) {
			next = b
		}
	}
	return next, nil
}

func (r *fakeBookingRepo) HasFinishedBooking(_ context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	for _, b := range r.bookings {
		if b.BookerID() == bookerID && b.ItemID() == itemID && b.FinishedBy(now) {
			return true, nil
		}
	}
	return false, nil
}

type fakeCommentRepo struct {
	comments map[int64]*itemDomain.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*itemDomain.Comment), nextID: 1}
}

func (r *fakeCommentRepo) Save(_ context.Context, c *itemDomain.Comment) (*itemDomain.Comment, error) {
	saved := itemDomain.ReconstructComment(r.nextID, c.ItemID(), c.AuthorID(), c.Text(), c.Created())
	r.comments[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeCommentRepo) FindAllByItem(_ context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	var out []*itemDomain.Comment
	for _, c := range r.comments {
		if c.ItemID() == itemID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

type fakeRequestRepo struct {
	requests map[int64]*requestDomain.ItemRequest
	nextID   int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[int64]*requestDomain.ItemRequest), nextID: 1}
}

func (r *fakeRequestRepo) Save(_ context.Context, req *requestDomain.ItemRequest) (*requestDomain.ItemRequest, error) {
	saved := requestDomain.Reconstruct(r.nextID, req.RequestorID(), req.Description(), req.Created())
	r.requests[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id int64) (*requestDomain.ItemRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.NewNotFoundError("request not found")
	}
	return req, nil
}

func (r *fakeRequestRepo) FindAllByRequestor(_ context.Context, requestorID int64) ([]*requestDomain.ItemRequest, error) {
	var out []*requestDomain.ItemRequest
	for _, req := range r.requests {
		if req.RequestorID() == requestorID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created().Before(out[j].Created()) })
	return out, nil
}

func (r *fakeRequestRepo) FindAllByOthers(_ context.Context, requestorID int64, page domain.Page) ([]*requestDomain.ItemRequest, error) {
	var out []*requestDomain.ItemRequest
	for _, req := range r.requests {
		if req.RequestorID() != requestorID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created().Before(out[j].Created()) })
	return window(out, page), nil
}
