package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-app/shareit/internal/application"
	"github.com/shareit-app/shareit/internal/domain"
	"github.com/shareit-app/shareit/internal/response"
)

// BookingHandler serves the /bookings routes.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes attaches the booking routes to the router.
func (h *BookingHandler) RegisterRoutes(r *gin.Engine) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.PATCH("/:bookingId", h.Approve)
		bookings.GET("/:bookingId", h.GetByID)
		bookings.GET("", h.ListByBooker)
		bookings.GET("/owner", h.ListByOwner)
	}
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	b, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, b)
}

// Approve handles PATCH /bookings/:bookingId?approved={true|false}.
func (h *BookingHandler) Approve(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		response.Error(c, err)
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.Error(c, domain.NewValidationError("approved must be true or false"))
		return
	}
	b, err := h.service.Approve(c.Request.Context(), bookingID, userID, approved)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, b)
}

// GetByID handles GET /bookings/:bookingId.
func (h *BookingHandler) GetByID(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		response.Error(c, err)
		return
	}
	b, err := h.service.GetByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, b)
}

// ListByBooker handles GET /bookings.
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	from, size, err := pageQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	bookings, err := h.service.ListByBooker(c.Request.Context(), userID, c.DefaultQuery("state", "ALL"), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, bookings)
}

// ListByOwner handles GET /bookings/owner.
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	from, size, err := pageQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	bookings, err := h.service.ListByOwner(c.Request.Context(), userID, c.DefaultQuery("state", "ALL"), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, bookings)
}

func pageQuery(c *gin.Context) (int, int, error) {
	from, err := intQuery(c, "from", "0")
	if err != nil {
		return 0, 0, err
	}
	size, err := intQuery(c, "size", "5")
	if err != nil {
		return 0, 0, err
	}
	return from, size, nil
}
