package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/shareit-app/shareit/internal/domain"
	"github.com/shareit-app/shareit/internal/domain/booking"
	"github.com/shareit-app/shareit/internal/response"
)

type createUserBody struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type updateUserBody struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

type createItemBody struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

type commentBody struct {
	Text string `json:"text" validate:"required"`
}

type createRequestBody struct {
	Description string `json:"description" validate:"required"`
}

type createBookingBody struct {
	ItemID int64      `json:"itemId" validate:"required,gt=0"`
	Start  *time.Time `json:"start" validate:"required"`
	End    *time.Time `json:"end" validate:"required"`
}

// Handler validates incoming requests and forwards the valid ones.
type Handler struct {
	client   *Client
	validate *validator.Validate
}

// NewHandler creates a new gateway Handler.
func NewHandler(client *Client) *Handler {
	return &Handler{client: client, validate: validator.New()}
}

// RegisterRoutes attaches every gateway route to the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.GET("", h.forwardPlain(http.MethodGet, "/users"))
		users.GET("/:userId", h.forwardWithID(http.MethodGet, "/users", "userId"))
		users.POST("", h.CreateUser)
		users.PATCH("/:userId", h.UpdateUser)
		users.DELETE("/:userId", h.forwardWithID(http.MethodDelete, "/users", "userId"))
	}
	items := r.Group("/items")
	{
		items.POST("", h.CreateItem)
		items.PATCH("/:itemId", h.UpdateItem)
		items.GET("/:itemId", h.GetItem)
		items.GET("", h.ListItems)
		items.GET("/search", h.SearchItems)
		items.DELETE("/:itemId", h.DeleteItem)
		items.POST("/:itemId/comment", h.AddComment)
	}
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.PATCH("/:bookingId", h.ApproveBooking)
		bookings.GET("/:bookingId", h.GetBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/owner", h.ListOwnerBookings)
	}
	requests := r.Group("/requests")
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListOwnRequests)
		requests.GET("/all", h.ListOtherRequests)
		requests.GET("/:requestId", h.GetRequest)
	}
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(c *gin.Context) {
	raw, body, ok := h.decode(c, &createUserBody{})
	if !ok {
		return
	}
	if msg := h.check(body); msg != "" {
		response.BadRequest(c, msg)
		return
	}
	h.forward(c, http.MethodPost, "/users", 0, nil, raw)
}

// UpdateUser handles PATCH /users/:userId.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := pathID(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	raw, body, ok := h.decode(c, &updateUserBody{})
	if !ok {
		return
	}
	if msg := h.check(body); msg != "" {
		response.BadRequest(c, msg)
		return
	}
	h.forward(c, http.MethodPatch, "/users/"+strconv.FormatInt(id, 10), 0, nil, raw)
}

// CreateItem handles POST /items.
func (h *Handler) CreateItem(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	raw, body, ok := h.decode(c, &createItemBody{})
	if !ok {
		return
	}
	if msg := h.check(body); msg != "" {
		response.BadRequest(c, msg)
		return
	}
	h.forward(c, http.MethodPost, "/items", userID, nil, raw)
}

// UpdateItem handles PATCH /items/:itemId. Patch bodies are forwarded
// as received, the server decides which fields apply.
func (h *Handler) UpdateItem(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}
	raw, ok := h.readJSON(c)
	if !ok {
		return
	}
	h.forward(c, http.MethodPatch, "/items/"+strconv.FormatInt(itemID, 10), userID, nil, raw)
}

// GetItem handles GET /items/:itemId.
func (h *Handler) GetItem(c *gin.Context) {
	h.forwardIdentified(c, http.MethodGet, "/items", "itemId", nil)
}

// ListItems handles GET /items.
func (h *Handler) ListItems(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	query, err := pageQuery(c, "5")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.forward(c, http.MethodGet, "/items", userID, query, nil)
}

// SearchItems handles GET /items/search.
func (h *Handler) SearchItems(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	query, err := pageQuery(c, "5")
	if err != nil {
		response.Error(c, err)
		return
	}
	query.Set("text", c.Query("text"))
	h.forward(c, http.MethodGet, "/items/search", userID, query, nil)
}

// DeleteItem handles DELETE /items/:itemId.
func (h *Handler) DeleteItem(c *gin.Context) {
	h.forwardIdentified(c, http.MethodDelete, "/items", "itemId", nil)
}

// AddComment handles POST /items/:itemId/comment.
func (h *Handler) AddComment(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}
	raw, body, ok := h.decode(c, &commentBody{})
	if !ok {
		return
	}
	if msg := h.check(body); msg != "" {
		response.BadRequest(c, msg)
		return
	}
	h.forward(c, http.MethodPost, "/items/"+strconv.FormatInt(itemID, 10)+"/comment", userID, nil, raw)
}

// CreateBooking handles POST /bookings.
func (h *Handler) CreateBooking(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	raw, body, ok := h.decode(c, &createBookingBody{})
	if !ok {
		return
	}
	req := body.(*createBookingBody)
	if msg := h.check(req); msg != "" {
		response.BadRequest(c, msg)
		return
	}
	now := time.Now()
	if req.Start.Before(now) {
		response.BadRequest(c, "start date must not be in the past")
		return
	}
	if !req.End.After(*req.Start) {
		response.BadRequest(c, "end date must be after start date")
		return
	}
	h.forward(c, http.MethodPost, "/bookings", userID, nil, raw)
}

// ApproveBooking handles PATCH /bookings/:bookingId.
func (h *Handler) ApproveBooking(c *gin.Context) {
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
		response.BadRequest(c, "approved must be true or false")
		return
	}
	query := url.Values{"approved": []string{strconv.FormatBool(approved)}}
	h.forward(c, http.MethodPatch, "/bookings/"+strconv.FormatInt(bookingID, 10), userID, query, nil)
}

// GetBooking handles GET /bookings/:bookingId.
func (h *Handler) GetBooking(c *gin.Context) {
	h.forwardIdentified(c, http.MethodGet, "/bookings", "bookingId", nil)
}

// ListBookings handles GET /bookings.
func (h *Handler) ListBookings(c *gin.Context) {
	h.listBookings(c, "/bookings")
}

// ListOwnerBookings handles GET /bookings/owner.
func (h *Handler) ListOwnerBookings(c *gin.Context) {
	h.listBookings(c, "/bookings/owner")
}

func (h *Handler) listBookings(c *gin.Context, path string) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	state := c.DefaultQuery("state", "ALL")
	st, err := booking.ParseState(state)
	if err != nil {
		response.Error(c, err)
		return
	}
	query, err := pageQuery(c, "5")
	if err != nil {
		response.Error(c, err)
		return
	}
	query.Set("state", string(st))
	h.forward(c, http.MethodGet, path, userID, query, nil)
}

// CreateRequest handles POST /requests.
func (h *Handler) CreateRequest(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	raw, body, ok := h.decode(c, &createRequestBody{})
	if !ok {
		return
	}
	if msg := h.check(body); msg != "" {
		response.BadRequest(c, msg)
		return
	}
	h.forward(c, http.MethodPost, "/requests", userID, nil, raw)
}

// ListOwnRequests handles GET /requests.
func (h *Handler) ListOwnRequests(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.forward(c, http.MethodGet, "/requests", userID, nil, nil)
}

// ListOtherRequests handles GET /requests/all.
func (h *Handler) ListOtherRequests(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	query, err := pageQuery(c, "1")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.forward(c, http.MethodGet, "/requests/all", userID, query, nil)
}

// GetRequest handles GET /requests/:requestId.
func (h *Handler) GetRequest(c *gin.Context) {
	h.forwardIdentified(c, http.MethodGet, "/requests", "requestId", nil)
}

// forward relays the server's response verbatim.
func (h *Handler) forward(c *gin.Context, method, path string, userID int64, query url.Values, body any) {
	status, respBody, err := h.client.Do(c.Request.Context(), method, path, userID, query, body)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.ErrorBody{Error: "server unavailable"})
		return
	}
	if len(respBody) == 0 {
		c.Status(status)
		return
	}
	c.Data(status, "application/json; charset=utf-8", respBody)
}

// forwardPlain handles routes without a sharer header or path id.
func (h *Handler) forwardPlain(method, path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.forward(c, method, path, 0, nil, nil)
	}
}

// forwardWithID handles unauthenticated routes keyed by a path id.
func (h *Handler) forwardWithID(method, base, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, param)
		if err != nil {
			response.Error(c, err)
			return
		}
		h.forward(c, method, base+"/"+strconv.FormatInt(id, 10), 0, nil, nil)
	}
}

// forwardIdentified handles sharer-authenticated routes keyed by a path id.
func (h *Handler) forwardIdentified(c *gin.Context, method, base, param string, query url.Values) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := pathID(c, param)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.forward(c, method, base+"/"+strconv.FormatInt(id, 10), userID, query, nil)
}

// decode reads the request body once, keeping the raw bytes for
// forwarding and a typed view for validation.
func (h *Handler) decode(c *gin.Context, out any) (json.RawMessage, any, bool) {
	raw, ok := h.readJSON(c)
	if !ok {
		return nil, nil, false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		response.BadRequest(c, "invalid request body")
		return nil, nil, false
	}
	return raw, out, true
}

func (h *Handler) readJSON(c *gin.Context) (json.RawMessage, bool) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(raw) {
		response.BadRequest(c, "invalid request body")
		return nil, false
	}
	return raw, true
}

// check runs struct validation and renders the first failure as a message.
func (h *Handler) check(body any) string {
	err := h.validate.Struct(body)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "gt":
		return field + " must be positive"
	default:
		return field + " is invalid"
	}
}

func currentUserID(c *gin.Context) (int64, error) {
	raw := c.GetHeader(SharerHeader)
	if raw == "" {
		return 0, domain.NewValidationError("X-Sharer-User-Id header is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("X-Sharer-User-Id header must be an integer")
	}
	return id, nil
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(name + " must be an integer")
	}
	return id, nil
}

// pageQuery validates from and size before forwarding them.
func pageQuery(c *gin.Context, defaultSize string) (url.Values, error) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		return nil, domain.NewValidationError("from must be an integer")
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", defaultSize))
	if err != nil {
		return nil, domain.NewValidationError("size must be an integer")
	}
	if _, err := domain.NewPage(from, size); err != nil {
		return nil, err
	}
	return url.Values{
		"from": []string{strconv.Itoa(from)},
		"size": []string{strconv.Itoa(size)},
	}, nil
}
