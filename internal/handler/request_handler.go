package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shareit-app/shareit/internal/application"
	"github.com/shareit-app/shareit/internal/response"
)

// RequestHandler serves the /requests routes.
type RequestHandler struct {
	service *application.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *application.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes attaches the item request routes to the router.
func (h *RequestHandler) RegisterRoutes(r *gin.Engine) {
	requests := r.Group("/requests")
	{
		requests.POST("", h.Create)
		requests.GET("", h.ListOwn)
		requests.GET("/all", h.ListOthers)
		requests.GET("/:requestId", h.GetByID)
	}
}

// Create handles POST /requests.
func (h *RequestHandler) Create(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req application.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	r, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, r)
}

// ListOwn handles GET /requests.
func (h *RequestHandler) ListOwn(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	requests, err := h.service.ListOwn(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, requests)
}

// ListOthers handles GET /requests/all.
func (h *RequestHandler) ListOthers(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	from, err := intQuery(c, "from", "0")
	if err != nil {
		response.Error(c, err)
		return
	}
	size, err := intQuery(c, "size", "1")
	if err != nil {
		response.Error(c, err)
		return
	}
	requests, err := h.service.ListOthers(c.Request.Context(), userID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, requests)
}

// GetByID handles GET /requests/:requestId.
func (h *RequestHandler) GetByID(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	requestID, err := pathID(c, "requestId")
	if err != nil {
		response.Error(c, err)
		return
	}
	r, err := h.service.GetByID(c.Request.Context(), userID, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, r)
}
