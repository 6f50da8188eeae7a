package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shareit-app/shareit/internal/application"
	"github.com/shareit-app/shareit/internal/response"
)

// ItemHandler serves the /items routes.
type ItemHandler struct {
	service *application.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *application.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes attaches the item routes to the router.
func (h *ItemHandler) RegisterRoutes(r *gin.Engine) {
	items := r.Group("/items")
	{
		items.POST("", h.Create)
		items.PATCH("/:itemId", h.Update)
		items.GET("/:itemId", h.GetByID)
		items.GET("", h.ListByOwner)
		items.GET("/search", h.Search)
		items.DELETE("/:itemId", h.Delete)
		items.POST("/:itemId/comment", h.AddComment)
	}
}

// Create handles POST /items.
func (h *ItemHandler) Create(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req application.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	itm, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, itm)
}

// Update handles PATCH /items/:itemId.
func (h *ItemHandler) Update(c *gin.Context) {
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
	var req application.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	itm, err := h.service.Update(c.Request.Context(), userID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, itm)
}

// GetByID handles GET /items/:itemId.
func (h *ItemHandler) GetByID(c *gin.Context) {
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
	itm, err := h.service.GetByID(c.Request.Context(), userID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, itm)
}

// ListByOwner handles GET /items.
func (h *ItemHandler) ListByOwner(c *gin.Context) {
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
	size, err := intQuery(c, "size", "5")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.service.ListByOwner(c.Request.Context(), userID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Search handles GET /items/search.
func (h *ItemHandler) Search(c *gin.Context) {
	if _, err := currentUserID(c); err != nil {
		response.Error(c, err)
		return
	}
	from, err := intQuery(c, "from", "0")
	if err != nil {
		response.Error(c, err)
		return
	}
	size, err := intQuery(c, "size", "5")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.service.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Delete handles DELETE /items/:itemId.
func (h *ItemHandler) Delete(c *gin.Context) {
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
	if err := h.service.Delete(c.Request.Context(), userID, itemID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddComment handles POST /items/:itemId/comment.
func (h *ItemHandler) AddComment(c *gin.Context) {
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
	var req application.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	cmt, err := h.service.AddComment(c.Request.Context(), userID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cmt)
}
