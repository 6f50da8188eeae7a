package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shareit-app/shareit/internal/application"
	"github.com/shareit-app/shareit/internal/response"
)

// UserHandler serves the /users routes.
type UserHandler struct {
	service *application.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *application.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterRoutes attaches the user routes to the router.
func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.GET("", h.GetAll)
		users.GET("/:userId", h.GetByID)
		users.POST("", h.Create)
		users.PATCH("/:userId", h.Update)
		users.DELETE("/:userId", h.Delete)
	}
}

// GetAll handles GET /users.
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}

// GetByID handles GET /users/:userId.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, u)
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req application.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, u)
}

// Update handles PATCH /users/:userId.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := pathID(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req application.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	u, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, u)
}

// Delete handles DELETE /users/:userId.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
