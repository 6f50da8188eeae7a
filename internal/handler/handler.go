// Package handler exposes the HTTP API over the application services.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-app/shareit/internal/domain"
)

// SharerHeader identifies the acting user on every authenticated route.
const SharerHeader = "X-Sharer-User-Id"

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

func intQuery(c *gin.Context, name, fallback string) (int, error) {
	v, err := strconv.Atoi(c.DefaultQuery(name, fallback))
	if err != nil {
		return 0, domain.NewValidationError(name + " must be an integer")
	}
	return v, nil
}
