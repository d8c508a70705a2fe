package controllers

import (
	"StarBoard/services"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func respondOK(c *gin.Context, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["ok"] = true
	c.JSON(http.StatusOK, body)
}

// respondError maps service errors to status codes. Only user-facing errors
// carry their message to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotLoggedIn):
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
	case services.IsUserError(err):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "Request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "something went wrong, please try again"})
	}
}

// bindForm binds the request body into form. A body that cannot be parsed is
// answered with 400 and bindForm returns false.
func bindForm(c *gin.Context, form any) bool {
	if err := c.ShouldBind(form); err != nil {
		slog.WarnContext(c.Request.Context(), "Invalid request body", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request"})
		return false
	}
	return true
}

// optionalInt parses a form value; blank or non-numeric input yields nil.
func optionalInt(value string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &n
}

func formBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
