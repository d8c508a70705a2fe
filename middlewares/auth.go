package middlewares

import (
	"StarBoard/models"
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const parentKey = "parent"

// SessionResolver maps a session token to its parent; nil means no valid session.
type SessionResolver interface {
	CurrentParent(ctx context.Context, token string) (*models.Parent, error)
}

// LoadParent resolves the session cookie and stores the parent in the context.
// A stale cookie is cleared. Requests continue either way.
func LoadParent(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		parent, err := resolver.CurrentParent(c.Request.Context(), token)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "Session lookup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
			c.Abort()
			return
		}
		if parent == nil {
			ClearSessionCookie(c)
		} else {
			c.Set(parentKey, parent)
		}
		c.Next()
	}
}

// RequireParent rejects requests without a logged in parent.
func RequireParent() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentParent(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not logged in"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentParent returns the parent set by LoadParent, or nil.
func CurrentParent(c *gin.Context) *models.Parent {
	v, ok := c.Get(parentKey)
	if !ok {
		return nil
	}
	parent, _ := v.(*models.Parent)
	return parent
}

// SetParent stores the parent in the context. Used by handlers that log in.
func SetParent(c *gin.Context, parent *models.Parent) {
	c.Set(parentKey, parent)
}
