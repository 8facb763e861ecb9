package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/shared/server/respond"
)

const (
	userIDKey      = "userId"
	workspaceIDKey = "workspaceId"
)

// Auth enforces the gateway-issued API key and stores the forwarded identity in
// context. Session and user management live in the gateway in front of this
// service; by the time a request arrives here, identity is a pair of headers.
func Auth(env string, apiKeys []string) gin.HandlerFunc {
	keys := make([]string, 0, len(apiKeys))
	for _, k := range apiKeys {
		if trimmed := strings.TrimSpace(k); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		if len(keys) > 0 {
			provided := strings.TrimSpace(c.GetHeader("X-Api-Key"))
			if provided == "" {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing API key", nil)
				return
			}
			if !keyMatches(provided, keys) {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "invalid API key", nil)
				return
			}
		} else if !isDevLike(env) {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "API keys not configured", nil)
			return
		}

		userID := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if userID == "" {
			userID = "guest"
		}
		workspaceID := strings.TrimSpace(c.GetHeader("X-Workspace-Id"))
		if workspaceID == "" {
			if !isDevLike(env) {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing workspace", nil)
				return
			}
			workspaceID = "default"
		}

		c.Set(userIDKey, userID)
		c.Set(workspaceIDKey, workspaceID)
		c.Next()
	}
}

func keyMatches(provided string, keys []string) bool {
	for _, k := range keys {
		if subtle.ConstantTimeCompare([]byte(provided), []byte(k)) == 1 {
			return true
		}
	}
	return false
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// WorkspaceIDFromContext fetches the workspace ID set by the auth middleware.
func WorkspaceIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(workspaceIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
