package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	actorNameKey = "actorName"
	actorRoleKey = "actorRole"

	// RoleAdvisor and RoleClient are the two portal roles.
	RoleAdvisor = "advisor"
	RoleClient  = "client"
)

// Identity reads the acting user's name and role from request headers and
// stores them in context. There is no authentication here; the headers only
// label provenance on uploads, requests and messages.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.GetHeader("X-Actor-Name"))
		if name == "" {
			name = "Unknown"
		}
		role := normalizeRole(c.GetHeader("X-Actor-Role"))

		c.Set(actorNameKey, name)
		c.Set(actorRoleKey, role)
		c.Next()
	}
}

// ActorNameFromContext fetches the actor name set by the Identity middleware.
func ActorNameFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(actorNameKey)
	if name, ok := val.(string); ok {
		return name
	}
	return ""
}

// ActorRoleFromContext fetches the actor role set by the Identity middleware.
func ActorRoleFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(actorRoleKey)
	if role, ok := val.(string); ok {
		return role
	}
	return ""
}

func normalizeRole(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case RoleAdvisor:
		return RoleAdvisor
	default:
		return RoleClient
	}
}
