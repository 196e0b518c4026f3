package activity

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/shared/server/respond"
)

// Handler exposes the activity feed.
type Handler struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches activity routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/activity", h.list)
}

type entryResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Actor       string    `json:"actor"`
	Timestamp   time.Time `json:"timestamp"`
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}

	entries := h.Store.List(limit)
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResponse{
			ID:          e.ID,
			Kind:        e.Kind,
			Description: e.Description,
			Actor:       e.Actor,
			Timestamp:   e.Timestamp,
		})
	}
	respond.OK(c, out)
}
