package clients

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches client routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/clients", h.list)
	rg.GET("/clients/:id/summary", h.summary)
}

type clientResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PortfolioValue string    `json:"portfolioValue"`
	JoinedAt       time.Time `json:"joinedAt"`
}

func toResponse(c Client) clientResponse {
	return clientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		PortfolioValue: c.PortfolioValue.StringFixed(2),
		JoinedAt:       c.JoinedAt,
	}
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list clients", nil)
		return
	}
	out := make([]clientResponse, 0, len(list))
	for _, cl := range list {
		out = append(out, toResponse(cl))
	}
	respond.OK(c, out)
}

func (h *Handler) summary(c *gin.Context) {
	c.Set("clientId", c.Param("id"))

	summary, err := h.Svc.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "client not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute summary", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"client":          toResponse(summary.Client),
		"documentsCount":  summary.DocumentsCount,
		"pendingRequests": summary.PendingRequests,
		"overdue":         summary.Overdue,
		"dueSoon":         summary.DueSoon,
	})
}
