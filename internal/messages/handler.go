package messages

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/shared/server/middleware"
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

// RegisterRoutes attaches message routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/messages", h.thread)
	rg.POST("/messages", h.send)
}

type messageResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Sender    string    `json:"sender"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func toResponse(m Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Sender:    m.Sender,
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
}

func (h *Handler) thread(c *gin.Context) {
	clientID := c.Query("clientId")
	if clientID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "clientId is required", nil)
		return
	}
	msgs, err := h.Svc.Thread(c.Request.Context(), clientID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list messages", nil)
		return
	}
	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toResponse(m))
	}
	respond.OK(c, out)
}

type sendMessageBody struct {
	ClientID string `json:"clientId"`
	Content  string `json:"content"`
}

func (h *Handler) send(c *gin.Context) {
	var body sendMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	msg, err := h.Svc.Send(
		c.Request.Context(),
		body.ClientID,
		middleware.ActorNameFromContext(c),
		middleware.ActorRoleFromContext(c),
		body.Content,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "clientId and content are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to send message", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(msg))
}
