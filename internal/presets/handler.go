package presets

import (
	"net/http"

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

// RegisterRoutes attaches preset routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/presets", h.list)
	rg.POST("/presets", h.create)
	rg.PATCH("/presets/:id", h.update)
	rg.DELETE("/presets/:id", h.delete)
	rg.POST("/presets/:id/apply", h.apply)
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, h.Svc.List())
}

type createPresetBody struct {
	Name string `json:"name"`
	Bins []Bin  `json:"bins"`
}

func (h *Handler) create(c *gin.Context) {
	var body createPresetBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	preset := h.Svc.Save(body.Name, body.Bins)
	respond.JSON(c, http.StatusCreated, preset)
}

type updatePresetBody struct {
	Name *string `json:"name"`
	Bins *[]Bin  `json:"bins"`
}

func (h *Handler) update(c *gin.Context) {
	var body updatePresetBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.Svc.Update(c.Param("id"), UpdateParams{Name: body.Name, Bins: body.Bins})
	c.Status(http.StatusNoContent)
}

func (h *Handler) delete(c *gin.Context) {
	h.Svc.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type applyPresetBody struct {
	ClientID string `json:"clientId"`
}

func (h *Handler) apply(c *gin.Context) {
	var body applyPresetBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if body.ClientID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "clientId is required", nil)
		return
	}

	requested, err := h.Svc.Apply(c.Request.Context(), c.Param("id"), body.ClientID, middleware.ActorNameFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to apply preset", nil)
		return
	}
	respond.OK(c, gin.H{"requested": requested})
}
