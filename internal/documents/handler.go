package documents

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/shared/server/middleware"
	"portal-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.GET("/documents", h.list)
	rg.GET("/documents/groups", h.groups)
	rg.GET("/documents/overview", h.overview)
	rg.POST("/documents/requests", h.request)
	rg.POST("/documents/:id/update-request", h.requestUpdate)
	rg.PATCH("/documents/:id/frequency", h.updateFrequency)
	rg.PATCH("/documents/:id/due-date", h.updateDueDate)
	rg.DELETE("/documents/:id", h.delete)
	rg.GET("/documents/:id/content", h.content)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	doc, fulfilled, err := h.Svc.Upload(c.Request.Context(), UploadParams{
		FileName:   fileHeader.Filename,
		ClientID:   c.PostForm("clientId"),
		Folder:     c.PostForm("folder"),
		UploadedBy: middleware.ActorNameFromContext(c),
		Body:       file,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload document", nil)
		}
		return
	}
	c.Set("documentId", doc.ID)

	respond.JSON(c, http.StatusCreated, gin.H{
		"document":  toResponse(doc),
		"fulfilled": fulfilled,
	})
}

func (h *Handler) list(c *gin.Context) {
	docs, err := h.Svc.List(c.Request.Context(), Filter{ClientID: c.Query("clientId")}, c.Query("state"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "state must be outstanding or fulfilled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		}
		return
	}
	respond.OK(c, toResponses(docs))
}

func (h *Handler) groups(c *gin.Context) {
	groups, err := h.Svc.Groups(c.Request.Context(), Filter{ClientID: c.Query("clientId")})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to group documents", nil)
		return
	}
	resp := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, GroupResponse{BaseName: g.BaseName, Documents: toResponses(g.Documents)})
	}
	respond.OK(c, resp)
}

func (h *Handler) overview(c *gin.Context) {
	ov, err := h.Svc.Overview(c.Request.Context(), Filter{ClientID: c.Query("clientId")})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute overview", nil)
		return
	}

	type dueEntry struct {
		Document DocumentResponse `json:"document"`
		Due      time.Time        `json:"due"`
	}
	toDueEntries := func(in []DueDocument) []dueEntry {
		out := make([]dueEntry, 0, len(in))
		for _, d := range in {
			out = append(out, dueEntry{Document: toResponse(d.Document), Due: d.Due})
		}
		return out
	}
	type calendarEntry struct {
		DocumentID string    `json:"documentId"`
		Date       time.Time `json:"date"`
		Title      string    `json:"title"`
	}
	calendar := make([]calendarEntry, 0, len(ov.Calendar))
	for _, e := range ov.Calendar {
		calendar = append(calendar, calendarEntry{DocumentID: e.DocumentID, Date: e.Date, Title: e.Title})
	}

	respond.OK(c, gin.H{
		"overdue":         toDueEntries(ov.Overdue),
		"dueSoon":         toDueEntries(ov.DueSoon),
		"pendingRequests": toResponses(ov.PendingRequests),
		"upcoming":        toDueEntries(ov.Upcoming),
		"calendar":        calendar,
	})
}

type requestDocumentBody struct {
	DocumentName string `json:"documentName"`
	Description  string `json:"description"`
	ClientID     string `json:"clientId"`
	Frequency    string `json:"frequency"`
}

func (h *Handler) request(c *gin.Context) {
	var body requestDocumentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	freq, err := ParseFrequency(body.Frequency)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid frequency", nil)
		return
	}

	req, err := h.Svc.RequestDocument(c.Request.Context(), RequestDocumentParams{
		DocumentName: body.DocumentName,
		Description:  body.Description,
		RequestedBy:  middleware.ActorNameFromContext(c),
		ClientID:     body.ClientID,
		Frequency:    freq,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "documentName is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to request document", nil)
		}
		return
	}
	c.Set("documentId", req.ID)

	respond.JSON(c, http.StatusCreated, toRequestResponse(req))
}

type updateRequestBody struct {
	Description      string `json:"description"`
	RequestedVersion string `json:"requestedVersion"`
}

func (h *Handler) requestUpdate(c *gin.Context) {
	var body updateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	err := h.Svc.RequestUpdate(c.Request.Context(), RequestUpdateParams{
		DocumentID:       c.Param("id"),
		RequestedBy:      middleware.ActorNameFromContext(c),
		Description:      body.Description,
		RequestedVersion: body.RequestedVersion,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "update requests require a fulfilled document", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to request update", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

type updateFrequencyBody struct {
	Frequency string `json:"frequency"`
}

func (h *Handler) updateFrequency(c *gin.Context) {
	var body updateFrequencyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	freq, err := ParseFrequency(body.Frequency)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid frequency", nil)
		return
	}

	if err := h.Svc.UpdateFrequency(c.Request.Context(), c.Param("id"), freq); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update frequency", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

type updateDueDateBody struct {
	DueDate *time.Time `json:"dueDate"`
}

func (h *Handler) updateDueDate(c *gin.Context) {
	var body updateDueDateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.UpdateDueDate(c.Request.Context(), c.Param("id"), body.DueDate); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update due date", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.Svc.DeleteRequested(c.Request.Context(), c.Param("id")); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete document", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) content(c *gin.Context) {
	rc, doc, err := h.Svc.OpenContent(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open document", nil)
		}
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+doc.Name+`"`)
	c.Header("Content-Type", doc.Upload.MimeType)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		// Headers already sent; nothing useful to return.
		return
	}
}
