package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	DocumentID    string                 `json:"documentId"`
	Name          string                 `json:"name"`
	Folder        string                 `json:"folder"`
	ClientID      string                 `json:"clientId,omitempty"`
	Frequency     string                 `json:"frequency,omitempty"`
	DueDate       *time.Time             `json:"dueDate,omitempty"`
	NextDue       *time.Time             `json:"nextDue,omitempty"`
	State         string                 `json:"state"`
	CreatedAt     time.Time              `json:"createdAt"`
	Upload        *UploadResponse        `json:"upload,omitempty"`
	Request       *RequestInfoResponse   `json:"request,omitempty"`
	UpdateRequest *UpdateRequestResponse `json:"updateRequest,omitempty"`
}

// UploadResponse describes the uploaded content of a fulfilled document.
type UploadResponse struct {
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	Size       string    `json:"size"`
}

// RequestInfoResponse describes an outstanding request.
type RequestInfoResponse struct {
	RequestedBy string    `json:"requestedBy"`
	RequestedAt time.Time `json:"requestedAt"`
	Description string    `json:"description,omitempty"`
}

// UpdateRequestResponse describes a pending ask for a newer version.
type UpdateRequestResponse struct {
	RequestedBy      string    `json:"requestedBy"`
	RequestedAt      time.Time `json:"requestedAt"`
	Description      string    `json:"description,omitempty"`
	RequestedVersion string    `json:"requestedVersion,omitempty"`
}

// RequestResponse is the view returned by the request endpoints.
type RequestResponse struct {
	ID           string    `json:"id"`
	DocumentName string    `json:"documentName"`
	Description  string    `json:"description,omitempty"`
	RequestedBy  string    `json:"requestedBy"`
	RequestedAt  time.Time `json:"requestedAt"`
	ClientID     string    `json:"clientId,omitempty"`
	Status       string    `json:"status"`
	Frequency    string    `json:"frequency,omitempty"`
}

// GroupResponse is a base-name gallery bucket.
type GroupResponse struct {
	BaseName  string             `json:"baseName"`
	Documents []DocumentResponse `json:"documents"`
}

func toResponse(doc Document) DocumentResponse {
	resp := DocumentResponse{
		DocumentID: doc.ID,
		Name:       doc.Name,
		Folder:     doc.Folder,
		ClientID:   doc.ClientID,
		Frequency:  string(doc.Frequency),
		DueDate:    doc.DueDate,
		CreatedAt:  doc.CreatedAt,
	}
	if due, ok := doc.dueDate(); ok {
		resp.NextDue = &due
	}
	if doc.Fulfilled() {
		resp.State = "fulfilled"
		resp.Upload = &UploadResponse{
			UploadedBy: doc.Upload.UploadedBy,
			UploadedAt: doc.Upload.UploadedAt,
			MimeType:   doc.Upload.MimeType,
			SizeBytes:  doc.Upload.SizeBytes,
			Size:       doc.Upload.SizeLabel,
		}
	} else {
		resp.State = "outstanding"
	}
	if doc.Request != nil {
		resp.Request = &RequestInfoResponse{
			RequestedBy: doc.Request.RequestedBy,
			RequestedAt: doc.Request.RequestedAt,
			Description: doc.Request.Description,
		}
	}
	if doc.UpdateRequest != nil {
		resp.UpdateRequest = &UpdateRequestResponse{
			RequestedBy:      doc.UpdateRequest.RequestedBy,
			RequestedAt:      doc.UpdateRequest.RequestedAt,
			Description:      doc.UpdateRequest.Description,
			RequestedVersion: doc.UpdateRequest.RequestedVersion,
		}
	}
	return resp
}

func toResponses(docs []Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toResponse(doc))
	}
	return out
}

func toRequestResponse(req Request) RequestResponse {
	return RequestResponse{
		ID:           req.ID,
		DocumentName: req.DocumentName,
		Description:  req.Description,
		RequestedBy:  req.RequestedBy,
		RequestedAt:  req.RequestedAt,
		ClientID:     req.ClientID,
		Status:       req.Status,
		Frequency:    string(req.Frequency),
	}
}
