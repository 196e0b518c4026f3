package documents

import "time"

// Frequency is how often a requested document recurs. The zero value means
// no recurrence was set.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyOneTime   Frequency = "one-time"
)

// ParseFrequency validates a raw frequency string. Empty input is allowed and
// maps to the zero value.
func ParseFrequency(raw string) (Frequency, error) {
	switch Frequency(raw) {
	case "", FrequencyDaily, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly, FrequencyOneTime:
		return Frequency(raw), nil
	default:
		return "", ErrInvalidInput
	}
}

// Document is the central record of the portal. It is a three-state union:
// an outstanding request (Request set, Upload nil), a fulfilled document
// (Upload set), or a fulfilled document with a pending ask for a newer
// version (Upload and UpdateRequest set). UpdateRequest never appears on an
// outstanding record.
type Document struct {
	ID        string
	Name      string
	Folder    string
	ClientID  string
	Frequency Frequency
	DueDate   *time.Time // explicit override; always wins over Frequency
	CreatedAt time.Time

	Upload        *UploadInfo
	Request       *RequestInfo
	UpdateRequest *UpdateRequestInfo
}

// UploadInfo is present on fulfilled documents only. StorageKey is the
// content reference.
type UploadInfo struct {
	UploadedBy string
	UploadedAt time.Time
	MimeType   string
	SizeBytes  int64
	SizeLabel  string
	StorageKey string
}

// RequestInfo is present on outstanding documents only.
type RequestInfo struct {
	RequestedBy string
	RequestedAt time.Time
	Description string
}

// UpdateRequestInfo records a follow-up ask for a newer version of a
// fulfilled document.
type UpdateRequestInfo struct {
	RequestedBy      string
	RequestedAt      time.Time
	Description      string
	RequestedVersion string
}

// Fulfilled reports whether the document has uploaded content.
func (d Document) Fulfilled() bool {
	return d.Upload != nil
}

// Outstanding reports whether the document is a request with no content yet.
func (d Document) Outstanding() bool {
	return d.Upload == nil && d.Request != nil
}

// AnchorTime is the timestamp due dates and gallery ordering are computed
// from: the upload time for fulfilled documents, the request time otherwise.
func (d Document) AnchorTime() time.Time {
	if d.Upload != nil {
		return d.Upload.UploadedAt
	}
	if d.Request != nil {
		return d.Request.RequestedAt
	}
	return d.CreatedAt
}

// Request is the caller-facing view returned by RequestDocument. It is not
// persisted separately; it mirrors the Document the call created or
// reconciled onto.
type Request struct {
	ID           string
	DocumentName string
	Description  string
	RequestedBy  string
	RequestedAt  time.Time
	ClientID     string
	Status       string
	Frequency    Frequency
}

// StatusPending is the only status RequestDocument produces; fulfillment is
// observed on the Document itself.
const StatusPending = "pending"
