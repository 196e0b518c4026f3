package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	documentRequestsTotal  atomic.Uint64
	updateRequestsTotal    atomic.Uint64
	uploadsReconciledTotal atomic.Uint64
	uploadsNewTotal        atomic.Uint64
	presetsAppliedTotal    atomic.Uint64

	uploadSizeBytes = newHistogram([]float64{1 << 10, 16 << 10, 128 << 10, 1 << 20, 4 << 20, 10 << 20})
)

// IncDocumentRequested increments the new-request counter.
func IncDocumentRequested() {
	documentRequestsTotal.Add(1)
}

// IncUpdateRequested increments the update-request counter.
func IncUpdateRequested() {
	updateRequestsTotal.Add(1)
}

// IncUploadReconciled increments the counter for uploads fulfilling a request.
func IncUploadReconciled() {
	uploadsReconciledTotal.Add(1)
}

// IncUploadNew increments the counter for uploads with no matching request.
func IncUploadNew() {
	uploadsNewTotal.Add(1)
}

// IncPresetApplied increments the preset-apply counter.
func IncPresetApplied() {
	presetsAppliedTotal.Add(1)
}

// ObserveUploadSize records an uploaded file size in bytes.
func ObserveUploadSize(value float64) {
	if value < 0 {
		value = 0
	}
	uploadSizeBytes.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "document_requests_total", "Total new document requests created", documentRequestsTotal.Load())
	writeCounter(&buf, "update_requests_total", "Total update requests recorded", updateRequestsTotal.Load())
	writeCounter(&buf, "uploads_reconciled_total", "Total uploads that fulfilled an outstanding request", uploadsReconciledTotal.Load())
	writeCounter(&buf, "uploads_new_total", "Total uploads with no matching request", uploadsNewTotal.Load())
	writeCounter(&buf, "presets_applied_total", "Total preset applications", presetsAppliedTotal.Load())
	writeHistogram(&buf, "upload_size_bytes", "Uploaded file size in bytes", uploadSizeBytes.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
