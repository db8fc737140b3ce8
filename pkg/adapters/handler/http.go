package handler

import (
	"io"
	"net"
	"net/http"

	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

type HTTPHandler struct {
	ops    *Operations
	pinger ports.Pinger
}

// NewHTTPHandler wraps ops for net/http. pinger may be nil, in which case
// the health check always reports ok.
func NewHTTPHandler(ops *Operations, pinger ports.Pinger) *HTTPHandler {
	return &HTTPHandler{ops: ops, pinger: pinger}
}

// AddVisitor handles POST /add-visitor. The body is ignored.
func (h *HTTPHandler) AddVisitor(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, h.ops.AddVisitor(r.Context(), SourceAddress(r)))
}

// GetVisitorCount handles GET /get-visitor-count.
func (h *HTTPHandler) GetVisitorCount(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, h.ops.GetVisitorCount(r.Context()))
}

// SendMessage handles POST /send-message. The body is read in full; message
// length is not limited here.
func (h *HTTPHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeResponse(w, failure(sendEmailFailed, err))
		return
	}
	writeResponse(w, h.ops.SendMessage(r.Context(), body))
}

// Health handles GET /healthz.
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.Ping(r.Context()); err != nil {
			writeResponse(w, message(http.StatusServiceUnavailable, err.Error()))
			return
		}
	}
	writeResponse(w, message(http.StatusOK, "ok"))
}

// NotFound answers unknown paths in the same JSON shape.
func (h *HTTPHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, message(http.StatusNotFound, "Not Found"))
}

// SourceAddress is the client host from r.RemoteAddr. Behind a proxy the
// RealIP middleware has already rewritten RemoteAddr.
func SourceAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
