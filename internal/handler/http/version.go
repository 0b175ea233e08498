package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/doc-query/internal/logger"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, h.buildInfo.String()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.version").Msg("writing version")
	}
}
