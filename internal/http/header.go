package http

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	headerRequestID          = "x-request-id"
	headerContentType        = "content-type"
	headerContentDisposition = "content-disposition"

	contentTypeJSON = "application/json"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func setAttachment(w http.ResponseWriter, fileName string) {
	w.Header().Set(headerContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
}
