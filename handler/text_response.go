package handler

import (
	"io"
	"net/http"
)

type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := io.WriteString(w, t.body)
	return err
}

// Text writes body as text/plain with the given status.
//
//	return handler.Text(http.StatusServiceUnavailable, "NOT_READY")
func Text(status int, body string) Response {
	return textResponse{status: status, body: body}
}
