package ioweb

import (
	"log/slog"
	"net/http"

	"github.com/gnames/gnfmt"

	"github.com/tirthatlas/tirthdb/pkg/search"
	"github.com/tirthatlas/tirthdb/pkg/wiki"
)

// envelope is the response shape of /api/search. Data is always
// present, an empty list rather than null.
type envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []wiki.Record  `json:"data"`
	Query   *search.Params `json:"query,omitempty"`
}

var enc = gnfmt.GNjson{}

func writeJSON(w http.ResponseWriter, status int, body any) {
	doc, err := enc.Encode(body)
	if err != nil {
		slog.Error("Cannot encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(doc)
}

func writeEnvelope(
	w http.ResponseWriter,
	status int,
	msg string,
	data []wiki.Record,
	query *search.Params,
) {
	if data == nil {
		data = []wiki.Record{}
	}
	writeJSON(w, status, envelope{
		Success: status < http.StatusBadRequest,
		Message: msg,
		Data:    data,
		Query:   query,
	})
}

// writeError emits the bare error shape used outside the search
// envelope (unknown routes, panics).
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found")
}
