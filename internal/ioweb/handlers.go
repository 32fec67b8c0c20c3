package ioweb

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tirthatlas/tirthdb/pkg/search"
)

const emptyQueryMsg = "Provide a text query (q, place, sect, deity, " +
	"instanceOf) or a location (latitude and longitude) to search."

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	p, err := parseParams(r.URL.Query())
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	// An empty request is answered with guidance, not an error.
	if p.Mode() == search.ModeEmpty {
		writeEnvelope(w, http.StatusOK, emptyQueryMsg, nil, p)
		return
	}

	timeout := time.Duration(s.cfg.Search.QueryTimeout) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	recs, err := s.searcher.Search(ctx, p)
	if err != nil {
		// Details stay server-side; the client gets a generic
		// failure.
		slog.Error("Search failed", "error", err)
		writeEnvelope(w, http.StatusInternalServerError,
			"Search failed", nil, p)
		return
	}

	msg := fmt.Sprintf("Found %d results", len(recs))
	writeEnvelope(w, http.StatusOK, msg, recs, p)
}
