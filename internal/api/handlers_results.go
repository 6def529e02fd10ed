package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dgallion1/papermeta/internal/export"
	"github.com/dgallion1/papermeta/internal/meta"
	"github.com/dgallion1/papermeta/internal/verify"
	"github.com/go-chi/chi/v5"
)

// handleExtract returns the full assembled metadata for a document.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	docID := r.URL.Query().Get("id")
	if docID == "" {
		jsonError(w, "id query parameter is required", http.StatusBadRequest)
		return
	}
	res, ok := s.orchestrator.Store().Get(docID)
	if !ok {
		jsonError(w, meta.ErrNotFound.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res.Metadata)
}

// handleVerification returns the human-review projection: text sample,
// confidence map and the reduced metadata subset.
func (s *Server) handleVerification(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	res, ok := s.orchestrator.Store().Get(docID)
	if !ok {
		jsonError(w, meta.ErrNotFound.Error(), http.StatusNotFound)
		return
	}
	record := verify.Build(res.Sample, res.Metadata, res.Confidence)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// handleExport streams the metadata in the requested format as a
// downloadable file.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	docID := r.URL.Query().Get("id")
	if docID == "" {
		jsonError(w, "id query parameter is required", http.StatusBadRequest)
		return
	}
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		if errors.Is(err, meta.ErrUnsupportedFormat) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	res, ok := s.orchestrator.Store().Get(docID)
	if !ok {
		jsonError(w, meta.ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	body, err := export.Render(res.Metadata, format)
	if err != nil {
		jsonError(w, "render export: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.MIMEType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", format.Filename()))
	w.Write(body)
}

// handleStatistics summarizes an extraction result.
func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	res, ok := s.orchestrator.Store().Get(docID)
	if !ok {
		jsonError(w, meta.ErrNotFound.Error(), http.StatusNotFound)
		return
	}
	stats := meta.Summarize(res.Metadata, res.Confidence)
	if stats.Affiliations == nil {
		stats.Affiliations = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// handleDeleteDocument drops a stored extraction result.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if !s.orchestrator.Store().Delete(docID) {
		jsonError(w, meta.ErrNotFound.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}

// handlePipelineStats reports extraction latency percentiles.
func (s *Server) handlePipelineStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"stats":       s.orchestrator.Stats().Snapshot(),
	})
}
