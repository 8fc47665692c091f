// Package server exposes the read-only HTTP query surface over ingested
// CWR records. Grounded on internal/server/service.go's ServeMux +
// query-param handler shape, adapted from a ticker lookup to a
// submitter-work-number lookup.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cdacos/allegro/internal/database"
)

// WorkLookupService answers /works/{submitterWorkNum} queries.
type WorkLookupService struct {
	DBManager database.DBManager
}

// NewWorkLookupService builds a WorkLookupService against dbManager.
func NewWorkLookupService(dbManager database.DBManager) *WorkLookupService {
	return &WorkLookupService{DBManager: dbManager}
}

// GetWorkRecords returns every NWR/REV/ISW/EXC record whose submitter
// work number matches the path segment.
func (h *WorkLookupService) GetWorkRecords(w http.ResponseWriter, r *http.Request) {
	workNum := strings.TrimPrefix(r.URL.Path, "/works/")
	if workNum == "" {
		http.Error(w, "submitter work number is required in the URL path /works/{workNum}", http.StatusBadRequest)
		return
	}

	records, err := h.DBManager.FindBySubmitterWorkNum(workNum)
	if err != nil {
		http.Error(w, "failed to retrieve work records", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
}
