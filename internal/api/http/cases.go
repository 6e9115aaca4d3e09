package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/juris-sim/jurisim/internal/catalog"
)

// GET /cases
func ListCasesHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cases, err := store.Cases(r.Context())
		if err != nil {
			http.Error(w, "catalog: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if cases == nil {
			cases = []catalog.Case{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(cases)
	}
}

// GET /cases/{caseID}/principles — the rows that count points for one case,
// meant as a study/debug view rather than part of the scoring flow.
func CasePrinciplesHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID := strings.TrimSpace(chi.URLParam(r, "caseID"))
		if caseID == "" {
			http.Error(w, "caseID required", http.StatusBadRequest)
			return
		}
		entries, err := store.EntriesForCase(r.Context(), caseID)
		if err != nil {
			http.Error(w, "catalog: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if entries == nil {
			entries = []catalog.Entry{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entries)
	}
}
