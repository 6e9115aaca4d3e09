package http

import (
	"encoding/json"
	"net/http"

	"github.com/juris-sim/jurisim/internal/catalog"
)

// POST /catalog — replace the catalog with an uploaded CSV body.
// Teacher-only; load errors reject the whole upload so a broken catalog
// never goes live.
func UploadCatalogHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, warnings, err := catalog.LoadCSV(r.Body)
		if err != nil {
			http.Error(w, "load catalog: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.ReplaceAll(r.Context(), entries); err != nil {
			http.Error(w, "store catalog: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if warnings == nil {
			warnings = []string{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"entries":  len(entries),
			"warnings": warnings,
		})
	}
}
