package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/juris-sim/jurisim/internal/catalog"
	"github.com/juris-sim/jurisim/internal/grading"
	"github.com/juris-sim/jurisim/internal/report"
)

type evaluateReq struct {
	CaseID string `json:"case_id"`
	Side   string `json:"side"`
	Text   string `json:"text"`
	// ExtraRows lets the caller union transient rows (auto-mapped
	// suggestions) with the stored catalog for this one call. They are
	// never persisted.
	ExtraRows []catalog.Entry `json:"extra_rows,omitempty"`
}

// POST /evaluate
func EvaluateHandler(store catalog.Store, ev *grading.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, rows, ok := decodeEvaluation(w, r, store)
		if !ok {
			return
		}
		res := ev.Evaluate(req.CaseID, req.Side, req.Text, rows)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	}
}

type autoMapReq struct {
	CaseID      string `json:"case_id"`
	Description string `json:"description"`
}

// POST /cases/automap
func AutoMapHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req autoMapReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.CaseID == "" {
			http.Error(w, "case_id required", http.StatusBadRequest)
			return
		}
		entries, err := store.Entries(r.Context())
		if err != nil {
			http.Error(w, "catalog: "+err.Error(), http.StatusInternalServerError)
			return
		}
		suggestions := catalog.AutoMap(entries, req.Description, req.CaseID)
		if suggestions == nil {
			suggestions = []catalog.Entry{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"suggestions": suggestions})
	}
}

type reportReq struct {
	evaluateReq
	CaseTitle string `json:"case_title,omitempty"`
}

// POST /report — evaluates and streams the result as a CSV attachment.
func ReportHandler(store catalog.Store, ev *grading.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reportReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.CaseID == "" || req.Side == "" {
			http.Error(w, "case_id and side required", http.StatusBadRequest)
			return
		}
		if err := validateExtras(req.ExtraRows); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rows, title, err := caseRows(r, store, req.evaluateReq)
		if err != nil {
			http.Error(w, "catalog: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if req.CaseTitle != "" {
			title = req.CaseTitle
		}
		res := ev.Evaluate(req.CaseID, req.Side, req.Text, rows)
		records := report.Build(res, req.CaseID, title, grading.Normalize(req.Side), time.Now())

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename(req.CaseID, grading.Normalize(req.Side))+`"`)
		if err := report.WriteCSV(w, records); err != nil {
			http.Error(w, "write csv: "+err.Error(), http.StatusInternalServerError)
		}
	}
}

func decodeEvaluation(w http.ResponseWriter, r *http.Request, store catalog.Store) (evaluateReq, []grading.Row, bool) {
	var req evaluateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return req, nil, false
	}
	if req.CaseID == "" || req.Side == "" {
		http.Error(w, "case_id and side required", http.StatusBadRequest)
		return req, nil, false
	}
	if err := validateExtras(req.ExtraRows); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return req, nil, false
	}
	rows, _, err := caseRows(r, store, req)
	if err != nil {
		http.Error(w, "catalog: "+err.Error(), http.StatusInternalServerError)
		return req, nil, false
	}
	return req, rows, true
}

func validateExtras(extras []catalog.Entry) error {
	for i, e := range extras {
		if e.Weight < 0 {
			return fmt.Errorf("extra_rows[%d]: negative weight %d", i, e.Weight)
		}
	}
	return nil
}

// caseRows loads the case's stored entries, unions any transient extra rows
// and returns the grading view plus the case title for display.
func caseRows(r *http.Request, store catalog.Store, req evaluateReq) ([]grading.Row, string, error) {
	entries, err := store.EntriesForCase(r.Context(), req.CaseID)
	if err != nil {
		return nil, "", err
	}
	title := ""
	if len(entries) > 0 {
		title = entries[0].CaseTitle
	}
	rows := catalog.GradingRows(entries)
	for _, extra := range req.ExtraRows {
		// re-derive on the server: don't trust client-side normalization
		rows = append(rows, grading.Row{
			CaseID:    extra.CaseID,
			Side:      grading.Normalize(extra.Side),
			Principle: extra.Principle,
			Article:   extra.Article,
			Weight:    extra.Weight,
			Keywords:  grading.ExtractKeywords(extra.Keywords, extra.Principle, extra.Article),
		})
	}
	return rows, title, nil
}
