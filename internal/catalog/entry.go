package catalog

import "github.com/juris-sim/jurisim/internal/grading"

// Entry is one row of the principle catalog: a weighted legal principle
// attached to one side of one case. Side is stored normalized; KeywordSet is
// derived once at load time and immutable afterwards.
type Entry struct {
	CaseID          string   `json:"case_id"`
	CaseTitle       string   `json:"case_title"`
	CaseDescription string   `json:"case_description"`
	Side            string   `json:"side"`
	Principle       string   `json:"principle"`
	Article         string   `json:"article"`
	Weight          int      `json:"weight"`
	Keywords        string   `json:"keywords"` // raw ';'-delimited field
	KeywordSet      []string `json:"keyword_set"`
}

// Case is the case-level view of the catalog (or of an external proposal).
type Case struct {
	CaseID          string `json:"case_id"`
	CaseTitle       string `json:"case_title"`
	CaseDescription string `json:"case_description"`
	SourceURL       string `json:"source_url,omitempty"`
}

// GradingRow converts an entry to the minimal view the evaluator needs.
func (e Entry) GradingRow() grading.Row {
	return grading.Row{
		CaseID:    e.CaseID,
		Side:      e.Side,
		Principle: e.Principle,
		Article:   e.Article,
		Weight:    e.Weight,
		Keywords:  e.KeywordSet,
	}
}

// GradingRows converts a batch of entries, preserving order.
func GradingRows(entries []Entry) []grading.Row {
	rows := make([]grading.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.GradingRow())
	}
	return rows
}

// Cases lists the distinct cases of a batch in first-occurrence order.
func Cases(entries []Entry) []Case {
	seen := map[string]struct{}{}
	out := make([]Case, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.CaseID]; ok {
			continue
		}
		seen[e.CaseID] = struct{}{}
		out = append(out, Case{
			CaseID:          e.CaseID,
			CaseTitle:       e.CaseTitle,
			CaseDescription: e.CaseDescription,
		})
	}
	return out
}
