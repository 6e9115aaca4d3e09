// Package report flattens evaluation results into tabular records for
// export. It has no opinion on where the bytes go; handlers stream the CSV
// as a download.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/juris-sim/jurisim/internal/grading"
)

// Record is one flat report row.
type Record struct {
	Timestamp string `json:"timestamp"`
	CaseID    string `json:"case_id"`
	CaseTitle string `json:"case_title"`
	Side      string `json:"side"`
	Status    string `json:"status"` // matched | recommended
	Principle string `json:"principle"`
	Article   string `json:"article"`
	Weight    int    `json:"weight"`
}

// Build flattens the matched and recommended lists of one evaluation.
// Counterarguments stay out of the report; they belong to the other side.
func Build(res grading.Result, caseID, caseTitle, side string, now time.Time) []Record {
	ts := now.Format("2006-01-02T15:04:05")
	out := make([]Record, 0, len(res.Matched)+len(res.Recommended))
	for _, m := range res.Matched {
		out = append(out, Record{
			Timestamp: ts, CaseID: caseID, CaseTitle: caseTitle, Side: side,
			Status: "matched", Principle: m.Principle, Article: m.Article, Weight: m.Weight,
		})
	}
	for _, r := range res.Recommended {
		out = append(out, Record{
			Timestamp: ts, CaseID: caseID, CaseTitle: caseTitle, Side: side,
			Status: "recommended", Principle: r.Principle, Article: r.Article, Weight: r.Weight,
		})
	}
	return out
}

var csvHeader = []string{
	"timestamp", "case_id", "case_title", "side", "status", "principle", "article", "weight",
}

// WriteCSV serializes records with a fixed header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Timestamp, r.CaseID, r.CaseTitle, r.Side, r.Status,
			r.Principle, r.Article, strconv.Itoa(r.Weight),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename builds a unique download name for one report.
func Filename(caseID, side string) string {
	return fmt.Sprintf("relatorio_%s_%s_%s.csv", caseID, side, uuid.NewString()[:8])
}
