package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/juris-sim/jurisim/internal/grading"
)

var requiredColumns = []string{
	"case_id", "case_title", "case_description", "side",
	"principle", "article", "weight", "keywords",
}

// LoadCSV reads catalog rows from a header-driven CSV stream. Missing
// required columns fail the whole load. An empty or unparsable weight
// defaults to 1 and is reported as a warning; a negative weight is a
// validation error.
func LoadCSV(r io.Reader) ([]Entry, []string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, nil, fmt.Errorf("catalog is missing columns: %s", strings.Join(missing, ", "))
	}

	var entries []Entry
	var warnings []string
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read catalog line %d: %w", line+1, err)
		}
		line++
		field := func(name string) string {
			i := col[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		weight, warn, err := parseWeight(field("weight"), line)
		if err != nil {
			return nil, nil, err
		}
		if warn != "" {
			warnings = append(warnings, warn)
		}

		entries = append(entries, newEntry(rawEntry{
			CaseID:          field("case_id"),
			CaseTitle:       field("case_title"),
			CaseDescription: field("case_description"),
			Side:            field("side"),
			Principle:       field("principle"),
			Article:         field("article"),
			Weight:          weight,
			Keywords:        field("keywords"),
		}))
	}
	return entries, warnings, nil
}

// LoadFile loads a catalog from disk, dispatching on the extension
// (.yaml/.yml or CSV otherwise).
func LoadFile(path string) ([]Entry, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return LoadCSV(f)
	}
}

type rawEntry struct {
	CaseID          string
	CaseTitle       string
	CaseDescription string
	Side            string
	Principle       string
	Article         string
	Weight          int
	Keywords        string
}

func newEntry(r rawEntry) Entry {
	return Entry{
		CaseID:          r.CaseID,
		CaseTitle:       r.CaseTitle,
		CaseDescription: r.CaseDescription,
		Side:            grading.Normalize(r.Side),
		Principle:       r.Principle,
		Article:         r.Article,
		Weight:          r.Weight,
		Keywords:        r.Keywords,
		KeywordSet:      grading.ExtractKeywords(r.Keywords, r.Principle, r.Article),
	}
}

func parseWeight(s string, line int) (int, string, error) {
	if s == "" {
		return 1, fmt.Sprintf("line %d: empty weight, defaulting to 1", line), nil
	}
	w, err := strconv.Atoi(s)
	if err != nil {
		return 1, fmt.Sprintf("line %d: unparsable weight %q, defaulting to 1", line, s), nil
	}
	if w < 0 {
		return 0, "", fmt.Errorf("line %d: negative weight %d", line, w)
	}
	return w, "", nil
}
