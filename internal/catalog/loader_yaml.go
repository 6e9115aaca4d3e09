package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlEntry struct {
	CaseID          string `yaml:"case_id"`
	CaseTitle       string `yaml:"case_title"`
	CaseDescription string `yaml:"case_description"`
	Side            string `yaml:"side"`
	Principle       string `yaml:"principle"`
	Article         string `yaml:"article"`
	Weight          *int   `yaml:"weight"`
	Keywords        string `yaml:"keywords"`
}

// LoadYAML reads catalog rows from a YAML document holding a list of
// entries. Validation mirrors LoadCSV: case_id, side and principle are
// required, a missing weight defaults to 1 with a warning, a negative weight
// is an error.
func LoadYAML(r io.Reader) ([]Entry, []string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog: %w", err)
	}
	var rows []yamlEntry
	if err := yaml.Unmarshal(raw, &rows); err != nil {
		return nil, nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	var entries []Entry
	var warnings []string
	for i, row := range rows {
		if row.CaseID == "" || row.Side == "" || row.Principle == "" {
			return nil, nil, fmt.Errorf("entry %d: case_id, side and principle are required", i+1)
		}
		weight := 1
		if row.Weight != nil {
			if *row.Weight < 0 {
				return nil, nil, fmt.Errorf("entry %d: negative weight %d", i+1, *row.Weight)
			}
			weight = *row.Weight
		} else {
			warnings = append(warnings, fmt.Sprintf("entry %d: missing weight, defaulting to 1", i+1))
		}
		entries = append(entries, newEntry(rawEntry{
			CaseID:          row.CaseID,
			CaseTitle:       row.CaseTitle,
			CaseDescription: row.CaseDescription,
			Side:            row.Side,
			Principle:       row.Principle,
			Article:         row.Article,
			Weight:          weight,
			Keywords:        row.Keywords,
		}))
	}
	return entries, warnings, nil
}
