package catalog

import (
	"strings"

	"github.com/juris-sim/jurisim/internal/grading"
)

// maxCarriedDescription bounds the description copied onto suggested rows.
const maxCarriedDescription = 200

// AutoMap seeds principles for a case that has no catalog rows yet: for every
// entry whose keyword set has at least one normalized-substring hit in the
// description, it emits one suggested row under newCaseID carrying that
// entry's side, principle, article, weight and keywords. Scanning an entry's
// keywords stops at the first hit, so each source entry contributes at most
// one suggestion. Suggestions are transient; callers union them with the
// loaded catalog for a single evaluation and never persist them.
func AutoMap(entries []Entry, description, newCaseID string) []Entry {
	descNorm := grading.Normalize(description)
	if descNorm == "" {
		return nil
	}
	var out []Entry
	for _, e := range entries {
		for _, kw := range e.KeywordSet {
			if kw == "" || !strings.Contains(descNorm, kw) {
				continue
			}
			s := e
			s.CaseID = newCaseID
			s.CaseDescription = truncateRunes(description, maxCarriedDescription)
			s.Keywords = strings.Join(e.KeywordSet, ";")
			s.KeywordSet = append([]string(nil), e.KeywordSet...)
			out = append(out, s)
			break
		}
	}
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
