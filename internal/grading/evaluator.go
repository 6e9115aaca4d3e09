package grading

import "strings"

// Row is the minimal view of a catalog entry needed for evaluation.
// Keep this in sync with whatever fields your catalog store uses.
type Row struct {
	CaseID    string
	Side      string // normalized side label
	Principle string
	Article   string
	Weight    int
	Keywords  []string // normalized keyword set, insertion order
}

// MatchedArgument is a catalog row the student's text covered.
type MatchedArgument struct {
	Principle     string `json:"principle"`
	Article       string `json:"article"`
	Weight        int    `json:"weight"`
	KeywordSample string `json:"matched_keyword_sample,omitempty"`
}

// SuggestedArgument is a catalog row surfaced for study: a missed principle
// on the student's own side, or an opposing-side counterargument.
type SuggestedArgument struct {
	Principle string   `json:"principle"`
	Article   string   `json:"article"`
	Weight    int      `json:"weight"`
	Keywords  []string `json:"keywords"`
}

// Result aggregates one evaluation pass over a case.
type Result struct {
	Score            int                 `json:"score"`
	Matched          []MatchedArgument   `json:"matched"`
	Recommended      []SuggestedArgument `json:"recommended"`
	Counterarguments []SuggestedArgument `json:"counterarguments"`
}

// Evaluator options

type Option func(*config)

type config struct {
	Threshold float64 // similarity cutoff for fuzzy keyword matching
}

func WithThreshold(t float64) Option { return func(c *config) { c.Threshold = t } }

// Evaluator scores free-text argumentation against a principle catalog.
// It holds no mutable state; a single Evaluator is safe for concurrent use.
type Evaluator struct {
	threshold float64
}

func NewEvaluator(opts ...Option) *Evaluator {
	cfg := &config{Threshold: DefaultThreshold}
	for _, o := range opts {
		o(cfg)
	}
	return &Evaluator{threshold: cfg.Threshold}
}

func (e *Evaluator) Threshold() float64 { return e.threshold }

// Evaluate partitions the rows for (caseID, side) into matched and
// recommended by running the keyword matcher over userText, sums the matched
// weights, and collects every other-side row of the case as a
// counterargument. Row order is preserved throughout; identical inputs
// produce identical results.
func (e *Evaluator) Evaluate(caseID, side, userText string, rows []Row) Result {
	sideNorm := Normalize(side)
	res := Result{
		Matched:          []MatchedArgument{},
		Recommended:      []SuggestedArgument{},
		Counterarguments: []SuggestedArgument{},
	}
	for _, row := range rows {
		if row.CaseID != caseID {
			continue
		}
		if row.Side != sideNorm {
			res.Counterarguments = append(res.Counterarguments, SuggestedArgument{
				Principle: row.Principle,
				Article:   row.Article,
				Weight:    row.Weight,
				Keywords:  row.Keywords,
			})
			continue
		}
		if MatchKeywords(userText, row.Keywords, e.threshold) {
			res.Score += row.Weight
			res.Matched = append(res.Matched, MatchedArgument{
				Principle:     row.Principle,
				Article:       row.Article,
				Weight:        row.Weight,
				KeywordSample: keywordSample(row.Keywords),
			})
			continue
		}
		res.Recommended = append(res.Recommended, SuggestedArgument{
			Principle: row.Principle,
			Article:   row.Article,
			Weight:    row.Weight,
			Keywords:  row.Keywords,
		})
	}
	return res
}

// keywordSample is a short display hint: the first two keywords of the set.
func keywordSample(keywords []string) string {
	if len(keywords) > 2 {
		keywords = keywords[:2]
	}
	return strings.Join(keywords, ";")
}
