package grading

import "strings"

// ExtractKeywords builds the canonical keyword set for one catalog row.
// rawKeywords is split on ';' and each piece normalized; principle and
// article are each normalized as a single phrase. The three lists are
// concatenated in that order and deduplicated keeping first occurrence.
func ExtractKeywords(rawKeywords, principle, article string) []string {
	out := make([]string, 0, 8)
	seen := map[string]struct{}{}
	add := func(kw string) {
		if kw == "" {
			return
		}
		if _, ok := seen[kw]; ok {
			return
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	for _, piece := range strings.Split(rawKeywords, ";") {
		add(Normalize(piece))
	}
	add(Normalize(principle))
	add(Normalize(article))
	return out
}
