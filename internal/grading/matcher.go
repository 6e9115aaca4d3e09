package grading

import "strings"

// DefaultThreshold is the similarity cutoff used when no explicit threshold
// is configured.
const DefaultThreshold = 0.80

// MatchKeywords reports whether userText contains any of the given keywords,
// exactly or approximately. Both sides are normalized before comparison, so
// accent-only or punctuation-only differences always match exactly. Per
// keyword, in order:
//
//  1. substring: the keyword occurs verbatim inside the normalized text;
//  2. single token fuzzy: for a one-word keyword, the best Ratio against any
//     token is >= threshold (the leftmost best-scoring token decides ties);
//  3. phrase fuzzy: for an N-word keyword, some window of N consecutive
//     tokens, joined by single spaces, has Ratio >= threshold.
//
// The first keyword to pass any test wins; an empty keyword never matches.
func MatchKeywords(userText string, keywords []string, threshold float64) bool {
	norm := Normalize(userText)
	var tokens []string
	if norm != "" {
		tokens = strings.Split(norm, " ")
	}

	for _, kw := range keywords {
		kw = Normalize(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(norm, kw) {
			return true
		}
		kwTokens := strings.Split(kw, " ")
		if len(kwTokens) == 1 {
			if _, best := closestToken(kw, tokens); best >= threshold {
				return true
			}
			continue
		}
		if n := len(kwTokens); n <= len(tokens) {
			for i := 0; i+n <= len(tokens); i++ {
				window := strings.Join(tokens[i:i+n], " ")
				if Ratio(window, kw) >= threshold {
					return true
				}
			}
		}
	}
	return false
}

// closestToken returns the index and similarity of the token closest to kw.
// Ties go to the leftmost token; index is -1 when tokens is empty.
func closestToken(kw string, tokens []string) (int, float64) {
	bestIdx, bestRatio := -1, -1.0
	for i, tok := range tokens {
		if r := Ratio(tok, kw); r > bestRatio {
			bestIdx, bestRatio = i, r
		}
	}
	return bestIdx, bestRatio
}
