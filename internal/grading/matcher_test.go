package grading

import "testing"

func TestMatchKeywords(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		keywords  []string
		threshold float64
		want      bool
	}{
		{
			name:      "exact substring",
			text:      "Defendo o direito à saúde de todos",
			keywords:  []string{"direito a saude"},
			threshold: 0.80,
			want:      true,
		},
		{
			name:      "accent only difference matches exactly",
			text:      "direito a saude",
			keywords:  []string{"direito à saúde"},
			threshold: 0.80,
			want:      true,
		},
		{
			name:      "single token typo within tolerance",
			text:      "a tipicidade da conduta",
			keywords:  []string{"tipicidade"},
			threshold: 0.80,
			want:      true,
		},
		{
			name:      "single token misspelling",
			text:      "o principio da dignidade",
			keywords:  []string{"principios"},
			threshold: 0.80,
			want:      true,
		},
		{
			name:      "phrase window with small edit",
			text:      "defendo a dignidade da pesoa humana sempre",
			keywords:  []string{"dignidade da pessoa humana"},
			threshold: 0.80,
			want:      true,
		},
		{
			name:      "unrelated text rejected",
			text:      "furto qualificado",
			keywords:  []string{"dignidade da pessoa humana"},
			threshold: 0.80,
			want:      false,
		},
		{
			name:      "empty text never matches non-empty keyword",
			text:      "",
			keywords:  []string{"saude", "dignidade da pessoa humana"},
			threshold: 0.80,
			want:      false,
		},
		{
			name:      "empty keywords skipped",
			text:      "qualquer texto",
			keywords:  []string{"", "  "},
			threshold: 0.80,
			want:      false,
		},
		{
			name:      "phrase longer than text cannot match",
			text:      "saude",
			keywords:  []string{"direito a saude publica"},
			threshold: 0.80,
			want:      false,
		},
		{
			name:      "exact token matches at threshold 1",
			text:      "tipicidade",
			keywords:  []string{"tipicidade"},
			threshold: 1.0,
			want:      true,
		},
		{
			name:      "strict threshold rejects near miss",
			text:      "tipicidad",
			keywords:  []string{"tipicidade"},
			threshold: 1.0,
			want:      false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchKeywords(tt.text, tt.keywords, tt.threshold)
			if got != tt.want {
				t.Errorf("MatchKeywords(%q, %v, %v) = %v, want %v",
					tt.text, tt.keywords, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestClosestTokenLeftmostTie(t *testing.T) {
	idx, ratio := closestToken("saude", []string{"saude", "outro", "saude"})
	if idx != 0 || ratio != 1 {
		t.Fatalf("closestToken tie-break: got idx=%d ratio=%v, want idx=0 ratio=1", idx, ratio)
	}
	if idx, _ := closestToken("saude", nil); idx != -1 {
		t.Fatalf("closestToken on empty tokens: got idx=%d, want -1", idx)
	}
}

func TestMatchKeywordsDeterministic(t *testing.T) {
	text := "defendo a dignidade da pesoa humana e o direito a saude"
	kws := []string{"dignidade da pessoa humana", "direito a saude", "tipicidade"}
	first := MatchKeywords(text, kws, 0.80)
	for i := 0; i < 10; i++ {
		if MatchKeywords(text, kws, 0.80) != first {
			t.Fatal("MatchKeywords is not deterministic")
		}
	}
}
