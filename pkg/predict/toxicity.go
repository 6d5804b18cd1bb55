package predict

import (
	"strings"

	"github.com/liserjrqlxue/bioforge/pkg/util"
)

// ToxicMotifs low-complexity charged repeats
var ToxicMotifs = []string{"RRRR", "KKKK", "DDDD", "EEEE"}

// ToxicityReport preliminary protein toxicity
type ToxicityReport struct {
	ToxicityScore float64  `json:"toxicity_score"`
	ToxicMotifs   []string `json:"toxic_motifs"`
	RiskLevel     string   `json:"risk_level"`
	Notes         []string `json:"notes"`
}

// Toxicity scores an amino-acid sequence: 0.1 base, +0.2 per toxic motif,
// +0.1 per residue making up more than 20% of the sequence.
func Toxicity(protein string) ToxicityReport {
	protein = strings.ToUpper(protein)
	var (
		score = 0.1
		found = []string{}
	)
	for _, motif := range ToxicMotifs {
		if strings.Contains(protein, motif) {
			found = append(found, motif)
		}
	}
	score += 0.2 * float64(len(found))

	counts := make(map[rune]int)
	for _, aa := range protein {
		counts[aa]++
	}
	for _, n := range counts {
		if float64(n)/float64(len(protein)) > 0.2 {
			score += 0.1
		}
	}
	score = util.Clamp01(score)

	var level string
	switch {
	case score > 0.7:
		level = "High"
	case score > 0.3:
		level = "Medium"
	default:
		level = "Low"
	}

	return ToxicityReport{
		ToxicityScore: score,
		ToxicMotifs:   found,
		RiskLevel:     level,
		Notes: []string{
			"This is a preliminary toxicity assessment",
			"Further experimental validation is recommended",
		},
	}
}
