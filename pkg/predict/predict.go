// Package predict assigns a heuristic function class to a DNA sequence and
// scores protein toxicity.
//
// There is one prediction path. An embedding from an external protein
// language model can be passed in, but the rule cascade does not read it.
package predict

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/liserjrqlxue/bioforge/pkg/util"
)

// Prediction of a sequence function
type Prediction struct {
	Prediction        string   `json:"prediction"`
	Confidence        float64  `json:"confidence"`
	PossibleFunctions []string `json:"possible_functions"`
	ProteinDomains    []string `json:"protein_domains"`
	Notes             []string `json:"notes"`
	// ProteinSequence translation of the longest ORF
	ProteinSequence string `json:"protein_sequence,omitempty"`
}

func (p Prediction) clone() Prediction {
	p.PossibleFunctions = slices.Clone(p.PossibleFunctions)
	p.ProteinDomains = slices.Clone(p.ProteinDomains)
	p.Notes = slices.Clone(p.Notes)
	return p
}

func unknown() Prediction {
	return Prediction{
		Prediction:        "Unknown",
		Confidence:        0,
		PossibleFunctions: []string{},
		ProteinDomains:    []string{},
		Notes:             []string{"No open reading frames found"},
	}
}

// Predict runs the ORF finder and, when it finds anything, the rule cascade.
// embedding may be nil.
func Predict(seq string, embedding []float32) Prediction {
	seq = strings.ToUpper(seq)
	orfs := util.FindORFs(seq, util.MinORFLength)
	longest, ok := util.LongestORF(orfs)
	if !ok {
		return unknown()
	}
	protein := util.Translate(longest.Seq)

	if embedding != nil {
		slog.Debug("embedding supplied", "dims", len(embedding), "protein_length", len(protein))
	}

	rule, p := Cascade(seq)
	slog.Debug("function predicted", "rule", rule, "orfs", len(orfs), "longest", longest.Len())
	p.ProteinSequence = protein
	return p
}
