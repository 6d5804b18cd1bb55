// Package topology checks the physical order of the archetypal parts of a circuit.
package topology

import "github.com/liserjrqlxue/bioforge/pkg/design"

// notes
const (
	NoPromoter    = "No promoter found. Gene expression may be limited."
	NoRBS         = "No ribosome binding site found. Protein translation may be inefficient."
	NoGene        = "No coding sequence found. No protein will be produced."
	NoTerminator  = "No terminator found. Transcription may continue past the intended region."
	WrongOrdering = "Components are not in the optimal order. Consider rearranging for better performance."
)

// Report of one design; indexes are -1 when the type is absent
type Report struct {
	PromoterIndex   int      `json:"promoter_index"`
	RBSIndex        int      `json:"rbs_index"`
	GeneIndex       int      `json:"gene_index"`
	TerminatorIndex int      `json:"terminator_index"`
	HasPromoter     bool     `json:"has_promoter"`
	HasRBS          bool     `json:"has_rbs"`
	HasGene         bool     `json:"has_gene"`
	HasTerminator   bool     `json:"has_terminator"`
	CorrectOrder    bool     `json:"correct_order"`
	Notes           []string `json:"notes"`
}

// Complete reports whether all four archetypal types are present
func (r *Report) Complete() bool {
	return r.HasPromoter && r.HasRBS && r.HasGene && r.HasTerminator
}

// ExpressionSystem promoter, RBS and gene all present
func (r *Report) ExpressionSystem() bool {
	return r.HasPromoter && r.HasRBS && r.HasGene
}

// Penalized reports whether the misordering penalty applies
func (r *Report) Penalized() bool {
	return !r.CorrectOrder
}

// Check records the last index of each archetypal type. A later part of the
// same type overwrites the earlier index, so two promoters are ordered by the
// second one.
func Check(parts []design.Part) Report {
	var r = Report{
		PromoterIndex:   -1,
		RBSIndex:        -1,
		GeneIndex:       -1,
		TerminatorIndex: -1,
		CorrectOrder:    true,
		Notes:           []string{},
	}
	for i, p := range parts {
		switch p.Type {
		case design.Promoter:
			r.PromoterIndex = i
		case design.RBS:
			r.RBSIndex = i
		case design.Gene:
			r.GeneIndex = i
		case design.Terminator:
			r.TerminatorIndex = i
		}
	}
	r.HasPromoter = r.PromoterIndex != -1
	r.HasRBS = r.RBSIndex != -1
	r.HasGene = r.GeneIndex != -1
	r.HasTerminator = r.TerminatorIndex != -1

	if r.Complete() {
		r.CorrectOrder = r.PromoterIndex < r.RBSIndex &&
			r.RBSIndex < r.GeneIndex &&
			r.GeneIndex < r.TerminatorIndex
	}

	if !r.HasPromoter {
		r.Notes = append(r.Notes, NoPromoter)
	}
	if !r.HasRBS {
		r.Notes = append(r.Notes, NoRBS)
	}
	if !r.HasGene {
		r.Notes = append(r.Notes, NoGene)
	}
	if !r.HasTerminator {
		r.Notes = append(r.Notes, NoTerminator)
	}
	if !r.CorrectOrder {
		r.Notes = append(r.Notes, WrongOrdering)
	}
	return r
}
