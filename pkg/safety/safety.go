// Package safety scores the biosafety risk of a design.
//
// Scores start from fixed baselines; every triggered condition applies one
// fixed delta, and the four scores are clamped to [0,1] at the end.
package safety

import (
	"fmt"
	"strings"

	"github.com/liserjrqlxue/bioforge/pkg/design"
	"github.com/liserjrqlxue/bioforge/pkg/util"
)

// baselines
const (
	BaseOverall           = 0.9
	BaseToxicity          = 0.05
	BaseEnvironmentalRisk = 0.1
	BaseBiocontainment    = 0.9

	// ConcernThreshold below which the generic concern recommendation is added
	ConcernThreshold = 0.6
)

// RestrictedOrganisms select agents by name
var RestrictedOrganisms = []string{
	"Bacillus anthracis",
	"Yersinia pestis",
	"Francisella tularensis",
	"Variola virus",
	"Ebola virus",
	"Marburg virus",
}

// part name keywords
var (
	resistanceKeywords = []string{"antibiotic", "resistance"}
	killSwitchKeywords = []string{"kill", "suicide"}
	toxinKeywords      = []string{"toxin", "poison"}
)

// RegulatoryFlags derived from the clamped scores
type RegulatoryFlags struct {
	DualUseResearchOfConcern bool `json:"dual_use_research_of_concern"`
	SelectAgent              bool `json:"select_agent"`
	NeedsReview              bool `json:"needs_review"`
}

// Assessment of one design
type Assessment struct {
	Overall                   float64         `json:"overall"`
	Toxicity                  float64         `json:"toxicity"`
	EnvironmentalRisk         float64         `json:"environmental_risk"`
	Biocontainment            float64         `json:"biocontainment"`
	DangerousSequenceCount    int             `json:"dangerous_sequence_count"`
	RestrictedOrganismMatches []string        `json:"restricted_organism_matches"`
	Recommendations           []string        `json:"recommendations"`
	RegulatoryFlags           RegulatoryFlags `json:"regulatory_flags"`
}

// Assessor is safe for concurrent use once built
type Assessor struct {
	Patterns  []string
	Organisms []string
}

// NewAssessor with the built-in pattern and organism tables
func NewAssessor() *Assessor {
	return &Assessor{
		Patterns:  util.DangerousPatterns,
		Organisms: RestrictedOrganisms,
	}
}

type delta struct {
	overall, toxicity, environmental, biocontainment float64
}

func (a *Assessment) apply(d delta) {
	a.Overall += d.overall
	a.Toxicity += d.toxicity
	a.EnvironmentalRisk += d.environmental
	a.Biocontainment += d.biocontainment
}

func anyPartName(d *design.Design, keywords []string) bool {
	for _, p := range d.Parts {
		if util.ContainsAny(strings.ToLower(p.Name), keywords...) {
			return true
		}
	}
	return false
}

// restrictedMatches organisms named in the design or any part description
func (s *Assessor) restrictedMatches(d *design.Design) []string {
	var texts = []string{strings.ToLower(d.Description)}
	for _, p := range d.Parts {
		texts = append(texts, strings.ToLower(p.Description))
	}
	var matches = []string{}
	for _, organism := range s.Organisms {
		name := strings.ToLower(organism)
		for _, text := range texts {
			if strings.Contains(text, name) {
				matches = append(matches, organism)
				break
			}
		}
	}
	return matches
}

// Assess scores d
func (s *Assessor) Assess(d *design.Design) Assessment {
	var a = Assessment{
		Overall:           BaseOverall,
		Toxicity:          BaseToxicity,
		EnvironmentalRisk: BaseEnvironmentalRisk,
		Biocontainment:    BaseBiocontainment,
		Recommendations:   []string{},
	}

	dangerous := util.DangerousMotifs(d.FullSequence(), s.Patterns)
	a.DangerousSequenceCount = len(dangerous)
	if len(dangerous) > 0 {
		a.apply(delta{overall: -0.3, toxicity: 0.3, environmental: 0.2})
		a.Recommendations = append(a.Recommendations,
			"Sequence contains patterns associated with dangerous genes. Verify their origin and intended use")
	}

	hasResistance := anyPartName(d, resistanceKeywords)
	if hasResistance {
		a.apply(delta{overall: -0.2, environmental: 0.3, biocontainment: -0.2})
	}

	hasKillSwitch := anyPartName(d, killSwitchKeywords)
	if !hasKillSwitch {
		a.apply(delta{biocontainment: -0.3})
	}

	hasToxin := anyPartName(d, toxinKeywords)
	if hasToxin {
		a.apply(delta{overall: -0.3, toxicity: 0.4, environmental: 0.3})
	}

	a.RestrictedOrganismMatches = s.restrictedMatches(d)
	if len(a.RestrictedOrganismMatches) > 0 {
		a.apply(delta{overall: -0.5, toxicity: 0.5, environmental: 0.5, biocontainment: -0.5})
	}

	if !hasKillSwitch {
		a.Recommendations = append(a.Recommendations,
			"Consider adding a kill switch for improved biocontainment")
	}
	if hasResistance {
		a.Recommendations = append(a.Recommendations,
			"Antibiotic resistance genes pose environmental risks. Consider alternative selection markers")
	}
	if hasToxin {
		a.Recommendations = append(a.Recommendations,
			"Toxin genes detected. Ensure proper containment and regulatory compliance")
	}
	if len(a.RestrictedOrganismMatches) > 0 {
		a.Recommendations = append(a.Recommendations, fmt.Sprintf(
			"Design contains references to restricted organisms: %s. This may be subject to regulatory restrictions",
			strings.Join(a.RestrictedOrganismMatches, ", ")))
	}
	if a.Overall < ConcernThreshold {
		a.Recommendations = append(a.Recommendations,
			"This design has significant safety concerns. Review and revise before proceeding")
	}

	a.Overall = util.Clamp01(a.Overall)
	a.Toxicity = util.Clamp01(a.Toxicity)
	a.EnvironmentalRisk = util.Clamp01(a.EnvironmentalRisk)
	a.Biocontainment = util.Clamp01(a.Biocontainment)

	a.RegulatoryFlags = RegulatoryFlags{
		DualUseResearchOfConcern: a.Overall < 0.5,
		SelectAgent:              len(a.RestrictedOrganismMatches) > 0,
		NeedsReview:              a.Overall < 0.7,
	}
	return a
}
