package safety

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liserjrqlxue/bioforge/pkg/design"
	"github.com/liserjrqlxue/bioforge/pkg/util"
)

func newDesign(description string, names ...string) *design.Design {
	d := &design.Design{ID: "d1", Name: "test", Description: description}
	for i, name := range names {
		d.Parts = append(d.Parts, design.NewPart(string(rune('a'+i)), name, design.Other, "GCTAGC"))
	}
	return d
}

func TestAssessKanR(t *testing.T) {
	a := NewAssessor().Assess(newDesign("", "pTet promoter", "KanR resistance marker"))

	assert.InDelta(t, 0.7, a.Overall, 1e-9)
	assert.InDelta(t, 0.05, a.Toxicity, 1e-9)
	assert.InDelta(t, 0.4, a.EnvironmentalRisk, 1e-9)
	assert.InDelta(t, 0.4, a.Biocontainment, 1e-9)
	assert.Zero(t, a.DangerousSequenceCount)
	assert.Empty(t, a.RestrictedOrganismMatches)
	assert.Equal(t, []string{
		"Consider adding a kill switch for improved biocontainment",
		"Antibiotic resistance genes pose environmental risks. Consider alternative selection markers",
	}, a.Recommendations)
	assert.False(t, a.RegulatoryFlags.DualUseResearchOfConcern)
	assert.False(t, a.RegulatoryFlags.SelectAgent)
}

func TestAssessBaseline(t *testing.T) {
	a := NewAssessor().Assess(newDesign("", "lac promoter", "ccdB kill switch"))

	assert.InDelta(t, BaseOverall, a.Overall, 1e-12)
	assert.InDelta(t, BaseToxicity, a.Toxicity, 1e-12)
	assert.InDelta(t, BaseEnvironmentalRisk, a.EnvironmentalRisk, 1e-12)
	assert.InDelta(t, BaseBiocontainment, a.Biocontainment, 1e-12)
	assert.Empty(t, a.Recommendations)
	assert.NotNil(t, a.Recommendations)
	assert.Equal(t, RegulatoryFlags{}, a.RegulatoryFlags)
}

func TestAssessDangerousMotif(t *testing.T) {
	d := newDesign("", "suicide module", "marker resistance")
	d.Parts[0].Sequence = "gct" + strings.ToLower(util.DangerousPatterns[2]) + "TAA"

	a := NewAssessor().Assess(d)
	assert.Equal(t, 1, a.DangerousSequenceCount)
	assert.InDelta(t, 0.4, a.Overall, 1e-9)
	assert.InDelta(t, 0.35, a.Toxicity, 1e-9)
	assert.InDelta(t, 0.6, a.EnvironmentalRisk, 1e-9)
	assert.InDelta(t, 0.7, a.Biocontainment, 1e-9)
	assert.Equal(t, []string{
		"Sequence contains patterns associated with dangerous genes. Verify their origin and intended use",
		"Antibiotic resistance genes pose environmental risks. Consider alternative selection markers",
		"This design has significant safety concerns. Review and revise before proceeding",
	}, a.Recommendations)
	assert.True(t, a.RegulatoryFlags.DualUseResearchOfConcern)
	assert.True(t, a.RegulatoryFlags.NeedsReview)
}

func TestAssessRestrictedOrganism(t *testing.T) {
	d := newDesign("", "botulinum toxin", "pathway")
	d.Parts[1].Description = "Gene cluster adapted from yersinia PESTIS"

	a := NewAssessor().Assess(d)
	assert.Equal(t, []string{"Yersinia pestis"}, a.RestrictedOrganismMatches)
	assert.InDelta(t, 0.1, a.Overall, 1e-9)
	assert.InDelta(t, 0.95, a.Toxicity, 1e-9)
	assert.InDelta(t, 0.9, a.EnvironmentalRisk, 1e-9)
	assert.InDelta(t, 0.1, a.Biocontainment, 1e-9)
	require.Len(t, a.Recommendations, 4)
	assert.Equal(t, "Toxin genes detected. Ensure proper containment and regulatory compliance", a.Recommendations[1])
	assert.Equal(t,
		"Design contains references to restricted organisms: Yersinia pestis. This may be subject to regulatory restrictions",
		a.Recommendations[2])
	assert.Equal(t, RegulatoryFlags{true, true, true}, a.RegulatoryFlags)
}

func TestAssessClampsEveryScore(t *testing.T) {
	d := newDesign("Ebola virus and Marburg virus work", "toxin", "antibiotic resistance")
	d.Parts[0].Sequence = strings.Join(util.DangerousPatterns, "")

	a := NewAssessor().Assess(d)
	assert.Equal(t, []string{"Ebola virus", "Marburg virus"}, a.RestrictedOrganismMatches)
	assert.Equal(t, 4, a.DangerousSequenceCount)
	for _, score := range []float64{a.Overall, a.Toxicity, a.EnvironmentalRisk, a.Biocontainment} {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
	assert.Zero(t, a.Overall)
	assert.Equal(t, 1.0, a.EnvironmentalRisk)
}

func TestScreen(t *testing.T) {
	tests := []struct {
		name            string
		seq             string
		dangerous       bool
		homopolymers    []string
		recommendations []string
	}{
		{"balanced", "ATGCATGCATGC", false, []string{}, []string{}},
		{
			"low gc runs", "AAAAAAATTTTTTGC", false, []string{"Ax6+", "Tx6+"},
			[]string{
				"Sequence contains homopolymer regions which may affect stability",
				"Low GC content may affect stability",
			},
		},
		{
			"dangerous", util.DangerousPatterns[0], true, []string{},
			[]string{
				"Sequence contains patterns associated with dangerous genes",
			},
		},
		{
			"high gc", "GGGGGGCCGCGC", false, []string{"Gx6+"},
			[]string{
				"Sequence contains homopolymer regions which may affect stability",
				"High GC content may affect ease of handling",
			},
		},
		{"empty", "", false, []string{}, []string{"Low GC content may affect stability"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAssessor().Screen(tt.seq)
			assert.Equal(t, len(tt.seq), got.SequenceLength)
			assert.Equal(t, tt.dangerous, got.DangerousPatterns)
			assert.Equal(t, tt.dangerous, got.SafetyConcerns)
			assert.Equal(t, tt.homopolymers, got.Homopolymers)
			assert.Equal(t, tt.recommendations, got.Recommendations)
		})
	}
}
