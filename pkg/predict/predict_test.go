package predict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascade(t *testing.T) {
	tests := []struct {
		name       string
		seq        string
		rule       string
		prediction string
		confidence float64
	}{
		{"gfp", GFPSignature + "TAA", "gfp", "Green Fluorescent Protein (GFP)", 0.95},
		{"rfp", RFPSignature + "TAG", "rfp", "Red Fluorescent Protein (RFP)", 0.92},
		{"high gc coding", "ATGGCCGCCGCCGCCGCCTGA", "stress", "Stress Response Protein", 0.78},
		{"plain coding", "ATG" + strings.Repeat("GCTGCA", 5) + "TGA", "enzyme", "Metabolic Enzyme", 0.65},
		{"promoter box", "GGCTTGACAGGCC", "promoter", "Promoter Region", 0.88},
		{"short at rich", "AAAGAGGAGAAA", "rbs", "Ribosome Binding Site", 0.75},
		{"nothing", strings.Repeat("GCGCAAAA", 10), "unknown", "Unknown Function", 0.30},
		// start and stop codons need not be in frame or ordered
		{"stop before start", "TAAGGGATG", "enzyme", "Metabolic Enzyme", 0.65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, got := Cascade(tt.seq)
			assert.Equal(t, tt.rule, rule)
			assert.Equal(t, tt.prediction, got.Prediction)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-12)
			assert.NotNil(t, got.ProteinDomains)
		})
	}
}

func TestCascadeReturnsCopies(t *testing.T) {
	_, p := Cascade(GFPSignature + "TAA")
	p.Notes[0] = "mutated"
	_, again := Cascade(GFPSignature + "TAA")
	assert.Equal(t, "High confidence match to GFP sequence", again.Notes[0])
}

func TestPredict(t *testing.T) {
	t.Run("no orf", func(t *testing.T) {
		got := Predict("TTGACAGCTAGCTCAGTCCTAGGTATAATGCTAGC", nil)
		assert.Equal(t, "Unknown", got.Prediction)
		assert.Zero(t, got.Confidence)
		assert.Equal(t, []string{"No open reading frames found"}, got.Notes)
		assert.Empty(t, got.ProteinSequence)
	})

	// the GFP rule outranks the GC > 0.65 rule
	t.Run("gfp beats high gc", func(t *testing.T) {
		seq := GFPSignature + strings.Repeat("GCC", 10) + "TAA"
		require.Greater(t, NewFeatures(seq).GCContent, 0.65)

		got := Predict(seq, nil)
		assert.Equal(t, "Green Fluorescent Protein (GFP)", got.Prediction)
		assert.Equal(t, "MVSKGEE"+strings.Repeat("A", 10)+"*", got.ProteinSequence)
	})

	t.Run("embedding does not change the outcome", func(t *testing.T) {
		seq := RFPSignature + strings.Repeat("GCTGCA", 3) + "TGA"
		without := Predict(seq, nil)
		with := Predict(seq, []float32{0.1, -0.4, 2.5})
		assert.Equal(t, without, with)
		assert.Equal(t, "Red Fluorescent Protein (RFP)", with.Prediction)
	})

	t.Run("lower case input", func(t *testing.T) {
		seq := strings.ToLower(GFPSignature + strings.Repeat("GCC", 10) + "TAA")
		assert.Equal(t, "Green Fluorescent Protein (GFP)", Predict(seq, nil).Prediction)
	})
}

func TestToxicity(t *testing.T) {
	tests := []struct {
		name    string
		protein string
		score   float64
		motifs  []string
		level   string
	}{
		// every residue is 1/20 of the sequence
		{"diverse", "ACDEFGHIKLMNPQRSTVWY", 0.1, []string{}, "Low"},
		// R is 4/8 of the sequence
		{"one motif", "RRRRACDE", 0.4, []string{"RRRR"}, "Medium"},
		{"two motifs", "KKKKEEEEACDFGHILMNPQSTVWY", 0.5, []string{"KKKK", "EEEE"}, "Medium"},
		{"saturated", "RRRRKKKKDDDDEEEE", 1.0, []string{"RRRR", "KKKK", "DDDD", "EEEE"}, "High"},
		{"empty", "", 0.1, []string{}, "Low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Toxicity(tt.protein)
			assert.InDelta(t, tt.score, got.ToxicityScore, 1e-9)
			assert.Equal(t, tt.motifs, got.ToxicMotifs)
			assert.Equal(t, tt.level, got.RiskLevel)
			assert.Len(t, got.Notes, 2)
		})
	}
}
