package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCContent(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want float64
	}{
		{"empty", "", 0},
		{"all gc", "GGCC", 1.0},
		{"no gc", "ATAT", 0.0},
		{"half", "ATGC", 0.5},
		{"lower case", "ggat", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GCContent(tt.seq), 1e-12)
		})
	}
}

func TestFindORFs(t *testing.T) {
	t.Run("single short orf", func(t *testing.T) {
		orfs := FindORFs("ATGAAATAA", 0)
		require.Len(t, orfs, 1)
		assert.Equal(t, 9, orfs[0].Len())
		assert.Equal(t, "ATGAAATAA", orfs[0].Seq)
	})

	t.Run("below minimum length is dropped", func(t *testing.T) {
		assert.Empty(t, FindORFs("ATGAAATAA", MinORFLength))
	})

	t.Run("no stop after start", func(t *testing.T) {
		assert.Empty(t, FindORFs("ATGAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", 0))
	})

	t.Run("frame offset", func(t *testing.T) {
		orfs := FindORFs("CATGAAATAG", 0)
		require.Len(t, orfs, 1)
		assert.Equal(t, 1, orfs[0].Frame)
		assert.Equal(t, 1, orfs[0].Start)
		assert.Equal(t, 10, orfs[0].End)
	})

	// nested starts share the first stop and are reported separately
	t.Run("overlapping orfs share a stop", func(t *testing.T) {
		orfs := FindORFs("ATGATGAAATAA", 0)
		require.Len(t, orfs, 2)
		assert.Equal(t, "ATGATGAAATAA", orfs[0].Seq)
		assert.Equal(t, "ATGAAATAA", orfs[1].Seq)
		assert.Equal(t, orfs[0].End, orfs[1].End)
	})

	// the first stop ends a candidate even when it is too short
	t.Run("first stop wins without retry", func(t *testing.T) {
		seq := "ATGTAA" + strings.Repeat("AAA", 10) + "TAA"
		assert.Empty(t, FindORFs(seq, MinORFLength))
	})

	t.Run("long orf", func(t *testing.T) {
		seq := "ATG" + strings.Repeat("GCA", 10) + "TGA"
		orfs := FindORFs(seq, MinORFLength)
		require.Len(t, orfs, 1)
		assert.Equal(t, 36, orfs[0].Len())
	})
}

func TestLongestORF(t *testing.T) {
	_, ok := LongestORF(nil)
	assert.False(t, ok)

	orfs := []ORF{
		{Feature: Feature{Start: 0, End: 30, Name: "a"}},
		{Feature: Feature{Start: 3, End: 39, Name: "b"}},
		{Feature: Feature{Start: 6, End: 42, Name: "c"}},
	}
	longest, ok := LongestORF(orfs)
	require.True(t, ok)
	assert.Equal(t, "b", longest.Name)
}

func TestFindHomopolymers(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want []string
	}{
		{"six a at start", "AAAAAAGGCC", []string{"Ax6"}},
		{"five is not reported", "AAAAAGGCC", nil},
		{"final run", "GCAAAAAAAA", []string{"Ax8"}},
		{"two runs", "TTTTTTTCGGGGGGA", []string{"Tx7", "Gx6"}},
		{"whole sequence", "CCCCCC", []string{"Cx6"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, h := range FindHomopolymers(tt.seq, MinHomopolymerRun) {
				got = append(got, h.Label())
			}
			assert.Equal(t, tt.want, got)
		})
	}

	polys := FindHomopolymers("GGGGGGAAAAAAA", MinHomopolymerRun)
	assert.Equal(t, []byte("AG"), HomopolymerBases(polys))
}

func TestRareCodons(t *testing.T) {
	assert.Empty(t, RareCodons("GCAGCAGCA"))
	// CTA in frame 0, AGG only visible in frame 1
	assert.Equal(t, []string{"CTA", "AGG"}, RareCodons("CTAGCTAAGGC"))
	assert.Equal(t, []string{"CCC"}, RareCodons("CCCCCC"))
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "MK*", Translate("ATGAAATAA"))
	assert.Equal(t, "MK", Translate("atgaaat"))
	assert.Equal(t, "MX", Translate("ATGANN"))
}

func TestInvalidBases(t *testing.T) {
	assert.Empty(t, InvalidBases("acgtACGT"))
	assert.Equal(t, []rune{'N', 'X'}, InvalidBases("ANGXNT"))
}

func TestDangerousMotifs(t *testing.T) {
	seq := "tt" + strings.ToLower(DangerousPatterns[2]) + "aa"
	assert.Equal(t, []string{DangerousPatterns[2]}, DangerousMotifs(seq, DangerousPatterns))
	assert.Empty(t, DangerousMotifs("ATGC", DangerousPatterns))
	assert.Equal(t, []string{"A(C"}, DangerousMotifs("GA(CT", []string{"A(C"}))
}

func BenchmarkFindORFs(b *testing.B) {
	seq := strings.Repeat("ATG"+strings.Repeat("GCA", 20)+"TAA", 50)
	for i := 0; i < b.N; i++ {
		_ = FindORFs(seq, MinORFLength)
	}
}
