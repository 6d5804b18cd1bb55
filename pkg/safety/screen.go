package safety

import (
	"fmt"
	"strings"

	"github.com/liserjrqlxue/bioforge/pkg/util"
)

// SequenceScreen quick screen of a bare sequence
type SequenceScreen struct {
	SequenceLength    int      `json:"sequence_length"`
	GCContent         float64  `json:"gc_content"`
	DangerousPatterns bool     `json:"dangerous_patterns"`
	Homopolymers      []string `json:"homopolymers"`
	SafetyConcerns    bool     `json:"safety_concerns"`
	Recommendations   []string `json:"recommendations"`
}

// Screen checks seq for dangerous patterns, homopolymers and extreme GC
func (s *Assessor) Screen(seq string) SequenceScreen {
	seq = strings.ToUpper(seq)
	var (
		dangerous = len(util.DangerousMotifs(seq, s.Patterns)) > 0
		gc        = util.GCContent(seq)
		result    = SequenceScreen{
			SequenceLength:    len(seq),
			GCContent:         gc,
			DangerousPatterns: dangerous,
			Homopolymers:      []string{},
			SafetyConcerns:    dangerous,
			Recommendations:   []string{},
		}
	)

	for _, base := range util.HomopolymerBases(util.FindHomopolymers(seq, util.MinHomopolymerRun)) {
		result.Homopolymers = append(result.Homopolymers, fmt.Sprintf("%cx%d+", base, util.MinHomopolymerRun))
	}

	if dangerous {
		result.Recommendations = append(result.Recommendations,
			"Sequence contains patterns associated with dangerous genes")
	}
	if len(result.Homopolymers) > 0 {
		result.Recommendations = append(result.Recommendations,
			"Sequence contains homopolymer regions which may affect stability")
	}
	switch {
	case gc < 0.3:
		result.Recommendations = append(result.Recommendations, "Low GC content may affect stability")
	case gc > 0.7:
		result.Recommendations = append(result.Recommendations, "High GC content may affect ease of handling")
	}
	return result
}
