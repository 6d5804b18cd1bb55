package predict

import (
	"strings"

	"github.com/liserjrqlxue/bioforge/pkg/util"
)

// signature starts of common reporters
const (
	GFPSignature = "ATGGTGAGCAAGGGCGAGGAG"
	RFPSignature = "ATGGCCTCCTCCGAGGACGTC"
)

// Features are the sequence-derived signals the cascade reads
type Features struct {
	Seq       string
	Length    int
	GCContent float64
	// HasStart and HasStop look anywhere in the sequence, not in frame
	HasStart bool
	HasStop  bool
}

func NewFeatures(seq string) Features {
	seq = strings.ToUpper(seq)
	return Features{
		Seq:       seq,
		Length:    len(seq),
		GCContent: util.GCContent(seq),
		HasStart:  strings.Contains(seq, util.StartCodon),
		HasStop:   util.ContainsAny(seq, util.StopCodons...),
	}
}

func (f Features) coding() bool {
	return f.HasStart && f.HasStop
}

// Rule is one (predicate, result) entry of the cascade
type Rule struct {
	Name   string
	Match  func(Features) bool
	Result Prediction
}

// Rules in priority order; the first match wins and the last always matches
var Rules = []Rule{
	{
		Name: "gfp",
		Match: func(f Features) bool {
			return f.coding() && strings.Contains(f.Seq, GFPSignature)
		},
		Result: Prediction{
			Prediction:        "Green Fluorescent Protein (GFP)",
			Confidence:        0.95,
			PossibleFunctions: []string{"Fluorescent reporter", "Protein tagging"},
			ProteinDomains:    []string{"GFP beta-barrel"},
			Notes:             []string{"High confidence match to GFP sequence"},
		},
	},
	{
		Name: "rfp",
		Match: func(f Features) bool {
			return f.coding() && strings.Contains(f.Seq, RFPSignature)
		},
		Result: Prediction{
			Prediction:        "Red Fluorescent Protein (RFP)",
			Confidence:        0.92,
			PossibleFunctions: []string{"Fluorescent reporter", "Protein tagging"},
			ProteinDomains:    []string{"DsRed-like"},
			Notes:             []string{"High confidence match to RFP sequence"},
		},
	},
	{
		Name: "stress",
		Match: func(f Features) bool {
			return f.coding() && f.GCContent > 0.65
		},
		Result: Prediction{
			Prediction:        "Stress Response Protein",
			Confidence:        0.78,
			PossibleFunctions: []string{"Heat shock response", "Oxidative stress response"},
			ProteinDomains:    []string{"Chaperone-like", "Redox-active"},
			Notes:             []string{"High GC content suggests stress-related function"},
		},
	},
	{
		Name:  "enzyme",
		Match: Features.coding,
		Result: Prediction{
			Prediction:        "Metabolic Enzyme",
			Confidence:        0.65,
			PossibleFunctions: []string{"Carbon metabolism", "Biosynthesis"},
			ProteinDomains:    []string{"Enzyme active site", "Substrate binding domain"},
			Notes:             []string{"Sequence contains features consistent with metabolic enzymes"},
		},
	},
	{
		Name: "promoter",
		Match: func(f Features) bool {
			// sigma-70 -10 and -35 boxes
			return util.ContainsAny(f.Seq, "TATAAT", "TTGACA")
		},
		Result: Prediction{
			Prediction:        "Promoter Region",
			Confidence:        0.88,
			PossibleFunctions: []string{"Transcription initiation", "Gene regulation"},
			ProteinDomains:    []string{},
			Notes:             []string{"Contains sigma-70 promoter consensus sequences"},
		},
	},
	{
		Name: "rbs",
		Match: func(f Features) bool {
			return f.GCContent < 0.4 && f.Length < 50
		},
		Result: Prediction{
			Prediction:        "Ribosome Binding Site",
			Confidence:        0.75,
			PossibleFunctions: []string{"Translation initiation"},
			ProteinDomains:    []string{},
			Notes:             []string{"Low GC content and short length typical of RBS"},
		},
	},
	{
		Name:  "unknown",
		Match: func(Features) bool { return true },
		Result: Prediction{
			Prediction:        "Unknown Function",
			Confidence:        0.30,
			PossibleFunctions: []string{"Structural element", "Regulatory element", "Coding sequence"},
			ProteinDomains:    []string{},
			Notes:             []string{"Sequence does not match known patterns"},
		},
	},
}

// Cascade evaluates Rules against seq and returns the name of the matching
// rule with a copy of its result.
func Cascade(seq string) (string, Prediction) {
	f := NewFeatures(seq)
	for _, rule := range Rules {
		if rule.Match(f) {
			return rule.Name, rule.Result.clone()
		}
	}
	// unreachable while the last rule matches everything
	return "", unknown()
}
