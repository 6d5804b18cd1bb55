package simulate

import (
	"strings"

	"github.com/liserjrqlxue/bioforge/pkg/util"
)

// residue classes
const (
	Hydrophobic = "AVILMFYW"
	Charged     = "DEKRH"
	helixFormer = "AVILMF"
	sheetFormer = "TVIY"
)

// SecondaryStructure propensities
type SecondaryStructure struct {
	Helix float64 `json:"helix"`
	Sheet float64 `json:"sheet"`
	Coil  float64 `json:"coil"`
}

// Folding estimate of one protein
type Folding struct {
	SequenceLength        int                `json:"sequence_length"`
	HydrophobicRatio      float64            `json:"hydrophobic_ratio"`
	ChargedRatio          float64            `json:"charged_ratio"`
	SecondaryStructure    SecondaryStructure `json:"secondary_structure"`
	FoldingEnergy         float64            `json:"folding_energy"`
	FoldingTime           float64            `json:"folding_time"`
	Stability             float64            `json:"stability"`
	AggregationPropensity float64            `json:"aggregation_propensity"`
}

// Propensities helix and sheet scores scaled by 3/len and capped at 1; coil is
// the remainder. A residue that forms helices is not counted for sheets.
func Propensities(protein string) SecondaryStructure {
	if len(protein) == 0 {
		return SecondaryStructure{}
	}
	var helix, sheet float64
	for _, aa := range protein {
		switch {
		case strings.ContainsRune(helixFormer, aa):
			helix += 0.1
		case strings.ContainsRune(sheetFormer, aa):
			sheet += 0.1
		}
	}
	n := float64(len(protein))
	helix = min(1, helix/n*3)
	sheet = min(1, sheet/n*3)
	return SecondaryStructure{Helix: helix, Sheet: sheet, Coil: 1 - helix - sheet}
}

func ratio(protein, class string) float64 {
	if len(protein) == 0 {
		return 0
	}
	var count int
	for _, aa := range protein {
		if strings.ContainsRune(class, aa) {
			count++
		}
	}
	return float64(count) / float64(len(protein))
}

// Fold estimates folding properties of an amino-acid sequence
func (s *Simulator) Fold(protein string) Folding {
	protein = strings.ToUpper(protein)
	hydrophobic := ratio(protein, Hydrophobic)
	charged := ratio(protein, Charged)
	return Folding{
		SequenceLength:        len(protein),
		HydrophobicRatio:      hydrophobic,
		ChargedRatio:          charged,
		SecondaryStructure:    Propensities(protein),
		FoldingEnergy:         -50 - hydrophobic*100 + s.Noise.Normal(10),
		FoldingTime:           1 + float64(len(protein))/100 + s.Noise.Exponential(1),
		Stability:             util.Clamp01(0.7 + hydrophobic*0.3 - charged*0.2 + s.Noise.Normal(0.1)),
		AggregationPropensity: 0.3 + charged*0.2 + s.Noise.Normal(0.1),
	}
}
