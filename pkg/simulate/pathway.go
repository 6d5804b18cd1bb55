package simulate

import (
	"log/slog"

	"github.com/liserjrqlxue/bioforge/pkg/design"
)

// DesignResult one step of a pathway
type DesignResult struct {
	DesignID          string  `json:"design_id"`
	DesignName        string  `json:"design_name"`
	GrowthRate        float64 `json:"growth_rate"`
	ProteinExpression float64 `json:"protein_expression"`
	MetabolicBurden   float64 `json:"metabolic_burden"`
}

// PathwaySeries of a chained pathway
type PathwaySeries struct {
	Time         []int     `json:"time"`
	Substrate    []float64 `json:"substrate"`
	Intermediate []float64 `json:"intermediate"`
	Product      []float64 `json:"product"`
}

// PathwayResult of designs chained in order
type PathwayResult struct {
	PathwayEfficiency float64        `json:"pathway_efficiency"`
	DesignResults     []DesignResult `json:"design_results"`
	TimeSeries        PathwaySeries  `json:"time_series"`
	// BottleneckIndex first design with the lowest expression, -1 without designs
	BottleneckIndex int     `json:"bottleneck_index"`
	Yield           float64 `json:"yield"`
	Productivity    float64 `json:"productivity"`
}

// Efficiency avg(expression) * (1 - avg(burden)), 0 for no designs
func Efficiency(results []DesignResult) float64 {
	if len(results) == 0 {
		return 0
	}
	var expression, burden float64
	for _, r := range results {
		expression += r.ProteinExpression
		burden += r.MetabolicBurden
	}
	n := float64(len(results))
	return expression / n * (1 - burden/n)
}

// Bottleneck first index of the minimum expression, -1 for no designs
func Bottleneck(results []DesignResult) int {
	var idx = -1
	for i, r := range results {
		if idx == -1 || r.ProteinExpression < results[idx].ProteinExpression {
			idx = i
		}
	}
	return idx
}

// Pathway simulates each design under p and chains them
func (s *Simulator) Pathway(designs []design.Design, p Parameters) PathwayResult {
	p = p.normalize()
	var results = make([]DesignResult, 0, len(designs))
	for i := range designs {
		d := &designs[i]
		r := s.Run(d, p)
		results = append(results, DesignResult{
			DesignID:          d.ID,
			DesignName:        d.Name,
			GrowthRate:        r.GrowthRate,
			ProteinExpression: r.ProteinExpression,
			MetabolicBurden:   r.MetabolicBurden,
		})
	}

	efficiency := Efficiency(results)
	n := p.TimePoints
	slog.Debug("pathway", "designs", len(designs), "efficiency", efficiency)

	return PathwayResult{
		PathwayEfficiency: efficiency,
		DesignResults:     results,
		TimeSeries: PathwaySeries{
			Time:         timeAxis(n),
			Substrate:    SubstrateCurve(n, efficiency, s.Noise),
			Intermediate: IntermediateCurve(n, efficiency, len(designs), s.Noise),
			Product:      ProductCurve(n, efficiency, s.Noise),
		},
		BottleneckIndex: Bottleneck(results),
		Yield:           efficiency*0.8 + s.Noise.Normal(0.05),
		Productivity:    efficiency*0.7 + s.Noise.Normal(0.05),
	}
}
