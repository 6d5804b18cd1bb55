// Package simulate produces heuristic expression dynamics for designs.
//
// Scalar rates start from fixed baselines and receive independent additive
// adjustments for the parts present, the environment, the host, the
// temperature and the part order. Curves are generated from the adjusted
// rates; the rates themselves get one last uniform perturbation and are
// clamped to [0,1].
package simulate

import (
	"log/slog"
	"slices"

	"github.com/liserjrqlxue/bioforge/pkg/design"
	"github.com/liserjrqlxue/bioforge/pkg/topology"
	"github.com/liserjrqlxue/bioforge/pkg/util"
)

// Perturbation half-width of the final uniform noise on each rate
const Perturbation = 0.05

// optimal temperature window, Celsius
const (
	MinTemperature = 30.0
	MaxTemperature = 40.0
)

// Rates are the four scalar outputs of a simulation
type Rates struct {
	GrowthRate        float64 `json:"growth_rate"`
	ProteinExpression float64 `json:"protein_expression"`
	MetabolicBurden   float64 `json:"metabolic_burden"`
	Stability         float64 `json:"stability"`
}

// BaseRates before any adjustment
var BaseRates = Rates{
	GrowthRate:        0.5,
	ProteinExpression: 0.0,
	MetabolicBurden:   0.3,
	Stability:         0.7,
}

func (r *Rates) add(growth, expression, burden, stability float64) {
	r.GrowthRate += growth
	r.ProteinExpression += expression
	r.MetabolicBurden += burden
	r.Stability += stability
}

// TimeSeries of one design
type TimeSeries struct {
	Time       []int     `json:"time"`
	Growth     []float64 `json:"growth"`
	Protein    []float64 `json:"protein"`
	Metabolite []float64 `json:"metabolite"`
}

// Result of one simulation
type Result struct {
	Rates
	TimeSeries TimeSeries      `json:"time_series"`
	Parameters Parameters      `json:"parameters"`
	Topology   topology.Report `json:"topology"`
	Notes      []string        `json:"notes"`
}

// Simulator is safe for concurrent use when its Noise is
type Simulator struct {
	Noise Noise
}

// New with noise; nil means NoNoise
func New(noise Noise) *Simulator {
	if noise == nil {
		noise = NoNoise{}
	}
	return &Simulator{Noise: noise}
}

// Adjust applies every adjustment to BaseRates. Environment and host values
// outside the known sets apply nothing.
func Adjust(topo *topology.Report, p Parameters) Rates {
	var r = BaseRates
	if topo.HasPromoter {
		r.add(0.1, 0.3, 0, 0)
	}
	if topo.HasRBS {
		r.add(0, 0.2, 0, 0)
	}
	if topo.HasGene {
		r.add(0, 0.3, 0.2, 0)
	}
	if topo.HasTerminator {
		r.add(0, 0, 0, 0.2)
	}

	switch p.Environment {
	case NutrientRich:
		r.add(0.1, 0.1, 0, 0)
	case Minimal:
		r.add(-0.1, -0.1, 0, 0)
	case Stress:
		r.add(-0.2, 0, 0, -0.1)
	}

	switch p.Host {
	case Yeast:
		r.add(-0.05, -0.1, 0, 0)
	case Mammalian:
		r.add(-0.2, -0.2, 0, 0)
	case Plant:
		r.add(-0.3, -0.3, 0, 0)
	}

	if p.Temperature < MinTemperature || p.Temperature > MaxTemperature {
		r.add(-0.1, 0, 0, -0.1)
	}

	if topo.Penalized() {
		r.add(0, -0.2, 0, -0.2)
	}
	return r
}

func (s *Simulator) perturb(x float64) float64 {
	return util.Clamp01(x + s.Noise.Uniform(-Perturbation, Perturbation))
}

// Run simulates d under p
func (s *Simulator) Run(d *design.Design, p Parameters) Result {
	p = p.normalize()
	topo := topology.Check(d.Parts)
	rates := Adjust(&topo, p)
	slog.Debug("simulate", "design", d.Name, "parts", len(d.Parts), "environment", p.Environment, "host", p.Host)

	n := p.TimePoints
	series := TimeSeries{
		Time:       timeAxis(n),
		Growth:     GrowthCurve(n, rates.GrowthRate, s.Noise),
		Protein:    ProteinCurve(n, rates.ProteinExpression, topo.ExpressionSystem(), s.Noise),
		Metabolite: MetaboliteCurve(n, rates.MetabolicBurden, topo.HasGene, s.Noise),
	}

	rates = Rates{
		GrowthRate:        s.perturb(rates.GrowthRate),
		ProteinExpression: s.perturb(rates.ProteinExpression),
		MetabolicBurden:   s.perturb(rates.MetabolicBurden),
		Stability:         s.perturb(rates.Stability),
	}

	return Result{
		Rates:      rates,
		TimeSeries: series,
		Parameters: p,
		Topology:   topo,
		Notes:      slices.Clone(topo.Notes),
	}
}
