package simulate

import (
	"math"

	"github.com/liserjrqlxue/bioforge/pkg/util"
)

// CurveSigma of the Gaussian noise added to every generated curve
const CurveSigma = 0.02

// initial population of the logistic growth curve, carrying capacity 1
const initialPopulation = 0.1

func timeAxis(n int) []int {
	axis := make([]int, n)
	for i := range axis {
		axis[i] = i
	}
	return axis
}

// curve evaluates f at t=0..n-1, adds noise and clips to [0,1]
func curve(n int, noise Noise, f func(t float64) float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = util.Clamp01(f(float64(i)) + noise.Normal(CurveSigma))
	}
	return values
}

// GrowthCurve logistic N(t) = 1 / (1 + ((1-N0)/N0) e^(-rt)), r = rate/2
func GrowthCurve(n int, rate float64, noise Noise) []float64 {
	r := rate * 0.5
	return curve(n, noise, func(t float64) float64 {
		return 1 / (1 + (1-initialPopulation)/initialPopulation*math.Exp(-r*t))
	})
}

// ProteinCurve sigmoid around 0.3n; zero without an expression system
func ProteinCurve(n int, expression float64, expressed bool, noise Noise) []float64 {
	if !expressed {
		return make([]float64, n)
	}
	k := expression * 0.5
	midpoint := float64(n) * 0.3
	return curve(n, noise, func(t float64) float64 {
		return expression / (1 + math.Exp(-k*(t-midpoint)))
	})
}

// MetaboliteCurve saturating exponential; zero without a gene
func MetaboliteCurve(n int, burden float64, hasGene bool, noise Noise) []float64 {
	if !hasGene {
		return make([]float64, n)
	}
	k := burden * 0.4
	return curve(n, noise, func(t float64) float64 {
		return burden * (1 - math.Exp(-k*t/float64(n)))
	})
}

// SubstrateCurve decays from 1
func SubstrateCurve(n int, efficiency float64, noise Noise) []float64 {
	k := efficiency * 0.5
	return curve(n, noise, func(t float64) float64 {
		return math.Exp(-k * t / float64(n))
	})
}

// IntermediateCurve rises then falls; zero for fewer than two steps
func IntermediateCurve(n int, efficiency float64, steps int, noise Noise) []float64 {
	if steps <= 1 {
		return make([]float64, n)
	}
	k1 := efficiency * 0.6
	k2 := efficiency * 0.4
	return curve(n, noise, func(t float64) float64 {
		return 0.5 * (1 - math.Exp(-k1*t/float64(n))) * math.Exp(-k2*t/float64(n))
	})
}

// ProductCurve saturates at efficiency
func ProductCurve(n int, efficiency float64, noise Noise) []float64 {
	k := efficiency * 0.3
	return curve(n, noise, func(t float64) float64 {
		return efficiency * (1 - math.Exp(-k*t/float64(n)))
	})
}
