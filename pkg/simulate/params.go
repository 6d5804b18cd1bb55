package simulate

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrUnknownEnvironment = errors.New("unknown environment")
	ErrUnknownHost        = errors.New("unknown host organism")
)

// Environment the culture is grown in
type Environment string

const (
	Standard     Environment = "standard"
	NutrientRich Environment = "nutrient-rich"
	Minimal      Environment = "minimal"
	Stress       Environment = "stress"
)

var Environments = []Environment{Standard, NutrientRich, Minimal, Stress}

// ParseEnvironment is case-insensitive
func ParseEnvironment(s string) (Environment, error) {
	e := Environment(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Environments, e) {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
	}
	return e, nil
}

// Host chassis organism
type Host string

const (
	EColi     Host = "ecoli"
	Yeast     Host = "yeast"
	Mammalian Host = "mammalian"
	Plant     Host = "plant"
)

var Hosts = []Host{EColi, Yeast, Mammalian, Plant}

// ParseHost is case-insensitive
func ParseHost(s string) (Host, error) {
	h := Host(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Hosts, h) {
		return "", fmt.Errorf("%w: %q", ErrUnknownHost, s)
	}
	return h, nil
}

// defaults
const (
	DefaultTimePoints  = 20
	DefaultTemperature = 37.0
)

// Parameters of one run
type Parameters struct {
	TimePoints  int         `json:"time_points"`
	Environment Environment `json:"environment"`
	Host        Host        `json:"host_organism"`
	// Temperature in Celsius
	Temperature float64 `json:"temperature"`
}

func DefaultParameters() Parameters {
	return Parameters{
		TimePoints:  DefaultTimePoints,
		Environment: Standard,
		Host:        EColi,
		Temperature: DefaultTemperature,
	}
}

// normalize fills a non-positive TimePoints with the default
func (p Parameters) normalize() Parameters {
	if p.TimePoints <= 0 {
		p.TimePoints = DefaultTimePoints
	}
	return p
}
