// Package engine is the single entry point to the analysis components.
//
// Validation, prediction, safety assessment and simulation results are
// cached under a key derived from the operation and its input; the cheap
// noisy supplements (screening, toxicity, folding) are computed every time.
package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/liserjrqlxue/bioforge/pkg/cache"
	"github.com/liserjrqlxue/bioforge/pkg/design"
	"github.com/liserjrqlxue/bioforge/pkg/metrics"
	"github.com/liserjrqlxue/bioforge/pkg/predict"
	"github.com/liserjrqlxue/bioforge/pkg/safety"
	"github.com/liserjrqlxue/bioforge/pkg/simulate"
	"github.com/liserjrqlxue/bioforge/pkg/validate"
)

// operation names, used as cache key prefixes and metric labels
const (
	OpValidate = "validate"
	OpPredict  = "predict"
	OpSafety   = "safety"
	OpSimulate = "simulate"
	OpPathway  = "pathway"
	OpScreen   = "screen"
	OpToxicity = "toxicity"
	OpFold     = "fold"
)

// Engine is safe for concurrent use
type Engine struct {
	cache     cache.Cache
	assessor  *safety.Assessor
	simulator *simulate.Simulator
	logger    *slog.Logger
}

type Option func(*Engine)

func WithCache(c cache.Cache) Option {
	return func(e *Engine) { e.cache = c }
}

func WithNoise(n simulate.Noise) Option {
	return func(e *Engine) { e.simulator = simulate.New(n) }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New engine; defaults to an in-memory cache, clock-seeded noise and slog.Default
func New(opts ...Option) *Engine {
	e := &Engine{
		cache:     cache.NewMemory(cache.DefaultTTL),
		assessor:  safety.NewAssessor(),
		simulator: simulate.New(simulate.NewNoise(0)),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Close releases the cache backend
func (e *Engine) Close() error {
	if c, ok := e.cache.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Key is op_<sha256 of the JSON encoding of input>
func Key(op string, input any) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("encode %s input: %w", op, err)
	}
	sum := sha256.Sum256(raw)
	return op + "_" + hex.EncodeToString(sum[:]), nil
}

// cached looks input up under op, computing and storing it on a miss.
// Cache failures are logged and fall through to compute. The value is
// returned as decoded from its stored form, so a hit and the original miss
// are indistinguishable.
func cached[T any](e *Engine, op string, input any, compute func() T) T {
	defer metrics.ObserveDuration(op, time.Now())

	key, err := Key(op, input)
	if err != nil {
		e.logger.Warn("cache key", "op", op, "error", err)
		metrics.RecordCache(op, metrics.Error)
		return compute()
	}

	entry, ok, err := e.cache.Get(key)
	switch {
	case err != nil:
		e.logger.Warn("cache get", "op", op, "key", key, "error", err)
		metrics.RecordCache(op, metrics.Error)
	case ok:
		var v T
		if err := json.Unmarshal(entry.Data, &v); err == nil {
			e.logger.Debug("cache hit", "op", op, "key", key, "created_at", entry.CreatedAt)
			metrics.RecordCache(op, metrics.Hit)
			return v
		}
		e.logger.Warn("cache decode", "op", op, "key", key, "error", err)
		metrics.RecordCache(op, metrics.Error)
	default:
		metrics.RecordCache(op, metrics.Miss)
	}

	v := compute()
	data, err := json.Marshal(v)
	if err != nil {
		e.logger.Warn("cache encode", "op", op, "error", err)
		return v
	}
	if err := e.cache.Put(key, data); err != nil {
		e.logger.Warn("cache put", "op", op, "key", key, "error", err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}

func (e *Engine) Validate(seq string) validate.Report {
	return cached(e, OpValidate, seq, func() validate.Report {
		return validate.Sequence(seq, "")
	})
}

// PredictFunction embedding may be nil
func (e *Engine) PredictFunction(seq string, embedding []float32) predict.Prediction {
	input := struct {
		Sequence  string    `json:"sequence"`
		Embedding []float32 `json:"embedding,omitempty"`
	}{seq, embedding}
	return cached(e, OpPredict, input, func() predict.Prediction {
		return predict.Predict(seq, embedding)
	})
}

func (e *Engine) AssessSafety(d *design.Design) safety.Assessment {
	return cached(e, OpSafety, d, func() safety.Assessment {
		return e.assessor.Assess(d)
	})
}

func (e *Engine) Simulate(d *design.Design, p simulate.Parameters) simulate.Result {
	input := struct {
		Design     *design.Design      `json:"design"`
		Parameters simulate.Parameters `json:"parameters"`
	}{d, p}
	return cached(e, OpSimulate, input, func() simulate.Result {
		return e.simulator.Run(d, p)
	})
}

func (e *Engine) SimulatePathway(designs []design.Design, p simulate.Parameters) simulate.PathwayResult {
	input := struct {
		Designs    []design.Design     `json:"designs"`
		Parameters simulate.Parameters `json:"parameters"`
	}{designs, p}
	return cached(e, OpPathway, input, func() simulate.PathwayResult {
		return e.simulator.Pathway(designs, p)
	})
}

func (e *Engine) ScreenSequence(seq string) safety.SequenceScreen {
	defer metrics.ObserveDuration(OpScreen, time.Now())
	return e.assessor.Screen(seq)
}

func (e *Engine) PredictToxicity(protein string) predict.ToxicityReport {
	defer metrics.ObserveDuration(OpToxicity, time.Now())
	return predict.Toxicity(protein)
}

func (e *Engine) FoldProtein(protein string) simulate.Folding {
	defer metrics.ObserveDuration(OpFold, time.Now())
	return e.simulator.Fold(protein)
}
