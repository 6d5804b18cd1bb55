package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liserjrqlxue/bioforge/pkg/predict"
	"github.com/liserjrqlxue/bioforge/pkg/safety"
	"github.com/liserjrqlxue/bioforge/pkg/simulate"
	"github.com/liserjrqlxue/bioforge/pkg/validate"
)

var (
	gfpDesign  = filepath.Join("..", "..", "testdata", "gfp_circuit.yaml")
	kanrDesign = filepath.Join("..", "..", "testdata", "kanr_pathway.yaml")
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func decode[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestValidateCmd(t *testing.T) {
	out, _, err := execute(t, "validate", "ATGC")
	require.NoError(t, err)
	r := decode[validate.Report](t, out)
	assert.True(t, r.Valid)
	assert.Equal(t, 4, r.SequenceLength)

	file := filepath.Join(t.TempDir(), "seq.txt")
	require.NoError(t, os.WriteFile(file, []byte("atgc\nGGCN\n"), 0o644))
	out, _, err = execute(t, "validate", "-i", file)
	require.NoError(t, err)
	r = decode[validate.Report](t, out)
	assert.False(t, r.Valid)
	assert.Equal(t, []string{"Invalid DNA characters found: N"}, r.Issues)

	_, _, err = execute(t, "validate")
	assert.Error(t, err)

	_, _, err = execute(t, "validate", "-i", filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestPredictCmd(t *testing.T) {
	out, _, err := execute(t, "predict", "--embedding", "0.1,0.2", predict.GFPSignature+"GCCGCCTAA")
	require.NoError(t, err)
	p := decode[predict.Prediction](t, out)
	assert.Equal(t, "Green Fluorescent Protein (GFP)", p.Prediction)
}

func TestProteinCmds(t *testing.T) {
	out, _, err := execute(t, "toxicity", "RRRRACDE")
	require.NoError(t, err)
	assert.Equal(t, "Medium", decode[predict.ToxicityReport](t, out).RiskLevel)

	out, _, err = execute(t, "fold", "--deterministic", "AVT")
	require.NoError(t, err)
	f := decode[simulate.Folding](t, out)
	assert.InDelta(t, 1.03, f.FoldingTime, 1e-12)
}

func TestScreenCmd(t *testing.T) {
	out, _, err := execute(t, "screen", "AAAAAAATTTTTTGC")
	require.NoError(t, err)
	s := decode[safety.SequenceScreen](t, out)
	assert.Equal(t, []string{"Ax6+", "Tx6+"}, s.Homopolymers)
}

func TestSafetyCmd(t *testing.T) {
	out, _, err := execute(t, "safety", kanrDesign)
	require.NoError(t, err)
	a := decode[safety.Assessment](t, out)
	assert.InDelta(t, 0.7, a.Overall, 1e-9)
	assert.InDelta(t, 0.4, a.Biocontainment, 1e-9)

	_, _, err = execute(t, "safety", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSimulateCmd(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "gfp.png")
	out, _, err := execute(t, "simulate", "--deterministic", "--time-points", "30", "--plot", plot, gfpDesign)
	require.NoError(t, err)

	r := decode[simulate.Result](t, out)
	assert.InDelta(t, 0.6, r.GrowthRate, 1e-9)
	assert.InDelta(t, 0.8, r.ProteinExpression, 1e-9)
	assert.InDelta(t, 0.5, r.MetabolicBurden, 1e-9)
	assert.InDelta(t, 0.9, r.Stability, 1e-9)
	assert.Len(t, r.TimeSeries.Time, 30)
	assert.FileExists(t, plot)

	_, _, err = execute(t, "simulate", "--environment", "lunar", gfpDesign)
	assert.ErrorIs(t, err, simulate.ErrUnknownEnvironment)
}

func TestPathwayCmd(t *testing.T) {
	out, stderr, err := execute(t, "pathway", "--deterministic", "--metrics", "--cache-backend", "badger",
		"--cache-path", t.TempDir(), gfpDesign, kanrDesign)
	require.NoError(t, err)

	r := decode[simulate.PathwayResult](t, out)
	require.Len(t, r.DesignResults, 2)
	assert.Equal(t, "gfp-reporter", r.DesignResults[0].DesignID)
	assert.Equal(t, "KanR selection stage", r.DesignResults[1].DesignName)
	assert.InDelta(t, 0.4, r.PathwayEfficiency, 1e-9)
	assert.Contains(t, stderr, "bioforge_cache_requests_total")
}

func TestPlotPath(t *testing.T) {
	assert.Equal(t, "out.png", plotPath("out.png", 0, 1))
	assert.Equal(t, "dir/out.2.png", plotPath("dir/out.png", 1, 3))
}
