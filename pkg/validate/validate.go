// Package validate reports on the validity of a raw DNA sequence.
package validate

import (
	"fmt"
	"strings"

	"github.com/liserjrqlxue/bioforge/pkg/util"
)

// GC bounds outside of which a warning is emitted
const (
	LowGC  = 0.3
	HighGC = 0.7
)

// Report of a single sequence
type Report struct {
	Name           string   `json:"name,omitempty"`
	Valid          bool     `json:"valid"`
	SequenceLength int      `json:"sequence_length"`
	GCContent      float64  `json:"gc_content"`
	ORFCount       int      `json:"orf_count"`
	Issues         []string `json:"issues"`
	Warnings       []string `json:"warnings"`
	Suggestions    []string `json:"suggestions"`
}

func (r *Report) warn(warning, suggestion string) {
	r.Warnings = append(r.Warnings, warning)
	r.Suggestions = append(r.Suggestions, suggestion)
}

// Sequence validates seq. Invalid characters make an invalid report and skip
// every other check; otherwise the report is valid whatever the warnings.
func Sequence(seq, name string) Report {
	seq = strings.ToUpper(seq)
	var r = Report{
		Name:           name,
		SequenceLength: len(seq),
		Issues:         []string{},
		Warnings:       []string{},
		Suggestions:    []string{},
	}

	if !util.ACGT.MatchString(seq) {
		var bad []string
		for _, c := range util.InvalidBases(seq) {
			bad = append(bad, string(c))
		}
		r.Issues = append(r.Issues, "Invalid DNA characters found: "+strings.Join(bad, ", "))
		r.Suggestions = append(r.Suggestions, "Replace invalid characters with A, T, G, or C")
		return r
	}
	r.Valid = true

	orfs := util.FindORFs(seq, util.MinORFLength)
	r.ORFCount = len(orfs)
	r.GCContent = util.GCContent(seq)

	if polys := util.FindHomopolymers(seq, util.MinHomopolymerRun); len(polys) > 0 {
		var labels []string
		for _, p := range polys {
			labels = append(labels, p.Label())
		}
		r.warn(
			"Homopolymer regions found: "+strings.Join(labels, ", "),
			"Consider breaking up homopolymer regions to improve stability",
		)
	}

	switch {
	case r.GCContent < LowGC:
		r.warn(
			fmt.Sprintf("Low GC content (%.2f)", r.GCContent),
			"Consider increasing GC content for stability",
		)
	case r.GCContent > HighGC:
		r.warn(
			fmt.Sprintf("High GC content (%.2f)", r.GCContent),
			"Consider decreasing GC content for easier handling",
		)
	}

	if len(orfs) > 0 {
		if rare := util.RareCodons(seq); len(rare) > 0 {
			r.warn(
				"Rare codons found: "+strings.Join(rare, ", "),
				"Consider codon optimization to improve expression",
			)
		}
	} else {
		r.warn(
			"No open reading frames found",
			"Check if this is intentional or if there's a frameshift",
		)
	}

	return r
}
