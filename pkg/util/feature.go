package util

import (
	"fmt"
	"strings"
)

// Feature is a half-open [Start,End) span on a sequence
type Feature struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Name  string `json:"name"`
	Seq   string `json:"seq,omitempty"`
}

// String in BED-like layout
func (f *Feature) String() string {
	return fmt.Sprintf("%d\t%d\t%s", f.Start, f.End, f.Name)
}

func (f *Feature) Len() int {
	return f.End - f.Start
}

// Homopolymer is a maximal run of one base
type Homopolymer struct {
	Feature
	Base byte `json:"base"`
	Run  int  `json:"run"`
}

// Label like Ax6
func (h Homopolymer) Label() string {
	return fmt.Sprintf("%cx%d", h.Base, h.Run)
}

// FindHomopolymers one left-to-right pass, one record per maximal run of at least minRun
func FindHomopolymers(seq string, minRun int) []Homopolymer {
	seq = strings.ToUpper(seq)
	var (
		polys []Homopolymer
		start = 0
	)
	emit := func(end int) {
		if run := end - start; run >= minRun {
			polys = append(polys, Homopolymer{
				Feature: Feature{
					Start: start,
					End:   end,
					Name:  fmt.Sprintf("Poly:%c:%d", seq[start], run),
				},
				Base: seq[start],
				Run:  run,
			})
		}
	}
	for i := 1; i < len(seq); i++ {
		if seq[i] != seq[start] {
			emit(i)
			start = i
		}
	}
	if len(seq) > 0 {
		// 最后一段
		emit(len(seq))
	}
	return polys
}

// HomopolymerBases returns the distinct bases of polys in ATGC order
func HomopolymerBases(polys []Homopolymer) []byte {
	var bases []byte
	for _, b := range []byte("ATGC") {
		for _, p := range polys {
			if p.Base == b {
				bases = append(bases, b)
				break
			}
		}
	}
	return bases
}
