package util

import (
	"fmt"
	"strings"
)

// ORF start codon to first in-frame stop codon, stop included
type ORF struct {
	Feature
	Frame int `json:"frame"`
}

// FindORFs scans the three forward frames. Every codon-aligned ATG opens a
// candidate that ends at the first in-frame stop; the candidate is kept only
// if it is at least minLength long, and is never extended past that stop.
// Scanning resumes at the codon after each start, so nested starts sharing a
// stop each produce their own ORF.
func FindORFs(seq string, minLength int) []ORF {
	seq = strings.ToUpper(seq)
	var orfs []ORF
	for frame := 0; frame < 3; frame++ {
		s := frameSeq(seq, frame)
		for i := 0; i < len(s); i += 3 {
			if s[i:i+3] != StartCodon {
				continue
			}
			for j := i; j < len(s); j += 3 {
				if !IsStopCodon(s[j : j+3]) {
					continue
				}
				if j+3-i >= minLength {
					orfs = append(orfs, ORF{
						Feature: Feature{
							Start: frame + i,
							End:   frame + j + 3,
							Name:  fmt.Sprintf("ORF:%d:%d", frame, j+3-i),
							Seq:   s[i : j+3],
						},
						Frame: frame,
					})
				}
				break
			}
		}
	}
	return orfs
}

// LongestORF first encountered wins ties; ok is false for an empty list
func LongestORF(orfs []ORF) (longest ORF, ok bool) {
	for i, orf := range orfs {
		if i == 0 || orf.Len() > longest.Len() {
			longest = orf
			ok = true
		}
	}
	return
}
