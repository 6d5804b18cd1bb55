package util

import (
	"slices"
	"strings"
)

// 密码子表 (标准遗传密码)
var CodonTable = map[string]string{
	"TTT": "F", "TTC": "F", "TTA": "L", "TTG": "L",
	"CTT": "L", "CTC": "L", "CTA": "L", "CTG": "L",
	"ATT": "I", "ATC": "I", "ATA": "I", "ATG": "M",
	"GTT": "V", "GTC": "V", "GTA": "V", "GTG": "V",
	"TCT": "S", "TCC": "S", "TCA": "S", "TCG": "S",
	"CCT": "P", "CCC": "P", "CCA": "P", "CCG": "P",
	"ACT": "T", "ACC": "T", "ACA": "T", "ACG": "T",
	"GCT": "A", "GCC": "A", "GCA": "A", "GCG": "A",
	"TAT": "Y", "TAC": "Y", "TAA": "*", "TAG": "*",
	"CAT": "H", "CAC": "H", "CAA": "Q", "CAG": "Q",
	"AAT": "N", "AAC": "N", "AAA": "K", "AAG": "K",
	"GAT": "D", "GAC": "D", "GAA": "E", "GAG": "E",
	"TGT": "C", "TGC": "C", "TGA": "*", "TGG": "W",
	"CGT": "R", "CGC": "R", "CGA": "R", "CGG": "R",
	"AGT": "S", "AGC": "S", "AGA": "R", "AGG": "R",
	"GGT": "G", "GGC": "G", "GGA": "G", "GGG": "G",
}

// Translate DNA转氨基酸序列; a trailing partial codon is dropped and
// unknown codons become X.
func Translate(dna string) string {
	dna = strings.ToUpper(dna)
	var protein strings.Builder
	for i := 0; i+3 <= len(dna); i += 3 {
		aa, ok := CodonTable[dna[i:i+3]]
		if !ok {
			aa = "X"
		}
		protein.WriteString(aa)
	}
	return protein.String()
}

// IsStopCodon reports whether codon is TAA, TAG or TGA
func IsStopCodon(codon string) bool {
	return slices.Contains(StopCodons, codon)
}

// frameSeq returns seq shifted by frame and cut to a multiple of 3
func frameSeq(seq string, frame int) string {
	if frame >= len(seq) {
		return ""
	}
	s := seq[frame:]
	return s[:len(s)-len(s)%3]
}

// RareCodons returns the rare codons present in any of the three forward
// frames, deduplicated in order of first encounter.
func RareCodons(seq string) []string {
	seq = strings.ToUpper(seq)
	var found []string
	for frame := 0; frame < 3; frame++ {
		s := frameSeq(seq, frame)
		for i := 0; i < len(s); i += 3 {
			codon := s[i : i+3]
			if slices.Contains(RareCodonTable, codon) && !slices.Contains(found, codon) {
				found = append(found, codon)
			}
		}
	}
	return found
}
