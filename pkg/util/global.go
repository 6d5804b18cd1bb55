package util

import "regexp"

// const
const (
	// MinORFLength 有效 ORF 最短长度 (nt)
	MinORFLength = 30
	// MinHomopolymerRun 报告的最短单碱基重复
	MinHomopolymerRun = 6

	StartCodon = "ATG"
)

var (
	StopCodons = []string{"TAA", "TAG", "TGA"}

	// E. coli rare codons
	RareCodonTable = []string{"CTA", "ATA", "CGA", "CGG", "AGG", "AGA", "CCC", "TCG"}

	// DangerousPatterns placeholder toxin, resistance and virulence signatures
	DangerousPatterns = []string{
		// toxin genes
		"ATGCCGGTGATGCGGTGCG",
		"ATGGCGCAACTGCAACGCG",
		// antibiotic resistance
		"ATGGCGACCGAACGCGCGG",
		// virulence factor
		"ATGCGCGTGCAACTGCGCG",
	}
)

// regexp
var (
	// ACGT valid sequence
	ACGT = regexp.MustCompile(`^[ACGT]*$`)
)
