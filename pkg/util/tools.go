package util

import (
	"regexp"
	"slices"
	"strings"

	"github.com/liserjrqlxue/goUtil/textUtil"
)

// LoadInputSeq reads a plain sequence file, joining trimmed lines, upper-cased
func LoadInputSeq(path string) string {
	var sequence strings.Builder
	for _, line := range textUtil.File2Array(path) {
		sequence.WriteString(strings.TrimSpace(line))
	}
	return strings.ToUpper(sequence.String())
}

// GCContent fraction of G and C, 0 for an empty sequence
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	var gc = 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}

// InvalidBases characters outside ACGT (case-insensitive), in order of first appearance
func InvalidBases(seq string) []rune {
	var invalid []rune
	for _, c := range strings.ToUpper(seq) {
		switch c {
		case 'A', 'C', 'G', 'T':
			continue
		}
		if !slices.Contains(invalid, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// DangerousMotifs returns the patterns found in seq. Patterns are matched as
// case-insensitive regular expressions; one that fails to compile is matched literally.
func DangerousMotifs(seq string, patterns []string) []string {
	var matches []string
	for _, pattern := range patterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))
		}
		if re.MatchString(seq) {
			matches = append(matches, pattern)
		}
	}
	return matches
}

// ContainsAny reports whether s contains any of subs
func ContainsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Clamp01 restricts x to [0,1]
func Clamp01(x float64) float64 {
	return min(1, max(0, x))
}
