// Package design holds the typed genetic parts and the ordered designs built from them.
package design

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPartType is returned when a part type name is not recognised
var ErrUnknownPartType = errors.New("unknown part type")

// PartType is the role of a part in a circuit
type PartType int

const (
	Other PartType = iota
	Promoter
	Gene
	Terminator
	RBS
	Operator
)

var partTypeNames = map[PartType]string{
	Promoter:   "promoter",
	Gene:       "gene",
	Terminator: "terminator",
	RBS:        "rbs",
	Operator:   "operator",
	Other:      "other",
}

func (t PartType) String() string {
	if name, ok := partTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PartType(%d)", int(t))
}

// ParsePartType is case-insensitive
func ParsePartType(s string) (PartType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range partTypeNames {
		if name == s {
			return t, nil
		}
	}
	return Other, fmt.Errorf("%w: %q", ErrUnknownPartType, s)
}

func (t PartType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText maps names outside the enum (cds, origin, ...) to Other
func (t *PartType) UnmarshalText(text []byte) error {
	*t, _ = ParsePartType(string(text))
	return nil
}

// Part is one typed DNA element
type Part struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Type        PartType       `json:"type" yaml:"type"`
	Sequence    string         `json:"sequence" yaml:"sequence"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Source      string         `json:"source,omitempty" yaml:"source,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// NewPart upper-cases the sequence; validity is not checked here
func NewPart(id, name string, typ PartType, sequence string) Part {
	return Part{
		ID:       id,
		Name:     name,
		Type:     typ,
		Sequence: strings.ToUpper(sequence),
	}
}

// Design is an ordered 5'->3' arrangement of parts
type Design struct {
	ID          string         `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Parts       []Part         `json:"parts" yaml:"parts"`
	Metadata    map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// FullSequence concatenates part sequences in order
func (d *Design) FullSequence() string {
	var b strings.Builder
	for _, p := range d.Parts {
		b.WriteString(p.Sequence)
	}
	return b.String()
}

func (d *Design) Length() int {
	var n int
	for _, p := range d.Parts {
		n += len(p.Sequence)
	}
	return n
}

// Types returns the part types in order
func (d *Design) Types() []PartType {
	types := make([]PartType, len(d.Parts))
	for i, p := range d.Parts {
		types[i] = p.Type
	}
	return types
}

// Validate checks the structural invariants: unique part ids
func (d *Design) Validate() error {
	seen := make(map[string]bool, len(d.Parts))
	for i, p := range d.Parts {
		if p.ID == "" {
			return fmt.Errorf("part %d (%s): empty id", i, p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("part %d (%s): duplicate id %q", i, p.Name, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
