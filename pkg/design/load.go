package design

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Decode reads one or more YAML (or JSON) documents, each a design.
// Sequences are upper-cased and missing design or part ids get a name-based
// UUID, so decoding the same source twice yields the same ids.
func Decode(r io.Reader) ([]Design, error) {
	var (
		designs []Design
		dec     = yaml.NewDecoder(r)
	)
	for {
		var d Design
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode design %d: %w", len(designs), err)
		}
		d.normalize(len(designs))
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("design %q: %w", d.Name, err)
		}
		designs = append(designs, d)
	}
	return designs, nil
}

// LoadFile decodes every design in path
func LoadFile(path string) ([]Design, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open design file: %w", err)
	}
	defer f.Close()

	designs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(designs) == 0 {
		return nil, fmt.Errorf("%s: no design found", path)
	}
	return designs, nil
}

// normalize index is the position of d in its source
func (d *Design) normalize(index int) {
	for i := range d.Parts {
		p := &d.Parts[i]
		p.Sequence = strings.ToUpper(strings.Join(strings.Fields(p.Sequence), ""))
	}
	if d.ID == "" {
		d.ID = stableID(strconv.Itoa(index), d.Name, d.FullSequence())
	}
	for i := range d.Parts {
		p := &d.Parts[i]
		if p.ID == "" {
			p.ID = stableID(d.ID, strconv.Itoa(i), p.Name, p.Sequence)
		}
	}
}

func stableID(fields ...string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.Join(fields, "\x00"))).String()
}
