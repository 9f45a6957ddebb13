package problem

import "github.com/katalvlaran/nlsat/geom"

// Net is one net: two terminal cells carrying the same label. ID is the
// zero-based position of this net in Problem.Nets (the order nets were
// declared in); Label is the file's LINE#<label> number, carried through
// verbatim and never recomputed from ID. Start/End order carries no
// meaning.
type Net struct {
	ID         int
	Label      int
	Start, End geom.Point
}

// Problem is the fully-parsed input: a Dimension, an ordered list of Nets,
// and an optional list of Vias keyed by unique label. Problem is built up
// via NewProblem + AddNet/AddVia and is treated as immutable by every
// downstream package once handed to graph.NewGraph.
type Problem struct {
	Dimension geom.Dimension
	Nets      []Net
	Vias      []geom.Via

	netByLabel map[int]int    // label -> index into Nets
	viaByLabel map[string]int // label -> index into Vias
}

// NewProblem constructs an empty Problem over the given Dimension.
func NewProblem(dim geom.Dimension) *Problem {
	return &Problem{
		Dimension:  dim,
		netByLabel: make(map[int]int),
		viaByLabel: make(map[string]int),
	}
}

// AddNet appends a net with the given file label and terminal points.
// Returns ErrDuplicateNetLabel if label was already used.
func (p *Problem) AddNet(label int, start, end geom.Point) error {
	if _, exists := p.netByLabel[label]; exists {
		return ErrDuplicateNetLabel
	}
	n := Net{ID: len(p.Nets), Label: label, Start: start, End: end}
	p.netByLabel[label] = n.ID
	p.Nets = append(p.Nets, n)

	return nil
}

// AddVia appends a via. Returns ErrDuplicateViaLabel if the via's label
// was already used.
func (p *Problem) AddVia(v geom.Via) error {
	if _, exists := p.viaByLabel[v.Label]; exists {
		return ErrDuplicateViaLabel
	}
	p.viaByLabel[v.Label] = len(p.Vias)
	p.Vias = append(p.Vias, v)

	return nil
}

// NetCount returns the number of nets.
func (p *Problem) NetCount() int { return len(p.Nets) }

// ViaCount returns the number of vias.
func (p *Problem) ViaCount() int { return len(p.Vias) }

// NetByLabel looks up a net by its file label (not its ID).
func (p *Problem) NetByLabel(label int) (Net, bool) {
	idx, ok := p.netByLabel[label]
	if !ok {
		return Net{}, false
	}

	return p.Nets[idx], true
}

// ViaByLabel looks up a via by its label.
func (p *Problem) ViaByLabel(label string) (geom.Via, bool) {
	idx, ok := p.viaByLabel[label]
	if !ok {
		return geom.Via{}, false
	}

	return p.Vias[idx], true
}

// DetectedFormat returns the auto-detected Format for this Problem's
// Dimension and via count (see DetectFormat).
func (p *Problem) DetectedFormat() Format {
	return DetectFormat(p.Dimension.Depth, len(p.Vias))
}
