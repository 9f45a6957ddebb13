package encoder

import (
	"github.com/katalvlaran/nlsat/graph"
	"github.com/katalvlaran/nlsat/problem"
	"github.com/katalvlaran/nlsat/satsolver"
)

// Encoder holds every SAT variable allocated for one encoding attempt,
// keyed the way the rest of the package (and the decoder) expects:
// edgeVars[edge.ID], nodeVars[node.ID][bit], viaNetVars[netID][viaID],
// uVars[node.ID]. Variable allocation order is deterministic: edges in
// edge-id order, then node label vectors in node-id order, then via
// binding variables in (net,via) lexicographic order, then optional
// U-variables in node-id order.
type Encoder struct {
	graph  *graph.Graph
	solver satsolver.Solver
	opts   Options

	labelCount int // K: distinct label count this graph's nodes range over

	edgeVars   []satsolver.Var
	nodeVars   [][]satsolver.Var
	viaNetVars [][]satsolver.Var // [netID][viaID], zero-value var where incompatible
	uVars      []satsolver.Var   // empty when not needed; uVars[n] valid iff nonzero-populated
	hasUVar    []bool
}

// NewEncoder allocates every variable this Options value requires over
// g, in the order described on Encoder.
func NewEncoder(g *graph.Graph, s satsolver.Solver, opts Options) *Encoder {
	e := &Encoder{graph: g, solver: s, opts: opts}

	if g.Format == problem.FormatADC2016 {
		e.labelCount = g.LabelNum()
	} else {
		e.labelCount = g.NetCount()
	}

	e.edgeVars = make([]satsolver.Var, len(g.Edges))
	for i := range g.Edges {
		e.edgeVars[i] = s.NewVar()
	}

	width := e.labelWidth(e.labelCount)
	e.nodeVars = make([][]satsolver.Var, len(g.Nodes))
	for i := range g.Nodes {
		vars := make([]satsolver.Var, width)
		for b := range vars {
			vars[b] = s.NewVar()
		}
		e.nodeVars[i] = vars
	}

	if g.Format == problem.FormatADC2016 {
		// Allocate in (net,via) lexicographic order over every
		// compatible pair, keyed by via id per net for O(1) lookup.
		perNet := make([]map[int]satsolver.Var, g.NetCount())
		for netID := 0; netID < g.NetCount(); netID++ {
			perNet[netID] = make(map[int]satsolver.Var)
		}
		viaCount := g.ViaCount()
		for viaID := 0; viaID < viaCount; viaID++ {
			nets, _ := g.ViaNets(viaID)
			for _, netID := range nets {
				perNet[netID][viaID] = s.NewVar()
			}
		}
		e.viaNetVars = make([][]satsolver.Var, g.NetCount())
		for netID := 0; netID < g.NetCount(); netID++ {
			row := make([]satsolver.Var, viaCount)
			for viaID, v := range perNet[netID] {
				row[viaID] = v
			}
			e.viaNetVars[netID] = row
		}
	}

	if opts.needsUVars() {
		e.uVars = make([]satsolver.Var, len(g.Nodes))
		e.hasUVar = make([]bool, len(g.Nodes))
		for i := range g.Nodes {
			if !g.Nodes[i].IsBlock() {
				e.uVars[i] = s.NewVar()
				e.hasUVar[i] = true
			}
		}
	}

	return e
}

// EdgeVar returns the selection variable for edge e.
func (e *Encoder) EdgeVar(edgeID int) satsolver.Var { return e.edgeVars[edgeID] }

// NodeVars returns the label-vector variables for node n.
func (e *Encoder) NodeVars(nodeID int) []satsolver.Var { return e.nodeVars[nodeID] }

// ViaNetVar returns the binding variable for (netID, viaID), and false
// if that pair was never allocated (the via is not compatible with the
// net).
func (e *Encoder) ViaNetVar(netID, viaID int) (satsolver.Var, bool) {
	row := e.viaNetVars[netID]
	if viaID < 0 || viaID >= len(row) {
		return 0, false
	}
	v := row[viaID]

	return v, v != 0
}

// UVar returns the "node used" variable for node n, if one was
// allocated.
func (e *Encoder) UVar(nodeID int) (satsolver.Var, bool) {
	if e.hasUVar == nil || !e.hasUVar[nodeID] {
		return 0, false
	}

	return e.uVars[nodeID], true
}

// incidentVars returns the edge-selection literals of node n's incident
// edges, in Node.Incident order.
func (e *Encoder) incidentVars(nodeID int) []satsolver.Lit {
	inc := e.graph.Nodes[nodeID].Incident
	lits := make([]satsolver.Lit, len(inc))
	for i, edgeID := range inc {
		lits[i] = satsolver.Pos(e.edgeVars[edgeID])
	}

	return lits
}
