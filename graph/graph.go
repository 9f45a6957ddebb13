package graph

import (
	"github.com/katalvlaran/nlsat/geom"
	"github.com/katalvlaran/nlsat/problem"
)

// TerminalPair is the pair of node ids terminating one net.
type TerminalPair struct {
	Node1, Node2 int
}

// Graph owns every Node and Edge built from a Problem under a resolved
// Format. It is immutable once NewGraph returns.
type Graph struct {
	Dim    geom.Dimension
	Format problem.Format

	// FormatOverrideMismatch is true when the caller passed an explicit
	// override that disagreed with the auto-detected format; Format
	// always holds the auto-detected value in that case (spec's
	// "warn and fall back, never silently honor" rule). The caller
	// decides how to surface the warning.
	FormatOverrideMismatch bool

	Nodes []Node
	Edges []Edge

	netCount int
	terminal []TerminalPair // per net id

	// adc2016-only derived tables; nil/zero for other formats.
	labelNum    int
	labelMatrix [][]int // [netID][z] -> label, or -1
	netIDsByZ   [][]int // [z] -> net ids present on that layer
	viaNodes    [][]int // [viaID] -> node ids spanning the via, low-to-high z
	viaNets     [][]int // [viaID] -> compatible net ids
	netVias     [][]int // [netID] -> compatible via ids
}

// NewGraph builds a Graph from p under the resolved format (see
// problem.ResolveFormat). Construction is total for any well-formed
// Problem; it never fails.
func NewGraph(p *problem.Problem, override problem.Format) *Graph {
	resolved, ok := problem.ResolveFormat(override, p.Dimension.Depth, len(p.Vias))

	g := &Graph{
		Dim:                    p.Dimension,
		Format:                 resolved,
		FormatOverrideMismatch: !ok,
		netCount:               len(p.Nets),
	}

	g.buildNodes()
	g.buildHorizontalEdges()
	if g.Format == problem.FormatADC2017 {
		g.buildVerticalEdges()
	}
	g.markTerminals(p)
	if g.Format == problem.FormatADC2016 {
		g.buildLabelTable(p)
		g.markVias(p)
		g.buildViaNetCompatibility(p)
	}

	return g
}

func (g *Graph) buildNodes() {
	n := g.Dim.GridSize()
	g.Nodes = make([]Node, n)
	for z := 0; z < g.Dim.Depth; z++ {
		for y := 0; y < g.Dim.Height; y++ {
			for x := 0; x < g.Dim.Width; x++ {
				idx := g.Dim.Index(x, y, z)
				g.Nodes[idx] = newNode(idx, geom.NewPoint(x, y, z))
			}
		}
	}
}

func (g *Graph) newEdge(n1, n2 int, dir Direction) {
	id := len(g.Edges)
	g.Edges = append(g.Edges, Edge{ID: id, Node1: n1, Node2: n2, Dir: dir})
	g.Nodes[n1].Edges[dir] = id
	g.Nodes[n1].Incident = append(g.Nodes[n1].Incident, id)
	g.Nodes[n2].Edges[dir.Opposite()] = id
	g.Nodes[n2].Incident = append(g.Nodes[n2].Incident, id)
}

func (g *Graph) buildHorizontalEdges() {
	for z := 0; z < g.Dim.Depth; z++ {
		for y := 0; y < g.Dim.Height; y++ {
			for x := 0; x < g.Dim.Width-1; x++ {
				n1 := g.Dim.Index(x, y, z)
				n2 := g.Dim.Index(x+1, y, z)
				g.newEdge(n1, n2, XPlus)
			}
		}
		for x := 0; x < g.Dim.Width; x++ {
			for y := 0; y < g.Dim.Height-1; y++ {
				n1 := g.Dim.Index(x, y, z)
				n2 := g.Dim.Index(x, y+1, z)
				g.newEdge(n1, n2, YPlus)
			}
		}
	}
}

func (g *Graph) buildVerticalEdges() {
	for x := 0; x < g.Dim.Width; x++ {
		for y := 0; y < g.Dim.Height; y++ {
			for z := 0; z < g.Dim.Depth-1; z++ {
				n1 := g.Dim.Index(x, y, z)
				n2 := g.Dim.Index(x, y, z+1)
				g.newEdge(n1, n2, ZPlus)
			}
		}
	}
}

func (g *Graph) markTerminals(p *problem.Problem) {
	g.terminal = make([]TerminalPair, len(p.Nets))
	for _, net := range p.Nets {
		i1, _ := g.Dim.CheckedIndex(net.Start)
		i2, _ := g.Dim.CheckedIndex(net.End)
		g.Nodes[i1].IsTerminal = true
		g.Nodes[i1].TerminalID = net.ID
		g.Nodes[i2].IsTerminal = true
		g.Nodes[i2].TerminalID = net.ID
		g.terminal[net.ID] = TerminalPair{Node1: i1, Node2: i2}
	}
}

// buildLabelTable computes, for each layer z, the list of net ids with a
// terminal on z (directly, or via the other end of a multi-layer net),
// then derives label_num and the per-(net,layer) label assignment.
func (g *Graph) buildLabelTable(p *problem.Problem) {
	g.netIDsByZ = make([][]int, g.Dim.Depth)
	for _, net := range p.Nets {
		sz, ez := net.Start.Z, net.End.Z
		g.netIDsByZ[sz] = append(g.netIDsByZ[sz], net.ID)
		if sz != ez {
			g.netIDsByZ[ez] = append(g.netIDsByZ[ez], net.ID)
		}
	}

	maxNum := 0
	for _, ids := range g.netIDsByZ {
		if len(ids) > maxNum {
			maxNum = len(ids)
		}
	}
	g.labelNum = maxNum

	g.labelMatrix = make([][]int, len(p.Nets))
	for i := range g.labelMatrix {
		row := make([]int, g.Dim.Depth)
		for z := range row {
			row[z] = noIndex
		}
		g.labelMatrix[i] = row
	}
	for z, ids := range g.netIDsByZ {
		for label, netID := range ids {
			g.labelMatrix[netID][z] = label
		}
	}
}

func (g *Graph) markVias(p *problem.Problem) {
	g.viaNodes = make([][]int, len(p.Vias))
	for viaID, v := range p.Vias {
		nodes := make([]int, 0, v.Z2-v.Z1+1)
		for _, z := range v.Layers() {
			idx := g.Dim.Index(v.X, v.Y, z)
			g.Nodes[idx].IsVia = true
			g.Nodes[idx].ViaID = viaID
			nodes = append(nodes, idx)
		}
		g.viaNodes[viaID] = nodes
	}
}

// buildViaNetCompatibility computes, for every via, the set of
// multi-layer nets whose two terminal layers both lie in the via's
// span, and the symmetric mapping from net to compatible vias.
func (g *Graph) buildViaNetCompatibility(p *problem.Problem) {
	g.viaNets = make([][]int, len(p.Vias))
	g.netVias = make([][]int, len(p.Nets))
	for viaID, v := range p.Vias {
		var nets []int
		for _, net := range p.Nets {
			if net.Start.Z == net.End.Z {
				continue
			}
			if v.Z1 <= net.Start.Z && net.Start.Z <= v.Z2 && v.Z1 <= net.End.Z && net.End.Z <= v.Z2 {
				nets = append(nets, net.ID)
				g.netVias[net.ID] = append(g.netVias[net.ID], viaID)
			}
		}
		g.viaNets[viaID] = nets
	}
}

// NetCount returns the number of nets this graph was built from.
func (g *Graph) NetCount() int { return g.netCount }

// ViaCount returns the number of vias this graph was built from (0 for
// formats other than adc2016).
func (g *Graph) ViaCount() int { return len(g.viaNodes) }

// Terminal returns the node-id pair for net id.
func (g *Graph) Terminal(netID int) (TerminalPair, error) {
	if netID < 0 || netID >= len(g.terminal) {
		return TerminalPair{}, ErrNoNet
	}

	return g.terminal[netID], nil
}

// LabelNum returns the adc2016 label-vector length (0 for other formats).
func (g *Graph) LabelNum() int { return g.labelNum }

// Label returns the per-layer label assigned to netID on layer z, or -1
// if that net has no presence on z. Only meaningful for adc2016.
func (g *Graph) Label(netID, z int) int {
	if netID < 0 || netID >= len(g.labelMatrix) {
		return noIndex
	}

	return g.labelMatrix[netID][z]
}

// ViaNodes returns the node ids spanning via viaID, ordered low-to-high z.
func (g *Graph) ViaNodes(viaID int) ([]int, error) {
	if viaID < 0 || viaID >= len(g.viaNodes) {
		return nil, ErrNoVia
	}

	return g.viaNodes[viaID], nil
}

// ViaNets returns the net ids compatible with via viaID.
func (g *Graph) ViaNets(viaID int) ([]int, error) {
	if viaID < 0 || viaID >= len(g.viaNets) {
		return nil, ErrNoVia
	}

	return g.viaNets[viaID], nil
}

// NetVias returns the via ids compatible with net netID.
func (g *Graph) NetVias(netID int) ([]int, error) {
	if netID < 0 || netID >= len(g.netVias) {
		return nil, ErrNoNet
	}

	return g.netVias[netID], nil
}

// SquareEdges enumerates every axis-aligned unit square in the xy plane
// as the four bounding edges (e1: node00->node10, e2: node00->node01,
// e3: node10->node11, e4: node01->node11), mirroring the pattern used
// by U-shape and W-shape clause construction.
func (g *Graph) SquareEdges(yield func(e1, e2, e3, e4 int)) {
	for _, node00 := range g.Nodes {
		e1, ok1 := node00.EdgeAt(XPlus)
		e2, ok2 := node00.EdgeAt(YPlus)
		if !ok1 || !ok2 {
			continue
		}
		node10 := g.Edges[e1].OtherNode(node00.ID)
		node01 := g.Edges[e2].OtherNode(node00.ID)
		e3, ok3 := g.Nodes[node10].EdgeAt(YPlus)
		e4, ok4 := g.Nodes[node01].EdgeAt(XPlus)
		if !ok3 || !ok4 {
			continue
		}
		yield(e1, e2, e3, e4)
	}
}
