package encoder

import (
	"github.com/katalvlaran/nlsat/problem"
	"github.com/katalvlaran/nlsat/satsolver"
)

// MakeBaseConstraints emits every required base constraint: per-node
// edge-selection constraints (terminal / via / ordinary), per-edge
// label-equality constraints, and the adc2016 via-binding one-hot
// constraint. Clause emission order is node constraints, then edge
// constraints, then via constraints.
func (e *Encoder) MakeBaseConstraints() {
	for i := range e.graph.Nodes {
		e.makeNodeConstraint(i)
	}
	for i := range e.graph.Edges {
		e.makeEdgeConstraint(i)
	}
	if e.graph.Format == problem.FormatADC2016 {
		for viaID := 0; viaID < e.graph.ViaCount(); viaID++ {
			e.makeViaBindingConstraint(viaID)
		}
	}
}

func (e *Encoder) makeNodeConstraint(nodeID int) {
	node := &e.graph.Nodes[nodeID]
	lits := e.incidentVars(nodeID)

	// labelOf maps a net id to the label value stored in this node's label
	// vector: the net id itself, or the per-layer label under adc2016.
	labelOf := func(netID int) int {
		if e.graph.Format == problem.FormatADC2016 {
			return e.graph.Label(netID, node.Point.Z)
		}

		return netID
	}

	switch {
	case node.IsTerminal:
		satsolver.ExactlyOne(e.solver, lits)
		e.fixLabel(nodeID, labelOf(node.TerminalID))

	case node.IsVia:
		viaID := node.ViaID
		nets, _ := e.graph.ViaNets(viaID)
		for _, netID := range nets {
			cvar, ok := e.ViaNetVar(netID, viaID)
			if !ok {
				continue
			}
			cond := satsolver.Pos(cvar)
			term, _ := e.graph.Terminal(netID)
			onThisLayer := e.graph.Nodes[term.Node1].Point.Z == node.Point.Z ||
				e.graph.Nodes[term.Node2].Point.Z == node.Point.Z
			if !onThisLayer {
				satsolver.ConditionalZeroHot(e.solver, cond, lits)
			} else {
				satsolver.ConditionalExactlyOne(e.solver, cond, lits)
				e.conditionalFixLabel(cond, nodeID, labelOf(netID))
			}
		}

	default:
		switch e.opts.Slack {
		case NoSlack:
			satsolver.ExactlyTwo(e.solver, lits)
		case SlackWithUVar:
			uvar, _ := e.UVar(nodeID)
			u := satsolver.Pos(uvar)
			satsolver.AtMostTwo(e.solver, lits)
			satsolver.ConditionalAtLeastK(e.solver, u, lits, 2)
			for _, l := range lits {
				e.solver.AddClause(l.Not(), u)
			}
		case SlackWithoutUVar:
			satsolver.AtMostTwo(e.solver, lits)
			satsolver.NotOne(e.solver, lits)
		}
	}
}

func (e *Encoder) makeEdgeConstraint(edgeID int) {
	edge := &e.graph.Edges[edgeID]
	evar := satsolver.Pos(e.edgeVars[edgeID])
	e.conditionalEqualLabels(evar, edge.Node1, edge.Node2)
	e.conditionalDistinctOneHotBits(evar.Not(), edge.Node1, edge.Node2)
}

func (e *Encoder) makeViaBindingConstraint(viaID int) {
	nets, _ := e.graph.ViaNets(viaID)
	lits := make([]satsolver.Lit, 0, len(nets))
	for _, netID := range nets {
		if v, ok := e.ViaNetVar(netID, viaID); ok {
			lits = append(lits, satsolver.Pos(v))
		}
	}
	if len(lits) > 0 {
		satsolver.ExactlyOne(e.solver, lits)
	}
}
