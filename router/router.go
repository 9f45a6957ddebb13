package router

import (
	"github.com/katalvlaran/nlsat/decoder"
	"github.com/katalvlaran/nlsat/geom"
	"github.com/katalvlaran/nlsat/graph"
	"github.com/katalvlaran/nlsat/problem"
)

// routeInfo is one net's current route, split into its fixed endpoints
// and its mutable interior points (exclusive of both endpoints).
type routeInfo struct {
	start, end geom.Point
	points     []geom.Point
}

// Router iteratively improves a set of per-net routes over a shared cell
// grid, minimizing total length and then total bend count.
type Router struct {
	dim  geom.Dimension
	dirs []graph.Direction

	// viaNext/viaPrev chain consecutive-layer cells within the same via
	// column (adc2016 only); -1 where no such link exists. They stand in
	// for the generic z-adjacency adc2016 otherwise lacks.
	viaNext, viaPrev []int

	routes []routeInfo
}

// bEdge is one step of a candidate backtrace path: toIdx is the cell this
// step lands on, bendNum is the total bend count of the remainder of the
// path from this step to the target, and next chains to the following
// step.
type bEdge struct {
	toIdx   int
	bendNum int
	next    *bEdge
}

// NewRouter builds a Router over dim from an initial decoded Route per
// net, selecting grid connectivity per format (see activeDirections).
// viaColumns lists, for adc2016, each via's spanned cell indices ordered
// low-to-high z (graph.Graph.ViaNodes); pass nil for other formats.
func NewRouter(dim geom.Dimension, format problem.Format, routes []decoder.Route, viaColumns [][]int) (*Router, error) {
	infos := make([]routeInfo, len(routes))
	for i, r := range routes {
		if len(r) < 2 {
			return nil, ErrRouteTooShort
		}
		infos[i] = routeInfo{
			start:  r[0],
			end:    r[len(r)-1],
			points: append([]geom.Point(nil), r[1:len(r)-1]...),
		}
	}

	viaNext, viaPrev := buildViaLinks(dim.GridSize(), viaColumns)

	return &Router{
		dim:     dim,
		dirs:    activeDirections(format),
		viaNext: viaNext,
		viaPrev: viaPrev,
		routes:  infos,
	}, nil
}

// Routes returns the current full route (start, interior points, end) for
// every net, in net-id order.
func (r *Router) Routes() []decoder.Route {
	out := make([]decoder.Route, len(r.routes))
	for i, ri := range r.routes {
		route := make(decoder.Route, 0, len(ri.points)+2)
		route = append(route, ri.start)
		route = append(route, ri.points...)
		route = append(route, ri.end)
		out[i] = route
	}

	return out
}

// TotalLength returns the sum, over every net, of its interior point
// count (start/end excluded).
func (r *Router) TotalLength() int {
	total := 0
	for _, ri := range r.routes {
		total += len(ri.points)
	}

	return total
}

// TotalBends returns the sum, over every net, of its bend count.
func (r *Router) TotalBends() int {
	total := 0
	for _, ri := range r.routes {
		total += countBends(ri.start, ri.points, ri.end)
	}

	return total
}

// Reroute repeatedly reroutes every net in order, marking every other
// net's current route as an obstacle, until a full pass improves neither
// total length nor total bends (the pass is monotone in both).
func (r *Router) Reroute() error {
	length, bends := r.TotalLength(), r.TotalBends()
	for {
		for netID := range r.routes {
			if err := r.rerouteNet(netID); err != nil {
				return err
			}
		}
		newLength, newBends := r.TotalLength(), r.TotalBends()
		if newLength >= length && newBends >= bends {
			return nil
		}
		length, bends = newLength, newBends
	}
}

// neighbors appends to dst every (slot, cellIndex) step reachable from
// cell: the active cardinal directions plus, if cell sits in a via
// column, its up/down via-chain neighbors.
func (r *Router) neighbors(cell int, dst []int, dstSlot []int) ([]int, []int) {
	for _, dir := range r.dirs {
		nb, ok := cardinalNeighbor(r.dim, cell, dir)
		if ok {
			dst = append(dst, nb)
			dstSlot = append(dstSlot, int(dir))
		}
	}
	if r.viaNext[cell] != -1 {
		dst = append(dst, r.viaNext[cell])
		dstSlot = append(dstSlot, viaUp)
	}
	if r.viaPrev[cell] != -1 {
		dst = append(dst, r.viaPrev[cell])
		dstSlot = append(dstSlot, viaDown)
	}

	return dst, dstSlot
}

// rerouteNet replaces route netID with the shortest, least-bent path
// between its own terminals over the grid with every other net's route
// marked as an obstacle.
func (r *Router) rerouteNet(netID int) error {
	n := r.dim.GridSize()
	label := make([]int, n)
	for i, ri := range r.routes {
		if i == netID {
			continue
		}
		label[r.dim.IndexOf(ri.start)] = -1
		label[r.dim.IndexOf(ri.end)] = -1
		for _, p := range ri.points {
			label[r.dim.IndexOf(p)] = -1
		}
	}

	ri := &r.routes[netID]
	startIdx := r.dim.IndexOf(ri.start)
	endIdx := r.dim.IndexOf(ri.end)

	label[startIdx] = 1
	queue := []int{startIdx}
	var nbBuf, slotBuf []int
	for qi := 0; qi < len(queue); qi++ {
		cell := queue[qi]
		if cell == endIdx {
			break
		}
		nbBuf, slotBuf = r.neighbors(cell, nbBuf[:0], slotBuf[:0])
		for _, nb := range nbBuf {
			if label[nb] != 0 {
				continue
			}
			label[nb] = label[cell] + 1
			queue = append(queue, nb)
		}
	}
	if label[endIdx] == 0 {
		return ErrNoPath
	}

	backtrace := make([][slotCount]*bEdge, n)
	mark := make([]bool, n)
	mark[endIdx] = true
	queue2 := []int{endIdx}
	for qi := 0; qi < len(queue2); qi++ {
		cell := queue2[qi]
		if cell == startIdx {
			break
		}
		lbl := label[cell]
		nbBuf, slotBuf = r.neighbors(cell, nbBuf[:0], slotBuf[:0])
		for i, nb := range nbBuf {
			if label[nb] != lbl-1 {
				continue
			}
			slot := slotBuf[i]

			var minBend int
			var minEdge *bEdge
			if cell == endIdx {
				minBend, minEdge = 0, nil
			} else {
				minBend = -1
				for s := 0; s < slotCount; s++ {
					e := backtrace[cell][s]
					if e == nil {
						continue
					}
					b := e.bendNum
					if checkBend(r.dim.PointAt(nb), r.dim.PointAt(cell), r.dim.PointAt(e.toIdx)) {
						b++
					}
					if minEdge == nil || minBend > b {
						minBend, minEdge = b, e
					}
				}
			}

			ed := &bEdge{toIdx: cell, bendNum: minBend, next: minEdge}
			backtrace[nb][oppositeSlot(slot)] = ed
			if !mark[nb] {
				mark[nb] = true
				queue2 = append(queue2, nb)
			}
		}
	}

	var minBend int
	var best *bEdge
	for s := 0; s < slotCount; s++ {
		e := backtrace[startIdx][s]
		if e == nil {
			continue
		}
		if best == nil || minBend > e.bendNum {
			minBend, best = e.bendNum, e
		}
	}
	if best == nil {
		return ErrNoPath
	}

	points := make([]geom.Point, 0)
	for cur := best; cur != nil && cur.toIdx != endIdx; cur = cur.next {
		points = append(points, r.dim.PointAt(cur.toIdx))
	}
	ri.points = points

	return nil
}
