package router

import (
	"testing"

	"github.com/katalvlaran/nlsat/decoder"
	"github.com/katalvlaran/nlsat/geom"
	"github.com/katalvlaran/nlsat/problem"
)

func TestNewRouter_RejectsShortRoute(t *testing.T) {
	dim := geom.NewDimension(3, 3, 1)
	_, err := NewRouter(dim, problem.FormatADC2015, []decoder.Route{{geom.NewPoint(0, 0, 0)}}, nil)
	if err != ErrRouteTooShort {
		t.Fatalf("expected ErrRouteTooShort, got %v", err)
	}
}

func TestReroute_StraightensADetour(t *testing.T) {
	dim := geom.NewDimension(3, 3, 1)
	// A detoured route from (0,0,0) to (2,0,0) that dips down to y=1 and
	// back up, when the direct y=0 row is free.
	detour := decoder.Route{
		geom.NewPoint(0, 0, 0),
		geom.NewPoint(0, 1, 0),
		geom.NewPoint(1, 1, 0),
		geom.NewPoint(2, 1, 0),
		geom.NewPoint(2, 0, 0),
	}
	r, err := NewRouter(dim, problem.FormatADC2015, []decoder.Route{detour}, nil)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	lengthBefore := r.TotalLength()

	if err := r.Reroute(); err != nil {
		t.Fatalf("Reroute: %v", err)
	}
	if got := r.TotalLength(); got > lengthBefore {
		t.Fatalf("expected reroute to never increase length, got %d (was %d)", got, lengthBefore)
	}

	routes := r.Routes()
	if len(routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(routes))
	}
	got := routes[0]
	if got[0] != geom.NewPoint(0, 0, 0) || got[len(got)-1] != geom.NewPoint(2, 0, 0) {
		t.Fatalf("expected route to preserve its terminals, got %v", got)
	}
	// The shortest path along y=0 is the 3-cell straight line.
	if len(got) != 3 {
		t.Fatalf("expected the rerouted path to straighten to 3 cells, got %d: %v", len(got), got)
	}
}

func TestReroute_AvoidsOtherNetsAsObstacles(t *testing.T) {
	dim := geom.NewDimension(3, 2, 1)
	netA := decoder.Route{geom.NewPoint(0, 0, 0), geom.NewPoint(1, 0, 0), geom.NewPoint(2, 0, 0)}
	netB := decoder.Route{geom.NewPoint(0, 1, 0), geom.NewPoint(1, 1, 0), geom.NewPoint(2, 1, 0)}
	r, err := NewRouter(dim, problem.FormatADC2015, []decoder.Route{netA, netB}, nil)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	if err := r.Reroute(); err != nil {
		t.Fatalf("Reroute: %v", err)
	}
	routes := r.Routes()
	for _, row := range routes {
		for _, p := range row {
			if p.Y != row[0].Y {
				t.Fatalf("expected each net's route to stay on its own row, got %v", row)
			}
		}
	}
}

func TestReroute_UsesViaColumnForLayerChange(t *testing.T) {
	dim := geom.NewDimension(1, 1, 3)
	// A single-cell-per-layer 3-layer via column: the only legal route
	// from (0,0,0) to (0,0,2) is straight through (0,0,1).
	route := decoder.Route{geom.NewPoint(0, 0, 0), geom.NewPoint(0, 0, 1), geom.NewPoint(0, 0, 2)}
	viaColumns := [][]int{{dim.Index(0, 0, 0), dim.Index(0, 0, 1), dim.Index(0, 0, 2)}}
	r, err := NewRouter(dim, problem.FormatADC2016, []decoder.Route{route}, viaColumns)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	if err := r.Reroute(); err != nil {
		t.Fatalf("Reroute: %v", err)
	}
	got := r.Routes()[0]
	if len(got) != 3 {
		t.Fatalf("expected the via column route to stay 3 cells, got %d: %v", len(got), got)
	}
}
