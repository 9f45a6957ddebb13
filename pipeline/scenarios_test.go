package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nlsat/geom"
	"github.com/katalvlaran/nlsat/graph"
	"github.com/katalvlaran/nlsat/problem"
)

// The end-to-end scenarios below are S1, S2, S4, S5. S3 (a
// parse-time terminal collision that must never reach the pipeline) is
// covered by problem.TestParse_S3; S6 (rerouter monotonicity) is covered
// by router.TestReroute_StraightensADetour and friends, which exercise
// the same non-increasing guarantee this package's Reroute call relies
// on.

func buildGraph(t *testing.T, src string) *graph.Graph {
	t.Helper()
	p, err := problem.Parse(strings.NewReader(src))
	require.NoError(t, err)

	return graph.NewGraph(p, problem.FormatUnknown)
}

func TestScenario_S1_SingleNetSmallGrid(t *testing.T) {
	g := buildGraph(t, "SIZE 2x2\nLINE_NUM 1\nLINE#1 (0,0)-(1,1)\n")
	out := Run(g, Config{Plans: DefaultPlans(g.Format)})
	require.Equal(t, OK, out.Result, "err=%v", out.Err)

	count := 0
	for _, v := range out.Solution.Cells {
		if v != 0 {
			count++
		}
	}
	assert.Equal(t, 3, count, "expected a 3-cell path (Manhattan distance 2)")
	assert.Equal(t, 1, out.Solution.At(geom.NewPoint(0, 0, 0)))
	assert.Equal(t, 1, out.Solution.At(geom.NewPoint(1, 1, 0)))
}

func TestScenario_S2_TwoDisjointNets(t *testing.T) {
	g := buildGraph(t, "SIZE 3x3\nLINE_NUM 2\nLINE#1 (0,0)-(2,2)\nLINE#2 (2,0)-(0,2)\n")
	out := Run(g, Config{Plans: DefaultPlans(g.Format)})
	require.Equal(t, OK, out.Result, "err=%v", out.Err)

	assert.Equal(t, 1, out.Solution.At(geom.NewPoint(0, 0, 0)))
	assert.Equal(t, 1, out.Solution.At(geom.NewPoint(2, 2, 0)))
	assert.Equal(t, 2, out.Solution.At(geom.NewPoint(2, 0, 0)))
	assert.Equal(t, 2, out.Solution.At(geom.NewPoint(0, 2, 0)))
}

func TestScenario_S4_TwoLayersWithVia(t *testing.T) {
	g := buildGraph(t, "SIZE 2x2x2\nLINE_NUM 1\nLINE#1 (0,0,1)-(1,1,2)\nVIA#a (0,0,1)(0,0,2)\n")
	require.Equal(t, problem.FormatADC2016, g.Format)

	out := Run(g, Config{Plans: DefaultPlans(g.Format)})
	require.Equal(t, OK, out.Result, "err=%v", out.Err)

	// The only cross-layer connectivity is the via column at (0,0); a
	// route from z=0 to z=1 must pass through both of its cells.
	assert.Equal(t, 1, out.Solution.At(geom.NewPoint(0, 0, 0)))
	assert.Equal(t, 1, out.Solution.At(geom.NewPoint(0, 0, 1)))
}

func TestScenario_S5_ThreeDWithoutVia(t *testing.T) {
	g := buildGraph(t, "SIZE 2x2x2\nLINE_NUM 1\nLINE#1 (0,0,1)-(1,1,2)\n")
	require.Equal(t, problem.FormatADC2017, g.Format)

	out := Run(g, Config{Plans: DefaultPlans(g.Format)})
	require.Equal(t, OK, out.Result, "err=%v", out.Err)

	touchesZ0, touchesZ1 := false, false
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				if out.Solution.At(geom.NewPoint(x, y, z)) == 1 {
					if z == 0 {
						touchesZ0 = true
					} else {
						touchesZ1 = true
					}
				}
			}
		}
	}
	assert.True(t, touchesZ0 && touchesZ1, "expected the route to touch both layers, proving it crosses a z-edge")
}
