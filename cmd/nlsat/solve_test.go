package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nlsat/problem"
)

func TestSolve_Success(t *testing.T) {
	in := strings.NewReader("SIZE 2x2\nLINE_NUM 1\nLINE#1 (0,0)-(1,1)\n")
	var out bytes.Buffer
	code := solve(in, &out, defaultSolverConfig(), false)
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, out.String(), "SIZE 2X2X1")
}

func TestSolve_ParseErrorExitsNonzero(t *testing.T) {
	in := strings.NewReader("not a valid problem file\n")
	var out bytes.Buffer
	code := solve(in, &out, defaultSolverConfig(), false)
	assert.Equal(t, exitParseError, code)
}

func TestSolve_VarLimitTooLowExhaustsToNG(t *testing.T) {
	in := strings.NewReader("SIZE 2x2\nLINE_NUM 1\nLINE#1 (0,0)-(1,1)\n")
	var out bytes.Buffer
	cfg := defaultSolverConfig()
	cfg.VarLimit = 1
	code := solve(in, &out, cfg, false)
	assert.Equal(t, exitNG, code)
}

func TestResolvePlans_BinaryEncodingAppliesToEveryPlan(t *testing.T) {
	cfg := defaultSolverConfig()
	cfg.BinaryEncoding = true
	plans, err := resolvePlans(problem.FormatADC2015, cfg)
	require.NoError(t, err)
	for _, p := range plans {
		assert.True(t, p.Options.BinaryEncoding, "plan %s", p.Name)
	}
}

func TestNamedPlans_UnknownNameErrors(t *testing.T) {
	_, err := namedPlans([]string{"Z"})
	assert.Error(t, err)
}
