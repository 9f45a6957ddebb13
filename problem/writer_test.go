package problem

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/nlsat/geom"
)

func TestWrite_2D(t *testing.T) {
	src := "SIZE 3x3\nLINE_NUM 2\nLINE#1 (0,0)-(2,2)\nLINE#2 (0,2)-(2,0)\n"
	p1, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, p1); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	p2, err := Parse(&buf)
	if err != nil {
		t.Fatalf("re-parse failed: %v\n%s", err, buf.String())
	}
	if p2.Dimension != p1.Dimension {
		t.Fatalf("dimension mismatch: %+v vs %+v", p1.Dimension, p2.Dimension)
	}
	if len(p2.Nets) != 2 {
		t.Fatalf("expected 2 nets, got %d", len(p2.Nets))
	}
	for i := range p1.Nets {
		if p1.Nets[i].Start != p2.Nets[i].Start || p1.Nets[i].End != p2.Nets[i].End {
			t.Fatalf("net %d terminal mismatch: %+v vs %+v", i, p1.Nets[i], p2.Nets[i])
		}
	}
}

func TestWrite_NoVias(t *testing.T) {
	p := NewProblem(geom.NewDimension(2, 2, 1))
	if err := p.AddNet(1, geom.NewPoint(0, 0, 0), geom.NewPoint(1, 1, 0)); err != nil {
		t.Fatalf("AddNet: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, p); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.Contains(buf.String(), "VIA") {
		t.Fatalf("did not expect a VIA line: %s", buf.String())
	}
}
