package problem

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/nlsat/geom"
)

var (
	reSize2D   = regexp.MustCompile(`(?i)^SIZE +([0-9]+)X([0-9]+)$`)
	reSize3D   = regexp.MustCompile(`(?i)^SIZE +([0-9]+)X([0-9]+)X([0-9]+)$`)
	reLineNum  = regexp.MustCompile(`(?i)^LINE_NUM +([0-9]+)$`)
	reLine2D   = regexp.MustCompile(`(?i)^LINE#(\d+) +\((\d+),(\d+)\)[- ]\((\d+),(\d+)\)$`)
	reLine3D   = regexp.MustCompile(`(?i)^LINE#(\d+) +\((\d+),(\d+),(\d+)\)[- ]\((\d+),(\d+),(\d+)\)$`)
	reViaName  = regexp.MustCompile(`(?i)^VIA#([A-Za-z0-9_]+) +((?:\(\d+,\d+,\d+\)[- ]?)+)$`)
	reViaPoint = regexp.MustCompile(`\((\d+),(\d+),(\d+)\)`)
)

// parser holds the mutable state of a single Parse call, mirroring the
// line-oriented scan of the original ADC reader.
type parser struct {
	problem     *Problem
	dim         geom.Dimension
	is2D        bool
	hasSize     bool
	sizeLine    int
	lineNum     int
	hasLineNum  bool
	lineNumLine int
	netLines    map[int]int // file label -> line number first seen
	viaLines    map[string]int
	errs        ParseErrors
	lineno      int
	line        string
}

// Parse reads an ADC2015/2016/2017 problem file from r, collecting every
// validation error it finds. On success it returns a fully
// populated *Problem and a nil error; on any error it returns (nil,
// ParseErrors).
func Parse(r io.Reader) (*Problem, error) {
	p := &parser{
		netLines: make(map[int]int),
		viaLines: make(map[string]int),
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	for scanner.Scan() {
		p.lineno++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.line = line
		p.parseLine()
	}
	if err := scanner.Err(); err != nil {
		p.errs = append(p.errs, &ParseError{Line: p.lineno, Text: p.line, Message: err.Error()})
	}
	if p.problem == nil && len(p.errs) == 0 {
		p.errs = append(p.errs, &ParseError{Line: p.lineno, Text: "", Message: "missing SIZE line"})
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}

	return p.problem, nil
}

func (p *parser) error(msg string) {
	p.errs = append(p.errs, &ParseError{Line: p.lineno, Text: p.line, Message: msg})
}

func (p *parser) parseLine() {
	if p.tryReadSize2D() {
		return
	}
	if p.tryReadSize3D() {
		return
	}
	if p.tryReadLineNum() {
		return
	}
	if p.tryReadLine() {
		return
	}
	if p.tryReadVia() {
		return
	}
	p.error("syntax error")
}

func (p *parser) tryReadSize2D() bool {
	m := reSize2D.FindStringSubmatch(p.line)
	if m == nil {
		return false
	}
	if p.hasSize {
		p.error("duplicated SIZE line")
		return true
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	p.dim = geom.NewDimension(w, h, 1)
	p.hasSize = true
	p.is2D = true
	p.sizeLine = p.lineno
	p.problem = NewProblem(p.dim)

	return true
}

func (p *parser) tryReadSize3D() bool {
	m := reSize3D.FindStringSubmatch(p.line)
	if m == nil {
		return false
	}
	if p.hasSize {
		p.error("duplicated SIZE line")
		return true
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	p.dim = geom.NewDimension(w, h, d)
	p.hasSize = true
	p.is2D = false
	p.sizeLine = p.lineno
	p.problem = NewProblem(p.dim)

	return true
}

func (p *parser) tryReadLineNum() bool {
	m := reLineNum.FindStringSubmatch(p.line)
	if m == nil {
		return false
	}
	if p.hasLineNum {
		p.error("duplicated LINE_NUM line")
		return true
	}
	p.lineNum, _ = strconv.Atoi(m[1])
	p.hasLineNum = true
	p.lineNumLine = p.lineno

	return true
}

func (p *parser) tryReadLine() bool {
	var m []string
	if p.is2D {
		m = reLine2D.FindStringSubmatch(p.line)
	} else {
		m = reLine3D.FindStringSubmatch(p.line)
	}
	if m == nil {
		return false
	}
	if !p.hasSize {
		p.error("LINE before SIZE")
		return true
	}
	if !p.hasLineNum {
		p.error("LINE before LINE_NUM")
		return true
	}
	label, _ := strconv.Atoi(m[1])
	if label < 1 || label > p.lineNum {
		p.error("LINE# out of range")
		return true
	}
	if prev, dup := p.netLines[label]; dup {
		p.error("LINE# duplicated (first at line " + strconv.Itoa(prev) + ")")
		return true
	}
	p.netLines[label] = p.lineno

	var x0, y0, z0, x1, y1, z1 int
	if p.is2D {
		x0, _ = strconv.Atoi(m[2])
		y0, _ = strconv.Atoi(m[3])
		x1, _ = strconv.Atoi(m[4])
		y1, _ = strconv.Atoi(m[5])
	} else {
		x0, _ = strconv.Atoi(m[2])
		y0, _ = strconv.Atoi(m[3])
		z0l, _ := strconv.Atoi(m[4])
		z0 = z0l - 1
		x1, _ = strconv.Atoi(m[5])
		y1, _ = strconv.Atoi(m[6])
		z1l, _ := strconv.Atoi(m[7])
		z1 = z1l - 1
	}
	start := geom.NewPoint(x0, y0, z0)
	if !p.checkRange(start) {
		return true
	}
	end := geom.NewPoint(x1, y1, z1)
	if !p.checkRange(end) {
		return true
	}
	for _, other := range p.problem.Nets {
		if other.Start == start || other.Start == end || other.End == start || other.End == end {
			p.error("terminal collision with LINE#" + strconv.Itoa(other.Label))
			return true
		}
	}
	// label was already checked against p.netLines above, so AddNet
	// cannot return ErrDuplicateNetLabel here.
	_ = p.problem.AddNet(label, start, end)

	return true
}

func (p *parser) tryReadVia() bool {
	m := reViaName.FindStringSubmatch(p.line)
	if m == nil {
		return false
	}
	if !p.hasSize {
		p.error("VIA before SIZE")
		return true
	}
	label := m[1]
	if prev, dup := p.viaLines[label]; dup {
		p.error("VIA# duplicated (first at line " + strconv.Itoa(prev) + ")")
		return true
	}
	p.viaLines[label] = p.lineno

	coords := reViaPoint.FindAllStringSubmatch(m[2], -1)
	zs := make([]int, 0, len(coords))
	var x0, y0 int
	for i, c := range coords {
		x, _ := strconv.Atoi(c[1])
		y, _ := strconv.Atoi(c[2])
		zl, _ := strconv.Atoi(c[3])
		z := zl - 1
		if !p.checkRange(geom.NewPoint(x, y, z)) {
			return true
		}
		if i == 0 {
			x0, y0 = x, y
		} else if x != x0 || y != y0 {
			p.error("via layers disagree on (x,y)")
			return true
		}
		zs = append(zs, z)
	}
	sort.Ints(zs)
	z1, z2 := zs[0], zs[len(zs)-1]
	if z2-z1 != len(zs)-1 {
		p.error("via layers not contiguous")
		return true
	}
	via, err := geom.NewVia(label, x0, y0, z1, z2)
	if err != nil {
		p.error(err.Error())
		return true
	}
	if err := p.problem.AddVia(via); err != nil {
		p.error(err.Error())
	}

	return true
}

func (p *parser) checkRange(pt geom.Point) bool {
	if !p.dim.ContainsPoint(pt) {
		p.error("coordinate out of range")
		return false
	}

	return true
}
