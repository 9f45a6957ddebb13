package solution

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/nlsat/geom"
	"github.com/katalvlaran/nlsat/problem"
)

var (
	reSize  = regexp.MustCompile(`(?i)^SIZE +([0-9]+)X([0-9]+)X([0-9]+)$`)
	reLayer = regexp.MustCompile(`(?i)^LAYER +([0-9]+)$`)
)

// Parse reads a solution file back into a *Grid, collecting every
// validation error it finds rather than stopping at the first one (spec
// §7, matching problem.Parse's treatment of malformed input).
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	var grid *Grid
	var errs problem.ParseErrors
	var dim geom.Dimension
	hasSize := false
	z := -1
	y := 0
	lineno := 0

	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := reSize.FindStringSubmatch(line); m != nil {
			if hasSize {
				errs = append(errs, &problem.ParseError{Line: lineno, Text: line, Message: "duplicated SIZE line"})
				continue
			}
			w, _ := strconv.Atoi(m[1])
			h, _ := strconv.Atoi(m[2])
			d, _ := strconv.Atoi(m[3])
			dim = geom.NewDimension(w, h, d)
			grid = NewGrid(dim)
			hasSize = true

			continue
		}

		if m := reLayer.FindStringSubmatch(line); m != nil {
			if !hasSize {
				errs = append(errs, &problem.ParseError{Line: lineno, Text: line, Message: "LAYER before SIZE"})
				continue
			}
			layer, _ := strconv.Atoi(m[1])
			z = layer - 1
			y = 0
			if z < 0 || z >= dim.Depth {
				errs = append(errs, &problem.ParseError{Line: lineno, Text: line, Message: "layer out of range"})
			}

			continue
		}

		if !hasSize {
			errs = append(errs, &problem.ParseError{Line: lineno, Text: line, Message: "row data before SIZE"})
			continue
		}
		if z < 0 || z >= dim.Depth {
			errs = append(errs, &problem.ParseError{Line: lineno, Text: line, Message: "row data outside any valid layer"})
			continue
		}
		if y >= dim.Height {
			errs = append(errs, &problem.ParseError{Line: lineno, Text: line, Message: "too many rows in this layer"})
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != dim.Width {
			errs = append(errs, &problem.ParseError{Line: lineno, Text: line, Message: "row width mismatch"})
			y++
			continue
		}
		for x, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				errs = append(errs, &problem.ParseError{Line: lineno, Text: line, Message: "non-integer cell value"})
				continue
			}
			grid.Cells[dim.Index(x, y, z)] = v
		}
		y++
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, &problem.ParseError{Line: lineno, Text: "", Message: err.Error()})
	}
	if !hasSize {
		errs = append(errs, &problem.ParseError{Line: lineno, Text: "", Message: "missing SIZE line"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return grid, nil
}
