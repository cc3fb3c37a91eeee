package svg

// For more information on the "d" attribute:
// - https://developer.mozilla.org/en-US/docs/Web/SVG/Attribute/d

import (
	"math"
	"strings"
	"unicode"

	"github.com/mindera-gaming/svg-placer/geom"
)

// A control point within lineTolerance of a segment's midpoint still
// makes a straight line. Far from the origin the tolerance grows by
// lineRelativeTolerance per unit of magnitude, so rounding from a
// translation does not turn a line into a curve.
const (
	lineTolerance         = 1e-9
	lineRelativeTolerance = 1e-12
)

var _ geom.Placeable[PathData] = PathData{}

// PathData is one segment of a path, stored as a cubic Bézier curve.
// Straight lines keep both control points on their midpoint.
type PathData struct {
	Start, End geom.Point
	Control    [2]geom.Point
}

// line returns the segment going straight from start to end
func line(start, end geom.Point) PathData {
	middle := midpoint(start, end)

	return PathData{
		Start:   start,
		End:     end,
		Control: [2]geom.Point{middle, middle},
	}
}

func midpoint(a, b geom.Point) geom.Point {
	return geom.Point{X: 0.5 * (a.X + b.X), Y: 0.5 * (a.Y + b.Y)}
}

// IsLine reports whether the segment is a straight line.
func (d PathData) IsLine() bool {
	middle := midpoint(d.Start, d.End)

	magnitude := 0.0
	for _, p := range [...]geom.Point{d.Start, d.End, d.Control[0], d.Control[1]} {
		magnitude = math.Max(magnitude, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	tolerance := math.Max(lineTolerance, lineRelativeTolerance*magnitude)

	return geom.AlmostEqual(d.Control[0], middle, tolerance) &&
		geom.AlmostEqual(d.Control[1], middle, tolerance)
}

// Bounds returns the box around the segment's end and control points.
func (d PathData) Bounds() geom.Bounds {
	return geom.BoundsOf(d.Start, d.Control[0], d.Control[1], d.End)
}

func (d PathData) Center() geom.Point {
	return d.Bounds().Center()
}

func (d PathData) Translate(offset geom.Vector) PathData {
	d.Start = geom.Move(d.Start, offset)
	d.End = geom.Move(d.End, offset)
	d.Control[0] = geom.Move(d.Control[0], offset)
	d.Control[1] = geom.Move(d.Control[1], offset)

	return d
}

// PointAt returns the point at t on the segment. The segment is only
// defined for t in [0, 1]; any other t reports false.
func (d PathData) PointAt(t float64) (geom.Point, bool) {
	if !(t >= 0 && t <= 1) {
		return geom.Point{}, false
	}

	u := 1 - t
	// Bernstein weights of the four points
	w0, w1, w2, w3 := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t

	return geom.Point{
		X: w0*d.Start.X + w1*d.Control[0].X + w2*d.Control[1].X + w3*d.End.X,
		Y: w0*d.Start.Y + w1*d.Control[0].Y + w2*d.Control[1].Y + w3*d.End.Y,
	}, true
}

// path represents the "d" attribute of a path element
type path struct {
	ID   string
	Data string
}

// Clean the current path to facilitate further processes
func (p *path) Clean() {
	p.Data = strings.Join(strings.Fields(strings.ReplaceAll(p.Data, ",", " ")), " ")
}

// command is a path command letter. Upper case letters take absolute
// coordinates, lower case ones are relative to the pen.
type command struct {
	letter   rune
	absolute bool
}

func newCommand(letter rune) command {
	return command{
		letter:   letter,
		absolute: unicode.IsUpper(letter),
	}
}

func (c command) String() string {
	return string(c.letter)
}

// cursor is the pen while a path is being parsed
type cursor struct {
	current geom.Point
	// where the current subpath started, used by "ClosePath"
	initial geom.Point
}

// commandParser parses the data of a single command into segments and moves the pen
type commandParser func(pen *cursor, cmd command, data []string, options ParserOptions) ([]PathData, error)

var commandParsers = map[rune]commandParser{
	'M': parseMoveTo,
	'L': parseLineTo,
	'H': parseHorizontalTo,
	'V': parseVerticalTo,
	'C': parseCurveTo,
	'Z': parseClosePath,
}

// Parse the current path
func (p path) Parse(options ParserOptions) ([]PathData, error) {
	var paths []PathData

	var pen cursor
	var cmd command
	var parseCommand commandParser
	var start int
	var updatePaths = func(end int) error {
		// anything before the first command is ignored
		if parseCommand == nil {
			return nil
		}

		newPaths, err := parseCommand(&pen, cmd, strings.Fields(p.Data[start:end]), options)
		if err != nil {
			return err
		}
		paths = append(paths, newPaths...)

		return nil
	}
	for i, c := range p.Data {
		switch unicode.ToUpper(c) {
		case 'S', 'Q', 'T', 'A':
			return nil, newUnsupportedCommandError(string(c))
		}

		next, ok := commandParsers[unicode.ToUpper(c)]
		if !ok {
			continue
		}
		if err := updatePaths(i); err != nil {
			return nil, err
		}

		start = i + 1
		cmd = newCommand(c)
		parseCommand = next
	}

	if err := updatePaths(len(p.Data)); err != nil {
		return nil, err
	}

	return paths, nil
}

// parseMoveTo parses a "MoveTo" command. Every pair after the first one
// is an implicit "LineTo".
func parseMoveTo(pen *cursor, cmd command, data []string, options ParserOptions) ([]PathData, error) {
	points, err := parsePoints(pen.current, cmd, data)
	if err != nil {
		return nil, err
	}

	// the first point starts a new subpath
	pen.current = points[0]
	pen.initial = points[0]

	return lineTo(pen, points[1:], options), nil
}

// parseLineTo parses a "LineTo" command
func parseLineTo(pen *cursor, cmd command, data []string, options ParserOptions) ([]PathData, error) {
	points, err := parsePoints(pen.current, cmd, data)
	if err != nil {
		return nil, err
	}

	return lineTo(pen, points, options), nil
}

// parseHorizontalTo parses a horizontal "LineTo" command
func parseHorizontalTo(pen *cursor, cmd command, data []string, options ParserOptions) ([]PathData, error) {
	// checks if there is no data to be parsed
	if len(data) == 0 {
		return nil, newEmptyCoordinateError(cmd.String())
	}

	x := pen.current.X
	points := make([]geom.Point, 0, len(data))
	for _, value := range data {
		abscissa, err := parseAbscissa(value, cmd.String())
		if err != nil {
			return nil, err
		}

		if cmd.absolute {
			x = abscissa
		} else {
			x += abscissa
		}
		points = append(points, geom.Point{X: x, Y: pen.current.Y})
	}

	return lineTo(pen, points, options), nil
}

// parseVerticalTo parses a vertical "LineTo" command
func parseVerticalTo(pen *cursor, cmd command, data []string, options ParserOptions) ([]PathData, error) {
	// checks if there is no data to be parsed
	if len(data) == 0 {
		return nil, newEmptyCoordinateError(cmd.String())
	}

	y := pen.current.Y
	points := make([]geom.Point, 0, len(data))
	for _, value := range data {
		ordinate, err := parseOrdinate(value, cmd.String())
		if err != nil {
			return nil, err
		}

		if cmd.absolute {
			y = ordinate
		} else {
			y += ordinate
		}
		points = append(points, geom.Point{X: pen.current.X, Y: y})
	}

	return lineTo(pen, points, options), nil
}

// parseCurveTo parses a "Cubic Bézier Curve" command
func parseCurveTo(pen *cursor, cmd command, data []string, _ ParserOptions) ([]PathData, error) {
	// checks if there is no data to be parsed
	// or if the data has invalid coordinates
	if len(data) == 0 {
		return nil, newEmptyCoordinateError(cmd.String())
	} else if len(data)%6 != 0 {
		return nil, newInvalidCoordinateError(cmd.String(), data)
	}

	paths := make([]PathData, len(data)/6)
	for i := 0; i < len(data); i += 6 {
		// both control points and the end point; relative ones are
		// measured from the start of this segment
		var points [3]geom.Point
		for j := range points {
			k := i + j*2
			p, err := parsePoint(data[k], data[k+1], cmd.String())
			if err != nil {
				return nil, err
			}
			if !cmd.absolute {
				p = geom.Move(pen.current, geom.Vector{DX: p.X, DY: p.Y})
			}
			points[j] = p
		}

		paths[i/6] = PathData{
			Start:   pen.current,
			End:     points[2],
			Control: [2]geom.Point{points[0], points[1]},
		}
		pen.current = points[2]
	}

	return paths, nil
}

// parseClosePath parses a "ClosePath" command; it takes no data
func parseClosePath(pen *cursor, _ command, _ []string, _ ParserOptions) ([]PathData, error) {
	segment := line(pen.current, pen.initial)
	pen.current = pen.initial

	return []PathData{segment}, nil
}

// lineTo draws straight segments from the pen through every point
func lineTo(pen *cursor, points []geom.Point, options ParserOptions) []PathData {
	points = simplify(pen.current, points, options.SlopeTolerance)

	paths := make([]PathData, 0, len(points))
	for _, end := range points {
		paths = append(paths, line(pen.current, end))
		pen.current = end
	}

	return paths
}

// simplify removes the points in the middle of straight runs: a point is
// dropped when the path after it keeps the heading of the path before it,
// within the given tolerance.
func simplify(from geom.Point, points []geom.Point, tolerance float64) []geom.Point {
	if tolerance == 0 || len(points) < 2 {
		return points
	}

	kept := make([]geom.Point, 0, len(points))
	previous := from
	for i := 0; i < len(points); i++ {
		end := points[i]
		for i+1 < len(points) && continues(previous, end, points[i+1], tolerance) {
			i++
			end = points[i]
		}

		kept = append(kept, end)
		previous = end
	}

	return kept
}

// continues reports whether the path b->c carries on the heading of a->b
func continues(a, b, c geom.Point, tolerance float64) bool {
	initial, last := geom.Offset(a, b), geom.Offset(b, c)

	// both paths must head the same way, not double back
	if initial.DX*last.DX+initial.DY*last.DY <= 0 {
		return false
	}

	initialPathSlope := slope(initial)
	lastPathSlope := slope(last)

	// checking some special cases
	if math.IsInf(initialPathSlope, 0) && math.IsInf(lastPathSlope, 0) {
		// reaching here means that both paths are vertically aligned
		return true
	}

	return math.Abs(lastPathSlope-initialPathSlope) < tolerance
}

func slope(v geom.Vector) float64 {
	return v.DY / v.DX
}
