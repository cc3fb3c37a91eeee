package svg

import (
	"math"
	"strconv"
	"strings"

	"github.com/mindera-gaming/svg-placer/geom"
)

// parsePoints parses coordinate pairs into absolute points. Relative
// pairs accumulate from origin, each one starting where the last ended.
func parsePoints(origin geom.Point, cmd command, data []string) ([]geom.Point, error) {
	// checks if there is no data to be parsed
	// or if the data has invalid coordinates
	if len(data) == 0 {
		return nil, newEmptyCoordinateError(cmd.String())
	} else if len(data)%2 != 0 {
		return nil, newInvalidCoordinateError(cmd.String(), data)
	}

	points := make([]geom.Point, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		p, err := parsePoint(data[i], data[i+1], cmd.String())
		if err != nil {
			return nil, err
		}
		if !cmd.absolute {
			p = geom.Move(origin, geom.Vector{DX: p.X, DY: p.Y})
		}

		points = append(points, p)
		origin = p
	}

	return points, nil
}

// parsePoint parses the given x and y axes and returns a Point
func parsePoint(x, y, command string) (geom.Point, error) {
	xAxis, err := parseAbscissa(x, command)
	if err != nil {
		return geom.Point{}, err
	}
	yAxis, err := parseOrdinate(y, command)
	if err != nil {
		return geom.Point{}, err
	}

	return geom.Point{
		X: xAxis,
		Y: yAxis,
	}, nil
}

// parseAbscissa parses the given x-axes and returns its value
func parseAbscissa(x, command string) (float64, error) {
	axis, ok := parseNumber(x)
	if !ok {
		return 0, newInvalidXError(command, x)
	}

	return axis, nil
}

// parseOrdinate parses the given y-axes and returns its value
func parseOrdinate(y, command string) (float64, error) {
	axis, ok := parseNumber(y)
	if !ok {
		return 0, newInvalidYError(command, y)
	}

	return axis, nil
}

// parseNumber parses a finite decimal number. Hex floats, infinities
// and NaN are not valid path data even though strconv accepts them.
func parseNumber(s string) (float64, bool) {
	if strings.ContainsAny(s, "xXpP_") {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}

	return value, true
}

// formatPoint writes p as an "x y" pair.
func formatPoint(b *strings.Builder, p geom.Point) {
	b.WriteString(formatFloat(p.X))
	b.WriteByte(' ')
	b.WriteString(formatFloat(p.Y))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
