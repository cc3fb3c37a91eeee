// Package layout moves the paths of a document onto target points
// described by a YAML plan.
package layout

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mindera-gaming/svg-placer/geom"
	"github.com/mindera-gaming/svg-placer/logger"
	"github.com/mindera-gaming/svg-placer/svg"
)

// Coord is a point or an offset as written in plans and reports.
type Coord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (c Coord) Point() geom.Point {
	return geom.Point{X: c.X, Y: c.Y}
}

func coordOf(p geom.Point) Coord {
	return Coord{X: p.X, Y: p.Y}
}

// Plan says where path centers should end up. A target listed under
// Paths wins over All for that path; paths matching neither stay put.
type Plan struct {
	All   *Coord           `yaml:"all,omitempty"`
	Paths map[string]Coord `yaml:"paths,omitempty"`
}

// Target returns where the path with the given ID should be placed.
func (p Plan) Target(id string) (Coord, bool) {
	if target, ok := p.Paths[id]; ok {
		return target, true
	}
	if p.All != nil {
		return *p.All, true
	}

	return Coord{}, false
}

// LoadPlan decodes a YAML plan. Unknown keys are rejected.
func LoadPlan(r io.Reader) (Plan, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var plan Plan
	if err := decoder.Decode(&plan); err != nil && err != io.EOF {
		return Plan{}, fmt.Errorf("decoding plan: %w", err)
	}

	return plan, nil
}

// Validate checks that every path named by the plan exists.
func (p Plan) Validate(paths []svg.Path) error {
	known := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		known[path.ID] = struct{}{}
	}

	for id := range p.Paths {
		if _, ok := known[id]; !ok {
			return newUnknownPathError(id)
		}
	}

	return nil
}

// Result records what happened to one placed path.
type Result struct {
	ID     string `yaml:"id"`
	From   Coord  `yaml:"from"`
	To     Coord  `yaml:"to"`
	Offset Coord  `yaml:"offset"`
	Moved  bool   `yaml:"moved"`
}

type Options struct {
	// Threshold under which a center counts as already on its target.
	Threshold float64
	Logger    *zap.Logger
}

// Apply places every targeted path of paths according to plan. The
// returned slice holds the paths in their original order; the input
// paths are not modified.
func Apply(plan Plan, paths []svg.Path, options Options) ([]svg.Path, []Result, error) {
	if err := plan.Validate(paths); err != nil {
		return nil, nil, err
	}
	log := logger.OrNop(options.Logger)

	placed := make([]svg.Path, len(paths))
	var results []Result
	for i, path := range paths {
		placed[i] = path

		target, ok := plan.Target(path.ID)
		if !ok {
			continue
		}
		if len(path.Data) == 0 {
			log.Warn("skipping path without segments", zap.String("id", path.ID))
			continue
		}

		from := path.Center()
		dest := target.Point()
		result := Result{
			ID:   path.ID,
			From: coordOf(from),
			To:   target,
		}

		if !geom.AlmostEqual(from, dest, options.Threshold) {
			offset := geom.Offset(from, dest)
			placed[i] = geom.Place(dest, path)
			result.Offset = Coord{X: offset.DX, Y: offset.DY}
			result.Moved = true
		}

		log.Debug("placed path",
			zap.String("id", path.ID),
			zap.Float64("x", dest.X),
			zap.Float64("y", dest.Y),
			zap.Bool("moved", result.Moved),
		)
		results = append(results, result)
	}

	return placed, results, nil
}

// WriteReport writes results as a YAML list.
func WriteReport(w io.Writer, results []Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(results); err != nil {
		return err
	}

	return encoder.Close()
}
