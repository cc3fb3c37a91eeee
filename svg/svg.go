// Package svg reads the paths of an SVG document into segments that can
// be measured, moved and written back out.
package svg

import (
	"encoding/xml"

	"github.com/google/uuid"

	"github.com/mindera-gaming/svg-placer/geom"
)

const (
	groupElement = "g"
	pathElement  = "path"
)

var _ geom.Placeable[Path] = Path{}

// Path is a path element of a document and the segments it draws.
type Path struct {
	ID   string
	Data []PathData
}

// Bounds returns the box around every segment of the path.
func (p Path) Bounds() geom.Bounds {
	var bounds geom.Bounds
	for _, d := range p.Data {
		bounds = bounds.Union(d.Bounds())
	}

	return bounds
}

// Center returns the center of the path's bounds. A path without
// segments is centered on the origin.
func (p Path) Center() geom.Point {
	return p.Bounds().Center()
}

// Translate returns a copy of the path with every segment moved by offset.
func (p Path) Translate(offset geom.Vector) Path {
	if len(p.Data) == 0 {
		return p
	}

	data := make([]PathData, len(p.Data))
	for i, d := range p.Data {
		data[i] = d.Translate(offset)
	}

	return Path{
		ID:   p.ID,
		Data: data,
	}
}

type svgElements struct {
	XMLName  xml.Name  `xml:"svg"`
	Elements []element `xml:",any"`
}

type element struct {
	XMLName  xml.Name
	ID       string    `xml:"id,attr"`
	Data     string    `xml:"d,attr"`
	Elements []element `xml:",any"`
}

// parser collects the paths of a single document
type parser struct {
	options ParserOptions
	paths   []Path
}

// ParsePath decodes an SVG document and returns its paths in document
// order, including the ones nested in groups. Paths without segments
// are left out.
func ParsePath(data []byte, options ParserOptions) ([]Path, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	svg := svgElements{}
	if err := xml.Unmarshal(data, &svg); err != nil {
		return nil, err
	}

	p := parser{options: options}
	if err := p.parseElements(svg.Elements); err != nil {
		return nil, err
	}

	return p.paths, nil
}

func (p *parser) parseElements(elements []element) error {
	for _, e := range elements {
		var err error

		switch e.XMLName.Local {
		case groupElement:
			err = p.parseElements(e.Elements)
		case pathElement:
			err = p.parsePath(e)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (p *parser) parsePath(e element) error {
	raw := path{
		ID:   e.ID,
		Data: e.Data,
	}
	raw.Clean()

	data, err := raw.Parse(p.options)
	if err != nil {
		return PathError{ID: raw.ID, Err: err}
	}
	if len(data) == 0 {
		return nil
	}

	id := raw.ID
	if id == "" && p.options.GenerateIDs {
		id = uuid.NewString()
	}
	p.paths = append(p.paths, Path{
		ID:   id,
		Data: data,
	})

	return nil
}
