package svg

import (
	"encoding/xml"
	"strings"

	"github.com/mindera-gaming/svg-placer/geom"
)

const namespace = "http://www.w3.org/2000/svg"

type document struct {
	XMLName xml.Name   `xml:"svg"`
	Xmlns   string     `xml:"xmlns,attr"`
	ViewBox string     `xml:"viewBox,attr,omitempty"`
	Paths   []pathNode `xml:"path"`
}

type pathNode struct {
	ID   string `xml:"id,attr,omitempty"`
	Data string `xml:"d,attr"`
}

// FormatData writes segments as path data using absolute commands only.
// A new subpath is started whenever a segment does not begin where the
// previous one ended.
func FormatData(segments []PathData) string {
	var b strings.Builder

	for i, d := range segments {
		if i == 0 || d.Start != segments[i-1].End {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("M ")
			formatPoint(&b, d.Start)
		}

		if d.IsLine() {
			b.WriteString(" L ")
		} else {
			b.WriteString(" C ")
			formatPoint(&b, d.Control[0])
			b.WriteByte(' ')
			formatPoint(&b, d.Control[1])
			b.WriteByte(' ')
		}
		formatPoint(&b, d.End)
	}

	return b.String()
}

// Marshal writes paths as a standalone SVG document whose view box
// covers all of them.
func Marshal(paths []Path) ([]byte, error) {
	doc := document{
		Xmlns: namespace,
		Paths: make([]pathNode, 0, len(paths)),
	}

	for _, p := range paths {
		doc.Paths = append(doc.Paths, pathNode{
			ID:   p.ID,
			Data: FormatData(p.Data),
		})
	}
	doc.ViewBox = viewBox(paths)

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), out...), nil
}

// viewBox returns the "min-x min-y width height" box around paths, or
// nothing when they draw no segment.
func viewBox(paths []Path) string {
	var bounds geom.Bounds
	for _, p := range paths {
		bounds = bounds.Union(p.Bounds())
	}
	if bounds.Empty() {
		return ""
	}

	return strings.Join([]string{
		formatFloat(bounds.Min.X),
		formatFloat(bounds.Min.Y),
		formatFloat(bounds.Width()),
		formatFloat(bounds.Height()),
	}, " ")
}
