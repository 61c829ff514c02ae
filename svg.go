package flowerclock

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// WriteSVG writes the subtree rooted at n as indented SVG markup. Nodes of
// NodeTypeSVG carry the namespace and viewBox; attributes that are zero or
// empty are omitted except for the geometry each element needs.
func WriteSVG(w io.Writer, n *Node) error {
	sw := &svgWriter{w: w}
	sw.node(n, 0)
	if sw.err != nil {
		return fmt.Errorf("write svg: %w", sw.err)
	}
	return nil
}

// SVGString returns WriteSVG's output as a string.
func SVGString(n *Node) string {
	var buf bytes.Buffer
	_ = WriteSVG(&buf, n)
	return buf.String()
}

type svgWriter struct {
	w   io.Writer
	err error
}

func (sw *svgWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

func (sw *svgWriter) attr(name, value string) {
	if sw.err != nil {
		return
	}
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(value)); err != nil {
		sw.err = err
		return
	}
	sw.printf(" %s=\"%s\"", name, buf.String())
}

func (sw *svgWriter) num(name string, v float64) {
	sw.attr(name, formatNum(v))
}

func (sw *svgWriter) node(n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	tag := n.Type.Tag()
	sw.printf("%s<%s", indent, tag)

	if n.Type == NodeTypeSVG {
		sw.attr("xmlns", svgNamespace)
		vb := n.ViewBox
		sw.attr("viewBox", formatNum(vb.X)+" "+formatNum(vb.Y)+" "+formatNum(vb.Width)+" "+formatNum(vb.Height))
		if n.Style != "" {
			sw.attr("style", n.Style)
		}
	}
	if len(n.Classes) > 0 {
		sw.attr("class", n.ClassAttr())
	}
	if tr := n.TransformString(); tr != "" {
		sw.attr("transform", tr)
	}

	switch n.Type {
	case NodeTypeRect:
		sw.num("width", n.Width)
		sw.num("height", n.Height)
		if n.RX != 0 || n.RY != 0 {
			sw.num("rx", n.RX)
			sw.num("ry", n.RY)
		}
	case NodeTypeLine:
		sw.num("x1", n.X1)
		sw.num("y1", n.Y1)
		sw.num("x2", n.X2)
		sw.num("y2", n.Y2)
		sw.num("stroke-width", n.StrokeWidth)
	case NodeTypeCircle:
		sw.num("cx", n.CX)
		sw.num("cy", n.CY)
		sw.num("r", n.R)
	}
	if n.Alpha != 1 {
		sw.num("opacity", n.Alpha)
	}
	if !n.Visible {
		sw.attr("display", "none")
	}

	if len(n.children) == 0 {
		sw.printf("/>\n")
		return
	}
	sw.printf(">\n")
	for _, child := range n.children {
		sw.node(child, depth+1)
	}
	sw.printf("%s</%s>\n", indent, tag)
}
