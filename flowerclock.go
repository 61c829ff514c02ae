package flowerclock

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent draws nothing.
var ColorTransparent = Color{}

// RGBA returns the color as a straight-alpha color.NRGBA.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: unit8(c.R),
		G: unit8(c.G),
		B: unit8(c.B),
		A: unit8(c.A),
	}
}

// Hex builds a Color from a 0xRRGGBB value with full opacity.
func Hex(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

func unit8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType selects the SVG element a Node stands for.
type NodeType uint8

const (
	NodeTypeGroup  NodeType = iota // <g>, no visual output of its own
	NodeTypeSVG                    // <svg> document root with a viewBox
	NodeTypeRect                   // <rect>, optionally rounded
	NodeTypeLine                   // <line>
	NodeTypeCircle                 // <circle>
)

// Tag returns the SVG element name for the node type.
func (t NodeType) Tag() string {
	switch t {
	case NodeTypeSVG:
		return "svg"
	case NodeTypeRect:
		return "rect"
	case NodeTypeLine:
		return "line"
	case NodeTypeCircle:
		return "circle"
	default:
		return "g"
	}
}

// Attr names a numeric node attribute that a Transition can interpolate.
type Attr uint8

const (
	AttrRotation Attr = iota // Node.Rotation, degrees
	AttrWidth                // Node.Width
	AttrHeight               // Node.Height
	AttrX2                   // Node.X2
	AttrY2                   // Node.Y2
	AttrCX                   // Node.CX
	AttrCY                   // Node.CY
	AttrR                    // Node.R
	AttrAlpha                // Node.Alpha
)

var attrNames = [...]string{
	AttrRotation: "transform",
	AttrWidth:    "width",
	AttrHeight:   "height",
	AttrX2:       "x2",
	AttrY2:       "y2",
	AttrCX:       "cx",
	AttrCY:       "cy",
	AttrR:        "r",
	AttrAlpha:    "opacity",
}

// String returns the SVG attribute the value is written to.
func (a Attr) String() string {
	if int(a) < len(attrNames) {
		return attrNames[a]
	}
	return "unknown"
}
