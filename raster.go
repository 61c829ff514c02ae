package flowerclock

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Style is the paint applied to nodes carrying a class. Zero fields do not
// override what earlier classes set.
type Style struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	// Rotate turns an <svg> node's content around its viewBox center, in degrees.
	Rotate float64
}

// Stylesheet maps class names to styles for Rasterize. It stands in for
// the page stylesheet an SVG would be shown with.
type Stylesheet struct {
	Background Color
	Classes    map[string]Style
}

// DefaultStylesheet colors the flower clock classes. The "enter" rule turns
// the chart upright so that zero points at twelve o'clock.
func DefaultStylesheet() *Stylesheet {
	petal := Hex(0xf25f5c)
	petal.A = 0.85
	pin := Hex(0xfffffe)
	return &Stylesheet{
		Background: Hex(0x1b1b2f),
		Classes: map[string]Style{
			"petal":    {Fill: petal},
			"pin-line": {Stroke: pin},
			"pin-head": {Fill: pin},
			"enter":    {Rotate: 180},
		},
	}
}

// resolve merges the styles of n's classes in class order.
func (ss *Stylesheet) resolve(n *Node) Style {
	var out Style
	if ss == nil {
		return out
	}
	for _, c := range n.Classes {
		st, ok := ss.Classes[c]
		if !ok {
			continue
		}
		if st.Fill != (Color{}) {
			out.Fill = st.Fill
		}
		if st.Stroke != (Color{}) {
			out.Stroke = st.Stroke
		}
		if st.StrokeWidth != 0 {
			out.StrokeWidth = st.StrokeWidth
		}
		if st.Rotate != 0 {
			out.Rotate = st.Rotate
		}
	}
	return out
}

// Rasterize paints the first <svg> at or under root into dst, scaling its
// viewBox to fit and centering it. Without an <svg> the subtree is drawn in
// scene coordinates. A nil sheet uses DefaultStylesheet.
//
// World transforms of root's tree are refreshed first, so nodes changed
// since the last Scene.Advance are drawn where they are now.
func Rasterize(dst *image.RGBA, root *Node, sheet *Stylesheet) {
	if sheet == nil {
		sheet = DefaultStylesheet()
	}
	bounds := dst.Bounds()
	draw.Draw(dst, bounds, image.NewUniform(sheet.Background.RGBA()), image.Point{}, draw.Src)
	if root == nil {
		return
	}
	refreshWorldTransforms(root)

	r := &rasterizer{
		dst:   dst,
		sheet: sheet,
		z:     vector.NewRasterizer(bounds.Dx(), bounds.Dy()),
	}

	svg := root
	if svg.Type != NodeTypeSVG {
		if found := root.Select("svg"); found != nil {
			svg = found
		}
	}
	base := identityTransform
	if svg.Type == NodeTypeSVG {
		// Node world transforms are relative to the scene; map them into
		// the viewBox first.
		base = multiplyAffine(r.viewTransform(svg), invertAffine(svg.worldTransform))
	}
	r.draw(svg, base)
}

type rasterizer struct {
	dst   *image.RGBA
	sheet *Stylesheet
	z     *vector.Rasterizer
}

// viewTransform fits the viewBox into dst and applies any stylesheet
// rotation of the <svg> node.
func (r *rasterizer) viewTransform(svg *Node) [6]float64 {
	vb := svg.ViewBox
	if vb.Width <= 0 || vb.Height <= 0 {
		return identityTransform
	}
	w := float64(r.dst.Bounds().Dx())
	h := float64(r.dst.Bounds().Dy())
	s := math.Min(w/vb.Width, h/vb.Height)
	view := [6]float64{s, 0, 0, s, (w-vb.Width*s)/2 - vb.X*s, (h-vb.Height*s)/2 - vb.Y*s}

	if rot := r.sheet.resolve(svg).Rotate; rot != 0 {
		turn := &Node{Rotation: rot}
		turn.OriginX = vb.X + vb.Width/2
		turn.OriginY = vb.Y + vb.Height/2
		view = multiplyAffine(view, computeLocalTransform(turn))
	}
	return view
}

func (r *rasterizer) draw(n *Node, base [6]float64) {
	if !n.Visible {
		return
	}
	m := multiplyAffine(base, n.worldTransform)
	alpha := n.worldAlpha
	st := r.sheet.resolve(n)

	switch n.Type {
	case NodeTypeRect:
		r.fillRect(n, m, st, alpha)
	case NodeTypeLine:
		r.strokeLine(n, m, st, alpha)
	case NodeTypeCircle:
		r.fillCircle(n, m, st, alpha)
	}

	for _, child := range n.children {
		r.draw(child, base)
	}
}

func (r *rasterizer) begin() {
	b := r.dst.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
}

func (r *rasterizer) moveTo(m [6]float64, x, y float64) {
	px, py := transformPoint(m, x, y)
	r.z.MoveTo(float32(px), float32(py))
}

func (r *rasterizer) lineTo(m [6]float64, x, y float64) {
	px, py := transformPoint(m, x, y)
	r.z.LineTo(float32(px), float32(py))
}

func (r *rasterizer) cubeTo(m [6]float64, x1, y1, x2, y2, x, y float64) {
	ax, ay := transformPoint(m, x1, y1)
	bx, by := transformPoint(m, x2, y2)
	cx, cy := transformPoint(m, x, y)
	r.z.CubeTo(float32(ax), float32(ay), float32(bx), float32(by), float32(cx), float32(cy))
}

func (r *rasterizer) paint(c Color, alpha float64) {
	c.A *= alpha
	if c.A <= 0 {
		return
	}
	r.z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c.RGBA()), image.Point{})
}

func (r *rasterizer) fillRect(n *Node, m [6]float64, st Style, alpha float64) {
	w, h := n.Width, n.Height
	if w <= 0 || h <= 0 || st.Fill.A <= 0 {
		return
	}
	rx := math.Min(n.RX, w/2)
	ry := math.Min(n.RY, h/2)
	if rx <= 0 || ry <= 0 {
		rx, ry = 0, 0
	}
	kx, ky := rx*kappa, ry*kappa

	r.begin()
	r.moveTo(m, rx, 0)
	r.lineTo(m, w-rx, 0)
	if rx > 0 {
		r.cubeTo(m, w-rx+kx, 0, w, ry-ky, w, ry)
	}
	r.lineTo(m, w, h-ry)
	if rx > 0 {
		r.cubeTo(m, w, h-ry+ky, w-rx+kx, h, w-rx, h)
	}
	r.lineTo(m, rx, h)
	if rx > 0 {
		r.cubeTo(m, rx-kx, h, 0, h-ry+ky, 0, h-ry)
	}
	r.lineTo(m, 0, ry)
	if rx > 0 {
		r.cubeTo(m, 0, ry-ky, rx-kx, 0, rx, 0)
	}
	r.z.ClosePath()
	r.paint(st.Fill, alpha)
}

func (r *rasterizer) strokeLine(n *Node, m [6]float64, st Style, alpha float64) {
	if st.Stroke.A <= 0 {
		return
	}
	x1, y1 := transformPoint(m, n.X1, n.Y1)
	x2, y2 := transformPoint(m, n.X2, n.Y2)
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	width := n.StrokeWidth
	if st.StrokeWidth > 0 {
		width = st.StrokeWidth
	}
	width = math.Max(width*scaleOf(m), 1)
	nx, ny := -dy/length*width/2, dx/length*width/2

	r.begin()
	r.z.MoveTo(float32(x1+nx), float32(y1+ny))
	r.z.LineTo(float32(x2+nx), float32(y2+ny))
	r.z.LineTo(float32(x2-nx), float32(y2-ny))
	r.z.LineTo(float32(x1-nx), float32(y1-ny))
	r.z.ClosePath()
	r.paint(st.Stroke, alpha)
}

func (r *rasterizer) fillCircle(n *Node, m [6]float64, st Style, alpha float64) {
	if n.R <= 0 || st.Fill.A <= 0 {
		return
	}
	cx, cy, rad := n.CX, n.CY, n.R
	k := rad * kappa

	r.begin()
	r.moveTo(m, cx+rad, cy)
	r.cubeTo(m, cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	r.cubeTo(m, cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	r.cubeTo(m, cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	r.cubeTo(m, cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	r.z.ClosePath()
	r.paint(st.Fill, alpha)
}

// scaleOf returns the uniform scale factor of an affine matrix.
func scaleOf(m [6]float64) float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}
