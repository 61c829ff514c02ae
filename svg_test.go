package flowerclock

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestWriteSVGTree(t *testing.T) {
	svg := NewSVG("c", 820)
	svg.Style = "transition-duration: 1250ms;"
	g := NewGroup("petals").AddClass("petals")
	g.SetPosition(402.5, 410)
	svg.AddChild(g)

	p := NewRect("p", 15, 385).AddClass("petal")
	p.RX, p.RY = 7.5, 7.5
	p.SetOrigin(7.5, 0)
	p.SetOffset(0, -7.5)
	p.SetRotation(90)
	g.AddChild(p)

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 820 820" style="transition-duration: 1250ms;">
  <g class="petals" transform="translate(402.5,410)">
    <rect class="petal" transform="rotate(90,7.5 0),translate(0,-7.5)" width="15" height="385" rx="7.5" ry="7.5"/>
  </g>
</svg>
`
	if got := SVGString(svg); got != want {
		t.Errorf("SVGString =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteSVGShapes(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"line", NewLine("l", 0, 0, 0, 394), `<line x1="0" y1="0" x2="0" y2="394" stroke-width="1"/>` + "\n"},
		{"circle", NewCircle("c", 0, 394, 8), `<circle cx="0" cy="394" r="8"/>` + "\n"},
		{"group", NewGroup("g"), "<g/>\n"},
	}
	for _, tt := range tests {
		if got := SVGString(tt.node); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestWriteSVGOpacityAndVisibility(t *testing.T) {
	n := NewGroup("g")
	n.Alpha = 0.5
	n.Visible = false
	got := SVGString(n)
	if !strings.Contains(got, `opacity="0.5"`) || !strings.Contains(got, `display="none"`) {
		t.Errorf("got %q", got)
	}
}

func TestWriteSVGEscapes(t *testing.T) {
	svg := NewSVG("c", 10)
	svg.Style = `font-family: "A&B"`
	got := SVGString(svg)
	if !strings.Contains(got, `style="font-family: &#34;A&amp;B&#34;"`) {
		t.Errorf("style not escaped: %q", got)
	}
}

func TestWriteSVGClock(t *testing.T) {
	s, c, _ := newTestClock(t, at(3, 15, 45))
	advanceFor(s, 3*time.Second, 16*time.Millisecond)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, c.Chart()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 820 820" style="transition-duration: 1250ms;" class="enter">`,
		`<g class="pins" transform="translate(410,410)">`,
		`<g class="pin" transform="rotate(270,0 0)">`,
		`<line class="pin-line" x1="0" y1="0" x2="0" y2="394" stroke-width="1"/>`,
		`<circle class="pin-head" cx="0" cy="394" r="3"/>`,
		`transform="rotate(1350,7.5 0),translate(0,-7.5)" width="15" height="192.5"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %s\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<rect"); n != 2 {
		t.Errorf("%d rects, want 2", n)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGError(t *testing.T) {
	if err := WriteSVG(failingWriter{}, NewGroup("g")); err == nil {
		t.Error("expected error")
	}
}
