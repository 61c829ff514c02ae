package flowerclock

import (
	"context"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// halfBlock paints the upper half of a cell with the foreground color and
// the lower half with the background, giving two pixels per cell.
const halfBlock = '▀'

// Terminal draws a scene on a tcell screen, two raster rows per text row.
type Terminal struct {
	screen tcell.Screen
	sheet  *Stylesheet
	frame  *image.RGBA
}

// NewTerminal wraps an initialized screen. A nil sheet uses DefaultStylesheet.
func NewTerminal(screen tcell.Screen, sheet *Stylesheet) *Terminal {
	if sheet == nil {
		sheet = DefaultStylesheet()
	}
	return &Terminal{screen: screen, sheet: sheet}
}

// Draw rasterizes root at the screen's size and shows it.
func (t *Terminal) Draw(root *Node) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	w, h := cols, rows*2
	if t.frame == nil || t.frame.Bounds().Dx() != w || t.frame.Bounds().Dy() != h {
		t.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	Rasterize(t.frame, root, t.sheet)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := t.frame.RGBAAt(x, y*2)
			bottom := t.frame.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(cellColor(top)).
				Background(cellColor(bottom))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RunTerminal drives d on screen until ctx is cancelled or the user presses
// q, Esc or Ctrl-C. The screen must already be initialized; the caller
// finalizes it.
func RunTerminal(ctx context.Context, d *Driver, screen tcell.Screen, fps int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go pollEvents(ctx, screen, events)

	term := NewTerminal(screen, nil)
	term.Draw(d.Scene().Root())

	return d.Run(ctx, fps, func() error {
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					cancel()
					return nil
				}
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if isQuitKey(ev) {
						cancel()
						return nil
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			default:
				term.Draw(d.Scene().Root())
				return nil
			}
		}
	})
}

// pollEvents forwards screen events until the screen is finalized (PollEvent
// returns nil) or ctx is done.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
