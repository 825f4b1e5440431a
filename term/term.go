// Package term runs the skitter world in a terminal. Each cell is one
// logical pixel of the window; mouse button 1 is the primary button.
package term

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/skitter"
)

// DefaultZoom fits the default 100x100 enemy in roughly 20 columns.
const DefaultZoom = 0.2

const (
	tickRate   = time.Second / 60
	enemyGlyph = '█'
)

// Frontend feeds tcell events into a world and draws the enemy as a block
// of cells.
type Frontend struct {
	screen tcell.Screen
	world  donburi.World
	driver *skitter.Driver
	input  skitter.ButtonInput
	style  tcell.Style
}

// New attaches a frontend to an initialized screen. Mouse reporting is
// enabled and the world's window and camera are sized to the screen.
func New(screen tcell.Screen, world donburi.World, driver *skitter.Driver) *Frontend {
	screen.EnableMouse()
	f := &Frontend{
		screen: screen,
		world:  world,
		driver: driver,
		style:  tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
	if entry, err := skitter.Enemy(world); err == nil {
		f.style = tcell.StyleDefault.Foreground(cellColor(skitter.SpriteComponent.Get(entry).Color))
	}
	f.resize()
	return f
}

func cellColor(c skitter.Color) tcell.Color {
	to8 := func(v float64) int32 { return int32(math.Max(0, math.Min(255, v*255))) }
	return tcell.NewRGBColor(to8(c.R), to8(c.G), to8(c.B))
}

func (f *Frontend) resize() {
	w, h := f.screen.Size()
	if win, err := skitter.PrimaryWindow(f.world); err == nil {
		win.Resize(float64(w), float64(h))
	}
	if cam, err := skitter.PrimaryCamera(f.world); err == nil {
		cam.Viewport = skitter.Rect{Width: float64(w), Height: float64(h)}
	}
}

// HandleEvent applies one tcell event. quit is true for Esc, Ctrl-C, or q.
func (f *Frontend) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.resize()
		f.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if win, err := skitter.PrimaryWindow(f.world); err == nil {
			// Aim at the middle of the cell.
			win.MoveCursor(skitter.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
		}
		buttons := ev.Buttons()
		f.input.Set(skitter.MouseButtonLeft, buttons&tcell.Button1 != 0)
		f.input.Set(skitter.MouseButtonRight, buttons&tcell.Button2 != 0)
		f.input.Set(skitter.MouseButtonMiddle, buttons&tcell.Button3 != 0)
	}
	return false
}

// Tick runs the frame driver and delivers its events.
func (f *Frontend) Tick() error {
	err := f.driver.Update(f.world, &f.input)
	f.input.Clear()
	if err != nil {
		return err
	}
	events.ProcessAllEvents(f.world)
	return nil
}

// Draw renders the enemy and a status line.
func (f *Frontend) Draw() {
	f.screen.Clear()
	defer f.screen.Show()

	cam, err := skitter.PrimaryCamera(f.world)
	if err != nil {
		return
	}
	t, err := skitter.EnemyTransform(f.world)
	if err != nil {
		return
	}

	w, h := f.screen.Size()
	box := skitter.BoxFromTransform(t)
	visible := onScreen(cam.VisibleBounds(), box)
	if visible {
		f.drawBox(cam, box, w, h)
	}

	status := fmt.Sprintf("enemy (%.1f, %.1f)  hold left button over it  q quits", t.Position.X, t.Position.Y)
	if !visible {
		status = fmt.Sprintf("enemy (%.1f, %.1f) off-screen  q quits", t.Position.X, t.Position.Y)
	}
	for i, r := range status {
		if i >= w {
			break
		}
		f.screen.SetContent(i, h-1, r, nil, tcell.StyleDefault)
	}
}

// onScreen reports whether box overlaps the world-space rect vis.
func onScreen(vis skitter.Rect, box skitter.Box) bool {
	lo, hi := box.Min(), box.Max()
	return hi.X > vis.X && lo.X < vis.X+vis.Width &&
		hi.Y > vis.Y && lo.Y < vis.Y+vis.Height
}

// drawBox fills every cell whose center lies inside box on screen.
func (f *Frontend) drawBox(cam *skitter.Camera, box skitter.Box, w, h int) {
	a := cam.WorldToViewport(box.Min())
	b := cam.WorldToViewport(box.Max())
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)

	for y := max(0, int(math.Floor(y0))); y < min(h, int(math.Ceil(y1))); y++ {
		cy := float64(y) + 0.5
		if cy < y0 || cy >= y1 {
			continue
		}
		for x := max(0, int(math.Floor(x0))); x < min(w, int(math.Ceil(x1))); x++ {
			cx := float64(x) + 0.5
			if cx < x0 || cx >= x1 {
				continue
			}
			f.screen.SetContent(x, y, enemyGlyph, nil, f.style)
		}
	}
}

// Run polls events on a separate goroutine and ticks at 60Hz until ctx is
// done, the user quits, or the driver fails.
func (f *Frontend) Run(ctx context.Context) error {
	evCh := make(chan tcell.Event, 64)
	quitCh := make(chan struct{})
	defer close(quitCh)
	go f.screen.ChannelEvents(evCh, quitCh)

	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-evCh:
			if !ok {
				return nil
			}
			if f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if err := f.Tick(); err != nil {
				return err
			}
			f.Draw()
		}
	}
}
