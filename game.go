package skitter

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

const (
	panSpeed       = 240.0 // world units per second at zoom 1
	recenterTime   = 0.4   // seconds
	fpsRefreshTime = 0.5   // seconds
)

// Game is an ebiten.Game that owns the world, feeds it the window and
// mouse state each tick, and runs the frame driver.
type Game struct {
	cfg    RunConfig
	world  donburi.World
	input  ButtonInput
	driver *Driver
	script *Script

	layoutW, layoutH int

	whitePixel *ebiten.Image
	fpsText    string
	fpsAge     float64
}

// NewGame validates cfg, builds the startup world, and loads the enemy
// texture and input script if configured.
func NewGame(cfg RunConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	SetDebug(cfg.Debug)

	g := &Game{
		cfg:     cfg,
		world:   NewWorld(cfg),
		driver:  NewDriver(cfg.trigger()),
		layoutW: cfg.Width,
		layoutH: cfg.Height,
	}

	if cfg.TexturePath != "" {
		img, _, err := ebitenutil.NewImageFromFile(cfg.TexturePath)
		if err != nil {
			return nil, fmt.Errorf("load enemy texture: %w", err)
		}
		entry, err := Enemy(g.world)
		if err != nil {
			return nil, err
		}
		SpriteComponent.Get(entry).Texture = img
	}

	if cfg.ScriptPath != "" {
		script, err := LoadScriptFile(cfg.ScriptPath)
		if err != nil {
			return nil, err
		}
		g.script = script
	}
	return g, nil
}

// World returns the game's entity world.
func (g *Game) World() donburi.World {
	return g.world
}

// Update captures input, runs the frame driver, advances the camera, and
// delivers queued events. A precondition error from the driver is returned
// to ebiten, which stops the game.
func (g *Game) Update() error {
	dt := tickSeconds(ebiten.TPS(), ebiten.ActualTPS())

	g.input.Clear()
	win, winErr := PrimaryWindow(g.world)
	if winErr == nil {
		g.syncLayout(win)
		if g.script != nil {
			g.script.Step(win, &g.input)
		} else {
			g.captureInput(win)
		}
	}

	g.updateCamera(dt)

	if err := g.driver.Update(g.world, &g.input); err != nil {
		return err
	}

	events.ProcessAllEvents(g.world)

	g.fpsAge += dt
	if g.fpsAge >= fpsRefreshTime {
		g.fpsAge = 0
		g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return nil
}

// tickSeconds returns the length of one Update. With ebiten.SyncWithFPS the
// configured tps is negative, so the measured rate is used, falling back to
// ebiten.DefaultTPS before one has been measured.
func tickSeconds(tps int, actual float64) float64 {
	if tps > 0 {
		return 1 / float64(tps)
	}
	if actual > 0 {
		return 1 / actual
	}
	return 1.0 / ebiten.DefaultTPS
}

// syncLayout applies the latest Layout size to the window and camera.
func (g *Game) syncLayout(win *Window) {
	w, h := float64(g.layoutW), float64(g.layoutH)
	if win.Width == w && win.Height == h {
		return
	}
	win.Resize(w, h)
	if cam, err := PrimaryCamera(g.world); err == nil {
		cam.Viewport = Rect{Width: w, Height: h}
	}
	debugf("window resized to %.0fx%.0f", w, h)
}

var ebitenButtons = [mouseButtonCount]ebiten.MouseButton{
	MouseButtonLeft:   ebiten.MouseButtonLeft,
	MouseButtonRight:  ebiten.MouseButtonRight,
	MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// captureInput reads the live mouse into g.input and win.
func (g *Game) captureInput(win *Window) {
	for b, eb := range ebitenButtons {
		g.input.Set(MouseButton(b), ebiten.IsMouseButtonPressed(eb))
	}
	if !ebiten.IsFocused() {
		win.LeaveCursor()
		return
	}
	x, y := ebiten.CursorPosition()
	win.MoveCursor(Vec2{float64(x), float64(y)})
}

// updateCamera pans with the arrow keys, recenters on the enemy with C,
// and advances any scroll animation.
func (g *Game) updateCamera(dt float64) {
	cam, err := PrimaryCamera(g.world)
	if err != nil {
		return
	}

	step := panSpeed * dt / cam.Zoom
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += step
	}
	if dx != 0 || dy != 0 {
		cam.Pan(dx, dy)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if t, err := EnemyTransform(g.world); err == nil {
			cam.ScrollTo(t.Position, recenterTime, ease.OutQuad)
		}
	}
	cam.Update(float32(dt))
}

// Draw clears the screen and renders the enemy through the camera.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.toRGBA())

	cam, err := PrimaryCamera(g.world)
	if err != nil {
		return
	}
	entry, err := Enemy(g.world)
	if err != nil {
		return
	}
	g.drawSprite(screen, cam, TransformComponent.GetValue(entry), SpriteComponent.GetValue(entry))

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, g.fpsText)
	}
}

// drawSprite stretches the sprite's image over its box, then applies the
// camera view matrix.
func (g *Game) drawSprite(screen *ebiten.Image, cam *Camera, t Transform, s Sprite) {
	img := s.Texture
	op := &ebiten.DrawImageOptions{}
	if img == nil {
		if g.whitePixel == nil {
			g.whitePixel = ebiten.NewImage(1, 1)
			g.whitePixel.Fill(ColorWhite.toRGBA())
		}
		img = g.whitePixel
		op.ColorScale.ScaleWithColor(s.Color.toRGBA())
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	box := BoxFromTransform(t)
	topLeft := box.Min()
	op.GeoM.Scale(t.Scale.X/float64(b.Dx()), t.Scale.Y/float64(b.Dy()))
	op.GeoM.Translate(topLeft.X, topLeft.Y)

	cam.computeMatrices()
	op.GeoM.Concat(geoM(cam.viewMatrix))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// Layout makes one logical pixel equal one device-independent pixel of the
// window. The window and camera pick up the new size on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window and runs g until the window closes or Update fails.
func (g *Game) Run() error {
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// Run builds a Game from cfg and runs it.
func Run(cfg RunConfig) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	return g.Run()
}
