package skitter

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// cameraParams is the subset of Camera state the cached matrices depend on.
type cameraParams struct {
	x, y, zoom, rotation float64
	viewport             Rect
}

// Camera controls the view into the world: position, zoom, rotation, and
// the window-space viewport it renders into.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the window-space rectangle this camera renders into.
	Viewport Rect

	cached      cameraParams
	valid       bool
	viewMatrix  [6]float64
	invViewProj [6]float64
	invertible  bool
	scrollTween *scrollAnim
}

// NewCamera creates a Camera centered on the world origin with the given
// viewport.
func NewCamera(viewport Rect) Camera {
	return Camera{
		Zoom:     1.0,
		Viewport: viewport,
	}
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(target.Y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Pan moves the camera by (dx, dy) world units and cancels any scroll.
func (c *Camera) Pan(dx, dy float64) {
	c.scrollTween = nil
	c.X += dx
	c.Y += dy
}

// Update advances the scroll animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}

// computeMatrices recomputes the cached matrices when any camera field has
// changed since the last call.
//
// view     = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// viewProj = NDC * view, where NDC maps the viewport onto [-1, 1] on both axes.
//
// Singularity is tested on view, whose determinant is zoom squared.
// invViewProj = inv(view) * inv(NDC).
func (c *Camera) computeMatrices() {
	p := cameraParams{c.X, c.Y, c.Zoom, c.Rotation, c.Viewport}
	if c.valid && p == c.cached {
		return
	}
	c.cached = p
	c.valid = true

	vp := c.Viewport
	cx := vp.X + vp.Width/2
	cy := vp.Y + vp.Height/2

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)
	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}

	if vp.Width <= 0 || vp.Height <= 0 {
		c.invertible = false
		return
	}
	invView, ok := invertAffine(c.viewMatrix)
	c.invertible = ok
	if !ok {
		return
	}
	c.invViewProj = multiplyAffine(invView, invNDCMatrix(vp))
}

// ndcMatrix maps window-space pixels inside vp onto normalized device
// coordinates. The viewport's top-left becomes (-1, -1).
func ndcMatrix(vp Rect) [6]float64 {
	sx := 2 / vp.Width
	sy := 2 / vp.Height
	return [6]float64{sx, 0, 0, sy, -vp.X*sx - 1, -vp.Y*sy - 1}
}

// invNDCMatrix is the inverse of ndcMatrix for a non-empty viewport.
func invNDCMatrix(vp Rect) [6]float64 {
	hw := vp.Width / 2
	hh := vp.Height / 2
	return [6]float64{hw, 0, 0, hh, vp.X + hw, vp.Y + hh}
}

// WorldToViewport converts a world-space point to window-space pixels.
func (c *Camera) WorldToViewport(world Vec2) Vec2 {
	c.computeMatrices()
	return transformPoint(c.viewMatrix, world)
}

// ViewportToWorld converts a window-space cursor position to world space.
// ok is false when the viewport is empty, the projection is singular
// (e.g. zero zoom), or the result is not finite.
func (c *Camera) ViewportToWorld(cursor Vec2) (world Vec2, ok bool) {
	c.computeMatrices()
	if !c.invertible {
		return Vec2{}, false
	}
	ndc := transformPoint(ndcMatrix(c.Viewport), cursor)
	world = transformPoint(c.invViewProj, ndc)
	if !world.IsFinite() {
		return Vec2{}, false
	}
	return world, true
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space. Returns the zero Rect if the camera cannot
// map its viewport.
func (c *Camera) VisibleBounds() Rect {
	vp := c.Viewport
	corners := [4]Vec2{
		{vp.X, vp.Y},
		{vp.X + vp.Width, vp.Y},
		{vp.X + vp.Width, vp.Y + vp.Height},
		{vp.X, vp.Y + vp.Height},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range corners {
		w, ok := c.ViewportToWorld(corner)
		if !ok {
			return Rect{}
		}
		minX, maxX = math.Min(minX, w.X), math.Max(maxX, w.X)
		minY, maxY = math.Min(minY, w.Y), math.Max(maxY, w.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
