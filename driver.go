package skitter

import (
	"github.com/yohamta/donburi"
)

// Driver moves the enemy away from the cursor. Call Update once per tick.
type Driver struct {
	// Button is the mouse button that repels. Defaults to the left button.
	Button MouseButton
	// Trigger selects held (every tick) or press (edge) behavior.
	Trigger Trigger
}

// NewDriver returns a Driver for the left button with the given trigger.
func NewDriver(trigger Trigger) *Driver {
	return &Driver{Button: MouseButtonLeft, Trigger: trigger}
}

func (d *Driver) triggered(input *ButtonInput) bool {
	if d.Trigger == TriggerPress {
		return input.JustPressed(d.Button)
	}
	return input.Pressed(d.Button)
}

// Update runs one tick. Guards are checked in order; an unmet guard ends
// the tick without touching the world. A world without exactly one window,
// camera, or enemy is reported as an error wrapping ErrPrecondition.
// On a hit, the enemy is moved and a RepelEvent is published; subscribers
// run on the next ProcessEvents.
func (d *Driver) Update(world donburi.World, input *ButtonInput) error {
	if !d.triggered(input) {
		return nil
	}

	win, err := PrimaryWindow(world)
	if err != nil {
		return err
	}
	cursor, ok := win.CursorPosition()
	if !ok {
		return nil
	}

	cam, err := PrimaryCamera(world)
	if err != nil {
		return err
	}
	point, ok := cam.ViewportToWorld(cursor)
	if !ok {
		// The cursor is inside the window, so this means a degenerate
		// camera. Skip the tick rather than abort.
		debugf("cursor (%.1f,%.1f) did not map to world space", cursor.X, cursor.Y)
		return nil
	}

	entry, err := Enemy(world)
	if err != nil {
		return err
	}
	t := TransformComponent.Get(entry)
	if !BoxFromTransform(*t).Contains(point) {
		return nil
	}

	from := t.Position
	t.Position = Repel(from, point)
	debugf("repel enemy from (%.1f,%.1f) to (%.1f,%.1f), cursor world (%.1f,%.1f)",
		from.X, from.Y, t.Position.X, t.Position.Y, point.X, point.Y)

	RepelEventType.Publish(world, RepelEvent{
		Entity: entry.Entity(),
		Point:  point,
		From:   from,
		To:     t.Position,
	})
	return nil
}
