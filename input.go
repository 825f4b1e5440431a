package skitter

// ButtonInput tracks which mouse buttons are down, plus the buttons that
// changed state since the last Clear.
type ButtonInput struct {
	pressed      [mouseButtonCount]bool
	justPressed  [mouseButtonCount]bool
	justReleased [mouseButtonCount]bool
}

// Press marks b as down.
func (in *ButtonInput) Press(b MouseButton) {
	if b >= mouseButtonCount {
		return
	}
	if !in.pressed[b] {
		in.justPressed[b] = true
	}
	in.pressed[b] = true
}

// Release marks b as up.
func (in *ButtonInput) Release(b MouseButton) {
	if b >= mouseButtonCount {
		return
	}
	if in.pressed[b] {
		in.justReleased[b] = true
	}
	in.pressed[b] = false
}

// Set presses or releases b.
func (in *ButtonInput) Set(b MouseButton, down bool) {
	if down {
		in.Press(b)
	} else {
		in.Release(b)
	}
}

// Pressed reports whether b is currently down.
func (in *ButtonInput) Pressed(b MouseButton) bool {
	return b < mouseButtonCount && in.pressed[b]
}

// JustPressed reports whether b went down since the last Clear.
func (in *ButtonInput) JustPressed(b MouseButton) bool {
	return b < mouseButtonCount && in.justPressed[b]
}

// JustReleased reports whether b went up since the last Clear.
func (in *ButtonInput) JustReleased(b MouseButton) bool {
	return b < mouseButtonCount && in.justReleased[b]
}

// Clear forgets the just-pressed and just-released state. Frontends call it
// once per tick, before feeding the new tick's input.
func (in *ButtonInput) Clear() {
	in.justPressed = [mouseButtonCount]bool{}
	in.justReleased = [mouseButtonCount]bool{}
}

// Window is the window state the frame driver reads: its logical size and
// the cursor position, if the cursor is over the window.
type Window struct {
	Width, Height float64

	cursor    Vec2
	hasCursor bool
}

// CursorPosition returns the cursor in logical pixels. ok is false when the
// cursor is outside the window.
func (w *Window) CursorPosition() (pos Vec2, ok bool) {
	return w.cursor, w.hasCursor
}

// MoveCursor records a cursor position. Positions outside
// [0, Width) x [0, Height) leave the window without a cursor.
func (w *Window) MoveCursor(p Vec2) {
	if p.X < 0 || p.Y < 0 || p.X >= w.Width || p.Y >= w.Height {
		w.LeaveCursor()
		return
	}
	w.cursor = p
	w.hasCursor = true
}

// LeaveCursor marks the cursor as absent.
func (w *Window) LeaveCursor() {
	w.cursor = Vec2{}
	w.hasCursor = false
}

// Resize updates the logical size, dropping the cursor if it no longer
// falls inside.
func (w *Window) Resize(width, height float64) {
	w.Width, w.Height = width, height
	if w.hasCursor {
		w.MoveCursor(w.cursor)
	}
}
