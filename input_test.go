package skitter

import "testing"

func TestButtonInputPressRelease(t *testing.T) {
	var in ButtonInput
	if in.Pressed(MouseButtonLeft) {
		t.Fatal("zero ButtonInput reports left pressed")
	}

	in.Press(MouseButtonLeft)
	if !in.Pressed(MouseButtonLeft) || !in.JustPressed(MouseButtonLeft) {
		t.Error("after Press: want pressed and just pressed")
	}
	if in.Pressed(MouseButtonRight) {
		t.Error("Press(left) should not press right")
	}

	in.Clear()
	if !in.Pressed(MouseButtonLeft) {
		t.Error("Clear should keep the held state")
	}
	if in.JustPressed(MouseButtonLeft) {
		t.Error("Clear should forget just pressed")
	}

	// Pressing an already held button is not a new press.
	in.Press(MouseButtonLeft)
	if in.JustPressed(MouseButtonLeft) {
		t.Error("re-press of a held button reported just pressed")
	}

	in.Release(MouseButtonLeft)
	if in.Pressed(MouseButtonLeft) || !in.JustReleased(MouseButtonLeft) {
		t.Error("after Release: want released and just released")
	}
}

func TestButtonInputSet(t *testing.T) {
	var in ButtonInput
	in.Set(MouseButtonMiddle, true)
	if !in.Pressed(MouseButtonMiddle) {
		t.Error("Set(true) did not press")
	}
	in.Set(MouseButtonMiddle, false)
	if in.Pressed(MouseButtonMiddle) {
		t.Error("Set(false) did not release")
	}
}

func TestButtonInputOutOfRange(t *testing.T) {
	var in ButtonInput
	in.Press(MouseButton(200))
	if in.Pressed(MouseButton(200)) {
		t.Error("unknown button reported pressed")
	}
}

func TestWindowCursor(t *testing.T) {
	w := Window{Width: 640, Height: 480}
	if _, ok := w.CursorPosition(); ok {
		t.Fatal("new window has a cursor")
	}

	w.MoveCursor(Vec2{10, 20})
	p, ok := w.CursorPosition()
	if !ok || p != (Vec2{10, 20}) {
		t.Errorf("CursorPosition = %v, %v; want (10,20), true", p, ok)
	}

	w.LeaveCursor()
	if _, ok := w.CursorPosition(); ok {
		t.Error("cursor present after LeaveCursor")
	}
}

func TestWindowCursorOutside(t *testing.T) {
	w := Window{Width: 640, Height: 480}
	for _, p := range []Vec2{{-1, 10}, {10, -1}, {640, 10}, {10, 480}} {
		w.MoveCursor(Vec2{1, 1})
		w.MoveCursor(p)
		if _, ok := w.CursorPosition(); ok {
			t.Errorf("cursor at %v should be outside a 640x480 window", p)
		}
	}
}

func TestWindowResizeDropsCursor(t *testing.T) {
	w := Window{Width: 640, Height: 480}
	w.MoveCursor(Vec2{600, 400})
	w.Resize(320, 240)
	if _, ok := w.CursorPosition(); ok {
		t.Error("cursor outside the resized window should be dropped")
	}

	w.MoveCursor(Vec2{100, 100})
	w.Resize(800, 600)
	if p, ok := w.CursorPosition(); !ok || p != (Vec2{100, 100}) {
		t.Errorf("cursor after grow = %v, %v; want (100,100), true", p, ok)
	}
}

func TestParseTrigger(t *testing.T) {
	cases := map[string]Trigger{"": TriggerHeld, "held": TriggerHeld, "press": TriggerPress}
	for in, want := range cases {
		got, ok := ParseTrigger(in)
		if !ok || got != want {
			t.Errorf("ParseTrigger(%q) = %v, %v; want %v, true", in, got, ok, want)
		}
	}
	if _, ok := ParseTrigger("toggle"); ok {
		t.Error(`ParseTrigger("toggle") should fail`)
	}
}
