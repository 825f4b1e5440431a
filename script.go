package skitter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// scriptStep is a single action in an input script. Coordinates are window
// logical pixels.
type scriptStep struct {
	Action string      `json:"action"`
	X      float64     `json:"x,omitempty"`
	Y      float64     `json:"y,omitempty"`
	Frames int         `json:"frames,omitempty"`
	Button MouseButton `json:"button,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays recorded input one tick at a time, in place of a live
// mouse. Supported actions:
//
//	move    cursor to (x, y)
//	press   cursor to (x, y) and press button
//	release cursor to (x, y) and release button
//	click   press then release at (x, y) on consecutive ticks
//	leave   cursor leaves the window
//	wait    do nothing for frames ticks
//
// press, release, and click take an optional button: 0 left (the default),
// 1 right, 2 middle.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}

	steps := make([]scriptStep, 0, len(file.Steps))
	for i, st := range file.Steps {
		if st.Button >= mouseButtonCount {
			return nil, fmt.Errorf("parse input script: step %d: unknown button %d", i, st.Button)
		}
		switch st.Action {
		case "move", "press", "release", "leave", "wait":
			steps = append(steps, st)
		case "click":
			press, release := st, st
			press.Action, release.Action = "press", "release"
			steps = append(steps, press, release)
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: steps}, nil
}

// LoadScriptFile reads and parses a JSON input script from disk.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load input script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether every step has been applied.
func (s *Script) Done() bool {
	return s.cursor >= len(s.steps) && s.waitCount == 0
}

// Step applies the next tick of input to win and in.
func (s *Script) Step(win *Window, in *ButtonInput) {
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		return
	}
	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "move":
		win.MoveCursor(Vec2{st.X, st.Y})
	case "press":
		win.MoveCursor(Vec2{st.X, st.Y})
		in.Press(st.Button)
	case "release":
		win.MoveCursor(Vec2{st.X, st.Y})
		in.Release(st.Button)
	case "leave":
		win.LeaveCursor()
	case "wait":
		if st.Frames > 1 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	}
}

// Replay runs script against world one tick at a time, without a window,
// until the script is done or maxTicks ticks have run. It returns the
// number of ticks run and the first driver error.
func Replay(world donburi.World, driver *Driver, script *Script, maxTicks int) (int, error) {
	var input ButtonInput
	ticks := 0
	for ; ticks < maxTicks && !script.Done(); ticks++ {
		input.Clear()
		if win, err := PrimaryWindow(world); err == nil {
			script.Step(win, &input)
		}
		if err := driver.Update(world, &input); err != nil {
			return ticks + 1, err
		}
		events.ProcessAllEvents(world)
	}
	return ticks, nil
}
