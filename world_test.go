package skitter

import (
	"errors"
	"testing"

	"github.com/yohamta/donburi"
)

func testConfig() RunConfig {
	cfg := DefaultRunConfig()
	cfg.Width, cfg.Height = 800, 600
	return cfg
}

func TestEmptyWorldHasNoEnemies(t *testing.T) {
	if n := EnemyCount(donburi.NewWorld()); n != 0 {
		t.Errorf("EnemyCount = %d, want 0", n)
	}
}

func TestNewWorldHasOneEnemy(t *testing.T) {
	if n := EnemyCount(NewWorld(testConfig())); n != 1 {
		t.Errorf("EnemyCount = %d, want 1", n)
	}
}

func TestNewWorldEnemyAtOriginWithDefaultScale(t *testing.T) {
	tr, err := EnemyTransform(NewWorld(testConfig()))
	if err != nil {
		t.Fatal(err)
	}
	assertVec(t, "position", tr.Position, Vec2{})
	assertVec(t, "scale", tr.Scale, Vec2{100, 100})
}

func TestNewWorldZeroScaleUsesDefault(t *testing.T) {
	cfg := testConfig()
	cfg.EnemyScale = Vec2{}
	tr, err := EnemyTransform(NewWorld(cfg))
	if err != nil {
		t.Fatal(err)
	}
	assertVec(t, "scale", tr.Scale, DefaultEnemyScale)
}

func TestNewWorldSizesWindowAndCamera(t *testing.T) {
	world := NewWorld(testConfig())
	win, err := PrimaryWindow(world)
	if err != nil {
		t.Fatal(err)
	}
	if win.Width != 800 || win.Height != 600 {
		t.Errorf("window = %vx%v, want 800x600", win.Width, win.Height)
	}
	cam, err := PrimaryCamera(world)
	if err != nil {
		t.Fatal(err)
	}
	if cam.Viewport != (Rect{Width: 800, Height: 600}) {
		t.Errorf("camera viewport = %+v, want full window", cam.Viewport)
	}
}

func TestPrimaryCameraCardinality(t *testing.T) {
	world := donburi.NewWorld()
	_, err := PrimaryCamera(world)
	var ce *CardinalityError
	if !errors.As(err, &ce) || ce.Kind != "camera" || ce.Count != 0 {
		t.Fatalf("no cameras: err = %v, want camera count 0", err)
	}

	SpawnCamera(world, NewCamera(Rect{Width: 10, Height: 10}))
	if _, err := PrimaryCamera(world); err != nil {
		t.Fatalf("one camera: %v", err)
	}

	SpawnCamera(world, NewCamera(Rect{Width: 10, Height: 10}))
	_, err = PrimaryCamera(world)
	if !errors.As(err, &ce) || ce.Count != 2 {
		t.Fatalf("two cameras: err = %v, want count 2", err)
	}
	if !errors.Is(err, ErrPrecondition) {
		t.Error("CardinalityError should match ErrPrecondition")
	}
}

func TestComponentPointerWritesThrough(t *testing.T) {
	world := NewWorld(testConfig())
	entry, err := Enemy(world)
	if err != nil {
		t.Fatal(err)
	}
	TransformComponent.Get(entry).Position = Vec2{7, 8}

	tr, err := EnemyTransform(world)
	if err != nil {
		t.Fatal(err)
	}
	assertVec(t, "position", tr.Position, Vec2{7, 8})
}
