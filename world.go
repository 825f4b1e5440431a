package skitter

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Transform is an entity's world-space placement. Scale is the size of the
// unit quad the entity covers.
type Transform struct {
	Position Vec2
	Scale    Vec2
}

// Sprite describes how an entity is drawn: a texture stretched over its
// box, or a solid Color when Texture is nil.
type Sprite struct {
	Color   Color
	Texture *ebiten.Image
}

var (
	// EnemyTag marks the single entity the frame driver repels.
	EnemyTag = donburi.NewTag().SetName("Enemy")

	TransformComponent = donburi.NewComponentType[Transform]()
	SpriteComponent    = donburi.NewComponentType[Sprite]()
	CameraComponent    = donburi.NewComponentType[Camera]()
	WindowComponent    = donburi.NewComponentType[Window]()
)

var (
	enemyQuery  = donburi.NewQuery(filter.Contains(EnemyTag, TransformComponent))
	cameraQuery = donburi.NewQuery(filter.Contains(CameraComponent))
	windowQuery = donburi.NewQuery(filter.Contains(WindowComponent))
)

// DefaultEnemyScale is the size of the enemy spawned by NewWorld when the
// config leaves EnemyScale unset.
var DefaultEnemyScale = Vec2{100, 100}

// NewWorld builds the startup scene: one window of the configured size, one
// camera looking at the origin through the whole window, and one enemy at
// the origin.
func NewWorld(cfg RunConfig) donburi.World {
	world := donburi.NewWorld()
	size := Vec2{float64(cfg.Width), float64(cfg.Height)}

	SpawnWindow(world, Window{Width: size.X, Height: size.Y})
	SpawnCamera(world, NewCamera(Rect{Width: size.X, Height: size.Y}))

	scale := cfg.EnemyScale
	if scale == (Vec2{}) {
		scale = DefaultEnemyScale
	}
	SpawnEnemy(world, Transform{Scale: scale}, Sprite{Color: cfg.EnemyColor})
	return world
}

// SpawnEnemy creates an enemy entity.
func SpawnEnemy(world donburi.World, t Transform, s Sprite) donburi.Entity {
	e := world.Create(EnemyTag, TransformComponent, SpriteComponent)
	entry := world.Entry(e)
	TransformComponent.SetValue(entry, t)
	SpriteComponent.SetValue(entry, s)
	return e
}

// SpawnCamera creates a camera entity.
func SpawnCamera(world donburi.World, cam Camera) donburi.Entity {
	e := world.Create(CameraComponent)
	CameraComponent.SetValue(world.Entry(e), cam)
	return e
}

// SpawnWindow creates a window entity.
func SpawnWindow(world donburi.World, w Window) donburi.Entity {
	e := world.Create(WindowComponent)
	WindowComponent.SetValue(world.Entry(e), w)
	return e
}

// single returns the only entry matched by q, or a CardinalityError.
func single(world donburi.World, q *donburi.Query, kind string) (*donburi.Entry, error) {
	if n := q.Count(world); n != 1 {
		return nil, &CardinalityError{Kind: kind, Count: n}
	}
	entry, _ := q.First(world)
	return entry, nil
}

// PrimaryWindow returns the world's only window.
func PrimaryWindow(world donburi.World) (*Window, error) {
	entry, err := single(world, windowQuery, "window")
	if err != nil {
		return nil, err
	}
	return WindowComponent.Get(entry), nil
}

// PrimaryCamera returns the world's only camera.
func PrimaryCamera(world donburi.World) (*Camera, error) {
	entry, err := single(world, cameraQuery, "camera")
	if err != nil {
		return nil, err
	}
	return CameraComponent.Get(entry), nil
}

// Enemy returns the entry of the world's only enemy.
func Enemy(world donburi.World) (*donburi.Entry, error) {
	return single(world, enemyQuery, "enemy")
}

// EnemyCount returns the number of enemies in the world.
func EnemyCount(world donburi.World) int {
	return enemyQuery.Count(world)
}

// EnemyTransform returns the only enemy's transform.
func EnemyTransform(world donburi.World) (Transform, error) {
	entry, err := Enemy(world)
	if err != nil {
		return Transform{}, err
	}
	return TransformComponent.GetValue(entry), nil
}
