package skitter

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RepelEvent is published each time the frame driver moves the enemy.
type RepelEvent struct {
	Entity donburi.Entity
	// Point is the world-space cursor position that hit the enemy.
	Point Vec2
	From  Vec2
	To    Vec2
}

// RepelEventType is the Donburi event type for RepelEvent. Events are
// queued on publish and delivered by ProcessEvents.
var RepelEventType = events.NewEventType[RepelEvent]()

// OnRepel subscribes fn to repel events in world.
func OnRepel(world donburi.World, fn func(RepelEvent)) {
	RepelEventType.Subscribe(world, func(_ donburi.World, e RepelEvent) {
		fn(e)
	})
}
