package ecs

import (
	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for folio scene events.
var SceneEventType = events.NewEventType[folio.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on SceneEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) folio.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event folio.Event) {
	SceneEventType.Publish(s.world, event)
}

// Subscribe registers fn for events of the given type only.
func Subscribe(world donburi.World, typ folio.EventType, fn func(folio.Event)) {
	SceneEventType.Subscribe(world, func(_ donburi.World, e folio.Event) {
		if e.Type == typ {
			fn(e)
		}
	})
}
