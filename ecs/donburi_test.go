package ecs

import (
	"testing"

	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if sink := NewDonburiSink(world); sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []folio.Event
	SceneEventType.Subscribe(world, func(w donburi.World, e folio.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(folio.Event{
		Type:     folio.EventActivation,
		Consumer: "nav",
		ID:       "about-me",
		Previous: "hero",
		Index:    1,
	})
	sink.EmitEvent(folio.Event{Type: folio.EventNavigate, ID: "tools", TargetY: 1220})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	SceneEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != folio.EventActivation || e0.ID != "about-me" || e0.Previous != "hero" || e0.Index != 1 {
		t.Errorf("event 0: %+v", e0)
	}
	if e1 := received[1]; e1.Type != folio.EventNavigate || e1.TargetY != 1220 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	var _ folio.EventSink = NewDonburiSink(donburi.NewWorld())
}

func TestSubscribe_FiltersByType(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var routes []string
	Subscribe(world, folio.EventRoute, func(e folio.Event) {
		routes = append(routes, e.ID)
	})

	sink.EmitEvent(folio.Event{Type: folio.EventActivation, ID: "hero"})
	sink.EmitEvent(folio.Event{Type: folio.EventRoute, ID: "impressum", Previous: "home"})
	events.ProcessAllEvents(world)

	if len(routes) != 1 || routes[0] != "impressum" {
		t.Errorf("routes = %v, want [impressum]", routes)
	}
}

func TestSceneForwardsToWorld(t *testing.T) {
	world := donburi.NewWorld()
	scene, err := folio.NewScene(folio.DefaultSceneConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer scene.Close()
	scene.SetCanvasFactory(func() folio.Canvas { return nil })
	scene.SetEventSink(NewDonburiSink(world))

	var navs []string
	Subscribe(world, folio.EventActivation, func(e folio.Event) {
		if e.Consumer == "nav" {
			navs = append(navs, e.ID)
		}
	})

	scene.Viewport().JumpTo(700)
	scene.Evaluate()
	events.ProcessAllEvents(world)

	if len(navs) != 1 || navs[0] != "about-me" {
		t.Errorf("nav activations = %v, want [about-me]", navs)
	}
}
