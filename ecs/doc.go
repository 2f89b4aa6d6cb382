// Package ecs provides ECS adapters for folio's scene events.
//
// The primary adapter is [NewDonburiSink], which publishes folio events
// (active-section changes, route changes, navigation scrolls) into a
// [Donburi] world as typed events. Subscribe to [SceneEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
