// Package ecs provides ECS adapters for arbor's collision sweep.
//
// The primary adapter is [NewDonburiSink], which bridges arbor collision
// events into a [Donburi] world as typed events. Subscribe to
// [CollisionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
