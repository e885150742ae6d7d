// Package ecs provides ECS adapters for motionlab's control events.
//
// The primary adapter is [NewDonburiSink], which forwards the control
// presses and releases a session accepts into a [Donburi] world as typed
// events. Subscribe to [ControlEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	session.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
