package ecs

import (
	"github.com/phanxgames/motionlab"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ControlEventType is the Donburi event type for motionlab control events.
var ControlEventType = events.NewEventType[motionlab.ControlEvent]()

// HeldControls is a component that mirrors which controls a session holds.
type HeldControls struct {
	Session string
	Held    [4]bool
}

// HeldControlsComponent is the Donburi component type for HeldControls.
var HeldControlsComponent = donburi.NewComponentType[HeldControls]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Control events are published to ControlEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) motionlab.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitControl(event motionlab.ControlEvent) {
	ControlEventType.Publish(s.world, event)
}

// TrackHeld subscribes a handler that keeps one HeldControls entity per
// session in sync with the published control events.
func TrackHeld(world donburi.World) {
	entities := map[string]donburi.Entity{}
	ControlEventType.Subscribe(world, func(w donburi.World, e motionlab.ControlEvent) {
		ent, ok := entities[e.Session]
		if !ok || !w.Valid(ent) {
			ent = w.Create(HeldControlsComponent)
			HeldControlsComponent.Get(w.Entry(ent)).Session = e.Session
			entities[e.Session] = ent
		}
		hc := HeldControlsComponent.Get(w.Entry(ent))
		if int(e.Control) < len(hc.Held) {
			hc.Held[e.Control] = e.Pressed
		}
	})
}

// Held reports whether session currently holds c according to the tracked
// components.
func Held(world donburi.World, session string, c motionlab.Control) bool {
	held := false
	HeldControlsComponent.Each(world, func(entry *donburi.Entry) {
		hc := HeldControlsComponent.Get(entry)
		if hc.Session == session && int(c) < len(hc.Held) {
			held = hc.Held[c]
		}
	})
	return held
}
