package ecs

import (
	"testing"

	"github.com/phanxgames/motionlab"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type nopRequester struct{}

func (nopRequester) RequestFrame(func(float64)) {}

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitControl(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []motionlab.ControlEvent
	ControlEventType.Subscribe(world, func(w donburi.World, e motionlab.ControlEvent) {
		received = append(received, e)
	})

	sink.EmitControl(motionlab.ControlEvent{Session: "ship", Control: motionlab.ArrowUp, Pressed: true})
	sink.EmitControl(motionlab.ControlEvent{Session: "ship", Control: motionlab.ArrowUp, Pressed: false})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	ControlEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if !received[0].Pressed || received[0].Control != motionlab.ArrowUp {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Pressed {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_FromSession(t *testing.T) {
	world := donburi.NewWorld()

	var received []motionlab.ControlEvent
	ControlEventType.Subscribe(world, func(w donburi.World, e motionlab.ControlEvent) {
		received = append(received, e)
	})

	s := motionlab.NewSession(motionlab.SessionConfig{
		Name:      "scroller",
		Requester: nopRequester{},
		Clock:     &motionlab.ManualClock{},
		Width:     800,
		Height:    400,
	}, motionlab.NewSideScroller(motionlab.DefaultSideScrollerConfig()))
	s.SetEventSink(NewDonburiSink(world))

	s.SetPressed("ArrowRight", true)
	s.SetPressed("ArrowUp", true) // not recognized by the side-scroller
	s.SetPressed("KeyQ", true)
	events.ProcessAllEvents(world)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if received[0].Session != "scroller" || received[0].Control != motionlab.ArrowRight {
		t.Errorf("event: %+v", received[0])
	}
}

func TestTrackHeld(t *testing.T) {
	world := donburi.NewWorld()
	TrackHeld(world)
	sink := NewDonburiSink(world)

	sink.EmitControl(motionlab.ControlEvent{Session: "a", Control: motionlab.ArrowLeft, Pressed: true})
	sink.EmitControl(motionlab.ControlEvent{Session: "b", Control: motionlab.ArrowDown, Pressed: true})
	ControlEventType.ProcessEvents(world)

	tests := []struct {
		session string
		c       motionlab.Control
		want    bool
	}{
		{"a", motionlab.ArrowLeft, true},
		{"a", motionlab.ArrowDown, false},
		{"b", motionlab.ArrowDown, true},
		{"c", motionlab.ArrowLeft, false},
	}
	for _, tt := range tests {
		if got := Held(world, tt.session, tt.c); got != tt.want {
			t.Errorf("Held(%q, %v) = %v, want %v", tt.session, tt.c, got, tt.want)
		}
	}

	sink.EmitControl(motionlab.ControlEvent{Session: "a", Control: motionlab.ArrowLeft, Pressed: false})
	ControlEventType.ProcessEvents(world)
	if Held(world, "a", motionlab.ArrowLeft) {
		t.Error("ArrowLeft still held after release")
	}
	n := 0
	HeldControlsComponent.Each(world, func(*donburi.Entry) { n++ })
	if n != 2 {
		t.Errorf("tracked entities = %d, want 2", n)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	ControlEventType.Subscribe(world, func(w donburi.World, e motionlab.ControlEvent) {
		count1++
	})
	ControlEventType.Subscribe(world, func(w donburi.World, e motionlab.ControlEvent) {
		count2++
	})

	sink.EmitControl(motionlab.ControlEvent{Control: motionlab.ArrowDown, Pressed: true})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
