// Package motionlab is a small fixed-timestep animation loop for [Ebitengine]
// with a set of motion demos built on it.
//
// Each demo runs in a [Session]. A session owns a [Scheduler], an
// [InputState], its entities and the [Frame] recorded by its last accepted
// tick. Sessions share nothing, so any number of them can run side by side.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// every session through a [Host]:
//
//	host := motionlab.NewHost(logger)
//	ship := host.NewSession("ship", motionlab.NewShip(motionlab.DefaultShipConfig()), 0)
//	ship.Start()
//	motionlab.Run(host, motionlab.RunConfig{
//		Title: "Ship", Width: 800, Height: 400,
//	})
//
// # Frame loop
//
// The [Scheduler] is a two-state machine, Stopped and Running. While running
// it asks its [FrameRequester] for a callback on every display refresh. A
// tick closer than the frame interval to the last accepted tick is skipped
// but still reschedules. An accepted tick samples input, updates the
// entities and records a new frame, in that order.
//
// Stop takes effect at the next tick: a callback already queued when Stop
// is called does nothing.
//
// # Drawing
//
// Simulations draw into a [Canvas]. The session records each frame into a
// [Frame] and replays it onto the real target: an [ImageCanvas] on an
// *ebiten.Image, or the terminal canvas in motionlab/termcanvas.
//
// [ParticleField.StepAndGroup] steps every particle and groups them by color
// in one traversal, so [ParticleBatches.Draw] issues one fill per color
// instead of one per particle.
//
// # Demos
//
// [SideScroller] and [Ship] are the keyboard-driven demos. The gallery
// demos ([FrameStepDemo], [TimeStepDemo], [CompareDemo], [ParticleDemo] and
// [ShapesDemo]) show frame-based and time-based stepping, tweening (via
// [gween]) and particle batching. Control events can be mirrored into a
// [Donburi] world with the adapter in motionlab/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package motionlab
