package motionlab

// InjectPress queues a synthetic key press. Injected events are consumed
// one per host update, before real keyboard input.
func (h *Host) InjectPress(code string) {
	h.injectQueue = append(h.injectQueue, KeyEvent{Code: code, Pressed: true})
}

// InjectRelease queues a synthetic key release.
func (h *Host) InjectRelease(code string) {
	h.injectQueue = append(h.injectQueue, KeyEvent{Code: code, Pressed: false})
}

// InjectTap queues a press held for the given number of updates followed by
// a release. The sequence consumes `frames` updates; the minimum is 2
// (press + release).
func (h *Host) InjectTap(code string, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(code)
	// Repeated presses keep the key held; last write wins.
	for i := 0; i < frames-2; i++ {
		h.InjectPress(code)
	}
	h.InjectRelease(code)
}

// Injecting reports whether injected events are still queued.
func (h *Host) Injecting() bool {
	return len(h.injectQueue) > 0
}

// processInjectedKey pops one injected event and routes it to the sessions.
// Returns true if an event was consumed.
func (h *Host) processInjectedKey() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	ev := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	h.DispatchKey(ev.Code, ev.Pressed)
	return true
}
