package motionlab

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// scriptStep is a single action in a demo script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Label  string `json:"label,omitempty"`
	Panel  int    `json:"panel,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a demo script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a scripted sequence of key input, panel switches and
// screenshots across host updates. Attach to a Host via SetScriptRunner.
//
// Supported actions: press, release, tap, wait, start, stop, stopAll and
// screenshot.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON demo script and returns a ScriptRunner ready to
// be attached to a Host via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "press", "release", "tap":
			if _, ok := ParseControl(st.Key); !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown key %q", i, st.Key)
			}
		case "wait", "start", "stop", "stopAll", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the host. The runner advances
// once per host update, before injected and real key input.
func (h *Host) SetScriptRunner(r *ScriptRunner) {
	h.script = r
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one update.
func (r *ScriptRunner) step(h *Host) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if h.Injecting() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	h.log.Debug("script step", zap.Int("step", r.cursor-1), zap.String("action", st.Action))

	switch st.Action {
	case "press":
		h.InjectPress(st.Key)
	case "release":
		h.InjectRelease(st.Key)
	case "tap":
		h.InjectTap(st.Key, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this update counts as one
		}
	case "start":
		h.StartOnly(st.Panel)
	case "stop":
		if p := h.Panel(st.Panel); p != nil {
			p.Session.Stop()
		}
	case "stopAll":
		h.StopAll()
	case "screenshot":
		h.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !h.Injecting() {
		r.done = true
	}
}
