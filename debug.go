package motionlab

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when Session.debug is true.
type debugStats struct {
	elapsed    float64
	updateTime time.Duration
	renderTime time.Duration
	frame      FrameStats
}

// debugLog writes timing and draw stats at debug level.
func (s *Session) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.log.Debug("frame",
		zap.Float64("elapsed_ms", stats.elapsed),
		zap.Duration("update", stats.updateTime),
		zap.Duration("render", stats.renderTime),
		zap.Duration("total", stats.updateTime+stats.renderTime),
		zap.Int("commands", stats.frame.Commands),
		zap.Int("fills", stats.frame.Fills),
		zap.Int("style_switches", stats.frame.StyleSwitches))
}
