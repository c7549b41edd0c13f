package arbor

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-tick timing and collision metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime     time.Duration
	transformTime  time.Duration
	sweepTime      time.Duration
	actorCount     int
	collisionCount int
}

// debugLog writes timing and collision stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.updateTime + stats.transformTime + stats.sweepTime
	s.logger.Debug("tick",
		zap.Uint64("tick", s.tick),
		zap.Duration("update", stats.updateTime),
		zap.Duration("transforms", stats.transformTime),
		zap.Duration("sweep", stats.sweepTime),
		zap.Duration("total", total),
		zap.Int("actors", stats.actorCount),
		zap.Int("collisions", stats.collisionCount),
	)
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(a *Actor) {
	depth := 0
	for p := a; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		globalLogger.Warn("tree depth exceeds threshold",
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth),
			zap.String("actor", a.Name))
	}
}

// debugCheckChildCount warns if an actor has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(a *Actor) {
	if len(a.children) > debugMaxChildCount {
		globalLogger.Warn("child count exceeds threshold",
			zap.String("actor", a.Name),
			zap.Int("children", len(a.children)),
			zap.Int("threshold", debugMaxChildCount))
	}
}
