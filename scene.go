package arbor

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventSink is the interface for optional ECS integration.
// When set on a Scene, every collision reported by the sweep is forwarded.
type EventSink interface {
	EmitCollision(event CollisionEvent)
}

// CollisionEvent carries one ordered collision pair for the ECS bridge.
type CollisionEvent struct {
	Tick      uint64
	ActorID   uint32
	OtherID   uint32
	ActorName string
	OtherName string
	Position  Vec2 // world position of the actor receiving the callback
}

// pendingOp is an AddActor/RemoveActor call made while a tick is running.
type pendingOp struct {
	actor  *Actor
	remove bool
}

// Scene is an ordered, duplicate-free collection of root actors. It drives
// the per-tick lifecycle: lazy start, update, transform propagation,
// collision sweep, and draw.
type Scene struct {
	actors []*Actor
	policy CollisionPolicy
	logger *zap.Logger
	sink   EventSink
	debug  bool

	tick    uint64
	ticking bool
	pending []pendingOp
}

// NewScene creates an empty scene using ExactPositionPolicy and a no-op logger.
func NewScene() *Scene {
	return &Scene{
		policy: ExactPositionPolicy,
		logger: zap.NewNop(),
	}
}

// --- Actor collection ---

// AddActor appends actor to the scene's root actors. Adding an actor that is
// already present is a no-op. Panics if actor is nil, has a parent, or is a
// root of another scene. Calls made during a tick take effect once the tick
// finishes.
func (s *Scene) AddActor(actor *Actor) {
	if actor == nil {
		panic("arbor: cannot add nil actor")
	}
	if actor.Parent != nil {
		panic("arbor: cannot add an actor with a parent as a scene root")
	}
	if actor.scene != nil && actor.scene != s {
		panic("arbor: actor is already a root of another scene")
	}
	if s.ticking {
		s.pending = append(s.pending, pendingOp{actor: actor})
		return
	}
	if s.indexOf(actor) >= 0 {
		return
	}
	actor.scene = s
	s.actors = append(s.actors, actor)
	if s.debug {
		debugCheckTreeDepth(actor)
	}
}

// RemoveActor removes actor from the scene. It returns false, leaving the
// actor list untouched, if actor is not in the scene. Calls made during
// Update are applied once the tick finishes.
func (s *Scene) RemoveActor(actor *Actor) bool {
	if s.ticking {
		if !s.willContain(actor) {
			return false
		}
		s.pending = append(s.pending, pendingOp{actor: actor, remove: true})
		return true
	}
	i := s.indexOf(actor)
	if i < 0 {
		return false
	}
	actor.scene = nil
	copy(s.actors[i:], s.actors[i+1:])
	s.actors[len(s.actors)-1] = nil
	s.actors = s.actors[:len(s.actors)-1]
	return true
}

// Actors returns the root actor list. The returned slice MUST NOT be mutated.
func (s *Scene) Actors() []*Actor {
	return s.actors
}

// NumActors returns the number of root actors.
func (s *Scene) NumActors() int {
	return len(s.actors)
}

// Find returns the first actor in the scene tree with the given name, or nil.
func (s *Scene) Find(name string) *Actor {
	for _, a := range s.actors {
		if found := findByName(a, name); found != nil {
			return found
		}
	}
	return nil
}

// --- Configuration ---

// SetCollisionPolicy replaces the sweep's overlap test. nil restores
// ExactPositionPolicy.
func (s *Scene) SetCollisionPolicy(p CollisionPolicy) {
	if p == nil {
		p = ExactPositionPolicy
	}
	s.policy = p
}

// SetLogger sets the logger used for lifecycle and debug output. nil disables
// logging.
func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
	if s.debug {
		globalLogger = l
	}
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *zap.Logger {
	return s.logger
}

// SetEventSink sets the optional ECS bridge.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings are logged and per-tick timing stats are written at
// debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	globalLogger = s.logger
}

// globalDebug mirrors the most recently set Scene debug flag so that actor
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// globalLogger is the logger of the scene that last called SetDebugMode.
var globalLogger = zap.NewNop()

// Tick returns the number of completed Update calls.
func (s *Scene) Tick() uint64 {
	return s.tick
}

// --- Lifecycle ---

// Start starts every actor that has not been started yet, parents before
// children, in insertion order.
func (s *Scene) Start() {
	s.deferMutations(func() {
		for _, a := range s.actors {
			startTree(a)
		}
	})
	s.logger.Debug("scene started", zap.Int("actors", len(s.actors)))
}

// Update advances the scene by dt. Each root actor (and its descendants) is
// lazily started and updated in insertion order, world transforms are then
// propagated from the roots, and finally every ordered pair of distinct root
// actors is tested with the collision policy; a match calls
// actors[i].HandleCollision(actors[j]).
func (s *Scene) Update(dt float64) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.deferMutations(func() {
		for _, a := range s.actors {
			s.updateTree(a, dt)
		}

		if s.debug {
			stats.updateTime = time.Since(t0)
			t0 = time.Now()
		}

		for _, a := range s.actors {
			a.UpdateTransforms()
		}

		if s.debug {
			stats.transformTime = time.Since(t0)
			t0 = time.Now()
		}

		stats.collisionCount = s.sweep()
	})
	s.tick++

	if s.debug {
		stats.sweepTime = time.Since(t0)
		stats.actorCount = len(s.actors)
		s.debugLog(stats)
	}
}

// Draw draws every actor, parents before children, in insertion order.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.deferMutations(func() {
		for _, a := range s.actors {
			drawTree(a, screen)
		}
	})
}

// End runs End on every actor, parents before children, in insertion order.
func (s *Scene) End() {
	s.deferMutations(func() {
		for _, a := range s.actors {
			endTree(a)
		}
	})
	s.logger.Debug("scene ended", zap.Uint64("ticks", s.tick))
}

// sweep tests every ordered pair of distinct root actors and returns the
// number of collisions reported.
func (s *Scene) sweep() int {
	count := 0
	for i, a := range s.actors {
		for j, b := range s.actors {
			if i == j || !s.policy(a, b) {
				continue
			}
			count++
			if ce := s.logger.Check(zapcore.DebugLevel, "collision"); ce != nil {
				ce.Write(zap.String("actor", a.Name), zap.String("other", b.Name))
			}
			a.HandleCollision(b)
			if s.sink != nil {
				s.sink.EmitCollision(CollisionEvent{
					Tick:      s.tick,
					ActorID:   a.ID,
					OtherID:   b.ID,
					ActorName: a.Name,
					OtherName: b.Name,
					Position:  a.WorldPosition(),
				})
			}
		}
	}
	return count
}

// updateTree starts a if needed, updates it, then recurses into its children.
func (s *Scene) updateTree(a *Actor, dt float64) {
	if !a.started {
		a.Start()
	}
	a.Update(dt)
	if ce := s.logger.Check(zapcore.DebugLevel, "actor updated"); ce != nil {
		ce.Write(zap.String("actor", a.Name), zap.Stringer("position", a.LocalPosition()))
	}
	for _, child := range childSnapshot(a) {
		if child.Parent == a {
			s.updateTree(child, dt)
		}
	}
}

// deferMutations runs fn with AddActor/RemoveActor queued, then applies the
// queued calls. The queue stays in effect for nested calls, and ticking is
// cleared even if a callback panics.
func (s *Scene) deferMutations(fn func()) {
	if s.ticking {
		fn()
		return
	}
	s.ticking = true
	defer func() { s.ticking = false }()
	fn()
	s.ticking = false
	s.flushPending()
}

// childSnapshot copies a's child list so callbacks can add or remove children
// during a walk. Children detached before their turn are skipped by callers;
// children added during the walk are first visited on the next one.
func childSnapshot(a *Actor) []*Actor {
	if len(a.children) == 0 {
		return nil
	}
	return append([]*Actor(nil), a.children...)
}

// flushPending applies AddActor/RemoveActor calls queued during a tick.
func (s *Scene) flushPending() {
	if len(s.pending) == 0 {
		return
	}
	for i, op := range s.pending {
		if op.remove {
			s.RemoveActor(op.actor)
		} else {
			s.AddActor(op.actor)
		}
		s.pending[i] = pendingOp{}
	}
	s.pending = s.pending[:0]
}

// willContain reports whether actor will be in the scene once the pending
// operations are applied.
func (s *Scene) willContain(actor *Actor) bool {
	present := s.indexOf(actor) >= 0
	for _, op := range s.pending {
		if op.actor == actor {
			present = !op.remove
		}
	}
	return present
}

func (s *Scene) indexOf(actor *Actor) int {
	for i, a := range s.actors {
		if a == actor {
			return i
		}
	}
	return -1
}

func startTree(a *Actor) {
	if !a.started {
		a.Start()
	}
	for _, child := range childSnapshot(a) {
		if child.Parent == a {
			startTree(child)
		}
	}
}

func drawTree(a *Actor, screen *ebiten.Image) {
	a.Draw(screen)
	for _, child := range childSnapshot(a) {
		if child.Parent == a {
			drawTree(child, screen)
		}
	}
}

func endTree(a *Actor) {
	a.End()
	for _, child := range childSnapshot(a) {
		if child.Parent == a {
			endTree(child)
		}
	}
}

func findByName(a *Actor, name string) *Actor {
	if a.Name == name {
		return a
	}
	for _, child := range a.children {
		if found := findByName(child, name); found != nil {
			return found
		}
	}
	return nil
}
