package arbor

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// --- ID counter ---

// actorIDCounter is a plain counter; actors are not shared across goroutines.
var actorIDCounter uint32

func nextActorID() uint32 {
	actorIDCounter++
	return actorIDCounter
}

// --- Actor ---

// Actor is the scene graph element. A single flat struct is used for all
// actor kinds; kind-specific behaviour is supplied through the callback
// fields rather than through embedding.
type Actor struct {
	// Identity
	ID   uint32
	Name string
	Kind ActorKind

	// Hierarchy. Parent is a back-reference only; ownership flows from a
	// parent to its children.
	Parent   *Actor
	children []*Actor

	// scene is set while the actor is one of that scene's root actors.
	scene *Scene

	// Transform components, each replaced by the Set* family and composed by
	// the relative family (Translate, Rotate, Scale).
	translation Matrix3
	rotation    Matrix3
	scale       Matrix3

	// Derived, refreshed by Update and UpdateTransforms.
	localTransform Matrix3
	worldTransform Matrix3

	started bool

	// Optional capabilities (nil by default)
	Collider Collider
	Sprite   *Sprite

	// Movement state (ActorKindPlayer, ActorKindEnemy)
	Motion *Motion

	// Metadata
	UserData any

	// Per-actor callbacks (nil by default; zero cost when unused)
	OnStart     func()
	OnUpdate    func(dt float64)
	OnDraw      func(screen *ebiten.Image)
	OnEnd       func()
	OnCollision func(other *Actor)
}

// NewActor creates a basic actor positioned at (x, y).
func NewActor(name string, x, y float64) *Actor {
	a := &Actor{
		ID:             nextActorID(),
		Name:           name,
		Kind:           ActorKindBasic,
		translation:    NewTranslation(x, y),
		rotation:       Identity(),
		scale:          Identity(),
		worldTransform: Identity(),
	}
	a.localTransform = a.composeLocal()
	a.worldTransform = a.localTransform
	return a
}

// NewSpriteActor creates an actor at (x, y) that draws sprite.
func NewSpriteActor(name string, x, y float64, sprite *Sprite) *Actor {
	a := NewActor(name, x, y)
	a.Sprite = sprite
	return a
}

// --- Tree manipulation ---

// AddChild appends child to this actor's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, is a scene root, or is an ancestor of this actor
// (cycle).
func (a *Actor) AddChild(child *Actor) {
	if child == nil {
		panic("arbor: cannot add nil child")
	}
	if child.scene != nil {
		panic("arbor: cannot add a scene root as a child; remove it from the scene first")
	}
	if isAncestor(child, a) {
		panic("arbor: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = a
	a.children = append(a.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(a)
	}
}

// RemoveChild detaches child from this actor. It returns false, leaving the
// child list untouched, if child is not one of this actor's children.
func (a *Actor) RemoveChild(child *Actor) bool {
	if child == nil || child.Parent != a {
		return false
	}
	if !a.removeChildByPtr(child) {
		return false
	}
	child.Parent = nil
	return true
}

// RemoveFromParent detaches this actor from its parent.
// No-op if this actor has no parent.
func (a *Actor) RemoveFromParent() {
	if a.Parent == nil {
		return
	}
	a.Parent.RemoveChild(a)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (a *Actor) Children() []*Actor {
	return a.children
}

// NumChildren returns the number of children.
func (a *Actor) NumChildren() int {
	return len(a.children)
}

// ChildAt returns the child at the given index.
func (a *Actor) ChildAt(index int) *Actor {
	return a.children[index]
}

// Scene returns the scene this actor's tree is rooted in, or nil.
func (a *Actor) Scene() *Scene {
	root := a
	for root.Parent != nil {
		root = root.Parent
	}
	return root.scene
}

// logger returns the logger of the actor's scene, or a no-op logger.
func (a *Actor) logger() *zap.Logger {
	if s := a.Scene(); s != nil {
		return s.logger
	}
	return zap.NewNop()
}

// --- Lifecycle ---

// Started reports whether Start has been called.
func (a *Actor) Started() bool {
	return a.started
}

// Start marks the actor as started and runs OnStart. Repeated calls leave the
// actor started; only OnStart side effects repeat. Scene calls it once.
func (a *Actor) Start() {
	a.started = true
	if a.OnStart != nil {
		a.OnStart()
	}
}

// Update runs OnUpdate and then recomputes the local transform as
// translation * rotation * scale.
func (a *Actor) Update(dt float64) {
	if a.OnUpdate != nil {
		a.OnUpdate(dt)
	}
	a.localTransform = a.composeLocal()
}

// Draw renders the actor's sprite (if any) with its world transform and then
// runs OnDraw.
func (a *Actor) Draw(screen *ebiten.Image) {
	if a.Sprite != nil {
		a.Sprite.Draw(screen, a.worldTransform)
	}
	if a.OnDraw != nil {
		a.OnDraw(screen)
	}
}

// End runs OnEnd.
func (a *Actor) End() {
	if a.OnEnd != nil {
		a.OnEnd()
	}
}

// HandleCollision is called by the scene when this actor overlaps other.
// With no OnCollision callback it does nothing.
func (a *Actor) HandleCollision(other *Actor) {
	if a.OnCollision != nil {
		a.OnCollision(other)
	}
}

// CheckForCollision reports whether this actor's collider overlaps other.
// Returns false if either actor has no collider.
func (a *Actor) CheckForCollision(other *Actor) bool {
	if other == nil || a.Collider == nil || other.Collider == nil {
		return false
	}
	return a.Collider.CheckCollision(a, other)
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of actor (or actor itself).
func isAncestor(candidate, actor *Actor) bool {
	for p := actor; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from a.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (a *Actor) removeChildByPtr(child *Actor) bool {
	for i, c := range a.children {
		if c == child {
			copy(a.children[i:], a.children[i+1:])
			a.children[len(a.children)-1] = nil
			a.children = a.children[:len(a.children)-1]
			return true
		}
	}
	return false
}
