package arbor

import "math"

// Collider is the overlap capability an Actor may carry. self is the actor the
// collider is attached to.
type Collider interface {
	CheckCollision(self, other *Actor) bool
}

// CollisionPolicy decides whether the scene sweep reports a collision between
// a and b.
type CollisionPolicy func(a, b *Actor) bool

// ExactPositionPolicy reports a collision when both actors sit at exactly the
// same world position. It is the scene default.
func ExactPositionPolicy(a, b *Actor) bool {
	return a.WorldPosition().Equal(b.WorldPosition())
}

// ColliderPolicy reports a collision when the actors' colliders overlap.
// Actors without a collider never collide.
func ColliderPolicy(a, b *Actor) bool {
	return a.CheckForCollision(b)
}

// CircleCollider is a circle of Radius centred on the actor's world position.
type CircleCollider struct {
	Radius float64
}

// CheckCollision tests the circle against a CircleCollider or BoxCollider on other.
func (c *CircleCollider) CheckCollision(self, other *Actor) bool {
	center := self.WorldPosition()
	switch oc := other.Collider.(type) {
	case *CircleCollider:
		return Distance(center, other.WorldPosition()) <= c.Radius+oc.Radius
	case *BoxCollider:
		return circleIntersectsRect(center, c.Radius, oc.Bounds(other))
	default:
		return false
	}
}

// BoxCollider is an axis-aligned box of Width x Height centred on the actor's
// world position. Rotation is ignored.
type BoxCollider struct {
	Width, Height float64
}

// Bounds returns the world-space rectangle of the box on owner.
func (b *BoxCollider) Bounds(owner *Actor) Rect {
	p := owner.WorldPosition()
	return Rect{
		X:      p.X - b.Width/2,
		Y:      p.Y - b.Height/2,
		Width:  b.Width,
		Height: b.Height,
	}
}

// CheckCollision tests the box against a BoxCollider or CircleCollider on other.
func (b *BoxCollider) CheckCollision(self, other *Actor) bool {
	switch oc := other.Collider.(type) {
	case *BoxCollider:
		return b.Bounds(self).Intersects(oc.Bounds(other))
	case *CircleCollider:
		return circleIntersectsRect(other.WorldPosition(), oc.Radius, b.Bounds(self))
	default:
		return false
	}
}

// circleIntersectsRect clamps the centre onto r and compares the distance to
// the closest point against radius.
func circleIntersectsRect(center Vec2, radius float64, r Rect) bool {
	closest := Vec2{
		X: math.Max(r.X, math.Min(center.X, r.X+r.Width)),
		Y: math.Max(r.Y, math.Min(center.Y, r.Y+r.Height)),
	}
	return Distance(center, closest) <= radius
}
