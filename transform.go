package arbor

import "math"

// composeLocal returns translation * rotation * scale.
//
// Composition order:
//
//	Scale -> Rotate -> Translate
func (a *Actor) composeLocal() Matrix3 {
	return a.translation.Mul(a.rotation).Mul(a.scale)
}

// UpdateTransforms recomputes this actor's world transform from its parent's
// world transform and its own local transform, then recurses into every
// child. Call it top-down from the scene roots after Update has refreshed
// each local transform.
func (a *Actor) UpdateTransforms() {
	if a.Parent != nil {
		a.worldTransform = a.Parent.worldTransform.Mul(a.localTransform)
	} else {
		a.worldTransform = a.localTransform
	}
	for _, child := range a.children {
		child.UpdateTransforms()
	}
}

// LocalTransform returns the transform computed by the last Update.
func (a *Actor) LocalTransform() Matrix3 {
	return a.localTransform
}

// WorldTransform returns the transform computed by the last UpdateTransforms.
func (a *Actor) WorldTransform() Matrix3 {
	return a.worldTransform
}

// --- Absolute setters ---

// SetTranslation replaces the translation with one that places the actor at (x, y).
func (a *Actor) SetTranslation(x, y float64) {
	a.translation = NewTranslation(x, y)
}

// SetRotation replaces the rotation with one of the given radians.
func (a *Actor) SetRotation(radians float64) {
	a.rotation = NewRotation(radians)
}

// SetScale replaces the scale with (x, y).
func (a *Actor) SetScale(x, y float64) {
	a.scale = NewScale(x, y)
}

// --- Relative operations ---

// Translate moves the actor by (x, y) relative to its current translation.
func (a *Actor) Translate(x, y float64) {
	a.translation = a.translation.Mul(NewTranslation(x, y))
}

// Rotate adds radians to the actor's current rotation.
func (a *Actor) Rotate(radians float64) {
	a.rotation = a.rotation.Mul(NewRotation(radians))
}

// Scale multiplies the actor's current scale by (x, y).
func (a *Actor) Scale(x, y float64) {
	a.scale = a.scale.Mul(NewScale(x, y))
}

// --- Derived properties ---

// LocalPosition returns the translation column of the translation matrix.
func (a *Actor) LocalPosition() Vec2 {
	return Vec2{a.translation.M02, a.translation.M12}
}

// SetLocalPosition places the actor at p via SetTranslation.
func (a *Actor) SetLocalPosition(p Vec2) {
	a.SetTranslation(p.X, p.Y)
}

// WorldPosition returns the translation column of the world transform.
func (a *Actor) WorldPosition() Vec2 {
	return Vec2{a.worldTransform.M02, a.worldTransform.M12}
}

// Forward returns the first column of the rotation matrix.
func (a *Actor) Forward() Vec2 {
	return Vec2{a.rotation.M00, a.rotation.M10}
}

// SetForward turns the actor to face along dir.
func (a *Actor) SetForward(dir Vec2) {
	a.LookAt(dir.Normalized().Add(a.LocalPosition()))
}

// Size returns the diagonal of the scale matrix.
func (a *Actor) Size() Vec2 {
	return Vec2{a.scale.M00, a.scale.M11}
}

// SetSize replaces the scale with s via SetScale.
func (a *Actor) SetSize(s Vec2) {
	a.SetScale(s.X, s.Y)
}

// LookAt rotates the actor so that its forward vector points at target.
//
// The cosine is only clamped from above. When target lies exactly behind the
// actor the perpendicular dot product is zero, no sign correction happens and
// the turn may go either way.
func (a *Actor) LookAt(target Vec2) {
	direction := target.Sub(a.LocalPosition()).Normalized()
	forward := a.Forward()

	cosAngle := Dot(direction, forward)
	if cosAngle > 1 {
		cosAngle = 1
	}
	angle := math.Acos(cosAngle)

	perp := Vec2{direction.Y, -direction.X}
	perpDot := Dot(perp, forward)
	if perpDot != 0 {
		angle *= -perpDot / math.Abs(perpDot)
	}

	a.Rotate(angle)
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this actor's local coordinate space.
func (a *Actor) WorldToLocal(p Vec2) Vec2 {
	return a.worldTransform.Inverse().TransformPoint(p)
}

// LocalToWorld converts a local-space point to world-space.
func (a *Actor) LocalToWorld(p Vec2) Vec2 {
	return a.worldTransform.TransformPoint(p)
}
