package arbor

// NewEnemy creates an actor that moves toward target at speed units per
// second. The chase compares local positions, so target and enemy are
// expected to share a parent.
func NewEnemy(name string, x, y, speed float64, target *Actor) *Actor {
	a := NewActor(name, x, y)
	a.Kind = ActorKindEnemy
	a.Motion = &Motion{Speed: speed, target: target}
	a.OnUpdate = func(dt float64) { updateEnemy(a, dt) }
	a.OnCollision = func(*Actor) { a.Motion.Collisions++ }
	return a
}

func updateEnemy(a *Actor, dt float64) {
	m := a.Motion
	if m.target == nil {
		m.Velocity = Vec2{}
		return
	}
	dir := m.target.LocalPosition().Sub(a.LocalPosition())
	m.Velocity = dir.Normalized().Mul(m.Speed * dt)
	a.SetLocalPosition(a.LocalPosition().Add(m.Velocity))
}
