package arbor

import "go.uber.org/zap"

// Motion is the kind-specific state shared by player and enemy actors.
type Motion struct {
	// Speed is the distance covered per second at full input.
	Speed float64
	// Velocity is the displacement applied during the last update.
	Velocity Vec2
	// Collisions counts OnCollision calls received so far.
	Collisions int

	input  InputSource // ActorKindPlayer
	target *Actor      // ActorKindEnemy
}

// Target returns the actor an enemy chases, or nil.
func (m *Motion) Target() *Actor {
	return m.target
}

// SetTarget changes the actor an enemy chases. nil stops the chase.
func (m *Motion) SetTarget(target *Actor) {
	m.target = target
}

// NewPlayer creates an actor that moves by input.Axis() * speed each second
// and turns to face its direction of travel. Collisions are counted and
// logged at info level through the scene's logger.
func NewPlayer(name string, x, y, speed float64, input InputSource) *Actor {
	a := NewActor(name, x, y)
	a.Kind = ActorKindPlayer
	a.Motion = &Motion{Speed: speed, input: input}
	a.OnUpdate = func(dt float64) { updatePlayer(a, dt) }
	a.OnCollision = func(other *Actor) {
		a.Motion.Collisions++
		a.logger().Info("collision occurred",
			zap.String("actor", a.Name),
			zap.String("other", other.Name),
			zap.Int("count", a.Motion.Collisions))
	}
	return a
}

func updatePlayer(a *Actor, dt float64) {
	m := a.Motion
	var axis Vec2
	if m.input != nil {
		axis = m.input.Axis()
	}
	m.Velocity = axis.Normalized().Mul(m.Speed * dt)
	if m.Velocity.Magnitude() > 0 {
		a.SetForward(m.Velocity.Normalized())
	}
	a.SetLocalPosition(a.LocalPosition().Add(m.Velocity))
}
