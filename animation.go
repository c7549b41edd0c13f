package arbor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 transform components of an Actor
// simultaneously. Create one via the convenience constructors
// (TweenPosition, TweenRotation, TweenSize) and call Update(dt) each tick,
// typically from the actor's OnUpdate. Values are written through the
// absolute Set* family, so repeated steps never accumulate drift.
//
// There is no global animation manager. Callers run Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	apply  func(v [2]float64)
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target actor.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	var vals [2]float64
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(vals)
}

// TweenPosition creates a TweenGroup that moves actor from its current local
// position to (toX, toY) over the specified duration using the easing function.
func TweenPosition(actor *Actor, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := actor.LocalPosition()
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(from.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(toY), duration, fn)
	g.apply = func(v [2]float64) { actor.SetTranslation(v[0], v[1]) }
	return g
}

// TweenRotation creates a TweenGroup that turns actor from fromRadians to
// toRadians. The rotation matrix does not store an angle, so the start value
// is explicit.
func TweenRotation(actor *Actor, fromRadians, toRadians float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(fromRadians), float32(toRadians), duration, fn)
	g.apply = func(v [2]float64) { actor.SetRotation(v[0]) }
	return g
}

// TweenSize creates a TweenGroup that scales actor from its current size to
// (toX, toY).
func TweenSize(actor *Actor, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := actor.Size()
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(from.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(toY), duration, fn)
	g.apply = func(v [2]float64) { actor.SetScale(v[0], v[1]) }
	return g
}
