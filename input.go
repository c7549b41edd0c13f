package arbor

import "github.com/hajimehoshi/ebiten/v2"

// InputSource supplies the movement axis read by player actors. Each
// component is in [-1, 1].
type InputSource interface {
	Axis() Vec2
}

// InputFunc adapts a plain function to InputSource.
type InputFunc func() Vec2

// Axis implements InputSource.
func (f InputFunc) Axis() Vec2 {
	return f()
}

// KeyboardInput reads WASD from the keyboard through ebiten.
type KeyboardInput struct {
	Left, Right, Up, Down ebiten.Key
}

// NewKeyboardInput returns a KeyboardInput bound to W, A, S and D.
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		Left:  ebiten.KeyA,
		Right: ebiten.KeyD,
		Up:    ebiten.KeyW,
		Down:  ebiten.KeyS,
	}
}

// Axis implements InputSource. Y increases downward.
func (k *KeyboardInput) Axis() Vec2 {
	return Vec2{
		X: keyAxis(k.Left, k.Right),
		Y: keyAxis(k.Up, k.Down),
	}
}

func keyAxis(neg, pos ebiten.Key) float64 {
	var v float64
	if ebiten.IsKeyPressed(neg) {
		v--
	}
	if ebiten.IsKeyPressed(pos) {
		v++
	}
	return v
}
