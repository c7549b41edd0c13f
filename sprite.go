package arbor

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is the drawable handle an Actor may carry: an image plus the path it
// was loaded from. Decoding the file is left to the caller.
type Sprite struct {
	Image *ebiten.Image
	Path  string

	// Color scales the image's RGBA when drawn. The zero value draws untinted.
	Color Color
}

// NewSprite wraps img, remembering the source path for diagnostics.
func NewSprite(img *ebiten.Image, path string) *Sprite {
	return &Sprite{Image: img, Path: path}
}

// Draw renders the sprite centred on the origin of world. A sprite with no
// image draws nothing.
func (s *Sprite) Draw(screen *ebiten.Image, world Matrix3) {
	if s == nil || s.Image == nil || screen == nil {
		return
	}
	b := s.Image.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Concat(world.GeoM())
	if s.Color != (Color{}) {
		op.ColorScale.Scale(float32(s.Color.R), float32(s.Color.G), float32(s.Color.B), float32(s.Color.A))
	}
	screen.DrawImage(s.Image, &op)
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite leaves a sprite untinted.
var ColorWhite = Color{1, 1, 1, 1}
