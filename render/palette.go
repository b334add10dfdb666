package render

import "github.com/go-gl/mathgl/mgl64"

const PaletteSize = 8

// Palette is the set of colors the scene draws with. It is cosmetic only.
type Palette [PaletteSize]mgl64.Vec4

// Rand is the random source for colors.
type Rand interface {
	Float64() float64
}

// NewPalette returns a freshly randomized palette.
func NewPalette(rng Rand) Palette {
	var p Palette
	p.Randomize(rng)
	return p
}

// Randomize gives every slot a new opaque color.
func (p *Palette) Randomize(rng Rand) {
	for i := range p {
		p[i] = mgl64.Vec4{rng.Float64(), rng.Float64(), rng.Float64(), 1}
	}
}
