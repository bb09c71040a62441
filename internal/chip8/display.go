package chip8

// Default display dimensions of a CHIP-8 machine.
const (
	DefaultWidth  = 64
	DefaultHeight = 32

	spriteWidth = 8
)

// Display is the monochrome pixel buffer of the machine. It is mutated only
// by the clear screen and draw instructions.
type Display struct {
	width  int
	height int
	pixels []byte
}

// NewDisplay returns a cleared display of the given dimensions.
func NewDisplay(width, height int) *Display {
	return &Display{
		width:  width,
		height: height,
		pixels: make([]byte, width*height),
	}
}

// Width returns the display width in pixels.
func (d *Display) Width() int {
	return d.width
}

// Height returns the display height in pixels.
func (d *Display) Height() int {
	return d.height
}

// Clear switches every pixel off.
func (d *Display) Clear() {
	clear(d.pixels)
}

// Pixel reports whether the pixel at the given coordinates is set.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels[y*d.width+x] != 0
}

// DrawSprite XORs a sprite of up to 15 rows onto the display with its top
// left corner at (x, y) and reports whether any set pixel was switched off.
// The base coordinates wrap to the display dimensions. Pixels beyond the
// right or bottom edge are discarded when clip is set and wrap to the
// opposite side otherwise.
func (d *Display) DrawSprite(x, y uint8, sprite []byte, clip bool) bool {
	baseX := int(x) % d.width
	baseY := int(y) % d.height
	collision := false

	for row, bits := range sprite {
		py := baseY + row
		if py >= d.height {
			if clip {
				continue
			}
			py %= d.height
		}

		for col := range spriteWidth {
			if bits&(0x80>>col) == 0 {
				continue
			}

			px := baseX + col
			if px >= d.width {
				if clip {
					continue
				}
				px %= d.width
			}

			index := py*d.width + px
			if d.pixels[index] != 0 {
				d.pixels[index] = 0
				collision = true
			} else {
				d.pixels[index] = 1
			}
		}
	}

	return collision
}
