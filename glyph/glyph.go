// Package glyph builds the 5x8 bitmaps written into the display's
// programmable character slots.
//
// A bitmap is eight row bytes; only the low five bits of each row are
// shown by the controller. Sprites taller than one cell are split across
// two vertically stacked slots and shifted a pixel row at a time to get
// movement finer than the character grid.
package glyph

// Rows is the pixel height of one character cell
const Rows = 8

// Columns is the pixel width of one character cell
const Columns = 5

// RowMask keeps the visible bits of a row byte
const RowMask = 0x1F

// Blank is the character code written to erase a cell
const Blank byte = ' '

// SlotCount is the number of programmable glyph slots
const SlotCount = 8

// Bitmap is one glyph: row 0 at the top, bit 4 is the left-most pixel
type Bitmap [Rows]byte

// MaxShift is the largest vertical shift ComposeTopBottom accepts
const MaxShift = 9

// ComposeTopBottom splits base into two stacked cells shifted down by h
// pixel rows. Rows pushed past the bottom of the top cell continue in the
// bottom cell; vacated rows are zero. h is clamped to [0, MaxShift].
func ComposeTopBottom(base Bitmap, h int) (top, bottom Bitmap) {
	h = ClampShift(h)

	for row := 0; row < Rows; row++ {
		if src := row - h; src >= 0 && src < Rows {
			top[row] = base[src]
		}
		if src := row + Rows - h; src >= 0 && src < Rows {
			bottom[row] = base[src]
		}
	}
	return top, bottom
}

// ClampShift limits h to the range ComposeTopBottom supports
func ClampShift(h int) int {
	if h < 0 {
		return 0
	}
	if h > MaxShift {
		return MaxShift
	}
	return h
}

// BulletBitmap returns a glyph with a single lit row at pixelRow mod 8
func BulletBitmap(pixelRow int) Bitmap {
	var b Bitmap
	b[((pixelRow%Rows)+Rows)%Rows] = RowMask
	return b
}

// Masked returns b with the invisible high bits of every row cleared
func (b Bitmap) Masked() Bitmap {
	for i := range b {
		b[i] &= RowMask
	}
	return b
}

// Pixel reports whether the pixel at (x, y) is lit; x counts from the left
func (b Bitmap) Pixel(x, y int) bool {
	if x < 0 || x >= Columns || y < 0 || y >= Rows {
		return false
	}
	return b[y]&(1<<(Columns-1-x)) != 0
}

// LitRows returns the indexes of the non-empty rows
func (b Bitmap) LitRows() []int {
	var rows []int
	for i, r := range b {
		if r&RowMask != 0 {
			rows = append(rows, i)
		}
	}
	return rows
}
