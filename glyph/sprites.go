package glyph

// Player is the ship, facing right, drawn across slots 0 and 1
var Player = Bitmap{
	0b00011000,
	0b00011100,
	0b00011100,
	0b00011110,
	0b00011100,
	0b00011100,
	0b00011000,
	0b00000000,
}

// InvaderLeft is the left half of the two-cell invader
var InvaderLeft = Bitmap{
	0b00001000,
	0b00000111,
	0b00001111,
	0b00011011,
	0b00011111,
	0b00010100,
	0b00010010,
	0b00000000,
}

// InvaderRight is the right half of the two-cell invader
var InvaderRight = Bitmap{
	0b00000100,
	0b00011000,
	0b00011100,
	0b00010110,
	0b00011110,
	0b00001010,
	0b00010010,
	0b00000000,
}
