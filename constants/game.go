package constants

// Display geometry (HD44780 16x2)
const (
	// GridColumns is the visible width of the character grid
	GridColumns = 16

	// GridRows is the number of display lines
	GridRows = 2

	// LineLength is the DDRAM capacity of one line; columns past
	// GridColumns are stored but not shown
	LineLength = 40
)

// Player placement
const (
	// PlayerColumn is the fixed column of the player sprite
	PlayerColumn = 0

	// MaxPlayerOffset is the largest sub-cell pixel shift of the player
	MaxPlayerOffset = 9

	// GunPixelRow is the sprite row the bullet leaves from at offset 0
	GunPixelRow = 3
)

// Spawn columns
const (
	// InvaderSpawnColumn places a new invader just right of the screen
	InvaderSpawnColumn = 17

	// BulletSpawnColumn places a new bullet next to the player
	BulletSpawnColumn = 1

	// LastColumn is the right-most visible column index
	LastColumn = GridColumns - 1
)

// Glyph slot assignment (CGRAM)
const (
	SlotPlayerTop    = 0
	SlotPlayerBottom = 1
	SlotBulletBase   = 2
	SlotInvaderLeft  = 6
	SlotInvaderRight = 7
)

// Input range of the analog axis (10-bit ADC)
const (
	AxisMin    = 0
	AxisMax    = 1023
	AxisCenter = 512
)
