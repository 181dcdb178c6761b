package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorBoardBackground = color.RGBA{15, 15, 26, 255}    // Darker for the board area
	colorTileRaised      = color.RGBA{96, 104, 140, 255}  // Unrevealed tile
	colorTileHighlight   = color.RGBA{150, 160, 200, 255} // Top-left bevel
	colorTileShadow      = color.RGBA{50, 54, 80, 255}    // Bottom-right bevel
	colorTileOpen        = color.RGBA{44, 46, 70, 255}    // Revealed tile
	colorTileGrid        = color.RGBA{34, 36, 56, 255}
	colorMineBg          = color.RGBA{200, 50, 50, 255}
	colorFlag            = color.RGBA{255, 90, 90, 255}
	colorMine            = color.RGBA{20, 20, 20, 255}
	colorCursor          = color.RGBA{255, 220, 100, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorWon             = color.RGBA{100, 255, 150, 255}
	colorLost            = color.RGBA{255, 120, 120, 255}
	colorButton          = color.RGBA{40, 44, 72, 255}
	colorButtonActive    = color.RGBA{80, 70, 140, 255}
	colorPanelBackground = color.RGBA{30, 30, 50, 235} // Semi-transparent dark
	colorPanelBorder     = color.RGBA{180, 150, 250, 255}
)

// Layout spacing in pixels
const (
	margin      = 20
	rowSpacing  = 12
	buttonPadX  = 12
	buttonPadY  = 6
	bevelWidth  = 3
	faceOutset  = 8
	messageRows = 3
)

const (
	keyRepeatInitialDelay = 400 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 90  // Interval between repeat events (milliseconds)
)

const (
	tileSizeStep = 4
	baseFontSize = 16.0 // Base font size at a 24px tile
)
