package render

import (
	"image/color"

	"gocv.io/x/gocv"
)

// Alignment positions a track's ID label relative to its bounding box
type Alignment int

const (
	Left Alignment = iota + 1
	Center
	Right
)

// Font holds the text settings used when stamping ID labels on frames
type Font struct {
	Face  gocv.HersheyFont
	Scale float64
	Color color.RGBA
	// Thickness of the text strokes
	Thickness int
	LineType  gocv.LineType
	// Padding placed around the label text
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
	Alignment Alignment
}

// DefaultFont returns the font settings used by the example programs,
// sized for ID labels on typical video resolutions
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   4,
		RightPad:  4,
		TopPad:    4,
		BottomPad: 6,
		Alignment: Left,
	}
}
