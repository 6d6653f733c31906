package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	openava "github.com/ysnreddy/OpenAVA-Lab"
	"github.com/ysnreddy/OpenAVA-Lab/tracker"
)

// boxLabel holds the rendering details of one ID label
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// TrackerBoxes renders the bounding boxes and ID labels for the tracker's
// reportable tracks.  The box color is keyed by track ID so an identity
// keeps its color across frames
func TrackerBoxes(img *gocv.Mat, tracks []*tracker.Track, font Font,
	lineThickness int) {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0, len(tracks))

	for _, track := range tracks {

		boxLeft := int(track.GetRect().TLX())
		boxTop := int(track.GetRect().TLY())
		boxRight := int(track.GetRect().BRX())
		boxBottom := int(track.GetRect().BRY())

		useClr := trackColors[track.GetTrackID()%len(trackColors)]

		// draw rectangle around tracked object
		rect := image.Rect(boxLeft, boxTop, boxRight, boxBottom)
		gocv.Rectangle(img, rect, useClr, lineThickness)

		text := fmt.Sprintf("ID:%d", track.GetTrackID())

		boxLabels = append(boxLabels, makeBoxLabel(text, useClr, font,
			boxLeft, boxTop, boxRight, lineThickness))
	}

	drawBoxLabels(img, boxLabels, font)
}

// TubeBoxes renders previously recorded tracked boxes, eg: when replaying
// a clip's track JSON over its extracted frames
func TubeBoxes(img *gocv.Mat, boxes []openava.TrackedBox, font Font,
	lineThickness int) {

	boxLabels := make([]boxLabel, 0, len(boxes))

	for _, box := range boxes {

		boxLeft := int(box.Bbox[0])
		boxTop := int(box.Bbox[1])
		boxRight := int(box.Bbox[2])
		boxBottom := int(box.Bbox[3])

		useClr := trackColors[box.TrackID%len(trackColors)]

		rect := image.Rect(boxLeft, boxTop, boxRight, boxBottom)
		gocv.Rectangle(img, rect, useClr, lineThickness)

		text := fmt.Sprintf("ID:%d", box.TrackID)

		boxLabels = append(boxLabels, makeBoxLabel(text, useClr, font,
			boxLeft, boxTop, boxRight, lineThickness))
	}

	drawBoxLabels(img, boxLabels, font)
}

// makeBoxLabel calculates the placement of an ID label against the top
// edge of its bounding box
func makeBoxLabel(text string, clr color.RGBA, font Font, boxLeft, boxTop,
	boxRight, lineThickness int) boxLabel {

	textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

	// calculate the alignment of text label
	var centerX int

	switch font.Alignment {
	case Center:
		centerX = (boxLeft + boxRight) / 2

	case Right:
		centerX = boxRight - (textSize.X / 2) - font.RightPad + (lineThickness / 2)

	case Left:
		fallthrough
	default:
		centerX = boxLeft + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)
	}

	// adjust the label position so the text is centered horizontally
	labelPosition := image.Pt(centerX-textSize.X/2, boxTop-font.BottomPad)

	// create box for placing text on
	bRect := image.Rect(centerX-textSize.X/2-font.LeftPad,
		boxTop-textSize.Y-font.TopPad-font.BottomPad,
		centerX+textSize.X/2+font.RightPad, boxTop)

	return boxLabel{
		rect:    bRect,
		clr:     clr,
		text:    text,
		textPos: labelPosition,
	}
}

// drawBoxLabels draws all precalculated box labels so they are the top
// most layer on the image and don't get overlapped by box outlines
func drawBoxLabels(img *gocv.Mat, boxLabels []boxLabel, font Font) {

	for _, box := range boxLabels {
		// draw box the text gets written on
		gocv.Rectangle(img, box.rect, box.clr, -1)

		// draw the label over the box
		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
