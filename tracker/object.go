package tracker

// Object is one frame's detector result in the form the engine consumes,
// an absolute pixel box with its class and confidence
type Object struct {
	Rect Rect
	// Label is the detector class of the object
	Label int
	// Prob is the detection confidence in [0,1]
	Prob float32
	// ID identifies the individual detection so callers can match an
	// input box to the track it updated
	ID int64
}

// NewObject returns an Object for the given box, class, confidence and
// detection ID
func NewObject(rect Rect, label int, prob float32, id int64) Object {
	return Object{
		Rect:  rect,
		Label: label,
		Prob:  prob,
		ID:    id,
	}
}
