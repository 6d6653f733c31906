package tracker

// Tlwh (top-left x, top-left y, width, height) represents a 1x4 matrix
type Tlwh []float32

// Tlbr (top-left x, top-left y, bottom-right x, bottom-right y) represents
// a 1x4 matrix
type Tlbr []float32

// Xyah (center x, center y, aspect ratio, height) represents a 1x4 matrix
type Xyah []float32

// Rect represents a bounding box in Tlwh (top-left x, top-left y, width,
// height) format
type Rect struct {
	Tlwh Tlwh
}

// NewRect creates a new Rect with given coordinates
func NewRect(x, y, width, height float32) Rect {
	return Rect{
		Tlwh: Tlwh{x, y, width, height},
	}
}

// X returns the x coordinate of the rectangle
func (r *Rect) X() float32 {
	return r.Tlwh[0]
}

// Y returns the y coordinate of the rectangle
func (r *Rect) Y() float32 {
	return r.Tlwh[1]
}

// Width returns the width of the rectangle
func (r *Rect) Width() float32 {
	return r.Tlwh[2]
}

// Height returns the height of the rectangle
func (r *Rect) Height() float32 {
	return r.Tlwh[3]
}

// TLX returns the top-left x coordinate of the rectangle
func (r *Rect) TLX() float32 {
	return r.Tlwh[0]
}

// TLY returns the top-left y coordinate of the rectangle
func (r *Rect) TLY() float32 {
	return r.Tlwh[1]
}

// BRX returns the bottom-right x coordinate of the rectangle
func (r *Rect) BRX() float32 {
	return r.Tlwh[0] + r.Tlwh[2]
}

// BRY returns the bottom-right y coordinate of the rectangle
func (r *Rect) BRY() float32 {
	return r.Tlwh[1] + r.Tlwh[3]
}

// Area returns the rectangle area.  Degenerate rectangles with zero or
// negative width/height have zero area
func (r *Rect) Area() float32 {

	if r.Tlwh[2] <= 0 || r.Tlwh[3] <= 0 {
		return 0
	}

	return r.Tlwh[2] * r.Tlwh[3]
}

// GetTlbr converts the rectangle to Tlbr (top-left x, top-left y,
// bottom-right x, bottom-right y) format
func (r *Rect) GetTlbr() Tlbr {
	return Tlbr{
		r.Tlwh[0],
		r.Tlwh[1],
		r.Tlwh[0] + r.Tlwh[2],
		r.Tlwh[1] + r.Tlwh[3],
	}
}

// GetXyah converts the rectangle to Xyah (center x, center y, aspect ratio,
// height) format.  The aspect ratio of a rectangle with zero or negative
// height is undefined and is reported as 0
func (r *Rect) GetXyah() Xyah {

	aspect := float32(0)

	if r.Tlwh[3] > 0 {
		aspect = r.Tlwh[2] / r.Tlwh[3]
	}

	return Xyah{
		r.Tlwh[0] + r.Tlwh[2]/2,
		r.Tlwh[1] + r.Tlwh[3]/2,
		aspect,
		r.Tlwh[3],
	}
}

// CalcIoU calculates the Intersection over Union (IoU) with another
// rectangle.  Disjoint and degenerate rectangles give 0, never a negative
// value, and the result is symmetric in its operands
func (r *Rect) CalcIoU(other Rect) float32 {

	iw := min(r.BRX(), other.BRX()) - max(r.TLX(), other.TLX())

	if iw <= 0 {
		return 0
	}

	ih := min(r.BRY(), other.BRY()) - max(r.TLY(), other.TLY())

	if ih <= 0 {
		return 0
	}

	inter := iw * ih
	union := r.Area() + other.Area() - inter

	if union <= 0 {
		return 0
	}

	return inter / union
}

// GenerateRectByTlbr creates a Rect from Tlbr (top-left x, top-left y,
// bottom-right x, bottom-right y) format
func GenerateRectByTlbr(tlbr Tlbr) Rect {
	return NewRect(tlbr[0], tlbr[1], tlbr[2]-tlbr[0], tlbr[3]-tlbr[1])
}

// GenerateRectByXyah creates a Rect from Xyah (center x, center y,
// aspect ratio, height) format
func GenerateRectByXyah(xyah Xyah) Rect {
	width := xyah[2] * xyah[3]
	return NewRect(xyah[0]-width/2, xyah[1]-xyah[3]/2, width, xyah[3])
}
