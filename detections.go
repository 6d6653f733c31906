package openava

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/ysnreddy/OpenAVA-Lab/tracker"
)

// Detection is the canonical detector boundary record for a single
// bounding box, absolute pixel coordinates with a confidence score in
// [0,1].  Whatever shape a detector adapter produces is normalized into
// this one type before it reaches the tracking engine
type Detection struct {
	X1, Y1, X2, Y2 float32
	Score          float32
	ClassID        int
}

// UnmarshalJSON accepts the wire layout [x1, y1, x2, y2, score] with an
// optional trailing class id
func (d *Detection) UnmarshalJSON(data []byte) error {

	var vals []float32

	if err := json.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("error parsing detection: %w", err)
	}

	if len(vals) < 5 {
		return fmt.Errorf("detection needs 5 values, got %d", len(vals))
	}

	d.X1 = vals[0]
	d.Y1 = vals[1]
	d.X2 = vals[2]
	d.Y2 = vals[3]
	d.Score = vals[4]

	if len(vals) > 5 {
		d.ClassID = int(vals[5])
	}

	return nil
}

// MarshalJSON writes the wire layout [x1, y1, x2, y2, score]
func (d Detection) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float32{d.X1, d.Y1, d.X2, d.Y2, d.Score})
}

// Valid reports whether the detection carries a usable box, all
// coordinates finite and a positive width and height
func (d Detection) Valid() bool {

	for _, v := range []float32{d.X1, d.Y1, d.X2, d.Y2, d.Score} {
		f := float64(v)

		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return d.X2 > d.X1 && d.Y2 > d.Y1
}

// LoadDetections reads a clip's detection file, a JSON array of frames
// where each frame is an array of [x1, y1, x2, y2, score] detections
func LoadDetections(file string) ([][]Detection, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	var frames [][]Detection

	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("error parsing detections file: %w", err)
	}

	return frames, nil
}

// DetectionsToObjects normalizes one frame of detections into tracker
// objects, dropping malformed boxes so they never reach the engine.  Each
// object is assigned the next detection ID from the generator
func DetectionsToObjects(dets []Detection, ids *IDGenerator) []tracker.Object {

	var objs []tracker.Object

	for _, det := range dets {

		if !det.Valid() {
			continue
		}

		objs = append(objs, tracker.Object{
			Rect:  tracker.NewRect(det.X1, det.Y1, det.X2-det.X1, det.Y2-det.Y1),
			Label: det.ClassID,
			Prob:  det.Score,
			ID:    ids.GetNext(),
		})
	}

	return objs
}
