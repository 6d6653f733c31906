package tracker

import (
	"fmt"
)

// Track represents one tracked identity.  It owns a single Kalman filter
// and the lifecycle counters used by the tracker to decide when the track
// becomes reportable and when it is pruned
type Track struct {
	// kf is the motion model for this identity
	kf *KalmanFilter
	// rect is the bounding box derived from the current filter state
	rect Rect
	// score is the confidence of the most recent matched detection
	score float32
	// trackID is the unique ID for the track, assigned by the tracker
	trackID int
	// detectionID is the ID of the most recent matched detection
	detectionID int64
	// label is the object class from the detector
	label int
	// hits counts successful detection matches
	hits int
	// age counts frames since the track was created
	age int
	// timeSinceUpdate counts frames since the last successful match
	timeSinceUpdate int
}

// NewTrack creates a new Track seeded with the given detection.  The filter
// state is initialized directly from the detection box with zero velocity
func NewTrack(trackID int, obj Object) *Track {

	t := &Track{
		kf:          NewKalmanFilter(),
		rect:        obj.Rect,
		score:       obj.Prob,
		trackID:     trackID,
		detectionID: obj.ID,
		label:       obj.Label,
		hits:        1,
		age:         1,
	}

	// first filter update seeds the state, it cannot fail
	t.kf.Update(Measurement(t.rect.GetXyah()))
	t.rect = t.kf.StateRect()

	return t
}

// GetRect returns the bounding box of the tracked object
func (t *Track) GetRect() *Rect {
	return &t.rect
}

// GetScore returns the detection score
func (t *Track) GetScore() float32 {
	return t.score
}

// GetTrackID returns the unique ID for the track
func (t *Track) GetTrackID() int {
	return t.trackID
}

// GetDetectionID returns the ID of the most recent matched detection
func (t *Track) GetDetectionID() int64 {
	return t.detectionID
}

// GetLabel returns the object class from the detector
func (t *Track) GetLabel() int {
	return t.label
}

// GetHits returns the number of successful matches
func (t *Track) GetHits() int {
	return t.hits
}

// GetAge returns the number of frames since the track was created
func (t *Track) GetAge() int {
	return t.age
}

// GetTimeSinceUpdate returns the number of frames since the last
// successful match
func (t *Track) GetTimeSinceUpdate() int {
	return t.timeSinceUpdate
}

// Predict advances the track one frame on the motion model alone and ages
// the lifecycle counters.  It is called once per frame for every live
// track, matched or not
func (t *Track) Predict() {
	t.kf.Predict()
	t.rect = t.kf.StateRect()
	t.age++
	t.timeSinceUpdate++
}

// Update corrects the track with a matched detection, resetting the
// coasting counter and crediting a hit.  A numeric failure inside the
// filter leaves the track coasting on its prediction for this frame
func (t *Track) Update(obj Object) error {

	if err := t.kf.Update(Measurement(obj.Rect.GetXyah())); err != nil {
		return fmt.Errorf("error updating track %d: %w", t.trackID, err)
	}

	t.rect = t.kf.StateRect()
	t.score = obj.Prob
	t.detectionID = obj.ID
	t.timeSinceUpdate = 0
	t.hits++

	return nil
}
