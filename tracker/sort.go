package tracker

// SORTTracker converts a per-frame stream of person detections into
// temporally consistent identity tracks.  It owns the live track list and
// the track ID counter, so independent clips tracked on separate instances
// can never share identities
type SORTTracker struct {
	// trackThresh is the confidence floor for association candidates
	trackThresh float32
	// matchThresh is the minimum IoU to accept a match
	matchThresh float32
	// maxAge is the number of frames of absence tolerated before pruning
	maxAge int
	// minHits is the number of successful matches before the first report
	minHits int
	// associator is the matching policy used each frame
	associator Associator
	// trackIDCount assigns unique track IDs, never reused within
	// this instance
	trackIDCount int
	// tracks is the list of live tracks, reportable or coasting
	tracks []*Track
}

// NewSORTTracker initializes and returns a new SORTTracker using the
// greedy IoU matching policy
func NewSORTTracker(trackThresh, matchThresh float32, maxAge,
	minHits int) *SORTTracker {

	return &SORTTracker{
		trackThresh: trackThresh,
		matchThresh: matchThresh,
		maxAge:      maxAge,
		minHits:     minHits,
		associator:  GreedyIOUAssociator{},
	}
}

// UseAssociator swaps the matching policy, eg: for the globally optimal
// LAPJVAssociator.  Passing nil keeps the current policy
func (st *SORTTracker) UseAssociator(a Associator) {
	if a != nil {
		st.associator = a
	}
}

// Reset clears the tracked data and resets the ID counter
func (st *SORTTracker) Reset() {
	st.trackIDCount = 0
	st.tracks = nil
}

// TrackCount returns the number of live tracks, including coasting ones
// that are currently excluded from the output
func (st *SORTTracker) TrackCount() int {
	return len(st.tracks)
}

// Update runs one frame of tracking over the given detections and returns
// the reportable tracks, those matched this frame with at least minHits
// successful matches.  Frames must be supplied strictly in temporal order.
// An empty frame never fails, it ages every live track and prunes the
// stale ones
func (st *SORTTracker) Update(objects []Object) []*Track {

	// Step 1: keep the high confidence detections
	var dets []Object

	for _, obj := range objects {
		if obj.Prob >= st.trackThresh {
			dets = append(dets, obj)
		}
	}

	// Step 2: dead-reckon every live track forward one frame
	for _, track := range st.tracks {
		track.Predict()
	}

	// Step 3: associate predicted track boxes with detections
	trackRects := make([]Rect, len(st.tracks))

	for i, track := range st.tracks {
		trackRects[i] = *track.GetRect()
	}

	detRects := make([]Rect, len(dets))

	for i, det := range dets {
		detRects[i] = det.Rect
	}

	matches, unmatchedDets, _ := st.associator.Associate(
		trackRects, detRects, st.matchThresh)

	// Step 4: correct matched tracks.  A numeric filter failure leaves
	// that one track coasting this frame instead of failing the clip
	for _, m := range matches {
		_ = st.tracks[m[0]].Update(dets[m[1]])
	}

	// Step 5: spawn a new track for every unmatched detection
	for _, di := range unmatchedDets {
		st.trackIDCount++
		st.tracks = append(st.tracks, NewTrack(st.trackIDCount, dets[di]))
	}

	// Step 6: collect reportable tracks and prune the stale ones
	var reportable []*Track
	live := st.tracks[:0]

	for _, track := range st.tracks {

		if track.GetTimeSinceUpdate() == 0 && track.GetHits() >= st.minHits {
			reportable = append(reportable, track)
		}

		if track.GetTimeSinceUpdate() <= st.maxAge {
			live = append(live, track)
		}
	}

	st.tracks = live

	return reportable
}
