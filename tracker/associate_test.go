package tracker

import (
	"testing"
)

func TestGreedyAssociatorEmptyInputs(t *testing.T) {

	a := GreedyIOUAssociator{}

	dets := []Rect{NewRect(0, 0, 10, 10), NewRect(20, 0, 10, 10)}
	tracks := []Rect{NewRect(0, 0, 10, 10)}

	matches, unmatchedDets, unmatchedTracks := a.Associate(nil, dets, 0.3)

	if len(matches) != 0 || len(unmatchedTracks) != 0 {
		t.Errorf("expected no matches for empty track list")
	}

	if len(unmatchedDets) != 2 {
		t.Errorf("expected 2 unmatched detections, got %d", len(unmatchedDets))
	}

	matches, unmatchedDets, unmatchedTracks = a.Associate(tracks, nil, 0.3)

	if len(matches) != 0 || len(unmatchedDets) != 0 {
		t.Errorf("expected no matches for empty detection list")
	}

	if len(unmatchedTracks) != 1 {
		t.Errorf("expected 1 unmatched track, got %d", len(unmatchedTracks))
	}
}

func TestGreedyAssociatorMatches(t *testing.T) {

	a := GreedyIOUAssociator{}

	tracks := []Rect{
		NewRect(100, 100, 50, 100),
		NewRect(300, 100, 50, 100),
	}

	// detections slightly shifted from the predictions, plus one new
	// object with no matching track
	dets := []Rect{
		NewRect(302, 101, 50, 100),
		NewRect(101, 100, 50, 100),
		NewRect(600, 100, 50, 100),
	}

	matches, unmatchedDets, unmatchedTracks := a.Associate(tracks, dets, 0.3)

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	if matches[0] != [2]int{0, 1} || matches[1] != [2]int{1, 0} {
		t.Errorf("unexpected matches: %v", matches)
	}

	if len(unmatchedDets) != 1 || unmatchedDets[0] != 2 {
		t.Errorf("expected detection 2 unmatched, got %v", unmatchedDets)
	}

	if len(unmatchedTracks) != 0 {
		t.Errorf("expected no unmatched tracks, got %v", unmatchedTracks)
	}
}

func TestGreedyAssociatorThreshold(t *testing.T) {

	a := GreedyIOUAssociator{}

	tracks := []Rect{NewRect(0, 0, 10, 10)}
	dets := []Rect{NewRect(8, 8, 10, 10)}

	// overlap exists but IoU is far below the threshold
	matches, unmatchedDets, unmatchedTracks := a.Associate(tracks, dets, 0.3)

	if len(matches) != 0 {
		t.Errorf("expected no matches below threshold, got %v", matches)
	}

	if len(unmatchedDets) != 1 || len(unmatchedTracks) != 1 {
		t.Errorf("expected both sides unmatched, got dets %v tracks %v",
			unmatchedDets, unmatchedTracks)
	}
}

// TestGreedyAssociatorOrderDependence shows the greedy policy resolving a
// contested detection in favour of the earlier track
func TestGreedyAssociatorOrderDependence(t *testing.T) {

	a := GreedyIOUAssociator{}

	// both tracks overlap detection 0, track 0 claims it first even
	// though track 1 overlaps it more
	tracks := []Rect{
		NewRect(10, 0, 50, 100),
		NewRect(0, 0, 50, 100),
	}

	dets := []Rect{NewRect(0, 0, 50, 100)}

	matches, _, unmatchedTracks := a.Associate(tracks, dets, 0.3)

	if len(matches) != 1 || matches[0] != [2]int{0, 0} {
		t.Errorf("expected track 0 to claim the detection, got %v", matches)
	}

	if len(unmatchedTracks) != 1 || unmatchedTracks[0] != 1 {
		t.Errorf("expected track 1 unmatched, got %v", unmatchedTracks)
	}
}

// TestLAPJVAssociatorOptimal uses an ambiguous overlap where greedy
// matching in track order is suboptimal and the global solver is not
func TestLAPJVAssociatorOptimal(t *testing.T) {

	// track 0 overlaps both detections, track 1 only overlaps
	// detection 0.  greedy gives detection 0 to track 0 and strands
	// track 1, the optimal solution pairs both
	tracks := []Rect{
		NewRect(0, 0, 50, 100),
		NewRect(10, 0, 50, 100),
	}

	dets := []Rect{
		NewRect(12, 0, 50, 100),
		NewRect(-20, 0, 50, 100),
	}

	greedy, _, greedyUnmatched := GreedyIOUAssociator{}.Associate(tracks, dets, 0.3)

	if len(greedy) != 1 || greedy[0] != [2]int{0, 0} {
		t.Fatalf("expected greedy to strand track 1, got %v", greedy)
	}

	if len(greedyUnmatched) != 1 || greedyUnmatched[0] != 1 {
		t.Fatalf("expected greedy to leave track 1 unmatched, got %v",
			greedyUnmatched)
	}

	optimal, unmatchedDets, unmatchedTracks := LAPJVAssociator{}.Associate(
		tracks, dets, 0.3)

	if len(optimal) != 2 {
		t.Fatalf("expected 2 optimal matches, got %v", optimal)
	}

	// the optimal pairing is track 0 with detection 1 and track 1 with
	// detection 0
	if optimal[0] != [2]int{0, 1} || optimal[1] != [2]int{1, 0} {
		t.Errorf("expected optimal matches [[0 1] [1 0]], got %v", optimal)
	}

	if len(unmatchedDets) != 0 || len(unmatchedTracks) != 0 {
		t.Errorf("expected full assignment, got dets %v tracks %v",
			unmatchedDets, unmatchedTracks)
	}
}
