package openava

import (
	"path/filepath"
	"testing"
)

func TestBuildTubes(t *testing.T) {

	boxes := []TrackedBox{
		{VideoID: "clip1", Frame: "clip1_frame_0001.jpg", TrackID: 2, Bbox: [4]float32{0, 0, 10, 10}},
		{VideoID: "clip1", Frame: "clip1_frame_0001.jpg", TrackID: 1, Bbox: [4]float32{20, 0, 30, 10}},
		{VideoID: "clip1", Frame: "clip1_frame_0002.jpg", TrackID: 2, Bbox: [4]float32{1, 0, 11, 10}},
		// track 1 coasts on frame 2 and reappears on frame 4
		{VideoID: "clip1", Frame: "clip1_frame_0004.jpg", TrackID: 1, Bbox: [4]float32{22, 0, 32, 10}},
	}

	tubes := BuildTubes(boxes)

	if len(tubes) != 2 {
		t.Fatalf("expected 2 tubes, got %d", len(tubes))
	}

	// ascending track ID order
	if tubes[0].TrackID != 1 || tubes[1].TrackID != 2 {
		t.Errorf("expected tubes ordered by track ID, got %d then %d",
			tubes[0].TrackID, tubes[1].TrackID)
	}

	if len(tubes[0].Boxes) != 2 || len(tubes[1].Boxes) != 2 {
		t.Errorf("unexpected tube lengths %d and %d",
			len(tubes[0].Boxes), len(tubes[1].Boxes))
	}

	// the frame gap is preserved, not interpolated
	if tubes[0].Boxes[1].Frame != "clip1_frame_0004.jpg" {
		t.Errorf("unexpected second box frame %s", tubes[0].Boxes[1].Frame)
	}
}

func TestBuildTubesEmpty(t *testing.T) {

	if tubes := BuildTubes(nil); len(tubes) != 0 {
		t.Errorf("expected no tubes, got %d", len(tubes))
	}
}

func TestTrackedBoxesRoundTrip(t *testing.T) {

	file := filepath.Join(t.TempDir(), "clip1.json")

	boxes := []TrackedBox{
		{VideoID: "clip1", Frame: "clip1_frame_0001.jpg", TrackID: 1, Bbox: [4]float32{10, 20, 60, 120}},
		{VideoID: "clip1", Frame: "clip1_frame_0002.jpg", TrackID: 1, Bbox: [4]float32{12, 20, 62, 120}},
	}

	if err := WriteTrackedBoxes(file, boxes); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	loaded, err := LoadTrackedBoxes(file)

	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	if len(loaded) != 2 || loaded[0] != boxes[0] || loaded[1] != boxes[1] {
		t.Errorf("expected %v, got %v", boxes, loaded)
	}
}
