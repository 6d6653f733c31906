package openava

import "testing"

func TestFrameNumber(t *testing.T) {

	tests := []struct {
		frame string
		want  int
	}{
		{"clip1_frame_0012.jpg", 12},
		{"clip1_frame_0000.jpg", 0},
		{"frames/clip1_frame_0150.jpg", 150},
		{"video2_frame_9.png", 9},
		{"no_digits.jpg", 0},
	}

	for _, tc := range tests {
		if got := FrameNumber(tc.frame); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.frame, tc.want, got)
		}
	}
}

func TestNormalizeBbox(t *testing.T) {

	got := NormalizeBbox([4]float32{320, 180, 960, 540}, 1280, 720)
	want := [4]float32{0.25, 0.25, 0.75, 0.75}

	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGenerateProposals(t *testing.T) {

	boxes := []TrackedBox{
		{VideoID: "clip1", Frame: "clip1_frame_0000.jpg", TrackID: 1, Bbox: [4]float32{0, 0, 640, 360}},
		{VideoID: "clip1", Frame: "clip1_frame_0030.jpg", TrackID: 1, Bbox: [4]float32{64, 72, 704, 432}},
		{VideoID: "clip1", Frame: "clip1_frame_0045.jpg", TrackID: 2, Bbox: [4]float32{640, 360, 1280, 720}},
	}

	proposals := GenerateProposals(boxes, 30, 1280, 720)

	if len(proposals) != 3 {
		t.Fatalf("expected 3 proposals, got %d", len(proposals))
	}

	if proposals[0].Timestamp != 0 || proposals[1].Timestamp != 1 {
		t.Errorf("unexpected timestamps %d and %d",
			proposals[0].Timestamp, proposals[1].Timestamp)
	}

	// frame 45 at 30fps truncates to second 1
	if proposals[2].Timestamp != 1 {
		t.Errorf("expected timestamp 1, got %d", proposals[2].Timestamp)
	}

	if proposals[2].PersonID != 2 {
		t.Errorf("expected person id 2, got %d", proposals[2].PersonID)
	}

	want := [4]float32{0.05, 0.1, 0.55, 0.6}

	if proposals[1].Bbox != want {
		t.Errorf("expected bbox %v, got %v", want, proposals[1].Bbox)
	}
}
