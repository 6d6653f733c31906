package openava

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// TrackedBox is one reportable track box on one frame, the per-frame
// record the tracker output is serialized as
type TrackedBox struct {
	VideoID string     `json:"video_id"`
	Frame   string     `json:"frame"`
	TrackID int        `json:"track_id"`
	Bbox    [4]float32 `json:"bbox"`
}

// Tube is the concatenation of one track's boxes across a clip.  Boxes
// keep their recording order, frames where the track was coasting are
// simply absent
type Tube struct {
	TrackID int
	Boxes   []TrackedBox
}

// BuildTubes groups a clip's tracked boxes by track ID.  Tubes are
// returned in ascending track ID order.  Gaps in a track's frame coverage
// are preserved, no interpolation is performed
func BuildTubes(boxes []TrackedBox) []Tube {

	byID := make(map[int][]TrackedBox)

	for _, box := range boxes {
		byID[box.TrackID] = append(byID[box.TrackID], box)
	}

	ids := make([]int, 0, len(byID))

	for id := range byID {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	tubes := make([]Tube, 0, len(ids))

	for _, id := range ids {
		tubes = append(tubes, Tube{TrackID: id, Boxes: byID[id]})
	}

	return tubes
}

// WriteTrackedBoxes writes a clip's tracked boxes as a JSON file
func WriteTrackedBoxes(file string, boxes []TrackedBox) error {

	data, err := json.MarshalIndent(boxes, "", "    ")

	if err != nil {
		return fmt.Errorf("error encoding tracked boxes: %w", err)
	}

	if err := os.WriteFile(file, data, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	return nil
}

// LoadTrackedBoxes reads a clip's tracked boxes from a JSON file
func LoadTrackedBoxes(file string) ([]TrackedBox, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	var boxes []TrackedBox

	if err := json.Unmarshal(data, &boxes); err != nil {
		return nil, fmt.Errorf("error parsing tracked boxes: %w", err)
	}

	return boxes, nil
}
