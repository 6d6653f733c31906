package openava

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Proposal is an AVA style person proposal, one tracked box with its
// coordinates normalized to the frame size and its frame index converted
// to a whole second timestamp
type Proposal struct {
	VideoID   string     `json:"video_id"`
	Timestamp int        `json:"timestamp"`
	PersonID  int        `json:"person_id"`
	Bbox      [4]float32 `json:"bbox"`
}

// NormalizeBbox scales absolute pixel coordinates into the [0,1] range of
// the given frame dimensions
func NormalizeBbox(bbox [4]float32, width, height int) [4]float32 {
	return [4]float32{
		bbox[0] / float32(width),
		bbox[1] / float32(height),
		bbox[2] / float32(width),
		bbox[3] / float32(height),
	}
}

// GenerateProposals converts a clip's tracked boxes into AVA style
// proposals.  The frame index is recovered from the trailing digits of
// the frame name and divided by fps to form the timestamp
func GenerateProposals(boxes []TrackedBox, fps, width,
	height int) []Proposal {

	proposals := make([]Proposal, 0, len(boxes))

	for _, box := range boxes {

		proposals = append(proposals, Proposal{
			VideoID:   box.VideoID,
			Timestamp: FrameNumber(box.Frame) / fps,
			PersonID:  box.TrackID,
			Bbox:      NormalizeBbox(box.Bbox, width, height),
		})
	}

	return proposals
}

// FrameNumber extracts the frame index from a frame file name such as
// "clip1_frame_0012.jpg".  Only the trailing run of digits in the base
// name counts, a name without one gives 0
func FrameNumber(frame string) int {

	name := strings.TrimSuffix(filepath.Base(frame), filepath.Ext(frame))

	num := 0
	scale := 1

	for i := len(name) - 1; i >= 0; i-- {

		c := name[i]

		if c < '0' || c > '9' {
			break
		}

		num += int(c-'0') * scale
		scale *= 10
	}

	return num
}

// WriteProposals writes the proposals as a JSON file
func WriteProposals(file string, proposals []Proposal) error {

	data, err := json.MarshalIndent(proposals, "", "  ")

	if err != nil {
		return fmt.Errorf("error encoding proposals: %w", err)
	}

	if err := os.WriteFile(file, data, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	return nil
}
