package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"

	openava "github.com/ysnreddy/OpenAVA-Lab"
	"github.com/ysnreddy/OpenAVA-Lab/render"
	"github.com/ysnreddy/OpenAVA-Lab/tracker"
)

func main() {

	// read in cli flags
	vidFile := flag.String("video", "", "The clip's video file to process")
	detFile := flag.String("dets", "", "JSON file of per frame person detections for the clip")
	videoID := flag.String("id", "clip", "Video ID used in the output records")
	jsonDir := flag.String("jsondir", "tracking_json_output", "Directory to write the clip's track JSON to")
	vidOut := flag.String("vidout", "", "Optional annotated video file to write")
	sampleFPS := flag.Int("fps", 1, "Rate to sample frames at for the output records")
	trackThresh := flag.Float64("track-thresh", 0.5, "Confidence floor for association candidates")
	matchThresh := flag.Float64("match-thresh", 0.3, "Minimum IoU to accept a match")
	maxAge := flag.Int("max-age", 30, "Frames of absence tolerated before pruning a track")
	minHits := flag.Int("min-hits", 3, "Successful matches before a track is first reported")
	nmsThresh := flag.Float64("nms-thresh", 0.6, "IoU threshold for detection NMS")
	optimal := flag.Bool("optimal", false, "Use globally optimal assignment instead of greedy matching")

	flag.Parse()

	if *vidFile == "" || *detFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	err := run(*vidFile, *detFile, *videoID, *jsonDir, *vidOut, *sampleFPS,
		float32(*trackThresh), float32(*matchThresh), *maxAge, *minHits,
		float32(*nmsThresh), *optimal)

	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(vidFile, detFile, videoID, jsonDir, vidOut string, sampleFPS int,
	trackThresh, matchThresh float32, maxAge, minHits int,
	nmsThresh float32, optimal bool) error {

	cap, err := gocv.VideoCaptureFile(vidFile)

	if err != nil {
		return fmt.Errorf("error opening video file %s: %w", vidFile, err)
	}

	defer cap.Close()

	width := int(cap.Get(gocv.VideoCaptureFrameWidth))
	height := int(cap.Get(gocv.VideoCaptureFrameHeight))
	videoFPS := int(cap.Get(gocv.VideoCaptureFPS))

	frames, err := openava.LoadDetections(detFile)

	if err != nil {
		return fmt.Errorf("error loading detections: %w", err)
	}

	log.Printf("Tracking video %s, %dx%d at %d FPS, %d detection frames",
		videoID, width, height, videoFPS, len(frames))

	// one tracker instance per clip, identities never cross clips
	st := tracker.NewSORTTracker(trackThresh, matchThresh, maxAge, minHits)

	if optimal {
		st.UseAssociator(tracker.LAPJVAssociator{})
	}

	trail := tracker.NewTrail(50)
	ids := openava.NewIDGenerator()

	var writer *gocv.VideoWriter

	if vidOut != "" {
		writer, err = gocv.VideoWriterFile(vidOut, "mp4v",
			float64(sampleFPS), width, height, true)

		if err != nil {
			return fmt.Errorf("error opening video writer %s: %w", vidOut, err)
		}

		defer writer.Close()
	}

	// save one frame of records every sampleInterval video frames
	sampleInterval := 1

	if sampleFPS > 0 && videoFPS > sampleFPS {
		sampleInterval = videoFPS / sampleFPS
	}

	img := gocv.NewMat()
	defer img.Close()

	var allBoxes []openava.TrackedBox
	frameCount := 0
	savedFrameIdx := 0

	for cap.Read(&img) {

		if img.Empty() {
			continue
		}

		var dets []openava.Detection

		if frameCount < len(frames) {
			dets = frames[frameCount]
		}

		objects := tracker.NMS(openava.DetectionsToObjects(dets, ids), nmsThresh)
		tracks := st.Update(objects)

		for _, track := range tracks {
			trail.Add(track)
		}

		if frameCount%sampleInterval == 0 {

			frameName := fmt.Sprintf("%s_frame_%04d.jpg", videoID, savedFrameIdx)

			for _, track := range tracks {
				allBoxes = append(allBoxes, openava.TrackedBox{
					VideoID: videoID,
					Frame:   frameName,
					TrackID: track.GetTrackID(),
					Bbox: [4]float32{
						track.GetRect().TLX(), track.GetRect().TLY(),
						track.GetRect().BRX(), track.GetRect().BRY(),
					},
				})
			}

			if writer != nil {
				render.TrackerBoxes(&img, tracks, render.DefaultFont(), 2)
				render.Trail(&img, tracks, trail, render.DefaultTrailStyle())

				if err := writer.Write(img); err != nil {
					return fmt.Errorf("error writing video frame: %w", err)
				}
			}

			savedFrameIdx++
		}

		frameCount++
	}

	if err := os.MkdirAll(jsonDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	jsonFile := filepath.Join(jsonDir, videoID+".json")

	if err := openava.WriteTrackedBoxes(jsonFile, allBoxes); err != nil {
		return fmt.Errorf("error writing track JSON: %w", err)
	}

	log.Printf("Processed %d frames, wrote %d tracked boxes to %s",
		frameCount, len(allBoxes), jsonFile)

	return nil
}
