package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gocv.io/x/gocv"

	openava "github.com/ysnreddy/OpenAVA-Lab"
	"github.com/ysnreddy/OpenAVA-Lab/render"
)

func main() {

	framesDir := flag.String("frames", "", "Directory with the clip's extracted frame images")
	trackFile := flag.String("tracks", "", "The clip's track JSON file")
	outFile := flag.String("out", "tracked.mp4", "Output video file")
	fps := flag.Int("fps", 1, "Frames per second for the output video")

	flag.Parse()

	if *framesDir == "" || *trackFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*framesDir, *trackFile, *outFile, *fps); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(framesDir, trackFile, outFile string, fps int) error {

	boxes, err := openava.LoadTrackedBoxes(trackFile)

	if err != nil {
		return fmt.Errorf("error loading tracked boxes: %w", err)
	}

	// group records per frame name, frames without records render bare
	byFrame := make(map[string][]openava.TrackedBox)

	for _, box := range boxes {
		byFrame[box.Frame] = append(byFrame[box.Frame], box)
	}

	entries, err := os.ReadDir(framesDir)

	if err != nil {
		return fmt.Errorf("error reading frames directory: %w", err)
	}

	var frameFiles []string

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".jpg") {
			frameFiles = append(frameFiles, entry.Name())
		}
	}

	if len(frameFiles) == 0 {
		return fmt.Errorf("no frames found in %s", framesDir)
	}

	sort.Strings(frameFiles)

	first := gocv.IMRead(filepath.Join(framesDir, frameFiles[0]), gocv.IMReadColor)

	if first.Empty() {
		return fmt.Errorf("error reading frame %s", frameFiles[0])
	}

	width := first.Cols()
	height := first.Rows()
	first.Close()

	writer, err := gocv.VideoWriterFile(outFile, "mp4v", float64(fps),
		width, height, true)

	if err != nil {
		return fmt.Errorf("error opening video writer %s: %w", outFile, err)
	}

	defer writer.Close()

	for _, frameFile := range frameFiles {

		img := gocv.IMRead(filepath.Join(framesDir, frameFile), gocv.IMReadColor)

		if img.Empty() {
			img.Close()
			continue
		}

		render.TubeBoxes(&img, byFrame[frameFile], render.DefaultFont(), 2)

		err := writer.Write(img)
		img.Close()

		if err != nil {
			return fmt.Errorf("error writing video frame: %w", err)
		}
	}

	log.Printf("Wrote %s from %d frames", outFile, len(frameFiles))

	return nil
}
