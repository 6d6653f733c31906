package tracker

// Associator matches predicted track boxes against detection boxes for one
// frame.  Implementations return the matched (track index, detection index)
// pairs plus the indices left unmatched on either side.  Empty inputs must
// be handled by returning everything unmatched
type Associator interface {
	Associate(tracks, detections []Rect, matchThresh float32) (matches [][2]int,
		unmatchedDetections, unmatchedTracks []int)
}

// GreedyIOUAssociator matches each track, in track list order, to the
// currently unmatched detection with the highest IoU, committing the match
// when that IoU reaches matchThresh.  The policy is order dependent, ties
// and near ties resolve in favour of earlier tracks
type GreedyIOUAssociator struct{}

// Associate implements the Associator interface
func (GreedyIOUAssociator) Associate(tracks, detections []Rect,
	matchThresh float32) (matches [][2]int, unmatchedDetections,
	unmatchedTracks []int) {

	if len(tracks) == 0 || len(detections) == 0 {
		return nil, indexRange(len(detections)), indexRange(len(tracks))
	}

	ious := iouMatrix(tracks, detections)
	detTaken := make([]bool, len(detections))

	for ti := range tracks {

		best := -1
		bestIoU := float32(-1)

		for di := range detections {

			if detTaken[di] {
				continue
			}

			if ious[ti][di] > bestIoU {
				bestIoU = ious[ti][di]
				best = di
			}
		}

		if best >= 0 && bestIoU >= matchThresh {
			matches = append(matches, [2]int{ti, best})
			detTaken[best] = true
		} else {
			unmatchedTracks = append(unmatchedTracks, ti)
		}
	}

	for di := range detections {
		if !detTaken[di] {
			unmatchedDetections = append(unmatchedDetections, di)
		}
	}

	return matches, unmatchedDetections, unmatchedTracks
}

// LAPJVAssociator matches tracks to detections by solving the global linear
// assignment problem on the cost matrix 1 - IoU with the Jonker-Volgenant
// algorithm.  Unlike the greedy policy the result does not depend on track
// list order.  Pairs whose IoU falls below matchThresh are left unmatched
type LAPJVAssociator struct{}

// Associate implements the Associator interface.  If the solver fails the
// whole frame degrades to unmatched, equivalent to a frame with no usable
// detections
func (LAPJVAssociator) Associate(tracks, detections []Rect,
	matchThresh float32) (matches [][2]int, unmatchedDetections,
	unmatchedTracks []int) {

	if len(tracks) == 0 || len(detections) == 0 {
		return nil, indexRange(len(detections)), indexRange(len(tracks))
	}

	ious := iouMatrix(tracks, detections)
	cost := make([][]float32, len(tracks))

	for ti := range cost {
		cost[ti] = make([]float32, len(detections))

		for di := range cost[ti] {
			cost[ti][di] = 1 - ious[ti][di]
		}
	}

	// a match at exactly matchThresh IoU must still be accepted
	rowsol, colsol, err := solveAssignment(cost, 1-matchThresh)

	if err != nil {
		return nil, indexRange(len(detections)), indexRange(len(tracks))
	}

	for ti, di := range rowsol {
		if di >= 0 && ious[ti][di] >= matchThresh {
			matches = append(matches, [2]int{ti, di})
		} else {
			unmatchedTracks = append(unmatchedTracks, ti)
		}
	}

	matchedDet := make([]bool, len(detections))

	for _, m := range matches {
		matchedDet[m[1]] = true
	}

	for di := range colsol {
		if !matchedDet[di] {
			unmatchedDetections = append(unmatchedDetections, di)
		}
	}

	return matches, unmatchedDetections, unmatchedTracks
}

// iouMatrix calculates the IoU between every track box and every
// detection box
func iouMatrix(tracks, detections []Rect) [][]float32 {

	ious := make([][]float32, len(tracks))

	for ti := range tracks {
		ious[ti] = make([]float32, len(detections))

		for di := range detections {
			ious[ti][di] = tracks[ti].CalcIoU(detections[di])
		}
	}

	return ious
}

// indexRange returns the indices 0..n-1, or nil for n == 0
func indexRange(n int) []int {

	if n == 0 {
		return nil
	}

	out := make([]int, n)

	for i := range out {
		out[i] = i
	}

	return out
}
