package tracker

import (
	"sort"
)

// NMS performs greedy non-maximum suppression over detected objects.  The
// objects are visited in descending score order, each kept object
// suppresses every remaining object overlapping it with an IoU at or above
// iouThreshold.  The sort is stable so equal scores keep their input
// order, making the result deterministic.  Kept objects are returned in
// descending score order
func NMS(objects []Object, iouThreshold float32) []Object {

	if len(objects) == 0 {
		return nil
	}

	order := make([]int, len(objects))

	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return objects[order[a]].Prob > objects[order[b]].Prob
	})

	suppressed := make([]bool, len(objects))
	kept := make([]Object, 0, len(objects))

	for oi, i := range order {

		if suppressed[i] {
			continue
		}

		kept = append(kept, objects[i])

		for _, j := range order[oi+1:] {

			if suppressed[j] {
				continue
			}

			if objects[i].Rect.CalcIoU(objects[j].Rect) >= iouThreshold {
				suppressed[j] = true
			}
		}
	}

	return kept
}
