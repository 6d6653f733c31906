package tracker

import (
	"errors"
)

// large stands in for an unassignable cost inside the solver
const large = 1000000.0

// solveAssignment solves the rectangular linear assignment problem for the
// given cost matrix with the Jonker-Volgenant algorithm.  The matrix is
// extended to a square one padded with dummy rows and columns priced at
// costLimit/2 so that any real pairing costing more than costLimit loses to
// staying unassigned.  rowsol[i] is the column assigned to row i and
// colsol[j] the row assigned to column j, with -1 marking unassigned
func solveAssignment(cost [][]float32, costLimit float32) (rowsol,
	colsol []int, err error) {

	nRows := len(cost)

	if nRows == 0 {
		return nil, nil, errors.New("empty cost matrix")
	}

	nCols := len(cost[0])
	n := nRows + nCols

	extended := make([][]float64, n)

	for i := range extended {
		extended[i] = make([]float64, n)

		for j := range extended[i] {
			extended[i][j] = float64(costLimit) / 2.0
		}
	}

	// dummy-to-dummy pairings are free
	for i := nRows; i < n; i++ {
		for j := nCols; j < n; j++ {
			extended[i][j] = 0
		}
	}

	for i := 0; i < nRows; i++ {
		for j := 0; j < nCols; j++ {
			extended[i][j] = float64(cost[i][j])
		}
	}

	x := make([]int, n)
	y := make([]int, n)

	if err := lapjvDense(n, extended, x, y); err != nil {
		return nil, nil, err
	}

	// assignments into the dummy block mean unassigned
	for i := 0; i < n; i++ {
		if x[i] >= nCols {
			x[i] = -1
		}

		if y[i] >= nRows {
			y[i] = -1
		}
	}

	rowsol = make([]int, nRows)
	colsol = make([]int, nCols)
	copy(rowsol, x[:nRows])
	copy(colsol, y[:nCols])

	return rowsol, colsol, nil
}

// lapjvDense solves the square dense LAP (Linear Assignment Problem) using
// the Jonker-Volgenant algorithm: column reduction, augmenting row
// reduction, then shortest path augmentation for the remaining free rows
func lapjvDense(n int, cost [][]float64, x, y []int) error {

	freeRows := make([]int, n)
	v := make([]float64, n)

	free := columnReduction(n, cost, freeRows, x, y, v)

	for i := 0; free > 0 && i < 2; i++ {
		free = augmentingRowReduction(n, cost, free, freeRows, x, y, v)
	}

	if free > 0 {
		return augmentFreeRows(n, cost, free, freeRows, x, y, v)
	}

	return nil
}

// columnReduction assigns each column to its cheapest row and transfers
// reduction to the duals of uniquely assigned rows.  Returns the number of
// rows left unassigned
func columnReduction(n int, cost [][]float64, freeRows, x, y []int,
	v []float64) int {

	unique := make([]bool, n)

	for i := 0; i < n; i++ {
		x[i] = -1
		v[i] = large
		y[i] = 0
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if c := cost[i][j]; c < v[j] {
				v[j] = c
				y[j] = i
			}
		}
	}

	for i := 0; i < n; i++ {
		unique[i] = true
	}

	for j := n - 1; j >= 0; j-- {
		i := y[j]

		if x[i] < 0 {
			x[i] = j
		} else {
			unique[i] = false
			y[j] = -1
		}
	}

	nFreeRows := 0

	for i := 0; i < n; i++ {

		if x[i] < 0 {
			freeRows[nFreeRows] = i
			nFreeRows++

		} else if unique[i] {

			j := x[i]
			minVal := large

			for j2 := 0; j2 < n; j2++ {
				if j2 == j {
					continue
				}

				if c := cost[i][j2] - v[j2]; c < minVal {
					minVal = c
				}
			}

			v[j] -= minVal
		}
	}

	return nFreeRows
}

// augmentingRowReduction alternately assigns free rows to their best column
// and frees the row previously holding it when that improves the duals.
// Returns the number of rows still unassigned
func augmentingRowReduction(n int, cost [][]float64, nFreeRows int,
	freeRows, x, y []int, v []float64) int {

	current := 0
	newFreeRows := 0
	rrCnt := 0

	for current < nFreeRows {

		rrCnt++
		freeI := freeRows[current]
		current++

		// find the two lowest reduced costs on this row
		j1 := 0
		v1 := cost[freeI][0] - v[0]
		j2 := -1
		v2 := float64(large)

		for j := 1; j < n; j++ {
			c := cost[freeI][j] - v[j]

			if c < v2 {
				if c >= v1 {
					v2 = c
					j2 = j
				} else {
					v2 = v1
					v1 = c
					j2 = j1
					j1 = j
				}
			}
		}

		i0 := y[j1]
		v1New := v[j1] - (v2 - v1)
		v1Lowers := v1New < v[j1]

		if rrCnt < current*n {
			if v1Lowers {
				v[j1] = v1New
			} else if i0 >= 0 && j2 >= 0 {
				j1 = j2
				i0 = y[j2]
			}

			if i0 >= 0 {
				if v1Lowers {
					current--
					freeRows[current] = i0
				} else {
					freeRows[newFreeRows] = i0
					newFreeRows++
				}
			}
		} else if i0 >= 0 {
			freeRows[newFreeRows] = i0
			newFreeRows++
		}

		x[freeI] = j1
		y[j1] = freeI
	}

	return newFreeRows
}

// lowestColumns moves the columns holding the minimum d[j] to the front of
// the scan list and returns the new scan boundary
func lowestColumns(n int, lo int, d []float64, cols []int) int {

	hi := lo + 1
	mind := d[cols[lo]]

	for k := hi; k < n; k++ {

		j := cols[k]

		if d[j] <= mind {
			if d[j] < mind {
				hi = lo
				mind = d[j]
			}

			cols[k] = cols[hi]
			cols[hi] = j
			hi++
		}
	}

	return hi
}

// scanColumns relaxes the remaining columns through each column on the scan
// list, returning an unassigned column reached at minimum distance or -1
func scanColumns(n int, cost [][]float64, lo, hi *int, d []float64,
	cols, pred, y []int, v []float64) int {

	for *lo != *hi {

		j := cols[*lo]
		*lo++
		i := y[j]
		mind := d[j]
		h := cost[i][j] - v[j] - mind

		for k := *hi; k < n; k++ {
			j = cols[k]
			cred := cost[i][j] - v[j] - h

			if cred < d[j] {
				d[j] = cred
				pred[j] = i

				if cred == mind {
					if y[j] < 0 {
						return j
					}

					cols[k] = cols[*hi]
					cols[*hi] = j
					(*hi)++
				}
			}
		}
	}

	return -1
}

// shortestPath runs one iteration of the modified Dijkstra shortest
// augmenting path search from the given free row, updating the column
// duals for the columns that became final.  Returns the unassigned column
// ending the path
func shortestPath(n int, cost [][]float64, startI int, y []int, v []float64,
	pred []int) int {

	lo := 0
	hi := 0
	finalJ := -1
	nReady := 0
	cols := make([]int, n)
	d := make([]float64, n)

	for i := 0; i < n; i++ {
		cols[i] = i
		pred[i] = startI
		d[i] = cost[startI][i] - v[i]
	}

	for finalJ == -1 {

		// scan list exhausted, pull in the next band of nearest columns
		if lo == hi {
			nReady = lo
			hi = lowestColumns(n, lo, d, cols)

			for k := lo; k < hi; k++ {
				if j := cols[k]; y[j] < 0 {
					finalJ = j
				}
			}
		}

		if finalJ == -1 {
			finalJ = scanColumns(n, cost, &lo, &hi, d, cols, pred, y, v)
		}
	}

	mind := d[cols[lo]]

	for k := 0; k < nReady; k++ {
		j := cols[k]
		v[j] += d[j] - mind
	}

	return finalJ
}

// augmentFreeRows augments the solution along a shortest path for every
// remaining free row
func augmentFreeRows(n int, cost [][]float64, nFreeRows int, freeRows,
	x, y []int, v []float64) error {

	pred := make([]int, n)

	for _, freeI := range freeRows[:nFreeRows] {

		i := -1
		k := 0

		j := shortestPath(n, cost, freeI, y, v, pred)

		if j < 0 || j >= n {
			return errors.New("augmenting path ended outside the matrix")
		}

		// walk the path backwards flipping assignments
		for i != freeI {

			i = pred[j]
			y[j] = i
			j, x[i] = x[i], j
			k++

			if k >= n {
				return errors.New("augmenting path did not terminate")
			}
		}
	}

	return nil
}
