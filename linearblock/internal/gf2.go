package internal

import (
	"context"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

// eliminator carries the state of one GF(2) Gauss-Jordan elimination. The matrix
// is modified in place and every column swap is mirrored into order.
type eliminator struct {
	ctx     context.Context
	threads int
	m       mat.SparseMat
	order   []int
	mux     sync.RWMutex
}

//GaussianJordanEliminationGF2 transforms a copy of H into the form [I, *] using row
// additions and column swaps over GF(2). It returns the transformed matrix together
// with the column ordering, or nil when H is not full row rank or ctx is cancelled.
func GaussianJordanEliminationGF2(ctx context.Context, H mat.SparseMat, threads int) (mat.SparseMat, []int) {
	rows, cols := H.Dims()
	if cols < rows {
		//null space must equal the rank
		return nil, nil
	}

	e := &eliminator{
		ctx:     ctx,
		threads: threads,
		m:       mat.CSRMatCopy(H),
		order:   make([]int, cols),
	}
	for c := range e.order {
		e.order[c] = c
	}

	showBar := logrus.GetLevel() == logrus.DebugLevel

	//to fail fast we first do the lower triangle then do the upper
	if e.rowEchelon(rows, showBar) != rows {
		logrus.Debugf("All rows not linearly independent")
		return nil, nil
	}

	if !e.reducedRowEchelon(rows, showBar) {
		return nil, nil
	}

	logrus.Debugf("Gaussian-Jordan Elimination complete")
	return e.m, e.order
}

func newBar(rows int, show bool) *pb.ProgressBar {
	bar := pb.Full.New(rows)
	bar.Set("prefix", "Processing Row ")
	bar.SetWriter(os.Stdout)
	if show {
		bar.Start()
	}
	return bar
}

func finishBar(bar *pb.ProgressBar) {
	bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
	bar.Set("suffix", " Done")
	bar.Finish()
}

// rowEchelon clears everything below the diagonal and returns the number of rows
// that received a pivot (the rank when less than rows), or -1 when cancelled.
func (e *eliminator) rowEchelon(rows int, showBar bool) int {
	logrus.Debugf("Row echelon")
	bar := newBar(rows, showBar)

	for r := 0; r < rows; r++ {
		if e.ctx.Err() != nil {
			return -1
		}
		bar.Increment()

		pivots := e.pivots(r)
		if pivots == nil {
			return r
		}

		//the last pivot is at or below r so it becomes the rth row
		e.m.SwapRows(r, pivots[len(pivots)-1])
		e.addRowTo(r, func(p int) bool { return p > r })
	}

	finishBar(bar)
	return rows
}

// reducedRowEchelon clears everything above the diagonal.
func (e *eliminator) reducedRowEchelon(rows int, showBar bool) bool {
	logrus.Debugf("Reduced row echelon")
	bar := newBar(rows, showBar)

	for r := 0; r < rows; r++ {
		if e.ctx.Err() != nil {
			return false
		}
		bar.Increment()
		e.addRowTo(r, func(p int) bool { return p != r })
	}

	finishBar(bar)
	return true
}

// pivots returns the rows with a one in column r, swapping in another column
// first when no row at or below r has one there. It returns nil when no such
// column exists (the remaining rows are all zero).
func (e *eliminator) pivots(r int) []int {
	pivots := e.m.Column(r).NonzeroArray()
	if len(pivots) > 0 && pivots[len(pivots)-1] >= r {
		return pivots
	}

	col := e.pivotColumn(r)
	if col == -1 {
		return nil
	}

	e.m.SwapColumns(r, col)
	e.order[r], e.order[col] = e.order[col], e.order[r]
	return e.m.Column(r).NonzeroArray()
}

// pivotColumn finds a column right of r holding the last one of some row at or below r.
func (e *eliminator) pivotColumn(r int) int {
	rows, _ := e.m.Dims()
	for i := r; i < rows; i++ {
		nonzero := e.m.Row(i).NonzeroArray()
		if len(nonzero) == 0 {
			continue
		}
		if col := nonzero[len(nonzero)-1]; col > r {
			return col
		}
	}
	return -1
}

// addRowTo adds (xor) row r to every row p with a one in column r for which include(p).
func (e *eliminator) addRowTo(r int, include func(p int) bool) {
	targets := make([]int, 0)
	for _, p := range e.m.Column(r).NonzeroArray() {
		if include(p) {
			targets = append(targets, p)
		}
	}
	if len(targets) == 0 {
		return
	}

	source := e.m.Row(r)
	pool := threadpool.NewFixedSize(e.ctx, e.threads, len(targets))
	for _, p := range targets {
		p := p
		pool.Add(func() {
			e.mux.RLock()
			row := e.m.Row(p)
			e.mux.RUnlock()

			row.Add(row, source)

			e.mux.Lock()
			e.m.SetRow(p, row)
			e.mux.Unlock()
		})
	}
	pool.Wait()
}
