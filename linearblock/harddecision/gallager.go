package harddecision

import (
	mat "github.com/nathanhack/sparsemat"
)

//Gallager is the single bit flipping rule: flip the bit taking part in the most
// unsatisfied checks. For a Hamming code and a single error this is exactly
// syndrome decoding, since the erroneous bit's column equals the syndrome.
type Gallager struct {
	H        mat.SparseMat
	e_n      []int
	colCache [][]int
}

//NewGallager creates the flipping rule for the parity matrix H
func NewGallager(H mat.SparseMat) *Gallager {
	return &Gallager{H: H}
}

func (g *Gallager) Reset() {
	//the column cache only depends on H
}

func (g *Gallager) Flip(currentSyndromes mat.SparseVector, currentCodeword mat.SparseVector) (nextCodeword mat.SparseVector, done bool) {
	if g.H == nil {
		panic("Gallager H matrix must be set before calling Flip")
	}
	if currentSyndromes.IsZero() {
		return currentCodeword, true
	}

	if g.e_n == nil {
		g.init(currentCodeword.Len())
	}

	g.nextE_n(currentSyndromes)
	n := argMax(g.e_n)

	nextCodeword = mat.CSRVecCopy(currentCodeword)
	nextCodeword.Set(n, nextCodeword.At(n)+1)
	return nextCodeword, false
}

// nextE_n computes E_n = -sum((1-2*s_m), m ∈ M(n)), i.e. unsatisfied minus satisfied checks of bit n.
func (g *Gallager) nextE_n(syndromes mat.SparseVector) {
	unsatisfied := syndromes.NonzeroArray()
	for n := range g.e_n {
		checks := g.colCache[n]
		count := 0
		for i, j := 0, 0; i < len(checks) && j < len(unsatisfied); {
			switch {
			case checks[i] == unsatisfied[j]:
				count++
				i++
				j++
			case checks[i] < unsatisfied[j]:
				i++
			default:
				j++
			}
		}
		g.e_n[n] = 2*count - len(checks)
	}
}

func (g *Gallager) init(codewordLen int) {
	g.e_n = make([]int, codewordLen)
	g.colCache = make([][]int, codewordLen)
	for n := range g.colCache {
		g.colCache[n] = g.H.Column(n).NonzeroArray()
	}
}

func argMax(values []int) int {
	result := 0
	for i := 1; i < len(values); i++ {
		if values[result] < values[i] {
			result = i
		}
	}
	return result
}
