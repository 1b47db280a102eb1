// Package harddecision corrects hard decided (0/1) codewords of a linear block
// code by iteratively flipping bits until the syndrome vanishes.
package harddecision

import (
	mat "github.com/nathanhack/sparsemat"
)

type BitFlippingAlg interface {
	// Flip picks the next bit to flip given the current syndrome; done reports a zero syndrome.
	Flip(currentSyndromes mat.SparseVector, currentCodeword mat.SparseVector) (nextCodeword mat.SparseVector, done bool)
	Reset() //resets internal state for next codeword
}

//BitFlipping runs alg on a copy of codeword for at most maxIter iterations and returns the result.
// The result is only a codeword of H when the algorithm reported done.
func BitFlipping(alg BitFlippingAlg, H mat.SparseMat, codeword mat.SparseVector, maxIter int) (result mat.SparseVector, done bool) {
	rows, _ := H.Dims()
	result = mat.CSRVecCopy(codeword)
	syndrome := mat.CSRVec(rows)
	for i := 0; i < maxIter && !done; i++ {
		syndrome.MatMul(H, result)
		result, done = alg.Flip(syndrome, result)
	}
	return result, done
}
