package harddecision

import (
	"context"
	"strconv"
	"testing"

	"github.com/nathanhack/radioae/linearblock/hamming"
	mat "github.com/nathanhack/sparsemat"
)

func TestGallager_BitFlippingHammingCodes(t *testing.T) {
	block, err := hamming.New(context.Background(), 3, 1)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	type testCase struct {
		message          mat.SparseVector
		flipCodewordBits []int
	}
	tests := make([]testCase, 0)
	for _, message := range []mat.SparseVector{mat.DOKVec(4, 1, 0, 1, 1), mat.DOKVec(4, 0, 0, 0, 0), mat.DOKVec(4, 1, 1, 1, 1)} {
		tests = append(tests, testCase{message, nil})
		for bit := 0; bit < 7; bit++ {
			tests = append(tests, testCase{message, []int{bit}})
		}
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			alg := NewGallager(block.H)

			codeword := block.Encode(test.message)
			expected := mat.CSRVecCopy(codeword)

			for _, index := range test.flipCodewordBits {
				codeword.Set(index, codeword.At(index)+1)
			}

			actual, done := BitFlipping(alg, block.H, codeword, 20)
			if !done {
				t.Fatalf("expected the syndrome to vanish")
			}
			if !actual.Equals(expected) {
				t.Fatalf("expected %v but found %v", expected, actual)
			}
			if !block.Decode(actual).Equals(test.message) {
				t.Fatalf("expected message %v but found %v", test.message, block.Decode(actual))
			}
		})
	}
}

func BenchmarkGallager_BitFlipping(b *testing.B) {
	h := mat.CSRMat(4, 6, 1, 1, 0, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 1, 0, 1)
	g := NewGallager(h)
	input := mat.CSRVec(6, 1, 0, 1, 0, 1, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BitFlipping(g, h, input, 1)
	}
}
