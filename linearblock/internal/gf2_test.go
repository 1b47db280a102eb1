package internal

import (
	"context"
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestGaussianJordanEliminationGF2(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected mat.SparseMat
	}{
		{ //Hamming 7 already in [I,*]
			mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
			mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
		},
		{ //Random - one linearly dependent row
			mat.CSRMat(4, 5, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 1),
			nil,
		},
		{ //more rows than columns
			mat.CSRMat(3, 2, 1, 0, 0, 1, 1, 1),
			nil,
		},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			gen, _ := GaussianJordanEliminationGF2(context.Background(), test.input, 1)

			if test.expected != nil {
				if !test.expected.Equals(gen) {
					t.Fatalf("expected \n%v\n but found \n%v\n", test.expected, gen)
				}
			} else if gen != nil {
				t.Fatalf("expected nil but found \n%v\n", gen)
			}
		})
	}
}

func TestGaussianJordanEliminationGF2Threads(t *testing.T) {
	// a dense-ish H so every pivot has several rows to clear
	H := mat.CSRMat(4, 8,
		1, 1, 0, 1, 1, 0, 0, 1,
		1, 0, 1, 1, 0, 1, 1, 0,
		0, 1, 1, 1, 1, 1, 0, 0,
		1, 1, 1, 0, 0, 1, 0, 1,
	)
	expected, _ := GaussianJordanEliminationGF2(context.Background(), H, 1)
	if expected == nil {
		t.Fatalf("expected a full rank result")
	}
	for _, threads := range []int{2, 4, 8} {
		t.Run(strconv.Itoa(threads), func(t *testing.T) {
			gen, _ := GaussianJordanEliminationGF2(context.Background(), H, threads)
			if !expected.Equals(gen) {
				t.Fatalf("expected \n%v\n but found \n%v\n", expected, gen)
			}
		})
	}
}

func TestNewFromH(t *testing.T) {
	// columns are the binary numbers 1..7, the classic (7,4) Hamming parity matrix
	H := mat.CSRMat(3, 7,
		1, 0, 1, 0, 1, 0, 1,
		0, 1, 1, 0, 0, 1, 1,
		0, 0, 0, 1, 1, 1, 1,
	)
	order, G := NewFromH(context.Background(), H, 1)
	if G == nil {
		t.Fatalf("expected a generator matrix")
	}
	if rows, cols := G.Dims(); rows != 4 || cols != 7 {
		t.Fatalf("expected 4x7 generator but found %vx%v", rows, cols)
	}
	if !ValidateHGMatrices(G, ColumnSwapped(H, order)) {
		t.Fatalf("expected G*H^T == 0")
	}
}

func TestNewFromHCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	H := mat.CSRMat(3, 7, 1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1)
	if _, G := NewFromH(ctx, H, 1); G != nil {
		t.Fatalf("expected nil generator after cancellation")
	}
}
