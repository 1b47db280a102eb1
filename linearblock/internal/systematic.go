package internal

import (
	"context"

	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//ExtractAFromH reduces H to [I, A], reorders it to [A, I] and returns A together with
// the column ordering that maps the original H onto [A, I].
func ExtractAFromH(ctx context.Context, H mat.SparseMat, threads int) (A mat.SparseMat, columnOrdering []int) {
	m, N := H.Dims()

	reduced, ordering := GaussianJordanEliminationGF2(ctx, H, threads)
	if reduced == nil {
		return nil, nil
	}

	if !reduced.Slice(0, 0, m, m).Equals(mat.CSRIdentity(m)) {
		logrus.Errorf("failed to transform H matrix into [I,*]")
		return nil, nil
	}

	// [I, A] -> [A, I]
	columnOrdering = make([]int, N)
	copy(columnOrdering[0:N-m], ordering[m:N])
	copy(columnOrdering[N-m:N], ordering[0:m])

	A = reduced.Slice(0, m, m, N-m)
	return
}

//NewFromH derives the systematic generator G=[I, A^T] for the parity matrix H.
// Note: the returned ordering describes how H's columns were swapped to match G.
func NewFromH(ctx context.Context, H mat.SparseMat, threads int) (HColumnOrder []int, G mat.SparseMat) {
	hrows, hcols := H.Dims()
	if hrows >= hcols {
		panic("H matrix shape == (rows, cols) where rows < cols required")
	}

	logrus.Debugf("Creating generator matrix from H matrix")
	A, columnSwaps := ExtractAFromH(ctx, H, threads)
	if A == nil {
		logrus.Debugf("Unable to create generator matrix from H")
		return nil, nil
	}

	AT := A.T()
	k, m := AT.Dims()

	G = mat.DOKMat(k, k+m)
	G.SetMatrix(mat.CSRIdentity(k), 0, 0)
	G.SetMatrix(AT, 0, k)

	logrus.Debugf("Generator Matrix complete")
	return columnSwaps, G
}

//ColumnSwapped returns a copy of H with its columns rearranged by order
func ColumnSwapped(H mat.SparseMat, order []int) mat.SparseMat {
	rows, cols := H.Dims()
	result := mat.CSRMat(rows, cols)
	for c, c1 := range order {
		result.SetColumn(c, H.Column(c1))
	}
	return result
}

//ValidateHGMatrices tests if G*H.T == 0 where H.T is the transpose of H
func ValidateHGMatrices(G, H mat.SparseMat) bool {
	rows, _ := G.Dims()
	checks, _ := H.Dims()

	hRows := make([]mat.SparseVector, checks)
	for i := range hRows {
		hRows[i] = H.Row(i)
	}
	for i := 0; i < rows; i++ {
		g := G.Row(i)
		for _, h := range hRows {
			if g.Dot(h) > 0 {
				return false
			}
		}
	}
	return true
}
