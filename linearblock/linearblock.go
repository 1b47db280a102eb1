package linearblock

import (
	"fmt"
	"strings"

	"github.com/nathanhack/radioae/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

// Systematic holds the generator in systematic form G=[I, A^T] together with the
// column permutation that takes the original H into the matching [A, I] form.
type Systematic struct {
	HColumnOrder []int
	G            mat.SparseMat
}

//LinearBlock is a binary (n,k) linear block code defined by its parity check matrix H.
type LinearBlock struct {
	H          mat.SparseMat //the original H(parity) matrix
	Processing *Systematic   // contains systematic generator matrix
}

//Encode takes in a k bit message and returns the n bit codeword
func (l *LinearBlock) Encode(message mat.SparseVector) (codeword mat.SparseVector) {
	rows, cols := l.Processing.G.Dims()
	if message.Len() != rows {
		panic(fmt.Sprintf("message length == %v is required but found %v", rows, message.Len()))
	}

	codeword = mat.DOKVec(cols)
	codeword.MulMat(message, l.Processing.G)
	return ToNonSystematic(codeword, l.Processing.HColumnOrder)
}

//Decode takes in a codeword and returns the message contained in it.
// No correction is attempted; a corrupted codeword yields a corrupted message.
func (l *LinearBlock) Decode(codeword mat.SparseVector) (message mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}
	return ToSystematic(codeword, l.Processing.HColumnOrder).Slice(0, l.MessageLength())
}

//EncodeBits encodes a bitstream whose length is a multiple of the message length,
// one message at a time, and returns the concatenated codewords.
func (l *LinearBlock) EncodeBits(bits []uint8) ([]uint8, error) {
	k, n := l.MessageLength(), l.CodewordLength()
	if len(bits)%k != 0 {
		return nil, fmt.Errorf("bitstream length %v is not a multiple of the message length %v", len(bits), k)
	}

	blocks := len(bits) / k
	result := make([]uint8, blocks*n)
	for b := 0; b < blocks; b++ {
		codeword := l.Encode(VectorFromBits(bits[b*k : (b+1)*k]))
		BitsFromVector(codeword, result[b*n:(b+1)*n])
	}
	return result, nil
}

//Syndrome returns H*c for the codeword c; it is zero iff c is a codeword.
func (l *LinearBlock) Syndrome(codeword mat.SparseVector) (syndrome mat.SparseVector) {
	syndrome = mat.CSRVec(l.ParitySymbols())
	syndrome.MatMul(l.H, codeword)
	return
}

func (l *LinearBlock) MessageLength() int {
	k, _ := l.Processing.G.Dims()
	return k
}

func (l *LinearBlock) ParitySymbols() int {
	m, _ := l.H.Dims()
	return m
}

func (l *LinearBlock) CodewordLength() int {
	_, n := l.H.Dims()
	return n
}

//CodeRate is k/n
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

//Validate will test if this linearblock satisfies G*H.T=0, where G is the generator matrix and H.T is the transpose of H
func (l *LinearBlock) Validate() bool {
	return internal.ValidateHGMatrices(l.Processing.G, internal.ColumnSwapped(l.H, l.Processing.HColumnOrder))
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString(fmt.Sprintf("{(%v,%v)\nH:\n", l.CodewordLength(), l.MessageLength()))
	buf.WriteString(l.H.String())
	buf.WriteString(fmt.Sprintf("Order: %v", l.Processing.HColumnOrder))
	buf.WriteString("\nG:\n")
	buf.WriteString(l.Processing.G.String())
	buf.WriteString("\n}\n")
	return buf.String()
}

//ToSystematic permutes a codeword from the original H column order into systematic order,
// where the message occupies the leading positions.
func ToSystematic(codeword mat.SparseVector, ordering []int) mat.SparseVector {
	if codeword.Len() != len(ordering) {
		panic("vector length must equal ordering length")
	}
	result := mat.DOKVec(codeword.Len())
	for c, c1 := range ordering {
		result.Set(c, codeword.At(c1))
	}
	return result
}

//ToNonSystematic is the inverse of ToSystematic.
func ToNonSystematic(codeword mat.SparseVector, ordering []int) mat.SparseVector {
	if codeword.Len() != len(ordering) {
		panic("vector length must equal ordering length")
	}
	result := mat.DOKVec(codeword.Len())
	for c, c1 := range ordering {
		result.Set(c1, codeword.At(c))
	}
	return result
}

//VectorFromBits creates a GF(2) vector from a [0,1] bit slice
func VectorFromBits(bits []uint8) mat.SparseVector {
	v := mat.CSRVec(len(bits))
	for i, b := range bits {
		if b&1 == 1 {
			v.Set(i, 1)
		}
	}
	return v
}

//BitsFromVector writes the GF(2) vector v into dst which must be at least v.Len() long
func BitsFromVector(v mat.SparseVector, dst []uint8) {
	for i := 0; i < v.Len(); i++ {
		dst[i] = uint8(v.At(i))
	}
}
