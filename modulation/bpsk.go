// Package modulation maps bits onto channel symbols and back.
package modulation

// BPSK is binary phase-shift keying on the real axis using the
// constellation {0: -1+0i, 1: +1+0i}.
type BPSK struct{}

//Modulate converts a [0,1] bit slice into [-1,1] complex symbols
func (BPSK) Modulate(bits []uint8) []complex128 {
	symbols := make([]complex128, len(bits))
	for i, b := range bits {
		if b > 0 {
			symbols[i] = 1
		} else {
			symbols[i] = -1
		}
	}
	return symbols
}

//Demodulate makes a hard decision on every symbol.
// Symbols with a real part >= 0 are considered a 1, otherwise a 0.
func (BPSK) Demodulate(symbols []complex128) []uint8 {
	bits := make([]uint8, len(symbols))
	for i, s := range symbols {
		if real(s) >= 0 {
			bits[i] = 1
		}
	}
	return bits
}
