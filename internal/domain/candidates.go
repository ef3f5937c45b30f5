package domain

import "math/bits"

// Candidates is a bitmask over the values 1..9 an unassigned cell may still
// hold. Bit v is set when v is a candidate.
type Candidates uint16

// AllCandidates has every value 1..9 set.
const AllCandidates Candidates = 0b1111111110

// Has reports whether v is a candidate.
func (c Candidates) Has(v uint8) bool { return c&(1<<v) != 0 }

// Without returns c with v removed.
func (c Candidates) Without(v uint8) Candidates { return c &^ (1 << v) }

// Count returns the number of remaining candidates.
func (c Candidates) Count() int { return bits.OnesCount16(uint16(c)) }

// Sole returns the single remaining candidate, if exactly one is left.
func (c Candidates) Sole() (uint8, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(c))), true
}

// Values returns the candidates in ascending order.
func (c Candidates) Values() []uint8 {
	out := make([]uint8, 0, c.Count())
	for v := uint8(1); v <= 9; v++ {
		if c.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
