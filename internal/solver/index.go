package solver

import (
	"fmt"
	"math/bits"

	"svw.info/sudokulab/internal/domain"
)

// digitMask has bits 1..9 set, one per digit.
const digitMask uint16 = 0x3FE

// index tracks which digits are already used in each row, column and box
// as bitsets, giving O(1) candidate checks during search. It is rebuilt
// from the board at the start of every top-level operation and always
// mirrors the board's non-zero cells exactly.
type index struct {
	rows  [domain.Size]uint16
	cols  [domain.Size]uint16
	boxes [domain.Size]uint16
}

// boxOf maps a cell to its 3x3 box: r/3*3 + c/3.
func boxOf(r, c int) int {
	return r/domain.BoxSize*domain.BoxSize + c/domain.BoxSize
}

// canPlace reports whether v is absent from the cell's row, column and box.
func (ix *index) canPlace(r, c int, v uint8) bool {
	bit := uint16(1) << v
	return ix.rows[r]&bit == 0 && ix.cols[c]&bit == 0 && ix.boxes[boxOf(r, c)]&bit == 0
}

// place records v in the three unit sets. Caller must have checked canPlace.
func (ix *index) place(r, c int, v uint8) {
	bit := uint16(1) << v
	ix.rows[r] |= bit
	ix.cols[c] |= bit
	ix.boxes[boxOf(r, c)] |= bit
}

// remove is the exact inverse of place. Removing a digit that was never
// recorded is an undo mismatch and panics rather than corrupt the index.
func (ix *index) remove(r, c int, v uint8) {
	bit := uint16(1) << v
	b := boxOf(r, c)
	if ix.rows[r]&bit == 0 || ix.cols[c]&bit == 0 || ix.boxes[b]&bit == 0 {
		panic(fmt.Sprintf("solver: undo mismatch for digit %d at r%d c%d", v, r, c))
	}
	ix.rows[r] &^= bit
	ix.cols[c] &^= bit
	ix.boxes[b] &^= bit
}

// candidates returns the bitset of digits still legal for (r, c).
func (ix *index) candidates(r, c int) uint16 {
	return digitMask &^ (ix.rows[r] | ix.cols[c] | ix.boxes[boxOf(r, c)])
}

// candidateCount returns the number of legal digits for (r, c).
func (ix *index) candidateCount(r, c int) int {
	return bits.OnesCount16(ix.candidates(r, c))
}

// newIndex builds the index from a board in one 81-cell scan. A value
// above 9 or a duplicate within any unit yields ErrInvalidInput.
func newIndex(b *domain.Board) (index, error) {
	var ix index
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v := b.Values[r][c]
			if v == 0 {
				continue
			}
			if v > domain.Size {
				return index{}, fmt.Errorf("%w: value %d at r%d c%d out of range", ErrInvalidInput, v, r, c)
			}
			if !ix.canPlace(r, c, v) {
				return index{}, fmt.Errorf("%w: duplicate %d at r%d c%d", ErrInvalidInput, v, r, c)
			}
			ix.place(r, c, v)
		}
	}
	return ix, nil
}
