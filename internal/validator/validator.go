package validator

import (
	"context"

	"svw.info/sudokulab/internal/domain"
)

// FastValidator reports duplicate digits per row, column and box using
// one bitmask per unit. Empty cells impose no constraint.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conflicts := make([]domain.CellCoord, 0, 8)
	for u := 0; u < domain.Size; u++ {
		conflicts = scanUnit(b, rowCell(u), conflicts)
		conflicts = scanUnit(b, colCell(u), conflicts)
		conflicts = scanUnit(b, boxCell(u), conflicts)
	}
	return len(conflicts) == 0, dedupe(conflicts), nil
}

// scanUnit walks the nine cells yielded by at, flagging any cell whose
// digit was already seen in the unit.
func scanUnit(b *domain.Board, at func(i int) (int, int), conflicts []domain.CellCoord) []domain.CellCoord {
	seen := uint16(0)
	for i := 0; i < domain.Size; i++ {
		r, c := at(i)
		val := b.Values[r][c]
		if val == 0 {
			continue
		}
		bit := uint16(1) << val
		if seen&bit != 0 {
			conflicts = append(conflicts, domain.CellCoord{Row: r, Col: c})
		}
		seen |= bit
	}
	return conflicts
}

func rowCell(r int) func(int) (int, int) {
	return func(i int) (int, int) { return r, i }
}

func colCell(c int) func(int) (int, int) {
	return func(i int) (int, int) { return i, c }
}

func boxCell(bx int) func(int) (int, int) {
	br, bc := bx/domain.BoxSize*domain.BoxSize, bx%domain.BoxSize*domain.BoxSize
	return func(i int) (int, int) { return br + i/domain.BoxSize, bc + i%domain.BoxSize }
}

// dedupe drops repeat coordinates: a cell clashing in both its row and
// its box should be reported once.
func dedupe(in []domain.CellCoord) []domain.CellCoord {
	if len(in) < 2 {
		return in
	}
	seen := make(map[domain.CellCoord]struct{}, len(in))
	out := in[:0]
	for _, cc := range in {
		if _, dup := seen[cc]; dup {
			continue
		}
		seen[cc] = struct{}{}
		out = append(out, cc)
	}
	return out
}
