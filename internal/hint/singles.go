package hint

import (
	"context"
	"fmt"
	"math/bits"

	"svw.info/sudokulab/internal/domain"
)

// Singles suggests naked singles: empty cells whose row, column and box
// leave exactly one legal digit.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

const digitMask uint16 = 0x3FE

// Hint returns the first naked single in row-major order, if the tier
// cap allows singles at all.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			cand := candidates(b, r, c)
			if bits.OnesCount16(cand) != 1 {
				continue
			}
			d := uint8(bits.TrailingZeros16(cand))
			return domain.Hint{
				Message:  fmt.Sprintf("Single: only %d fits here", d),
				Cells:    []domain.CellCoord{{Row: r, Col: c}},
				Digit:    d,
				Strategy: domain.StrategySingles,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

// candidates returns the bitset of digits legal for (r, c).
func candidates(b *domain.Board, r, c int) uint16 {
	used := uint16(0)
	for i := 0; i < domain.Size; i++ {
		used |= 1 << b.Values[r][i]
		used |= 1 << b.Values[i][c]
	}
	br, bc := r/domain.BoxSize*domain.BoxSize, c/domain.BoxSize*domain.BoxSize
	for dr := 0; dr < domain.BoxSize; dr++ {
		for dc := 0; dc < domain.BoxSize; dc++ {
			used |= 1 << b.Values[br+dr][bc+dc]
		}
	}
	return digitMask &^ used
}
