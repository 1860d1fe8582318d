package domain

import (
	"fmt"
	"strings"
)

// ParseBoard reads a board from an 81-rune row-major digit string,
// the common interchange form for Sudoku grids. '0' and '.' both mean
// empty; whitespace is ignored.
func ParseBoard(s string) (*Board, error) {
	b := &Board{}
	i := 0
	for _, r := range s {
		switch {
		case r == ' ' || r == '\n' || r == '\t' || r == '\r' || r == '|' || r == '-' || r == '+':
			continue
		case r == '.' || r == '0':
			// empty cell
		case r >= '1' && r <= '9':
			if i < Cells {
				b.Values[i/Size][i%Size] = uint8(r - '0')
				b.Fixed[i/Size][i%Size] = true
			}
		default:
			return nil, fmt.Errorf("invalid board character %q", r)
		}
		i++
	}
	if i != Cells {
		return nil, fmt.Errorf("board has %d cells, want %d", i, Cells)
	}
	return b, nil
}

// Line emits the 81-rune row-major form, '.' for empty cells.
func (b *Board) Line() string {
	var sb strings.Builder
	sb.Grow(Cells)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}

// String renders the grid with box separators for logs and test output.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 && r%BoxSize == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < Size; c++ {
			if c > 0 && c%BoxSize == 0 {
				sb.WriteString("| ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			if c < Size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
