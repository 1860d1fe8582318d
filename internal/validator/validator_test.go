package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokulab/internal/domain"
)

func TestValidateEmptyAndLegal(t *testing.T) {
	v := New()

	ok, conflicts, err := v.Validate(context.Background(), &domain.Board{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)

	b, err := domain.ParseBoard(
		"53..7...." + "6..195..." + ".98....6." +
			"8...6...3" + "4..8.3..1" + "7...2...6" +
			".6....28." + "...419..5" + "....8..79")
	require.NoError(t, err)
	ok, conflicts, err = v.Validate(context.Background(), b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateReportsConflicts(t *testing.T) {
	cases := []struct {
		name string
		mut  func(b *domain.Board)
		want domain.CellCoord
	}{
		{"row", func(b *domain.Board) { b.Values[2][1] = 7; b.Values[2][6] = 7 }, domain.CellCoord{Row: 2, Col: 6}},
		{"column", func(b *domain.Board) { b.Values[1][4] = 3; b.Values[7][4] = 3 }, domain.CellCoord{Row: 7, Col: 4}},
		{"box", func(b *domain.Board) { b.Values[3][3] = 5; b.Values[5][5] = 5 }, domain.CellCoord{Row: 5, Col: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &domain.Board{}
			tc.mut(b)
			ok, conflicts, err := New().Validate(context.Background(), b)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Contains(t, conflicts, tc.want)
		})
	}
}

// A cell clashing in several units is reported once.
func TestValidateDeduplicatesConflicts(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][0] = 4
	b.Values[0][1] = 4 // row and box conflict for the same cell

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, conflicts, 1)
	assert.Equal(t, domain.CellCoord{Row: 0, Col: 1}, conflicts[0])
}
