package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokulab/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	// r0c0 sees 1,2,3,4 in its row, 5,6 and 7,8 in its box: only 9 fits.
	b := &domain.Board{}
	b.Values[0] = [9]uint8{0, 1, 2, 3, 4, 0, 0, 0, 0}
	b.Values[1][1] = 5
	b.Values[1][2] = 6
	b.Values[2][1] = 7
	b.Values[2][2] = 8

	h, found, err := NewSingles().Hint(context.Background(), b, domain.StrategySingles)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint8(9), h.Digit)
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 0}}, h.Cells)
	assert.Equal(t, domain.StrategySingles, h.Strategy)
}

func TestHintNoSingleOnEmptyBoard(t *testing.T) {
	_, found, err := NewSingles().Hint(context.Background(), &domain.Board{}, domain.StrategySingles)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHintRespectsTierCap(t *testing.T) {
	b := &domain.Board{}
	b.Values[0] = [9]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}

	_, found, err := NewSingles().Hint(context.Background(), b, domain.StrategyTier(-1))
	require.NoError(t, err)
	assert.False(t, found)
}
