package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	b := &Board{}
	b.Set(4, 7, 9)
	assert.Equal(t, uint8(9), b.Get(4, 7))
	b.Set(4, 7, 0)
	assert.Zero(t, b.Get(4, 7))
}

func TestSetContractViolationsPanic(t *testing.T) {
	b := &Board{}
	assert.Panics(t, func() { b.Set(9, 0, 1) })
	assert.Panics(t, func() { b.Set(0, -1, 1) })
	assert.Panics(t, func() { b.Set(0, 0, 10) })
	assert.Panics(t, func() { b.Get(-1, 0) })
}

func TestIsFull(t *testing.T) {
	b := &Board{}
	assert.False(t, b.IsFull())
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.Values[r][c] = 1 // not legal, but IsFull only checks zeros
		}
	}
	assert.True(t, b.IsFull())
	b.Values[8][8] = 0
	assert.False(t, b.IsFull())
}

func TestCloneIsIndependent(t *testing.T) {
	b := &Board{}
	b.Set(0, 0, 5)
	b.Fixed[0][0] = true

	cp := b.Clone()
	require.True(t, b.Equal(cp))
	cp.Set(0, 0, 6)
	assert.Equal(t, uint8(5), b.Get(0, 0))
	assert.False(t, b.Equal(cp))
}

func TestCountClues(t *testing.T) {
	b := &Board{}
	assert.Zero(t, b.CountClues())
	b.Set(0, 0, 1)
	b.Set(8, 8, 9)
	assert.Equal(t, 2, b.CountClues())
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		got, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDifficulty("impossible")
	assert.Error(t, err)
}
