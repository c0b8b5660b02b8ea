package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileRankStrings(t *testing.T) {
	a1, err := FileRankFromString("a1")
	assert.True(t, IsNil(err))
	assert.Equal(t, FileRank{File: 0, Rank: 0}, a1)

	h8, err := FileRankFromString("h8")
	assert.True(t, IsNil(err))
	assert.Equal(t, FileRank{File: 7, Rank: 7}, h8)
	assert.Equal(t, "h8", h8.String())

	_, err = FileRankFromString("i9")
	assert.False(t, IsNil(err))
	_, err = FileRankFromString("e")
	assert.False(t, IsNil(err))
}

func TestIndexRoundTrip(t *testing.T) {
	for index := 0; index < 64; index++ {
		assert.Equal(t, index, IndexFromFileRank(FileRankFromIndex(index)))
	}
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, Black, White.Other())
	assert.Equal(t, White, Black.Other())
	assert.Equal(t, "white", White.String())
}

func TestPieceTypeLetters(t *testing.T) {
	assert.Equal(t, "", Pawn.Letter())
	assert.Equal(t, "N", Knight.Letter())
	assert.Equal(t, "Q", Queen.Letter())
	assert.Equal(t, Knight, PieceTypeFromLetter("N"))
	assert.Equal(t, Pawn, PieceTypeFromLetter(""))
	assert.Equal(t, InvalidPiece, PieceTypeFromLetter("x"))
}
