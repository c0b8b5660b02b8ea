package board

import (
	"testing"

	. "github.com/cricklet/chesskit/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func loc(t *testing.T, s string) FileRank {
	square, err := FileRankFromString(s)
	assert.True(t, IsNil(err), s)
	return square
}

// boardWith builds a position from scratch for tests; NewBoard covers the
// standard layout.
func boardWith(pieces ...*Piece) *Board {
	b := &Board{}
	for _, p := range pieces {
		b.addPiece(p)
	}
	return b
}

func TestPiecePredicates(t *testing.T) {
	pawn := &Piece{Kind: Pawn, Color: White, Square: FileRank{File: 4, Rank: 1}}
	assert.True(t, pawn.IsPawn())
	assert.False(t, pawn.IsKing())
	assert.False(t, pawn.IsRook())
	assert.Equal(t, "white pawn at e2", pawn.String())
}

func TestAlgebraicQuietMoves(t *testing.T) {
	b := NewBoard()

	move, err := b.ApplyMove(b.PieceAt(loc(t, "e2")), loc(t, "e4"), Empty[PieceType]())
	assert.True(t, IsNil(err))
	assert.Equal(t, "e2e4", move.Algebraic())

	move, err = b.ApplyMove(b.PieceAt(loc(t, "g8")), loc(t, "f6"), Empty[PieceType]())
	assert.True(t, IsNil(err))
	assert.Equal(t, "Ng8f6", move.Algebraic())
}

func TestAlgebraicCapture(t *testing.T) {
	b := NewBoard()

	for _, step := range [][2]string{{"e2", "e4"}, {"d7", "d5"}} {
		_, err := b.ApplyMove(b.PieceAt(loc(t, step[0])), loc(t, step[1]), Empty[PieceType]())
		assert.True(t, IsNil(err))
	}

	move, err := b.ApplyMove(b.PieceAt(loc(t, "e4")), loc(t, "d5"), Empty[PieceType]())
	assert.True(t, IsNil(err))
	assert.Equal(t, "e4xd5", move.Algebraic())
}

func TestAlgebraicCastling(t *testing.T) {
	kingside := Move{
		Piece:      &Piece{Kind: King, Color: White, Square: FileRank{File: 5, Rank: 0}},
		Kind:       King,
		From:       loc(t, "d1"),
		To:         loc(t, "f1"),
		IsCastling: true,
	}
	assert.Equal(t, "O-O", kingside.Algebraic())

	queenside := Move{
		Piece:      &Piece{Kind: King, Color: White, Square: FileRank{File: 1, Rank: 0}},
		Kind:       King,
		From:       loc(t, "d1"),
		To:         loc(t, "b1"),
		IsCastling: true,
	}
	assert.Equal(t, "O-O-O", queenside.Algebraic())
}

func TestAlgebraicPromotion(t *testing.T) {
	b := boardWith(
		&Piece{Kind: King, Color: White, Square: loc(t, "d1")},
		&Piece{Kind: King, Color: Black, Square: loc(t, "h5")},
		&Piece{Kind: Pawn, Color: White, Square: loc(t, "a7"), HasMoved: true},
	)

	move, err := b.ApplyMove(b.PieceAt(loc(t, "a7")), loc(t, "a8"), Some(Queen))
	assert.True(t, IsNil(err))
	assert.True(t, move.IsPromotion)
	assert.Contains(t, move.Algebraic(), "=Q")
	assert.Equal(t, "a7a8=Q", move.Algebraic())
}

func TestAlgebraicStableAfterPromotion(t *testing.T) {
	b := boardWith(
		&Piece{Kind: King, Color: White, Square: loc(t, "d1")},
		&Piece{Kind: King, Color: Black, Square: loc(t, "h5")},
		&Piece{Kind: Pawn, Color: White, Square: loc(t, "a6"), HasMoved: true},
	)

	pawn := b.PieceAt(loc(t, "a6"))
	push, err := b.ApplyMove(pawn, loc(t, "a7"), Empty[PieceType]())
	assert.True(t, IsNil(err))
	assert.Equal(t, "a6a7", push.Algebraic())

	_, err = b.ApplyMove(pawn, loc(t, "a8"), Some(Queen))
	assert.True(t, IsNil(err))
	assert.Equal(t, Queen, pawn.Kind)

	// promoting the pawn must not rewrite how its earlier moves render
	assert.Equal(t, "a6a7", b.History[0].Algebraic())
	assert.Equal(t, "1. a6a7 a7a8=Q", b.HistoryString())
}
