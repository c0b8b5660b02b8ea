package runner

import (
	"testing"

	"github.com/cricklet/chesskit/internal/board"
	. "github.com/cricklet/chesskit/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func loc(t *testing.T, s string) FileRank {
	square, err := FileRankFromString(s)
	assert.True(t, IsNil(err), s)
	return square
}

func play(t *testing.T, r *GameRunner, moves ...string) {
	for _, move := range moves {
		_, err := r.PerformMoveFromString(move)
		assert.True(t, IsNil(err), move)
	}
}

func TestTurnAlternation(t *testing.T) {
	r := NewGameRunner()
	assert.Equal(t, White, r.Player())

	play(t, r, "e2e4")
	assert.Equal(t, Black, r.Player())

	// white cannot move twice
	_, err := r.PerformMoveFromString("d2d4")
	assert.False(t, IsNil(err))
	assert.Equal(t, Black, r.Player())

	play(t, r, "d7d5")
	assert.Equal(t, White, r.Player())
}

func TestSelectionFlow(t *testing.T) {
	r := NewGameRunner()

	moves, err := r.Select(loc(t, "e2"))
	assert.True(t, IsNil(err))
	assert.Equal(t, 2, len(moves))
	assert.Equal(t, Some(loc(t, "e2")), r.Selection())

	// selecting an enemy square clears the selection
	_, err = r.Select(loc(t, "e7"))
	assert.True(t, IsNil(err))
	assert.True(t, r.Selection().IsEmpty())

	_, err = r.PerformMove(loc(t, "e4"))
	assert.False(t, IsNil(err))

	_, err = r.Select(loc(t, "e2"))
	assert.True(t, IsNil(err))
	move, err := r.PerformMove(loc(t, "e4"))
	assert.True(t, IsNil(err))
	assert.True(t, move.HasValue())
	assert.Equal(t, "e2e4", move.Value().Algebraic())
	assert.Equal(t, Black, r.Player())
	assert.True(t, r.Selection().IsEmpty())
}

func TestCheckmateEndsGame(t *testing.T) {
	logged := []string{}
	r := NewGameRunner(WithLogger(FuncLogger(func(message string) {
		logged = append(logged, message)
	})))

	play(t, r, "c2c3", "d7d5", "b2b4", "e8a4")

	status, reason := r.Status()
	assert.Equal(t, BlackWon, status)
	assert.Equal(t, "checkmate", reason)
	assert.True(t, r.GameOver())
	assert.NotEmpty(t, logged)

	_, err := r.PerformMoveFromString("d2d3")
	assert.False(t, IsNil(err))
}

func TestPendingPromotionFlow(t *testing.T) {
	r := NewGameRunner()
	play(t, r, "h2h4", "g7g5", "h4g5", "g8f6", "g5g6", "h7h6", "g6g7", "h6h5")

	_, err := r.Select(loc(t, "g7"))
	assert.True(t, IsNil(err))

	parked, err := r.PerformMove(loc(t, "g8"))
	assert.True(t, IsNil(err))
	assert.True(t, parked.IsEmpty())
	assert.Equal(t, Some(loc(t, "g8")), r.PendingPromotion())
	// still white's turn while the choice is pending
	assert.Equal(t, White, r.Player())

	_, err = r.Select(loc(t, "d2"))
	assert.False(t, IsNil(err))

	move, err := r.PerformPromotion(Queen)
	assert.True(t, IsNil(err))
	assert.Equal(t, "g7g8=Q", move.Algebraic())
	assert.True(t, r.PendingPromotion().IsEmpty())
	assert.Equal(t, Black, r.Player())
	assert.Equal(t, Queen, r.Board.PieceAt(loc(t, "g8")).Kind)
}

func TestPromotionFromStringNeedsSuffix(t *testing.T) {
	r := NewGameRunner()
	play(t, r, "h2h4", "g7g5", "h4g5", "g8f6", "g5g6", "h7h6", "g6g7", "h6h5")

	_, err := r.PerformMoveFromString("g7g8")
	assert.False(t, IsNil(err))

	move, err := r.PerformMoveFromString("g7g8=N")
	assert.True(t, IsNil(err))
	assert.Equal(t, "g7g8=N", move.Algebraic())
}

func TestRewind(t *testing.T) {
	r := NewGameRunner()
	play(t, r, "e2e4", "d7d5")

	r.Rewind(1)
	assert.Equal(t, Black, r.Player())
	assert.NotNil(t, r.Board.PieceAt(loc(t, "d7")))

	r.Rewind(10)
	assert.Equal(t, White, r.Player())
	assert.Empty(t, r.Board.History)
}

func TestRewindReopensFinishedGame(t *testing.T) {
	r := NewGameRunner()
	play(t, r, "c2c3", "d7d5", "b2b4", "e8a4")
	assert.True(t, r.GameOver())

	r.Rewind(1)
	assert.False(t, r.GameOver())
	assert.Equal(t, Black, r.Player())
}

func TestForfeit(t *testing.T) {
	r := NewGameRunner()
	play(t, r, "e2e4")

	r.Forfeit()
	status, reason := r.Status()
	assert.Equal(t, WhiteWon, status)
	assert.Equal(t, "forfeit", reason)
}

func TestReset(t *testing.T) {
	r := NewGameRunner()
	play(t, r, "e2e4", "d7d5", "e4d5")
	r.Forfeit()

	r.Reset()
	assert.Equal(t, White, r.Player())
	assert.False(t, r.GameOver())
	assert.Equal(t, 32, len(r.Board.Pieces))
	assert.Empty(t, r.Board.History)
	assert.Equal(t, board.NewBoard().String(), r.Board.String())
}
