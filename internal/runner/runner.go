package runner

import (
	"strings"

	"github.com/cricklet/chesskit/internal/board"
	. "github.com/cricklet/chesskit/internal/helpers"
)

type GameStatus int

const (
	InProgress GameStatus = iota
	WhiteWon
	BlackWon
	Draw
)

func (s GameStatus) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case WhiteWon:
		return "white wins"
	case BlackWon:
		return "black wins"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// GameRunner owns everything the board engine deliberately does not: whose
// turn it is, the current selection, the pending promotion choice, and
// whether the game has ended. The board underneath stays turn-agnostic.
type GameRunner struct {
	Logger Logger
	Board  *board.Board

	player           Player
	selected         *board.Piece
	pendingPromotion Optional[FileRank]
	status           GameStatus
	statusReason     string
}

type GameRunnerOption func(*GameRunner)

func WithLogger(logger Logger) GameRunnerOption {
	return func(r *GameRunner) {
		r.Logger = logger
	}
}

func NewGameRunner(opts ...GameRunnerOption) *GameRunner {
	r := &GameRunner{
		Logger: &SilentLogger,
		Board:  board.NewBoard(),
		player: White,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *GameRunner) Reset() {
	r.Board.Reset()
	r.player = White
	r.selected = nil
	r.pendingPromotion = Empty[FileRank]()
	r.status = InProgress
	r.statusReason = ""
}

func (r *GameRunner) Player() Player {
	return r.player
}

func (r *GameRunner) Status() (GameStatus, string) {
	return r.status, r.statusReason
}

func (r *GameRunner) GameOver() bool {
	return r.status != InProgress
}

func (r *GameRunner) InCheck() bool {
	return r.Board.IsInCheck(r.player)
}

func (r *GameRunner) Selection() Optional[FileRank] {
	if r.selected == nil {
		return Empty[FileRank]()
	}
	return Some(r.selected.Square)
}

func (r *GameRunner) PendingPromotion() Optional[FileRank] {
	return r.pendingPromotion
}

// Select picks one of the current player's pieces and returns its legal
// moves. Selecting an empty or enemy square clears the selection.
func (r *GameRunner) Select(square FileRank) ([]FileRank, Error) {
	if r.GameOver() {
		return nil, Errorf("select %v: game is over", square)
	}
	if r.pendingPromotion.HasValue() {
		return nil, Errorf("select %v: waiting for a promotion choice", square)
	}

	piece := r.Board.PieceAt(square)
	if piece == nil || piece.Color != r.player {
		r.selected = nil
		return nil, NilError
	}

	moves, err := r.Board.LegalMoves(piece)
	if !IsNil(err) {
		return nil, Errorf("select %v: %w", square, err)
	}

	r.selected = piece
	return moves, NilError
}

func (r *GameRunner) MovesForSelection() ([]FileRank, Error) {
	if r.selected == nil {
		return nil, NilError
	}
	return r.Board.LegalMoves(r.selected)
}

// PerformMove moves the selected piece. If the move is a promotion and no
// kind has been chosen yet, the move is parked and an empty record returned;
// the caller finishes it with PerformPromotion.
func (r *GameRunner) PerformMove(to FileRank) (Optional[board.Move], Error) {
	if r.GameOver() {
		return Empty[board.Move](), Errorf("move to %v: game is over", to)
	}
	if r.pendingPromotion.HasValue() {
		return Empty[board.Move](), Errorf("move to %v: waiting for a promotion choice", to)
	}
	if r.selected == nil {
		return Empty[board.Move](), Errorf("move to %v: no piece selected", to)
	}

	if r.selected.IsPawn() && to.Rank == board.PromotionRank(r.player) {
		moves, err := r.Board.LegalMoves(r.selected)
		if !IsNil(err) {
			return Empty[board.Move](), err
		}
		if !Contains(moves, to) {
			return Empty[board.Move](), Errorf("move to %v: not a legal destination", to)
		}
		r.pendingPromotion = Some(to)
		return Empty[board.Move](), NilError
	}

	move, err := r.Board.ApplyMove(r.selected, to, Empty[PieceType]())
	if !IsNil(err) {
		return Empty[board.Move](), Errorf("move to %v: %w", to, err)
	}

	r.finishTurn(move)
	return Some(move), NilError
}

// PerformPromotion completes a parked promotion move with the chosen kind.
func (r *GameRunner) PerformPromotion(kind PieceType) (board.Move, Error) {
	if r.pendingPromotion.IsEmpty() {
		return board.Move{}, Errorf("promote to %v: no promotion pending", kind)
	}

	to := r.pendingPromotion.Value()
	move, err := r.Board.ApplyMove(r.selected, to, Some(kind))
	if !IsNil(err) {
		return board.Move{}, Errorf("promote to %v: %w", kind, err)
	}

	r.pendingPromotion = Empty[FileRank]()
	r.finishTurn(move)
	return move, NilError
}

// PerformMoveFromString plays a move given as coordinates, e.g. "e2e4" or
// "a7a8=Q". Promotion moves must carry their suffix here; the interactive
// pending-promotion flow is Select/PerformMove/PerformPromotion.
func (r *GameRunner) PerformMoveFromString(s string) (board.Move, Error) {
	if r.GameOver() {
		return board.Move{}, Errorf("move %v: game is over", s)
	}

	input := s
	promotion := Empty[PieceType]()
	if i := strings.IndexByte(input, '='); i != -1 {
		kind := PieceTypeFromLetter(input[i+1:])
		if !kind.IsValid() {
			return board.Move{}, Errorf("move %v: invalid promotion kind", s)
		}
		promotion = Some(kind)
		input = input[:i]
	}

	if len(input) != 4 {
		return board.Move{}, Errorf("move %v: expected from/to coordinates", s)
	}
	from, err := FileRankFromString(input[0:2])
	if !IsNil(err) {
		return board.Move{}, Errorf("move %v: %w", s, err)
	}
	to, err := FileRankFromString(input[2:4])
	if !IsNil(err) {
		return board.Move{}, Errorf("move %v: %w", s, err)
	}

	piece := r.Board.PieceAt(from)
	if piece == nil {
		return board.Move{}, Errorf("move %v: no piece on %v", s, from)
	}
	if piece.Color != r.player {
		return board.Move{}, Errorf("move %v: it is %v's turn", s, r.player)
	}

	move, applyErr := r.Board.ApplyMove(piece, to, promotion)
	if !IsNil(applyErr) {
		return board.Move{}, Errorf("move %v: %w", s, applyErr)
	}

	r.selected = nil
	r.pendingPromotion = Empty[FileRank]()
	r.finishTurn(move)
	return move, NilError
}

func (r *GameRunner) finishTurn(move board.Move) {
	r.Logger.Printf("%v: %v", r.player, move.Algebraic())

	opponent := r.player.Other()
	if r.Board.IsCheckmate(opponent) {
		if r.player == White {
			r.status = WhiteWon
		} else {
			r.status = BlackWon
		}
		r.statusReason = "checkmate"
	} else if r.Board.IsStalemate(opponent) {
		r.status = Draw
		r.statusReason = "stalemate"
	} else if r.Board.IsInCheck(opponent) {
		r.Logger.Printf("%v is in check", opponent)
	}

	r.player = opponent
	r.selected = nil
}

// Rewind undoes up to num plies, handing the turn back to the side whose
// move was unwound. A finished game reopens.
func (r *GameRunner) Rewind(num int) {
	for i := 0; i < num; i++ {
		undone := r.Board.UndoLastMove()
		if undone.IsEmpty() {
			break
		}
		r.player = undone.Value().Piece.Color
		r.status = InProgress
		r.statusReason = ""
	}
	r.selected = nil
	r.pendingPromotion = Empty[FileRank]()
}

// Forfeit ends the game in the opponent's favor.
func (r *GameRunner) Forfeit() {
	if r.GameOver() {
		return
	}
	if r.player == White {
		r.status = BlackWon
	} else {
		r.status = WhiteWon
	}
	r.statusReason = "forfeit"
}
