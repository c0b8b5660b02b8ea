package board

import (
	. "github.com/cricklet/chesskit/internal/helpers"
)

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirections = [4][2]int{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var rookDirections = [4][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
}

var queenDirections = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// PawnDirection is the rank delta a pawn advances by: +1 for white, -1 for
// black.
func PawnDirection(player Player) int {
	if player == White {
		return 1
	}
	return -1
}

func PawnHomeRank(player Player) Rank {
	if player == White {
		return 1
	}
	return 6
}

func PromotionRank(player Player) Rank {
	if player == White {
		return 7
	}
	return 0
}

// PseudoLegalMoves enumerates the squares piece can reach by its movement
// rule, ignoring whether the mover's king is left in check.
func (b *Board) PseudoLegalMoves(piece *Piece) []FileRank {
	switch piece.Kind {
	case Pawn:
		return b.pawnMoves(piece)
	case Knight:
		return b.offsetMoves(piece, knightOffsets)
	case Bishop:
		return b.slidingMoves(piece, bishopDirections[:])
	case Rook:
		return b.slidingMoves(piece, rookDirections[:])
	case Queen:
		return b.slidingMoves(piece, queenDirections[:])
	case King:
		return b.kingMoves(piece)
	}
	return nil
}

func (b *Board) pawnMoves(piece *Piece) []FileRank {
	moves := []FileRank{}
	file, rank := int(piece.Square.File), int(piece.Square.Rank)
	direction := PawnDirection(piece.Color)

	if FileRankInBounds(file, rank+direction) {
		forward := FileRank{File: File(file), Rank: Rank(rank + direction)}
		if b.PieceAt(forward) == nil {
			moves = append(moves, forward)

			if piece.Square.Rank == PawnHomeRank(piece.Color) {
				double := FileRank{File: File(file), Rank: Rank(rank + 2*direction)}
				if b.PieceAt(double) == nil {
					moves = append(moves, double)
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		if !FileRankInBounds(file+df, rank+direction) {
			continue
		}
		diagonal := FileRank{File: File(file + df), Rank: Rank(rank + direction)}
		target := b.PieceAt(diagonal)
		if target != nil && target.Color == piece.Color.Other() {
			moves = append(moves, diagonal)
		} else if target == nil && b.EnPassantTarget.HasValue() && diagonal == b.EnPassantTarget.Value() {
			moves = append(moves, diagonal)
		}
	}

	return moves
}

func (b *Board) offsetMoves(piece *Piece, offsets [8][2]int) []FileRank {
	moves := []FileRank{}
	file, rank := int(piece.Square.File), int(piece.Square.Rank)

	for _, offset := range offsets {
		if !FileRankInBounds(file+offset[0], rank+offset[1]) {
			continue
		}
		to := FileRank{File: File(file + offset[0]), Rank: Rank(rank + offset[1])}
		if target := b.PieceAt(to); target == nil || target.Color != piece.Color {
			moves = append(moves, to)
		}
	}

	return moves
}

func (b *Board) slidingMoves(piece *Piece, directions [][2]int) []FileRank {
	moves := []FileRank{}
	file, rank := int(piece.Square.File), int(piece.Square.Rank)

	for _, direction := range directions {
		for distance := 1; ; distance++ {
			f, r := file+direction[0]*distance, rank+direction[1]*distance
			if !FileRankInBounds(f, r) {
				break
			}
			to := FileRank{File: File(f), Rank: Rank(r)}
			target := b.PieceAt(to)
			if target != nil {
				// a ray halts on any piece; an enemy square still counts
				if target.Color != piece.Color {
					moves = append(moves, to)
				}
				break
			}
			moves = append(moves, to)
		}
	}

	return moves
}

func (b *Board) kingMoves(piece *Piece) []FileRank {
	moves := b.offsetMoves(piece, kingOffsets)

	if !piece.HasMoved && !b.IsInCheck(piece.Color) {
		for _, side := range AllCastlingSides {
			if to, ok := b.castlingDestination(piece, side); ok {
				moves = append(moves, to)
			}
		}
	}

	return moves
}

// castlingDestination checks castling eligibility for one side: an unmoved
// rook in the corner, empty squares strictly between king and rook, and an
// unattacked transit square. The king's own square is covered by the
// not-in-check precondition and the destination by the legality filter.
func (b *Board) castlingDestination(king *Piece, side CastlingSide) (FileRank, bool) {
	rank := king.Square.Rank
	corner := File(7)
	if side == Queenside {
		corner = File(0)
	}

	rook := b.PieceAt(FileRank{File: corner, Rank: rank})
	if rook == nil || !rook.IsRook() || rook.Color != king.Color || rook.HasMoved {
		return FileRank{}, false
	}

	step := Sign(int(corner) - int(king.Square.File))
	for f := int(king.Square.File) + step; f != int(corner); f += step {
		if b.PieceAt(FileRank{File: File(f), Rank: rank}) != nil {
			return FileRank{}, false
		}
	}

	transit := FileRank{File: File(int(king.Square.File) + step), Rank: rank}
	if b.IsSquareAttacked(transit, king.Color.Other()) {
		return FileRank{}, false
	}

	return FileRank{File: File(int(king.Square.File) + 2*step), Rank: rank}, true
}

// IsSquareAttacked reports whether any piece of byPlayer attacks square.
// Pawns only attack diagonally and kings attack their eight neighbors; both
// are evaluated directly so that king move generation (which consults this
// for castling) never recurses.
func (b *Board) IsSquareAttacked(square FileRank, byPlayer Player) bool {
	for _, piece := range b.Pieces {
		if piece.Color != byPlayer {
			continue
		}
		switch piece.Kind {
		case Pawn:
			attackRank := int(piece.Square.Rank) + PawnDirection(piece.Color)
			if int(square.Rank) == attackRank && AbsDiff(int(square.File), int(piece.Square.File)) == 1 {
				return true
			}
		case King:
			if piece.Square != square &&
				AbsDiff(int(square.File), int(piece.Square.File)) <= 1 &&
				AbsDiff(int(square.Rank), int(piece.Square.Rank)) <= 1 {
				return true
			}
		default:
			if Contains(b.PseudoLegalMoves(piece), square) {
				return true
			}
		}
	}
	return false
}

// IsInCheck reports whether player's king is attacked. A board without that
// king (possible mid-simulation) is not in check.
func (b *Board) IsInCheck(player Player) bool {
	king := b.KingFor(player)
	if king.IsEmpty() {
		return false
	}
	return b.IsSquareAttacked(king.Value().Square, player.Other())
}

// moveIsLegal simulates piece moving to `to` and reports whether the mover's
// king survives. The simulation is reverted on every exit path, restoring
// piece-list order.
func (b *Board) moveIsLegal(piece *Piece, to FileRank) bool {
	from := piece.Square

	captured := b.PieceAt(to)
	if victim := b.enPassantVictim(piece, to); victim != nil {
		captured = victim
	}

	capturedAt := -1
	if captured != nil {
		capturedAt = b.liftPiece(captured)
	}
	b.relocate(piece, to)

	defer func() {
		b.relocate(piece, from)
		if captured != nil {
			b.placePiece(captured, capturedAt)
		}
	}()

	return !b.IsInCheck(piece.Color)
}

// LegalMoves filters the piece's pseudo-legal moves down to those that do not
// leave its own king in check. Asking about a piece that is not live on the
// board is a caller bug and fails loudly.
func (b *Board) LegalMoves(piece *Piece) ([]FileRank, Error) {
	if b.PieceAt(piece.Square) != piece {
		return nil, Errorf("legal moves for %v: piece is not on the board", piece)
	}

	moves := FilterSlice(b.PseudoLegalMoves(piece), func(to FileRank) bool {
		return b.moveIsLegal(piece, to)
	})
	return moves, NilError
}

func (b *Board) hasAnyLegalMove(player Player) bool {
	for _, piece := range b.PiecesFor(player) {
		for _, to := range b.PseudoLegalMoves(piece) {
			if b.moveIsLegal(piece, to) {
				return true
			}
		}
	}
	return false
}

func (b *Board) IsCheckmate(player Player) bool {
	return b.IsInCheck(player) && !b.hasAnyLegalMove(player)
}

func (b *Board) IsStalemate(player Player) bool {
	return !b.IsInCheck(player) && !b.hasAnyLegalMove(player)
}
