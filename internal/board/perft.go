package board

import (
	. "github.com/cricklet/chesskit/internal/helpers"
)

var promotionKinds = [4]PieceType{Knight, Bishop, Rook, Queen}

// CountPositions walks every legal move sequence of the given depth starting
// with player, applying and undoing as it goes, and returns the number of
// leaf positions. Promotions count once per promotion kind. If progress is
// non-nil it is called with the subtree size after each top-level move.
func (b *Board) CountPositions(player Player, depth int, progress func(int)) (int, Error) {
	if depth == 0 {
		return 1, NilError
	}

	total := 0
	pieces := b.PiecesFor(player)
	for _, piece := range pieces {
		moves, err := b.LegalMoves(piece)
		if !IsNil(err) {
			return 0, Errorf("count positions: %w", err)
		}

		for _, to := range moves {
			choices := []Optional[PieceType]{Empty[PieceType]()}
			if piece.IsPawn() && to.Rank == PromotionRank(piece.Color) {
				choices = MapSlice(promotionKinds[:], Some[PieceType])
			}

			for _, choice := range choices {
				move, err := b.ApplyMove(piece, to, choice)
				if !IsNil(err) {
					return 0, Errorf("count positions applying %v to %v: %w", piece, to, err)
				}

				count, err := b.CountPositions(player.Other(), depth-1, nil)

				if undone := b.UndoLastMove(); undone.IsEmpty() {
					return 0, Errorf("count positions: nothing to undo after %v", move)
				}
				if !IsNil(err) {
					return 0, err
				}

				total += count
				if progress != nil {
					progress(count)
				}
			}
		}
	}

	return total, NilError
}

// CountTopLevelMoves returns how many legal (move, promotion-kind) choices
// player has, the amount of work CountPositions reports progress against.
func (b *Board) CountTopLevelMoves(player Player) (int, Error) {
	total := 0
	for _, piece := range b.PiecesFor(player) {
		moves, err := b.LegalMoves(piece)
		if !IsNil(err) {
			return 0, err
		}
		for _, to := range moves {
			if piece.IsPawn() && to.Rank == PromotionRank(piece.Color) {
				total += len(promotionKinds)
			} else {
				total++
			}
		}
	}
	return total, NilError
}
