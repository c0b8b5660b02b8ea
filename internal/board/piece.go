package board

import (
	. "github.com/cricklet/chesskit/internal/helpers"
)

// Piece is a live chess piece. Pieces are identities: capture and undo move
// the same *Piece in and out of play rather than minting replacements.
type Piece struct {
	Kind     PieceType
	Color    Player
	Square   FileRank
	HasMoved bool
}

func (p *Piece) IsPawn() bool {
	return p.Kind == Pawn
}

func (p *Piece) IsKing() bool {
	return p.Kind == King
}

func (p *Piece) IsRook() bool {
	return p.Kind == Rook
}

func (p *Piece) String() string {
	return p.Color.String() + " " + p.Kind.String() + " at " + p.Square.String()
}

// Move records one applied move. Records are immutable once created and are
// the only mechanism for undo. Kind is the piece's kind at the time the move
// was made; the Piece itself is a live identity whose Kind a later promotion
// may change.
type Move struct {
	Piece         *Piece
	Kind          PieceType
	From          FileRank
	To            FileRank
	Captured      *Piece
	IsCastling    bool
	IsEnPassant   bool
	IsPromotion   bool
	PromotionKind Optional[PieceType]
}

// Algebraic renders the move in algebraic notation: O-O / O-O-O for castling,
// otherwise <letter><from><x?><to><=promo?> with the pawn letter omitted.
func (m Move) Algebraic() string {
	if m.IsCastling {
		if m.To.File > m.From.File {
			return "O-O"
		}
		return "O-O-O"
	}

	letter := m.Kind.Letter()

	capture := ""
	if m.Captured != nil {
		capture = "x"
	}

	promotion := ""
	if m.IsPromotion && m.PromotionKind.HasValue() {
		promotion = "=" + m.PromotionKind.Value().Letter()
	}

	return letter + m.From.String() + capture + m.To.String() + promotion
}

func (m Move) String() string {
	return m.Algebraic()
}
