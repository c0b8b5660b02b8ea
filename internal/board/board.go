package board

import (
	. "github.com/cricklet/chesskit/internal/helpers"
)

// Board owns the live pieces, the capture lists, the move history, and the
// current en-passant target. It is turn-agnostic: callers decide whose move
// it is. All mutation goes through ApplyMove / UndoLastMove / Reset.
type Board struct {
	Pieces          []*Piece
	CapturedWhite   []*Piece
	CapturedBlack   []*Piece
	History         []Move
	EnPassantTarget Optional[FileRank]

	// derived square -> piece cache; Pieces stays authoritative
	occupied [64]*Piece
}

// The back rank mirrors the usual orientation: the king starts on the d file.
var backRank = [8]PieceType{Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook}

func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset restores the standard 32-piece starting layout and discards captures,
// history, and the en-passant target.
func (b *Board) Reset() {
	b.Pieces = nil
	b.CapturedWhite = nil
	b.CapturedBlack = nil
	b.History = nil
	b.EnPassantTarget = Empty[FileRank]()
	b.occupied = [64]*Piece{}

	for file, kind := range backRank {
		b.addPiece(&Piece{Kind: kind, Color: White, Square: FileRank{File: File(file), Rank: 0}})
		b.addPiece(&Piece{Kind: kind, Color: Black, Square: FileRank{File: File(file), Rank: 7}})
	}
	for file := 0; file < 8; file++ {
		b.addPiece(&Piece{Kind: Pawn, Color: White, Square: FileRank{File: File(file), Rank: 1}})
		b.addPiece(&Piece{Kind: Pawn, Color: Black, Square: FileRank{File: File(file), Rank: 6}})
	}
}

func (b *Board) PieceAt(square FileRank) *Piece {
	return b.occupied[IndexFromFileRank(square)]
}

func (b *Board) PiecesFor(player Player) []*Piece {
	return FilterSlice(b.Pieces, func(p *Piece) bool {
		return p.Color == player
	})
}

func (b *Board) KingFor(player Player) Optional[*Piece] {
	return FindInSlice(b.Pieces, func(p *Piece) bool {
		return p.IsKing() && p.Color == player
	})
}

func (b *Board) addPiece(p *Piece) {
	b.Pieces = append(b.Pieces, p)
	b.occupied[IndexFromFileRank(p.Square)] = p
}

func (b *Board) relocate(p *Piece, to FileRank) {
	b.occupied[IndexFromFileRank(p.Square)] = nil
	p.Square = to
	b.occupied[IndexFromFileRank(to)] = p
}

// liftPiece takes p out of play and returns its index in Pieces so that
// placePiece can restore the original order.
func (b *Board) liftPiece(p *Piece) int {
	i := IndexInSlice(b.Pieces, p)
	b.Pieces = append(b.Pieces[:i], b.Pieces[i+1:]...)
	b.occupied[IndexFromFileRank(p.Square)] = nil
	return i
}

func (b *Board) placePiece(p *Piece, at int) {
	b.Pieces = append(b.Pieces, nil)
	copy(b.Pieces[at+1:], b.Pieces[at:])
	b.Pieces[at] = p
	b.occupied[IndexFromFileRank(p.Square)] = p
}

func (b *Board) capture(p *Piece) {
	b.liftPiece(p)
	if p.Color == White {
		b.CapturedWhite = append(b.CapturedWhite, p)
	} else {
		b.CapturedBlack = append(b.CapturedBlack, p)
	}
}

// enPassantVictim returns the pawn captured by moving piece to `to`, if that
// move is an en-passant capture.
func (b *Board) enPassantVictim(piece *Piece, to FileRank) *Piece {
	if !piece.IsPawn() || b.EnPassantTarget.IsEmpty() || to != b.EnPassantTarget.Value() {
		return nil
	}
	behind := FileRank{File: to.File, Rank: Rank(int(to.Rank) - PawnDirection(piece.Color))}
	return b.PieceAt(behind)
}

// castlingRookMove resolves the rook paired with a castling king move: the
// rook in the corner the king is heading toward, landing on the square the
// king crossed.
func (b *Board) castlingRookMove(from FileRank, to FileRank) (*Piece, FileRank) {
	corner := File(0)
	if to.File > from.File {
		corner = File(7)
	}
	rook := b.PieceAt(FileRank{File: corner, Rank: from.Rank})
	transit := FileRank{File: (from.File + to.File) / 2, Rank: from.Rank}
	return rook, transit
}

// ApplyMove executes a move for piece onto `to` and appends the resulting
// record to history. The destination must be in the piece's current legal
// moves. A pawn reaching the last rank requires promotion to hold a kind;
// there is no default. Nothing is mutated on error.
func (b *Board) ApplyMove(piece *Piece, to FileRank, promotion Optional[PieceType]) (Move, Error) {
	if b.PieceAt(piece.Square) != piece {
		return Move{}, Errorf("apply %v: piece is not on the board", piece)
	}

	legal, err := b.LegalMoves(piece)
	if !IsNil(err) {
		return Move{}, Errorf("apply %v: %w", piece, err)
	}
	if !Contains(legal, to) {
		return Move{}, Errorf("apply %v: %v is not a legal destination", piece, to)
	}

	isPromotion := piece.IsPawn() && to.Rank == PromotionRank(piece.Color)
	if isPromotion {
		if promotion.IsEmpty() {
			return Move{}, Errorf("apply %v to %v: missing promotion choice", piece, to)
		}
		kind := promotion.Value()
		if kind == Pawn || kind == King || !kind.IsValid() {
			return Move{}, Errorf("apply %v to %v: cannot promote to %v", piece, to, kind)
		}
	} else {
		promotion = Empty[PieceType]()
	}

	from := piece.Square
	kind := piece.Kind
	captured := b.PieceAt(to)

	isEnPassant := false
	if victim := b.enPassantVictim(piece, to); victim != nil {
		isEnPassant = true
		captured = victim
	}

	isCastling := piece.IsKing() && AbsDiff(int(to.File), int(from.File)) == 2
	if isCastling {
		rook, rookTo := b.castlingRookMove(from, to)
		b.relocate(rook, rookTo)
		rook.HasMoved = true
	}

	if captured != nil {
		b.capture(captured)
	}

	b.EnPassantTarget = Empty[FileRank]()
	if piece.IsPawn() && AbsDiff(int(to.Rank), int(from.Rank)) == 2 {
		passedOver := FileRank{File: from.File, Rank: Rank(int(from.Rank) + PawnDirection(piece.Color))}
		b.EnPassantTarget = Some(passedOver)
	}

	b.relocate(piece, to)
	piece.HasMoved = true

	if isPromotion {
		piece.Kind = promotion.Value()
	}

	move := Move{
		Piece:         piece,
		Kind:          kind,
		From:          from,
		To:            to,
		Captured:      captured,
		IsCastling:    isCastling,
		IsEnPassant:   isEnPassant,
		IsPromotion:   isPromotion,
		PromotionKind: promotion,
	}
	b.History = append(b.History, move)
	return move, NilError
}

// UndoLastMove pops and inverts the last move. Returns empty if there is no
// history.
func (b *Board) UndoLastMove() Optional[Move] {
	if len(b.History) == 0 {
		return Empty[Move]()
	}

	move := b.History[len(b.History)-1]
	b.History = b.History[:len(b.History)-1]

	b.relocate(move.Piece, move.From)

	// HasMoved is derived from history, not stored redundantly
	move.Piece.HasMoved = false
	for _, earlier := range b.History {
		if earlier.Piece == move.Piece {
			move.Piece.HasMoved = true
			break
		}
	}

	if move.Captured != nil {
		b.addPiece(move.Captured)
		if move.Captured.Color == White {
			b.CapturedWhite = RemoveFromSlice(b.CapturedWhite, move.Captured)
		} else {
			b.CapturedBlack = RemoveFromSlice(b.CapturedBlack, move.Captured)
		}
	}

	if move.IsCastling {
		rook := b.PieceAt(FileRank{File: (move.From.File + move.To.File) / 2, Rank: move.From.Rank})
		corner := File(0)
		if move.To.File > move.From.File {
			corner = File(7)
		}
		b.relocate(rook, FileRank{File: corner, Rank: move.From.Rank})
		rook.HasMoved = false
	}

	if move.IsPromotion {
		move.Piece.Kind = Pawn
	}

	b.EnPassantTarget = Empty[FileRank]()
	if len(b.History) > 0 {
		last := b.History[len(b.History)-1]
		if last.Kind == Pawn && AbsDiff(int(last.To.Rank), int(last.From.Rank)) == 2 {
			passedOver := FileRank{File: last.From.File, Rank: Rank(int(last.From.Rank) + PawnDirection(last.Piece.Color))}
			b.EnPassantTarget = Some(passedOver)
		}
	}

	return Some(move)
}
