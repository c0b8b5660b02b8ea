package board

import (
	"strconv"

	. "github.com/cricklet/chesskit/internal/helpers"
)

var _pieceGlyphs = [2][6]string{
	{"♙", "♘", "♗", "♖", "♕", "♔"},
	{"♟", "♞", "♝", "♜", "♛", "♚"},
}

var _pieceLetters = [2][6]string{
	{"P", "N", "B", "R", "Q", "K"},
	{"p", "n", "b", "r", "q", "k"},
}

const _hintForeground = "\033[38;5;244m"
const _whiteForeground = "\033[38;5;255m"
const _blackForeground = "\033[38;5;232m"
const _whiteBackground = "\033[48;5;244m"
const _blackBackground = "\033[48;5;243m"
const _resetColors = "\x1b[0m"

// String renders the board as a plain letter grid, rank 8 at the top.
func (b *Board) String() string {
	result := ""
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(FileRank{File: File(file), Rank: Rank(rank)})
			if piece == nil {
				result += " "
			} else {
				result += _pieceLetters[piece.Color][piece.Kind]
			}
		}
		if rank != 0 {
			result += "\n"
		}
	}
	return result
}

// Unicode renders the board with ANSI colors for terminal play.
func (b *Board) Unicode() string {
	result := "  "
	for file := 0; file < 8; file++ {
		result += _hintForeground + " " + File(file).String() + " " + _resetColors
	}
	result += "\n"

	for rank := 7; rank >= 0; rank-- {
		result += _hintForeground + Rank(rank).String() + " " + _resetColors
		for file := 0; file < 8; file++ {
			squareColor := (file%2 + rank%2) % 2
			if squareColor == 0 {
				result += _whiteBackground
			} else {
				result += _blackBackground
			}

			piece := b.PieceAt(FileRank{File: File(file), Rank: Rank(rank)})
			if piece == nil {
				result += "   "
			} else {
				if piece.Color == White {
					result += _whiteForeground
				} else {
					result += _blackForeground
				}
				result += " " + _pieceGlyphs[Black][piece.Kind] + " "
			}
			result += _resetColors
		}
		result += "\n"
	}

	return result
}

// CapturesString renders the captured pieces of both colors as glyph rows,
// empty if nothing has been captured.
func (b *Board) CapturesString() string {
	line := func(label string, pieces []*Piece) string {
		if len(pieces) == 0 {
			return ""
		}
		result := label + " captured:"
		for _, p := range pieces {
			result += " " + _pieceGlyphs[Black][p.Kind]
		}
		return result
	}

	white := line("white", b.CapturedWhite)
	black := line("black", b.CapturedBlack)
	if white != "" && black != "" {
		return white + "\n" + black
	}
	return white + black
}

// HistoryString renders the move history as numbered algebraic pairs.
func (b *Board) HistoryString() string {
	result := ""
	for i, move := range b.History {
		if i%2 == 0 {
			if i > 0 {
				result += " "
			}
			result += strconv.Itoa(i/2+1) + "."
		}
		result += " " + move.Algebraic()
	}
	return result
}
