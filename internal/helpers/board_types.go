package helpers

type File uint
type Rank uint

type FileRank struct {
	File File
	Rank Rank
}

type Player uint

const (
	White Player = iota
	Black
)

var _playerStrings = [2]string{
	"white", "black",
}

func (p Player) String() string {
	return _playerStrings[p]
}

func (p Player) Other() Player {
	return 1 - p
}

func PlayerFromString(s string) (Player, Error) {
	switch s {
	case "white", "w":
		return White, NilError
	case "black", "b":
		return Black, NilError
	default:
		return White, Errorf("invalid player %v", s)
	}
}

type PieceType uint

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	InvalidPiece
)

func (p PieceType) String() string {
	return [7]string{
		"pawn", "knight", "bishop", "rook", "queen", "king", "?",
	}[p]
}

// Letter is the algebraic-notation letter: empty for pawns, N for knights.
func (p PieceType) Letter() string {
	return [7]string{
		"", "N", "B", "R", "Q", "K", "?",
	}[p]
}

func (p PieceType) IsValid() bool {
	return p <= King
}

func PieceTypeFromLetter(s string) PieceType {
	switch s {
	case "", "P", "p":
		return Pawn
	case "N", "n":
		return Knight
	case "B", "b":
		return Bishop
	case "R", "r":
		return Rook
	case "Q", "q":
		return Queen
	case "K", "k":
		return King
	default:
		return InvalidPiece
	}
}

func (f File) String() string {
	return [8]string{
		"a", "b", "c", "d", "e", "f", "g", "h",
	}[f]
}

func (r Rank) String() string {
	return [8]string{
		"1", "2", "3", "4", "5", "6", "7", "8",
	}[r]
}

func RankFromChar(c byte) (Rank, Error) {
	rank := int(c - '1')
	if rank < 0 || rank >= 8 {
		return 0, Errorf("rank invalid %v", c)
	}
	return Rank(rank), NilError
}

func FileFromChar(c byte) (File, Error) {
	file := int(c - 'a')
	if file < 0 || file >= 8 {
		return 0, Errorf("file invalid %v", c)
	}
	return File(file), NilError
}

func (v FileRank) String() string {
	return v.File.String() + v.Rank.String()
}

func FileRankFromString(s string) (FileRank, Error) {
	if len(s) != 2 {
		return FileRank{}, Errorf("invalid location %v", s)
	}

	file, fileErr := FileFromChar(s[0])
	rank, rankErr := RankFromChar(s[1])

	if !IsNil(fileErr) || !IsNil(rankErr) {
		return FileRank{}, Errorf("invalid location %v with errors %w, %w", s, fileErr, rankErr)
	}

	return FileRank{File: file, Rank: rank}, NilError
}

// FileRankInBounds reports whether signed coordinates land on the board.
func FileRankInBounds(file int, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

func IndexFromFileRank(location FileRank) int {
	return int(location.Rank)*8 + int(location.File)
}

func FileRankFromIndex(index int) FileRank {
	f := File(index & 0b111)
	r := Rank(index >> 3)
	return FileRank{File: f, Rank: r}
}

type CastlingSide int

const (
	Kingside CastlingSide = iota
	Queenside
)

var AllCastlingSides = [2]CastlingSide{Kingside, Queenside}
