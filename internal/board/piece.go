package board

// Color is the side a piece belongs to, or the side to move.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing side.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType is a piece kind independent of side.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// PieceCount is the number of live piece identities.
const PieceCount = 12

// Piece is a piece kind crossed with a side, encoded kind*2 + side.
// NoPiece marks an empty square and is never a valid array index.
type Piece uint8

const (
	WhitePawn Piece = iota
	BlackPawn
	WhiteKnight
	BlackKnight
	WhiteBishop
	BlackBishop
	WhiteRook
	BlackRook
	WhiteQueen
	BlackQueen
	WhiteKing
	BlackKing
	NoPiece
)

// NewPiece combines a kind and a side.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c > Black {
		return NoPiece
	}
	return Piece(pt)*2 + Piece(c)
}

// Index returns the dense 0..11 slot for p. It panics for NoPiece.
func (p Piece) Index() int {
	if p >= NoPiece {
		invariant(ErrInvalidIndex, "piece %d has no slot", p)
	}
	return int(p)
}

// Type returns the kind of p. It panics for NoPiece.
func (p Piece) Type() PieceType {
	return PieceType(p.Index() >> 1)
}

// Color returns the side of p. It panics for NoPiece.
func (p Piece) Color() Color {
	return Color(p.Index() & 1)
}

const pieceChars = "PpNnBbRrQqKk"

// String returns the FEN letter, uppercase for White, or "." for NoPiece.
func (p Piece) String() string {
	if p >= NoPiece {
		return "."
	}
	return pieceChars[p : p+1]
}

// PieceFromChar maps a FEN letter to a piece, or NoPiece if c is not one.
func PieceFromChar(c byte) Piece {
	for i := 0; i < PieceCount; i++ {
		if pieceChars[i] == c {
			return Piece(i)
		}
	}
	return NoPiece
}
