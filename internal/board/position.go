package board

import (
	"fmt"
	"strings"
)

// CastlingRights holds the four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingSide  CastlingRights = 1 << iota // K
	WhiteQueenSide                            // Q
	BlackKingSide                             // k
	BlackQueenSide                            // q

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Has reports whether every flag in r is set.
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r == r
}

// String returns the FEN castling field.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var sb strings.Builder
	for i, c := range "KQkq" {
		if cr&(1<<i) != 0 {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// Position is a board snapshot. Build one with ParseFEN; the generator only
// reads it.
type Position struct {
	// Grid maps each square to its piece; it mirrors Pieces exactly.
	Grid [64]Piece

	// Pieces holds one set per piece identity, indexed by Piece.Index.
	Pieces [PieceCount]Bitboard

	// Occupied holds every piece of each side.
	Occupied [2]Bitboard

	SideToMove     Color
	CastlingRights CastlingRights

	// EnPassant is the square a capturing pawn would land on, or NoSquare.
	EnPassant Square
}

func newEmptyPosition() *Position {
	p := &Position{EnPassant: NoSquare}
	for sq := range p.Grid {
		p.Grid[sq] = NoPiece
	}
	return p
}

// PieceBB returns the set of squares holding piece. It panics for NoPiece.
func (p *Position) PieceBB(piece Piece) Bitboard {
	return p.Pieces[piece.Index()]
}

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Grid[sq]
}

// AllOccupied returns every occupied square.
func (p *Position) AllOccupied() Bitboard {
	return p.Occupied[White] | p.Occupied[Black]
}

// place puts piece on an empty square, keeping all views in step.
func (p *Position) place(piece Piece, sq Square) {
	bb := SquareBB(sq)
	p.Grid[sq] = piece
	p.Pieces[piece.Index()] |= bb
	p.Occupied[piece.Color()] |= bb
}

// kingSquare returns the square of c's king. It panics unless c has exactly one.
func (p *Position) kingSquare(c Color) Square {
	kings := p.PieceBB(NewPiece(King, c))
	if kings.PopCount() != 1 {
		invariant(ErrKingCount, "%v has %d", c, kings.PopCount())
	}
	return kings.LSB()
}

// Validate checks the structural invariants the generator relies on and
// returns the first violation found.
func (p *Position) Validate() error {
	var union [2]Bitboard
	var all Bitboard
	for i := 0; i < PieceCount; i++ {
		piece := Piece(i)
		bb := p.Pieces[i]
		if bb&all != 0 {
			return fmt.Errorf("%w: %v overlaps another piece", ErrCorruptPosition, piece)
		}
		all |= bb
		union[piece.Color()] |= bb
	}
	for c := White; c <= Black; c++ {
		if union[c] != p.Occupied[c] {
			return fmt.Errorf("%w: %v occupancy does not match its pieces", ErrCorruptPosition, c)
		}
		if n := p.PieceBB(NewPiece(King, c)).PopCount(); n != 1 {
			return fmt.Errorf("%w: %v has %d", ErrKingCount, c, n)
		}
	}
	for _, c := range castles {
		if p.CastlingRights.Has(c.right) &&
			(p.Grid[c.from] != NewPiece(King, c.side) || p.Grid[c.rook] != NewPiece(Rook, c.side)) {
			return fmt.Errorf("%w: castling right %v without king and rook at home", ErrCorruptPosition, c.right)
		}
	}
	for sq := A1; sq <= H8; sq++ {
		piece := p.Grid[sq]
		if piece == NoPiece {
			if all.IsSet(sq) {
				return fmt.Errorf("%w: grid empty at occupied %v", ErrCorruptPosition, sq)
			}
			continue
		}
		if !p.PieceBB(piece).IsSet(sq) {
			return fmt.Errorf("%w: grid has %v at %v, bitboard does not", ErrCorruptPosition, piece, sq)
		}
	}
	return nil
}

// String draws the grid with rank 8 at the top, followed by the state fields.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteString(p.Grid[NewSquare(file, rank)].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %v\n", p.SideToMove)
	fmt.Fprintf(&sb, "Castling: %v\n", p.CastlingRights)
	fmt.Fprintf(&sb, "En passant: %v\n", p.EnPassant)
	return sb.String()
}
