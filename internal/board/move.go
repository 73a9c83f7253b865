package board

// Move packs a move into 16 bits:
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-14: promotion (0 none, 1 knight, 2 bishop, 3 rook, 4 queen)
//	bit  15:    en passant
//
// Castling is a plain two-square king move; callers recognise it by its
// squares (e1g1, e1c1, e8g8, e8c8).
type Move uint16

// Promotion selects the piece a pawn promotes to.
type Promotion uint8

const (
	NoPromotion Promotion = iota
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
)

// promotions is the expansion order for a pawn reaching the last rank.
var promotions = [4]Promotion{PromoteKnight, PromoteBishop, PromoteRook, PromoteQueen}

// NewMove packs the four fields. Values wider than their field are truncated.
func NewMove(from, to Square, promo Promotion, enPassant bool) Move {
	m := Move(from&0x3F) | Move(to&0x3F)<<6 | Move(promo&0x7)<<12
	if enPassant {
		m |= 1 << 15
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Promotion returns the promotion selector.
func (m Move) Promotion() Promotion {
	return Promotion((m >> 12) & 0x7)
}

// IsEnPassant reports whether the en passant flag is set.
func (m Move) IsEnPassant() bool {
	return m>>15 != 0
}

// PromotionPiece returns the promoted-to kind, or NoPieceType.
func (m Move) PromotionPiece() PieceType {
	switch m.Promotion() {
	case PromoteKnight:
		return Knight
	case PromoteBishop:
		return Bishop
	case PromoteRook:
		return Rook
	case PromoteQueen:
		return Queen
	default:
		return NoPieceType
	}
}

// String returns UCI notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if p := m.Promotion(); p >= PromoteKnight && p <= PromoteQueen {
		s += string("nbrq"[p-PromoteKnight])
	}
	return s
}

// MoveList is a fixed-capacity move buffer; no position has more than 218
// pseudo-legal moves.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add appends m.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Contains reports whether m is in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns a copy of the moves.
func (ml *MoveList) Slice() []Move {
	out := make([]Move, ml.count)
	copy(out, ml.moves[:ml.count])
	return out
}
