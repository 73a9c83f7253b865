package board

import (
	"iter"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares: bit i is set iff square i is a member.
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileC Bitboard = FileA << 2
	FileD Bitboard = FileA << 3
	FileE Bitboard = FileA << 4
	FileF Bitboard = FileA << 5
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7
)

// Rank masks
const (
	Rank1 Bitboard = 0xFF
	Rank2 Bitboard = Rank1 << (8 * 1)
	Rank3 Bitboard = Rank1 << (8 * 2)
	Rank4 Bitboard = Rank1 << (8 * 3)
	Rank5 Bitboard = Rank1 << (8 * 4)
	Rank6 Bitboard = Rank1 << (8 * 5)
	Rank7 Bitboard = Rank1 << (8 * 6)
	Rank8 Bitboard = Rank1 << (8 * 7)
)

const (
	Empty    Bitboard = 0
	Universe Bitboard = ^Empty
)

// Direction is a single compass step expressed as a square-index delta.
type Direction int8

const (
	East      Direction = 1
	West      Direction = -1
	NorthWest Direction = 7
	North     Direction = 8
	NorthEast Direction = 9
	SouthEast Direction = -7
	South     Direction = -8
	SouthWest Direction = -9
)

// Directions lists the eight compass steps.
var Directions = [8]Direction{East, West, NorthWest, North, NorthEast, SouthEast, South, SouthWest}

// SquareBB returns the set holding only sq. It panics if sq is off the board.
func SquareBB(sq Square) Bitboard {
	if sq > H8 {
		invariant(ErrInvalidIndex, "square %d out of range", sq)
	}
	return 1 << sq
}

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ SquareBB(sq)
}

// IsSet reports whether sq is a member. Squares off the board are never members.
func (b Bitboard) IsSet(sq Square) bool {
	return sq <= H8 && b&(1<<sq) != 0
}

// IsEmpty reports whether no square is set.
func (b Bitboard) IsEmpty() bool {
	return b == 0
}

// PopCount returns the number of members.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest member. The set must not be empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		invariant(ErrEmptySet, "LSB")
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest member. The set must not be empty.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// LowestBit returns the set holding only the lowest member of b (x & -x).
func (b Bitboard) LowestBit() Bitboard {
	return b & -b
}

// ShiftByOne moves every member one step in dir. Members that would wrap
// around the board edge are dropped before the shift; vertical steps need no
// mask since bits fall off the ends of the word. Any other dir panics.
func (b Bitboard) ShiftByOne(dir Direction) Bitboard {
	switch dir {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East, NorthEast:
		return (b &^ FileH) << uint(dir)
	case SouthEast:
		return (b &^ FileH) >> 7
	case West, SouthWest:
		return (b &^ FileA) >> uint(-dir)
	case NorthWest:
		return (b &^ FileA) << 7
	}
	invariant(ErrInvalidShift, "%d", dir)
	return Empty
}

// Drain yields members in ascending order, removing each from b as it goes.
// Once exhausted b is empty; keep a copy to iterate again.
func (b *Bitboard) Drain() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for *b != 0 {
			if !yield(b.PopLSB()) {
				return
			}
		}
	}
}

// Squares returns the members in ascending order without consuming b.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for sq := range b.Drain() {
		squares = append(squares, sq)
	}
	return squares
}

// String draws the set with rank 8 at the top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
