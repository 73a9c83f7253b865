package board

// Leaper attack tables, filled once at package initialisation.
var (
	knightAttacks = genKnightAttacks()
	kingAttacks   = genKingAttacks()
)

var (
	bishopDirections = [4]Direction{SouthWest, SouthEast, NorthWest, NorthEast}
	rookDirections   = [4]Direction{South, West, East, North}
)

// knightSteps are the eight L-shaped jumps, each as two compass steps.
// The second step's edge mask catches a jump off the board from the b/g files.
var knightSteps = [8][2]Direction{
	{North, NorthEast}, {North, NorthWest},
	{South, SouthEast}, {South, SouthWest},
	{East, NorthEast}, {East, SouthEast},
	{West, NorthWest}, {West, SouthWest},
}

func genKnightAttacks() [64]Bitboard {
	var table [64]Bitboard
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)
		for _, step := range knightSteps {
			table[sq] |= bb.ShiftByOne(step[0]).ShiftByOne(step[1])
		}
	}
	return table
}

func genKingAttacks() [64]Bitboard {
	var table [64]Bitboard
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)
		for _, dir := range Directions {
			table[sq] |= bb.ShiftByOne(dir)
		}
	}
	return table
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// BishopAttacks returns the diagonal rays from sq. Each ray stops at, and
// includes, the first square set in occupied.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(sq, occupied, bishopDirections)
}

// RookAttacks returns the orthogonal rays from sq, stopping at blockers.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(sq, occupied, rookDirections)
}

// QueenAttacks is the union of the bishop and rook rays from sq.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// slidingAttacks walks each direction one step at a time until it leaves the
// board or lands on an occupied square.
func slidingAttacks(sq Square, occupied Bitboard, dirs [4]Direction) Bitboard {
	var attacks Bitboard
	for _, dir := range dirs {
		ray := SquareBB(sq)
		for {
			ray = ray.ShiftByOne(dir)
			attacks |= ray
			if ray&^occupied == 0 {
				break
			}
		}
	}
	return attacks
}
