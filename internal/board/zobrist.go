package board

// Zobrist keys, generated from a fixed seed so hashes are stable across runs
// and can key persisted results.
var (
	zobristPiece      [PieceCount][64]uint64
	zobristEnPassant  [8]uint64
	zobristCastling   [16]uint64
	zobristSideToMove uint64
)

func init() {
	rng := prng{state: 0x98F107A2BEEF1234}

	for i := range zobristPiece {
		for sq := range zobristPiece[i] {
			zobristPiece[i][sq] = rng.next()
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for cr := range zobristCastling {
		zobristCastling[cr] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// prng is xorshift64*.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Hash returns the Zobrist key of the position: pieces, side to move,
// castling rights and en passant file.
func (p *Position) Hash() uint64 {
	var h uint64
	for i := range p.Pieces {
		bb := p.Pieces[i]
		for sq := range bb.Drain() {
			h ^= zobristPiece[i][sq]
		}
	}
	if p.SideToMove == Black {
		h ^= zobristSideToMove
	}
	h ^= zobristCastling[p.CastlingRights&AllCastling]
	if p.EnPassant.IsValid() {
		h ^= zobristEnPassant[p.EnPassant.File()]
	}
	return h
}
