package board

// GenMode selects which class of pseudo-legal moves to generate.
type GenMode uint8

const (
	// Quiet moves land on empty squares; castling is quiet.
	Quiet GenMode = iota
	// Noisy moves capture an enemy piece, en passant included.
	Noisy
)

func (m GenMode) String() string {
	if m == Noisy {
		return "noisy"
	}
	return "quiet"
}

// GenerateQuiet returns the non-capturing pseudo-legal moves for the side to
// move: pushes, piece moves to empty squares and castling.
func (p *Position) GenerateQuiet() []Move {
	return p.generate(Quiet).Slice()
}

// GenerateNoisy returns the capturing pseudo-legal moves for the side to move.
func (p *Position) GenerateNoisy() []Move {
	return p.generate(Noisy).Slice()
}

// GeneratePseudoLegalMoves returns the quiet moves followed by the noisy ones.
func (p *Position) GeneratePseudoLegalMoves() []Move {
	return append(p.GenerateQuiet(), p.GenerateNoisy()...)
}

// generate enumerates pawns, knights, king, sliders, then castling.
func (p *Position) generate(mode GenMode) *MoveList {
	ml := NewMoveList()
	p.generatePawnMoves(ml, mode)
	p.generateKnightMoves(ml, mode)
	p.generateKingMoves(ml, mode)
	p.generateSliderMoves(ml, mode)
	if mode == Quiet {
		p.generateCastlingMoves(ml)
	}
	return ml
}

// targets returns the destination mask for non-pawn pieces.
func (p *Position) targets(mode GenMode) Bitboard {
	us := p.SideToMove
	them := us.Other()
	if mode == Noisy {
		return p.Occupied[them]
	}
	return ^p.Occupied[us] &^ p.Occupied[them]
}

func (p *Position) generatePawnMoves(ml *MoveList, mode GenMode) {
	us := p.SideToMove
	pawns := p.PieceBB(NewPiece(Pawn, us))

	push, thirdRank := North, Rank3
	captures := [2]Direction{NorthWest, NorthEast}
	if us == Black {
		push, thirdRank = South, Rank6
		captures = [2]Direction{SouthEast, SouthWest}
	}

	if mode == Noisy {
		// En passant first: a friendly pawn one capture-step behind the target.
		if p.EnPassant.IsValid() {
			target := SquareBB(p.EnPassant)
			for _, dir := range captures {
				if target.ShiftByOne(-dir)&pawns != 0 {
					from := Square(int(p.EnPassant) - int(dir))
					ml.Add(NewMove(from, p.EnPassant, NoPromotion, true))
				}
			}
		}
		for _, dir := range captures {
			hits := pawns.ShiftByOne(dir) & p.Occupied[us.Other()]
			for to := range hits.Drain() {
				addPawnMove(ml, Square(int(to)-int(dir)), to)
			}
		}
		return
	}

	empty := ^p.AllOccupied()
	single := pawns.ShiftByOne(push) & empty
	double := (single & thirdRank).ShiftByOne(push) & empty
	for to := range single.Drain() {
		addPawnMove(ml, Square(int(to)-int(push)), to)
	}
	for to := range double.Drain() {
		addPawnMove(ml, Square(int(to)-2*int(push)), to)
	}
}

// addPawnMove adds one move, or four when the pawn reaches the last rank.
func addPawnMove(ml *MoveList, from, to Square) {
	if r := to.Rank(); r == 0 || r == 7 {
		for _, promo := range promotions {
			ml.Add(NewMove(from, to, promo, false))
		}
		return
	}
	ml.Add(NewMove(from, to, NoPromotion, false))
}

func addMoves(ml *MoveList, from Square, to Bitboard) {
	for sq := range to.Drain() {
		ml.Add(NewMove(from, sq, NoPromotion, false))
	}
}

func (p *Position) generateKnightMoves(ml *MoveList, mode GenMode) {
	targets := p.targets(mode)
	knights := p.PieceBB(NewPiece(Knight, p.SideToMove))
	for from := range knights.Drain() {
		addMoves(ml, from, KnightAttacks(from)&targets)
	}
}

func (p *Position) generateKingMoves(ml *MoveList, mode GenMode) {
	from := p.kingSquare(p.SideToMove)
	addMoves(ml, from, KingAttacks(from)&p.targets(mode))
}

var sliders = [3]struct {
	pt      PieceType
	attacks func(Square, Bitboard) Bitboard
}{
	{Bishop, BishopAttacks},
	{Rook, RookAttacks},
	{Queen, QueenAttacks},
}

func (p *Position) generateSliderMoves(ml *MoveList, mode GenMode) {
	targets := p.targets(mode)
	occupied := p.AllOccupied()
	for _, s := range sliders {
		pieces := p.PieceBB(NewPiece(s.pt, p.SideToMove))
		for from := range pieces.Drain() {
			addMoves(ml, from, s.attacks(from, occupied)&targets)
		}
	}
}

// castle describes one castling option by the squares that must be empty.
type castle struct {
	right    CastlingRights
	side     Color
	between  Bitboard
	from, to Square
	rook     Square
}

var castles = [4]castle{
	{WhiteKingSide, White, SquareBB(F1) | SquareBB(G1), E1, G1, H1},
	{WhiteQueenSide, White, SquareBB(B1) | SquareBB(C1) | SquareBB(D1), E1, C1, A1},
	{BlackKingSide, Black, SquareBB(F8) | SquareBB(G8), E8, G8, H8},
	{BlackQueenSide, Black, SquareBB(B8) | SquareBB(C8) | SquareBB(D8), E8, C8, A8},
}

// generateCastlingMoves only checks rights and empty squares. Whether the king
// is in check or crosses an attacked square is left to legality filtering.
func (p *Position) generateCastlingMoves(ml *MoveList) {
	occupied := p.AllOccupied()
	for _, c := range castles {
		if c.side != p.SideToMove || !p.CastlingRights.Has(c.right) {
			continue
		}
		if c.between&occupied == 0 {
			ml.Add(NewMove(c.from, c.to, NoPromotion, false))
		}
	}
}
