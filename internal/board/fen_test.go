package board

import (
	"errors"
	"testing"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*Position) bool
	}{
		{
			name: "start position",
			fen:  StartFEN,
			checkFn: func(p *Position) bool {
				return p.PieceAt(E1) == WhiteKing &&
					p.PieceAt(E8) == BlackKing &&
					p.PieceAt(D1) == WhiteQueen &&
					p.PieceAt(E4) == NoPiece &&
					p.PieceBB(WhitePawn) == Rank2 &&
					p.PieceBB(BlackPawn) == Rank7 &&
					p.Occupied[White] == Rank1|Rank2 &&
					p.Occupied[Black] == Rank7|Rank8 &&
					p.SideToMove == White &&
					p.CastlingRights == AllCastling &&
					p.EnPassant == NoSquare
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *Position) bool {
				return p.PieceAt(E4) == WhitePawn &&
					p.PieceAt(E2) == NoPiece &&
					p.SideToMove == Black &&
					p.EnPassant == E3
			},
		},
		{
			name: "no clocks",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq -",
			checkFn: func(p *Position) bool {
				return p.CastlingRights == WhiteKingSide|BlackQueenSide
			},
		},
		{
			name: "no castling",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 12 40",
			checkFn: func(p *Position) bool {
				return p.CastlingRights == NoCastling &&
					p.AllOccupied() == SquareBB(E1)|SquareBB(E8)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			if err := pos.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
			if !tt.checkFn(pos) {
				t.Errorf("position check failed:\n%v", pos)
			}
		})
	}
}

func TestParseFENRejects(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		field string
	}{
		{"empty", "", "fields"},
		{"too few fields", "8/8/8/8/8/8/8/8 w -", "fields"},
		{"too many fields", StartFEN + " extra", "fields"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", "placement"},
		{"digit zero", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN0 w KQkq - 0 1", "placement"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"short rank", "rnbqkbnr/pppppppp/8/8/7/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"long rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNRR w KQkq - 0 1", "placement"},
		{"long rank digits", "rnbqkbnr/pppppppp/8/8/44P/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", "side to move"},
		{"uppercase side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR W KQkq - 0 1", "side to move"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1", "castling"},
		{"bad en passant file", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq i3 0 1", "en passant"},
		{"bad en passant rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1", "en passant"},
		{"en passant rank zero", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e0 0 1", "en passant"},
		{"en passant too long", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3x 0 1", "en passant"},
		{"en passant behind own pawn", "4k3/8/8/8/8/8/3P4/4K3 w - e3 0 1", "en passant"},
		{"en passant on rank 5", "4k3/8/8/8/3P4/8/8/4K3 w - e5 0 1", "en passant"},
		{"en passant rank 6 with black to move", "4k3/8/8/3pP3/8/8/8/4K3 b - e6 0 1", "en passant"},
		{"en passant without pushed pawn", "4k3/8/8/8/8/8/8/4K3 w - e6 0 1", "en passant"},
		{"en passant in front of own pawn", "4k3/8/8/4P3/8/8/8/4K3 w - e6 0 1", "en passant"},
		{"en passant target occupied", "4k3/8/4n3/4p3/8/8/8/4K3 w - e6 0 1", "en passant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			if err == nil {
				t.Fatalf("expected error, got position:\n%v", pos)
			}
			if !errors.Is(err, ErrInvalidFEN) {
				t.Errorf("error %v does not wrap ErrInvalidFEN", err)
			}
			var fe *FENError
			if !errors.As(err, &fe) {
				t.Fatalf("error %T is not a *FENError", err)
			}
			if fe.Field != tt.field {
				t.Errorf("field = %q, want %q (%v)", fe.Field, tt.field, err)
			}
		})
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.FEN(); got != fen {
			t.Errorf("FEN() = %q, want %q", got, fen)
		}
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	pos.Pieces[WhiteKnight.Index()] |= SquareBB(E4)
	if err := pos.Validate(); !errors.Is(err, ErrCorruptPosition) {
		t.Errorf("Validate = %v, want ErrCorruptPosition", err)
	}

	noKing, err := ParseFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if err := noKing.Validate(); !errors.Is(err, ErrKingCount) {
		t.Errorf("Validate = %v, want ErrKingCount", err)
	}

	for _, fen := range []string{
		"4k3/8/8/8/8/8/8/3K3R w K - 0 1",
		"4k3/8/8/8/8/8/8/1R2K3 w Q - 0 1",
		"r3k3/8/8/8/8/8/8/4K3 w k - 0 1",
		"r2k3r/8/8/8/8/8/8/4K3 b q - 0 1",
	} {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		if err := pos.Validate(); !errors.Is(err, ErrCorruptPosition) {
			t.Errorf("%s: Validate = %v, want ErrCorruptPosition", fen, err)
		}
	}
}

func TestHash(t *testing.T) {
	a, _ := ParseFEN(StartFEN)
	b, _ := ParseFEN(StartFEN)
	if a.Hash() != b.Hash() {
		t.Error("equal positions should hash equally")
	}
	black, _ := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	if a.Hash() == black.Hash() {
		t.Error("side to move should change the hash")
	}
	noCastle, _ := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	if a.Hash() == noCastle.Hash() {
		t.Error("castling rights should change the hash")
	}
	if a.PieceBB(WhitePawn) != Rank2 {
		t.Error("Hash must not consume the piece sets")
	}
}
