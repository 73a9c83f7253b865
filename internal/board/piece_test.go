package board

import "testing"

func TestPieceIndex(t *testing.T) {
	seen := make(map[int]bool)
	for pt := Pawn; pt <= King; pt++ {
		for c := White; c <= Black; c++ {
			p := NewPiece(pt, c)
			idx := p.Index()
			if idx != int(pt)*2+int(c) {
				t.Errorf("NewPiece(%v, %v).Index() = %d, want %d", pt, c, idx, int(pt)*2+int(c))
			}
			if seen[idx] {
				t.Errorf("index %d used twice", idx)
			}
			seen[idx] = true
			if p.Type() != pt || p.Color() != c {
				t.Errorf("%v decodes to (%v, %v)", p, p.Type(), p.Color())
			}
		}
	}
	if len(seen) != PieceCount {
		t.Errorf("%d distinct indices, want %d", len(seen), PieceCount)
	}
}

func TestNoPieceHasNoSlot(t *testing.T) {
	mustPanicWith(t, ErrInvalidIndex, func() { NoPiece.Index() })
	mustPanicWith(t, ErrInvalidIndex, func() { NoPiece.Type() })
	mustPanicWith(t, ErrInvalidIndex, func() { NoPiece.Color() })

	var pos Position
	mustPanicWith(t, ErrInvalidIndex, func() { pos.PieceBB(NoPiece) })

	if NewPiece(NoPieceType, White) != NoPiece {
		t.Error("NewPiece with NoPieceType should be NoPiece")
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black || Black.Other() != White {
		t.Error("Other should swap sides")
	}
}

func TestPieceChars(t *testing.T) {
	for i := 0; i < PieceCount; i++ {
		p := Piece(i)
		if got := PieceFromChar(p.String()[0]); got != p {
			t.Errorf("PieceFromChar(%q) = %v, want %v", p.String(), got, p)
		}
	}
	for _, c := range []byte("xX0 .") {
		if PieceFromChar(c) != NoPiece {
			t.Errorf("PieceFromChar(%q) should be NoPiece", c)
		}
	}
	if WhiteKnight.String() != "N" || BlackKing.String() != "k" {
		t.Errorf("unexpected letters %s %s", WhiteKnight, BlackKing)
	}
}
