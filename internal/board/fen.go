package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a Position from the placement, side, castling and en
// passant fields. The halfmove clock and fullmove number may follow but are
// not modelled. Every malformed token is rejected with a *FENError.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, &FENError{Field: "fields", Token: fen, Msg: "need at least 4 fields, got " + strconv.Itoa(len(fields))}
	}
	if len(fields) > 6 {
		return nil, &FENError{Field: "fields", Token: fen, Msg: "more than 6 fields"}
	}

	pos := newEmptyPosition()

	if err := parsePlacement(pos, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, &FENError{Field: "side to move", Token: fields[1]}
	}

	cr, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	pos.CastlingRights = cr

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, &FENError{Field: "en passant", Token: fields[3]}
		}
		if err := checkEnPassant(pos, sq); err != nil {
			return nil, &FENError{Field: "en passant", Token: fields[3], Msg: err.Error()}
		}
		pos.EnPassant = sq
	}

	return pos, nil
}

// checkEnPassant accepts a target only where a double push just landed: the
// sixth rank for White to move (third for Black), empty, with the enemy pawn
// directly in front of it.
func checkEnPassant(pos *Position, sq Square) error {
	rank, pawnSq := 5, sq-8
	if pos.SideToMove == Black {
		rank, pawnSq = 2, sq+8
	}
	if sq.Rank() != rank {
		return fmt.Errorf("target must be on rank %d", rank+1)
	}
	if pos.PieceAt(sq) != NoPiece {
		return fmt.Errorf("target square is occupied")
	}
	if pos.PieceAt(pawnSq) != NewPiece(Pawn, pos.SideToMove.Other()) {
		return fmt.Errorf("no %v pawn on %v", pos.SideToMove.Other(), pawnSq)
	}
	return nil
}

func parsePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &FENError{Field: "placement", Token: placement, Msg: "need 8 ranks, got " + strconv.Itoa(len(ranks))}
	}

	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece := PieceFromChar(c)
				if piece == NoPiece {
					return &FENError{Field: "placement", Token: string(c), Msg: "invalid piece character"}
				}
				if file < 8 {
					pos.place(piece, NewSquare(file, rank))
				}
				file++
			}
		}
		if file != 8 {
			return &FENError{Field: "placement", Token: row, Msg: "rank " + strconv.Itoa(rank+1) + " does not cover 8 files"}
		}
	}
	return nil
}

func parseCastling(field string) (CastlingRights, error) {
	if field == "-" {
		return NoCastling, nil
	}
	var cr CastlingRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			cr |= WhiteKingSide
		case 'Q':
			cr |= WhiteQueenSide
		case 'k':
			cr |= BlackKingSide
		case 'q':
			cr |= BlackQueenSide
		default:
			return NoCastling, &FENError{Field: "castling", Token: field, Msg: "invalid character " + strconv.QuoteRune(rune(field[i]))}
		}
	}
	return cr, nil
}

// FEN renders the position; halfmove and fullmove are written as "0 1".
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Grid[NewSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	sb.WriteString(" 0 1")
	return sb.String()
}
