package board

import (
	"errors"
	"fmt"
)

// Sentinel errors. Malformed input is returned wrapped in one of these;
// broken invariants panic with an error wrapping one of them.
var (
	// ErrInvalidFEN indicates a FEN string that cannot describe a position.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrInvalidIndex indicates the empty-piece sentinel used as an array index.
	ErrInvalidIndex = errors.New("invalid piece index")

	// ErrEmptySet indicates single-bit extraction on an empty bitboard.
	ErrEmptySet = errors.New("bit extraction on empty bitboard")

	// ErrInvalidShift indicates a shift that is not one compass step.
	ErrInvalidShift = errors.New("invalid shift magnitude")

	// ErrKingCount indicates a side without exactly one king.
	ErrKingCount = errors.New("side must have exactly one king")

	// ErrCorruptPosition indicates a Position whose bitboards disagree.
	ErrCorruptPosition = errors.New("corrupt position")
)

// FENError describes which FEN field was rejected and why.
type FENError struct {
	Field string // placement, side, castling, en passant, ...
	Token string // offending token
	Msg   string
}

// Error formats the field, the token and the reason.
func (e *FENError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%v: %s %q", ErrInvalidFEN, e.Field, e.Token)
	}
	return fmt.Sprintf("%v: %s %q: %s", ErrInvalidFEN, e.Field, e.Token, e.Msg)
}

// Unwrap lets errors.Is match ErrInvalidFEN.
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// invariant panics with err wrapped in a formatted message.
func invariant(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}
