package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRecord    = errors.New("invalid position record")
	ErrInvalidRankCount = errors.New("invalid rank count")
	ErrInvalidPlacement = errors.New("invalid piece placement")
	ErrOutOfBounds      = errors.New("square out of bounds")
)

// InvalidRecordError is returned when a record does not have six fields.
type InvalidRecordError struct {
	Record string
	Fields int
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("record %q has %d fields, want 6", e.Record, e.Fields)
}

func (e *InvalidRecordError) Unwrap() error { return ErrInvalidRecord }

type InvalidRankCountError struct {
	Placement string
	Ranks     int
}

func (e *InvalidRankCountError) Error() string {
	return fmt.Sprintf("placement %q has %d ranks, want %d", e.Placement, e.Ranks, BoardSize)
}

func (e *InvalidRankCountError) Unwrap() error { return ErrInvalidRankCount }

// InvalidPlacementError is only produced by strict decoding.
type InvalidPlacementError struct {
	Record string
	Err    error
}

func (e *InvalidPlacementError) Error() string {
	return fmt.Sprintf("record %q rejected: %v", e.Record, e.Err)
}

func (e *InvalidPlacementError) Unwrap() []error { return []error{ErrInvalidPlacement, e.Err} }

type OutOfBoundsError struct {
	File int
	Rank int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("square (%d, %d) is outside the board", e.File, e.Rank)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// UnrecognizedPieceLetterWarning describes a letter the decoder skipped.
// It is logged, never returned from Decode.
type UnrecognizedPieceLetterWarning struct {
	Letter   rune
	Position Position
}

func (w UnrecognizedPieceLetterWarning) Error() string {
	return fmt.Sprintf("unrecognized piece letter %q at (%d, %d)", w.Letter, w.Position.X, w.Position.Y)
}
