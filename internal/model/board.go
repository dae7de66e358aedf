package model

import "fmt"

const BoardSize = 8

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Letter returns the uppercase notation letter for the piece type.
func (p PieceType) Letter() rune {
	switch p {
	case King:
		return 'K'
	case Queen:
		return 'Q'
	case Rook:
		return 'R'
	case Bishop:
		return 'B'
	case Knight:
		return 'N'
	case Pawn:
		return 'P'
	}
	return 0
}

type Side string

const (
	SideWhite Side = "white"
	SideBlack Side = "black"
)

type Piece struct {
	Type PieceType `json:"type"`
	Side Side      `json:"side"`
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Side, p.Type)
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Notation renders the position in algebraic form. Row 0 is the first rank
// string of a record, which notation calls rank 8.
func (p Position) Notation() string {
	return fmt.Sprintf("%c%d", p.X+'a', BoardSize-p.Y)
}

// ParseSquare is the inverse of Position.Notation.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("invalid square %q", s)
	}
	return Position{X: int(s[0] - 'a'), Y: BoardSize - int(s[1]-'0')}, nil
}

type Square struct {
	Position Position `json:"position"`
	Piece    *Piece   `json:"piece"`
}

// Board is a fixed 8x8 grid indexed by [file][rank].
type Board struct {
	grid [BoardSize][BoardSize]Square
}

func NewBoard() *Board {
	b := &Board{}
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			b.grid[x][y] = Square{Position: Position{X: x, Y: y}}
		}
	}
	return b
}

// PlacePiece puts a copy of piece on the square, replacing any occupant.
func (b *Board) PlacePiece(file, rank int, piece Piece) error {
	sq, err := b.square(file, rank)
	if err != nil {
		return err
	}
	sq.Piece = &piece
	return nil
}

// PieceAt returns the occupant of the square, nil when it is empty.
func (b *Board) PieceAt(file, rank int) (*Piece, error) {
	sq, err := b.square(file, rank)
	if err != nil {
		return nil, err
	}
	return sq.Piece, nil
}

func (b *Board) RemovePiece(file, rank int) error {
	sq, err := b.square(file, rank)
	if err != nil {
		return err
	}
	sq.Piece = nil
	return nil
}

func (b *Board) Count() int {
	n := 0
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b.grid[x][y].Piece != nil {
				n++
			}
		}
	}
	return n
}

// Squares returns a snapshot of all 64 squares, file by file.
func (b *Board) Squares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			squares = append(squares, b.grid[x][y])
		}
	}
	return squares
}

func (b *Board) square(file, rank int) (*Square, error) {
	pos := Position{X: file, Y: rank}
	if !pos.InBounds() {
		return nil, &OutOfBoundsError{File: file, Rank: rank}
	}
	return &b.grid[file][rank], nil
}
