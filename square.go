package ggchess

import "fmt"

// Square is a board square. Its value is rank*8 + file, so A1 is 0 and H8
// is 63, the same numbering as github.com/notnil/chess.
type Square int8

// NoSquare is the invalid square.
const NoSquare Square = -1

// Board squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

// NewSquare returns the square on file (0 = a) and rank (0 = 1), or
// NoSquare if either is outside [0, 8).
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// SquareAt maps an image cell to a square. Column 0 is file a and row 0,
// the top of the image, is rank 8.
func SquareAt(col, row int) Square {
	return NewSquare(col, 7-row)
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= A1 && s <= H8
}

// File returns the file index, 0 for a through 7 for h.
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the rank index, 0 for rank 1 through 7 for rank 8.
func (s Square) Rank() int {
	return int(s) / 8
}

// Cell returns the image column and row the square is drawn in.
func (s Square) Cell() (col, row int) {
	return s.File(), 7 - s.Rank()
}

// String returns the algebraic name of the square, such as "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{fileNames[s.File()], rankNames[s.Rank()]})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return NoSquare, fmt.Errorf("ggchess: invalid square %q", name)
	}
	return NewSquare(int(name[0]-'a'), int(name[1]-'1')), nil
}

// Parity is the light/dark class of a cell.
type Parity int

// Cell parities.
const (
	Light Parity = 0
	Dark  Parity = 1
)

// CellParity returns (col+row) mod 2. Fill, highlight and label colors are
// all selected by this value.
func CellParity(col, row int) Parity {
	return Parity((col + row) % 2)
}

// String returns "light" or "dark".
func (p Parity) String() string {
	if p == Dark {
		return "dark"
	}
	return "light"
}
