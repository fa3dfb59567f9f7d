package glyph

// Color is the side a piece belongs to.
type Color uint8

// Piece colors.
const (
	White Color = iota
	Black
)

// String returns "white" or "black".
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// prefix is the color discriminator of a token.
func (c Color) prefix() byte {
	if c == Black {
		return 'b'
	}
	return 'w'
}

// Kind is the type of a piece, independent of its color.
type Kind uint8

// Piece kinds. The zero value is not a valid kind.
const (
	King Kind = iota + 1
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var kindLetters = [...]byte{0, 'K', 'Q', 'R', 'B', 'N', 'P'}

// Letter returns the uppercase letter of the kind ('K', 'Q', 'R', 'B', 'N',
// 'P'), or 0 for an invalid kind.
func (k Kind) Letter() byte {
	if int(k) >= len(kindLetters) {
		return 0
	}
	return kindLetters[k]
}

// Piece identifies one of the 12 glyphs of a theme.
type Piece struct {
	Color Color
	Kind  Kind
}

// Valid reports whether p names one of the 12 glyphs.
func (p Piece) Valid() bool {
	return (p.Color == White || p.Color == Black) && p.Kind.Letter() != 0
}

// Token returns the identity token of the piece: "w" or "b" followed by the
// uppercase kind letter. The token is the file name stem of both the vector
// source and the cached raster.
func (p Piece) Token() string {
	return string([]byte{p.Color.prefix(), p.Kind.Letter()})
}

// String returns the token of the piece.
func (p Piece) String() string {
	if !p.Valid() {
		return "invalid"
	}
	return p.Token()
}

// AllPieces returns the 12 piece identities, white first.
func AllPieces() []Piece {
	pieces := make([]Piece, 0, 12)
	for _, c := range []Color{White, Black} {
		for k := King; k <= Pawn; k++ {
			pieces = append(pieces, Piece{Color: c, Kind: k})
		}
	}
	return pieces
}
