package ggchess

import (
	"github.com/notnil/chess"

	"github.com/gogpu/ggchess/glyph"
)

// Position is the board state a Renderer draws. It must not change while a
// render is in progress.
type Position interface {
	// PieceAt returns the occupant of sq, or false if sq is empty.
	PieceAt(sq Square) (glyph.Piece, bool)
}

// fenPosition adapts a notnil/chess board.
type fenPosition struct {
	board *chess.Board
}

// ParseFEN parses a FEN string into a Position. Malformed input yields a
// *PositionError.
func ParseFEN(fen string) (Position, error) {
	pos := &chess.Position{}
	if err := pos.UnmarshalText([]byte(fen)); err != nil {
		return nil, &PositionError{FEN: fen, Err: err}
	}
	return &fenPosition{board: pos.Board()}, nil
}

func (p *fenPosition) PieceAt(sq Square) (glyph.Piece, bool) {
	if !sq.Valid() {
		return glyph.Piece{}, false
	}
	// Square numbering matches chess.Square.
	cp := p.board.Piece(chess.Square(sq))
	if cp == chess.NoPiece {
		return glyph.Piece{}, false
	}
	return pieceOf(cp), true
}

var kindOf = map[chess.PieceType]glyph.Kind{
	chess.King:   glyph.King,
	chess.Queen:  glyph.Queen,
	chess.Rook:   glyph.Rook,
	chess.Bishop: glyph.Bishop,
	chess.Knight: glyph.Knight,
	chess.Pawn:   glyph.Pawn,
}

func pieceOf(cp chess.Piece) glyph.Piece {
	c := glyph.White
	if cp.Color() == chess.Black {
		c = glyph.Black
	}
	return glyph.Piece{Color: c, Kind: kindOf[cp.Type()]}
}
