package atomic

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceKind string

const (
	Pawn   PieceKind = "pawn"
	Knight PieceKind = "knight"
	Bishop PieceKind = "bishop"
	Rook   PieceKind = "rook"
	Queen  PieceKind = "queen"
	King   PieceKind = "king"
)

func (k PieceKind) letter() string {
	switch k {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return "?"
}

// Piece is a (color, kind) value. Pieces carry no position or move
// history; movement legality is computed against the board at call time.
type Piece struct {
	Color Color     `json:"color"`
	Kind  PieceKind `json:"kind"`
}

// Code returns the two-letter board code for the piece, e.g. "wK" or "bP".
func (p Piece) Code() string {
	if p.Color == White {
		return "w" + p.Kind.letter()
	}
	return "b" + p.Kind.letter()
}

type GameStatus string

const (
	StatusActive   GameStatus = "active"
	StatusWhiteWon GameStatus = "white_won"
	StatusBlackWon GameStatus = "black_won"
)

// MoveResult describes the outcome of an accepted move.
type MoveResult struct {
	From     string     `json:"from"`
	To       string     `json:"to"`
	Capture  bool       `json:"capture"`
	Exploded []string   `json:"exploded,omitempty"`
	Status   GameStatus `json:"status"`
	GameOver bool       `json:"gameOver"`
}
