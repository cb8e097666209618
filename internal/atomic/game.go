package atomic

import (
	"errors"
	"fmt"
)

// ErrIllegalMove reports a well-formed move the rules reject. The game state
// is unchanged.
var ErrIllegalMove = errors.New("illegal move")

// ErrGameFinished reports a move submitted after the game has been decided.
var ErrGameFinished = errors.New("game already finished")

// Game holds a single match: the board, whose turn it is, and the status.
// White moves first. A Game is not safe for concurrent use; callers that
// share one must serialize access.
type Game struct {
	board  *Board
	turn   Color
	status GameStatus
}

// NewGame starts a match from the standard position with White to move.
func NewGame() *Game {
	return &Game{
		board:  NewBoard(),
		turn:   White,
		status: StatusActive,
	}
}

// SubmitMove is the single entry point for playing. Squares are algebraic
// ("e2", "e4"); malformed notation returns ErrInvalidCoordinate. A rejected
// move returns ErrIllegalMove (or ErrGameFinished) and leaves the game
// untouched. On success the move is applied, the status updated, and the
// turn flipped.
func (g *Game) SubmitMove(from, to string) (*MoveResult, error) {
	src, err := ParseSquare(from)
	if err != nil {
		return nil, err
	}
	dst, err := ParseSquare(to)
	if err != nil {
		return nil, err
	}

	if g.status != StatusActive {
		return nil, ErrGameFinished
	}
	if !g.board.ValidateMove(src, dst, g.turn) {
		return nil, fmt.Errorf("%w: %s to %s", ErrIllegalMove, from, to)
	}

	capture := g.board.PieceAt(dst) != nil
	cleared := g.board.ApplyMove(src, dst)
	g.status = g.board.DetectTerminal()
	g.turn = g.turn.Opponent()

	result := &MoveResult{
		From:     from,
		To:       to,
		Capture:  capture,
		Status:   g.status,
		GameOver: g.status != StatusActive,
	}
	for _, sq := range cleared {
		result.Exploded = append(result.Exploded, sq.String())
	}
	return result, nil
}

// Status returns the game status: active, white_won, or black_won.
func (g *Game) Status() GameStatus {
	return g.status
}

// Turn returns the color to move.
func (g *Game) Turn() Color {
	return g.turn
}

// Board exposes the underlying board for rendering and inspection.
func (g *Game) Board() *Board {
	return g.board
}

// Render returns the diagnostic text dump of the current position.
func (g *Game) Render() string {
	return g.board.Render()
}
