package atomic

import (
	"errors"
	"testing"
)

func TestNewGame(t *testing.T) {
	game := NewGame()

	if game.Status() != StatusActive {
		t.Errorf("Expected status %s, got %s", StatusActive, game.Status())
	}
	if game.Turn() != White {
		t.Errorf("Expected white to move, got %s", game.Turn())
	}
	if game.Board().PieceAt(sq("e1")) == nil {
		t.Error("Expected the starting position to be set up")
	}
}

func TestSubmitMovePawnDoubleAdvance(t *testing.T) {
	game := NewGame()

	result, err := game.SubmitMove("e2", "e4")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.From != "e2" || result.To != "e4" {
		t.Errorf("Expected result e2-e4, got %s-%s", result.From, result.To)
	}
	if result.Capture {
		t.Error("Expected no capture")
	}
	if result.GameOver {
		t.Error("Expected game to continue")
	}
	if game.Turn() != Black {
		t.Errorf("Expected black to move after e4, got %s", game.Turn())
	}

	p := game.Board().PieceAt(sq("e4"))
	if p == nil || p.Color != White || p.Kind != Pawn {
		t.Errorf("Expected white pawn on e4, got %v", p)
	}
	if game.Board().PieceAt(sq("e2")) != nil {
		t.Error("Expected e2 to be empty")
	}
}

func TestSubmitMoveInvalidCoordinate(t *testing.T) {
	game := NewGame()

	for _, pair := range [][2]string{{"z9", "e4"}, {"e2", "z9"}, {"e2", ""}} {
		_, err := game.SubmitMove(pair[0], pair[1])
		if !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("SubmitMove(%q, %q) error = %v, expected ErrInvalidCoordinate",
				pair[0], pair[1], err)
		}
	}
	if game.Turn() != White {
		t.Error("Expected turn to be unchanged after rejected input")
	}
}

func TestSubmitMoveRejectsIllegalMove(t *testing.T) {
	game := NewGame()

	tests := []struct {
		name string
		from string
		to   string
	}{
		{"king onto own pawn", "e1", "e2"},
		{"empty source square", "e4", "e5"},
		{"opponent's piece", "e7", "e5"},
		{"blocked rook", "a1", "a5"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := game.SubmitMove(test.from, test.to)
			if !errors.Is(err, ErrIllegalMove) {
				t.Errorf("SubmitMove(%s, %s) error = %v, expected ErrIllegalMove",
					test.from, test.to, err)
			}
			if game.Turn() != White {
				t.Error("Expected turn to be unchanged after a rejected move")
			}
			if game.Status() != StatusActive {
				t.Error("Expected status to be unchanged after a rejected move")
			}
		})
	}
}

func TestTurnAlternatesOnSuccessOnly(t *testing.T) {
	game := NewGame()

	moves := []struct {
		from, to string
		turn     Color // expected side to move after the call
		legal    bool
	}{
		{"e2", "e4", Black, true},
		{"e2", "e4", Black, false}, // white pawn already moved, and it is black's turn
		{"e7", "e5", White, true},
		{"d2", "d3", Black, true},
		{"d3", "d4", Black, false}, // black cannot move white's pawn
		{"b8", "c6", White, true},
	}

	for _, m := range moves {
		_, err := game.SubmitMove(m.from, m.to)
		if m.legal && err != nil {
			t.Fatalf("SubmitMove(%s, %s) unexpected error: %v", m.from, m.to, err)
		}
		if !m.legal && err == nil {
			t.Fatalf("SubmitMove(%s, %s) expected rejection", m.from, m.to)
		}
		if game.Turn() != m.turn {
			t.Errorf("After %s-%s expected %s to move, got %s", m.from, m.to, m.turn, game.Turn())
		}
	}
}

func TestKnightCaptureBlastsKing(t *testing.T) {
	game := NewGame()
	board := game.Board()

	// reduced position: the knight capture on g7 catches the black king on h8
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			board.Clear(Square{File: file, Rank: rank})
		}
	}
	board.Place(sq("a1"), Piece{Color: White, Kind: King})
	board.Place(sq("h8"), Piece{Color: Black, Kind: King})
	board.Place(sq("g7"), Piece{Color: Black, Kind: Bishop})
	board.Place(sq("f5"), Piece{Color: White, Kind: Knight})

	result, err := game.SubmitMove("f5", "g7")
	if err != nil {
		t.Fatalf("Expected the capture to succeed, got %v", err)
	}
	if !result.Capture {
		t.Error("Expected a capture")
	}
	if !result.GameOver {
		t.Error("Expected the game to be over")
	}
	if result.Status != StatusWhiteWon {
		t.Errorf("Expected white_won, got %s", result.Status)
	}
	if game.Status() != StatusWhiteWon {
		t.Errorf("Expected game status white_won, got %s", game.Status())
	}
	if board.PieceAt(sq("h8")) != nil {
		t.Error("Expected the black king to be destroyed by the blast")
	}
	if board.PieceAt(sq("g7")) != nil {
		t.Error("Expected the capture square to be empty")
	}
	if p := board.PieceAt(sq("a1")); p == nil || p.Kind != King {
		t.Error("Expected the white king to survive")
	}
}

func TestSubmitMoveAfterGameOver(t *testing.T) {
	game := NewGame()
	board := game.Board()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			board.Clear(Square{File: file, Rank: rank})
		}
	}
	board.Place(sq("a1"), Piece{Color: White, Kind: King})
	board.Place(sq("h8"), Piece{Color: Black, Kind: King})
	board.Place(sq("g7"), Piece{Color: Black, Kind: Rook})
	board.Place(sq("g1"), Piece{Color: White, Kind: Rook})

	if _, err := game.SubmitMove("g1", "g7"); err != nil {
		t.Fatalf("Expected the winning capture to succeed, got %v", err)
	}
	if game.Status() != StatusWhiteWon {
		t.Fatalf("Expected white_won, got %s", game.Status())
	}

	_, err := game.SubmitMove("h8", "h7")
	if !errors.Is(err, ErrGameFinished) {
		t.Errorf("Expected ErrGameFinished, got %v", err)
	}
}

func TestScriptedGameWithExplosion(t *testing.T) {
	game := NewGame()

	// 1. e4 d5 2. exd5 -- the capturing pawn dies with its target
	for _, m := range [][2]string{{"e2", "e4"}, {"d7", "d5"}} {
		if _, err := game.SubmitMove(m[0], m[1]); err != nil {
			t.Fatalf("SubmitMove(%s, %s) unexpected error: %v", m[0], m[1], err)
		}
	}

	result, err := game.SubmitMove("e4", "d5")
	if err != nil {
		t.Fatalf("Expected the pawn capture to succeed, got %v", err)
	}
	if !result.Capture {
		t.Error("Expected a capture")
	}
	if game.Board().PieceAt(sq("d5")) != nil {
		t.Error("Expected d5 to be empty: the capturing pawn dies too")
	}
	if game.Board().PieceAt(sq("e4")) != nil {
		t.Error("Expected e4 to be empty")
	}
	if game.Status() != StatusActive {
		t.Errorf("Expected the game to continue, got %s", game.Status())
	}
	if game.Turn() != Black {
		t.Errorf("Expected black to move, got %s", game.Turn())
	}
}
