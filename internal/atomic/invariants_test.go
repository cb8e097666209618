package atomic

import "testing"

// TestEmptySquaresNeverMove ensures a move from any unoccupied square is
// rejected regardless of destination.
func TestEmptySquaresNeverMove(t *testing.T) {
	board := NewBoard()

	destinations := []string{"a1", "d4", "e5", "h8", "c7"}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			from := Square{File: file, Rank: rank}
			if board.PieceAt(from) != nil {
				continue
			}
			for _, d := range destinations {
				for _, color := range []Color{White, Black} {
					if board.ValidateMove(from, sq(d), color) {
						t.Errorf("ValidateMove(%s, %s, %s) = true for an empty source",
							from, d, color)
					}
				}
			}
		}
	}
}

// TestBlastZoneClearedAfterCapture ensures that after any capture the
// destination and its 8 neighbors hold no non-pawn piece and the source
// square is empty.
func TestBlastZoneClearedAfterCapture(t *testing.T) {
	game := NewGame()

	// 1. Nc3 d5 2. Nxd5: a knight capture in a crowded opening position
	moves := [][2]string{{"b1", "c3"}, {"d7", "d5"}, {"c3", "d5"}}
	var result *MoveResult
	for _, m := range moves {
		var err error
		result, err = game.SubmitMove(m[0], m[1])
		if err != nil {
			t.Fatalf("SubmitMove(%s, %s) unexpected error: %v", m[0], m[1], err)
		}
	}
	if !result.Capture {
		t.Fatal("Expected the final move to be a capture")
	}

	board := game.Board()
	if board.PieceAt(sq("c3")) != nil {
		t.Error("Expected the source square c3 to be empty")
	}
	center := sq("d5")
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			n := Square{File: center.File + df, Rank: center.Rank + dr}
			if !n.inBounds() {
				continue
			}
			p := board.PieceAt(n)
			if p != nil && p.Kind != Pawn {
				t.Errorf("Expected no non-pawn piece in the blast zone, found %v on %s", *p, n)
			}
		}
	}
}

// TestPawnsOnlySurviveAsBystanders ensures pawns inside a blast zone persist
// while a pawn that is itself captured does not.
func TestPawnsOnlySurviveAsBystanders(t *testing.T) {
	board := &Board{}
	board.Place(sq("d5"), Piece{Color: Black, Kind: Pawn})   // captured: dies
	board.Place(sq("c6"), Piece{Color: Black, Kind: Pawn})   // bystander: survives
	board.Place(sq("e6"), Piece{Color: Black, Kind: Pawn})   // bystander: survives
	board.Place(sq("d4"), Piece{Color: White, Kind: Pawn})   // bystander: survives
	board.Place(sq("h1"), Piece{Color: White, Kind: Queen})

	board.ApplyMove(sq("h1"), sq("d5"))

	if board.PieceAt(sq("d5")) != nil {
		t.Error("Expected the captured pawn to be removed")
	}
	for _, s := range []string{"c6", "e6", "d4"} {
		if p := board.PieceAt(sq(s)); p == nil || p.Kind != Pawn {
			t.Errorf("Expected the bystander pawn on %s to survive", s)
		}
	}
	if board.PieceAt(sq("h1")) != nil {
		t.Error("Expected the capturing queen to be destroyed")
	}
}

// TestRejectedMovesLeaveBoardUntouched replays every rejection path and
// verifies the position is identical before and after.
func TestRejectedMovesLeaveBoardUntouched(t *testing.T) {
	game := NewGame()
	before := game.Render()

	attempts := [][2]string{
		{"e4", "e5"}, // empty source
		{"e7", "e5"}, // opponent's piece
		{"e1", "e2"}, // own piece on destination
		{"a1", "a5"}, // blocked rook
		{"b1", "b3"}, // knight moving like a pawn
	}
	for _, m := range attempts {
		if _, err := game.SubmitMove(m[0], m[1]); err == nil {
			t.Fatalf("SubmitMove(%s, %s) expected rejection", m[0], m[1])
		}
	}

	if after := game.Render(); after != before {
		t.Errorf("Board changed after rejected moves:\nbefore:\n%s\nafter:\n%s", before, after)
	}
	if game.Turn() != White {
		t.Error("Expected white to still be on the move")
	}
	if game.Status() != StatusActive {
		t.Error("Expected the game to still be active")
	}
}
