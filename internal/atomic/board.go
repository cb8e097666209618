package atomic

// Board is the 8x8 grid. Cells are indexed [rank][file], both zero-based,
// with rank 0 being White's back rank. A nil cell is empty.
type Board struct {
	squares [8][8]*Piece
}

// NewBoard returns a board in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range backRank {
		b.squares[0][file] = &Piece{Color: White, Kind: kind}
		b.squares[7][file] = &Piece{Color: Black, Kind: kind}
	}
	for file := 0; file < 8; file++ {
		b.squares[1][file] = &Piece{Color: White, Kind: Pawn}
		b.squares[6][file] = &Piece{Color: Black, Kind: Pawn}
	}
	return b
}

// PieceAt returns the piece occupying sq, or nil if the square is empty or
// out of bounds.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.inBounds() {
		return nil
	}
	return b.squares[sq.Rank][sq.File]
}

// Place puts a piece on a square, replacing whatever was there. Intended for
// setting up positions; normal play goes through ApplyMove.
func (b *Board) Place(sq Square, p Piece) {
	b.squares[sq.Rank][sq.File] = &p
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b.squares[sq.Rank][sq.File] = nil
}

// ValidateMove reports whether moving the piece on from to to is legal for
// color. It checks, in order: a piece of color occupies from, to is in
// bounds and not held by a friendly piece, the piece's own movement rule
// allows the step, and a capture would not blow up both kings at once.
func (b *Board) ValidateMove(from, to Square, color Color) bool {
	if !from.inBounds() || !to.inBounds() {
		return false
	}
	mover := b.PieceAt(from)
	if mover == nil || mover.Color != color {
		return false
	}
	if target := b.PieceAt(to); target != nil && target.Color == color {
		return false
	}
	if !b.canMove(*mover, from, to) {
		return false
	}
	if b.PieceAt(to) != nil && b.blastKillsBothKings(to) {
		return false
	}
	return true
}

// blastKillsBothKings simulates the explosion a capture on to would trigger
// and reports whether both kings sit inside the blast zone. Such a move is
// vetoed: a player may not end the game for both sides at once.
func (b *Board) blastKillsBothKings(to Square) bool {
	deadWhite := false
	deadBlack := false
	for _, sq := range b.blastZone(to) {
		p := b.PieceAt(sq)
		if p == nil || p.Kind != King {
			continue
		}
		if p.Color == White {
			deadWhite = true
		} else {
			deadBlack = true
		}
	}
	return deadWhite && deadBlack
}

// blastZone returns the in-bounds squares of the 3x3 neighborhood centered
// on sq, including sq itself.
func (b *Board) blastZone(sq Square) []Square {
	zone := make([]Square, 0, 9)
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			n := Square{File: sq.File + df, Rank: sq.Rank + dr}
			if n.inBounds() {
				zone = append(zone, n)
			}
		}
	}
	return zone
}

// ApplyMove executes a move that ValidateMove has already accepted. A move
// onto an empty square relocates the piece. A capture clears both the source
// and destination squares, then removes every non-pawn piece in the 3x3
// blast zone around the destination. The capturing piece always dies, pawn
// or not; pawns are only immune as bystanders. The returned slice lists the
// bystander squares cleared by the blast.
func (b *Board) ApplyMove(from, to Square) []Square {
	mover := b.squares[from.Rank][from.File]
	target := b.squares[to.Rank][to.File]

	if target == nil {
		b.squares[to.Rank][to.File] = mover
		b.squares[from.Rank][from.File] = nil
		return nil
	}

	// capture: mover and target both die before the blast
	b.squares[from.Rank][from.File] = nil
	b.squares[to.Rank][to.File] = nil

	var exploded []Square
	for _, sq := range b.blastZone(to) {
		p := b.PieceAt(sq)
		if p == nil || p.Kind == Pawn {
			continue
		}
		b.Clear(sq)
		exploded = append(exploded, sq)
	}
	return exploded
}

// DetectTerminal scans the board for kings. A side with its king gone has
// lost; with both kings standing the game is still active. Both kings
// missing is unreachable when moves go through ValidateMove, and reads as
// active here.
func (b *Board) DetectTerminal() GameStatus {
	whiteKing := false
	blackKing := false
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := b.squares[rank][file]
			if p == nil || p.Kind != King {
				continue
			}
			if p.Color == White {
				whiteKing = true
			} else {
				blackKing = true
			}
		}
	}
	switch {
	case whiteKing && !blackKing:
		return StatusWhiteWon
	case blackKing && !whiteKing:
		return StatusBlackWon
	}
	return StatusActive
}
