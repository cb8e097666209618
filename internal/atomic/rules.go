package atomic

// Per-piece movement rules. Each rule is a pure geometric/occupancy check
// against the current board: it does not consider whose turn it is, who owns
// the source piece, or friendly fire at the destination. Those checks live in
// Board.ValidateMove.

// canMove dispatches to the movement rule for the piece's kind.
func (b *Board) canMove(p Piece, from, to Square) bool {
	switch p.Kind {
	case Pawn:
		return b.pawnCanMove(from, to, p.Color)
	case Knight:
		return knightCanMove(from, to)
	case Bishop:
		return b.bishopCanMove(from, to)
	case Rook:
		return b.rookCanMove(from, to)
	case Queen:
		return b.rookCanMove(from, to) || b.bishopCanMove(from, to)
	case King:
		return b.kingCanMove(from, to)
	}
	return false
}

// pawnCanMove implements the pawn rule. White pawns advance toward higher
// ranks, black pawns toward lower ranks. A straight advance requires an empty
// destination; the two-square advance is only available from the home rank
// and also requires an empty intermediate square. A diagonal step is only
// legal onto an occupied square (that is how pawns capture).
func (b *Board) pawnCanMove(from, to Square, color Color) bool {
	dir := 1
	homeRank := 1
	if color == Black {
		dir = -1
		homeRank = 6
	}

	df := to.File - from.File
	dr := to.Rank - from.Rank

	if df == 0 {
		if b.PieceAt(to) != nil {
			return false
		}
		if dr == dir {
			return true
		}
		if dr == 2*dir && from.Rank == homeRank {
			return b.PieceAt(Square{File: from.File, Rank: from.Rank + dir}) == nil
		}
		return false
	}

	// diagonal capture
	return abs(df) == 1 && dr == dir && b.PieceAt(to) != nil
}

// kingCanMove implements the king rule: one square in any direction, and only
// onto an empty square. Kings can never capture.
func (b *Board) kingCanMove(from, to Square) bool {
	if b.PieceAt(to) != nil {
		return false
	}
	df := abs(to.File - from.File)
	dr := abs(to.Rank - from.Rank)
	return df <= 1 && dr <= 1 && (df != 0 || dr != 0)
}

func knightCanMove(from, to Square) bool {
	df := abs(to.File - from.File)
	dr := abs(to.Rank - from.Rank)
	return (df == 2 && dr == 1) || (df == 1 && dr == 2)
}

func (b *Board) rookCanMove(from, to Square) bool {
	if from.File != to.File && from.Rank != to.Rank {
		return false
	}
	if from == to {
		return false
	}
	return b.pathClear(from, to)
}

func (b *Board) bishopCanMove(from, to Square) bool {
	df := abs(to.File - from.File)
	dr := abs(to.Rank - from.Rank)
	if df != dr || df == 0 {
		return false
	}
	return b.pathClear(from, to)
}

// pathClear walks the straight or diagonal line between from and to,
// exclusive of both endpoints, and reports whether every square is empty.
func (b *Board) pathClear(from, to Square) bool {
	df := sign(to.File - from.File)
	dr := sign(to.Rank - from.Rank)
	sq := Square{File: from.File + df, Rank: from.Rank + dr}
	for sq != to {
		if b.PieceAt(sq) != nil {
			return false
		}
		sq = Square{File: sq.File + df, Rank: sq.Rank + dr}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
