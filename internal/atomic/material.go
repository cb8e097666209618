package atomic

// MaterialCount represents the material count for both sides.
type MaterialCount struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// StandardPieceValues maps piece kinds to their standard values.
var StandardPieceValues = map[PieceKind]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   0, // King has no material value
}

// MaterialCount totals the standard piece values left on the board for each
// side. Explosions can swing this sharply, which makes it a handy diagnostic.
func (b *Board) MaterialCount() MaterialCount {
	var count MaterialCount
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := b.squares[rank][file]
			if p == nil {
				continue
			}
			if p.Color == White {
				count.White += StandardPieceValues[p.Kind]
			} else {
				count.Black += StandardPieceValues[p.Kind]
			}
		}
	}
	return count
}

// MaterialBalance returns White's material minus Black's.
func (b *Board) MaterialBalance() int {
	count := b.MaterialCount()
	return count.White - count.Black
}
