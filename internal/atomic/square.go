package atomic

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate reports malformed algebraic square notation. It is a
// caller error, distinct from an illegal (but well-formed) move.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Square is a zero-based (file, rank) board coordinate. File 0 is the
// a-file, rank 0 is White's back rank.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// ParseSquare converts algebraic notation ("a1" through "h8") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return Square{File: file, Rank: rank}, nil
}

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}

func (s Square) inBounds() bool {
	return s.File >= 0 && s.File <= 7 && s.Rank >= 0 && s.Rank <= 7
}
