package atomic

import (
	"fmt"
	"strings"
)

// Render returns a human-readable dump of the board, rank 8 at the top and
// files a-h labeled. Pieces print as two-letter codes ("wK", "bP"), empty
// squares as underscores. Diagnostic output, not a stable format.
func (b *Board) Render() string {
	var sb strings.Builder
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			p := b.squares[rank][file]
			if p == nil {
				sb.WriteString(" __")
			} else {
				sb.WriteString(" " + p.Code())
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
