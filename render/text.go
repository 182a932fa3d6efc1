package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"quoridor/game"
	"quoridor/meta"
)

const (
	cellWidth = 4
	rowWidth  = cellWidth*(meta.BOARD_SIZE-1) + 1
	gapWidth  = rowWidth + 2
)

// Text draws the board as ASCII art preceded by a legend of the players and
// their remaining walls.
type Text struct{}

func (Text) Render(w io.Writer, s game.Snapshot) error {
	_, err := io.WriteString(w, String(s))
	return err
}

func String(s game.Snapshot) string {
	return Legend(s) + Board(s)
}

func Legend(s game.Snapshot) string {
	width := 0
	for _, p := range s.Players {
		width = max(width, utf8.RuneCountInString(p.Name))
	}

	var b strings.Builder
	b.WriteString("Légende:\n")
	for i, p := range s.Players {
		fmt.Fprintf(&b, "   %d=%-*s murs=%s\n", i+1, width+1, p.Name+",", strings.Repeat("|", p.Walls))
	}
	return b.String()
}

// Board draws the 9x9 grid, top row first. Cell rows alternate with gap rows
// where horizontal walls are drawn.
func Board(s game.Snapshot) string {
	n := meta.BOARD_SIZE
	grid := make([][]byte, 2*n-1)
	for i := range grid {
		if i%2 == 0 {
			grid[i] = []byte(strings.Repeat(" ", rowWidth))
			for j := 0; j < rowWidth; j += cellWidth {
				grid[i][j] = '.'
			}
		} else {
			grid[i] = []byte(strings.Repeat(" ", gapWidth))
		}
	}

	for _, w := range s.Walls.Horizontal {
		row := 2*(n-w.Y) + 1
		if row < 0 || row >= len(grid) {
			continue
		}
		for j := max(0, cellWidth*(w.X-1)); j < min(gapWidth, cellWidth*w.X+3); j++ {
			grid[row][j] = '-'
		}
	}
	for _, w := range s.Walls.Vertical {
		top := 2 * (n - w.Y - 1)
		if top < 0 || top+2 >= len(grid) || w.X < 2 {
			continue
		}
		grid[top][cellWidth*w.X-6] = '|'
		grid[top+1][cellWidth*w.X-5] = '|'
		grid[top+2][cellWidth*w.X-6] = '|'
	}
	for i, p := range s.Players {
		if p.Position.OnBoard() {
			grid[2*(n-p.Position.Y)][cellWidth*(p.Position.X-1)] = byte('1' + i)
		}
	}

	var b strings.Builder
	b.WriteString("   " + strings.Repeat("-", gapWidth) + "\n")
	for i, line := range grid {
		if i%2 == 0 {
			fmt.Fprintf(&b, "%d | %s |\n", n-i/2, line)
		} else {
			fmt.Fprintf(&b, "  |%s|\n", line)
		}
	}
	b.WriteString("--|" + strings.Repeat("-", gapWidth) + "\n")
	columns := make([]string, n)
	for x := range columns {
		columns[x] = strconv.Itoa(x + 1)
	}
	b.WriteString("  | " + strings.Join(columns, "   ") + "\n")
	return b.String()
}
