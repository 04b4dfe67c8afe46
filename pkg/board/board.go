// Package board models the 4x4 letter grid a game is played on.
//
// Cells hold single lowercase markers. The marker 'q' stands for the "qu"
// die face: it occupies one cell but contributes both letters to any word
// passing through it. Input strings spell that die as "qu", so a board
// containing it arrives one raw character longer than its sixteen cells.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the board edge length.
const Size = 4

// Cells is the number of dice on a board.
const Cells = Size * Size

// ErrInvalid is wrapped by every board parsing failure.
var ErrInvalid = errors.New("invalid board")

// Board is a parsed grid. The zero value is not usable; construct through
// Parse or Shake.
type Board struct {
	cells [Size][Size]byte
}

// Parse builds a Board from its row-major letter string. Input is folded to
// lowercase and every literal "qu" collapses onto one cell before the grid
// is filled, so exactly sixteen cells must remain afterwards.
func Parse(input string) (*Board, error) {
	folded := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(input)), "qu", "q")
	if len(folded) != Cells {
		return nil, fmt.Errorf("%w: %d cells after folding qu, want %d", ErrInvalid, len(folded), Cells)
	}

	var b Board
	for i := 0; i < Cells; i++ {
		c := folded[i]
		if c < 'a' || c > 'z' {
			return nil, fmt.Errorf("%w: cell %d is %q, want a-z", ErrInvalid, i, folded[i:i+1])
		}
		b.cells[i/Size][i%Size] = c
	}
	return &b, nil
}

// In reports whether column x, row y lies on the board.
func In(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// Letter returns the cell marker at column x, row y, or 0 when the
// coordinates fall off the board.
func (b *Board) Letter(x, y int) byte {
	if !In(x, y) {
		return 0
	}
	return b.cells[y][x]
}

// Cell returns the letters the cell contributes to a word: "qu" for the qu
// die, otherwise its single letter. Off-board coordinates yield "".
func (b *Board) Cell(x, y int) string {
	switch c := b.Letter(x, y); c {
	case 0:
		return ""
	case 'q':
		return "qu"
	default:
		return string(c)
	}
}

// Letters returns the sixteen cell markers row-major, with the qu die as a
// bare 'q'. Stable per board, which makes it a good cache key.
func (b *Board) Letters() string {
	var sb strings.Builder
	sb.Grow(Cells)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sb.WriteByte(b.cells[y][x])
		}
	}
	return sb.String()
}

// Raw returns the board as the flat input string Parse accepts, spelling
// the qu die as its two-letter face. Parse(b.Raw()) reproduces b.
func (b *Board) Raw() string {
	var sb strings.Builder
	sb.Grow(Cells + 1)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sb.WriteString(b.Cell(x, y))
		}
	}
	return sb.String()
}

// String renders the four rows on separate lines, qu spelled out.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Size; x++ {
			sb.WriteString(b.Cell(x, y))
		}
	}
	return sb.String()
}

// Rows returns the four display rows, qu spelled out.
func (b *Board) Rows() []string {
	return strings.Split(b.String(), "\n")
}
