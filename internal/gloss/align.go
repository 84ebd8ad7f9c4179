package gloss

import "strings"

// Tokens splits s on single spaces. Two adjacent spaces yield an empty
// token, which keeps its column: an empty gloss is a real gloss.
func Tokens(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, " ")
}

// Align pairs transcription words with gloss words column by column. The
// shorter side is padded on the right; nothing is ever dropped. Two empty
// inputs still give one column, since a table cannot have zero.
func Align(transcription, gloss []string) (tr, gl []Cell) {
	width := max(len(transcription), len(gloss), 1)
	return padCells(transcription, width), padCells(gloss, width)
}

func padCells(tokens []string, width int) []Cell {
	cells := make([]Cell, width)
	for i := range cells {
		if i < len(tokens) {
			cells[i] = Cell{Text: tokens[i]}
		} else {
			cells[i] = Cell{Pad: true}
		}
	}
	return cells
}

// trimPadding drops trailing empty cells past the first keep columns. Those
// are the right padding Align adds; empty cells inside the kept range are
// genuine empty tokens.
func trimPadding(cells []string, keep int) []string {
	end := len(cells)
	for end > keep && cells[end-1] == "" {
		end--
	}
	return cells[:end]
}
