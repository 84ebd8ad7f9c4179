package gloss

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadTeX extracts every utterance block from a LaTeX document. Blocks are
// located by BlockMarker; the rows follow at fixed offsets:
//
//	marker
//	(one line of table options)
//	transcription row
//	gloss row
//	\enquote{translation} \\
//	start — finish \\
//	[comment \\]
//	\end{tblr}
func ReadTeX(r io.Reader) ([]Utterance, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	var out []Utterance
	for i := 0; i < len(lines); i++ {
		if lines[i] != BlockMarker {
			continue
		}
		u, next, err := parseBlock(lines, i, len(out))
		if err != nil {
			return nil, err
		}
		out = append(out, u)
		i = next
	}
	return out, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// parseBlock reads the block whose marker sits at lines[at] and returns the
// index of its closing line.
func parseBlock(lines []string, at, index int) (Utterance, int, error) {
	fail := func(reason string) (Utterance, int, error) {
		return Utterance{}, 0, &BlockError{Line: at + 1, Index: index, Reason: reason}
	}
	if at+6 >= len(lines) {
		return fail("unexpected end of file")
	}

	transcription, ok := cutRow(lines[at+2])
	if !ok {
		return fail("transcription row has no row terminator")
	}
	gloss, ok := cutRow(lines[at+3])
	if !ok {
		return fail("gloss row has no row terminator")
	}

	translation, ok := cutRow(lines[at+4])
	if ok {
		translation, ok = strings.CutPrefix(translation, enquoteOpen)
	}
	if ok {
		translation, ok = strings.CutSuffix(translation, enquoteClose)
	}
	if !ok {
		return fail("translation is not an \\enquote row")
	}

	caption, ok := cutRow(lines[at+5])
	if !ok {
		return fail("caption row has no row terminator")
	}
	start, finish, err := parseCaption(caption, at+6)
	if err != nil {
		return Utterance{}, 0, err
	}

	end := at + 6
	comment := ""
	if lines[end] != BlockEnd {
		comment, ok = cutRow(lines[end])
		if !ok {
			return fail("comment row has no row terminator")
		}
		end++
		if end >= len(lines) || lines[end] != BlockEnd {
			return fail("missing " + BlockEnd)
		}
	}

	// The gloss row keeps empty cells up to the width of the transcription,
	// so an empty gloss under a word stays under that word.
	trCells := trimPadding(splitRow(transcription), 0)
	glCells := trimPadding(splitRow(gloss), len(trCells))

	u := Utterance{
		Start:         start,
		Finish:        finish,
		Transcription: strings.Join(trCells, " "),
		Translation:   Some(UnescapeTeX(translation)),
		Gloss:         Some(strings.ToLower(strings.Join(glCells, " "))),
		Comment:       Some(UnescapeTeX(comment)),
	}
	return u, end, nil
}

func cutRow(line string) (string, bool) {
	return strings.CutSuffix(line, RowEnd)
}

// splitRow splits a table row into unescaped cells.
func splitRow(row string) []string {
	cells := strings.Split(row, CellSep)
	for i, c := range cells {
		cells[i] = UnescapeTeX(c)
	}
	return cells
}

func parseCaption(caption string, line int) (Timecode, Timecode, error) {
	left, right, ok := strings.Cut(caption, CaptionSep)
	if !ok {
		return Timecode{}, Timecode{}, &TimecodeError{Value: caption, Line: line}
	}
	start, err := ParseTimecode(strings.TrimSpace(left))
	if err != nil {
		return Timecode{}, Timecode{}, &TimecodeError{Value: left, Line: line}
	}
	finish, err := ParseTimecode(strings.TrimSpace(right))
	if err != nil {
		return Timecode{}, Timecode{}, &TimecodeError{Value: right, Line: line}
	}
	return start, finish, nil
}
