package gloss

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// TeXWriter renders utterances as a LaTeX document. Preamble is written once
// at the top; Subsection opens every table and must end with BlockMarker
// followed by one more line of table options.
type TeXWriter struct {
	Preamble   string
	Subsection string
}

// WriteDocument writes the preamble, one table per utterance in order, and
// the closing \end{document}.
func (tw *TeXWriter) WriteDocument(w io.Writer, utterances []Utterance) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(tw.Preamble)
	for _, u := range utterances {
		tw.writeBlock(bw, u)
	}
	bw.WriteString(DocumentEnd)
	return bw.Flush()
}

func (tw *TeXWriter) writeBlock(bw *bufio.Writer, u Utterance) {
	u.Transcription = singleLine(u.Transcription, "transcription", u)
	u.Gloss.Value = singleLine(u.Gloss.Value, "gloss", u)
	u.Translation.Value = singleLine(u.Translation.Value, "translation", u)
	u.Comment.Value = singleLine(u.Comment.Value, "comment", u)

	tr, gl := Align(Tokens(u.Transcription), Tokens(u.Gloss.Value))

	fmt.Fprintf(bw, columnCountFn+"\n", len(tr))
	bw.WriteString(tw.Subsection)
	bw.WriteString(formatRow(tr) + RowEnd + "\n")
	bw.WriteString(formatRow(gl) + RowEnd + "\n")
	bw.WriteString(enquoteOpen + EscapeTeX(u.Translation.Value) + enquoteClose + RowEnd + "\n")
	bw.WriteString(u.Start.clock() + CaptionSep + u.Finish.clock() + RowEnd + "\n")
	if u.HasComment() {
		bw.WriteString(EscapeTeX(u.Comment.Value) + RowEnd + "\n")
	}
	bw.WriteString(BlockEnd + "\n\n")
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// singleLine replaces line breaks with spaces. Every table row is one line.
func singleLine(s, tier string, u Utterance) string {
	out := lineBreaks.Replace(s)
	if out != s {
		slog.Debug("joined multi-line annotation", "tier", tier, "start", u.Start.clock())
	}
	return out
}

func formatRow(cells []Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		if c.Pad {
			continue
		}
		parts[i] = EscapeTeX(c.Text)
	}
	return strings.Join(parts, CellSep)
}
