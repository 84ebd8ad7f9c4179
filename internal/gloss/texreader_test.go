package gloss

import (
	"errors"
	"strings"
	"testing"
)

const sampleTeX = `\documentclass[a4paper,12pt]{article}
\begin{document}
\renewcommand{\columncnt}{3}
\subsection*{}
\begin{tblr}{
cell{5}{1} = {c=\columncnt}{l}
}
men & kel & di \\
I.NOM & COME & PST \\
\enquote{I came \{here\}} \\
00:00:01.250 — 00:00:03.000 \\
\end{tblr}

\renewcommand{\columncnt}{2}
\subsection*{}
\begin{tblr}{
cell{5}{1} = {c=\columncnt}{l}
}
bar & jok \\
exist & NEG \\
\enquote{there is none} \\
00:00:04.000 — 00:00:05.500 \\
speaker laughs, 50\% audible \\
\end{tblr}

\end{document}`

func TestReadTeX(t *testing.T) {
	utts, err := ReadTeX(strings.NewReader(sampleTeX))
	if err != nil {
		t.Fatalf("ReadTeX: %v", err)
	}
	if len(utts) != 2 {
		t.Fatalf("got %d utterances, want 2", len(utts))
	}

	u := utts[0]
	if u.Start.Ms != 1250 || u.Finish.Ms != 3000 {
		t.Errorf("times = %d-%d, want 1250-3000", u.Start.Ms, u.Finish.Ms)
	}
	if u.Start.Raw != "00:00:01.250" || u.Finish.Raw != "00:00:03.000" {
		t.Errorf("raw times = %q-%q", u.Start.Raw, u.Finish.Raw)
	}
	if u.Transcription != "men kel di" {
		t.Errorf("transcription = %q", u.Transcription)
	}
	if u.Gloss.Value != "i.nom come pst" {
		t.Errorf("gloss = %q, want lowercased", u.Gloss.Value)
	}
	if u.Translation.Value != "I came {here}" {
		t.Errorf("translation = %q", u.Translation.Value)
	}
	if u.HasComment() {
		t.Errorf("unexpected comment %q", u.Comment.Value)
	}

	u = utts[1]
	if u.Comment.Value != "speaker laughs, 50% audible" {
		t.Errorf("comment = %q", u.Comment.Value)
	}
	if u.Start.Ms != 4000 || u.Finish.Ms != 5500 {
		t.Errorf("times = %d-%d", u.Start.Ms, u.Finish.Ms)
	}
}

func TestReadTeX_NoBlocks(t *testing.T) {
	utts, err := ReadTeX(strings.NewReader("\\begin{document}\n\\end{document}\n"))
	if err != nil {
		t.Fatalf("ReadTeX: %v", err)
	}
	if len(utts) != 0 {
		t.Errorf("got %d utterances, want 0", len(utts))
	}
}

func TestReadTeX_KeepsGlossColumnsUnderWords(t *testing.T) {
	doc := BlockMarker + "\n}\n" +
		"a & b & c \\\\\n" +
		"x &  &  \\\\\n" +
		"\\enquote{t} \\\\\n" +
		"00:00:00.000 — 00:00:01.000 \\\\\n" +
		"\\end{tblr}\n"

	utts, err := ReadTeX(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadTeX: %v", err)
	}
	if utts[0].Transcription != "a b c" {
		t.Errorf("transcription = %q", utts[0].Transcription)
	}
	if utts[0].Gloss.Value != "x  " {
		t.Errorf("gloss = %q, want empty glosses kept under their words", utts[0].Gloss.Value)
	}
}

func TestReadTeX_PaddingPastTranscriptionDropped(t *testing.T) {
	doc := BlockMarker + "\n}\n" +
		"a &  &  \\\\\n" +
		"x &  & z \\\\\n" +
		"\\enquote{t} \\\\\n" +
		"00:00:00.000 — 00:00:01.000 \\\\\n" +
		"\\end{tblr}\n"

	utts, err := ReadTeX(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadTeX: %v", err)
	}
	if utts[0].Transcription != "a" {
		t.Errorf("transcription = %q, want padding dropped", utts[0].Transcription)
	}
	if utts[0].Gloss.Value != "x  z" {
		t.Errorf("gloss = %q, want inner empty cell kept", utts[0].Gloss.Value)
	}
}

func TestReadTeX_TruncatedBlock(t *testing.T) {
	doc := "intro\n" + BlockMarker + "\n}\na \\\\\nx \\\\\n"

	_, err := ReadTeX(strings.NewReader(doc))
	if !errors.Is(err, ErrMalformedBlock) {
		t.Fatalf("expected ErrMalformedBlock, got %v", err)
	}
	var be *BlockError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BlockError, got %T", err)
	}
	if be.Line != 2 || be.Index != 0 {
		t.Errorf("BlockError line=%d index=%d, want 2 and 0", be.Line, be.Index)
	}
}

func TestReadTeX_MissingEndAfterComment(t *testing.T) {
	doc := BlockMarker + "\n}\n" +
		"a \\\\\n" +
		"x \\\\\n" +
		"\\enquote{t} \\\\\n" +
		"00:00:00.000 — 00:00:01.000 \\\\\n" +
		"comment \\\\\n" +
		"something else\n"

	_, err := ReadTeX(strings.NewReader(doc))
	if !errors.Is(err, ErrMalformedBlock) {
		t.Fatalf("expected ErrMalformedBlock, got %v", err)
	}
}

func TestReadTeX_BadTranslation(t *testing.T) {
	doc := BlockMarker + "\n}\n" +
		"a \\\\\n" +
		"x \\\\\n" +
		"\"t\" \\\\\n" +
		"00:00:00.000 — 00:00:01.000 \\\\\n" +
		"\\end{tblr}\n"

	_, err := ReadTeX(strings.NewReader(doc))
	if !errors.Is(err, ErrMalformedBlock) {
		t.Fatalf("expected ErrMalformedBlock, got %v", err)
	}
}

func TestReadTeX_MalformedCaption(t *testing.T) {
	doc := BlockMarker + "\n}\n" +
		"a \\\\\n" +
		"x \\\\\n" +
		"\\enquote{t} \\\\\n" +
		"00:00:00 — 00:00:01.000 \\\\\n" +
		"\\end{tblr}\n"

	_, err := ReadTeX(strings.NewReader(doc))
	if !errors.Is(err, ErrMalformedTimecode) {
		t.Fatalf("expected ErrMalformedTimecode, got %v", err)
	}
	var te *TimecodeError
	if errors.As(err, &te) && (te.Value != "00:00:00" || te.Line != 6) {
		t.Errorf("TimecodeError = %+v", te)
	}
}

func TestReadTeX_CRLF(t *testing.T) {
	doc := strings.ReplaceAll(sampleTeX, "\n", "\r\n")
	utts, err := ReadTeX(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadTeX: %v", err)
	}
	if len(utts) != 2 {
		t.Errorf("got %d utterances, want 2", len(utts))
	}
}
