package gloss

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadEAF_WriterOutput(t *testing.T) {
	in := []Utterance{
		{
			Start:         Timecode{Ms: 1000},
			Finish:        Timecode{Ms: 2000},
			Transcription: "men keldim",
			Translation:   Some("I came <home>"),
			Gloss:         Some("i come.pst"),
			Comment:       Some("fast & quiet"),
		},
		{
			Start:         Timecode{Ms: 2500},
			Finish:        Timecode{Ms: 4000},
			Transcription: "bar",
			Translation:   Some("exists"),
			Gloss:         Some("exist"),
		},
	}

	var buf bytes.Buffer
	if err := testEAFWriter().WriteDocument(&buf, in); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	res, err := ReadEAF(&buf)
	if err != nil {
		t.Fatalf("ReadEAF: %v", err)
	}
	if len(res.Utterances) != 2 {
		t.Fatalf("got %d utterances, want 2", len(res.Utterances))
	}

	for i, got := range res.Utterances {
		want := in[i]
		if got.Start.Ms != want.Start.Ms || got.Finish.Ms != want.Finish.Ms {
			t.Errorf("utterance %d times = %d-%d", i, got.Start.Ms, got.Finish.Ms)
		}
		if got.Transcription != want.Transcription || got.Translation != want.Translation || got.Gloss != want.Gloss {
			t.Errorf("utterance %d = %+v, want %+v", i, got, want)
		}
		if got.HasComment() != want.HasComment() || got.Comment.Value != want.Comment.Value {
			t.Errorf("utterance %d comment = %+v", i, got.Comment)
		}
	}
	if res.Utterances[1].Comment.Valid {
		t.Error("expected absent comment to stay invalid")
	}
}

const symbolicEAF = `<?xml version="1.0" encoding="UTF-8"?>
<ANNOTATION_DOCUMENT AUTHOR="" DATE="2021-07-07T18:23:20+12:00" FORMAT="3.0" VERSION="3.0">
    <HEADER MEDIA_FILE="" TIME_UNITS="milliseconds"/>
    <TIME_ORDER>
        <TIME_SLOT TIME_SLOT_ID="ts1" TIME_VALUE="500"/>
        <TIME_SLOT TIME_SLOT_ID="ts2" TIME_VALUE="1500"/>
    </TIME_ORDER>
    <TIER LINGUISTIC_TYPE_REF="default-lt" TIER_ID="transcription">
        <ANNOTATION>
            <ALIGNABLE_ANNOTATION ANNOTATION_ID="a1" TIME_SLOT_REF1="ts1" TIME_SLOT_REF2="ts2">
                <ANNOTATION_VALUE>salem</ANNOTATION_VALUE>
            </ALIGNABLE_ANNOTATION>
        </ANNOTATION>
    </TIER>
    <TIER LINGUISTIC_TYPE_REF="assoc" PARENT_REF="transcription" TIER_ID="translation">
        <ANNOTATION>
            <REF_ANNOTATION ANNOTATION_ID="a2" ANNOTATION_REF="a1">
                <ANNOTATION_VALUE>hello</ANNOTATION_VALUE>
            </REF_ANNOTATION>
        </ANNOTATION>
    </TIER>
    <TIER LINGUISTIC_TYPE_REF="assoc" PARENT_REF="translation" TIER_ID="gloss">
        <ANNOTATION>
            <REF_ANNOTATION ANNOTATION_ID="a3" ANNOTATION_REF="a2">
                <ANNOTATION_VALUE>greeting</ANNOTATION_VALUE>
            </REF_ANNOTATION>
        </ANNOTATION>
    </TIER>
    <TIER LINGUISTIC_TYPE_REF="assoc" TIER_ID="speaker-notes">
        <ANNOTATION>
            <REF_ANNOTATION ANNOTATION_ID="a4" ANNOTATION_REF="a1">
                <ANNOTATION_VALUE>ignored</ANNOTATION_VALUE>
            </REF_ANNOTATION>
        </ANNOTATION>
    </TIER>
</ANNOTATION_DOCUMENT>`

func TestReadEAF_SymbolicAnnotations(t *testing.T) {
	res, err := ReadEAF(strings.NewReader(symbolicEAF))
	if err != nil {
		t.Fatalf("ReadEAF: %v", err)
	}
	if len(res.Utterances) != 1 {
		t.Fatalf("got %d utterances, want 1", len(res.Utterances))
	}
	u := res.Utterances[0]
	if u.Start.Ms != 500 || u.Finish.Ms != 1500 {
		t.Errorf("times = %d-%d", u.Start.Ms, u.Finish.Ms)
	}
	if u.Translation.Value != "hello" || u.Gloss.Value != "greeting" {
		t.Errorf("utterance = %+v", u)
	}
	if u.Comment.Valid {
		t.Errorf("comment = %+v, want absent", u.Comment)
	}
	if res.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", res.Dropped)
	}
}

func TestReadEAF_UnknownSlot(t *testing.T) {
	doc := strings.Replace(symbolicEAF, `TIME_SLOT_REF2="ts2"`, `TIME_SLOT_REF2="ts9"`, 1)
	_, err := ReadEAF(strings.NewReader(doc))
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestReadEAF_NotXML(t *testing.T) {
	if _, err := ReadEAF(strings.NewReader("transcription\t\t0\t1\ta")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestReadEAF_OrphanAnnotationsDropped(t *testing.T) {
	orphan := `    <TIER LINGUISTIC_TYPE_REF="wordtoword" PARENT_REF="transcription" TIER_ID="comment">
        <ANNOTATION>
            <ALIGNABLE_ANNOTATION ANNOTATION_ID="a9" TIME_SLOT_REF1="ts2" TIME_SLOT_REF2="ts1">
                <ANNOTATION_VALUE>no transcription here</ANNOTATION_VALUE>
            </ALIGNABLE_ANNOTATION>
        </ANNOTATION>
    </TIER>
</ANNOTATION_DOCUMENT>`
	doc := strings.Replace(symbolicEAF, "</ANNOTATION_DOCUMENT>", orphan, 1)

	res, err := ReadEAF(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadEAF: %v", err)
	}
	if len(res.Utterances) != 1 || res.Utterances[0].Comment.Valid {
		t.Errorf("utterances = %+v", res.Utterances)
	}
	// One for the unknown tier, one for the orphan comment.
	if res.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", res.Dropped)
	}
}
