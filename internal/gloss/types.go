package gloss

// Tier names one channel of time-aligned annotation.
type Tier string

const (
	TierTranscription Tier = "transcription"
	TierTranslation   Tier = "translation"
	TierGloss         Tier = "gloss"
	TierComment       Tier = "comment"
)

// Tiers lists every tier in emission order.
var Tiers = []Tier{TierTranscription, TierTranslation, TierGloss, TierComment}

// Timecode is a point in the recording. Raw keeps the clock string as it was
// read so it can be written back unchanged.
type Timecode struct {
	Raw string
	Ms  int64
}

// Text is a tier value that may be missing for an utterance.
type Text struct {
	Value string
	Valid bool
}

// Some returns a present Text.
func Some(s string) Text {
	return Text{Value: s, Valid: true}
}

// Utterance is one time-bounded unit of transcribed speech.
type Utterance struct {
	Start         Timecode
	Finish        Timecode
	Transcription string
	Translation   Text
	Gloss         Text
	Comment       Text
}

// HasComment reports whether a comment tier span should be emitted.
func (u Utterance) HasComment() bool {
	return u.Comment.Valid && u.Comment.Value != ""
}

// TimeSlot binds an identifier to a millisecond value.
type TimeSlot struct {
	ID    string
	Value int64
}

// Span is one tier's content for one utterance.
type Span struct {
	ID    string
	Ref1  string
	Ref2  string
	Tier  Tier
	Value string
}

// Cell is one column of an aligned table row. Pad marks cells added by Align,
// as opposed to an empty token observed in the source.
type Cell struct {
	Text string
	Pad  bool
}
