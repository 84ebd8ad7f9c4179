package gloss

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	eafFormat     = "3.0"
	eafSchema     = "http://www.mpi.nl/tools/elan/EAFv3.0.xsd"
	xsiNamespace  = "http://www.w3.org/2001/XMLSchema-instance"
	urnPrefix     = "urn:nl-mpi-tools-elan-eaf:"
	defaultLocale = "en"

	typeDefault    = "default-lt"
	typeWordToWord = "wordtoword"
)

// EAFWriter renders utterances as an ELAN annotation document.
type EAFWriter struct {
	Author string
	Media  *MediaDescriptor
	// Date defaults to the time of the call.
	Date time.Time
	// URN defaults to a random one.
	URN string
}

// pending is a span whose annotation identifier is not yet assigned.
type pending struct {
	ref1, ref2, value string
}

// Build converts utterances into a document using a fresh Run, so slot and
// annotation identifiers always start at 1.
func (ew *EAFWriter) Build(utterances []Utterance) *Document {
	run := NewRun()
	spans := make(map[Tier][]pending, len(Tiers))

	for _, u := range utterances {
		withComment := u.HasComment()
		starts, finishes := run.Mint(u.Start.Ms, u.Finish.Ms, withComment)
		values := []string{u.Transcription, u.Translation.Value, u.Gloss.Value}
		if withComment {
			values = append(values, u.Comment.Value)
		}
		for i, v := range values {
			t := Tiers[i]
			spans[t] = append(spans[t], pending{ref1: starts[i], ref2: finishes[i], value: v})
		}
	}

	doc := &Document{
		Author:    ew.Author,
		Date:      ew.date().Format(time.RFC3339),
		Format:    eafFormat,
		Version:   eafFormat,
		XMLNSXsi:  xsiNamespace,
		SchemaLoc: eafSchema,
		Header: Header{
			TimeUnits: "milliseconds",
			Media:     ew.Media,
		},
	}
	for _, ts := range run.TimeSlots() {
		doc.TimeOrder.Slots = append(doc.TimeOrder.Slots, TimeSlotElement{ID: ts.ID, Value: ts.Value})
	}
	for _, t := range Tiers {
		tier := tierElement(t)
		for _, p := range spans[t] {
			tier.Annotations = append(tier.Annotations, AnnotationElement{
				Alignable: &AlignableAnnotation{
					ID:    run.NextAnnotationID(),
					Ref1:  p.ref1,
					Ref2:  p.ref2,
					Value: p.value,
				},
			})
		}
		doc.Tiers = append(doc.Tiers, tier)
	}

	doc.Header.Properties = []Property{
		{Name: "URN", Value: ew.urn()},
		{Name: "lastUsedAnnotationId", Value: strconv.Itoa(run.LastAnnotation())},
	}
	doc.LinguisticTypes = []LinguisticType{
		{ID: typeDefault, TimeAlignable: true},
		{ID: typeWordToWord, Constraints: "Included_In", TimeAlignable: true},
	}
	doc.Locales = []Locale{{LanguageCode: defaultLocale}}
	doc.Constraints = []Constraint{
		{Stereotype: "Time_Subdivision", Description: "Time subdivision of parent annotation's time interval, no time gaps allowed within this interval"},
		{Stereotype: "Symbolic_Subdivision", Description: "Symbolic subdivision of a parent annotation. Annotations refering to the same parent are ordered"},
		{Stereotype: "Symbolic_Association", Description: "1-1 association with a parent annotation"},
		{Stereotype: "Included_In", Description: "Time alignable annotations within the parent annotation's time interval, gaps are allowed"},
	}
	return doc
}

// WriteDocument builds the document and writes it as indented XML.
func (ew *EAFWriter) WriteDocument(w io.Writer, utterances []Utterance) error {
	doc := ew.Build(utterances)
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode eaf: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func tierElement(t Tier) TierElement {
	switch t {
	case TierTranscription:
		return TierElement{ID: string(t), LinguisticType: typeDefault, DefaultLocale: defaultLocale}
	case TierComment:
		return TierElement{ID: string(t), LinguisticType: typeWordToWord, ParentRef: string(TierTranscription)}
	default:
		return TierElement{ID: string(t), LinguisticType: typeWordToWord, ParentRef: string(TierTranscription), DefaultLocale: defaultLocale}
	}
}

func (ew *EAFWriter) date() time.Time {
	if ew.Date.IsZero() {
		return time.Now()
	}
	return ew.Date
}

func (ew *EAFWriter) urn() string {
	if ew.URN != "" {
		return ew.URN
	}
	return urnPrefix + uuid.NewString()
}
