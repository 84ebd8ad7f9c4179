package gloss

import "encoding/xml"

// Document mirrors the subset of the EAF 3.0 schema that the converter reads
// and writes.
type Document struct {
	XMLName   xml.Name `xml:"ANNOTATION_DOCUMENT"`
	Author    string   `xml:"AUTHOR,attr"`
	Date      string   `xml:"DATE,attr"`
	Format    string   `xml:"FORMAT,attr"`
	Version   string   `xml:"VERSION,attr"`
	XMLNSXsi  string   `xml:"xmlns:xsi,attr,omitempty"`
	SchemaLoc string   `xml:"xsi:noNamespaceSchemaLocation,attr,omitempty"`

	Header          Header           `xml:"HEADER"`
	TimeOrder       TimeOrder        `xml:"TIME_ORDER"`
	Tiers           []TierElement    `xml:"TIER"`
	LinguisticTypes []LinguisticType `xml:"LINGUISTIC_TYPE"`
	Locales         []Locale         `xml:"LOCALE"`
	Constraints     []Constraint     `xml:"CONSTRAINT"`
}

type Header struct {
	MediaFile  string           `xml:"MEDIA_FILE,attr"`
	TimeUnits  string           `xml:"TIME_UNITS,attr"`
	Media      *MediaDescriptor `xml:"MEDIA_DESCRIPTOR,omitempty"`
	Properties []Property       `xml:"PROPERTY"`
}

// MediaDescriptor points an annotation document at its recording.
type MediaDescriptor struct {
	URL         string `xml:"MEDIA_URL,attr"`
	MIMEType    string `xml:"MIME_TYPE,attr"`
	RelativeURL string `xml:"RELATIVE_MEDIA_URL,attr,omitempty"`
}

type Property struct {
	Name  string `xml:"NAME,attr"`
	Value string `xml:",chardata"`
}

type TimeOrder struct {
	Slots []TimeSlotElement `xml:"TIME_SLOT"`
}

type TimeSlotElement struct {
	ID    string `xml:"TIME_SLOT_ID,attr"`
	Value int64  `xml:"TIME_VALUE,attr"`
}

type TierElement struct {
	DefaultLocale  string              `xml:"DEFAULT_LOCALE,attr,omitempty"`
	LinguisticType string              `xml:"LINGUISTIC_TYPE_REF,attr"`
	ParentRef      string              `xml:"PARENT_REF,attr,omitempty"`
	ID             string              `xml:"TIER_ID,attr"`
	Annotations    []AnnotationElement `xml:"ANNOTATION"`
}

type AnnotationElement struct {
	Alignable *AlignableAnnotation `xml:"ALIGNABLE_ANNOTATION,omitempty"`
	Ref       *RefAnnotation       `xml:"REF_ANNOTATION,omitempty"`
}

type AlignableAnnotation struct {
	ID    string `xml:"ANNOTATION_ID,attr"`
	Ref1  string `xml:"TIME_SLOT_REF1,attr"`
	Ref2  string `xml:"TIME_SLOT_REF2,attr"`
	Value string `xml:"ANNOTATION_VALUE"`
}

// RefAnnotation is a symbolic annotation that takes its time interval from
// the annotation it refers to.
type RefAnnotation struct {
	ID    string `xml:"ANNOTATION_ID,attr"`
	Ref   string `xml:"ANNOTATION_REF,attr"`
	Value string `xml:"ANNOTATION_VALUE"`
}

type LinguisticType struct {
	Constraints       string `xml:"CONSTRAINTS,attr,omitempty"`
	GraphicReferences bool   `xml:"GRAPHIC_REFERENCES,attr"`
	ID                string `xml:"LINGUISTIC_TYPE_ID,attr"`
	TimeAlignable     bool   `xml:"TIME_ALIGNABLE,attr"`
}

type Locale struct {
	LanguageCode string `xml:"LANGUAGE_CODE,attr"`
}

type Constraint struct {
	Description string `xml:"DESCRIPTION,attr"`
	Stereotype  string `xml:"STEREOTYPE,attr"`
}

// Spans flattens the time-aligned annotations of every tier in document
// order.
func (d *Document) Spans() []Span {
	var out []Span
	for _, t := range d.Tiers {
		for _, a := range t.Annotations {
			if a.Alignable == nil {
				continue
			}
			out = append(out, Span{
				ID:    a.Alignable.ID,
				Ref1:  a.Alignable.Ref1,
				Ref2:  a.Alignable.Ref2,
				Tier:  Tier(t.ID),
				Value: a.Alignable.Value,
			})
		}
	}
	return out
}
