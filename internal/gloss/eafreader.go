package gloss

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
)

type msKey struct {
	start, finish int64
}

// ReadEAF reads an ELAN annotation document. Annotations are matched across
// tiers by the millisecond values of their time slots; symbolic annotations
// take the interval of the annotation they refer to. Utterances follow the
// order of the transcription tier.
func ReadEAF(r io.Reader) (*Result, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode eaf: %w", err)
	}

	slots := make(map[string]int64, len(doc.TimeOrder.Slots))
	for _, s := range doc.TimeOrder.Slots {
		slots[s.ID] = s.Value
	}

	// Interval of every annotation, so REF_ANNOTATIONs can be resolved.
	intervals := make(map[string]msKey)
	for _, t := range doc.Tiers {
		for _, a := range t.Annotations {
			if a.Alignable == nil {
				continue
			}
			k, err := slotInterval(slots, a.Alignable)
			if err != nil {
				return nil, err
			}
			intervals[a.Alignable.ID] = k
		}
	}
	targets := refTargets(doc.Tiers)
	resolve := func(ref *RefAnnotation) (msKey, bool) {
		// Chains are followed at most len(targets) steps to survive cycles.
		id := ref.Ref
		for range len(targets) + 1 {
			if k, ok := intervals[id]; ok {
				return k, true
			}
			next, ok := targets[id]
			if !ok {
				return msKey{}, false
			}
			id = next
		}
		return msKey{}, false
	}

	res := &Result{}
	tiers := make(map[Tier]map[msKey]string, len(Tiers))
	for _, t := range Tiers {
		tiers[t] = make(map[msKey]string)
	}
	var (
		order  []msKey
		others []placed[msKey]
	)

	for _, t := range doc.Tiers {
		m, ok := tiers[Tier(t.ID)]
		if !ok {
			slog.Warn("dropping unknown tier", "tier", t.ID, "annotations", len(t.Annotations))
			res.Dropped += len(t.Annotations)
			continue
		}
		for _, a := range t.Annotations {
			var (
				k     msKey
				value string
			)
			switch {
			case a.Alignable != nil:
				k, value = intervals[a.Alignable.ID], a.Alignable.Value
			case a.Ref != nil:
				var found bool
				if k, found = resolve(a.Ref); !found {
					slog.Warn("dropping annotation with dangling reference", "tier", t.ID, "id", a.Ref.ID, "ref", a.Ref.Ref)
					res.Dropped++
					continue
				}
				value = a.Ref.Value
			default:
				continue
			}
			if _, seen := m[k]; !seen {
				if Tier(t.ID) == TierTranscription {
					order = append(order, k)
				} else {
					others = append(others, placed[msKey]{tier: Tier(t.ID), key: k})
				}
			}
			m[k] = value
		}
	}

	res.Dropped += dropOrphans(others, tiers[TierTranscription], func(p placed[msKey]) {
		slog.Warn("dropping annotation with no transcription",
			"tier", string(p.tier), "start", p.key.start, "finish", p.key.finish)
	})

	for _, k := range order {
		res.Utterances = append(res.Utterances, Utterance{
			Start:         Timecode{Ms: k.start},
			Finish:        Timecode{Ms: k.finish},
			Transcription: tiers[TierTranscription][k],
			Translation:   lookupMs(tiers[TierTranslation], k),
			Gloss:         lookupMs(tiers[TierGloss], k),
			Comment:       lookupMs(tiers[TierComment], k),
		})
	}
	return res, nil
}

func slotInterval(slots map[string]int64, a *AlignableAnnotation) (msKey, error) {
	start, ok := slots[a.Ref1]
	if !ok {
		return msKey{}, fmt.Errorf("annotation %s: %w: unknown time slot %q", a.ID, ErrMalformedRecord, a.Ref1)
	}
	finish, ok := slots[a.Ref2]
	if !ok {
		return msKey{}, fmt.Errorf("annotation %s: %w: unknown time slot %q", a.ID, ErrMalformedRecord, a.Ref2)
	}
	return msKey{start: start, finish: finish}, nil
}

func refTargets(tiers []TierElement) map[string]string {
	out := make(map[string]string)
	for _, t := range tiers {
		for _, a := range t.Annotations {
			if a.Ref != nil {
				out[a.Ref.ID] = a.Ref.Ref
			}
		}
	}
	return out
}

func lookupMs(m map[msKey]string, k msKey) Text {
	v, ok := m[k]
	return Text{Value: v, Valid: ok}
}
