package gloss

import (
	"io"
	"log/slog"
	"strings"
)

// timeKey identifies an utterance by the raw clock strings of its bounds.
type timeKey struct {
	start, finish string
}

// Result is the outcome of reading an ELAN export or document.
type Result struct {
	Utterances []Utterance
	// Dropped counts records that could not be placed: an unknown tier name,
	// or a time pair the transcription tier never mentions.
	Dropped int
}

// ReadTab reads a tab-delimited ELAN export. A record with nine columns was
// exported with the duration column ticked and keeps tier, start, finish and
// text in columns 0, 2, 4 and 8; any other record uses 0, 2, 3 and 4.
//
// Records are fused into utterances by their (start, finish) pair, in the
// order the transcription tier first mentions each pair. A tier with no
// record for a pair is left invalid rather than empty.
func ReadTab(r io.Reader) (*Result, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	tiers := make(map[Tier]map[timeKey]string, len(Tiers))
	for _, t := range Tiers {
		tiers[t] = make(map[timeKey]string)
	}
	var (
		order  []timeKey
		others []placed[timeKey]
	)
	lineOf := make(map[timeKey]int)

	for n, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		idx := [4]int{0, 2, 3, 4}
		if len(cols) == 9 {
			idx = [4]int{0, 2, 4, 8}
		}
		if len(cols) <= idx[3] {
			return nil, &RecordError{Line: n + 1, Columns: len(cols)}
		}

		tier := Tier(cols[idx[0]])
		key := timeKey{start: cols[idx[1]], finish: cols[idx[2]]}
		m, ok := tiers[tier]
		if !ok {
			slog.Warn("dropping record with unknown tier", "line", n+1, "tier", string(tier))
			res.Dropped++
			continue
		}
		if _, seen := m[key]; !seen {
			if tier == TierTranscription {
				order = append(order, key)
				lineOf[key] = n + 1
			} else {
				others = append(others, placed[timeKey]{tier: tier, key: key, line: n + 1})
			}
		}
		m[key] = cols[idx[3]]
	}

	res.Dropped += dropOrphans(others, tiers[TierTranscription], func(p placed[timeKey]) {
		slog.Warn("dropping record with no transcription",
			"line", p.line, "tier", string(p.tier), "start", p.key.start, "finish", p.key.finish)
	})

	for _, key := range order {
		start, err := ParseTimecode(key.start)
		if err != nil {
			return nil, &TimecodeError{Value: key.start, Line: lineOf[key]}
		}
		finish, err := ParseTimecode(key.finish)
		if err != nil {
			return nil, &TimecodeError{Value: key.finish, Line: lineOf[key]}
		}
		res.Utterances = append(res.Utterances, Utterance{
			Start:         start,
			Finish:        finish,
			Transcription: tiers[TierTranscription][key],
			Translation:   lookup(tiers[TierTranslation], key),
			Gloss:         lookup(tiers[TierGloss], key),
			Comment:       lookup(tiers[TierComment], key),
		})
	}
	return res, nil
}

func lookup(m map[timeKey]string, key timeKey) Text {
	v, ok := m[key]
	return Text{Value: v, Valid: ok}
}

// placed is the first record of a tier for one time key, in input order.
type placed[K comparable] struct {
	tier Tier
	key  K
	line int
}

// dropOrphans reports, in input order, the records whose key the
// transcription tier never mentions and returns how many there were.
func dropOrphans[K comparable](recs []placed[K], transcription map[K]string, warn func(placed[K])) int {
	n := 0
	for _, p := range recs {
		if _, ok := transcription[p.key]; !ok {
			warn(p)
			n++
		}
	}
	return n
}
