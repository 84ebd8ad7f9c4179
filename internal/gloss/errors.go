package gloss

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedBlock    = errors.New("malformed block")
	ErrMalformedTimecode = errors.New("malformed timecode")
	ErrMalformedRecord   = errors.New("malformed record")
)

// BlockError reports a table block that does not have the expected shape.
// Line is the 1-based line of the block's start marker, Index the 0-based
// utterance number.
type BlockError struct {
	Line   int
	Index  int
	Reason string
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("malformed block %d at line %d: %s", e.Index+1, e.Line, e.Reason)
}

func (e *BlockError) Unwrap() error { return ErrMalformedBlock }

// TimecodeError reports a clock string that is not H:MM:SS.mmm.
type TimecodeError struct {
	Value string
	Line  int
}

func (e *TimecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed timecode %q at line %d", e.Value, e.Line)
	}
	return fmt.Sprintf("malformed timecode %q", e.Value)
}

func (e *TimecodeError) Unwrap() error { return ErrMalformedTimecode }

// RecordError reports a tab-delimited record with too few columns.
type RecordError struct {
	Line    int
	Columns int
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %d columns", e.Line, e.Columns)
}

func (e *RecordError) Unwrap() error { return ErrMalformedRecord }
