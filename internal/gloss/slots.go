package gloss

import "strconv"

// Run holds the identifier state of one conversion. A Run must not be shared
// between output documents.
type Run struct {
	slots       Counter
	annotations Counter
	table       []TimeSlot
}

// NewRun returns a Run with both counters at zero.
func NewRun() *Run {
	return &Run{}
}

// Mint allocates the time slots anchoring one utterance: one per tier at the
// start and one per tier at the finish. Start slots are allocated first.
func (r *Run) Mint(start, finish int64, withComment bool) (starts, finishes []string) {
	n := 3
	if withComment {
		n = 4
	}
	starts = r.mintGroup(n, start)
	finishes = r.mintGroup(n, finish)
	return starts, finishes
}

func (r *Run) mintGroup(n int, value int64) []string {
	ids := make([]string, n)
	for i := range ids {
		id := "ts" + strconv.Itoa(r.slots.Next())
		ids[i] = id
		r.table = append(r.table, TimeSlot{ID: id, Value: value})
	}
	return ids
}

// NextAnnotationID returns a fresh annotation identifier.
func (r *Run) NextAnnotationID() string {
	return "a" + strconv.Itoa(r.annotations.Next())
}

// LastAnnotation returns the numeric part of the last annotation identifier.
func (r *Run) LastAnnotation() int {
	return r.annotations.Last()
}

// TimeSlots returns the slot table in allocation order.
func (r *Run) TimeSlots() []TimeSlot {
	return r.table
}
