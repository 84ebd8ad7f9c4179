package gloss

import (
	"reflect"
	"testing"
)

func TestCounter(t *testing.T) {
	var c Counter
	if c.Last() != 0 {
		t.Errorf("Last() = %d before any Next", c.Last())
	}
	for want := 1; want <= 3; want++ {
		if got := c.Next(); got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
	if c.Last() != 3 {
		t.Errorf("Last() = %d, want 3", c.Last())
	}
}

func TestRunMint_WithoutComment(t *testing.T) {
	r := NewRun()
	starts, finishes := r.Mint(1000, 2000, false)

	if !reflect.DeepEqual(starts, []string{"ts1", "ts2", "ts3"}) {
		t.Errorf("starts = %q", starts)
	}
	if !reflect.DeepEqual(finishes, []string{"ts4", "ts5", "ts6"}) {
		t.Errorf("finishes = %q", finishes)
	}

	want := []TimeSlot{
		{"ts1", 1000}, {"ts2", 1000}, {"ts3", 1000},
		{"ts4", 2000}, {"ts5", 2000}, {"ts6", 2000},
	}
	if !reflect.DeepEqual(r.TimeSlots(), want) {
		t.Errorf("TimeSlots() = %v", r.TimeSlots())
	}
}

func TestRunMint_WithComment(t *testing.T) {
	r := NewRun()
	r.Mint(0, 10, false)
	starts, finishes := r.Mint(20, 30, true)

	if len(starts) != 4 || len(finishes) != 4 {
		t.Fatalf("group sizes = (%d,%d), want (4,4)", len(starts), len(finishes))
	}
	if starts[0] != "ts7" || finishes[3] != "ts14" {
		t.Errorf("ids continue across utterances: starts=%q finishes=%q", starts, finishes)
	}
	if len(r.TimeSlots()) != 14 {
		t.Errorf("slot table size = %d, want 14", len(r.TimeSlots()))
	}
}

func TestRunMint_FinishBeforeStartAccepted(t *testing.T) {
	r := NewRun()
	starts, finishes := r.Mint(5000, 1000, false)
	if len(starts) != 3 || len(finishes) != 3 {
		t.Fatal("expected slots to be minted without validation")
	}
}

func TestNewRun_IsFresh(t *testing.T) {
	a := NewRun()
	a.Mint(0, 1, true)
	a.NextAnnotationID()

	b := NewRun()
	starts, _ := b.Mint(0, 1, false)
	if starts[0] != "ts1" {
		t.Errorf("second run starts at %q, want ts1", starts[0])
	}
	if id := b.NextAnnotationID(); id != "a1" {
		t.Errorf("second run annotation id = %q, want a1", id)
	}
}
