package domain

import (
	"reflect"
	"testing"
)

func TestParsePitch(t *testing.T) {
	cases := []struct {
		raw      string
		assigned bool
		number   string
	}{
		{raw: "", assigned: false, number: ""},
		{raw: "-1", assigned: false, number: ""},
		{raw: "A1", assigned: true, number: "A1"},
		{raw: "0", assigned: true, number: "0"},
	}

	for _, tc := range cases {
		p := ParsePitch(tc.raw)
		if p.Assigned() != tc.assigned {
			t.Errorf("ParsePitch(%q).Assigned() = %v, want %v", tc.raw, p.Assigned(), tc.assigned)
		}
		if p.Number() != tc.number {
			t.Errorf("ParsePitch(%q).Number() = %q, want %q", tc.raw, p.Number(), tc.number)
		}
	}
}

func TestUnassignedIsZeroValue(t *testing.T) {
	if Unassigned() != (Pitch{}) {
		t.Fatalf("Unassigned() must equal the zero Pitch")
	}
	if AssignedTo("-1").Assigned() {
		t.Fatalf("AssignedTo(\"-1\") must stay unassigned")
	}
}

func bookingsWithPitches(raws ...*string) []*Booking {
	out := make([]*Booking, 0, len(raws))
	for _, raw := range raws {
		b := &Booking{}
		if raw != nil {
			b.Pitch = ParsePitch(*raw)
		}
		out = append(out, b)
	}
	return out
}

func strPtr(s string) *string { return &s }

func TestCountAssigned(t *testing.T) {
	bookings := bookingsWithPitches(strPtr("-1"), strPtr(""), strPtr("A1"), strPtr("B2"), nil)

	if got := CountAssigned(bookings); got != 2 {
		t.Fatalf("expected 2 assigned bookings, got %d", got)
	}
}

func TestPitchNumbers(t *testing.T) {
	bookings := bookingsWithPitches(strPtr("C3"), strPtr("-1"), strPtr("A1"), nil)

	got := PitchNumbers(bookings)
	want := []string{"C3", "A1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PitchNumbers = %v, want %v", got, want)
	}
}

func TestProportions(t *testing.T) {
	bookings := []*Booking{{Type: "food"}, {Type: "food"}, {Type: "craft"}}

	got := Proportions(bookings)
	want := map[string]int{"food": 2, "craft": 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Proportions = %v, want %v", got, want)
	}
}

func TestProportions_Empty(t *testing.T) {
	if got := Proportions(nil); len(got) != 0 {
		t.Fatalf("expected empty mapping, got %v", got)
	}
}
