package model

import (
	"testing"
	"time"
)

func TestMeetingStartsAt(t *testing.T) {
	m := Meeting{Date: "2026-09-01", Time: "09:30"}

	startsAt, err := m.StartsAt(time.UTC)
	if err != nil {
		t.Fatalf("StartsAt failed: %v", err)
	}

	want := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)
	if !startsAt.Equal(want) {
		t.Errorf("StartsAt = %v, want %v", startsAt, want)
	}
}

func TestMeetingStartsAtMalformed(t *testing.T) {
	for _, m := range []Meeting{
		{Date: "tomorrow", Time: "09:30"},
		{Date: "2026-09-01", Time: "9:30am"},
		{},
	} {
		if _, err := m.StartsAt(time.UTC); err == nil {
			t.Errorf("expected error for %q %q", m.Date, m.Time)
		}
	}
}
