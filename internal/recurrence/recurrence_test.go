package recurrence

import (
	"testing"
	"time"

	"taskdeck/internal/model"
)

func TestNextDaily(t *testing.T) {
	anchor := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	after := time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)

	next, ok, err := Next(model.RecurringRule{Frequency: "daily"}, anchor, after)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !ok {
		t.Fatal("no occurrence returned")
	}
	want := time.Date(2026, 8, 4, 9, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestNextWeeklyWithInterval(t *testing.T) {
	anchor := time.Date(2026, 8, 3, 8, 0, 0, 0, time.UTC) // a Monday
	after := anchor.Add(time.Hour)

	next, ok, err := Next(model.RecurringRule{Frequency: "weekly", Interval: 2}, anchor, after)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !ok {
		t.Fatal("no occurrence returned")
	}
	want := anchor.AddDate(0, 0, 14)
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestNextZeroIntervalDefaultsToOne(t *testing.T) {
	anchor := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	next, ok, err := Next(model.RecurringRule{Frequency: "daily", Interval: 0}, anchor, anchor)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !ok {
		t.Fatal("no occurrence returned")
	}
	if !next.Equal(anchor.AddDate(0, 0, 1)) {
		t.Errorf("next = %v, want one day after anchor", next)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		rule    model.RecurringRule
		wantErr bool
	}{
		{"daily", model.RecurringRule{Frequency: "daily"}, false},
		{"weekly upper case", model.RecurringRule{Frequency: "Weekly"}, false},
		{"monthly with interval", model.RecurringRule{Frequency: "monthly", Interval: 3}, false},
		{"unknown frequency", model.RecurringRule{Frequency: "hourly"}, true},
		{"negative interval", model.RecurringRule{Frequency: "daily", Interval: -1}, true},
		{"empty", model.RecurringRule{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.rule)
			if tc.wantErr && err == nil {
				t.Error("want error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
