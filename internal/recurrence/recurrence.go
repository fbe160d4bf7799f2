// Package recurrence evaluates structured recurring rules against the
// calendar. Rules carry a frequency (daily/weekly/monthly) and an optional
// interval; evaluation is delegated to an RFC 5545 recurrence engine.
package recurrence

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"taskdeck/internal/model"
)

const (
	FreqDaily   = "daily"
	FreqWeekly  = "weekly"
	FreqMonthly = "monthly"
)

// Validate rejects rules with an unknown frequency or a negative interval.
func Validate(rule model.RecurringRule) error {
	if _, err := frequency(rule.Frequency); err != nil {
		return err
	}
	if rule.Interval < 0 {
		return fmt.Errorf("recurring interval must not be negative, got %d", rule.Interval)
	}
	return nil
}

// Next returns the first occurrence strictly after the given time, anchored
// at the task's creation. The second return value is false when the rule
// yields no further occurrences.
func Next(rule model.RecurringRule, anchor, after time.Time) (time.Time, bool, error) {
	freq, err := frequency(rule.Frequency)
	if err != nil {
		return time.Time{}, false, err
	}

	interval := rule.Interval
	if interval <= 0 {
		interval = 1
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Dtstart:  anchor,
	})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("build recurrence rule: %w", err)
	}

	next := r.After(after, false)
	if next.IsZero() {
		return time.Time{}, false, nil
	}
	return next, true, nil
}

func frequency(name string) (rrule.Frequency, error) {
	switch strings.ToLower(name) {
	case FreqDaily:
		return rrule.DAILY, nil
	case FreqWeekly:
		return rrule.WEEKLY, nil
	case FreqMonthly:
		return rrule.MONTHLY, nil
	default:
		return 0, fmt.Errorf("unknown recurring frequency %q", name)
	}
}
