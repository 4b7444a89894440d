package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/codewithnuh/school-management-system-sub000/internal/model"
	"github.com/codewithnuh/school-management-system-sub000/pkg/apperrors"
)

// ── clock-time helpers ──────────────────────────────────────
//
// All schedule times are "HH:MM" 24-hour strings. Arithmetic never rolls
// over midnight: a result at or past 24:00 is an error, not a wraparound.

const minutesPerDay = 24 * 60

// dayStartTime is the fixed base for period 1 of every generated day.
const dayStartTime = "08:00"

// Weekday vocabulary used by timetable entries (full names). The raw slot
// generator uses the abbreviated model.SlotDays labels instead; the two
// vocabularies are intentionally distinct.
var entryDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// weeklyViewDays is the fixed order of the grouped weekly view. Weekend
// entries are excluded from that view.
var weeklyViewDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// dayRank gives the canonical Monday-first position of each weekday.
var dayRank = func() map[string]int {
	m := make(map[string]int, len(entryDays))
	for i, d := range entryDays {
		m[d] = i
	}
	return m
}()

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, apperrors.Validation("invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, apperrors.Validation("invalid time %q, expected HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, apperrors.Validation("invalid time %q, expected HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, apperrors.Validation("invalid time %q, expected HH:MM", s)
	}
	return h*60 + m, nil
}

// formatClock converts minutes since midnight back to "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// addMinutes adds m minutes to an "HH:MM" time. Negative offsets and
// results reaching 24:00 are rejected.
func addMinutes(t string, m int) (string, error) {
	if m < 0 {
		return "", apperrors.Validation("cannot add negative minutes (%d) to %s", m, t)
	}
	base, err := parseClock(t)
	if err != nil {
		return "", err
	}
	total := base + m
	if total >= minutesPerDay {
		return "", apperrors.Validation("time %s + %d minutes crosses midnight", t, m)
	}
	return formatClock(total), nil
}

// minutesBetween returns end - start in minutes. Both must be valid "HH:MM".
func minutesBetween(start, end string) (int, error) {
	s, err := parseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := parseClock(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}

// sortEntriesCanonical orders entries by canonical weekday rank then period
// number, for stable teacher and weekly views.
func sortEntriesCanonical(entries []model.TimetableEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if dayRank[entries[i].DayOfWeek] != dayRank[entries[j].DayOfWeek] {
			return dayRank[entries[i].DayOfWeek] < dayRank[entries[j].DayOfWeek]
		}
		return entries[i].PeriodNumber < entries[j].PeriodNumber
	})
}
