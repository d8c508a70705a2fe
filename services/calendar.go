package services

import (
	"StarBoard/models"
	"time"
)

// Calendar turns instants into day keys in one fixed time zone.
type Calendar struct {
	Location *time.Location
	Now      func() time.Time
}

func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{Location: loc, Now: time.Now}
}

// Today returns midnight of the current day in the calendar's zone.
func (c *Calendar) Today() time.Time {
	return c.StartOfDay(c.Now())
}

func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.Location)
}

func (c *Calendar) DayKey(t time.Time) string {
	return t.In(c.Location).Format(models.DayLayout)
}

// MonthRange returns the [from, to) day keys covering the given month.
func (c *Calendar) MonthRange(year int, month time.Month) (string, string) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, c.Location)
	return start.Format(models.DayLayout), start.AddDate(0, 1, 0).Format(models.DayLayout)
}

// ComputeStreak counts consecutive days ending at today that appear in days.
// It is 0 when today itself has no entry.
func ComputeStreak(days []string, today time.Time) int {
	present := make(map[string]struct{}, len(days))
	for _, d := range days {
		present[d] = struct{}{}
	}

	streak := 0
	cursor := today
	for {
		if _, ok := present[cursor.Format(models.DayLayout)]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}
