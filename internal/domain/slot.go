package domain

import (
	"fmt"
	"sort"
)

// TimeSlot is a one-hour bookable slot of the daily template
type TimeSlot struct {
	StartHour int
	Display   string // "9:00am-10:00am"
	Value     string // "09:00"
}

// NewTimeSlot builds the slot starting at hour
func NewTimeSlot(hour int) TimeSlot {
	return TimeSlot{
		StartHour: hour,
		Display:   formatClock(hour, 0) + "-" + formatClock(hour+1, 0),
		Value:     fmt.Sprintf("%02d:00", hour),
	}
}

// ScheduleTemplate describes the hourly slots of a business day:
// every hour in [OpenHour, CloseHour) except BreakHours
type ScheduleTemplate struct {
	OpenHour   int
	CloseHour  int
	BreakHours []int
}

// DefaultScheduleTemplate 9:00-17:00 with the 12:00 lunch break
func DefaultScheduleTemplate() ScheduleTemplate {
	return ScheduleTemplate{
		OpenHour:   DefaultOpenHour,
		CloseHour:  DefaultCloseHour,
		BreakHours: []int{LunchBreakHour},
	}
}

// Hours returns the start hours of the template in ascending order
func (t ScheduleTemplate) Hours() []int {
	breaks := make(map[int]struct{}, len(t.BreakHours))
	for _, h := range t.BreakHours {
		breaks[h] = struct{}{}
	}

	hours := make([]int, 0, t.CloseHour-t.OpenHour)
	for h := t.OpenHour; h < t.CloseHour; h++ {
		if _, isBreak := breaks[h]; isBreak {
			continue
		}
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

// Slots returns every template slot, unfiltered
func (t ScheduleTemplate) Slots() []TimeSlot {
	return t.SlotsExcept(nil)
}

// SlotsExcept returns the template slots whose Value is not in booked.
// The result is ordered by hour and never nil.
func (t ScheduleTemplate) SlotsExcept(booked map[string]struct{}) []TimeSlot {
	hours := t.Hours()
	slots := make([]TimeSlot, 0, len(hours))
	for _, h := range hours {
		slot := NewTimeSlot(h)
		if _, taken := booked[slot.Value]; taken {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// Contains reports whether value (HH:MM) is the start of a template slot
func (t ScheduleTemplate) Contains(value string) bool {
	for _, h := range t.Hours() {
		if NewTimeSlot(h).Value == value {
			return true
		}
	}
	return false
}

// formatClock renders hour:minute on a 12-hour clock, e.g. 13,0 -> "1:00pm"; hour 24 wraps to midnight
func formatClock(hour, minute int) string {
	hour %= 24
	suffix := "am"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "pm"
	case hour > 12:
		display = hour - 12
		suffix = "pm"
	}
	return fmt.Sprintf("%d:%02d%s", display, minute, suffix)
}
