package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScheduleTemplate_Hours(t *testing.T) {
	assert.Equal(t, []int{9, 10, 11, 13, 14, 15, 16}, DefaultScheduleTemplate().Hours())
}

func TestDefaultScheduleTemplate_Slots(t *testing.T) {
	slots := DefaultScheduleTemplate().Slots()
	require.Len(t, slots, 7)

	expected := []TimeSlot{
		{StartHour: 9, Display: "9:00am-10:00am", Value: "09:00"},
		{StartHour: 10, Display: "10:00am-11:00am", Value: "10:00"},
		{StartHour: 11, Display: "11:00am-12:00pm", Value: "11:00"},
		{StartHour: 13, Display: "1:00pm-2:00pm", Value: "13:00"},
		{StartHour: 14, Display: "2:00pm-3:00pm", Value: "14:00"},
		{StartHour: 15, Display: "3:00pm-4:00pm", Value: "15:00"},
		{StartHour: 16, Display: "4:00pm-5:00pm", Value: "16:00"},
	}
	assert.Equal(t, expected, slots)
}

func TestScheduleTemplate_SlotsExcept(t *testing.T) {
	template := DefaultScheduleTemplate()

	slots := template.SlotsExcept(map[string]struct{}{"10:00": {}, "15:00": {}, "12:00": {}, "garbage": {}})

	values := make([]string, 0, len(slots))
	for _, s := range slots {
		values = append(values, s.Value)
	}
	assert.Equal(t, []string{"09:00", "11:00", "13:00", "14:00", "16:00"}, values)
}

func TestScheduleTemplate_SlotsExcept_AllBooked(t *testing.T) {
	template := DefaultScheduleTemplate()
	booked := make(map[string]struct{})
	for _, s := range template.Slots() {
		booked[s.Value] = struct{}{}
	}

	slots := template.SlotsExcept(booked)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestScheduleTemplate_CustomHours(t *testing.T) {
	template := ScheduleTemplate{OpenHour: 8, CloseHour: 12, BreakHours: []int{10}}
	assert.Equal(t, []int{8, 9, 11}, template.Hours())
	assert.True(t, template.Contains("08:00"))
	assert.False(t, template.Contains("10:00"))
	assert.False(t, template.Contains("08:30"))
}

func TestNewTimeSlot_Midday(t *testing.T) {
	assert.Equal(t, "12:00pm-1:00pm", NewTimeSlot(12).Display)
	assert.Equal(t, "11:00pm-12:00am", NewTimeSlot(23).Display)
}
