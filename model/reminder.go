package model

import (
	"fmt"
	"strconv"
	"strings"
)

// CustomReminder is a user-authored medicine reminder. Custom reminders are
// created and deleted, never edited in place.
// @Description User-authored medicine reminder
type CustomReminder struct {
	ID     string `json:"id"`
	Name   string `json:"name" example:"Aspirin"`
	Dosage string `json:"dosage" example:"1 tablet"`
	// Time is a 24h "HH:MM" clock time with no timezone.
	Time         string `json:"time" example:"09:00"`
	AlarmEnabled bool   `json:"alarmEnabled"`
	Notes        string `json:"notes"`
	// Sound keys into the fixed alarm-sound library.
	Sound string `json:"sound" example:"gentle"`
}

// Period is the AM/PM bucket a reminder time falls into.
type Period string

const (
	PeriodAM Period = "AM"
	PeriodPM Period = "PM"
)

// ParseClock validates an "HH:MM" 24h time string and returns its hour and
// minute. Hours run 00-23, minutes 00-59.
func ParseClock(t string) (hour, minute int, err error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: want HH:MM", t)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", t)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", t)
	}
	return hour, minute, nil
}

// ClockPeriod partitions a time string by parsed hour: hour < 12 is AM,
// everything else PM. "00:00" is AM, "12:00" is PM.
func ClockPeriod(t string) (Period, error) {
	hour, _, err := ParseClock(t)
	if err != nil {
		return "", err
	}
	if hour < 12 {
		return PeriodAM, nil
	}
	return PeriodPM, nil
}
