// Package models provides the data structures the BAI pipeline assembles:
// the file/group/account/detail hierarchy, the type-code tables, and the
// date, currency and money value types attached to them.
package models

import (
	"fmt"
	"time"
)

// Fixed-width layouts used by the transmission format. Dates are always
// two-digit year, times are 24-hour with no separator.
const (
	DateLayout = "060102"
	TimeLayout = "1504"
)

// Time field literals that mark "end of business day" rather than an instant.
var endOfDayLiterals = map[string]bool{
	"2400": true,
	"9999": true,
}

// BaiDateTime is a timestamp from the transmission: either a timed instant or
// an end-of-day marker on a date. There is no date-only variant; a header
// timestamp with no usable time means end of day.
type BaiDateTime struct {
	when     time.Time
	endOfDay bool
}

// NewDateTime returns a BaiDateTime for a timed instant.
func NewDateTime(t time.Time) BaiDateTime {
	return BaiDateTime{when: t}
}

// NewEndOfDay returns a BaiDateTime marking end of business on the given date.
func NewEndOfDay(d time.Time) BaiDateTime {
	return BaiDateTime{when: midnight(d), endOfDay: true}
}

// Date returns the calendar date component.
func (t BaiDateTime) Date() time.Time {
	return midnight(t.when)
}

// Time returns the time-of-day component. The second return value is false
// for the end-of-day variant, which has no time.
func (t BaiDateTime) Time() (time.Time, bool) {
	if t.endOfDay {
		return time.Time{}, false
	}
	return t.when, true
}

// IsEndOfDay reports whether this is the end-of-day variant.
func (t BaiDateTime) IsEndOfDay() bool {
	return t.endOfDay
}

// Equal reports whether two timestamps are the same variant and instant.
func (t BaiDateTime) Equal(o BaiDateTime) bool {
	return t.endOfDay == o.endOfDay && t.when.Equal(o.when)
}

func (t BaiDateTime) String() string {
	if t.endOfDay {
		return t.when.Format("2006-01-02") + "Teod"
	}
	return t.when.Format("2006-01-02 15:04")
}

type dateKind uint8

const (
	dateOnly dateKind = iota
	dateWithTime
	dateEndOfDay
)

// BaiDateOrTime is an as-of or value date from the transmission: a plain
// calendar date, a timed instant, or an end-of-day marker. A BaiDateTime can
// always be widened into a BaiDateOrTime; the reverse holds only for the two
// timed variants.
type BaiDateOrTime struct {
	kind dateKind
	when time.Time
}

// NewDate returns a date-only BaiDateOrTime.
func NewDate(d time.Time) BaiDateOrTime {
	return BaiDateOrTime{kind: dateOnly, when: midnight(d)}
}

// DateOrTimeFrom widens a BaiDateTime into a BaiDateOrTime.
func DateOrTimeFrom(t BaiDateTime) BaiDateOrTime {
	if t.endOfDay {
		return BaiDateOrTime{kind: dateEndOfDay, when: t.when}
	}
	return BaiDateOrTime{kind: dateWithTime, when: t.when}
}

// Date returns the calendar date component, present in every variant.
func (t BaiDateOrTime) Date() time.Time {
	return midnight(t.when)
}

// DateTime narrows to a BaiDateTime. The second return value is false for the
// date-only variant.
func (t BaiDateOrTime) DateTime() (BaiDateTime, bool) {
	switch t.kind {
	case dateWithTime:
		return NewDateTime(t.when), true
	case dateEndOfDay:
		return NewEndOfDay(t.when), true
	default:
		return BaiDateTime{}, false
	}
}

// Equal reports whether two values are the same variant and instant.
func (t BaiDateOrTime) Equal(o BaiDateOrTime) bool {
	return t.kind == o.kind && t.when.Equal(o.when)
}

func (t BaiDateOrTime) String() string {
	switch t.kind {
	case dateWithTime:
		return t.when.Format("2006-01-02 15:04")
	case dateEndOfDay:
		return t.when.Format("2006-01-02") + "Teod"
	default:
		return t.when.Format("2006-01-02")
	}
}

// ParseDate decodes a fixed-width YYMMDD date field.
func ParseDate(field string) (time.Time, error) {
	if len(field) != 6 {
		return time.Time{}, fmt.Errorf("expected 6-digit YYMMDD date, got '%s'", field)
	}
	t, err := time.Parse(DateLayout, field)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s': %w", field, err)
	}
	return t, nil
}

// ParseDateTime combines a date field and a time field into a BaiDateTime.
// An empty time field or an end-of-day literal yields the end-of-day variant.
func ParseDateTime(dateField, timeField string) (BaiDateTime, error) {
	d, err := ParseDate(dateField)
	if err != nil {
		return BaiDateTime{}, err
	}
	if timeField == "" || endOfDayLiterals[timeField] {
		return NewEndOfDay(d), nil
	}
	tod, err := parseTimeOfDay(timeField)
	if err != nil {
		return BaiDateTime{}, err
	}
	return NewDateTime(d.Add(tod)), nil
}

// ParseDateOrTime combines a date field and an optional time field into a
// BaiDateOrTime. An empty time field yields the date-only variant, an
// end-of-day literal the end-of-day variant.
func ParseDateOrTime(dateField, timeField string) (BaiDateOrTime, error) {
	d, err := ParseDate(dateField)
	if err != nil {
		return BaiDateOrTime{}, err
	}
	if timeField == "" {
		return NewDate(d), nil
	}
	if endOfDayLiterals[timeField] {
		return DateOrTimeFrom(NewEndOfDay(d)), nil
	}
	tod, err := parseTimeOfDay(timeField)
	if err != nil {
		return BaiDateOrTime{}, err
	}
	return DateOrTimeFrom(NewDateTime(d.Add(tod))), nil
}

func parseTimeOfDay(field string) (time.Duration, error) {
	if len(field) != 4 {
		return 0, fmt.Errorf("expected 4-digit HHMM time, got '%s'", field)
	}
	t, err := time.Parse(TimeLayout, field)
	if err != nil {
		return 0, fmt.Errorf("invalid time '%s': %w", field, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
