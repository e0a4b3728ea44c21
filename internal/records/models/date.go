package models

import (
	"encoding/json"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the wire layout of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date at UTC midnight, or the invalid-date sentinel.
//
// Invariant: ordering comparisons involving an invalid Date are always false,
// so blank or garbage input drops out of date checks instead of failing.
type Date struct {
	t     time.Time
	valid bool
}

// ParseDate never fails; unparsable input yields the invalid sentinel.
// Both "2006-01-02" and RFC 3339 timestamps are accepted; a timestamp keeps
// only the calendar day it is written in.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t: t, valid: true}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewDate(t.Year(), t.Month(), t.Day())
	}
	return Date{}
}

// NewDate builds a valid Date from calendar parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), valid: true}
}

// DateOf returns the calendar date of t in UTC.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Valid() bool { return d.valid }

// Time returns the instant the date denotes; zero for the invalid sentinel.
func (d Date) Time() time.Time { return d.t }

func (d Date) Before(o Date) bool { return d.valid && o.valid && d.t.Before(o.t) }

func (d Date) After(o Date) bool { return d.valid && o.valid && d.t.After(o.t) }

// AddDays returns the date n days later; the sentinel stays invalid.
func (d Date) AddDays(n int) Date {
	if !d.valid {
		return d
	}
	return Date{t: d.t.AddDate(0, 0, n), valid: true}
}

func (d Date) String() string {
	if !d.valid {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	*d = ParseDate(node.Value)
	return nil
}
