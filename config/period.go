package config

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const DateLayout = "2006-01-02"

var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var ErrInvalidDate = errors.New("date format should be YYYY-MM-DD")

// Period is an inclusive range of whole days.
type Period struct {
	Start string
	End   string

	Location *time.Location
}

func NewPeriod(start, end string) (Period, error) {
	p := Period{Start: start, End: end}
	if errs := p.Validate(); len(errs) > 0 {
		return Period{}, errs[0]
	}
	return p, nil
}

func ValidDate(date string) bool {
	if !dateFormat.MatchString(date) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

func (p Period) Validate() []error {
	var errs []error

	if p.Start == "" {
		errs = append(errs, errors.New("no period start date specified"))
	} else if !ValidDate(p.Start) {
		errs = append(errs, fmt.Errorf("period start %q: %w", p.Start, ErrInvalidDate))
	}

	if p.End == "" {
		errs = append(errs, errors.New("no period end date specified"))
	} else if !ValidDate(p.End) {
		errs = append(errs, fmt.Errorf("period end %q: %w", p.End, ErrInvalidDate))
	}

	if len(errs) == 0 && p.StartTime().After(p.EndTime()) {
		errs = append(errs, errors.New("period start is after period end"))
	}

	return errs
}

func (p Period) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

func (p Period) StartTime() time.Time {
	t, _ := time.ParseInLocation(DateLayout, p.Start, p.location())
	return t
}

// EndTime is the last millisecond of the end day.
func (p Period) EndTime() time.Time {
	t, _ := time.ParseInLocation(DateLayout, p.End, p.location())
	return t.Add(24*time.Hour - time.Millisecond)
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.StartTime()) && !t.After(p.EndTime())
}

func (p Period) String() string {
	return p.Start + "-" + p.End
}
