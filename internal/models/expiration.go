package cards

import (
	"fmt"
	"time"
)

// MaxTime is returned for balances that never expire.
var MaxTime = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)

type ExpirationKind string

const (
	ExpirationNone     ExpirationKind = "none"
	ExpirationRelative ExpirationKind = "relative"
	ExpirationFixed    ExpirationKind = "fixed_date"
)

type PeriodType string

const (
	PeriodDays   PeriodType = "days"
	PeriodMonths PeriodType = "months"
	PeriodYears  PeriodType = "years"
)

// ExpirationPolicy decides when accrued loyalty lapses. The zero value never expires.
type ExpirationPolicy struct {
	kind       ExpirationKind
	periodType PeriodType
	period     int
	day        int
	month      int // 0 = month of the reference date
}

func NoExpiration() ExpirationPolicy {
	return ExpirationPolicy{kind: ExpirationNone}
}

func NewRelativeExpiration(periodType PeriodType, value int) (ExpirationPolicy, error) {
	switch periodType {
	case PeriodDays, PeriodMonths, PeriodYears:
	default:
		return ExpirationPolicy{}, invalidArgument("period type", fmt.Sprintf("%q is unknown", periodType))
	}
	if value <= 0 {
		return ExpirationPolicy{}, invalidArgument("period", "must be positive")
	}
	return ExpirationPolicy{kind: ExpirationRelative, periodType: periodType, period: value}, nil
}

// NewFixedDateExpiration expires on a calendar day. month may be 0 to mean the reference month.
func NewFixedDateExpiration(day, month int) (ExpirationPolicy, error) {
	if day < 1 || day > 31 {
		return ExpirationPolicy{}, invalidArgument("day", "must be between 1 and 31")
	}
	if month < 0 || month > 12 {
		return ExpirationPolicy{}, invalidArgument("month", "must be between 0 and 12, 0 is the reference month")
	}
	return ExpirationPolicy{kind: ExpirationFixed, day: day, month: month}, nil
}

func (p ExpirationPolicy) Kind() ExpirationKind {
	if p.kind == "" {
		return ExpirationNone
	}
	return p.kind
}

func (p ExpirationPolicy) PeriodType() PeriodType { return p.periodType }

func (p ExpirationPolicy) Period() int { return p.period }

func (p ExpirationPolicy) Day() int { return p.day }

func (p ExpirationPolicy) Month() int { return p.month }

func (p ExpirationPolicy) Expires() bool { return p.Kind() != ExpirationNone }

func (p ExpirationPolicy) CalculateExpirationDate(reference time.Time) time.Time {
	switch p.Kind() {
	case ExpirationRelative:
		switch p.periodType {
		case PeriodDays:
			return reference.AddDate(0, 0, p.period)
		case PeriodMonths:
			return addMonths(reference, p.period)
		case PeriodYears:
			return addMonths(reference, 12*p.period)
		}
	case ExpirationFixed:
		month := time.Month(p.month)
		if p.month == 0 {
			month = reference.Month()
		}
		candidate := clampedDate(reference.Year(), month, p.day, reference.Location())
		if !candidate.After(reference) {
			candidate = clampedDate(reference.Year()+1, month, p.day, reference.Location())
		}
		return candidate
	}
	return MaxTime
}

// addMonths keeps the day of month, clamped to the last day of the target month.
func addMonths(t time.Time, months int) time.Time {
	total := int(t.Month()) - 1 + months
	year := t.Year() + total/12
	m := total % 12
	if m < 0 {
		m += 12
		year--
	}
	month := time.Month(m + 1)
	day := min(t.Day(), daysIn(year, month))
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func clampedDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, min(day, daysIn(year, month)), 0, 0, 0, 0, loc)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ExpirationPolicyState is the persisted form of an ExpirationPolicy.
type ExpirationPolicyState struct {
	Kind       ExpirationKind
	PeriodType PeriodType
	Period     int
	Day        int
	Month      int
}

func (p ExpirationPolicy) State() ExpirationPolicyState {
	return ExpirationPolicyState{
		Kind:       p.Kind(),
		PeriodType: p.periodType,
		Period:     p.period,
		Day:        p.day,
		Month:      p.month,
	}
}

// RehydrateExpirationPolicy restores a stored policy without validation.
func RehydrateExpirationPolicy(s ExpirationPolicyState) ExpirationPolicy {
	return ExpirationPolicy{
		kind:       s.Kind,
		periodType: s.PeriodType,
		period:     s.Period,
		day:        s.Day,
		month:      s.Month,
	}
}
