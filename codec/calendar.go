package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	goarr "github.com/reoring/goarr"
)

// Date is a calendar date without a time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.In(time.UTC).AddDate(0, 0, n))
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Dates returns a Codec for YYYY-MM-DD strings.
func Dates() goarr.Codec[string, Date] {
	return stringCodec[Date]{decode: ParseDate, encode: func(d Date) (string, error) { return d.String(), nil }}
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, invalidFormat(s, "expected date YYYY-MM-DD", err)
	}
	return DateOf(t), nil
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d Date) string { return d.String() }

// TimeOfDay is a wall-clock time with microsecond precision.
type TimeOfDay struct {
	Hour, Minute, Second int
	Microsecond          int
}

// String renders HH:MM:SS with a .ffffff suffix when the microsecond is set.
func (t TimeOfDay) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Microsecond != 0 {
		s += fmt.Sprintf(".%06d", t.Microsecond)
	}
	return s
}

// TimesOfDay returns a Codec for HH:MM:SS[.f+] strings.
func TimesOfDay() goarr.Codec[string, TimeOfDay] {
	return stringCodec[TimeOfDay]{decode: ParseTimeOfDay, encode: func(t TimeOfDay) (string, error) { return t.String(), nil }}
}

// Sonarr reports air times without seconds, so shorter forms are accepted.
var timeOfDayLayouts = []string{time.TimeOnly, "15:04", "15"}

// ParseTimeOfDay parses HH:MM:SS with optional fractional seconds. Fractions
// longer than six digits are rounded like timestamps, but a time of day cannot
// carry into the next second, so the result saturates at .999999.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	body, micro := s, 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		m, carry, err := rescaleFraction(s[i+1:])
		if err != nil {
			return TimeOfDay{}, invalidFormat(s, err.Error(), err)
		}
		if carry {
			m = pow10[microDigits] - 1
		}
		body, micro = s[:i], m
	}
	var (
		t   time.Time
		err error
	)
	for _, layout := range timeOfDayLayouts {
		if t, err = time.Parse(layout, body); err == nil {
			break
		}
	}
	if err != nil {
		return TimeOfDay{}, invalidFormat(s, "expected time HH:MM:SS", err)
	}
	if len(body) != len(s) && len(body) != len(time.TimeOnly) {
		return TimeOfDay{}, invalidFormat(s, "fraction requires seconds", nil)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Microsecond: micro}, nil
}

// FormatTimeOfDay renders t; see TimeOfDay.String.
func FormatTimeOfDay(t TimeOfDay) string { return t.String() }

// Durations returns a Codec for HH:MM:SS durations.
func Durations() goarr.Codec[string, time.Duration] {
	return stringCodec[time.Duration]{decode: ParseDuration, encode: FormatDuration}
}

// ParseDuration parses HH:MM:SS. Hours are unbounded; minutes and seconds are
// two digits below 60.
func ParseDuration(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, invalidFormat(s, "expected duration HH:MM:SS", nil)
	}
	h, ok := digits(parts[0], 1)
	if !ok {
		return 0, invalidFormat(s, "hours must be digits", nil)
	}
	m, ok := digits(parts[1], 2)
	if !ok || m >= 60 {
		return 0, invalidFormat(s, "minutes must be 00-59", nil)
	}
	sec, ok := digits(parts[2], 2)
	if !ok || sec >= 60 {
		return 0, invalidFormat(s, "seconds must be 00-59", nil)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

// FormatDuration renders d as HH:MM:SS, truncating to whole seconds.
// Negative durations have no wire form.
func FormatDuration(d time.Duration) (string, error) {
	if d < 0 {
		return "", goarr.Issues{{Path: "/", Code: goarr.CodeInvalidFormat, Message: "negative duration", Value: d.String()}}
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60), nil
}

// digits parses s as an unsigned decimal. exact > 1 requires exactly that many
// digits; exact == 1 accepts any non-empty run.
func digits(s string, exact int) (int64, bool) {
	if s == "" || (exact > 1 && len(s) != exact) {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func invalidFormat(s, msg string, cause error) error {
	return goarr.Issues{{Path: "/", Code: goarr.CodeInvalidFormat, Message: msg, Value: s, Cause: cause}}
}
