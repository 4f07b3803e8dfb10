// Package locale renders currency, dates and times for the Indian market.
// Amounts are Indian Rupees and every date or clock time is interpreted in
// Asia/Kolkata, regardless of the host timezone. This is a business rule of
// the product, not configuration.
package locale

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for appointment dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for appointment times.
const TimeLayout = "15:04"

// IST is the Asia/Kolkata location. Falls back to a fixed UTC+5:30 zone when
// the host has no tzdata.
var IST = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// Now returns the current instant in IST.
func Now() time.Time {
	return time.Now().In(IST)
}

// Today returns the current IST calendar date as "YYYY-MM-DD".
func Today() string {
	return Now().Format(DateLayout)
}

// FormatCurrency renders an amount in rupees with Indian digit grouping:
// the last three digits form one group, every two digits after that form
// another (₹12,34,567).
func FormatCurrency(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	if len(digits) <= 3 {
		b.WriteString(digits)
		return b.String()
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	b.WriteString(strings.Join(groups, ","))
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}

// FormatDate renders a "YYYY-MM-DD" date as a long Indian-style date, e.g.
// "Monday, 2 September 2025". Unparseable input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.ParseInLocation(DateLayout, date, IST)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %d %s %d", t.Weekday(), t.Day(), t.Month(), t.Year())
}

// FormatTime renders an "HH:MM" clock time in 12-hour form, e.g. "2:30 PM".
// Unparseable input is returned unchanged.
func FormatTime(clock string) string {
	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return clock
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "AM"
	if t.Hour() >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), meridiem)
}

// WeekdayName returns the long weekday name ("Monday") of a time in IST.
func WeekdayName(t time.Time) string {
	return t.In(IST).Weekday().String()
}
