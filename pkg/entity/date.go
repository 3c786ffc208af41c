package entity

import "time"

// DateLayout is the calendar-day format used as the join key across collections.
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

func IsDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// AddDays shifts a calendar day by n days. Invalid input is returned unchanged.
func AddDays(date string, n int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return FormatDate(t.AddDate(0, 0, n))
}
