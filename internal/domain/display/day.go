package display

import (
	"strings"
	"time"

	"classy-weather/pkg/msg"
)

// ShortWeekday formats t as an English three letter weekday name.
func ShortWeekday(t time.Time) string {
	return t.Format("Mon")
}

// DayLabel returns "Today" when date falls on the same weekday as now, seen from the date's location,
// and the short weekday name otherwise.
func DayLabel(date time.Time, now time.Time) string {
	label := ShortWeekday(date)
	if strings.EqualFold(label, ShortWeekday(now.In(date.Location()))) {
		return msg.GetMessage("weather.today")
	}
	return label
}
