package utils

import "time"

// DayFormat is the fixed-width ISO day layout used everywhere dates are
// stored. Lexicographic order on these strings equals chronological order.
const DayFormat = "2006-01-02"

func DayString(t time.Time) string {
	return t.Format(DayFormat)
}

func Today() string {
	return DayString(time.Now())
}

func ParseDay(date string) (time.Time, error) {
	return time.Parse(DayFormat, date)
}

// WeekdayIndex maps a day string to 0=Sunday..6=Saturday.
func WeekdayIndex(date string) (int, error) {
	t, err := ParseDay(date)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NowUTC returns the current time in UTC
func NowUTC() time.Time {
	return time.Now().UTC()
}
